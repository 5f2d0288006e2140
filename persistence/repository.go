package persistence

import (
	"context"
	"errors"

	"github.com/Tarakreddy011/School-Management-App/domain"
	"github.com/Tarakreddy011/School-Management-App/identity"
	"github.com/Tarakreddy011/School-Management-App/school"
	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func init() {
	Register("sqlite", sqlite.Open)
	Register("postgres", postgres.Open)
	Register("mysql", mysql.Open)
}

// Repository implements domain.Storage on a GORM database.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// DB exposes the underlying handle for migrations and tests.
func (r *Repository) DB() *gorm.DB { return r.db }

func (r *Repository) AutoMigrate() error {
	return r.db.AutoMigrate(
		&identity.Identity{},
		&identity.Credential{},
		&identity.Session{},
		&school.User{},
		&school.Student{},
		&school.Teacher{},
		&school.Mark{},
		&school.Leave{},
		&school.DisciplineCase{},
		&school.Complaint{},
		&school.Announcement{},
		&school.Syllabus{},
	)
}

func wrapErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}

// --- identities ---

func (r *Repository) CreateIdentity(ctx context.Context, ident *identity.Identity) error {
	return r.db.WithContext(ctx).Create(ident).Error
}

func (r *Repository) DeleteIdentity(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx)
	if err := tx.Delete(&identity.Credential{}, "identity_id = ?", id).Error; err != nil {
		return err
	}
	if err := tx.Delete(&identity.Session{}, "identity_id = ?", id).Error; err != nil {
		return err
	}
	return tx.Delete(&identity.Identity{}, "id = ?", id).Error
}

func (r *Repository) GetCredentialByIdentifier(ctx context.Context, identifier, method string) (*identity.Credential, error) {
	var cred identity.Credential
	err := r.db.WithContext(ctx).
		Where("identifier = ? AND type = ?", identifier, method).
		First(&cred).Error
	if err != nil {
		return nil, wrapErr(err)
	}
	return &cred, nil
}

// --- sessions ---

func (r *Repository) CreateSession(ctx context.Context, s *identity.Session) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *Repository) GetSession(ctx context.Context, id string) (*identity.Session, error) {
	var s identity.Session
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &s, nil
}

func (r *Repository) GetSessionByRefreshToken(ctx context.Context, token string) (*identity.Session, error) {
	var s identity.Session
	if err := r.db.WithContext(ctx).First(&s, "refresh_token = ?", token).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &s, nil
}

func (r *Repository) DeleteSession(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&identity.Session{}, "id = ?", id).Error
}

// --- profile collections ---

func (r *Repository) GetUserDoc(ctx context.Context, id string) (*school.User, error) {
	var u school.User
	if err := r.db.WithContext(ctx).First(&u, "user_id = ?", id).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &u, nil
}

func (r *Repository) GetStudentDoc(ctx context.Context, id string) (*school.Student, error) {
	var s school.Student
	if err := r.db.WithContext(ctx).First(&s, "student_id = ?", id).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &s, nil
}

func (r *Repository) GetTeacherDoc(ctx context.Context, id string) (*school.Teacher, error) {
	var t school.Teacher
	if err := r.db.WithContext(ctx).First(&t, "teacher_id = ?", id).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &t, nil
}

// --- students ---

func (r *Repository) CreateStudent(ctx context.Context, s *school.Student) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *Repository) ListStudents(ctx context.Context) ([]school.Student, error) {
	var out []school.Student
	err := r.db.WithContext(ctx).
		Order("class_name, roll_no").
		Find(&out).Error
	return out, err
}

func (r *Repository) DeleteStudent(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&school.Student{}, "student_id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *Repository) UpdateStudentRating(ctx context.Context, id string, rating float64) error {
	return r.updateStudentField(ctx, id, "rating", rating)
}

func (r *Repository) UpdateFeeStatus(ctx context.Context, id, status string) error {
	return r.updateStudentField(ctx, id, "fee_status", status)
}

func (r *Repository) updateStudentField(ctx context.Context, id, column string, value interface{}) error {
	res := r.db.WithContext(ctx).
		Model(&school.Student{}).
		Where("student_id = ?", id).
		Update(column, value)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// --- staff ---

func (r *Repository) CreateUserDoc(ctx context.Context, u *school.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *Repository) DeleteUserDoc(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&school.User{}, "user_id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *Repository) CreateTeacherDoc(ctx context.Context, t *school.Teacher) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *Repository) ListTeachers(ctx context.Context) ([]school.Teacher, error) {
	var out []school.Teacher
	err := r.db.WithContext(ctx).Order("name").Find(&out).Error
	return out, err
}

func (r *Repository) DeleteTeacherDoc(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&school.Teacher{}, "teacher_id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *Repository) UpdateTeacherAssignment(ctx context.Context, id string, classes []string) error {
	raw, err := school.StringList(classes).Value()
	if err != nil {
		return err
	}
	res := r.db.WithContext(ctx).
		Model(&school.Teacher{}).
		Where("teacher_id = ?", id).
		Update("classes_assigned", raw)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// --- marks ---

func (r *Repository) UpsertMark(ctx context.Context, m *school.Mark) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(m).Error
}

func (r *Repository) ListMarks(ctx context.Context) ([]school.Mark, error) {
	var out []school.Mark
	err := r.db.WithContext(ctx).Order("class_name, student_id, subject").Find(&out).Error
	return out, err
}

func (r *Repository) ListMarksForStudent(ctx context.Context, studentID string) ([]school.Mark, error) {
	var out []school.Mark
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("subject").
		Find(&out).Error
	return out, err
}

// --- leaves ---

func (r *Repository) CreateLeave(ctx context.Context, l *school.Leave) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *Repository) ListLeaves(ctx context.Context, f domain.LeaveFilter) ([]school.Leave, error) {
	q := r.db.WithContext(ctx).Order("date_applied DESC")
	if f.StudentID != "" {
		q = q.Where("student_id = ?", f.StudentID)
	}
	if f.ClassName != "" {
		q = q.Where("class_name = ?", f.ClassName)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	var out []school.Leave
	err := q.Find(&out).Error
	return out, err
}

func (r *Repository) UpdateLeaveStatus(ctx context.Context, id, status string) error {
	res := r.db.WithContext(ctx).
		Model(&school.Leave{}).
		Where("leave_id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// --- discipline ---

func (r *Repository) CreateDisciplineCase(ctx context.Context, c *school.DisciplineCase) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *Repository) ListDisciplineCases(ctx context.Context) ([]school.DisciplineCase, error) {
	var out []school.DisciplineCase
	err := r.db.WithContext(ctx).Order("timestamp DESC").Find(&out).Error
	return out, err
}

// --- complaints ---

func (r *Repository) CreateComplaint(ctx context.Context, c *school.Complaint) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *Repository) ListComplaints(ctx context.Context) ([]school.Complaint, error) {
	var out []school.Complaint
	err := r.db.WithContext(ctx).Order("timestamp DESC").Find(&out).Error
	return out, err
}

// --- announcements ---

func (r *Repository) CreateAnnouncement(ctx context.Context, a *school.Announcement) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *Repository) ListAnnouncements(ctx context.Context, target string) ([]school.Announcement, error) {
	q := r.db.WithContext(ctx).Order("timestamp DESC")
	if target != "" && target != school.TargetAll {
		q = q.Where("target = ?", target)
	}
	var out []school.Announcement
	err := q.Find(&out).Error
	return out, err
}

// --- syllabus ---

func (r *Repository) CreateSyllabus(ctx context.Context, s *school.Syllabus) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *Repository) ListSyllabus(ctx context.Context, className string) ([]school.Syllabus, error) {
	q := r.db.WithContext(ctx).Order("timestamp DESC")
	if className != "" {
		q = q.Where("class_name = ?", className)
	}
	var out []school.Syllabus
	err := q.Find(&out).Error
	return out, err
}
