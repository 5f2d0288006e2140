package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Tarakreddy011/School-Management-App/domain"
	"github.com/Tarakreddy011/School-Management-App/logger"
	"github.com/Tarakreddy011/School-Management-App/profile"
	"github.com/Tarakreddy011/School-Management-App/rbac"
	"github.com/Tarakreddy011/School-Management-App/school"
	"go.uber.org/zap"
)

// NewStudent is the admission form for a student.
type NewStudent struct {
	Name        string `json:"name"`
	DOB         string `json:"dob"` // dd/mm/yyyy
	ClassName   string `json:"className"`
	RollNo      string `json:"rollNo"`
	ParentPhone string `json:"parentPhone"`
}

// StudentManager handles student admission, listing and the per-student
// fields an incharge maintains.
type StudentManager struct {
	store     domain.StudentStorage
	idents    domain.IdentityStorage
	registrar Registrar
}

func NewStudentManager(store domain.StudentStorage, idents domain.IdentityStorage, registrar Registrar) *StudentManager {
	return &StudentManager{store: store, idents: idents, registrar: registrar}
}

// Create admits a student: it derives login credentials from the admission
// form, registers the account, and writes the student document keyed by the
// new identity handle.
func (m *StudentManager) Create(ctx context.Context, actor *profile.Profile, in NewStudent) (*school.Student, error) {
	if err := rbac.Require(actor.Role, rbac.ActionCreateStudent); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.ClassName) == "" {
		return nil, fmt.Errorf("name and class are required")
	}

	email := StudentEmail(in.Name, in.ClassName)
	password := StudentPassword(in.DOB)

	ident, err := m.registrar.Register(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("register student account: %w", err)
	}

	student := &school.Student{
		StudentID:   ident.ID,
		Name:        strings.TrimSpace(in.Name),
		DOB:         in.DOB,
		ClassName:   strings.TrimSpace(in.ClassName),
		RollNo:      in.RollNo,
		ParentPhone: in.ParentPhone,
		FeeStatus:   school.FeePending,
		Rating:      0,
		Role:        string(profile.RoleStudent),
		Email:       email,
	}
	if err := m.store.CreateStudent(ctx, student); err != nil {
		// Roll back the account so the email is not left claimed.
		_ = m.idents.DeleteIdentity(ctx, ident.ID)
		return nil, fmt.Errorf("create student: %w", err)
	}

	logger.Log.Info("student admitted",
		zap.String("student_id", student.StudentID),
		zap.String("class", student.ClassName),
		zap.String("by", actor.ID),
	)
	return student, nil
}

// StudentFilter narrows a student listing. Zero-value fields are ignored.
type StudentFilter struct {
	ClassName string
	Name      string // case-insensitive substring
}

// List returns students for an authorized caller, optionally filtered by
// class and name.
func (m *StudentManager) List(ctx context.Context, actor *profile.Profile, f StudentFilter) ([]school.Student, error) {
	if err := rbac.Require(actor.Role, rbac.ActionViewStudents); err != nil {
		return nil, err
	}
	all, err := m.store.ListStudents(ctx)
	if err != nil {
		return nil, err
	}
	if f.ClassName == "" && f.Name == "" {
		return all, nil
	}
	name := strings.ToLower(f.Name)
	out := make([]school.Student, 0, len(all))
	for _, s := range all {
		if f.ClassName != "" && s.ClassName != f.ClassName {
			continue
		}
		if name != "" && !strings.Contains(strings.ToLower(s.Name), name) {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

// Delete removes the student document and the login account behind it.
func (m *StudentManager) Delete(ctx context.Context, actor *profile.Profile, studentID string) error {
	if err := rbac.Require(actor.Role, rbac.ActionDeleteStudent); err != nil {
		return err
	}
	if err := m.store.DeleteStudent(ctx, studentID); err != nil {
		return fmt.Errorf("delete student: %w", err)
	}
	return m.idents.DeleteIdentity(ctx, studentID)
}

// SetRating records a conduct rating, clamped to [0, 5].
func (m *StudentManager) SetRating(ctx context.Context, actor *profile.Profile, studentID string, rating float64) error {
	if err := rbac.Require(actor.Role, rbac.ActionEditRating); err != nil {
		return err
	}
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	return m.store.UpdateStudentRating(ctx, studentID, rating)
}

// SetFeeStatus flips a student's fee status between Pending and Paid.
func (m *StudentManager) SetFeeStatus(ctx context.Context, actor *profile.Profile, studentID, status string) error {
	if err := rbac.Require(actor.Role, rbac.ActionEditFeeStatus); err != nil {
		return err
	}
	if status != school.FeePending && status != school.FeePaid {
		return fmt.Errorf("invalid fee status %q", status)
	}
	return m.store.UpdateFeeStatus(ctx, studentID, status)
}

// StudentEmail derives the login email from the admission form: the name
// lowercased with spaces removed, followed by the class name.
func StudentEmail(name, className string) string {
	compact := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "")
	return compact + strings.TrimSpace(className) + "@gmail.com"
}

// StudentPassword derives the initial password from a dd/mm/yyyy birth date:
// day concatenated with year. Unparseable dates fall back to a fixed default
// the office hands out with the admission slip.
func StudentPassword(dob string) string {
	parts := strings.Split(strings.TrimSpace(dob), "/")
	if len(parts) == 3 && parts[0] != "" && parts[2] != "" {
		return parts[0] + parts[2]
	}
	return "123456"
}
