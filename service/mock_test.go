package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/Tarakreddy011/School-Management-App/domain"
	"github.com/Tarakreddy011/School-Management-App/identity"
	"github.com/Tarakreddy011/School-Management-App/school"
)

// mockStore is an in-memory implementation of the storage interfaces the
// managers use.
type mockStore struct {
	identities map[string]*identity.Identity
	users      map[string]*school.User
	students   map[string]*school.Student
	teachers   map[string]*school.Teacher
	marks      map[string]*school.Mark
	leaves     map[string]*school.Leave
	cases      []school.DisciplineCase
	complaints []school.Complaint
	announces  []school.Announcement
	syllabus   []school.Syllabus

	failWrites bool
}

func newMockStore() *mockStore {
	return &mockStore{
		identities: map[string]*identity.Identity{},
		users:      map[string]*school.User{},
		students:   map[string]*school.Student{},
		teachers:   map[string]*school.Teacher{},
		marks:      map[string]*school.Mark{},
		leaves:     map[string]*school.Leave{},
	}
}

func (s *mockStore) write() error {
	if s.failWrites {
		return fmt.Errorf("mock: writes disabled")
	}
	return nil
}

func (s *mockStore) CreateIdentity(_ context.Context, ident *identity.Identity) error {
	if err := s.write(); err != nil {
		return err
	}
	s.identities[ident.ID] = ident
	return nil
}

func (s *mockStore) DeleteIdentity(_ context.Context, id string) error {
	delete(s.identities, id)
	return nil
}

func (s *mockStore) GetCredentialByIdentifier(_ context.Context, identifier, method string) (*identity.Credential, error) {
	for _, ident := range s.identities {
		for i := range ident.Credentials {
			c := &ident.Credentials[i]
			if c.Identifier == identifier && c.Type == method {
				return c, nil
			}
		}
	}
	return nil, domain.ErrNotFound
}

func (s *mockStore) CreateStudent(_ context.Context, st *school.Student) error {
	if err := s.write(); err != nil {
		return err
	}
	s.students[st.StudentID] = st
	return nil
}

func (s *mockStore) ListStudents(_ context.Context) ([]school.Student, error) {
	out := make([]school.Student, 0, len(s.students))
	for _, st := range s.students {
		out = append(out, *st)
	}
	return out, nil
}

func (s *mockStore) DeleteStudent(_ context.Context, id string) error {
	if _, ok := s.students[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.students, id)
	return nil
}

func (s *mockStore) UpdateStudentRating(_ context.Context, id string, rating float64) error {
	st, ok := s.students[id]
	if !ok {
		return domain.ErrNotFound
	}
	st.Rating = rating
	return nil
}

func (s *mockStore) UpdateFeeStatus(_ context.Context, id, status string) error {
	st, ok := s.students[id]
	if !ok {
		return domain.ErrNotFound
	}
	st.FeeStatus = status
	return nil
}

func (s *mockStore) CreateUserDoc(_ context.Context, u *school.User) error {
	if err := s.write(); err != nil {
		return err
	}
	s.users[u.UserID] = u
	return nil
}

func (s *mockStore) DeleteUserDoc(_ context.Context, id string) error {
	if _, ok := s.users[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.users, id)
	return nil
}

func (s *mockStore) CreateTeacherDoc(_ context.Context, t *school.Teacher) error {
	if err := s.write(); err != nil {
		return err
	}
	s.teachers[t.TeacherID] = t
	return nil
}

func (s *mockStore) ListTeachers(_ context.Context) ([]school.Teacher, error) {
	out := make([]school.Teacher, 0, len(s.teachers))
	for _, t := range s.teachers {
		out = append(out, *t)
	}
	return out, nil
}

func (s *mockStore) DeleteTeacherDoc(_ context.Context, id string) error {
	if _, ok := s.teachers[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.teachers, id)
	return nil
}

func (s *mockStore) UpdateTeacherAssignment(_ context.Context, id string, classes []string) error {
	t, ok := s.teachers[id]
	if !ok {
		return domain.ErrNotFound
	}
	raw := "["
	for i, c := range classes {
		if i > 0 {
			raw += ","
		}
		raw += fmt.Sprintf("%q", c)
	}
	raw += "]"
	t.ClassesAssigned = school.RawList(raw)
	return nil
}

func (s *mockStore) UpsertMark(_ context.Context, m *school.Mark) error {
	if err := s.write(); err != nil {
		return err
	}
	s.marks[m.ID] = m
	return nil
}

func (s *mockStore) ListMarks(_ context.Context) ([]school.Mark, error) {
	out := make([]school.Mark, 0, len(s.marks))
	for _, m := range s.marks {
		out = append(out, *m)
	}
	return out, nil
}

func (s *mockStore) ListMarksForStudent(_ context.Context, studentID string) ([]school.Mark, error) {
	var out []school.Mark
	for _, m := range s.marks {
		if m.StudentID == studentID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (s *mockStore) CreateLeave(_ context.Context, l *school.Leave) error {
	if err := s.write(); err != nil {
		return err
	}
	s.leaves[l.LeaveID] = l
	return nil
}

func (s *mockStore) ListLeaves(_ context.Context, f domain.LeaveFilter) ([]school.Leave, error) {
	var out []school.Leave
	for _, l := range s.leaves {
		if f.StudentID != "" && l.StudentID != f.StudentID {
			continue
		}
		if f.ClassName != "" && l.ClassName != f.ClassName {
			continue
		}
		if f.Status != "" && l.Status != f.Status {
			continue
		}
		out = append(out, *l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DateApplied > out[j].DateApplied })
	return out, nil
}

func (s *mockStore) UpdateLeaveStatus(_ context.Context, id, status string) error {
	l, ok := s.leaves[id]
	if !ok {
		return domain.ErrNotFound
	}
	l.Status = status
	return nil
}

func (s *mockStore) CreateDisciplineCase(_ context.Context, c *school.DisciplineCase) error {
	if err := s.write(); err != nil {
		return err
	}
	s.cases = append(s.cases, *c)
	return nil
}

func (s *mockStore) ListDisciplineCases(_ context.Context) ([]school.DisciplineCase, error) {
	return append([]school.DisciplineCase(nil), s.cases...), nil
}

func (s *mockStore) CreateComplaint(_ context.Context, c *school.Complaint) error {
	if err := s.write(); err != nil {
		return err
	}
	s.complaints = append(s.complaints, *c)
	return nil
}

func (s *mockStore) ListComplaints(_ context.Context) ([]school.Complaint, error) {
	return append([]school.Complaint(nil), s.complaints...), nil
}

func (s *mockStore) CreateAnnouncement(_ context.Context, a *school.Announcement) error {
	if err := s.write(); err != nil {
		return err
	}
	s.announces = append(s.announces, *a)
	return nil
}

func (s *mockStore) ListAnnouncements(_ context.Context, target string) ([]school.Announcement, error) {
	if target == "" || target == school.TargetAll {
		return append([]school.Announcement(nil), s.announces...), nil
	}
	var out []school.Announcement
	for _, a := range s.announces {
		if a.Target == target {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *mockStore) CreateSyllabus(_ context.Context, sy *school.Syllabus) error {
	if err := s.write(); err != nil {
		return err
	}
	s.syllabus = append(s.syllabus, *sy)
	return nil
}

func (s *mockStore) ListSyllabus(_ context.Context, className string) ([]school.Syllabus, error) {
	var out []school.Syllabus
	for _, sy := range s.syllabus {
		if className == "" || sy.ClassName == className {
			out = append(out, sy)
		}
	}
	return out, nil
}

// mockRegistrar hands out sequential identity handles.
type mockRegistrar struct {
	store  *mockStore
	next   int
	emails []string
	pwds   []string
}

func (r *mockRegistrar) Register(ctx context.Context, email, password string) (*identity.Identity, error) {
	r.next++
	r.emails = append(r.emails, email)
	r.pwds = append(r.pwds, password)
	ident := &identity.Identity{ID: fmt.Sprintf("id-%d", r.next)}
	if r.store != nil {
		if err := r.store.CreateIdentity(ctx, ident); err != nil {
			return nil, err
		}
	}
	return ident, nil
}
