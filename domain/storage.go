// Package domain defines the storage contracts and error taxonomy shared by
// the authentication, profile and feature layers.
//
// All persistence goes through these interfaces; the persistence package
// provides a GORM-backed implementation, and tests substitute in-memory
// mocks. Read methods return ErrNotFound for missing records; any other
// error indicates the store could not be checked.
package domain

import (
	"context"

	"github.com/Tarakreddy011/School-Management-App/identity"
	"github.com/Tarakreddy011/School-Management-App/school"
)

// Storage is the composite interface implemented by the persistence layer.
type Storage interface {
	IdentityStorage
	SessionStorage
	ProfileStorage
	StudentStorage
	TeacherStorage
	MarkStorage
	LeaveStorage
	DisciplineStorage
	ComplaintStorage
	AnnouncementStorage
	SyllabusStorage
}

// IdentityStorage persists accounts and credentials.
type IdentityStorage interface {
	CreateIdentity(ctx context.Context, ident *identity.Identity) error
	DeleteIdentity(ctx context.Context, id string) error
	GetCredentialByIdentifier(ctx context.Context, identifier, method string) (*identity.Credential, error)
}

// SessionStorage persists token sessions for the database session strategy.
type SessionStorage interface {
	CreateSession(ctx context.Context, s *identity.Session) error
	GetSession(ctx context.Context, id string) (*identity.Session, error)
	GetSessionByRefreshToken(ctx context.Context, token string) (*identity.Session, error)
	DeleteSession(ctx context.Context, id string) error
}

// ProfileStorage exposes the three collections probed during role
// resolution. Each lookup is keyed by identity handle.
type ProfileStorage interface {
	GetUserDoc(ctx context.Context, id string) (*school.User, error)
	GetStudentDoc(ctx context.Context, id string) (*school.Student, error)
	GetTeacherDoc(ctx context.Context, id string) (*school.Teacher, error)
}

type StudentStorage interface {
	CreateStudent(ctx context.Context, s *school.Student) error
	ListStudents(ctx context.Context) ([]school.Student, error)
	DeleteStudent(ctx context.Context, id string) error
	UpdateStudentRating(ctx context.Context, id string, rating float64) error
	UpdateFeeStatus(ctx context.Context, id, status string) error
}

type TeacherStorage interface {
	CreateUserDoc(ctx context.Context, u *school.User) error
	DeleteUserDoc(ctx context.Context, id string) error
	CreateTeacherDoc(ctx context.Context, t *school.Teacher) error
	ListTeachers(ctx context.Context) ([]school.Teacher, error)
	DeleteTeacherDoc(ctx context.Context, id string) error
	UpdateTeacherAssignment(ctx context.Context, id string, classes []string) error
}

type MarkStorage interface {
	UpsertMark(ctx context.Context, m *school.Mark) error
	ListMarks(ctx context.Context) ([]school.Mark, error)
	ListMarksForStudent(ctx context.Context, studentID string) ([]school.Mark, error)
}

// LeaveFilter narrows leave listings. Zero-value fields are ignored.
// Results are always ordered by date applied, newest first.
type LeaveFilter struct {
	StudentID string
	ClassName string
	Status    string
}

type LeaveStorage interface {
	CreateLeave(ctx context.Context, l *school.Leave) error
	ListLeaves(ctx context.Context, f LeaveFilter) ([]school.Leave, error)
	UpdateLeaveStatus(ctx context.Context, id, status string) error
}

type DisciplineStorage interface {
	CreateDisciplineCase(ctx context.Context, c *school.DisciplineCase) error
	ListDisciplineCases(ctx context.Context) ([]school.DisciplineCase, error)
}

type ComplaintStorage interface {
	CreateComplaint(ctx context.Context, c *school.Complaint) error
	ListComplaints(ctx context.Context) ([]school.Complaint, error)
}

type AnnouncementStorage interface {
	CreateAnnouncement(ctx context.Context, a *school.Announcement) error
	// ListAnnouncements returns entries newest first. A target other than
	// "" or "all" restricts the result to that target.
	ListAnnouncements(ctx context.Context, target string) ([]school.Announcement, error)
}

type SyllabusStorage interface {
	CreateSyllabus(ctx context.Context, s *school.Syllabus) error
	ListSyllabus(ctx context.Context, className string) ([]school.Syllabus, error)
}

// IDGenerator is a function that generates a new record id.
type IDGenerator func() string

// Hasher defines the interface for password hashing and verification.
type Hasher interface {
	Hash(password string) (string, error)
	Compare(password, hash string) bool
}
