package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Tarakreddy011/School-Management-App/domain"
	"github.com/Tarakreddy011/School-Management-App/logger"
	"github.com/Tarakreddy011/School-Management-App/profile"
	"github.com/Tarakreddy011/School-Management-App/rbac"
	"github.com/Tarakreddy011/School-Management-App/school"
	"go.uber.org/zap"
)

// NewStaff is the onboarding form for a staff member.
type NewStaff struct {
	Name            string   `json:"name"`
	Role            string   `json:"role"` // teacher, hm, incharge, trio
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	Password        string   `json:"password"`
	Subject         string   `json:"subject"`
	ClassName       string   `json:"className"` // incharge only
	ClassesAssigned []string `json:"classesAssigned"`
}

// StaffManager handles staff onboarding, listing, class assignment and
// removal. Staff records live in the unified users collection; teacher and
// hm records are additionally mirrored into the legacy teachers collection
// so older clients keep resolving them.
type StaffManager struct {
	store     domain.TeacherStorage
	idents    domain.IdentityStorage
	registrar Registrar
}

func NewStaffManager(store domain.TeacherStorage, idents domain.IdentityStorage, registrar Registrar) *StaffManager {
	return &StaffManager{store: store, idents: idents, registrar: registrar}
}

// Add onboards a staff member. Only the principal may do this, and only
// staff roles are accepted.
func (m *StaffManager) Add(ctx context.Context, actor *profile.Profile, in NewStaff) (*school.User, error) {
	if err := rbac.Require(actor.Role, rbac.ActionCreateStaff); err != nil {
		return nil, err
	}

	role, ok := profile.ParseRole(in.Role)
	if !ok {
		return nil, fmt.Errorf("unknown staff role %q", in.Role)
	}
	switch role {
	case profile.RoleStudent, profile.RolePrincipal:
		return nil, fmt.Errorf("%s is not a staff role that can be onboarded", role)
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("name is required")
	}

	password := in.Password
	if password == "" {
		password = "123456"
	}
	ident, err := m.registrar.Register(ctx, in.Email, password)
	if err != nil {
		return nil, fmt.Errorf("register staff account: %w", err)
	}

	user := &school.User{
		UserID:          ident.ID,
		Name:            strings.TrimSpace(in.Name),
		Role:            string(role),
		Email:           strings.TrimSpace(in.Email),
		Phone:           in.Phone,
		Subject:         in.Subject,
		ClassName:       in.ClassName,
		ClassesAssigned: school.StringList(in.ClassesAssigned),
	}
	if err := m.store.CreateUserDoc(ctx, user); err != nil {
		_ = m.idents.DeleteIdentity(ctx, ident.ID)
		return nil, fmt.Errorf("create staff record: %w", err)
	}

	// Mirror teachers and hms into the legacy collection.
	if role == profile.RoleTeacher || role == profile.RoleHM {
		classes, _ := json.Marshal(in.ClassesAssigned)
		mirror := &school.Teacher{
			TeacherID:       ident.ID,
			Name:            user.Name,
			Role:            string(role),
			Subject:         in.Subject,
			ClassesAssigned: school.RawList(classes),
			Email:           user.Email,
			Phone:           in.Phone,
		}
		if err := m.store.CreateTeacherDoc(ctx, mirror); err != nil {
			return nil, fmt.Errorf("mirror staff record: %w", err)
		}
	}

	logger.Log.Info("staff onboarded",
		zap.String("staff_id", user.UserID),
		zap.String("role", user.Role),
		zap.String("by", actor.ID),
	)
	return user, nil
}

// List returns the teaching staff roster.
func (m *StaffManager) List(ctx context.Context, actor *profile.Profile) ([]school.Teacher, error) {
	if err := rbac.Require(actor.Role, rbac.ActionViewTeachers); err != nil {
		return nil, err
	}
	return m.store.ListTeachers(ctx)
}

// AssignClasses replaces a teacher's class assignment list.
func (m *StaffManager) AssignClasses(ctx context.Context, actor *profile.Profile, teacherID string, classes []string) error {
	if err := rbac.Require(actor.Role, rbac.ActionAssignClasses); err != nil {
		return err
	}
	return m.store.UpdateTeacherAssignment(ctx, teacherID, classes)
}

// Remove deletes a staff member from both collections and removes the login
// account. Missing legacy mirrors are not an error.
func (m *StaffManager) Remove(ctx context.Context, actor *profile.Profile, staffID string) error {
	if err := rbac.Require(actor.Role, rbac.ActionDeleteStaff); err != nil {
		return err
	}
	if err := m.store.DeleteUserDoc(ctx, staffID); err != nil {
		return fmt.Errorf("delete staff record: %w", err)
	}
	if err := m.store.DeleteTeacherDoc(ctx, staffID); err != nil && !isNotFound(err) {
		return fmt.Errorf("delete legacy record: %w", err)
	}
	return m.idents.DeleteIdentity(ctx, staffID)
}

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
