package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/Tarakreddy011/School-Management-App/domain"
	"github.com/Tarakreddy011/School-Management-App/school"
)

// Resolver maps an identity handle to its Profile by probing the profile
// collections in priority order.
type Resolver struct {
	store domain.ProfileStorage
}

func NewResolver(store domain.ProfileStorage) *Resolver {
	return &Resolver{store: store}
}

// Resolve returns the Profile for the given identity handle.
//
// The probe order is users, students, teachers; the first collection holding
// the handle determines the profile. Absence in all three yields
// domain.ErrProfileNotFound. Any store I/O failure wraps
// domain.ErrStoreUnavailable so callers can distinguish "no profile exists"
// from "could not check".
func (r *Resolver) Resolve(ctx context.Context, handle string) (*Profile, error) {
	if handle == "" {
		return nil, domain.ErrProfileNotFound
	}

	// 1. Unified users collection: principal, hm, and staff registered
	// after the schema was unified.
	u, err := r.store.GetUserDoc(ctx, handle)
	switch {
	case err == nil:
		return fromUserDoc(handle, u)
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("probing users: %w: %v", domain.ErrStoreUnavailable, err)
	}

	// 2. Students collection.
	s, err := r.store.GetStudentDoc(ctx, handle)
	switch {
	case err == nil:
		return fromStudentDoc(handle, s), nil
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("probing students: %w: %v", domain.ErrStoreUnavailable, err)
	}

	// 3. Legacy teachers collection, kept for accounts created before the
	// unified users collection existed.
	t, err := r.store.GetTeacherDoc(ctx, handle)
	switch {
	case err == nil:
		return fromTeacherDoc(handle, t)
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("probing teachers: %w: %v", domain.ErrStoreUnavailable, err)
	}

	return nil, domain.ErrProfileNotFound
}

// fromUserDoc builds a Profile from a users-collection record. The stored
// role string decides the role; a missing or unrecognized role is an error,
// never a silent default.
func fromUserDoc(handle string, u *school.User) (*Profile, error) {
	normalized := NormalizeRole(u.Role)
	if normalized == "" {
		return nil, fmt.Errorf("users record %s: role field missing: %w", handle, domain.ErrProfileNotFound)
	}
	role, ok := ParseRole(normalized)
	if !ok {
		return nil, fmt.Errorf("users record %s: unrecognized role %q: %w", handle, normalized, domain.ErrProfileNotFound)
	}

	p := &Profile{
		// Never trust a possibly-stale stored id.
		ID:      handle,
		Name:    u.Name,
		Role:    role,
		Email:   u.Email,
		Phone:   u.Phone,
		Subject: u.Subject,
	}
	// ClassName scopes both students and class incharges.
	p.ClassName = u.ClassName
	if role == RoleStudent {
		p.FeeStatus = u.FeeStatus
		if p.FeeStatus == "" {
			p.FeeStatus = school.FeePending
		}
		p.Rating = u.Rating
	} else {
		p.ClassesAssigned = []string(u.ClassesAssigned)
	}
	return p, nil
}

// fromStudentDoc builds a Profile from a students-collection record. The
// role is hard-set to student regardless of any stored role field.
func fromStudentDoc(handle string, s *school.Student) *Profile {
	fee := s.FeeStatus
	if fee == "" {
		fee = school.FeePending
	}
	return &Profile{
		ID:        handle,
		Name:      s.Name,
		Role:      RoleStudent,
		Email:     s.Email,
		ClassName: s.ClassName,
		FeeStatus: fee,
		Rating:    s.Rating,
	}
}

// fromTeacherDoc builds a Profile from a legacy teachers-collection record.
// An empty role defaults to teacher; the assigned-class list is parsed
// defensively, keeping only string elements in their original order.
func fromTeacherDoc(handle string, t *school.Teacher) (*Profile, error) {
	normalized := NormalizeRole(t.Role)
	if normalized == "" {
		normalized = string(RoleTeacher)
	}
	role, ok := ParseRole(normalized)
	if !ok {
		return nil, fmt.Errorf("teachers record %s: unrecognized role %q: %w", handle, normalized, domain.ErrProfileNotFound)
	}

	return &Profile{
		ID:              handle,
		Name:            t.Name,
		Role:            role,
		Email:           t.Email,
		Phone:           t.Phone,
		Subject:         t.Subject,
		ClassesAssigned: t.ClassesAssigned.Strings(),
	}, nil
}
