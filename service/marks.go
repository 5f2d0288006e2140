package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Tarakreddy011/School-Management-App/domain"
	"github.com/Tarakreddy011/School-Management-App/profile"
	"github.com/Tarakreddy011/School-Management-App/rbac"
	"github.com/Tarakreddy011/School-Management-App/school"
)

// MarkEntry is one subject's marks for one student as entered by a teacher.
type MarkEntry struct {
	StudentID string `json:"studentId"`
	ClassName string `json:"className"`
	Subject   string `json:"subject"`
	SlipTest  int    `json:"slipTest"`
	FA1       int    `json:"fa1"`
	FA2       int    `json:"fa2"`
	FA3       int    `json:"fa3"`
	FA4       int    `json:"fa4"`
	SA1       int    `json:"sa1"`
	SA2       int    `json:"sa2"`
}

// MarkManager records and serves subject marks. Records are keyed by
// student and subject, so re-entering marks overwrites the previous row.
type MarkManager struct {
	store domain.MarkStorage
}

func NewMarkManager(store domain.MarkStorage) *MarkManager {
	return &MarkManager{store: store}
}

// Enter upserts one student's marks for a subject. The caller must hold the
// marks-edit permission and be assigned to the class (and subject, for
// subject teachers).
func (m *MarkManager) Enter(ctx context.Context, actor *profile.Profile, in MarkEntry) (*school.Mark, error) {
	if err := rbac.Require(actor.Role, rbac.ActionEditMarks); err != nil {
		return nil, err
	}
	if !rbac.CanEditMarks(actor, in.ClassName, in.Subject) {
		return nil, fmt.Errorf("%w: not assigned to class %s for %s", domain.ErrUnauthorized, in.ClassName, in.Subject)
	}
	if strings.TrimSpace(in.StudentID) == "" || strings.TrimSpace(in.Subject) == "" {
		return nil, fmt.Errorf("student and subject are required")
	}
	if err := validateMarks(in); err != nil {
		return nil, err
	}

	mark := &school.Mark{
		ID:        in.StudentID + "_" + in.Subject,
		StudentID: in.StudentID,
		ClassName: in.ClassName,
		Subject:   in.Subject,
		SlipTest:  in.SlipTest,
		FA1:       in.FA1,
		FA2:       in.FA2,
		FA3:       in.FA3,
		FA4:       in.FA4,
		SA1:       in.SA1,
		SA2:       in.SA2,
	}
	if err := m.store.UpsertMark(ctx, mark); err != nil {
		return nil, fmt.Errorf("save marks: %w", err)
	}
	return mark, nil
}

// List returns the marks visible to the caller: a student sees their own
// rows, teaching staff see their assigned classes, hm and principal see all.
func (m *MarkManager) List(ctx context.Context, actor *profile.Profile) ([]school.Mark, error) {
	switch {
	case actor.Role == profile.RoleStudent:
		if err := rbac.Require(actor.Role, rbac.ActionViewOwnMarks); err != nil {
			return nil, err
		}
		return m.store.ListMarksForStudent(ctx, actor.ID)
	case actor.Role == profile.RolePrincipal || actor.Role.Teaching():
		all, err := m.store.ListMarks(ctx)
		if err != nil {
			return nil, err
		}
		return rbac.ScopeMarks(actor, all), nil
	default:
		return nil, fmt.Errorf("%w: %s may not view marks", domain.ErrUnauthorized, actor.Role)
	}
}

func validateMarks(in MarkEntry) error {
	for _, v := range []int{in.SlipTest, in.FA1, in.FA2, in.FA3, in.FA4, in.SA1, in.SA2} {
		if v < 0 {
			return fmt.Errorf("marks cannot be negative")
		}
	}
	if in.SlipTest > 20 {
		return fmt.Errorf("slip test is out of 20")
	}
	if in.SA1 > 40 || in.SA2 > 40 {
		return fmt.Errorf("summative marks are out of 40")
	}
	return nil
}
