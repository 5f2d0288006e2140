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

// DisciplineManager logs and lists discipline incidents.
type DisciplineManager struct {
	store domain.DisciplineStorage
	ids   domain.IDGenerator
}

func NewDisciplineManager(store domain.DisciplineStorage) *DisciplineManager {
	return &DisciplineManager{store: store, ids: defaultIDs()}
}

// SetIDGenerator overrides the default UUID generator.
func (m *DisciplineManager) SetIDGenerator(gen domain.IDGenerator) { m.ids = gen }

// Log records an incident against a student. The reporter is taken from the
// caller's identity, never from the request.
func (m *DisciplineManager) Log(ctx context.Context, actor *profile.Profile, studentID, studentName, level, description string) (*school.DisciplineCase, error) {
	if err := rbac.Require(actor.Role, rbac.ActionLogDiscipline); err != nil {
		return nil, err
	}
	if level != school.LevelMinor && level != school.LevelMajor {
		return nil, fmt.Errorf("invalid case level %q", level)
	}
	if strings.TrimSpace(studentID) == "" || strings.TrimSpace(description) == "" {
		return nil, fmt.Errorf("student and description are required")
	}

	c := &school.DisciplineCase{
		CaseID:      m.ids(),
		StudentID:   studentID,
		StudentName: studentName,
		Level:       level,
		Description: description,
		CreatedBy:   actor.ID,
		Timestamp:   school.NowMillis(),
	}
	if err := m.store.CreateDisciplineCase(ctx, c); err != nil {
		return nil, fmt.Errorf("log case: %w", err)
	}
	return c, nil
}

// List returns all logged cases, newest first.
func (m *DisciplineManager) List(ctx context.Context, actor *profile.Profile) ([]school.DisciplineCase, error) {
	if err := rbac.Require(actor.Role, rbac.ActionViewDiscipline); err != nil {
		return nil, err
	}
	return m.store.ListDisciplineCases(ctx)
}
