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

// SyllabusManager records syllabus progress per class and subject. Entries
// are append-only; the latest entry for a class+subject is the current
// position.
type SyllabusManager struct {
	store domain.SyllabusStorage
	ids   domain.IDGenerator
}

func NewSyllabusManager(store domain.SyllabusStorage) *SyllabusManager {
	return &SyllabusManager{store: store, ids: defaultIDs()}
}

// SetIDGenerator overrides the default UUID generator.
func (m *SyllabusManager) SetIDGenerator(gen domain.IDGenerator) { m.ids = gen }

// Update appends a progress entry. A teacher must be assigned to the class;
// hm and principal may update any class.
func (m *SyllabusManager) Update(ctx context.Context, actor *profile.Profile, className, subject, topic string) (*school.Syllabus, error) {
	if err := rbac.Require(actor.Role, rbac.ActionUpdateSyllabus); err != nil {
		return nil, err
	}
	if actor.Role == profile.RoleTeacher && !assignedTo(actor, className) {
		return nil, fmt.Errorf("%w: not assigned to class %s", domain.ErrUnauthorized, className)
	}
	if strings.TrimSpace(className) == "" || strings.TrimSpace(subject) == "" || strings.TrimSpace(topic) == "" {
		return nil, fmt.Errorf("class, subject and topic are required")
	}

	s := &school.Syllabus{
		SyllabusID: m.ids(),
		ClassName:  className,
		Subject:    subject,
		Topic:      topic,
		UpdatedBy:  actor.ID,
		Timestamp:  school.NowMillis(),
	}
	if err := m.store.CreateSyllabus(ctx, s); err != nil {
		return nil, fmt.Errorf("update syllabus: %w", err)
	}
	return s, nil
}

// List returns syllabus entries, optionally restricted to one class. Any
// signed-in user may read syllabus progress.
func (m *SyllabusManager) List(ctx context.Context, className string) ([]school.Syllabus, error) {
	return m.store.ListSyllabus(ctx, className)
}

func assignedTo(p *profile.Profile, className string) bool {
	for _, c := range p.ClassesAssigned {
		if c == className {
			return true
		}
	}
	return false
}
