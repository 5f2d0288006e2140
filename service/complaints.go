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

// ComplaintManager handles anonymous student complaints. The stored record
// carries only the complaint text and the student's class: the student's
// identity is deliberately never written, so not even the principal can
// trace a complaint back to its author.
type ComplaintManager struct {
	store domain.ComplaintStorage
	ids   domain.IDGenerator
}

func NewComplaintManager(store domain.ComplaintStorage) *ComplaintManager {
	return &ComplaintManager{store: store, ids: defaultIDs()}
}

// SetIDGenerator overrides the default UUID generator.
func (m *ComplaintManager) SetIDGenerator(gen domain.IDGenerator) { m.ids = gen }

// Submit files an anonymous complaint for the calling student's class.
func (m *ComplaintManager) Submit(ctx context.Context, actor *profile.Profile, message string) (*school.Complaint, error) {
	if err := rbac.Require(actor.Role, rbac.ActionSubmitComplaint); err != nil {
		return nil, err
	}
	if strings.TrimSpace(message) == "" {
		return nil, fmt.Errorf("message is required")
	}

	c := &school.Complaint{
		ComplaintID: m.ids(),
		Message:     message,
		ClassName:   actor.ClassName,
		Timestamp:   school.NowMillis(),
	}
	if err := m.store.CreateComplaint(ctx, c); err != nil {
		return nil, fmt.Errorf("file complaint: %w", err)
	}
	return c, nil
}

// List returns the complaints visible to the caller: principal and hm see
// everything, an incharge sees only their own class.
func (m *ComplaintManager) List(ctx context.Context, actor *profile.Profile) ([]school.Complaint, error) {
	if err := rbac.Require(actor.Role, rbac.ActionViewComplaints); err != nil {
		return nil, err
	}
	all, err := m.store.ListComplaints(ctx)
	if err != nil {
		return nil, err
	}
	return rbac.ScopeComplaints(actor, all), nil
}
