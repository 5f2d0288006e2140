package service

import (
	"context"

	"github.com/Tarakreddy011/School-Management-App/domain"
	"github.com/Tarakreddy011/School-Management-App/profile"
	"github.com/Tarakreddy011/School-Management-App/rbac"
	"github.com/Tarakreddy011/School-Management-App/school"
)

// Summary is the head-of-school dashboard: counts across the collections.
type Summary struct {
	Students        int `json:"students"`
	Teachers        int `json:"teachers"`
	PendingFees     int `json:"pendingFees"`
	PendingLeaves   int `json:"pendingLeaves"`
	OpenComplaints  int `json:"openComplaints"`
	DisciplineCases int `json:"disciplineCases"`
}

// SummaryStore is the slice of the storage layer the dashboard reads from.
type SummaryStore interface {
	domain.StudentStorage
	domain.TeacherStorage
	domain.LeaveStorage
	domain.ComplaintStorage
	domain.DisciplineStorage
}

// SummaryManager computes the dashboard counts for principal and hm.
type SummaryManager struct {
	store SummaryStore
}

func NewSummaryManager(store SummaryStore) *SummaryManager {
	return &SummaryManager{store: store}
}

func (m *SummaryManager) Summary(ctx context.Context, actor *profile.Profile) (*Summary, error) {
	if err := rbac.Require(actor.Role, rbac.ActionViewSummary); err != nil {
		return nil, err
	}

	students, err := m.store.ListStudents(ctx)
	if err != nil {
		return nil, err
	}
	teachers, err := m.store.ListTeachers(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := m.store.ListLeaves(ctx, domain.LeaveFilter{Status: school.LeavePending})
	if err != nil {
		return nil, err
	}
	complaints, err := m.store.ListComplaints(ctx)
	if err != nil {
		return nil, err
	}
	cases, err := m.store.ListDisciplineCases(ctx)
	if err != nil {
		return nil, err
	}

	pendingFees := 0
	for _, s := range students {
		if s.FeeStatus == school.FeePending {
			pendingFees++
		}
	}

	return &Summary{
		Students:        len(students),
		Teachers:        len(teachers),
		PendingFees:     pendingFees,
		PendingLeaves:   len(pending),
		OpenComplaints:  len(complaints),
		DisciplineCases: len(cases),
	}, nil
}
