package service

import (
	"context"
	"fmt"

	"github.com/Tarakreddy011/School-Management-App/domain"
	"github.com/Tarakreddy011/School-Management-App/logger"
	"github.com/Tarakreddy011/School-Management-App/profile"
	"github.com/Tarakreddy011/School-Management-App/rbac"
	"github.com/Tarakreddy011/School-Management-App/school"
	"go.uber.org/zap"
)

// LeaveManager handles student leave applications and their approval.
type LeaveManager struct {
	store domain.LeaveStorage
	ids   domain.IDGenerator
}

func NewLeaveManager(store domain.LeaveStorage) *LeaveManager {
	return &LeaveManager{store: store, ids: defaultIDs()}
}

// SetIDGenerator overrides the default UUID generator.
func (m *LeaveManager) SetIDGenerator(gen domain.IDGenerator) { m.ids = gen }

// Apply files a leave application for the calling student. The application
// is always stored as Pending with the caller's identity and class; none of
// those fields are taken from the request.
func (m *LeaveManager) Apply(ctx context.Context, actor *profile.Profile, leaveType, reason string) (*school.Leave, error) {
	if err := rbac.Require(actor.Role, rbac.ActionApplyLeave); err != nil {
		return nil, err
	}
	if leaveType != school.LeaveSick && leaveType != school.LeaveHoliday {
		return nil, fmt.Errorf("invalid leave type %q", leaveType)
	}
	if reason == "" {
		return nil, fmt.Errorf("reason is required")
	}

	leave := &school.Leave{
		LeaveID:     m.ids(),
		StudentID:   actor.ID,
		StudentName: actor.Name,
		ClassName:   actor.ClassName,
		Type:        leaveType,
		Reason:      reason,
		Status:      school.LeavePending,
		DateApplied: school.NowMillis(),
	}
	if err := m.store.CreateLeave(ctx, leave); err != nil {
		return nil, fmt.Errorf("file leave: %w", err)
	}
	return leave, nil
}

// List returns the leave applications visible to the caller, newest first.
func (m *LeaveManager) List(ctx context.Context, actor *profile.Profile) ([]school.Leave, error) {
	if err := rbac.Require(actor.Role, rbac.ActionViewLeaves); err != nil {
		return nil, err
	}
	switch actor.Role {
	case profile.RoleStudent:
		return m.store.ListLeaves(ctx, domain.LeaveFilter{StudentID: actor.ID})
	case profile.RoleIncharge:
		if actor.ClassName == "" {
			return nil, nil
		}
		return m.store.ListLeaves(ctx, domain.LeaveFilter{ClassName: actor.ClassName})
	default:
		return m.store.ListLeaves(ctx, domain.LeaveFilter{})
	}
}

// Decide accepts or rejects a pending application.
func (m *LeaveManager) Decide(ctx context.Context, actor *profile.Profile, leaveID, status string) error {
	if err := rbac.Require(actor.Role, rbac.ActionApproveLeave); err != nil {
		return err
	}
	if status != school.LeaveAccepted && status != school.LeaveRejected {
		return fmt.Errorf("invalid leave decision %q", status)
	}
	if err := m.store.UpdateLeaveStatus(ctx, leaveID, status); err != nil {
		return err
	}
	logger.Log.Info("leave decided",
		zap.String("leave_id", leaveID),
		zap.String("status", status),
		zap.String("by", actor.ID),
	)
	return nil
}
