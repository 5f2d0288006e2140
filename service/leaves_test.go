package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Tarakreddy011/School-Management-App/domain"
	"github.com/Tarakreddy011/School-Management-App/profile"
	"github.com/Tarakreddy011/School-Management-App/school"
)

func TestLeaveApplyForcesPendingAndActorFields(t *testing.T) {
	store := newMockStore()
	m := NewLeaveManager(store)

	student := &profile.Profile{ID: "s1", Name: "Ravi", Role: profile.RoleStudent, ClassName: "5"}
	leave, err := m.Apply(context.Background(), student, school.LeaveSick, "fever")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if leave.Status != school.LeavePending {
		t.Errorf("new applications must be Pending, got %q", leave.Status)
	}
	if leave.StudentID != "s1" || leave.StudentName != "Ravi" || leave.ClassName != "5" {
		t.Errorf("applicant fields must come from the caller, got %+v", leave)
	}
	if leave.DateApplied == 0 {
		t.Error("date applied must be stamped")
	}
}

func TestLeaveApplyValidation(t *testing.T) {
	store := newMockStore()
	m := NewLeaveManager(store)
	student := &profile.Profile{ID: "s1", Role: profile.RoleStudent, ClassName: "5"}

	if _, err := m.Apply(context.Background(), student, "Casual", "x"); err == nil {
		t.Error("unknown leave type must be rejected")
	}
	if _, err := m.Apply(context.Background(), student, school.LeaveSick, ""); err == nil {
		t.Error("empty reason must be rejected")
	}
	if len(store.leaves) != 0 {
		t.Error("rejected applications must not be stored")
	}
}

func TestLeaveApplyUnauthorized(t *testing.T) {
	store := newMockStore()
	m := NewLeaveManager(store)

	teacher := &profile.Profile{ID: "t1", Role: profile.RoleTeacher}
	_, err := m.Apply(context.Background(), teacher, school.LeaveSick, "x")
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if len(store.leaves) != 0 {
		t.Error("denied request must not reach the store")
	}
}

func TestLeaveListScoped(t *testing.T) {
	store := newMockStore()
	store.leaves["l1"] = &school.Leave{LeaveID: "l1", StudentID: "s1", ClassName: "5", Status: school.LeavePending}
	store.leaves["l2"] = &school.Leave{LeaveID: "l2", StudentID: "s2", ClassName: "7", Status: school.LeavePending}
	m := NewLeaveManager(store)

	student := &profile.Profile{ID: "s1", Role: profile.RoleStudent}
	got, err := m.List(context.Background(), student)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].LeaveID != "l1" {
		t.Errorf("student sees only their own applications, got %v", got)
	}

	incharge := &profile.Profile{ID: "i1", Role: profile.RoleIncharge, ClassName: "7"}
	got, err = m.List(context.Background(), incharge)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].LeaveID != "l2" {
		t.Errorf("incharge sees only their class, got %v", got)
	}

	// An incharge without a class gets an empty list, never everything.
	bare := &profile.Profile{ID: "i2", Role: profile.RoleIncharge}
	if got, _ := m.List(context.Background(), bare); len(got) != 0 {
		t.Errorf("incharge without class: expected empty, got %v", got)
	}

	if got, _ := m.List(context.Background(), hm); len(got) != 2 {
		t.Errorf("hm sees everything, got %v", got)
	}
}

func TestLeaveDecide(t *testing.T) {
	store := newMockStore()
	store.leaves["l1"] = &school.Leave{LeaveID: "l1", Status: school.LeavePending}
	m := NewLeaveManager(store)

	if err := m.Decide(context.Background(), hm, "l1", "Maybe"); err == nil {
		t.Error("only Accepted or Rejected are valid decisions")
	}

	student := &profile.Profile{ID: "s1", Role: profile.RoleStudent}
	if err := m.Decide(context.Background(), student, "l1", school.LeaveAccepted); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("student must not decide leaves, got %v", err)
	}
	if store.leaves["l1"].Status != school.LeavePending {
		t.Error("denied decision must not change the record")
	}

	if err := m.Decide(context.Background(), hm, "l1", school.LeaveAccepted); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.leaves["l1"].Status != school.LeaveAccepted {
		t.Errorf("status not updated, got %q", store.leaves["l1"].Status)
	}
}
