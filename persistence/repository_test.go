package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/Tarakreddy011/School-Management-App/domain"
	"github.com/Tarakreddy011/School-Management-App/school"
)

func newTestStorage(t *testing.T) domain.Storage {
	t.Helper()
	store, err := NewStorage("sqlite", ":memory:", nil)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	return store
}

func TestStudentRoundTrip(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	err := store.CreateStudent(ctx, &school.Student{
		StudentID: "s1", Name: "Ravi", ClassName: "5", FeeStatus: school.FeePending,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := store.UpdateStudentRating(ctx, "s1", 4.5); err != nil {
		t.Fatalf("rating: %v", err)
	}
	if err := store.UpdateFeeStatus(ctx, "s1", school.FeePaid); err != nil {
		t.Fatalf("fee: %v", err)
	}

	got, err := store.GetStudentDoc(ctx, "s1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Rating != 4.5 {
		t.Errorf("rating must survive the round trip exactly, got %v", got.Rating)
	}
	if got.FeeStatus != school.FeePaid {
		t.Errorf("fee status: got %q", got.FeeStatus)
	}

	if err := store.UpdateStudentRating(ctx, "missing", 1); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("updating a missing student: expected ErrNotFound, got %v", err)
	}
}

func TestTeacherAssignmentRoundTrip(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	err := store.CreateTeacherDoc(ctx, &school.Teacher{
		TeacherID: "t1", Name: "Meena", Role: "teacher",
		ClassesAssigned: school.RawList(`["5", 7, "LKG"]`),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Heterogeneous legacy lists survive storage and parse defensively.
	got, err := store.GetTeacherDoc(ctx, "t1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if classes := got.ClassesAssigned.Strings(); len(classes) != 2 || classes[0] != "5" || classes[1] != "LKG" {
		t.Errorf("defensive parse: got %v", classes)
	}

	if err := store.UpdateTeacherAssignment(ctx, "t1", []string{"3", "4"}); err != nil {
		t.Fatalf("assign: %v", err)
	}
	got, _ = store.GetTeacherDoc(ctx, "t1")
	if classes := got.ClassesAssigned.Strings(); len(classes) != 2 || classes[0] != "3" {
		t.Errorf("assignment: got %v", classes)
	}
}

func TestMarkUpsert(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	m := &school.Mark{ID: "s1_Maths", StudentID: "s1", ClassName: "5", Subject: "Maths", SlipTest: 15}
	if err := store.UpsertMark(ctx, m); err != nil {
		t.Fatalf("insert: %v", err)
	}
	m.SlipTest = 19
	if err := store.UpsertMark(ctx, m); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	rows, err := store.ListMarksForStudent(ctx, "s1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected one row after upsert, got %d", len(rows))
	}
	if rows[0].SlipTest != 19 {
		t.Errorf("upsert must overwrite, got %d", rows[0].SlipTest)
	}
}

func TestLeaveFilterAndOrder(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	for _, l := range []*school.Leave{
		{LeaveID: "l1", StudentID: "s1", ClassName: "5", Status: school.LeavePending, DateApplied: 100},
		{LeaveID: "l2", StudentID: "s2", ClassName: "5", Status: school.LeaveAccepted, DateApplied: 300},
		{LeaveID: "l3", StudentID: "s3", ClassName: "7", Status: school.LeavePending, DateApplied: 200},
	} {
		if err := store.CreateLeave(ctx, l); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	got, err := store.ListLeaves(ctx, domain.LeaveFilter{ClassName: "5"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 || got[0].LeaveID != "l2" {
		t.Errorf("class filter, newest first: got %v", got)
	}

	got, _ = store.ListLeaves(ctx, domain.LeaveFilter{Status: school.LeavePending})
	if len(got) != 2 || got[0].LeaveID != "l3" {
		t.Errorf("status filter, newest first: got %v", got)
	}
}

func TestAnnouncementTargetFilter(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	for _, a := range []*school.Announcement{
		{AnnounceID: "a1", Target: school.TargetAll, Message: "m1", Timestamp: 1},
		{AnnounceID: "a2", Target: school.TargetTrio, Message: "m2", Timestamp: 2},
	} {
		if err := store.CreateAnnouncement(ctx, a); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	got, err := store.ListAnnouncements(ctx, school.TargetTrio)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].AnnounceID != "a2" {
		t.Errorf("target filter: got %v", got)
	}
	if got, _ := store.ListAnnouncements(ctx, ""); len(got) != 2 {
		t.Errorf("empty target lists everything, got %v", got)
	}
}

func TestMissingRecordsMapToNotFound(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	if _, err := store.GetUserDoc(ctx, "nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("user: expected ErrNotFound, got %v", err)
	}
	if _, err := store.GetCredentialByIdentifier(ctx, "nope@x.test", "password"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("credential: expected ErrNotFound, got %v", err)
	}
	if _, err := store.GetSession(ctx, "nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("session: expected ErrNotFound, got %v", err)
	}
}
