package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/Tarakreddy011/School-Management-App/domain"
	"github.com/Tarakreddy011/School-Management-App/profile"
)

func TestComplaintAnonymity(t *testing.T) {
	store := newMockStore()
	m := NewComplaintManager(store)

	student := &profile.Profile{ID: "s-secret", Name: "Ravi", Role: profile.RoleStudent, ClassName: "5"}
	c, err := m.Submit(context.Background(), student, "the fan is broken")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.ClassName != "5" {
		t.Errorf("class must be recorded for routing, got %q", c.ClassName)
	}

	// Nothing serialized from the record may identify the author.
	b, _ := json.Marshal(c)
	if strings.Contains(string(b), "s-secret") || strings.Contains(string(b), "Ravi") {
		t.Errorf("stored complaint leaks the author: %s", b)
	}
}

func TestComplaintSubmitOnlyStudents(t *testing.T) {
	store := newMockStore()
	m := NewComplaintManager(store)

	incharge := &profile.Profile{ID: "i1", Role: profile.RoleIncharge, ClassName: "5"}
	if _, err := m.Submit(context.Background(), incharge, "x"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized, got %v", err)
	}
	if len(store.complaints) != 0 {
		t.Error("denied request must not reach the store")
	}
}

func TestComplaintListScoped(t *testing.T) {
	store := newMockStore()
	m := NewComplaintManager(store)

	for _, s := range []*profile.Profile{
		{ID: "s1", Role: profile.RoleStudent, ClassName: "5"},
		{ID: "s2", Role: profile.RoleStudent, ClassName: "7"},
	} {
		if _, err := m.Submit(context.Background(), s, "complaint from "+s.ClassName); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	incharge5 := &profile.Profile{ID: "i5", Role: profile.RoleIncharge, ClassName: "5"}
	got, err := m.List(context.Background(), incharge5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ClassName != "5" {
		t.Errorf("incharge sees only their class, got %v", got)
	}

	if got, _ := m.List(context.Background(), principal); len(got) != 2 {
		t.Errorf("principal sees everything, got %v", got)
	}

	student := &profile.Profile{ID: "s1", Role: profile.RoleStudent, ClassName: "5"}
	if _, err := m.List(context.Background(), student); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("students must not read complaints, got %v", err)
	}
}
