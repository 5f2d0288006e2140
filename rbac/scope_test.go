package rbac

import (
	"testing"

	"github.com/Tarakreddy011/School-Management-App/profile"
	"github.com/Tarakreddy011/School-Management-App/school"
)

func TestScopeComplaints(t *testing.T) {
	complaints := []school.Complaint{
		{ComplaintID: "c1", ClassName: "5"},
		{ComplaintID: "c2", ClassName: "7"},
	}

	incharge5 := &profile.Profile{ID: "i5", Role: profile.RoleIncharge, ClassName: "5"}
	got := ScopeComplaints(incharge5, complaints)
	if len(got) != 1 || got[0].ComplaintID != "c1" {
		t.Errorf("incharge of class 5: expected only c1, got %v", got)
	}

	incharge7 := &profile.Profile{ID: "i7", Role: profile.RoleIncharge, ClassName: "7"}
	got = ScopeComplaints(incharge7, complaints)
	if len(got) != 1 || got[0].ComplaintID != "c2" {
		t.Errorf("incharge of class 7: expected only c2, got %v", got)
	}

	// Principal and hm see everything regardless of class.
	for _, r := range []profile.Role{profile.RolePrincipal, profile.RoleHM} {
		if got := ScopeComplaints(&profile.Profile{Role: r}, complaints); len(got) != 2 {
			t.Errorf("%s: expected all complaints, got %v", r, got)
		}
	}

	// Missing scope value means empty result, never an error.
	inchargeNoClass := &profile.Profile{Role: profile.RoleIncharge}
	if got := ScopeComplaints(inchargeNoClass, complaints); len(got) != 0 {
		t.Errorf("incharge without class: expected empty, got %v", got)
	}

	// Roles without a scope rule get nothing.
	if got := ScopeComplaints(&profile.Profile{Role: profile.RoleStudent}, complaints); len(got) != 0 {
		t.Errorf("student: expected empty, got %v", got)
	}
}

func TestScopeLeaves(t *testing.T) {
	leaves := []school.Leave{
		{LeaveID: "l1", StudentID: "s1", ClassName: "5"},
		{LeaveID: "l2", StudentID: "s2", ClassName: "7"},
	}

	student := &profile.Profile{ID: "s1", Role: profile.RoleStudent}
	got := ScopeLeaves(student, leaves)
	if len(got) != 1 || got[0].LeaveID != "l1" {
		t.Errorf("student: expected only own leave, got %v", got)
	}

	incharge := &profile.Profile{Role: profile.RoleIncharge, ClassName: "7"}
	got = ScopeLeaves(incharge, leaves)
	if len(got) != 1 || got[0].LeaveID != "l2" {
		t.Errorf("incharge: expected only class 7 leave, got %v", got)
	}

	if got := ScopeLeaves(&profile.Profile{Role: profile.RoleHM}, leaves); len(got) != 2 {
		t.Errorf("hm: expected all leaves, got %v", got)
	}
}

func TestScopeMarks(t *testing.T) {
	marks := []school.Mark{
		{ID: "s1_Maths", StudentID: "s1", ClassName: "5"},
		{ID: "s2_Maths", StudentID: "s2", ClassName: "7"},
	}

	student := &profile.Profile{ID: "s2", Role: profile.RoleStudent}
	got := ScopeMarks(student, marks)
	if len(got) != 1 || got[0].StudentID != "s2" {
		t.Errorf("student: expected only own marks, got %v", got)
	}

	teacher := &profile.Profile{Role: profile.RoleTeacher, ClassesAssigned: []string{"5"}}
	got = ScopeMarks(teacher, marks)
	if len(got) != 1 || got[0].ClassName != "5" {
		t.Errorf("teacher: expected only assigned class, got %v", got)
	}

	unassigned := &profile.Profile{Role: profile.RoleTeacher}
	if got := ScopeMarks(unassigned, marks); len(got) != 0 {
		t.Errorf("unassigned teacher: expected empty, got %v", got)
	}
}

func TestCanEditMarks(t *testing.T) {
	teacher := &profile.Profile{Role: profile.RoleTeacher, Subject: "Maths", ClassesAssigned: []string{"5", "LKG"}}

	if !CanEditMarks(teacher, "5", "Maths") {
		t.Error("assigned teacher should edit their subject in their class")
	}
	if CanEditMarks(teacher, "7", "Maths") {
		t.Error("teacher must not edit marks for an unassigned class")
	}
	if CanEditMarks(teacher, "5", "Science") {
		t.Error("subject teacher must not edit another subject")
	}

	hm := &profile.Profile{Role: profile.RoleHM}
	if !CanEditMarks(hm, "7", "Science") {
		t.Error("hm may edit any marks")
	}

	student := &profile.Profile{Role: profile.RoleStudent}
	if CanEditMarks(student, "5", "Maths") {
		t.Error("student must not edit marks")
	}
}
