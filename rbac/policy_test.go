package rbac

import (
	"errors"
	"testing"

	"github.com/Tarakreddy011/School-Management-App/domain"
	"github.com/Tarakreddy011/School-Management-App/profile"
)

var allActions = []Action{
	ActionCreateStaff, ActionDeleteStaff, ActionAssignClasses, ActionViewTeachers,
	ActionCreateStudent, ActionDeleteStudent, ActionViewStudents,
	ActionEditFeeStatus, ActionEditRating,
	ActionPostAnnounce, ActionPostDiary,
	ActionLogDiscipline, ActionViewDiscipline,
	ActionSubmitComplaint, ActionViewComplaints,
	ActionApplyLeave, ActionApproveLeave, ActionViewLeaves,
	ActionEditMarks, ActionViewOwnMarks,
	ActionUpdateSyllabus, ActionViewSummary,
}

func TestPolicyTable(t *testing.T) {
	cases := []struct {
		role   profile.Role
		action Action
		want   bool
	}{
		{profile.RolePrincipal, ActionCreateStaff, true},
		{profile.RoleHM, ActionCreateStaff, false},
		{profile.RolePrincipal, ActionCreateStudent, true},
		{profile.RoleHM, ActionCreateStudent, true},
		{profile.RoleTeacher, ActionCreateStudent, false},
		{profile.RoleIncharge, ActionEditFeeStatus, true},
		{profile.RoleTeacher, ActionEditFeeStatus, false},
		{profile.RoleTrio, ActionPostDiary, true},
		{profile.RolePrincipal, ActionPostDiary, false},
		{profile.RolePrincipal, ActionPostAnnounce, true},
		{profile.RoleTrio, ActionPostAnnounce, false},
		{profile.RoleTeacher, ActionLogDiscipline, true},
		{profile.RoleStudent, ActionLogDiscipline, false},
		{profile.RoleStudent, ActionSubmitComplaint, true},
		{profile.RoleIncharge, ActionSubmitComplaint, false},
		{profile.RoleIncharge, ActionViewComplaints, true},
		{profile.RoleStudent, ActionViewComplaints, false},
		{profile.RoleStudent, ActionApplyLeave, true},
		{profile.RoleIncharge, ActionApproveLeave, true},
		{profile.RoleStudent, ActionApproveLeave, false},
		{profile.RoleTeacher, ActionEditMarks, true},
		{profile.RoleStudent, ActionViewOwnMarks, true},
		{profile.RolePrincipal, ActionUpdateSyllabus, true},
		{profile.RoleStudent, ActionUpdateSyllabus, false},
	}

	for _, c := range cases {
		if got := Allowed(c.role, c.action); got != c.want {
			t.Errorf("Allowed(%s, %s) = %v, want %v", c.role, c.action, got, c.want)
		}
	}
}

func TestPolicyFailsClosed(t *testing.T) {
	// Unknown roles are denied everything; known roles always get a boolean.
	for _, action := range allActions {
		for _, role := range []profile.Role{"", "superuser", "Principal ", "admin"} {
			if Allowed(role, action) {
				t.Errorf("unknown role %q must be denied %s", role, action)
			}
		}
		for _, role := range profile.Roles {
			_ = Allowed(role, action)
		}
	}
}

func TestRequire(t *testing.T) {
	if err := Require(profile.RolePrincipal, ActionCreateStaff); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	err := Require(profile.RoleStudent, ActionApproveLeave)
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized, got %v", err)
	}
}
