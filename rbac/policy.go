// Package rbac implements the role-based authorization policy.
//
// The policy is a pure mapping from (role, action) to permit/deny: no state,
// no persistence, recomputed on every check, and fail-closed for any role
// outside the known set. Feature managers call Require before attempting a
// mutation; the store itself carries no authorization logic.
//
// Scoped actions (e.g. an incharge viewing complaints for their own class
// only) layer an attribute-equality filter on top of the role check; see
// scope.go.
package rbac

import (
	"fmt"

	"github.com/Tarakreddy011/School-Management-App/domain"
	"github.com/Tarakreddy011/School-Management-App/profile"
)

// Action names an operation a screen or feature module may attempt.
type Action string

const (
	ActionCreateStaff    Action = "staff.create"
	ActionDeleteStaff    Action = "staff.delete"
	ActionAssignClasses  Action = "staff.assign_classes"
	ActionViewTeachers   Action = "staff.view"
	ActionCreateStudent  Action = "student.create"
	ActionDeleteStudent  Action = "student.delete"
	ActionViewStudents   Action = "student.view"
	ActionEditFeeStatus  Action = "student.fee.edit"
	ActionEditRating     Action = "student.rating.edit"
	ActionPostAnnounce   Action = "announcement.post"
	ActionPostDiary      Action = "diary.post"
	ActionLogDiscipline  Action = "discipline.log"
	ActionViewDiscipline Action = "discipline.view"
	ActionSubmitComplaint Action = "complaint.submit"
	ActionViewComplaints Action = "complaint.view"
	ActionApplyLeave     Action = "leave.apply"
	ActionApproveLeave   Action = "leave.approve"
	ActionViewLeaves     Action = "leave.view"
	ActionEditMarks      Action = "marks.edit"
	ActionViewOwnMarks   Action = "marks.view.own"
	ActionUpdateSyllabus Action = "syllabus.update"
	ActionViewSummary    Action = "summary.view"
)

// policy is the decision table. An action absent from the table, or a role
// absent from an action's list, is denied.
var policy = map[Action][]profile.Role{
	ActionCreateStaff:   {profile.RolePrincipal},
	ActionDeleteStaff:   {profile.RolePrincipal},
	ActionAssignClasses: {profile.RolePrincipal, profile.RoleHM},
	ActionViewTeachers:  {profile.RolePrincipal, profile.RoleHM},

	ActionCreateStudent: {profile.RolePrincipal, profile.RoleHM},
	ActionDeleteStudent: {profile.RolePrincipal, profile.RoleHM},
	ActionViewStudents:  {profile.RolePrincipal, profile.RoleHM, profile.RoleIncharge, profile.RoleTeacher, profile.RoleTrio},
	ActionEditFeeStatus: {profile.RolePrincipal, profile.RoleHM, profile.RoleIncharge},
	ActionEditRating:    {profile.RolePrincipal, profile.RoleHM, profile.RoleIncharge},

	ActionPostAnnounce: {profile.RolePrincipal, profile.RoleHM},
	ActionPostDiary:    {profile.RoleTrio},

	ActionLogDiscipline:  {profile.RoleTeacher, profile.RoleHM, profile.RolePrincipal},
	ActionViewDiscipline: {profile.RoleTeacher, profile.RoleHM, profile.RolePrincipal},

	ActionSubmitComplaint: {profile.RoleStudent},
	ActionViewComplaints:  {profile.RolePrincipal, profile.RoleHM, profile.RoleIncharge},

	ActionApplyLeave:   {profile.RoleStudent},
	ActionApproveLeave: {profile.RoleHM, profile.RolePrincipal, profile.RoleIncharge},
	ActionViewLeaves:   {profile.RoleStudent, profile.RoleHM, profile.RolePrincipal, profile.RoleIncharge},

	ActionEditMarks:    {profile.RoleTeacher, profile.RoleHM},
	ActionViewOwnMarks: {profile.RoleStudent},

	ActionUpdateSyllabus: {profile.RoleTeacher, profile.RoleHM, profile.RolePrincipal},

	ActionViewSummary: {profile.RolePrincipal, profile.RoleHM},
}

// Allowed reports whether the role may perform the action. It is total over
// all role strings: unknown roles are denied every action.
func Allowed(role profile.Role, action Action) bool {
	if !role.Known() {
		return false
	}
	for _, r := range policy[action] {
		if r == role {
			return true
		}
	}
	return false
}

// Require returns domain.ErrUnauthorized when the role may not perform the
// action. Callers check this before attempting any repository write.
func Require(role profile.Role, action Action) error {
	if !Allowed(role, action) {
		return fmt.Errorf("%w: %s may not %s", domain.ErrUnauthorized, role, action)
	}
	return nil
}
