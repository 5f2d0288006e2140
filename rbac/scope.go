package rbac

import (
	"strings"

	"github.com/Tarakreddy011/School-Management-App/profile"
	"github.com/Tarakreddy011/School-Management-App/school"
)

// Scoping filters restrict an already-permitted read to the caller's own
// records. They are deny-by-default: a caller whose scoping attribute is
// empty, or whose role carries no scope rule, gets an empty result rather
// than an error.

// ScopeComplaints filters complaints for the caller. Principal and hm see
// everything; an incharge sees only their own class.
func ScopeComplaints(p *profile.Profile, list []school.Complaint) []school.Complaint {
	switch p.Role {
	case profile.RolePrincipal, profile.RoleHM:
		return list
	case profile.RoleIncharge:
		if p.ClassName == "" {
			return nil
		}
		out := make([]school.Complaint, 0, len(list))
		for _, c := range list {
			if c.ClassName == p.ClassName {
				out = append(out, c)
			}
		}
		return out
	}
	return nil
}

// ScopeLeaves filters leave applications for the caller. A student sees only
// their own; an incharge sees their class; hm and principal see everything.
func ScopeLeaves(p *profile.Profile, list []school.Leave) []school.Leave {
	switch p.Role {
	case profile.RolePrincipal, profile.RoleHM:
		return list
	case profile.RoleIncharge:
		if p.ClassName == "" {
			return nil
		}
		out := make([]school.Leave, 0, len(list))
		for _, l := range list {
			if l.ClassName == p.ClassName {
				out = append(out, l)
			}
		}
		return out
	case profile.RoleStudent:
		out := make([]school.Leave, 0, len(list))
		for _, l := range list {
			if l.StudentID == p.ID {
				out = append(out, l)
			}
		}
		return out
	}
	return nil
}

// ScopeMarks filters mark records for the caller. A student sees only their
// own; a teacher sees their assigned classes; hm and principal see everything.
func ScopeMarks(p *profile.Profile, list []school.Mark) []school.Mark {
	switch p.Role {
	case profile.RolePrincipal, profile.RoleHM:
		return list
	case profile.RoleStudent:
		out := make([]school.Mark, 0, len(list))
		for _, m := range list {
			if m.StudentID == p.ID {
				out = append(out, m)
			}
		}
		return out
	case profile.RoleTeacher, profile.RoleTrio, profile.RoleIncharge:
		if len(p.ClassesAssigned) == 0 {
			return nil
		}
		assigned := make(map[string]struct{}, len(p.ClassesAssigned))
		for _, c := range p.ClassesAssigned {
			assigned[c] = struct{}{}
		}
		out := make([]school.Mark, 0, len(list))
		for _, m := range list {
			if _, ok := assigned[m.ClassName]; ok {
				out = append(out, m)
			}
		}
		return out
	}
	return nil
}

// CanEditMarks reports whether the caller may edit marks for the given
// class and subject: a teacher assigned to that class teaching that subject,
// or the hm.
func CanEditMarks(p *profile.Profile, className, subject string) bool {
	if p.Role == profile.RoleHM {
		return true
	}
	if p.Role != profile.RoleTeacher {
		return false
	}
	assigned := false
	for _, c := range p.ClassesAssigned {
		if c == className {
			assigned = true
			break
		}
	}
	if !assigned {
		return false
	}
	// A teacher with no recorded subject may enter marks for any subject in
	// their assigned classes; a subject teacher is held to their subject.
	return p.Subject == "" || strings.EqualFold(strings.TrimSpace(p.Subject), strings.TrimSpace(subject))
}
