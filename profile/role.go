package profile

import "strings"

// Role is the closed set of roles a resolved profile can carry. Role strings
// arriving from the store are normalized (trimmed, lower-cased) before they
// are compared; anything outside the set is rejected rather than defaulted.
type Role string

const (
	RolePrincipal Role = "principal"
	RoleHM        Role = "hm"
	RoleTeacher   Role = "teacher"
	RoleStudent   Role = "student"
	RoleIncharge  Role = "incharge"
	RoleTrio      Role = "trio"
)

// Roles lists every known role.
var Roles = []Role{RolePrincipal, RoleHM, RoleTeacher, RoleStudent, RoleIncharge, RoleTrio}

// NormalizeRole trims and lower-cases a stored role string.
func NormalizeRole(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ParseRole normalizes s and reports whether it names a known role.
func ParseRole(s string) (Role, bool) {
	r := Role(NormalizeRole(s))
	return r, r.Known()
}

// Known reports whether r is a member of the closed role set.
func (r Role) Known() bool {
	switch r {
	case RolePrincipal, RoleHM, RoleTeacher, RoleStudent, RoleIncharge, RoleTrio:
		return true
	}
	return false
}

// Teaching reports whether r is a teaching role. Teaching profiles may carry
// class assignments and never carry fee status or rating.
func (r Role) Teaching() bool {
	switch r {
	case RoleTeacher, RoleIncharge, RoleTrio, RoleHM:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }
