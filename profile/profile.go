// Package profile resolves an identity handle to the single canonical user
// record the rest of the application consumes.
//
// Resolution probes the profile collections in a fixed priority order
// (users, then students, then the legacy teachers collection). The order is
// a contract: when a handle exists in more than one collection, the earlier
// tier wins.
package profile

// Profile is the resolved, role-tagged user record. It is constructed only
// by the Resolver and never mutated in place; field changes are persisted to
// the store and picked up by re-resolution.
type Profile struct {
	ID      string `json:"id"` // identity handle, never the stored document id
	Name    string `json:"name"`
	Role    Role   `json:"role"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject,omitempty"`

	// ClassName is set for students and for class incharges.
	ClassName string `json:"className,omitempty"`

	// ClassesAssigned is set only for teaching roles.
	ClassesAssigned []string `json:"classesAssigned,omitempty"`

	// FeeStatus and Rating are set only for students.
	FeeStatus string  `json:"feeStatus,omitempty"`
	Rating    float64 `json:"rating,omitempty"`
}

// Clone returns a copy safe to hand out as a snapshot.
func (p *Profile) Clone() *Profile {
	if p == nil {
		return nil
	}
	cp := *p
	if p.ClassesAssigned != nil {
		cp.ClassesAssigned = append([]string(nil), p.ClassesAssigned...)
	}
	return &cp
}
