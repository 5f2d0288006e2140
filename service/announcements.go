package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Tarakreddy011/School-Management-App/domain"
	"github.com/Tarakreddy011/School-Management-App/profile"
	"github.com/Tarakreddy011/School-Management-App/rbac"
	"github.com/Tarakreddy011/School-Management-App/school"
)

// AnnouncementManager posts and serves announcements and trio diary entries.
// Both live in the same collection and are distinguished by target.
type AnnouncementManager struct {
	store domain.AnnouncementStorage
	ids   domain.IDGenerator
}

func NewAnnouncementManager(store domain.AnnouncementStorage) *AnnouncementManager {
	return &AnnouncementManager{store: store, ids: defaultIDs()}
}

// SetIDGenerator overrides the default UUID generator.
func (m *AnnouncementManager) SetIDGenerator(gen domain.IDGenerator) { m.ids = gen }

// Post publishes an announcement. A trio member may only write diary
// entries, so their posts are forced to the trio target regardless of the
// requested one; principal and hm post to any target (empty means all).
func (m *AnnouncementManager) Post(ctx context.Context, actor *profile.Profile, title, message, target string) (*school.Announcement, error) {
	if actor.Role == profile.RoleTrio {
		if err := rbac.Require(actor.Role, rbac.ActionPostDiary); err != nil {
			return nil, err
		}
		target = school.TargetTrio
	} else {
		if err := rbac.Require(actor.Role, rbac.ActionPostAnnounce); err != nil {
			return nil, err
		}
		if target == "" {
			target = school.TargetAll
		}
	}
	if strings.TrimSpace(message) == "" {
		return nil, fmt.Errorf("message is required")
	}

	a := &school.Announcement{
		AnnounceID: m.ids(),
		Title:      title,
		Message:    message,
		Target:     target,
		CreatedBy:  actor.ID,
		Timestamp:  school.NowMillis(),
	}
	if err := m.store.CreateAnnouncement(ctx, a); err != nil {
		return nil, fmt.Errorf("post announcement: %w", err)
	}
	return a, nil
}

// Feed returns the announcements visible to the caller, newest first:
// general notices for everyone, the caller's class channel for students,
// and the diary for trio members. Principal and hm see every target.
func (m *AnnouncementManager) Feed(ctx context.Context, actor *profile.Profile) ([]school.Announcement, error) {
	all, err := m.store.ListAnnouncements(ctx, "")
	if err != nil {
		return nil, err
	}

	if actor.Role == profile.RolePrincipal || actor.Role == profile.RoleHM {
		return all, nil
	}

	visible := map[string]bool{school.TargetAll: true}
	switch actor.Role {
	case profile.RoleStudent:
		if actor.ClassName != "" {
			visible["class_"+actor.ClassName] = true
		}
	case profile.RoleTrio:
		visible[school.TargetTrio] = true
	case profile.RoleIncharge:
		if actor.ClassName != "" {
			visible["class_"+actor.ClassName] = true
		}
	}

	out := make([]school.Announcement, 0, len(all))
	for _, a := range all {
		if visible[a.Target] {
			out = append(out, a)
		}
	}
	return out, nil
}
