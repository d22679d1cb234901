package sync

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/swan07222/RealScroll-app/internal/logging"
	"github.com/swan07222/RealScroll-app/pkg/gateway"
	"github.com/swan07222/RealScroll-app/pkg/models"
)

// Profile is the store for one viewed user profile. ToggleFollow is
// optimistic; the confirmed follower count is always the pre-toggle
// count adjusted by the boolean the server returned, never re-derived
// from a second fetch.
type Profile struct {
	mu    sync.Mutex
	users gateway.Users
	id    string

	profile models.UserProfile
	loaded  bool
	err     error
}

// NewProfile builds a store for the user with the given id.
func NewProfile(users gateway.Users, id string) *Profile {
	return &Profile{users: users, id: id}
}

// Profile returns the cached profile; valid once Load succeeded.
func (p *Profile) Profile() models.UserProfile {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.profile
}

// Loaded reports whether a profile has been fetched.
func (p *Profile) Loaded() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loaded
}

// Err returns the last load error, nil on success.
func (p *Profile) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

// Load fetches the profile. A failure keeps any previously cached
// profile.
func (p *Profile) Load(ctx context.Context) error {
	profile, err := p.users.Profile(ctx, p.id)

	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		p.err = err
		return err
	}
	p.err = nil
	p.profile = profile
	p.loaded = true
	return nil
}

// ToggleFollow flips the relationship optimistically, then settles on
// the server's answer: the returned boolean decides the final flag and
// the follower count moves by exactly one from the pre-toggle value.
// On failure the snapshot is restored.
func (p *Profile) ToggleFollow(ctx context.Context) error {
	p.mu.Lock()
	snapshot := p.profile
	if p.profile.IsFollowing {
		p.profile.IsFollowing = false
		p.profile.FollowersCount--
	} else {
		p.profile.IsFollowing = true
		p.profile.FollowersCount++
	}
	p.mu.Unlock()

	following, err := p.users.Follow(ctx, p.id)

	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		p.profile = snapshot
		logging.L().Warn("follow toggle failed, rolled back", zap.String("id", p.id), zap.Error(err))
		return err
	}
	p.profile.IsFollowing = following
	p.profile.FollowersCount = snapshot.FollowersCount
	switch {
	case following && !snapshot.IsFollowing:
		p.profile.FollowersCount++
	case !following && snapshot.IsFollowing:
		p.profile.FollowersCount--
	}
	return nil
}

// UpdateProfile patches the current user's profile and, when the
// store views that same user, folds the confirmed entity in.
func (p *Profile) UpdateProfile(ctx context.Context, input models.UpdateProfileInput) (models.User, error) {
	updated, err := p.users.UpdateProfile(ctx, input)
	if err != nil {
		return models.User{}, err
	}
	p.mu.Lock()
	if p.profile.ID == updated.ID {
		p.profile.User = updated
	}
	p.mu.Unlock()
	return updated, nil
}
