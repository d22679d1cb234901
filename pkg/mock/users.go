package mock

import (
	"context"
	"strings"
	"time"

	"github.com/swan07222/RealScroll-app/pkg/models"
)

type mockUsers struct {
	d *Data
}

func (g *mockUsers) ByID(ctx context.Context, id string) (models.User, error) {
	g.d.mu.Lock()
	defer g.d.mu.Unlock()

	for _, u := range g.d.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, errNotFound("User not found")
}

func (g *mockUsers) ByUsername(ctx context.Context, username string) (models.User, error) {
	g.d.mu.Lock()
	defer g.d.mu.Unlock()

	for _, u := range g.d.users {
		if u.Username == username {
			return u, nil
		}
	}
	return models.User{}, errNotFound("User not found")
}

func (g *mockUsers) Profile(ctx context.Context, id string) (models.UserProfile, error) {
	g.d.mu.Lock()
	defer g.d.mu.Unlock()

	for _, u := range g.d.users {
		if u.ID == id {
			return models.UserProfile{
				User:        u,
				IsFollowing: g.d.following[id],
			}, nil
		}
	}
	return models.UserProfile{}, errNotFound("User not found")
}

func (g *mockUsers) Follow(ctx context.Context, id string) (bool, error) {
	g.d.mu.Lock()
	defer g.d.mu.Unlock()

	for i := range g.d.users {
		if g.d.users[i].ID != id {
			continue
		}
		now := !g.d.following[id]
		g.d.following[id] = now
		if now {
			g.d.users[i].FollowersCount++
		} else if g.d.users[i].FollowersCount > 0 {
			g.d.users[i].FollowersCount--
		}
		return now, nil
	}
	return false, errNotFound("User not found")
}

func (g *mockUsers) Followers(ctx context.Context, id string, page, limit int) (models.Page[models.User], error) {
	g.d.mu.Lock()
	defer g.d.mu.Unlock()

	var others []models.User
	for _, u := range g.d.users {
		if u.ID != id {
			others = append(others, u)
		}
	}
	return paginate(others, page, limit), nil
}

func (g *mockUsers) Following(ctx context.Context, id string, page, limit int) (models.Page[models.User], error) {
	g.d.mu.Lock()
	defer g.d.mu.Unlock()

	var followed []models.User
	for _, u := range g.d.users {
		if g.d.following[u.ID] {
			followed = append(followed, u)
		}
	}
	return paginate(followed, page, limit), nil
}

func (g *mockUsers) UpdateProfile(ctx context.Context, input models.UpdateProfileInput) (models.User, error) {
	g.d.mu.Lock()
	defer g.d.mu.Unlock()

	u := g.d.current
	if input.DisplayName != "" {
		u.DisplayName = input.DisplayName
	}
	if input.Username != "" {
		for _, other := range g.d.users {
			if other.Username == input.Username && other.ID != u.ID {
				return models.User{}, errConflict("Username already taken")
			}
		}
		u.Username = input.Username
	}
	if input.Bio != "" {
		u.Bio = input.Bio
	}
	if input.Avatar != "" {
		u.Avatar = input.Avatar
	}
	u.UpdatedAt = time.Now().UTC()

	g.d.current = u
	for i := range g.d.users {
		if g.d.users[i].ID == u.ID {
			g.d.users[i] = u
		}
	}
	return u, nil
}

func (g *mockUsers) Search(ctx context.Context, query string, page, limit int) (models.Page[models.User], error) {
	g.d.mu.Lock()
	defer g.d.mu.Unlock()

	q := strings.ToLower(query)
	var hits []models.User
	for _, u := range g.d.users {
		if strings.Contains(strings.ToLower(u.Username), q) ||
			strings.Contains(strings.ToLower(u.DisplayName), q) {
			hits = append(hits, u)
		}
	}
	return paginate(hits, page, limit), nil
}
