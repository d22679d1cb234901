package sync

import (
	"context"

	"github.com/swan07222/RealScroll-app/pkg/gateway"
	"github.com/swan07222/RealScroll-app/pkg/models"
)

func userID(u models.User) string { return u.ID }

// NewFollowers builds a paginated store over a user's followers.
func NewFollowers(users gateway.Users, id string, limit int) *List[models.User] {
	fetch := func(ctx context.Context, page, limit int) (models.Page[models.User], error) {
		return users.Followers(ctx, id, page, limit)
	}
	return NewList(fetch, userID, limit)
}

// NewFollowing builds a paginated store over the users someone
// follows.
func NewFollowing(users gateway.Users, id string, limit int) *List[models.User] {
	fetch := func(ctx context.Context, page, limit int) (models.Page[models.User], error) {
		return users.Following(ctx, id, page, limit)
	}
	return NewList(fetch, userID, limit)
}
