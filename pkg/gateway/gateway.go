// Package gateway defines one capability interface per backend entity
// group. Each method maps 1:1 to a REST endpoint; no gateway performs
// cross-entity joins or business logic. Two implementations exist: the
// remote one in this package, and the in-memory one in pkg/mock. The
// composition root picks one; all call sites depend on the interfaces.
package gateway

import (
	"context"

	"github.com/swan07222/RealScroll-app/pkg/models"
)

// Auth covers the authentication endpoints.
type Auth interface {
	Login(ctx context.Context, email, password string) (models.AuthUser, error)
	Register(ctx context.Context, input models.RegisterInput) (models.AuthUser, error)
	SendOTP(ctx context.Context, phone string) (bool, error)
	VerifyOTP(ctx context.Context, phone, otp string) (models.AuthUser, error)
	Logout(ctx context.Context) error
	Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error)
	ForgotPassword(ctx context.Context, email string) (bool, error)
	CurrentUser(ctx context.Context) (models.User, error)
}

// Posts covers the post endpoints.
type Posts interface {
	Feed(ctx context.Context, page, limit int) (models.Page[models.Post], error)
	ByID(ctx context.Context, id string) (models.Post, error)
	ByUser(ctx context.Context, userID string, page, limit int) (models.Page[models.Post], error)
	Create(ctx context.Context, input models.CreatePostInput) (models.Post, error)
	Like(ctx context.Context, id string) (models.Post, error)
	Save(ctx context.Context, id string) (models.Post, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, query string, page, limit int) (models.Page[models.Post], error)
}

// Comments covers the comment endpoints.
type Comments interface {
	ForPost(ctx context.Context, postID string, page, limit int) (models.Page[models.Comment], error)
	Add(ctx context.Context, postID, content, parentID string) (models.Comment, error)
	Like(ctx context.Context, id string) (models.Comment, error)
	Delete(ctx context.Context, id string) error
}

// Notifications covers the notification endpoints.
type Notifications interface {
	List(ctx context.Context, page, limit int) (models.Page[models.Notification], error)
	UnreadCount(ctx context.Context) (int, error)
	MarkRead(ctx context.Context, id string) (models.Notification, error)
	MarkAllRead(ctx context.Context) error
	Delete(ctx context.Context, id string) error
}

// Users covers the user and relationship endpoints.
type Users interface {
	ByID(ctx context.Context, id string) (models.User, error)
	ByUsername(ctx context.Context, username string) (models.User, error)
	Profile(ctx context.Context, id string) (models.UserProfile, error)
	// Follow toggles the relationship and returns the new state.
	Follow(ctx context.Context, id string) (bool, error)
	Followers(ctx context.Context, id string, page, limit int) (models.Page[models.User], error)
	Following(ctx context.Context, id string, page, limit int) (models.Page[models.User], error)
	UpdateProfile(ctx context.Context, input models.UpdateProfileInput) (models.User, error)
	Search(ctx context.Context, query string, page, limit int) (models.Page[models.User], error)
}

// Set bundles one implementation of every gateway.
type Set struct {
	Auth          Auth
	Posts         Posts
	Comments      Comments
	Notifications Notifications
	Users         Users
}
