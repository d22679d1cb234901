package gateway

import (
	"context"
	"fmt"
	"net/url"

	"github.com/swan07222/RealScroll-app/pkg/api"
	"github.com/swan07222/RealScroll-app/pkg/models"
)

// NewRemote builds the HTTP gateway set on top of the transport.
func NewRemote(c *api.Client) Set {
	return Set{
		Auth:          &remoteAuth{c: c},
		Posts:         &remotePosts{c: c},
		Comments:      &remoteComments{c: c},
		Notifications: &remoteNotifications{c: c},
		Users:         &remoteUsers{c: c},
	}
}

func pageQuery(page, limit int) string {
	return fmt.Sprintf("page=%d&limit=%d", page, limit)
}

type sentResponse struct {
	Sent bool `json:"sent"`
}

type remoteAuth struct {
	c *api.Client
}

func (g *remoteAuth) Login(ctx context.Context, email, password string) (models.AuthUser, error) {
	return api.Post[models.AuthUser](ctx, g.c, "/auth/login",
		map[string]string{"email": email, "password": password})
}

func (g *remoteAuth) Register(ctx context.Context, input models.RegisterInput) (models.AuthUser, error) {
	return api.Post[models.AuthUser](ctx, g.c, "/auth/register", input)
}

func (g *remoteAuth) SendOTP(ctx context.Context, phone string) (bool, error) {
	res, err := api.Post[sentResponse](ctx, g.c, "/auth/send-otp", map[string]string{"phone": phone})
	return res.Sent, err
}

func (g *remoteAuth) VerifyOTP(ctx context.Context, phone, otp string) (models.AuthUser, error) {
	return api.Post[models.AuthUser](ctx, g.c, "/auth/verify-otp",
		map[string]string{"phone": phone, "otp": otp})
}

func (g *remoteAuth) Logout(ctx context.Context) error {
	_, err := api.Post[any](ctx, g.c, "/auth/logout", nil)
	return err
}

func (g *remoteAuth) Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error) {
	return api.Post[models.TokenPair](ctx, g.c, "/auth/refresh",
		map[string]string{"refreshToken": refreshToken})
}

func (g *remoteAuth) ForgotPassword(ctx context.Context, email string) (bool, error) {
	res, err := api.Post[sentResponse](ctx, g.c, "/auth/forgot-password", map[string]string{"email": email})
	return res.Sent, err
}

func (g *remoteAuth) CurrentUser(ctx context.Context) (models.User, error) {
	return api.Get[models.User](ctx, g.c, "/auth/me")
}

type remoteUsers struct {
	c *api.Client
}

func (g *remoteUsers) ByID(ctx context.Context, id string) (models.User, error) {
	return api.Get[models.User](ctx, g.c, "/users/"+url.PathEscape(id))
}

func (g *remoteUsers) ByUsername(ctx context.Context, username string) (models.User, error) {
	return api.Get[models.User](ctx, g.c, "/users/username/"+url.PathEscape(username))
}

func (g *remoteUsers) Profile(ctx context.Context, id string) (models.UserProfile, error) {
	return api.Get[models.UserProfile](ctx, g.c, "/users/"+url.PathEscape(id)+"/profile")
}

func (g *remoteUsers) Follow(ctx context.Context, id string) (bool, error) {
	res, err := api.Post[struct {
		Following bool `json:"following"`
	}](ctx, g.c, "/users/"+url.PathEscape(id)+"/follow", nil)
	return res.Following, err
}

func (g *remoteUsers) Followers(ctx context.Context, id string, page, limit int) (models.Page[models.User], error) {
	return api.GetPage[models.User](ctx, g.c,
		"/users/"+url.PathEscape(id)+"/followers?"+pageQuery(page, limit))
}

func (g *remoteUsers) Following(ctx context.Context, id string, page, limit int) (models.Page[models.User], error) {
	return api.GetPage[models.User](ctx, g.c,
		"/users/"+url.PathEscape(id)+"/following?"+pageQuery(page, limit))
}

func (g *remoteUsers) UpdateProfile(ctx context.Context, input models.UpdateProfileInput) (models.User, error) {
	return api.Patch[models.User](ctx, g.c, "/users/me", input)
}

func (g *remoteUsers) Search(ctx context.Context, query string, page, limit int) (models.Page[models.User], error) {
	return api.GetPage[models.User](ctx, g.c,
		"/users/search?q="+url.QueryEscape(query)+"&"+pageQuery(page, limit))
}
