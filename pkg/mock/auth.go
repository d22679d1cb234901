package mock

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/swan07222/RealScroll-app/pkg/models"
)

type mockAuth struct {
	d *Data
}

func (g *mockAuth) authUser(u models.User) models.AuthUser {
	return models.AuthUser{
		User:         u,
		Token:        "mock-token-" + uuid.NewString(),
		RefreshToken: "mock-refresh-" + uuid.NewString(),
	}
}

func (g *mockAuth) Login(ctx context.Context, email, password string) (models.AuthUser, error) {
	g.d.mu.Lock()
	defer g.d.mu.Unlock()

	if email == "" || password == "" {
		return models.AuthUser{}, errInvalid("Email and password are required")
	}
	return g.authUser(g.d.current), nil
}

func (g *mockAuth) Register(ctx context.Context, input models.RegisterInput) (models.AuthUser, error) {
	g.d.mu.Lock()
	defer g.d.mu.Unlock()

	for _, u := range g.d.users {
		if u.Username == input.Username {
			return models.AuthUser{}, errConflict("Username already taken")
		}
	}

	now := time.Now().UTC()
	u := models.User{
		ID:          uuid.NewString(),
		Username:    input.Username,
		DisplayName: input.DisplayName,
		Email:       input.Email,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	g.d.users = append(g.d.users, u)
	g.d.current = u
	return g.authUser(u), nil
}

func (g *mockAuth) SendOTP(ctx context.Context, phone string) (bool, error) {
	if phone == "" {
		return false, errInvalid("Phone number is required")
	}
	return true, nil
}

func (g *mockAuth) VerifyOTP(ctx context.Context, phone, otp string) (models.AuthUser, error) {
	g.d.mu.Lock()
	defer g.d.mu.Unlock()

	if otp != g.d.otpCode {
		return models.AuthUser{}, errUnauthorized("OTP_INVALID", "Invalid OTP")
	}
	u := g.d.current
	u.Phone = phone
	g.d.current = u
	return g.authUser(u), nil
}

func (g *mockAuth) Logout(ctx context.Context) error {
	return nil
}

func (g *mockAuth) Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error) {
	if refreshToken == "" {
		return models.TokenPair{}, errUnauthorized("REFRESH_INVALID", "Invalid refresh token")
	}
	return models.TokenPair{
		Token:        "mock-token-" + uuid.NewString(),
		RefreshToken: "mock-refresh-" + uuid.NewString(),
	}, nil
}

func (g *mockAuth) ForgotPassword(ctx context.Context, email string) (bool, error) {
	if email == "" {
		return false, errInvalid("Email is required")
	}
	return true, nil
}

func (g *mockAuth) CurrentUser(ctx context.Context) (models.User, error) {
	g.d.mu.Lock()
	defer g.d.mu.Unlock()
	return g.d.current, nil
}
