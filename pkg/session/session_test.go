package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swan07222/RealScroll-app/internal/validate"
	"github.com/swan07222/RealScroll-app/pkg/api"
	"github.com/swan07222/RealScroll-app/pkg/models"
	"github.com/swan07222/RealScroll-app/pkg/store"
)

type fakeAuth struct {
	user models.User

	loginCalls   int
	refreshCalls int
	logoutErr    error
	loginErr     error
	currentErr   error
	refreshErr   error
}

func (f *fakeAuth) Login(ctx context.Context, email, password string) (models.AuthUser, error) {
	f.loginCalls++
	if f.loginErr != nil {
		return models.AuthUser{}, f.loginErr
	}
	return models.AuthUser{User: f.user, Token: "tok-1", RefreshToken: "ref-1"}, nil
}

func (f *fakeAuth) Register(ctx context.Context, input models.RegisterInput) (models.AuthUser, error) {
	return models.AuthUser{
		User:         models.User{ID: "u-new", Username: input.Username, DisplayName: input.DisplayName},
		Token:        "tok-new",
		RefreshToken: "ref-new",
	}, nil
}

func (f *fakeAuth) SendOTP(ctx context.Context, phone string) (bool, error) {
	return true, nil
}

func (f *fakeAuth) VerifyOTP(ctx context.Context, phone, otp string) (models.AuthUser, error) {
	if otp != "123456" {
		return models.AuthUser{}, &api.APIError{StatusCode: 401, Code: "OTP_INVALID", Message: "Invalid OTP"}
	}
	return models.AuthUser{User: f.user, Token: "tok-otp", RefreshToken: "ref-otp"}, nil
}

func (f *fakeAuth) Logout(ctx context.Context) error { return f.logoutErr }

func (f *fakeAuth) Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error) {
	f.refreshCalls++
	if f.refreshErr != nil {
		return models.TokenPair{}, f.refreshErr
	}
	return models.TokenPair{Token: "tok-2", RefreshToken: "ref-2"}, nil
}

func (f *fakeAuth) ForgotPassword(ctx context.Context, email string) (bool, error) {
	return true, nil
}

func (f *fakeAuth) CurrentUser(ctx context.Context) (models.User, error) {
	if f.currentErr != nil {
		return models.User{}, f.currentErr
	}
	return f.user, nil
}

func newFixture() (*Session, *fakeAuth, store.Store) {
	auth := &fakeAuth{user: models.User{ID: "u-1", Username: "johndoe", DisplayName: "John Doe"}}
	st := store.NewMemoryStore()
	return New(auth, st), auth, st
}

func TestLoginEstablishesAndPersists(t *testing.T) {
	s, _, st := newFixture()

	user, err := s.Login(context.Background(), "john@example.com", "hunter2secret")
	require.NoError(t, err)
	assert.Equal(t, "johndoe", user.Username)
	assert.Equal(t, StateAuthenticated, s.State())
	assert.Equal(t, "tok-1", s.Token())

	tok, ok := st.Get(store.KeyAuthToken)
	require.True(t, ok)
	assert.Equal(t, "tok-1", tok)
	ref, _ := st.Get(store.KeyRefreshToken)
	assert.Equal(t, "ref-1", ref)

	var persisted models.User
	require.True(t, store.GetObject(st, store.KeyUser, &persisted))
	assert.Equal(t, "u-1", persisted.ID)
}

func TestLoginValidationSkipsNetwork(t *testing.T) {
	s, auth, _ := newFixture()

	_, err := s.Login(context.Background(), "not-an-email", "short")
	var fieldErrs validate.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Len(t, fieldErrs, 2)
	assert.Zero(t, auth.loginCalls, "invalid input must not reach the gateway")
	assert.Equal(t, StateUninitialized, s.State())
}

func TestRestoreWithoutTokenIsAnonymous(t *testing.T) {
	s, _, _ := newFixture()

	require.NoError(t, s.Restore(context.Background()))
	assert.Equal(t, StateAnonymous, s.State())
	assert.Empty(t, s.Token())
}

func TestRestoreValidTokenAuthenticates(t *testing.T) {
	s, _, st := newFixture()
	require.NoError(t, st.Set(store.KeyAuthToken, "stored-token"))
	require.NoError(t, st.Set(store.KeyRefreshToken, "stored-refresh"))

	require.NoError(t, s.Restore(context.Background()))
	assert.Equal(t, StateAuthenticated, s.State())
	assert.Equal(t, "stored-token", s.Token())
	assert.Equal(t, "johndoe", s.User().Username)
}

func TestRestoreStaleTokenClears(t *testing.T) {
	s, auth, st := newFixture()
	auth.currentErr = &api.APIError{StatusCode: 401, Code: "TOKEN_EXPIRED", Message: "Token expired"}
	require.NoError(t, st.Set(store.KeyAuthToken, "stale-token"))

	require.NoError(t, s.Restore(context.Background()))
	assert.Equal(t, StateAnonymous, s.State())
	assert.Empty(t, s.Token())
	_, ok := st.Get(store.KeyAuthToken)
	assert.False(t, ok, "stale token must be removed from the store")
}

func TestVerifyOTPRejectsMalformedCode(t *testing.T) {
	s, _, _ := newFixture()

	_, err := s.VerifyOTP(context.Background(), "+15551234567", "12ab")
	var fieldErrs validate.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)

	user, err := s.VerifyOTP(context.Background(), "+15551234567", "123456")
	require.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)
	assert.Equal(t, "tok-otp", s.Token())
}

func TestLogoutClearsEvenWhenRemoteFails(t *testing.T) {
	s, auth, st := newFixture()
	_, err := s.Login(context.Background(), "john@example.com", "hunter2secret")
	require.NoError(t, err)

	auth.logoutErr = &api.APIError{StatusCode: 500, Message: "Internal server error"}
	s.Logout(context.Background())

	assert.Equal(t, StateAnonymous, s.State())
	assert.Empty(t, s.Token())
	_, ok := st.Get(store.KeyAuthToken)
	assert.False(t, ok)
	_, ok = st.Get(store.KeyUser)
	assert.False(t, ok)
}

func TestRefreshRotatesTokens(t *testing.T) {
	s, _, st := newFixture()
	_, err := s.Login(context.Background(), "john@example.com", "hunter2secret")
	require.NoError(t, err)

	require.NoError(t, s.Refresh(context.Background()))
	assert.Equal(t, "tok-2", s.Token())
	tok, _ := st.Get(store.KeyAuthToken)
	assert.Equal(t, "tok-2", tok)
	ref, _ := st.Get(store.KeyRefreshToken)
	assert.Equal(t, "ref-2", ref)
	assert.Equal(t, StateAuthenticated, s.State())
}

func TestRefreshFailureGoesAnonymous(t *testing.T) {
	s, auth, st := newFixture()
	_, err := s.Login(context.Background(), "john@example.com", "hunter2secret")
	require.NoError(t, err)

	auth.refreshErr = &api.APIError{StatusCode: 401, Code: "REFRESH_INVALID", Message: "Invalid refresh token"}
	err = s.Refresh(context.Background())
	require.Error(t, err)

	assert.Equal(t, StateAnonymous, s.State())
	assert.Empty(t, s.Token())
	_, ok := st.Get(store.KeyAuthToken)
	assert.False(t, ok)
}

func TestUpdateUserRepersists(t *testing.T) {
	s, _, st := newFixture()
	_, err := s.Login(context.Background(), "john@example.com", "hunter2secret")
	require.NoError(t, err)

	updated := s.User()
	updated.Bio = "updated bio"
	require.NoError(t, s.UpdateUser(updated))

	assert.Equal(t, "updated bio", s.User().Bio)
	var persisted models.User
	require.True(t, store.GetObject(st, store.KeyUser, &persisted))
	assert.Equal(t, "updated bio", persisted.Bio)
}
