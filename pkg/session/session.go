// Package session owns the authentication lifecycle: it drives the
// state machine uninitialized → checking → {authenticated, anonymous},
// persists credentials across restarts, and hands the current access
// token to the transport. One Session per process; everything that
// needs auth state receives it from the composition root.
package session

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/swan07222/RealScroll-app/internal/logging"
	"github.com/swan07222/RealScroll-app/internal/validate"
	"github.com/swan07222/RealScroll-app/pkg/gateway"
	"github.com/swan07222/RealScroll-app/pkg/models"
	"github.com/swan07222/RealScroll-app/pkg/store"
)

// State is the session lifecycle state.
type State string

const (
	StateUninitialized State = "uninitialized"
	StateChecking      State = "checking"
	StateAuthenticated State = "authenticated"
	StateAnonymous     State = "anonymous"
)

// Session is the single auth controller. It implements api.TokenSource
// so the transport reads the live token on every request.
type Session struct {
	auth gateway.Auth
	st   store.Store

	mu           sync.RWMutex
	state        State
	user         models.User
	token        string
	refreshToken string
}

// New builds an uninitialized Session. Call Restore before relying on
// State.
func New(auth gateway.Auth, st store.Store) *Session {
	return &Session{
		auth:  auth,
		st:    st,
		state: StateUninitialized,
	}
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// User returns the cached user snapshot; valid only while
// authenticated.
func (s *Session) User() models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Token implements api.TokenSource. Empty while not authenticated.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Restore re-establishes a persisted session. With no stored token the
// session goes straight to anonymous; with one, the token is validated
// against the backend and a stale token ends anonymous with
// credentials cleared.
func (s *Session) Restore(ctx context.Context) error {
	s.mu.Lock()
	s.state = StateChecking
	token, ok := s.st.Get(store.KeyAuthToken)
	if !ok || token == "" {
		s.state = StateAnonymous
		s.mu.Unlock()
		return nil
	}
	s.token = token
	if refresh, ok := s.st.Get(store.KeyRefreshToken); ok {
		s.refreshToken = refresh
	}
	var cached models.User
	if store.GetObject(s.st, store.KeyUser, &cached) {
		s.user = cached
	}
	s.mu.Unlock()

	user, err := s.auth.CurrentUser(ctx)
	if err != nil {
		logging.L().Info("stored session rejected, clearing credentials", zap.Error(err))
		s.clear()
		return nil
	}

	s.mu.Lock()
	s.user = user
	s.state = StateAuthenticated
	s.mu.Unlock()
	return store.SetObject(s.st, store.KeyUser, user)
}

// Login authenticates with email and password. Credentials are
// validated locally first; a validation failure never reaches the
// network.
func (s *Session) Login(ctx context.Context, email, password string) (models.User, error) {
	if err := validate.Login(email, password); err != nil {
		return models.User{}, err
	}
	authed, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return models.User{}, err
	}
	return authed.User, s.establish(authed)
}

// Register creates an account and starts a session.
func (s *Session) Register(ctx context.Context, input models.RegisterInput) (models.User, error) {
	if err := validate.Registration(input.Email, input.Password, input.Username, input.DisplayName); err != nil {
		return models.User{}, err
	}
	authed, err := s.auth.Register(ctx, input)
	if err != nil {
		return models.User{}, err
	}
	return authed.User, s.establish(authed)
}

// SendOTP requests a one-time code for the phone number.
func (s *Session) SendOTP(ctx context.Context, phone string) error {
	if err := validate.Phone(phone); err != nil {
		return err
	}
	_, err := s.auth.SendOTP(ctx, phone)
	return err
}

// VerifyOTP exchanges the code for a session.
func (s *Session) VerifyOTP(ctx context.Context, phone, otp string) (models.User, error) {
	if err := validate.Phone(phone); err != nil {
		return models.User{}, err
	}
	if err := validate.OTP(otp); err != nil {
		return models.User{}, err
	}
	authed, err := s.auth.VerifyOTP(ctx, phone, otp)
	if err != nil {
		return models.User{}, err
	}
	return authed.User, s.establish(authed)
}

// Logout invalidates the session server-side on a best-effort basis,
// then clears local credentials unconditionally.
func (s *Session) Logout(ctx context.Context) {
	if err := s.auth.Logout(ctx); err != nil {
		logging.L().Warn("remote logout failed", zap.Error(err))
	}
	s.clear()
}

// Refresh exchanges the refresh token for a new pair. A failed
// exchange means the session cannot recover silently: credentials are
// cleared and the session goes anonymous.
func (s *Session) Refresh(ctx context.Context) error {
	s.mu.RLock()
	refresh := s.refreshToken
	s.mu.RUnlock()

	pair, err := s.auth.Refresh(ctx, refresh)
	if err != nil {
		logging.L().Info("token refresh failed, session is anonymous", zap.Error(err))
		s.clear()
		return err
	}

	s.mu.Lock()
	s.token = pair.Token
	s.refreshToken = pair.RefreshToken
	s.mu.Unlock()

	if err := s.st.Set(store.KeyAuthToken, pair.Token); err != nil {
		return err
	}
	return s.st.Set(store.KeyRefreshToken, pair.RefreshToken)
}

// UpdateUser merges a server-confirmed profile into the cached
// snapshot and re-persists it.
func (s *Session) UpdateUser(user models.User) error {
	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	return store.SetObject(s.st, store.KeyUser, user)
}

func (s *Session) establish(authed models.AuthUser) error {
	s.mu.Lock()
	s.state = StateAuthenticated
	s.user = authed.User
	s.token = authed.Token
	s.refreshToken = authed.RefreshToken
	s.mu.Unlock()

	if err := s.st.Set(store.KeyAuthToken, authed.Token); err != nil {
		return err
	}
	if err := s.st.Set(store.KeyRefreshToken, authed.RefreshToken); err != nil {
		return err
	}
	return store.SetObject(s.st, store.KeyUser, authed.User)
}

func (s *Session) clear() {
	s.mu.Lock()
	s.state = StateAnonymous
	s.user = models.User{}
	s.token = ""
	s.refreshToken = ""
	s.mu.Unlock()

	for _, key := range []string{store.KeyAuthToken, store.KeyRefreshToken, store.KeyUser} {
		if err := s.st.Delete(key); err != nil {
			logging.L().Warn("clearing persisted credential failed", zap.String("key", key), zap.Error(err))
		}
	}
}
