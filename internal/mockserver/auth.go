package mockserver

import (
	"encoding/json"
	"net/http"

	"github.com/swan07222/RealScroll-app/pkg/models"
)

type credentialsBody struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	Phone        string `json:"phone"`
	OTP          string `json:"otp"`
	RefreshToken string `json:"refreshToken"`
}

func decodeBody[T any](w http.ResponseWriter, r *http.Request) (T, bool) {
	var body T
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErrorString(w, http.StatusBadRequest, "Invalid request body", "BAD_REQUEST")
		return body, false
	}
	return body, true
}

// signSession swaps the fixture gateway's placeholder tokens for real
// signed JWTs so the auth middleware can verify them.
func (s *Server) signSession(w http.ResponseWriter, authed models.AuthUser) (models.AuthUser, bool) {
	access, refresh, err := s.mintPair(authed.ID)
	if err != nil {
		writeError(w, err)
		return authed, false
	}
	authed.Token = access
	authed.RefreshToken = refresh
	return authed, true
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeBody[credentialsBody](w, r)
	if !ok {
		return
	}
	authed, err := s.set.Auth.Login(r.Context(), body.Email, body.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	if authed, ok = s.signSession(w, authed); ok {
		writeData(w, authed)
	}
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeBody[models.RegisterInput](w, r)
	if !ok {
		return
	}
	authed, err := s.set.Auth.Register(r.Context(), body)
	if err != nil {
		writeError(w, err)
		return
	}
	if authed, ok = s.signSession(w, authed); ok {
		writeData(w, authed)
	}
}

func (s *Server) handleSendOTP(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeBody[credentialsBody](w, r)
	if !ok {
		return
	}
	sent, err := s.set.Auth.SendOTP(r.Context(), body.Phone)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, map[string]bool{"sent": sent})
}

func (s *Server) handleVerifyOTP(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeBody[credentialsBody](w, r)
	if !ok {
		return
	}
	authed, err := s.set.Auth.VerifyOTP(r.Context(), body.Phone, body.OTP)
	if err != nil {
		writeError(w, err)
		return
	}
	if authed, ok = s.signSession(w, authed); ok {
		writeData(w, authed)
	}
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := s.set.Auth.Logout(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, map[string]bool{"loggedOut": true})
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeBody[credentialsBody](w, r)
	if !ok {
		return
	}
	userID, err := s.parseToken(body.RefreshToken, "refresh")
	if err != nil {
		writeErrorString(w, http.StatusUnauthorized, "Invalid refresh token", "REFRESH_INVALID")
		return
	}
	access, refresh, err := s.mintPair(userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, models.TokenPair{Token: access, RefreshToken: refresh})
}

func (s *Server) handleForgotPassword(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeBody[credentialsBody](w, r)
	if !ok {
		return
	}
	sent, err := s.set.Auth.ForgotPassword(r.Context(), body.Email)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, map[string]bool{"sent": sent})
}

func (s *Server) handleCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, err := s.set.Auth.CurrentUser(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, user)
}
