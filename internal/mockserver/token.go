package mockserver

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	accessTokenTTL  = 24 * time.Hour
	refreshTokenTTL = 30 * 24 * time.Hour
)

type sessionClaims struct {
	TokenUse string `json:"tokenUse"` // access or refresh
	jwt.RegisteredClaims
}

func (s *Server) mintToken(userID, use string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		TokenUse: use,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    "realscroll-mockserver",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// mintPair issues a fresh access/refresh token pair for the user.
func (s *Server) mintPair(userID string) (access, refresh string, err error) {
	if access, err = s.mintToken(userID, "access", accessTokenTTL); err != nil {
		return "", "", err
	}
	if refresh, err = s.mintToken(userID, "refresh", refreshTokenTTL); err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func (s *Server) parseToken(token, use string) (string, error) {
	var claims sessionClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", errors.New("invalid token")
	}
	if claims.TokenUse != use {
		return "", errors.New("wrong token use")
	}
	return claims.Subject, nil
}

// requireAuth guards protected routes: a missing or invalid bearer
// token short-circuits with a 401 envelope.
func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			writeErrorString(w, http.StatusUnauthorized, "Authentication required", "UNAUTHORIZED")
			return
		}
		if _, err := s.parseToken(token, "access"); err != nil {
			writeErrorString(w, http.StatusUnauthorized, "Invalid or expired token", "TOKEN_INVALID")
			return
		}
		next(w, r)
	}
}
