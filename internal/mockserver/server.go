// Package mockserver serves the full RealScroll REST surface over the
// pkg/mock fixture store, so the real transport path can be exercised
// without a backend. Responses match the production envelope byte for
// byte in shape; tokens are real signed JWTs.
package mockserver

import (
	"net/http"
	"strconv"

	"github.com/swan07222/RealScroll-app/internal/logging"
	"github.com/swan07222/RealScroll-app/internal/metrics"
	"github.com/swan07222/RealScroll-app/pkg/gateway"
	"github.com/swan07222/RealScroll-app/pkg/mock"
)

// Server holds the fixture store and the signing secret.
type Server struct {
	data   *mock.Data
	set    gateway.Set
	secret []byte
}

// New builds a server over the fixture data.
func New(data *mock.Data, jwtSecret string) *Server {
	return &Server{
		data:   data,
		set:    mock.NewSet(data),
		secret: []byte(jwtSecret),
	}
}

// Handler returns the routed handler with logging and metrics
// middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth/login", s.handleLogin)
	mux.HandleFunc("POST /api/auth/register", s.handleRegister)
	mux.HandleFunc("POST /api/auth/send-otp", s.handleSendOTP)
	mux.HandleFunc("POST /api/auth/verify-otp", s.handleVerifyOTP)
	mux.HandleFunc("POST /api/auth/logout", s.requireAuth(s.handleLogout))
	mux.HandleFunc("POST /api/auth/refresh", s.handleRefresh)
	mux.HandleFunc("POST /api/auth/forgot-password", s.handleForgotPassword)
	mux.HandleFunc("GET /api/auth/me", s.requireAuth(s.handleCurrentUser))

	mux.HandleFunc("GET /api/posts/feed", s.requireAuth(s.handleFeed))
	mux.HandleFunc("GET /api/posts/search", s.requireAuth(s.handleSearchPosts))
	mux.HandleFunc("GET /api/posts/{id}", s.requireAuth(s.handlePostByID))
	mux.HandleFunc("POST /api/posts", s.requireAuth(s.handleCreatePost))
	mux.HandleFunc("POST /api/posts/{id}/like", s.requireAuth(s.handleLikePost))
	mux.HandleFunc("POST /api/posts/{id}/save", s.requireAuth(s.handleSavePost))
	mux.HandleFunc("DELETE /api/posts/{id}", s.requireAuth(s.handleDeletePost))

	mux.HandleFunc("GET /api/posts/{id}/comments", s.requireAuth(s.handleComments))
	mux.HandleFunc("POST /api/posts/{id}/comments", s.requireAuth(s.handleAddComment))
	mux.HandleFunc("POST /api/comments/{id}/like", s.requireAuth(s.handleLikeComment))
	mux.HandleFunc("DELETE /api/comments/{id}", s.requireAuth(s.handleDeleteComment))

	mux.HandleFunc("GET /api/notifications", s.requireAuth(s.handleNotifications))
	mux.HandleFunc("GET /api/notifications/unread-count", s.requireAuth(s.handleUnreadCount))
	mux.HandleFunc("PATCH /api/notifications/{id}/read", s.requireAuth(s.handleMarkRead))
	mux.HandleFunc("POST /api/notifications/read-all", s.requireAuth(s.handleMarkAllRead))
	mux.HandleFunc("DELETE /api/notifications/{id}", s.requireAuth(s.handleDeleteNotification))

	mux.HandleFunc("GET /api/users/search", s.requireAuth(s.handleSearchUsers))
	mux.HandleFunc("GET /api/users/username/{username}", s.requireAuth(s.handleUserByUsername))
	mux.HandleFunc("PATCH /api/users/me", s.requireAuth(s.handleUpdateProfile))
	mux.HandleFunc("GET /api/users/{id}", s.requireAuth(s.handleUserByID))
	mux.HandleFunc("GET /api/users/{id}/profile", s.requireAuth(s.handleUserProfile))
	mux.HandleFunc("POST /api/users/{id}/follow", s.requireAuth(s.handleFollow))
	mux.HandleFunc("GET /api/users/{id}/followers", s.requireAuth(s.handleFollowers))
	mux.HandleFunc("GET /api/users/{id}/following", s.requireAuth(s.handleFollowing))
	mux.HandleFunc("GET /api/users/{id}/posts", s.requireAuth(s.handleUserPosts))

	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		writeData(w, map[string]string{"status": "ok"})
	})

	return logging.Middleware(metrics.Middleware(mux))
}

// pageParams reads ?page and ?limit with the client defaults.
func pageParams(r *http.Request) (page, limit int) {
	page, limit = 1, 20
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		limit = v
	}
	return page, limit
}
