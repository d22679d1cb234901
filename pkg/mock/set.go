package mock

import (
	"net/http"

	"github.com/swan07222/RealScroll-app/pkg/api"
	"github.com/swan07222/RealScroll-app/pkg/gateway"
)

// NewSet builds the mock gateway set over shared fixture data.
func NewSet(d *Data) gateway.Set {
	return gateway.Set{
		Auth:          &mockAuth{d: d},
		Posts:         &mockPosts{d: d},
		Comments:      &mockComments{d: d},
		Notifications: &mockNotifications{d: d},
		Users:         &mockUsers{d: d},
	}
}

// Errors use the same shape as the remote path so hook code cannot tell
// the two apart.
func errNotFound(msg string) error {
	return &api.APIError{StatusCode: http.StatusNotFound, Code: "NOT_FOUND", Message: msg}
}

func errInvalid(msg string) error {
	return &api.APIError{StatusCode: http.StatusBadRequest, Code: "VALIDATION", Message: msg}
}

func errUnauthorized(code, msg string) error {
	return &api.APIError{StatusCode: http.StatusUnauthorized, Code: code, Message: msg}
}

func errConflict(msg string) error {
	return &api.APIError{StatusCode: http.StatusConflict, Code: "CONFLICT", Message: msg}
}
