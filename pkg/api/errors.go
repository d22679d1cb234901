package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// APIError is the normalized failure shape for every non-success
// outcome: transport timeouts (statusCode 408), non-2xx responses and
// success:false envelopes on 2xx responses.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api error %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// AsAPIError checks if an error is an APIError and returns it.
func AsAPIError(err error) (*APIError, bool) {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// IsNotFound reports whether err is a not-found API error.
func IsNotFound(err error) bool {
	ae, ok := AsAPIError(err)
	return ok && ae.StatusCode == http.StatusNotFound
}

// IsTimeout reports whether err is a request timeout.
func IsTimeout(err error) bool {
	ae, ok := AsAPIError(err)
	return ok && ae.StatusCode == http.StatusRequestTimeout
}

func timeoutError() *APIError {
	return &APIError{StatusCode: http.StatusRequestTimeout, Message: "Request timeout"}
}

func isDeadline(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
