package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/swan07222/RealScroll-app/internal/metrics"
	"github.com/swan07222/RealScroll-app/pkg/models"
)

// envelope is the uniform response wrapper every endpoint returns.
// Success responses fill Data; failures fill Error (or Message) and Code.
type envelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
}

// pageEnvelope wraps list endpoints: data plus a pagination block.
type pageEnvelope[T any] struct {
	Success    bool            `json:"success"`
	Data       []T             `json:"data"`
	Pagination models.PageInfo `json:"pagination"`
	Message    string          `json:"message,omitempty"`
	Error      string          `json:"error,omitempty"`
	Code       string          `json:"code,omitempty"`
}

// Get issues a GET and decodes the envelope data.
func Get[T any](ctx context.Context, c *Client, path string) (T, error) {
	return do[T](ctx, c, http.MethodGet, path, nil)
}

// Post issues a POST with an optional JSON body.
func Post[T any](ctx context.Context, c *Client, path string, body any) (T, error) {
	return do[T](ctx, c, http.MethodPost, path, body)
}

// Patch issues a PATCH with a JSON body.
func Patch[T any](ctx context.Context, c *Client, path string, body any) (T, error) {
	return do[T](ctx, c, http.MethodPatch, path, body)
}

// Delete issues a DELETE.
func Delete[T any](ctx context.Context, c *Client, path string) (T, error) {
	return do[T](ctx, c, http.MethodDelete, path, nil)
}

// GetPage issues a GET against a list endpoint and decodes the page.
func GetPage[T any](ctx context.Context, c *Client, path string) (models.Page[T], error) {
	var page models.Page[T]

	raw, status, err := c.exchange(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return page, err
	}

	var env pageEnvelope[T]
	if decodeErr := json.Unmarshal(raw, &env); decodeErr != nil {
		if status < 200 || status >= 300 {
			return page, &APIError{StatusCode: status, Message: genericMessage(status)}
		}
		return page, fmt.Errorf("decode response: %w", decodeErr)
	}
	if err := envelopeError(status, env.Success, env.Error, env.Message, env.Code); err != nil {
		return page, err
	}

	page.Items = env.Data
	page.PageInfo = env.Pagination
	return page, nil
}

func do[T any](ctx context.Context, c *Client, method, path string, body any) (T, error) {
	var zero T

	var payload io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return zero, fmt.Errorf("encode request: %w", err)
		}
		payload = bytes.NewReader(b)
	}

	raw, status, err := c.exchange(ctx, method, path, payload, "application/json")
	if err != nil {
		return zero, err
	}

	var env envelope[T]
	if decodeErr := json.Unmarshal(raw, &env); decodeErr != nil {
		if status < 200 || status >= 300 {
			return zero, &APIError{StatusCode: status, Message: genericMessage(status)}
		}
		return zero, fmt.Errorf("decode response: %w", decodeErr)
	}
	if err := envelopeError(status, env.Success, env.Error, env.Message, env.Code); err != nil {
		return zero, err
	}
	return env.Data, nil
}

// exchange performs one network round trip and returns the raw body.
// contentType is empty for requests whose body sets its own (multipart).
func (c *Client) exchange(ctx context.Context, method, path string, body io.Reader, contentType string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, 0, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	c.applyAuth(req)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordAPIRequest(method, 0, time.Since(start))
		if isDeadline(err) {
			return nil, 0, timeoutError()
		}
		return nil, 0, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()
	metrics.RecordAPIRequest(method, resp.StatusCode, time.Since(start))

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		if isDeadline(err) {
			return nil, 0, timeoutError()
		}
		return nil, 0, fmt.Errorf("read response: %w", err)
	}
	return raw, resp.StatusCode, nil
}

// envelopeError converts a decoded envelope into an APIError when the
// exchange did not succeed: non-2xx statuses use the server-provided
// message and code when present, and success:false on a 2xx response is
// a business error with the same shape.
func envelopeError(status int, success bool, errMsg, message, code string) error {
	if status >= 200 && status < 300 && success {
		return nil
	}
	msg := errMsg
	if msg == "" {
		msg = message
	}
	if msg == "" {
		msg = genericMessage(status)
	}
	return &APIError{StatusCode: status, Code: code, Message: msg}
}

func genericMessage(status int) string {
	if text := http.StatusText(status); text != "" {
		return text
	}
	return fmt.Sprintf("server returned %d", status)
}
