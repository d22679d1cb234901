package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// Upload issues a multipart POST. Text fields go in as form values; file,
// when non-nil, is attached under fileField with the given name. The
// Content-Type is left to the multipart writer so the boundary is set
// correctly; auth and envelope handling match the JSON path.
func Upload[T any](ctx context.Context, c *Client, path string, fields map[string]string, fileField, fileName string, file io.Reader) (T, error) {
	var zero T

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return zero, fmt.Errorf("write field %s: %w", k, err)
		}
	}
	if file != nil {
		part, err := w.CreateFormFile(fileField, fileName)
		if err != nil {
			return zero, fmt.Errorf("create form file: %w", err)
		}
		if _, err := io.Copy(part, file); err != nil {
			return zero, fmt.Errorf("copy file content: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return zero, err
	}

	raw, status, err := c.exchange(ctx, http.MethodPost, path, &buf, w.FormDataContentType())
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
