package mockserver

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/swan07222/RealScroll-app/internal/logging"
	"github.com/swan07222/RealScroll-app/pkg/api"
	"github.com/swan07222/RealScroll-app/pkg/models"
)

// Every response uses the uniform envelope: {success, data} on
// success, {success:false, error, code} on failure, list endpoints
// add a pagination block.

type dataEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type pageResponse struct {
	Success    bool            `json:"success"`
	Data       any             `json:"data"`
	Pagination models.PageInfo `json:"pagination"`
}

type errorEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.L().Error("encode response failed", zap.Error(err))
	}
}

func writeData(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, dataEnvelope{Success: true, Data: data})
}

func writePage[T any](w http.ResponseWriter, page models.Page[T]) {
	items := page.Items
	if items == nil {
		items = []T{}
	}
	writeJSON(w, http.StatusOK, pageResponse{
		Success:    true,
		Data:       items,
		Pagination: page.PageInfo,
	})
}

// writeError maps gateway errors onto the wire. APIErrors carry their
// own status and code; anything else is a 500.
func writeError(w http.ResponseWriter, err error) {
	if apiErr, ok := api.AsAPIError(err); ok {
		writeJSON(w, apiErr.StatusCode, errorEnvelope{Error: apiErr.Message, Code: apiErr.Code})
		return
	}
	writeJSON(w, http.StatusInternalServerError, errorEnvelope{Error: "Internal server error"})
}

func writeErrorString(w http.ResponseWriter, status int, msg, code string) {
	writeJSON(w, status, errorEnvelope{Error: msg, Code: code})
}
