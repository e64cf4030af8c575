package http

import (
	"encoding/json"
	"net/http"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/logger"
)

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("failed to encode response body", "error", err)
	}
}

type errorBody struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Error      string `json:"error"`
}

// respondError translates a service error into the wire error shape. Errors
// without a known kind are logged and hidden behind a generic 500.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	label := "Internal Server Error"
	message := err.Error()

	switch domain.KindOf(err) {
	case domain.KindNotFound:
		status, label = http.StatusNotFound, "Not Found"
	case domain.KindBadRequest:
		status, label = http.StatusBadRequest, "Bad Request"
	case domain.KindUnauthorized:
		status, label = http.StatusUnauthorized, "Unauthorized"
	case domain.KindForbidden:
		status, label = http.StatusForbidden, "Forbidden"
	case domain.KindConflict:
		status, label = http.StatusConflict, "Conflict"
	default:
		logger.WithRequest(r.Method, r.URL.Path).Error("request failed", "error", err)
		message = "internal server error"
	}

	respondJSON(w, status, errorBody{StatusCode: status, Message: message, Error: label})
}

func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domain.BadRequestf("invalid request body")
	}
	return nil
}
