package httputil

import (
	"errors"
	"io"
	"net/http"

	"github.com/bytedance/sonic"

	errorvalues "github.com/limbo/agriquest/internal/error_values"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string, details error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	resp := ErrorResponse{
		Code:    statusCode,
		Message: message,
	}

	if details != nil {
		resp.Details = details.Error()
	}

	sonic.ConfigFastest.NewEncoder(w).Encode(resp)
}

func WriteJSONResponse(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if body != nil {
		sonic.ConfigDefault.NewEncoder(w).Encode(body)
	}
}

// DecodeJSON reads one JSON document from body into v.
func DecodeJSON(body io.Reader, v any) error {
	if body == nil {
		return io.EOF
	}
	return sonic.ConfigDefault.NewDecoder(body).Decode(v)
}

// StatusFromError maps service errors to a response status and a client-facing message.
// Unknown errors are 500.
func StatusFromError(err error) (int, string) {
	switch {
	case errors.Is(err, errorvalues.ErrUnauthenticated), errors.Is(err, errorvalues.ErrInvalidToken):
		return http.StatusUnauthorized, "authorization required"
	case errors.Is(err, errorvalues.ErrQuestNotFound):
		return http.StatusNotFound, "quest doesn't exist"
	case errors.Is(err, errorvalues.ErrUserNotFound):
		return http.StatusNotFound, "user doesn't exist"
	case errors.Is(err, errorvalues.ErrUserExists):
		return http.StatusConflict, "user with such name already exists"
	case errors.Is(err, errorvalues.ErrWrongCredentials):
		return http.StatusForbidden, "invalid username or password"
	case errors.Is(err, errorvalues.ErrValidation), errors.Is(err, errorvalues.ErrInvalidQuestType),
		errors.Is(err, errorvalues.ErrInvalidAmount):
		return http.StatusBadRequest, "invalid request"
	case errors.Is(err, errorvalues.ErrStore):
		return http.StatusServiceUnavailable, "storage is temporarily unavailable, retry later"
	default:
		return http.StatusInternalServerError, "internal error"
	}
}
