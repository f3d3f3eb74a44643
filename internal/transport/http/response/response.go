package response

import (
	"encoding/json"
	"errors"
	"net/http"

	zlog "github.com/rs/zerolog/log"

	"github.com/evento/discovery-service/internal/domain"
)

// Envelope is the success shape: {success, count?, message?, data}.
type Envelope struct {
	Success bool   `json:"success"`
	Count   *int   `json:"count,omitempty"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// ErrorBody is the failure shape: {success: false, error: {...}}. There are
// no partial successes; a request either fully succeeds or reports exactly
// one error.
type ErrorBody struct {
	Success bool      `json:"success"`
	Error   ErrorInfo `json:"error"`
}

type ErrorInfo struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func Data(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, Envelope{Success: true, Data: data})
}

// DataCount is used by listing endpoints, which carry an item count.
func DataCount(w http.ResponseWriter, status int, count int, data any) {
	writeJSON(w, status, Envelope{Success: true, Count: &count, Data: data})
}

// Accepted is used by the public submission endpoint, which pairs the data
// with a human-readable message.
func Accepted(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, Envelope{Success: true, Message: message, Data: data})
}

func Fail(w http.ResponseWriter, status int, code, message string, fields map[string]string) {
	writeJSON(w, status, ErrorBody{Success: false, Error: ErrorInfo{
		Code:    code,
		Message: message,
		Fields:  fields,
	}})
}

// Err maps a domain error onto its HTTP status. Anything that is not a
// domain.AppError is reported as a generic internal error; details stay in
// the logs.
func Err(w http.ResponseWriter, err error) {
	if err == nil {
		Fail(w, http.StatusInternalServerError, "internal_error", "unknown error", nil)
		return
	}

	var ae *domain.AppError
	if errors.As(err, &ae) {
		Fail(w, statusFromCode(ae.Code), string(ae.Code), ae.Message, ae.Meta)
		return
	}

	zlog.Error().Err(err).Msg("unhandled error")
	Fail(w, http.StatusInternalServerError, "internal_error", "internal error", nil)
}

func statusFromCode(code domain.ErrCode) int {
	switch code {
	case domain.CodeValidation, domain.CodeInvalidCoords, domain.CodeInvalidID:
		return http.StatusBadRequest
	case domain.CodeNotFound:
		return http.StatusNotFound
	case domain.CodeForbidden:
		return http.StatusForbidden
	case domain.CodeInvalidState:
		return http.StatusConflict
	case domain.CodeQueryFailed:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zlog.Error().Err(err).Msg("response encode failed")
	}
}
