package domain

import "fmt"

type ErrCode string

const (
	CodeValidation    ErrCode = "validation_error"
	CodeInvalidCoords ErrCode = "invalid_coordinates"
	CodeInvalidID     ErrCode = "invalid_id"
	CodeNotFound      ErrCode = "not_found"
	CodeForbidden     ErrCode = "forbidden"
	CodeInvalidState  ErrCode = "invalid_state"
	CodeQueryFailed   ErrCode = "query_failed"
)

// AppError is the single error type crossing layer boundaries.
// Meta carries per-field details for validation failures.
type AppError struct {
	Code    ErrCode
	Message string
	Meta    map[string]string
}

func (e *AppError) Error() string {
	if len(e.Meta) == 0 {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Meta)
}

func ErrValidation(msg string) error { return &AppError{Code: CodeValidation, Message: msg} }
func ErrValidationMeta(msg string, meta map[string]string) error {
	return &AppError{Code: CodeValidation, Message: msg, Meta: meta}
}
func ErrInvalidCoords(msg string) error { return &AppError{Code: CodeInvalidCoords, Message: msg} }
func ErrInvalidID(msg string) error     { return &AppError{Code: CodeInvalidID, Message: msg} }
func ErrNotFound(msg string) error      { return &AppError{Code: CodeNotFound, Message: msg} }
func ErrForbidden(msg string) error     { return &AppError{Code: CodeForbidden, Message: msg} }
func ErrInvalidState(msg string) error  { return &AppError{Code: CodeInvalidState, Message: msg} }
func ErrQueryFailed(msg string) error   { return &AppError{Code: CodeQueryFailed, Message: msg} }
