package dto

import (
	"net/http"
	"strings"
)

// Error codes used by the HTTP layer itself. Domain errors carry their own
// codes and are mapped to status codes by GetHTTPStatus.
const (
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeValidation   = "VALIDATION_ERROR"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeConflict     = "CONFLICT"
	ErrCodeInternal     = "INTERNAL_ERROR"
)

// errorCodeStatus maps exact error codes to HTTP status codes. Codes that
// follow a family convention (suffix or prefix) are handled by GetHTTPStatus.
var errorCodeStatus = map[string]int{
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeValidation:   http.StatusBadRequest,
	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,
	ErrCodeNotFound:     http.StatusNotFound,
	ErrCodeConflict:     http.StatusConflict,
	ErrCodeInternal:     http.StatusInternalServerError,

	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	"TOKEN_EXPIRED":       http.StatusUnauthorized,
	"TOKEN_INVALID":       http.StatusUnauthorized,
	"ACCOUNT_DEACTIVATED": http.StatusForbidden,

	"ALREADY_EXISTS":       http.StatusConflict,
	"NAME_ALREADY_EXISTS":  http.StatusConflict,
	"CONCURRENCY_CONFLICT": http.StatusConflict,

	"PASSWORD_HASH_ERROR": http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for a domain error code.
// Unknown codes fall back to their family convention, then to 500.
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeStatus[code]; ok {
		return status
	}
	switch {
	case strings.HasSuffix(code, "_NOT_FOUND"):
		return http.StatusNotFound
	case strings.HasSuffix(code, "_ALREADY_EXISTS"), strings.HasSuffix(code, "_IN_USE"):
		return http.StatusConflict
	case strings.HasSuffix(code, "_MISMATCH"):
		return http.StatusUnprocessableEntity
	case strings.HasPrefix(code, "INVALID_"):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
