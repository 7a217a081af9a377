package dto

import (
	"net/http"
	"strings"
)

// General error codes
const (
	ErrCodeInternal   = "INTERNAL_ERROR"
	ErrCodeBadRequest = "BAD_REQUEST"
	ErrCodeValidation = "VALIDATION_ERROR"
)

// Authentication error codes
const (
	ErrCodeUnauthorized       = "UNAUTHORIZED"
	ErrCodeForbidden          = "FORBIDDEN"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeTokenExpired       = "TOKEN_EXPIRED"
	ErrCodeTokenInvalid       = "TOKEN_INVALID"
	ErrCodeTokenMaxRefresh    = "TOKEN_MAX_REFRESH"
)

// Resource error codes
const (
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeAlreadyExists = "ALREADY_EXISTS"
	ErrCodeResourceInUse = "RESOURCE_IN_USE"
)

// Import error codes
const (
	ErrCodeOverwriteNotConfirmed = "OVERWRITE_NOT_CONFIRMED"
	ErrCodeMissingColumns        = "MISSING_COLUMNS"
	ErrCodeFileTooLarge          = "FILE_TOO_LARGE"
	ErrCodeUnsupportedFileType   = "UNSUPPORTED_FILE_TYPE"
	ErrCodeEmptyFile             = "EMPTY_FILE"
	ErrCodeInvalidEncoding       = "INVALID_ENCODING"
	ErrCodeTooManyRows           = "TOO_MANY_ROWS"
	ErrCodeInvalidImportMode     = "INVALID_IMPORT_MODE"
)

// Rate limiting error codes
const (
	ErrCodeRateLimited = "RATE_LIMITED"
)

// errorCodeHTTPStatus maps domain error codes to HTTP status codes
var errorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:   http.StatusInternalServerError,
	ErrCodeBadRequest: http.StatusBadRequest,
	ErrCodeValidation: http.StatusBadRequest,

	ErrCodeUnauthorized:       http.StatusUnauthorized,
	ErrCodeInvalidCredentials: http.StatusUnauthorized,
	ErrCodeTokenExpired:       http.StatusUnauthorized,
	ErrCodeTokenInvalid:       http.StatusUnauthorized,
	ErrCodeTokenMaxRefresh:    http.StatusUnauthorized,
	ErrCodeForbidden:          http.StatusForbidden,

	ErrCodeNotFound:      http.StatusNotFound,
	ErrCodeAlreadyExists: http.StatusConflict,
	ErrCodeResourceInUse: http.StatusConflict,

	ErrCodeOverwriteNotConfirmed: http.StatusConflict,
	ErrCodeFileTooLarge:          http.StatusRequestEntityTooLarge,
	ErrCodeUnsupportedFileType:   http.StatusUnsupportedMediaType,
	ErrCodeMissingColumns:        http.StatusUnprocessableEntity,
	ErrCodeEmptyFile:             http.StatusUnprocessableEntity,
	ErrCodeInvalidEncoding:       http.StatusUnprocessableEntity,
	ErrCodeTooManyRows:           http.StatusUnprocessableEntity,
	ErrCodeInvalidImportMode:     http.StatusUnprocessableEntity,

	ErrCodeRateLimited: http.StatusTooManyRequests,

	"INVALID_STATE": http.StatusUnprocessableEntity,
}

// GetHTTPStatus returns the HTTP status for a domain error code. Codes not
// in the table fall back by naming convention: INVALID_* codes are client
// errors, everything else is a server error.
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	if strings.HasPrefix(code, "INVALID_") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
