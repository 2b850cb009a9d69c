package errors

import (
	"net/http"

	"guessr/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches any BaseError carrying the same error code, so copies made by
// WithDetails still satisfy errors.Is against the predefined values.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Error codes exposed to clients
const (
	CodeSessionNotFound     = "SESSION_NOT_FOUND"
	CodeGameAlreadyComplete = "GAME_ALREADY_COMPLETE"
	CodeInsufficientContent = "INSUFFICIENT_CONTENT"
	CodeLocationNotFound    = "LOCATION_NOT_FOUND"
	CodeStorageUnavailable  = "STORAGE_UNAVAILABLE"
	CodeValidationFailed    = "VALIDATION_FAILED"
	CodeUserNotFound        = "USER_NOT_FOUND"
	CodeForbidden           = "FORBIDDEN"
	CodeInternalError       = "INTERNAL_ERROR"
)

// Predefined error types
var (
	// Session-related errors
	ErrSessionNotFound = NewBaseError(
		http.StatusNotFound,
		CodeSessionNotFound,
		"ゲームセッションが見つかりません",
		"",
	)

	ErrGameAlreadyComplete = NewBaseError(
		http.StatusConflict,
		CodeGameAlreadyComplete,
		"このゲームは既に終了しています",
		"",
	)

	// Catalog-related errors
	ErrInsufficientContent = NewBaseError(
		http.StatusServiceUnavailable,
		CodeInsufficientContent,
		"出題できる温泉が不足しています",
		"",
	)

	ErrLocationNotFound = NewBaseError(
		http.StatusInternalServerError,
		CodeLocationNotFound,
		"出題地点のデータが見つかりません",
		"",
	)

	// Player-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		CodeUserNotFound,
		"プレイヤーが見つかりません",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		CodeValidationFailed,
		"入力内容が正しくありません",
		"",
	)

	// General errors
	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		CodeForbidden,
		"この操作は許可されていません",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		CodeInternalError,
		"システム内部エラーが発生しました",
		"",
	)
)

// StorageUnavailableError represents a failed or timed out persistence call, implementing the AppError interface
type StorageUnavailableError struct {
	err     error
	details string
}

// NewStorageUnavailableError creates a storage-related error
func NewStorageUnavailableError(err error, details string) AppError {
	return &StorageUnavailableError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *StorageUnavailableError) Error() string {
	return errors.Wrap(e.err, "storage unavailable").Error()
}

// Unwrap exposes the driver error
func (e *StorageUnavailableError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *StorageUnavailableError) HTTPCode() int {
	return http.StatusServiceUnavailable
}

// ErrorCode returns the business error code
func (e *StorageUnavailableError) ErrorCode() string {
	return CodeStorageUnavailable
}

// Message returns the user-friendly error message
func (e *StorageUnavailableError) Message() string {
	return "データストアに接続できません。しばらくしてから再度お試しください"
}

// Details returns detailed error information
func (e *StorageUnavailableError) Details() string {
	return e.details
}

// KindOf classifies err by its business error code. Errors that carry no
// AppError are reported as CodeInternalError.
func KindOf(err error) string {
	if err == nil {
		return ""
	}

	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.ErrorCode()
	}

	return CodeInternalError
}
