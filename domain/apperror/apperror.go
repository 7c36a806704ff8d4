package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode identifies an error category across the application.
type ErrorCode string

const (
	// Authentication / authorization (1xxx)
	CodeNoCredentials      ErrorCode = "AUTH_1001"
	CodeInvalidToken       ErrorCode = "AUTH_1002"
	CodeInsufficientRole   ErrorCode = "AUTH_1003"
	CodeInvalidCredentials ErrorCode = "AUTH_1004"
	CodeUserAlreadyExists  ErrorCode = "AUTH_1005"

	// Validation (2xxx)
	CodeInvalidRequest ErrorCode = "VALID_2001"

	// Rate limiting (3xxx)
	CodeRateLimited ErrorCode = "RATE_3001"

	// Resources (4xxx)
	CodeUserNotFound   ErrorCode = "RES_4001"
	CodeBookNotFound   ErrorCode = "RES_4002"
	CodeAuthorNotFound ErrorCode = "RES_4003"

	// Infrastructure (5xxx)
	CodeStoreError ErrorCode = "DB_5001"
)

// AppError is a structured application error carrying a stable code, a
// user-facing message and an optional wrapped cause. The message is what the
// HTTP boundary returns; the cause stays server-side.
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Cause   error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(code ErrorCode, message string, cause error) *AppError {
	return &AppError{Code: code, Message: message, Cause: cause}
}

// Constructors for the error taxonomy.

func NoCredentials() *AppError {
	return New(CodeNoCredentials, "No token provided", nil)
}

func InvalidToken(cause error) *AppError {
	return New(CodeInvalidToken, "Invalid or expired token", cause)
}

func InsufficientRole() *AppError {
	return New(CodeInsufficientRole, "Forbidden: insufficient permissions", nil)
}

// InvalidCredentials covers both an unknown username and a password mismatch
// so the response does not leak which part was wrong.
func InvalidCredentials() *AppError {
	return New(CodeInvalidCredentials, "Invalid credentials", nil)
}

func UserAlreadyExists() *AppError {
	return New(CodeUserAlreadyExists, "User already exists", nil)
}

func InvalidRequest(message string) *AppError {
	return New(CodeInvalidRequest, message, nil)
}

func RateLimited() *AppError {
	return New(CodeRateLimited, "Too many attempts, try again later", nil)
}

func UserNotFound() *AppError {
	return New(CodeUserNotFound, "User not found", nil)
}

func BookNotFound() *AppError {
	return New(CodeBookNotFound, "Book not found", nil)
}

func AuthorNotFound() *AppError {
	return New(CodeAuthorNotFound, "Author not found", nil)
}

func StoreError(cause error) *AppError {
	return New(CodeStoreError, "Internal server error", cause)
}

// HTTPStatus maps an error to the status code the HTTP boundary should write.
// Unknown errors map to 500.
func HTTPStatus(err error) int {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}
	switch appErr.Code {
	case CodeNoCredentials, CodeInvalidCredentials:
		return http.StatusUnauthorized
	case CodeInvalidToken, CodeInsufficientRole:
		return http.StatusForbidden
	case CodeUserAlreadyExists:
		return http.StatusBadRequest
	case CodeInvalidRequest:
		return http.StatusUnprocessableEntity
	case CodeRateLimited:
		return http.StatusTooManyRequests
	case CodeUserNotFound, CodeBookNotFound, CodeAuthorNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// UserMessage extracts the user-facing message from an error, falling back to
// a generic message for anything that is not an AppError.
func UserMessage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "Internal server error"
}
