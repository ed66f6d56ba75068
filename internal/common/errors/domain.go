package commonerrors

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorCategory string

const (
	CategoryValidation   ErrorCategory = "VALIDATION"
	CategoryUnauthorized ErrorCategory = "UNAUTHORIZED"
	CategoryNotFound     ErrorCategory = "NOT_FOUND"
	CategoryConflict     ErrorCategory = "CONFLICT"
	CategoryInternal     ErrorCategory = "INTERNAL"
)

// DomainError carries an error-kind tag that the HTTP boundary maps to a
// status code and a fixed user-safe message. Handlers never decide status
// codes for unexpected failures themselves.
type DomainError interface {
	error
	Code() string
	Category() ErrorCategory
	HTTPStatus() int
	Message() string
	Unwrap() error
	WithCause(cause error) DomainError
}

type domainError struct {
	code     string
	category ErrorCategory
	status   int
	message  string
	cause    error
}

func (e *domainError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

func (e *domainError) Code() string {
	return e.code
}

func (e *domainError) Category() ErrorCategory {
	return e.category
}

func (e *domainError) HTTPStatus() int {
	return e.status
}

func (e *domainError) Message() string {
	return e.message
}

func (e *domainError) Unwrap() error {
	return e.cause
}

func (e *domainError) WithCause(cause error) DomainError {
	return &domainError{
		code:     e.code,
		category: e.category,
		status:   e.status,
		message:  e.message,
		cause:    cause,
	}
}

func NewDomainError(code string, category ErrorCategory, status int, message string) DomainError {
	return &domainError{
		code:     code,
		category: category,
		status:   status,
		message:  message,
	}
}

func IsDomainError(err error) bool {
	var de DomainError
	return errors.As(err, &de)
}

func AsDomainError(err error) (DomainError, bool) {
	var de DomainError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

var (
	ErrMissingRequiredEnv = NewDomainError(
		"MISSING_REQUIRED_ENV",
		CategoryValidation,
		http.StatusInternalServerError,
		"missing required environment variable",
	)

	ErrInvalidJWTSecret = NewDomainError(
		"INVALID_JWT_SECRET",
		CategoryValidation,
		http.StatusInternalServerError,
		"JWT_SECRET must be at least 32 bytes",
	)

	ErrInvalidBcryptCost = NewDomainError(
		"INVALID_BCRYPT_COST",
		CategoryValidation,
		http.StatusInternalServerError,
		"PASSWORD_SALT must be a bcrypt cost between 4 and 31",
	)

	ErrNotAuthorized = NewDomainError(
		"NOT_AUTHORIZED",
		CategoryUnauthorized,
		http.StatusUnauthorized,
		"Not authorized",
	)

	ErrNotValidToken = NewDomainError(
		"NOT_VALID_TOKEN",
		CategoryUnauthorized,
		http.StatusUnauthorized,
		"Not valid token",
	)

	ErrMissingCredentials = NewDomainError(
		"MISSING_CREDENTIALS",
		CategoryUnauthorized,
		http.StatusUnauthorized,
		"username and password are required",
	)

	ErrInvalidPassword = NewDomainError(
		"INVALID_PASSWORD",
		CategoryUnauthorized,
		http.StatusUnauthorized,
		"Invalid Password",
	)

	ErrUserNotFound = NewDomainError(
		"USER_NOT_FOUND",
		CategoryNotFound,
		http.StatusNotFound,
		"User not found",
	)

	ErrUsernameTaken = NewDomainError(
		"USERNAME_TAKEN",
		CategoryConflict,
		http.StatusConflict,
		"username already exists",
	)

	ErrProductNotFound = NewDomainError(
		"PRODUCT_NOT_FOUND",
		CategoryNotFound,
		http.StatusNotFound,
		"Product not found",
	)

	ErrUpdateNotFound = NewDomainError(
		"UPDATE_NOT_FOUND",
		CategoryNotFound,
		http.StatusNotFound,
		"Update not found",
	)

	ErrUpdatePointNotFound = NewDomainError(
		"UPDATE_POINT_NOT_FOUND",
		CategoryNotFound,
		http.StatusNotFound,
		"Update point not found",
	)

	ErrValidation = NewDomainError(
		"VALIDATION_FAILED",
		CategoryValidation,
		http.StatusBadRequest,
		"validation failed",
	)

	ErrInvalidStatus = NewDomainError(
		"INVALID_STATUS",
		CategoryValidation,
		http.StatusBadRequest,
		"status must be one of IN_PROGRESS, SHIPPED, DEPRECATED",
	)

	ErrDatabaseError = NewDomainError(
		"DATABASE_ERROR",
		CategoryInternal,
		http.StatusInternalServerError,
		"database operation failed",
	)

	ErrInternalError = NewDomainError(
		"INTERNAL_ERROR",
		CategoryInternal,
		http.StatusInternalServerError,
		"internal server error",
	)
)
