// Package errors defines the application error taxonomy. Handlers and
// usecases return these values; the HTTP error handler maps them onto status
// codes and the wire-level {"msg": ...} body. The message strings are part of
// the public API contract and must not be reworded.
package errors

import (
	"net/http"

	"pasar/internal/errors"
)

// AppError defines the interface for application-specific errors.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // Wire-level message ("msg" field)
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the wire-level error message.
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information.
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types. Status codes follow the original contract even
// where unconventional (conflicts and credential mismatches answer 400).
var (
	// Auth
	ErrUserExists = NewBaseError(
		http.StatusBadRequest,
		"USER_EXISTS",
		"User already exists",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CREDENTIALS",
		"Invalid credentials",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusBadRequest,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrResetTokenInvalid = NewBaseError(
		http.StatusBadRequest,
		"RESET_TOKEN_INVALID",
		"Invalid or expired token",
		"",
	)

	ErrAccountConflict = NewBaseError(
		http.StatusBadRequest,
		"ACCOUNT_CONFLICT",
		"Username or email already in use",
		"",
	)

	ErrEmailSendFailed = NewBaseError(
		http.StatusInternalServerError,
		"EMAIL_SEND_FAILED",
		"Error sending email",
		"",
	)

	// Validation
	ErrMissingFields = NewBaseError(
		http.StatusBadRequest,
		"MISSING_FIELDS",
		"Please provide all fields",
		"",
	)

	ErrInvalidEmailFormat = NewBaseError(
		http.StatusBadRequest,
		"INVALID_EMAIL_FORMAT",
		"Invalid email format",
		"",
	)

	ErrMissingLoginFields = NewBaseError(
		http.StatusBadRequest,
		"MISSING_LOGIN_FIELDS",
		"Please provide username/email and password",
		"",
	)

	ErrNoFileUploaded = NewBaseError(
		http.StatusBadRequest,
		"NO_FILE_UPLOADED",
		"No file uploaded",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Invalid request",
		"",
	)

	// Sellers and products
	ErrSellerNotFound = NewBaseError(
		http.StatusNotFound,
		"SELLER_NOT_FOUND",
		"Seller not found",
		"",
	)

	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found",
		"",
	)

	ErrNoProductsFound = NewBaseError(
		http.StatusNotFound,
		"NO_PRODUCTS_FOUND",
		"No products found",
		"",
	)

	ErrNotProductOwner = NewBaseError(
		http.StatusForbidden,
		"NOT_PRODUCT_OWNER",
		"Unauthorized action, not your product",
		"",
	)

	// Orders and payments
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Order not found",
		"",
	)

	ErrNoOrdersFound = NewBaseError(
		http.StatusNotFound,
		"NO_ORDERS_FOUND",
		"No orders found",
		"",
	)

	ErrPaymentNotFound = NewBaseError(
		http.StatusNotFound,
		"PAYMENT_NOT_FOUND",
		"Payment not found",
		"",
	)

	ErrPaymentInitFailed = NewBaseError(
		http.StatusInternalServerError,
		"PAYMENT_INIT_FAILED",
		"Payment initiation failed",
		"",
	)

	// Profiles
	ErrNoProfilePicture = NewBaseError(
		http.StatusNotFound,
		"NO_PROFILE_PICTURE",
		"No profile picture found to delete",
		"",
	)

	// Upstream and general
	ErrUploadFailed = NewBaseError(
		http.StatusInternalServerError,
		"UPLOAD_FAILED",
		"Error uploading file",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Server error",
		"",
	)
)

// ProductMissing builds the per-id message the order workflow reports when a
// line item references an unknown product.
func ProductMissing(id string) AppError {
	return NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product with id "+id+" not found",
		"",
	)
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error.
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface.
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code.
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code.
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the wire-level error message.
func (e *DatabaseExecuteError) Message() string {
	return "Server error"
}

// Details returns detailed error information.
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
