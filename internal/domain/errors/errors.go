package errors

import (
	"net/http"

	"geofence/internal/errors"
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

// Is matches errors by business code so that WithDetails copies still match the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
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

// Predefined error types
var (
	// Validation errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	ErrInvalidCoordinates = NewBaseError(
		http.StatusBadRequest,
		"INVALID_COORDINATES",
		"latitude must be within [-90, 90] and longitude within [-180, 180]",
		"",
	)

	ErrInvalidRadius = NewBaseError(
		http.StatusBadRequest,
		"INVALID_RADIUS",
		"region radius must be greater than 0 and at most 10000 meters",
		"",
	)

	ErrInvalidAccuracy = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ACCURACY",
		"accuracy must be a positive number of meters",
		"",
	)

	// Lookup errors
	ErrRegionNotFound = NewBaseError(
		http.StatusNotFound,
		"REGION_NOT_FOUND",
		"region not found",
		"",
	)

	ErrExperienceNotFound = NewBaseError(
		http.StatusNotFound,
		"EXPERIENCE_NOT_FOUND",
		"experience not found",
		"",
	)

	ErrLocationNotFound = NewBaseError(
		http.StatusNotFound,
		"LOCATION_NOT_FOUND",
		"no location recorded for user",
		"",
	)

	// Authorization errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"authentication required",
		"",
	)

	ErrRegionOwnershipViolation = NewBaseError(
		http.StatusForbidden,
		"REGION_OWNERSHIP_VIOLATION",
		"only the creator of a region may deactivate it",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// DeliveryError is a failed push to a single subscription endpoint.
// It never fails the operation that triggered the dispatch.
type DeliveryError struct {
	err      error
	endpoint string
	expired  bool
}

// NewDeliveryError wraps a push transport failure for one endpoint
func NewDeliveryError(err error, endpoint string, expired bool) *DeliveryError {
	return &DeliveryError{
		err:      err,
		endpoint: endpoint,
		expired:  expired,
	}
}

func (e *DeliveryError) Error() string {
	return errors.Wrapf(e.err, "push delivery to %s failed", e.endpoint).Error()
}

func (e *DeliveryError) Unwrap() error {
	return e.err
}

// Expired reports whether the push service rejected the subscription as gone
func (e *DeliveryError) Expired() bool {
	return e.expired
}

// Endpoint returns the subscription endpoint the delivery targeted
func (e *DeliveryError) Endpoint() string {
	return e.endpoint
}

func (e *DeliveryError) HTTPCode() int {
	return http.StatusBadGateway
}

func (e *DeliveryError) ErrorCode() string {
	return "PUSH_DELIVERY_FAILED"
}

func (e *DeliveryError) Message() string {
	return "push delivery failed"
}

func (e *DeliveryError) Details() string {
	return e.endpoint
}

func httpCodeOf(err error) int {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	return 0
}

// IsValidation reports whether err rejects caller input
func IsValidation(err error) bool {
	return httpCodeOf(err) == http.StatusBadRequest
}

// IsNotFound reports whether err refers to a missing resource
func IsNotFound(err error) bool {
	return httpCodeOf(err) == http.StatusNotFound
}

// IsAuthorization reports whether err is an ownership or authentication failure
func IsAuthorization(err error) bool {
	code := httpCodeOf(err)

	return code == http.StatusForbidden || code == http.StatusUnauthorized
}

// IsPersistence reports whether err came from the storage layer
func IsPersistence(err error) bool {
	var dbErr *DatabaseExecuteError

	return errors.As(err, &dbErr)
}

// IsTransientDelivery reports whether err is a single-endpoint push failure
func IsTransientDelivery(err error) bool {
	var deliveryErr *DeliveryError

	return errors.As(err, &deliveryErr)
}
