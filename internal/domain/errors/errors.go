package errors

import (
	"fmt"
	"net/http"
	"strings"

	"socialdesk/internal/errors"

	"github.com/google/uuid"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// DetailedError is implemented by AppErrors that carry structured details for the client.
type DetailedError interface {
	AppError
	DetailsData() any
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

// Is matches any BaseError carrying the same error code, so errors derived
// through WithDetails still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
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

// DetailsData exposes the details string to clients when present.
func (e *BaseError) DetailsData() any {
	if e.details == "" {
		return nil
	}

	return e.details
}

// Predefined error types
var (
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"request could not be authenticated",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"invalid email or password",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"an account with this email already exists",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	ErrInvalidQuantity = NewBaseError(
		http.StatusBadRequest,
		"INVALID_QUANTITY",
		"quantity would make stock negative or is not allowed",
		"",
	)

	ErrIllegalTransition = NewBaseError(
		http.StatusConflict,
		"ILLEGAL_TRANSITION",
		"order status transition is not allowed",
		"",
	)

	ErrInvalidState = NewBaseError(
		http.StatusConflict,
		"INVALID_STATE",
		"entity cannot be modified in its current state",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"resource conflict",
		"",
	)

	ErrMetaSendFailed = NewBaseError(
		http.StatusBadGateway,
		"META_SEND_FAILED",
		"the message could not be delivered, please try again",
		"",
	)

	ErrMetaNotConnected = NewBaseError(
		http.StatusConflict,
		"META_NOT_CONNECTED",
		"no Meta account is connected",
		"",
	)

	ErrOAuthFailed = NewBaseError(
		http.StatusBadGateway,
		"OAUTH_FAILED",
		"connecting the Meta account failed",
		"",
	)

	// ErrInsufficientStock matches every *InsufficientStockError through errors.Is.
	ErrInsufficientStock = NewBaseError(
		http.StatusConflict,
		"INSUFFICIENT_STOCK",
		"not enough stock",
		"",
	)

	// ErrAtomicBatchFailure matches every *AtomicBatchError through errors.Is.
	ErrAtomicBatchFailure = NewBaseError(
		http.StatusUnprocessableEntity,
		"ATOMIC_BATCH_FAILURE",
		"batch was rolled back, no item was applied",
		"",
	)

	// ErrPartialConsistency matches every *PartialConsistencyWarning through errors.Is.
	ErrPartialConsistency = NewBaseError(
		http.StatusMultiStatus,
		"PARTIAL_CONSISTENCY",
		"the main change was saved but a follow-up step failed",
		"",
	)
)

// NewIllegalTransitionError reports a transition missing from the lifecycle table.
func NewIllegalTransitionError(from, to string) *BaseError {
	return ErrIllegalTransition.WithDetails(fmt.Sprintf("%s -> %s", from, to))
}

// StockShortfall describes one order line that cannot be served.
type StockShortfall struct {
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	Requested   int       `json:"requested"`
	Available   int       `json:"available"`
}

// InsufficientStockError lists every line that exceeds available stock.
type InsufficientStockError struct {
	Shortfalls []StockShortfall
}

// NewInsufficientStockError creates an itemized insufficient stock error.
func NewInsufficientStockError(shortfalls []StockShortfall) *InsufficientStockError {
	return &InsufficientStockError{Shortfalls: shortfalls}
}

func (e *InsufficientStockError) Error() string {
	parts := make([]string, 0, len(e.Shortfalls))
	for _, s := range e.Shortfalls {
		parts = append(parts, fmt.Sprintf("%s (requested %d, available %d)", s.ProductName, s.Requested, s.Available))
	}

	return "insufficient stock: " + strings.Join(parts, ", ")
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

func (e *InsufficientStockError) HTTPCode() int     { return ErrInsufficientStock.HTTPCode() }
func (e *InsufficientStockError) ErrorCode() string { return ErrInsufficientStock.ErrorCode() }
func (e *InsufficientStockError) Message() string   { return ErrInsufficientStock.Message() }
func (e *InsufficientStockError) Details() string   { return e.Error() }
func (e *InsufficientStockError) DetailsData() any  { return e.Shortfalls }

// AtomicBatchError reports the item that made a batch roll back.
type AtomicBatchError struct {
	Index     int
	ProductID uuid.UUID
	Cause     error
}

// NewAtomicBatchError wraps cause as the failure of item index.
func NewAtomicBatchError(index int, productID uuid.UUID, cause error) *AtomicBatchError {
	return &AtomicBatchError{Index: index, ProductID: productID, Cause: cause}
}

func (e *AtomicBatchError) Error() string {
	return fmt.Sprintf("batch item %d (product %s) failed: %v", e.Index, e.ProductID, e.Cause)
}

func (e *AtomicBatchError) Unwrap() error {
	return e.Cause
}

func (e *AtomicBatchError) Is(target error) bool {
	return target == ErrAtomicBatchFailure
}

func (e *AtomicBatchError) HTTPCode() int     { return ErrAtomicBatchFailure.HTTPCode() }
func (e *AtomicBatchError) ErrorCode() string { return ErrAtomicBatchFailure.ErrorCode() }
func (e *AtomicBatchError) Message() string   { return ErrAtomicBatchFailure.Message() }
func (e *AtomicBatchError) Details() string   { return e.Error() }

func (e *AtomicBatchError) DetailsData() any {
	detail := map[string]any{
		"index":      e.Index,
		"product_id": e.ProductID,
	}
	var appErr AppError
	if errors.As(e.Cause, &appErr) {
		detail["cause"] = appErr.ErrorCode()
	}

	return detail
}

// PartialConsistencyWarning is returned when the primary effect committed but a
// follow-up step did not. The caller must not treat it as a clean failure.
type PartialConsistencyWarning struct {
	EntityID uuid.UUID
	Step     string
	Cause    error
}

// NewPartialConsistencyWarning reports that step failed after entityID was already changed.
func NewPartialConsistencyWarning(entityID uuid.UUID, step string, cause error) *PartialConsistencyWarning {
	return &PartialConsistencyWarning{EntityID: entityID, Step: step, Cause: cause}
}

func (e *PartialConsistencyWarning) Error() string {
	return fmt.Sprintf("%s failed after %s was updated: %v", e.Step, e.EntityID, e.Cause)
}

func (e *PartialConsistencyWarning) Unwrap() error {
	return e.Cause
}

func (e *PartialConsistencyWarning) Is(target error) bool {
	return target == ErrPartialConsistency
}

func (e *PartialConsistencyWarning) HTTPCode() int     { return ErrPartialConsistency.HTTPCode() }
func (e *PartialConsistencyWarning) ErrorCode() string { return ErrPartialConsistency.ErrorCode() }
func (e *PartialConsistencyWarning) Message() string   { return ErrPartialConsistency.Message() }
func (e *PartialConsistencyWarning) Details() string   { return e.Step }

func (e *PartialConsistencyWarning) DetailsData() any {
	return map[string]any{
		"id":          e.EntityID,
		"failed_step": e.Step,
	}
}

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
