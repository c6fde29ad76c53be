// Package response renders the JSON envelopes returned by the API.
package response

import (
	"net/http"

	deliverycontext "socialdesk/internal/delivery/context"
	domainerrors "socialdesk/internal/domain/errors"
	"socialdesk/internal/errors"

	"github.com/labstack/echo/v4"
)

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Data    any        `json:"data"`
	Warning *ErrorInfo `json:"warning,omitempty"`
	Meta    *MetaInfo  `json:"meta"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Machine-readable error code, e.g., "VALIDATION_FAILED"
	Message string `json:"message"`           // User-friendly error message
	Details any    `json:"details,omitempty"` // Additional error context (only for 4xx errors)
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Data: data,
		Meta: &MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// PartialSuccess returns 207 with the committed data and the step that failed afterwards.
func PartialSuccess(c echo.Context, data any, warning domainerrors.AppError) error {
	return c.JSON(http.StatusMultiStatus, SuccessResponse{
		Data: data,
		Warning: &ErrorInfo{
			Code:    warning.ErrorCode(),
			Message: warning.Message(),
			Details: detailsOf(warning),
		},
		Meta: &MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	// Details should not be included for 5xx errors or authentication/authorization errors
	if statusCode >= 500 || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: &MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// BindingError returns a binding error response
func BindingError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// ValidationError returns a 400 error listing the failed fields
func ValidationError(c echo.Context, err error) error {
	return Error(c, http.StatusBadRequest, domainerrors.ErrValidationFailed.ErrorCode(), domainerrors.ErrValidationFailed.Message(), err.Error())
}

// Unauthorized returns a 401 error
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

// Forbidden returns a 403 error
func Forbidden(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusForbidden, errorCode, message, nil)
}

// NotFound returns a 404 error
func NotFound(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusNotFound, errorCode, message, nil)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// HandleAppError renders domain errors with their status and details. Other errors are
// returned for the central error handler.
func HandleAppError(c echo.Context, err error) error {
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			return errors.WithStack(err)
		}

		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), detailsOf(appErr))
	}

	return errors.WithStack(err)
}

// HandleResult renders data, or 207 when err is a partial consistency warning.
func HandleResult(c echo.Context, statusCode int, data any, err error) error {
	if err == nil {
		return Success(c, statusCode, data)
	}
	if errors.Is(err, domainerrors.ErrPartialConsistency) && data != nil {
		if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
			return PartialSuccess(c, data, appErr)
		}
	}

	return HandleAppError(c, err)
}

func detailsOf(appErr domainerrors.AppError) any {
	if detailed, ok := appErr.(domainerrors.DetailedError); ok {
		return detailed.DetailsData()
	}
	if details := appErr.Details(); details != "" {
		return details
	}

	return nil
}
