package apperror

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Error is an error that knows the HTTP status and stable code it maps to.
type Error struct {
	HTTPStatus int
	Code       string
	Message    string
	Internal   error
	Details    map[string]any
}

func (e *Error) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Internal)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Internal
}

// ToEchoError converts the error into an echo.HTTPError carrying the JSON body.
func (e *Error) ToEchoError() *echo.HTTPError {
	return echo.NewHTTPError(e.HTTPStatus, map[string]any{
		"error": e.body(),
	})
}

func (e *Error) body() map[string]any {
	body := map[string]any{
		"code":    e.Code,
		"message": e.Message,
	}
	if len(e.Details) > 0 {
		body["details"] = e.Details
	}
	return body
}

// WithInternal returns a copy with err attached as the cause.
func (e *Error) WithInternal(err error) *Error {
	cp := *e
	cp.Internal = err
	return &cp
}

// WithMessage returns a copy with a different client-facing message.
func (e *Error) WithMessage(message string) *Error {
	cp := *e
	cp.Message = message
	return &cp
}

// WithDetails returns a copy with details attached.
func (e *Error) WithDetails(details map[string]any) *Error {
	cp := *e
	cp.Details = details
	return &cp
}

func New(status int, code, message string) *Error {
	return &Error{
		HTTPStatus: status,
		Code:       code,
		Message:    message,
	}
}

var (
	ErrBadRequest         = New(http.StatusBadRequest, "bad_request", "Invalid request")
	ErrNotFound           = New(http.StatusNotFound, "not_found", "Resource not found")
	ErrMethodNotAllowed   = New(http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
	ErrTooManyRequests    = New(http.StatusTooManyRequests, "rate_limited", "Too many requests")
	ErrInternal           = New(http.StatusInternalServerError, "internal_error", "An internal error occurred")
	ErrServiceUnavailable = New(http.StatusServiceUnavailable, "service_unavailable", "Service unavailable")
)

// NewNotFound reports a missing resource by type and id.
func NewNotFound(resourceType, id string) *Error {
	return ErrNotFound.WithMessage(fmt.Sprintf("%s '%s' not found", resourceType, id))
}

// NewInternal wraps err behind the generic internal message.
func NewInternal(message string, err error) *Error {
	return ErrInternal.WithMessage(message).WithInternal(err)
}
