package apperror

import (
	"errors"
	"net/http"
	"testing"
)

func TestErrorError(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "without internal error",
			err:      ErrNotFound,
			expected: "not_found: Resource not found",
		},
		{
			name:     "with internal error",
			err:      NewInternal("Page unavailable", errors.New("render failed")),
			expected: "internal_error: Page unavailable (render failed)",
		},
		{
			name:     "empty message",
			err:      New(http.StatusBadRequest, "bad_request", ""),
			expected: "bad_request: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("underlying cause")
	err := ErrInternal.WithInternal(cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the internal error")
	}
	if ErrInternal.Unwrap() != nil {
		t.Error("WithInternal must not modify the shared value")
	}
}

func TestErrorCopies(t *testing.T) {
	msg := ErrNotFound.WithMessage("gone")
	if ErrNotFound.Message != "Resource not found" {
		t.Errorf("WithMessage modified the shared value: %q", ErrNotFound.Message)
	}
	if msg.HTTPStatus != http.StatusNotFound || msg.Code != "not_found" {
		t.Errorf("WithMessage lost status/code: %+v", msg)
	}

	withDetails := msg.WithDetails(map[string]any{"path": "/x"})
	if withDetails.Message != "gone" {
		t.Errorf("WithDetails lost message: %q", withDetails.Message)
	}
	if len(msg.Details) != 0 {
		t.Error("WithDetails modified its receiver")
	}
}

func TestErrorToEchoError(t *testing.T) {
	he := NewNotFound("page", "/x").ToEchoError()

	if he.Code != http.StatusNotFound {
		t.Errorf("Code = %d, want %d", he.Code, http.StatusNotFound)
	}
	body, ok := he.Message.(map[string]any)
	if !ok {
		t.Fatalf("Message = %T, want map", he.Message)
	}
	inner := body["error"].(map[string]any)
	if inner["code"] != "not_found" {
		t.Errorf("code = %v, want not_found", inner["code"])
	}
	if _, ok := inner["details"]; ok {
		t.Error("details should be omitted when empty")
	}
}
