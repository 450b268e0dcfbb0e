package failure_test

import (
	"errors"
	"fmt"
	"kiraya/shared/failure"
	"net/http"
	"testing"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{
			name:    "BadRequestFromString",
			err:     failure.BadRequestFromString("bad input"),
			code:    http.StatusBadRequest,
			message: "bad input",
		},
		{
			name:    "Unauthorized",
			err:     failure.Unauthorized("no token"),
			code:    http.StatusUnauthorized,
			message: "no token",
		},
		{
			name:    "NotFound",
			err:     failure.NotFound("booking not found"),
			code:    http.StatusNotFound,
			message: "booking not found",
		},
		{
			name:    "UnprocessableEntity",
			err:     failure.UnprocessableEntity("draft is incomplete"),
			code:    http.StatusUnprocessableEntity,
			message: "draft is incomplete",
		},
		{
			name:    "Unavailable",
			err:     failure.Unavailable("storage unreachable"),
			code:    http.StatusServiceUnavailable,
			message: "storage unreachable",
		},
		{
			name:    "Conflict",
			err:     failure.Conflict("duplicate id"),
			code:    http.StatusConflict,
			message: "duplicate id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := tt.err.(*failure.Failure)
			if !ok {
				t.Fatalf("expected *failure.Failure, got %T", tt.err)
			}
			if f.Code != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, f.Code)
			}
			if f.Message != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, f.Message)
			}
		})
	}
}

func TestBadRequest_NilError(t *testing.T) {
	if failure.BadRequest(nil) != nil {
		t.Error("expected nil for nil input")
	}
	if failure.InternalError(nil) != nil {
		t.Error("expected nil for nil input")
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "failure error",
			err:      failure.NotFound("gone"),
			expected: http.StatusNotFound,
		},
		{
			name:     "wrapped failure error",
			err:      fmt.Errorf("outer: %w", failure.UnprocessableEntity("incomplete")),
			expected: http.StatusUnprocessableEntity,
		},
		{
			name:     "plain error",
			err:      errors.New("boom"),
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if code := failure.GetCode(tt.err); code != tt.expected {
				t.Errorf("expected code %d, got %d", tt.expected, code)
			}
		})
	}
}
