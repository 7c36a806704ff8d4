package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err      error
		expected int
	}{
		{NoCredentials(), http.StatusUnauthorized},
		{InvalidCredentials(), http.StatusUnauthorized},
		{InvalidToken(errors.New("bad signature")), http.StatusForbidden},
		{InsufficientRole(), http.StatusForbidden},
		{UserAlreadyExists(), http.StatusBadRequest},
		{InvalidRequest("Title is required"), http.StatusUnprocessableEntity},
		{RateLimited(), http.StatusTooManyRequests},
		{BookNotFound(), http.StatusNotFound},
		{AuthorNotFound(), http.StatusNotFound},
		{UserNotFound(), http.StatusNotFound},
		{StoreError(errors.New("connection refused")), http.StatusInternalServerError},
		{errors.New("plain error"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := HTTPStatus(tt.err); got != tt.expected {
			t.Errorf("HTTPStatus(%v) = %d, expected %d", tt.err, got, tt.expected)
		}
	}
}

func TestHTTPStatusWrapped(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", BookNotFound())
	if got := HTTPStatus(wrapped); got != http.StatusNotFound {
		t.Errorf("HTTPStatus(wrapped) = %d, expected 404", got)
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(UserAlreadyExists()); got != "User already exists" {
		t.Errorf("Unexpected message %q", got)
	}
	if got := UserMessage(StoreError(errors.New("dsn leak: postgres://u:p@host"))); got != "Internal server error" {
		t.Errorf("Cause should not leak into the user message, got %q", got)
	}
	if got := UserMessage(errors.New("plain error")); got != "Internal server error" {
		t.Errorf("Unexpected fallback message %q", got)
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := StoreError(cause)
	if !errors.Is(err, cause) {
		t.Error("StoreError should wrap its cause")
	}
}
