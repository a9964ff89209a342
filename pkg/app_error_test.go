package pkg

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAppError_ToHTTPErrorHidesCause(t *testing.T) {
	cause := errors.New("dynamodb: connection refused")
	err := NewDomainError(CodeInternal, "An internal error occurred", cause, http.StatusInternalServerError)

	body := err.ToHTTPError()
	if body.Code != CodeInternal || body.Message != "An internal error occurred" {
		t.Fatalf("unexpected body: %+v", body)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to be unwrappable")
	}
	if !err.IsInternal() {
		t.Fatalf("expected internal error")
	}
}

func TestAppError_Error(t *testing.T) {
	simple := NewDomainErrorSimple(CodeValidation, "Invalid request", http.StatusBadRequest)
	if got := simple.Error(); got != "VALIDATION_ERROR: Invalid request" {
		t.Fatalf("unexpected message %q", got)
	}
	if simple.IsInternal() {
		t.Fatalf("400 must not be internal")
	}

	var nilErr *AppError
	if got := nilErr.Error(); got != "<nil>" {
		t.Fatalf("unexpected nil message %q", got)
	}
}

func TestAsAppError(t *testing.T) {
	inner := NewDomainErrorSimple(CodeNotFound, "Material not found", http.StatusNotFound)
	wrapped := fmt.Errorf("lookup: %w", inner)

	got, ok := AsAppError(wrapped)
	if !ok || got != inner {
		t.Fatalf("expected to extract AppError, got %v %v", got, ok)
	}
	if _, ok := AsAppError(errors.New("plain")); ok {
		t.Fatalf("plain error must not match")
	}
}
