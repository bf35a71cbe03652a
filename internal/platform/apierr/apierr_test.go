package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestValidationCarriesField(t *testing.T) {
	err := Validation("accuracy", "must be between 0 and 100")
	if err.Status != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", err.Status)
	}
	if err.Field != "accuracy" {
		t.Fatalf("expected field accuracy got %q", err.Field)
	}
	if err.Error() != "accuracy: must be between 0 and 100" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestFromUnwrapsWrappedError(t *testing.T) {
	inner := NotFound("user")
	wrapped := fmt.Errorf("load user: %w", inner)

	got := From(wrapped)
	if got.Status != http.StatusNotFound || got.Code != "not_found" {
		t.Fatalf("expected the wrapped api error back, got %+v", got)
	}
}

func TestFromDefaultsToInternal(t *testing.T) {
	got := From(errors.New("connection refused"))
	if got.Status != http.StatusInternalServerError || got.Code != "internal_error" {
		t.Fatalf("expected internal_error 500, got %+v", got)
	}
}

func TestErrorsAsThroughChain(t *testing.T) {
	var ae *Error
	err := fmt.Errorf("handler: %w", Unauthorized("no token"))
	if !errors.As(err, &ae) {
		t.Fatalf("errors.As failed to find *Error")
	}
	if ae.Status != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", ae.Status)
	}
}
