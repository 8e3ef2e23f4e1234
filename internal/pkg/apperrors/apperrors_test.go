package apperrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundMessageAndSentinel(t *testing.T) {
	err := NotFound("Student")
	if err.Error() != "Student not found" {
		t.Fatalf("message = %q", err.Error())
	}
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected NotFound to wrap ErrNotFound")
	}
	if errors.Is(err, ErrConflict) {
		t.Fatalf("NotFound must not match ErrConflict")
	}
}

func TestWrappedSentinelsSurviveFurtherWrapping(t *testing.T) {
	err := fmt.Errorf("create user: %w", Conflict("username already exists"))
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected wrapped conflict to match ErrConflict")
	}

	var appErr *Error
	if !errors.As(err, &appErr) {
		t.Fatalf("expected to recover *Error from the chain")
	}
	if appErr.Message != "username already exists" {
		t.Fatalf("message = %q", appErr.Message)
	}
}

func TestValidationMessage(t *testing.T) {
	err := Validation("dueDate", "must be an ISO date")
	if err.Error() != "dueDate: must be an ISO date" {
		t.Fatalf("message = %q", err.Error())
	}
	if !errors.Is(err, ErrValidationFailed) {
		t.Fatalf("expected validation sentinel")
	}
}
