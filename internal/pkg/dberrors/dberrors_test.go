package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"}
	if !IsUniqueViolation(pgErr) {
		t.Fatalf("expected 23505 to be a unique violation")
	}
	if !IsUniqueViolation(fmt.Errorf("insert: %w", pgErr)) {
		t.Fatalf("expected wrapped error to still match")
	}
	if IsUniqueViolation(&pgconn.PgError{Code: "23503"}) {
		t.Fatalf("23503 is not a unique violation")
	}
	if IsUniqueViolation(errors.New("plain error")) {
		t.Fatalf("plain errors are not violations")
	}
}

func TestIsForeignKeyViolation(t *testing.T) {
	if !IsForeignKeyViolation(&pgconn.PgError{Code: "23503"}) {
		t.Fatalf("expected 23503 to be a foreign key violation")
	}
	if IsForeignKeyViolation(&pgconn.PgError{Code: "23505"}) {
		t.Fatalf("23505 is not a foreign key violation")
	}
}

func TestConstraintAndTableName(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "programs_code_key", TableName: "programs"}
	if got := ConstraintName(fmt.Errorf("wrap: %w", pgErr)); got != "programs_code_key" {
		t.Fatalf("ConstraintName = %q", got)
	}
	if got := TableName(pgErr); got != "programs" {
		t.Fatalf("TableName = %q", got)
	}
	if got := ConstraintName(errors.New("plain")); got != "" {
		t.Fatalf("expected empty constraint name for plain error, got %q", got)
	}
}
