package repositories

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/asadk/maktab/internal/pkg/apperrors"
)

func TestFilterBuilderEmpty(t *testing.T) {
	var b filterBuilder
	if got := b.where(); got != "" {
		t.Fatalf("empty builder where = %q", got)
	}
	if len(b.args) != 0 {
		t.Fatalf("empty builder should carry no args")
	}
}

func TestFilterBuilderFoldsWithAnd(t *testing.T) {
	var b filterBuilder
	b.add("program_id = $%d", int64(3))
	b.add("section_id = $%d", int64(7))

	want := " WHERE program_id = $1 AND section_id = $2"
	if got := b.where(); got != want {
		t.Fatalf("where = %q, want %q", got, want)
	}
	if len(b.args) != 2 || b.args[0] != int64(3) || b.args[1] != int64(7) {
		t.Fatalf("args = %v", b.args)
	}
}

func TestSetBuilder(t *testing.T) {
	var b setBuilder
	if !b.empty() {
		t.Fatalf("fresh builder should be empty")
	}

	b.set("full_name", "Ali")
	b.set("status", "active")

	if b.empty() {
		t.Fatalf("builder with sets should not be empty")
	}
	if got := b.clause(); got != "full_name = $1, status = $2" {
		t.Fatalf("clause = %q", got)
	}
	if got := b.next(); got != 3 {
		t.Fatalf("next = %d, want 3", got)
	}
}

func TestTranslateWriteErrorKnownConstraint(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "students_enrollment_no_key"}
	err := translateWriteError(pgErr, "Student")

	if !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if err.Error() != "enrollment number already exists" {
		t.Fatalf("message = %q", err.Error())
	}
}

func TestTranslateWriteErrorUnknownConstraint(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "something_else_key"}
	err := translateWriteError(pgErr, "Student")

	if !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if err.Error() != "Student already exists" {
		t.Fatalf("message = %q", err.Error())
	}
}

func TestTranslateWriteErrorForeignKey(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23503", ConstraintName: "students_program_id_fkey"}
	err := translateWriteError(pgErr, "Student")

	if !errors.Is(err, apperrors.ErrInvalidReference) {
		t.Fatalf("expected invalid reference, got %v", err)
	}
}

func TestTranslateWriteErrorPassthrough(t *testing.T) {
	orig := errors.New("connection reset")
	if err := translateWriteError(orig, "Student"); err != orig {
		t.Fatalf("non-constraint errors must pass through, got %v", err)
	}
}

func TestTranslateDeleteError(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23503", ConstraintName: "fees_student_id_fkey"}
	err := translateDeleteError(pgErr, "Student")

	if !errors.Is(err, apperrors.ErrHasDependents) {
		t.Fatalf("expected has-dependents, got %v", err)
	}

	orig := errors.New("connection reset")
	if err := translateDeleteError(orig, "Student"); err != orig {
		t.Fatalf("non-constraint errors must pass through, got %v", err)
	}
}
