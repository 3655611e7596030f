package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestConstraintClassification(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: AlunosUsernameKey}
	fk := &pgconn.PgError{Code: "23503", ConstraintName: AlunosDisciplinaIDFkey}
	wrapped := fmt.Errorf("insert aluno: %w", dup)

	if !IsUniqueViolation(wrapped) {
		t.Fatalf("expected wrapped unique violation to be detected")
	}
	if !IsDuplicateConstraintError(wrapped, AlunosUsernameKey) {
		t.Fatalf("expected duplicate on %s", AlunosUsernameKey)
	}
	if IsDuplicateConstraintError(wrapped, DisciplinasNameKey) {
		t.Fatalf("expected constraint name mismatch to be ignored")
	}
	if !IsForeignKeyViolation(fk, AlunosDisciplinaIDFkey) {
		t.Fatalf("expected foreign key violation to be detected")
	}
	if IsUniqueViolation(fk) || IsUniqueViolation(errors.New("boom")) || IsUniqueViolation(nil) {
		t.Fatalf("expected non unique errors to be rejected")
	}
}
