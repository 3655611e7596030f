package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/yigit/cadastro/internal/app/models"
	"github.com/yigit/cadastro/internal/pkg/apperrors"
)

func seededStore() *memoryStore {
	return newMemoryStore(
		&models.Disciplina{ID: 1, Name: "Math"},
		&models.Disciplina{ID: 2, Name: "History"},
	)
}

func TestChoicesOrderedByName(t *testing.T) {
	store := seededStore()
	svc := NewRegistrationService(store, store)

	choices, err := svc.Choices(context.Background())
	if err != nil {
		t.Fatalf("choices: %v", err)
	}
	if len(choices) != 2 || choices[0].Name != "History" || choices[1].Name != "Math" {
		t.Fatalf("unexpected choices %+v", choices)
	}
}

func TestRegisterNewThenKnown(t *testing.T) {
	store := seededStore()
	svc := NewRegistrationService(store, store)
	ctx := context.Background()

	outcome, err := svc.Register(ctx, "Ana", 1)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if outcome.Known || outcome.Aluno.ID == 0 {
		t.Fatalf("expected a new aluno, got %+v", outcome)
	}

	outcome, err = svc.Register(ctx, "Ana", 2)
	if err != nil {
		t.Fatalf("register again: %v", err)
	}
	if !outcome.Known {
		t.Fatalf("expected Ana to be known")
	}

	alunos, _ := svc.ListAlunos(ctx)
	if len(alunos) != 1 || alunos[0].DisciplinaID != 1 {
		t.Fatalf("expected a single Ana in Math, got %+v", alunos)
	}
}

func TestRegisterLostRaceIsKnown(t *testing.T) {
	store := seededStore()
	svc := NewRegistrationService(store, store)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "Ana", 1); err != nil {
		t.Fatalf("register: %v", err)
	}

	store.hideOnFind = true
	outcome, err := svc.Register(ctx, "Ana", 2)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if !outcome.Known {
		t.Fatalf("expected conflicting insert to report known")
	}
}

func TestRegisterConcurrentSameName(t *testing.T) {
	store := seededStore()
	svc := NewRegistrationService(store, store)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.Register(context.Background(), "Ana", 1); err != nil {
				t.Errorf("register: %v", err)
			}
		}()
	}
	wg.Wait()

	total, _ := store.Count(context.Background())
	if total != 1 {
		t.Fatalf("expected one row, got %d", total)
	}
}

func TestRegisterRejectsInvalidInput(t *testing.T) {
	store := seededStore()
	svc := NewRegistrationService(store, store)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "   ", 1); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected ErrValidationFailed, got %v", err)
	}
	if _, err := svc.Register(ctx, "Ana", 0); !errors.Is(err, apperrors.ErrInvalidDisciplina) {
		t.Fatalf("expected ErrInvalidDisciplina for zero id, got %v", err)
	}
	if _, err := svc.Register(ctx, "Ana", 99); !errors.Is(err, apperrors.ErrInvalidDisciplina) {
		t.Fatalf("expected ErrInvalidDisciplina for missing disciplina, got %v", err)
	}
	if total, _ := store.Count(ctx); total != 0 {
		t.Fatalf("expected no rows, got %d", total)
	}
}
