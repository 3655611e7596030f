package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yigit/cadastro/internal/app/models"
	"github.com/yigit/cadastro/internal/pkg/apperrors"
	"github.com/yigit/cadastro/internal/pkg/logger"
)

// Outcome is the result of one registration attempt
type Outcome struct {
	Aluno *models.Aluno
	// Known is true when the name was already registered and nothing was inserted
	Known bool
}

// RegistrationService handles the student registration workflow
type RegistrationService struct {
	disciplinaRepo DisciplinaRepository
	alunoRepo      AlunoRepository
}

// NewRegistrationService creates a new registration service instance
func NewRegistrationService(disciplinaRepo DisciplinaRepository, alunoRepo AlunoRepository) *RegistrationService {
	return &RegistrationService{
		disciplinaRepo: disciplinaRepo,
		alunoRepo:      alunoRepo,
	}
}

// Choices returns the disciplinas a student may be registered against,
// ordered by name.
func (s *RegistrationService) Choices(ctx context.Context) ([]*models.Disciplina, error) {
	disciplinas, err := s.disciplinaRepo.ListOrderedByName(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load disciplina choices: %w", err)
	}
	return disciplinas, nil
}

// ListAlunos returns every registered student
func (s *RegistrationService) ListAlunos(ctx context.Context) ([]*models.Aluno, error) {
	alunos, err := s.alunoRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list alunos: %w", err)
	}
	return alunos, nil
}

// Register records name against disciplinaID unless a student with exactly
// that name exists. A concurrent registration of the same name is reported as
// known rather than failing.
func (s *RegistrationService) Register(ctx context.Context, name string, disciplinaID int64) (*Outcome, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}
	if disciplinaID <= 0 {
		return nil, apperrors.ErrInvalidDisciplina
	}

	existing, err := s.alunoRepo.FindByUsername(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to look up aluno: %w", err)
	}
	if existing != nil {
		logger.Debug().Str("username", name).Msg("Aluno already registered")
		return &Outcome{Aluno: existing, Known: true}, nil
	}

	aluno := &models.Aluno{Username: name, DisciplinaID: disciplinaID}
	created, err := s.alunoRepo.InsertIfAbsent(ctx, aluno)
	if err != nil {
		return nil, err
	}
	if !created {
		logger.Debug().Str("username", name).Msg("Aluno registered concurrently")
		return &Outcome{Aluno: aluno, Known: true}, nil
	}

	logger.Info().Int64("alunoID", aluno.ID).Int64("disciplinaID", disciplinaID).Msg("Aluno registered")
	return &Outcome{Aluno: aluno, Known: false}, nil
}
