package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yigit/cadastro/internal/app/models"
	"github.com/yigit/cadastro/internal/pkg/apperrors"
	"github.com/yigit/cadastro/internal/pkg/helpers"
)

// DisciplinaService serves the read-only disciplina and aluno listings
type DisciplinaService struct {
	disciplinaRepo DisciplinaRepository
	alunoRepo      AlunoRepository
}

// NewDisciplinaService creates a new disciplina service instance
func NewDisciplinaService(disciplinaRepo DisciplinaRepository, alunoRepo AlunoRepository) *DisciplinaService {
	return &DisciplinaService{
		disciplinaRepo: disciplinaRepo,
		alunoRepo:      alunoRepo,
	}
}

// ListDisciplinas returns all disciplinas ordered by name
func (s *DisciplinaService) ListDisciplinas(ctx context.Context) ([]*models.Disciplina, error) {
	return s.disciplinaRepo.ListOrderedByName(ctx)
}

// GetAlunosByDisciplina returns a disciplina together with its students
func (s *DisciplinaService) GetAlunosByDisciplina(ctx context.Context, id int64) (*models.Disciplina, []*models.Aluno, error) {
	disciplina, err := s.disciplinaRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrDisciplinaNotFound) {
			return nil, nil, apperrors.NewResourceNotFoundError(fmt.Sprintf("Disciplina %d not found", id))
		}
		return nil, nil, err
	}

	alunos, err := s.alunoRepo.ListByDisciplinaID(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list alunos of disciplina %d: %w", id, err)
	}
	return disciplina, alunos, nil
}

// ListAlunosPage returns one page of students and the total count
func (s *DisciplinaService) ListAlunosPage(ctx context.Context, page, size int) ([]*models.Aluno, int64, error) {
	total, err := s.alunoRepo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	offset, limit := helpers.CalculateOffsetLimit(page, size)
	alunos, err := s.alunoRepo.ListPage(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	return alunos, total, nil
}
