package services

import (
	"context"

	"github.com/yigit/cadastro/internal/app/models"
	"github.com/yigit/cadastro/internal/app/repositories"
)

// DisciplinaRepository is the storage used by the services for disciplinas
type DisciplinaRepository interface {
	ListOrderedByName(ctx context.Context) ([]*models.Disciplina, error)
	GetByID(ctx context.Context, id int64) (*models.Disciplina, error)
}

// AlunoRepository is the storage used by the services for alunos
type AlunoRepository interface {
	FindByUsername(ctx context.Context, username string) (*models.Aluno, error)
	InsertIfAbsent(ctx context.Context, a *models.Aluno) (bool, error)
	ListAll(ctx context.Context) ([]*models.Aluno, error)
	ListByDisciplinaID(ctx context.Context, disciplinaID int64) ([]*models.Aluno, error)
	ListPage(ctx context.Context, offset, limit uint64) ([]*models.Aluno, error)
	Count(ctx context.Context) (int64, error)
}

// Services holds all the service instances
type Services struct {
	RegistrationService *RegistrationService
	DisciplinaService   *DisciplinaService
}

// NewServices wires the services to the given repositories
func NewServices(repos *repositories.Repositories) *Services {
	return &Services{
		RegistrationService: NewRegistrationService(repos.DisciplinaRepository, repos.AlunoRepository),
		DisciplinaService:   NewDisciplinaService(repos.DisciplinaRepository, repos.AlunoRepository),
	}
}
