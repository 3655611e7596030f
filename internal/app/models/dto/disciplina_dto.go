package dto

import (
	"github.com/yigit/cadastro/internal/app/models"
)

// DisciplinaResponse represents basic disciplina information
type DisciplinaResponse struct {
	ID   int64  `json:"id" example:"1"`
	Name string `json:"name" example:"Math"`
}

// NewDisciplinaResponse maps a model to its API response
func NewDisciplinaResponse(d *models.Disciplina) DisciplinaResponse {
	return DisciplinaResponse{ID: d.ID, Name: d.Name}
}

// NewDisciplinaResponses maps models to API responses
func NewDisciplinaResponses(disciplinas []*models.Disciplina) []DisciplinaResponse {
	out := make([]DisciplinaResponse, 0, len(disciplinas))
	for _, d := range disciplinas {
		out = append(out, NewDisciplinaResponse(d))
	}
	return out
}

// DisciplinaAlunosResponse lists the students of one disciplina
type DisciplinaAlunosResponse struct {
	Disciplina DisciplinaResponse `json:"disciplina"`
	Alunos     []AlunoResponse    `json:"alunos"`
}
