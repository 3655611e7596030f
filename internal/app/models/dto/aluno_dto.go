package dto

import (
	"strconv"
	"strings"

	"github.com/yigit/cadastro/internal/app/models"
)

// Registration form field names
const (
	FieldName       = "name"
	FieldDisciplina = "disciplina"
)

// AlunoForm is the registration form posted to /alunos
type AlunoForm struct {
	Name       string `form:"name" validate:"required,max=64"`
	Disciplina string `form:"disciplina" validate:"required,number"`
}

// Normalize trims surrounding whitespace so a blank name counts as missing
func (f *AlunoForm) Normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Disciplina = strings.TrimSpace(f.Disciplina)
}

// DisciplinaID coerces the selected disciplina to its identifier
func (f *AlunoForm) DisciplinaID() (int64, error) {
	return strconv.ParseInt(f.Disciplina, 10, 64)
}

// FormErrors maps a form field to the messages shown under it
type FormErrors map[string][]string

// Add appends a message for field
func (e FormErrors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// HasErrors reports whether any field failed
func (e FormErrors) HasErrors() bool {
	return len(e) > 0
}

// ChoiceOption is one entry of the disciplina dropdown
type ChoiceOption struct {
	Value    int64
	Label    string
	Selected bool
}

// NewChoiceOptions builds dropdown options in the given order, marking the
// option whose id equals selected.
func NewChoiceOptions(disciplinas []*models.Disciplina, selected string) []ChoiceOption {
	options := make([]ChoiceOption, 0, len(disciplinas))
	for _, d := range disciplinas {
		options = append(options, ChoiceOption{
			Value:    d.ID,
			Label:    d.Name,
			Selected: selected != "" && selected == strconv.FormatInt(d.ID, 10),
		})
	}
	return options
}

// AlunoResponse is the API representation of a student
type AlunoResponse struct {
	ID             int64  `json:"id" example:"1"`
	Username       string `json:"username" example:"Ana"`
	DisciplinaID   int64  `json:"disciplinaId" example:"1"`
	DisciplinaName string `json:"disciplinaName,omitempty" example:"Math"`
}

// NewAlunoResponses maps models to API responses
func NewAlunoResponses(alunos []*models.Aluno) []AlunoResponse {
	out := make([]AlunoResponse, 0, len(alunos))
	for _, a := range alunos {
		out = append(out, AlunoResponse{
			ID:             a.ID,
			Username:       a.Username,
			DisciplinaID:   a.DisciplinaID,
			DisciplinaName: a.DisciplinaName,
		})
	}
	return out
}

// AlunoListResponse represents a page of students
type AlunoListResponse struct {
	Alunos     []AlunoResponse `json:"alunos"`
	Pagination PaginationInfo  `json:"pagination"`
}
