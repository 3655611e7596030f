package models

// Aluno defines the student model based on the 'alunos' table
type Aluno struct {
	ID           int64  `json:"id" db:"id" example:"1"`
	Username     string `json:"username" db:"username" example:"Ana"`
	DisciplinaID int64  `json:"disciplinaId" db:"disciplina_id" example:"1"`

	// Populated by listing queries that join disciplinas
	DisciplinaName string `json:"disciplinaName,omitempty" db:"-" example:"Math"`
}
