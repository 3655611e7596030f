package models

// Disciplina represents a discipline students can be registered against
type Disciplina struct {
	ID   int64  `json:"id" db:"id" example:"1"`
	Name string `json:"name" db:"name" example:"Math"`
}
