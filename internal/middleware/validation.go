package middleware

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/yigit/cadastro/internal/app/models"
	"github.com/yigit/cadastro/internal/app/models/dto"
)

// Form messages shown under the offending field
const (
	MessageRequired      = "Este campo é obrigatório."
	MessageInvalidChoice = "Escolha inválida."
)

var validate = newValidator()

// newValidator reports fields by their form name
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateAlunoForm checks the struct tags of form, then that the selected
// disciplina is one of choices.
func ValidateAlunoForm(form *dto.AlunoForm, choices []*models.Disciplina) dto.FormErrors {
	errs := dto.FormErrors{}

	if err := validate.Struct(form); err != nil {
		var validationErrs validator.ValidationErrors
		if !errors.As(err, &validationErrs) {
			errs.Add(dto.FieldName, err.Error())
			return errs
		}
		for _, fe := range validationErrs {
			errs.Add(fe.Field(), formatValidationError(fe))
		}
	}

	if _, failed := errs[dto.FieldDisciplina]; !failed && !isChoice(form, choices) {
		errs.Add(dto.FieldDisciplina, MessageInvalidChoice)
	}

	return errs
}

func isChoice(form *dto.AlunoForm, choices []*models.Disciplina) bool {
	id, err := form.DisciplinaID()
	if err != nil {
		return false
	}
	for _, d := range choices {
		if d.ID == id {
			return true
		}
	}
	return false
}

// formatValidationError creates the message shown for a failed field
func formatValidationError(e validator.FieldError) string {
	if e.Field() == dto.FieldDisciplina {
		return MessageInvalidChoice
	}
	switch e.Tag() {
	case "required":
		return MessageRequired
	case "max":
		return fmt.Sprintf("O campo deve ter no máximo %s caracteres.", e.Param())
	default:
		return "Valor inválido."
	}
}
