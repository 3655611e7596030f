package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/yigit/cadastro/internal/app/models"
	"github.com/yigit/cadastro/internal/app/models/dto"
	"github.com/yigit/cadastro/internal/app/services"
	"github.com/yigit/cadastro/internal/middleware"
	"github.com/yigit/cadastro/internal/pkg/apperrors"
	"github.com/yigit/cadastro/internal/pkg/flash"
	"github.com/yigit/cadastro/internal/pkg/helpers"
	"github.com/yigit/cadastro/internal/pkg/logger"
	"github.com/yigit/cadastro/internal/pkg/metrics"
	"github.com/yigit/cadastro/internal/web"
)

// AlunosPath is both the form target and the redirect destination
const AlunosPath = "/alunos"

// Flash texts
const (
	MessageAlunoCreated = "Estudante cadastrado com sucesso!"
	MessageAlunoKnown   = "Estudante já existe na base de dados!"
)

// AlunoController handles the registration page
type AlunoController struct {
	registrationService *services.RegistrationService
	flash               *flash.Store
	metrics             *metrics.Metrics
}

// NewAlunoController creates a new AlunoController
func NewAlunoController(registrationService *services.RegistrationService, flashStore *flash.Store, m *metrics.Metrics) *AlunoController {
	return &AlunoController{
		registrationService: registrationService,
		flash:               flashStore,
		metrics:             m,
	}
}

// List renders the form and every registered student, consuming the pending
// flash message.
func (c *AlunoController) List(ctx *gin.Context) {
	choices, err := c.registrationService.Choices(ctx)
	if err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}

	msg, err := c.flash.Pop(ctx)
	if err != nil {
		logger.Warn().Err(err).Str("requestID", middleware.GetRequestID(ctx)).Msg("Discarding flash cookie")
		msg = nil
	}

	c.render(ctx, &dto.AlunoForm{}, dto.FormErrors{}, choices, msg)
}

// Create validates the submitted form and registers the student unless the
// name is already known, then redirects back to the listing.
func (c *AlunoController) Create(ctx *gin.Context) {
	choices, err := c.registrationService.Choices(ctx)
	if err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}

	var form dto.AlunoForm
	if err := ctx.ShouldBindWith(&form, binding.FormPost); err != nil {
		logger.Warn().Err(err).Str("requestID", middleware.GetRequestID(ctx)).Msg("Failed to bind aluno form")
		form = dto.AlunoForm{}
	}
	// the name is stored trimmed, not as submitted
	form.Normalize()

	formErrors := middleware.ValidateAlunoForm(&form, choices)
	if formErrors.HasErrors() {
		c.metrics.ObserveRegistration(metrics.OutcomeInvalid)
		c.render(ctx, &form, formErrors, choices, nil)
		return
	}

	disciplinaID, _ := form.DisciplinaID()
	outcome, err := c.registrationService.Register(ctx, form.Name, disciplinaID)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidDisciplina) {
			// disciplina vanished between loading the choices and inserting
			formErrors.Add(dto.FieldDisciplina, middleware.MessageInvalidChoice)
			c.metrics.ObserveRegistration(metrics.OutcomeInvalid)
			c.render(ctx, &form, formErrors, choices, nil)
			return
		}
		middleware.HandlePageError(ctx, err)
		return
	}

	if outcome.Known {
		c.metrics.ObserveRegistration(metrics.OutcomeDuplicate)
	} else {
		c.metrics.ObserveRegistration(metrics.OutcomeCreated)
	}

	if err := c.flash.Set(ctx, registrationFlash(form.Name, outcome.Known)); err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}
	ctx.Redirect(http.StatusFound, AlunosPath)
}

func (c *AlunoController) render(ctx *gin.Context, form *dto.AlunoForm, formErrors dto.FormErrors, choices []*models.Disciplina, msg *flash.Message) {
	alunos, err := c.registrationService.ListAlunos(ctx)
	if err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}

	data := gin.H{
		"title":        "Alunos",
		"current_time": helpers.Now(),
		"form":         form,
		"errors":       formErrors,
		"choices":      dto.NewChoiceOptions(choices, form.Disciplina),
		"alunos":       alunos,
	}
	if msg != nil {
		data["flash"] = msg
		data["name"] = msg.Name
		data["known"] = msg.Known
	}

	ctx.HTML(http.StatusOK, web.TemplateAlunos, data)
}

func registrationFlash(name string, known bool) flash.Message {
	if known {
		return flash.Message{Name: name, Known: true, Category: flash.CategoryWarning, Text: MessageAlunoKnown}
	}
	return flash.Message{Name: name, Known: false, Category: flash.CategorySuccess, Text: MessageAlunoCreated}
}
