package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yigit/cadastro/internal/app/models/dto"
	"github.com/yigit/cadastro/internal/app/services"
	"github.com/yigit/cadastro/internal/middleware"
	"github.com/yigit/cadastro/internal/pkg/apperrors"
	"github.com/yigit/cadastro/internal/pkg/helpers"
)

// APIController serves the read-only JSON API
type APIController struct {
	disciplinaService *services.DisciplinaService
}

// NewAPIController creates a new APIController
func NewAPIController(disciplinaService *services.DisciplinaService) *APIController {
	return &APIController{
		disciplinaService: disciplinaService,
	}
}

// ListDisciplinas retrieves all disciplinas
// @Summary List disciplinas
// @Description Retrieves every disciplina ordered by name
// @Tags disciplinas
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.DisciplinaResponse} "Disciplinas retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /disciplinas [get]
func (c *APIController) ListDisciplinas(ctx *gin.Context) {
	disciplinas, err := c.disciplinaService.ListDisciplinas(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewDisciplinaResponses(disciplinas)))
}

// ListAlunosByDisciplina retrieves the students of one disciplina
// @Summary List alunos of a disciplina
// @Description Retrieves a disciplina and the students registered against it
// @Tags disciplinas
// @Produce json
// @Param id path int true "Disciplina ID"
// @Success 200 {object} dto.APIResponse{data=dto.DisciplinaAlunosResponse} "Alunos retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid disciplina ID"
// @Failure 404 {object} dto.ErrorResponse "Disciplina not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /disciplinas/{id}/alunos [get]
func (c *APIController) ListAlunosByDisciplina(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid disciplina ID"))
		return
	}

	disciplina, alunos, err := c.disciplinaService.GetAlunosByDisciplina(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.DisciplinaAlunosResponse{
		Disciplina: dto.NewDisciplinaResponse(disciplina),
		Alunos:     dto.NewAlunoResponses(alunos),
	}))
}

// ListAlunos retrieves a page of students
// @Summary List alunos
// @Description Retrieves registered students page by page
// @Tags alunos
// @Produce json
// @Param page query int false "Page number (1-based)" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.AlunoListResponse} "Alunos retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /alunos [get]
func (c *APIController) ListAlunos(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	alunos, total, err := c.disciplinaService.ListAlunosPage(ctx, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.AlunoListResponse{
		Alunos:     dto.NewAlunoResponses(alunos),
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}))
}
