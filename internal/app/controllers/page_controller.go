package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/cadastro/internal/middleware"
	"github.com/yigit/cadastro/internal/pkg/helpers"
	"github.com/yigit/cadastro/internal/web"
)

// PageController serves the static pages
type PageController struct{}

// NewPageController creates a new PageController
func NewPageController() *PageController {
	return &PageController{}
}

// Index renders the home page
func (c *PageController) Index(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, web.TemplateIndex, gin.H{
		"title":        "Home",
		"current_time": helpers.Now(),
	})
}

// Indisponivel renders the service unavailable notice
func (c *PageController) Indisponivel(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, web.TemplateIndisponivel, gin.H{
		"title":        "Indisponível",
		"current_time": helpers.Now(),
	})
}

// NotFound renders the 404 page for unmatched routes
func (c *PageController) NotFound(ctx *gin.Context) {
	middleware.RenderErrorPage(ctx, http.StatusNotFound)
}
