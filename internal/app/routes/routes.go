package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/yigit/cadastro/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	pageController *controllers.PageController,
	alunoController *controllers.AlunoController,
	apiController *controllers.APIController,
) {
	// --- Web pages ---
	router.GET("/", pageController.Index)
	router.GET("/indisponivel", pageController.Indisponivel)
	router.GET(controllers.AlunosPath, alunoController.List)
	router.POST(controllers.AlunosPath, alunoController.Create)

	// --- Read-only JSON API ---
	v1 := router.Group("/api/v1")
	{
		disciplinas := v1.Group("/disciplinas")
		{
			disciplinas.GET("", apiController.ListDisciplinas)
			disciplinas.GET("/:id/alunos", apiController.ListAlunosByDisciplina)
		}
		v1.GET("/alunos", apiController.ListAlunos)
	}

	// Method mismatches fall through to NoRoute as HandleMethodNotAllowed is off
	router.NoRoute(pageController.NotFound)
}
