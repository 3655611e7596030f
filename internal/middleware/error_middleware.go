package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yigit/cadastro/internal/app/models/dto"
	"github.com/yigit/cadastro/internal/pkg/apperrors"
	"github.com/yigit/cadastro/internal/pkg/helpers"
	"github.com/yigit/cadastro/internal/pkg/logger"
	"github.com/yigit/cadastro/internal/web"
)

// HandleAPIError maps an error to the JSON error response of the API
func HandleAPIError(c *gin.Context, err error) {
	message := ""
	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) {
		message = customErr.Message
	}

	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound), errors.Is(err, apperrors.ErrDisciplinaNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, orDefault(message, "Resource not found")),
		))
	case errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeBadRequest, orDefault(message, "Bad request")),
		))
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, orDefault(message, "Validation failed")),
		))
	default:
		logger.Error().Err(err).
			Str("requestID", GetRequestID(c)).
			Str("path", c.Request.URL.Path).
			Msg("Unhandled API error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		))
	}
}

func orDefault(message, fallback string) string {
	if message != "" {
		return message
	}
	return fallback
}

// RenderErrorPage renders the HTML page for a 404 or 500 status
func RenderErrorPage(c *gin.Context, status int) {
	name := web.TemplateServerError
	if status == http.StatusNotFound {
		name = web.TemplateNotFound
	}
	c.HTML(status, name, gin.H{"current_time": helpers.Now()})
}

// HandlePageError logs err and answers with the 500 page
func HandlePageError(c *gin.Context, err error) {
	logger.Error().Err(err).
		Str("requestID", GetRequestID(c)).
		Str("path", c.Request.URL.Path).
		Msg("Request failed")
	_ = c.Error(err)
	RenderErrorPage(c, http.StatusInternalServerError)
	c.Abort()
}

// Recovery turns a panic into the 500 page, or a JSON error under /api
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error().
			Interface("panic", recovered).
			Str("requestID", GetRequestID(c)).
			Str("path", c.Request.URL.Path).
			Msg("Recovered from panic")

		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
			))
			return
		}
		RenderErrorPage(c, http.StatusInternalServerError)
		c.Abort()
	})
}
