package middleware

import (
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"

	"github.com/yigit/cadastro/internal/app/models/dto"
	"github.com/yigit/cadastro/internal/pkg/apperrors"
	"github.com/yigit/cadastro/internal/pkg/metrics"
	"github.com/yigit/cadastro/internal/web"
)

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.SetHTMLTemplate(template.Must(web.Templates()))
	r.Use(RequestID(), Recovery())
	return r
}

func TestRequestIDGeneratedAndEchoed(t *testing.T) {
	r := newTestEngine()
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, GetRequestID(c)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if id := w.Header().Get(RequestIDHeader); id == "" || id != w.Body.String() {
		t.Fatalf("expected generated request id, header=%q body=%q", id, w.Body.String())
	}

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc")
	r.ServeHTTP(w, req)
	if got := w.Header().Get(RequestIDHeader); got != "abc" {
		t.Fatalf("expected incoming request id to be kept, got %q", got)
	}
}

func TestRequestLoggerCountsRoutes(t *testing.T) {
	m := metrics.New()
	r := newTestEngine()
	r.Use(RequestLogger(zerolog.Nop(), m))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for i := 0; i < 2; i++ {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))
	}
	if got := testutil.ToFloat64(m.Requests.WithLabelValues("/ok", "204")); got != 2 {
		t.Fatalf("expected 2 counted requests, got %v", got)
	}
}

func TestRecoveryRendersErrorPage(t *testing.T) {
	r := newTestEngine()
	r.GET("/boom", func(c *gin.Context) { panic("boom") })
	r.GET("/api/v1/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	if w.Code != http.StatusInternalServerError || !strings.Contains(w.Body.String(), "Erro interno do servidor") {
		t.Fatalf("expected 500 page, got %d %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/boom", nil))
	var resp dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if w.Code != http.StatusInternalServerError || resp.Error.Code != dto.ErrorCodeInternalServer {
		t.Fatalf("expected JSON 500, got %d %+v", w.Code, resp)
	}
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    dto.ErrorCode
		message string
	}{
		{"not found", apperrors.NewResourceNotFoundError("Disciplina 9 not found"), http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Disciplina 9 not found"},
		{"disciplina not found", apperrors.ErrDisciplinaNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found"},
		{"bad request", apperrors.NewBadRequestError("Invalid disciplina ID"), http.StatusBadRequest, dto.ErrorCodeBadRequest, "Invalid disciplina ID"},
		{"validation", apperrors.ErrValidationFailed, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Validation failed"},
		{"unknown", errors.New("db down"), http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/x", nil)

			HandleAPIError(c, tt.err)

			var resp dto.ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if w.Code != tt.status || resp.Success || resp.Error.Code != tt.code || resp.Error.Message != tt.message {
				t.Fatalf("unexpected response %d %+v", w.Code, resp.Error)
			}
		})
	}
}
