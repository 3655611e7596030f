package web

import (
	"embed"
	"html/template"
	"time"
)

// Template names rendered by the controllers
const (
	TemplateIndex        = "index.html"
	TemplateIndisponivel = "indisponivel.html"
	TemplateAlunos       = "alunos.html"
	TemplateNotFound     = "404.html"
	TemplateServerError  = "500.html"
)

//go:embed templates/*.html
var templateFS embed.FS

// FuncMap returns the helpers available inside the templates
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"formatTime": func(t time.Time) string {
			return t.Format("02/01/2006 15:04:05")
		},
		"isoTime": func(t time.Time) string {
			return t.Format(time.RFC3339)
		},
	}
}

// Templates parses the embedded page templates
func Templates() (*template.Template, error) {
	return template.New("").Funcs(FuncMap()).ParseFS(templateFS, "templates/*.html")
}
