// Package render adapts html/template to Echo's Renderer contract and
// carries the one-shot flash messages used by the server-rendered pages.
package render

import (
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

type TemplateRenderer struct {
	templates *template.Template
}

// NewTemplateRenderer parses every template matching pattern, e.g.
// "templates/*.html". Templates are addressed by file name.
func NewTemplateRenderer(pattern string) (*TemplateRenderer, error) {
	templates, err := template.ParseGlob(pattern)
	if err != nil {
		return nil, err
	}
	return &TemplateRenderer{templates: templates}, nil
}

func (r *TemplateRenderer) Render(w io.Writer, name string, data any, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
