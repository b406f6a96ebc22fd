// Package render is the page-rendering collaborator: it resolves a
// template name plus a data mapping into markup.
package render

import (
	"fmt"
	"html/template"
	"net/http"
	"path/filepath"
)

// Renderer serves parsed HTML templates by name.
type Renderer struct {
	templates *template.Template
}

// New parses every .html template under dir.
func New(dir string) (*Renderer, error) {
	if dir == "" {
		return nil, fmt.Errorf("template dir is required")
	}
	tmpl, err := template.ParseGlob(filepath.Join(dir, "*.html"))
	if err != nil {
		return nil, fmt.Errorf("parsing templates in %q: %w", dir, err)
	}
	return &Renderer{templates: tmpl}, nil
}

// Page writes the named template with the provided data mapping.
func (r *Renderer) Page(w http.ResponseWriter, name string, data map[string]any) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := r.templates.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("rendering %q: %w", name, err)
	}
	return nil
}
