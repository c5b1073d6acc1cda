package render

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
)

// ErrTemplateNotFound is returned when no parsed template matches the
// requested name.
var ErrTemplateNotFound = errors.New("template not found")

// Renderer produces an HTML document from a template name and a data
// context.
type Renderer interface {
	Render(name string, data any) ([]byte, error)
}

// HTMLRenderer implements Renderer over html/template sets parsed once
// at construction.
type HTMLRenderer struct {
	templates *template.Template
}

// NewHTMLRenderer parses every template matching glob from fsys.
func NewHTMLRenderer(fsys fs.FS, glob string) (*HTMLRenderer, error) {
	tmpl, err := template.ParseFS(fsys, glob)
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &HTMLRenderer{templates: tmpl}, nil
}

// Render executes the named template with data.
func (r *HTMLRenderer) Render(name string, data any) ([]byte, error) {
	tmpl := r.templates.Lookup(name)
	if tmpl == nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
