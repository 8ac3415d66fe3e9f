package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.tmpl
var files embed.FS

const layout = "templates/base.tmpl"

var funcMap = template.FuncMap{
	"join": strings.Join,
	"year": func(y int) string {
		if y <= 0 {
			return "-"
		}
		return fmt.Sprint(y)
	},
}

// Renderer executes one template set per page, each made of the shared
// layout plus the page's own "content" block.
type Renderer struct {
	pages map[string]*template.Template
}

func New() (*Renderer, error) {
	base, err := template.New(path.Base(layout)).Funcs(funcMap).ParseFS(files, layout)
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}

	entries, err := fs.Glob(files, "templates/*.tmpl")
	if err != nil {
		return nil, err
	}

	pages := make(map[string]*template.Template, len(entries))
	for _, entry := range entries {
		if entry == layout {
			continue
		}

		t, err := template.Must(base.Clone()).ParseFS(files, entry)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", entry, err)
		}
		pages[strings.TrimSuffix(path.Base(entry), ".tmpl")] = t
	}
	return &Renderer{pages: pages}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}
	return t.ExecuteTemplate(w, "base", data)
}
