package handlers

import (
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"
)

// Renderer holds the parsed page templates, one per page, each paired
// with the shared layout.
type Renderer struct {
	tmpl map[string]*template.Template
}

func NewRenderer(fsys fs.FS) (*Renderer, error) {
	const layout = "templates/layout.html"

	pages, err := fs.Glob(fsys, "templates/*.html")
	if err != nil {
		return nil, err
	}

	templates := map[string]*template.Template{}
	for _, page := range pages {
		if page == layout {
			continue
		}
		t, err := template.ParseFS(fsys, layout, page)
		if err != nil {
			return nil, err
		}
		name := strings.TrimSuffix(path.Base(page), ".html")
		templates[name] = t
	}

	return &Renderer{tmpl: templates}, nil
}

func (v *Renderer) Render(w http.ResponseWriter, name string, data any) {
	t, ok := v.tmpl[name]
	if !ok {
		http.Error(w, "template not found", http.StatusInternalServerError)
		return
	}
	if err := t.ExecuteTemplate(w, "layout", data); err != nil {
		http.Error(w, "render error", http.StatusInternalServerError)
	}
}
