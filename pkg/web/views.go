// Package web renders server-side pages from embedded templates and serves
// their static assets.
package web

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
)

// ViewDef names a page template together with its title and optional script bundle.
type ViewDef struct {
	Template string
	Title    string
	Bundle   string
}

// ViewData is the dot value every layout executes with.
type ViewData struct {
	Title  string
	Bundle string
	Data   any
}

// TemplateSet holds one parsed template tree per view, each combining the
// shared layouts with that view's blocks. Templates can call {{ url "x" }}
// to build links under the set's base path.
type TemplateSet struct {
	views map[string]*template.Template
}

// NewTemplateSet parses the layouts matching layoutGlob and clones them for
// each view found under viewDir in fsys. Any parse failure is returned.
func NewTemplateSet(fsys fs.FS, layoutGlob, viewDir, basePath string, views ...ViewDef) (*TemplateSet, error) {
	funcs := template.FuncMap{
		"url": func(p string) string {
			return strings.TrimSuffix(basePath, "/") + "/" + strings.TrimPrefix(p, "/")
		},
	}

	layouts, err := template.New("").Funcs(funcs).ParseFS(fsys, layoutGlob)
	if err != nil {
		return nil, fmt.Errorf("parse layouts: %w", err)
	}

	viewFS, err := fs.Sub(fsys, viewDir)
	if err != nil {
		return nil, err
	}

	ts := &TemplateSet{views: make(map[string]*template.Template, len(views))}
	for _, v := range views {
		t, err := layouts.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layouts for %s: %w", v.Template, err)
		}
		if _, err := t.ParseFS(viewFS, v.Template); err != nil {
			return nil, fmt.Errorf("parse view %s: %w", v.Template, err)
		}
		ts.views[v.Template] = t
	}
	return ts, nil
}

// ErrorHandler renders view with status for every request it receives.
func (ts *TemplateSet) ErrorHandler(layout string, view ViewDef, status int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ts.RenderView(w, status, layout, view, nil); err != nil {
			http.Error(w, http.StatusText(status), status)
		}
	}
}

// RenderView renders view inside layout with data exposed as .Data.
func (ts *TemplateSet) RenderView(w http.ResponseWriter, status int, layout string, view ViewDef, data any) error {
	return ts.Render(w, status, layout, view.Template, ViewData{
		Title:  view.Title,
		Bundle: view.Bundle,
		Data:   data,
	})
}

// Render executes layout for the view parsed from viewPath. Output is buffered,
// so nothing is written when execution fails.
func (ts *TemplateSet) Render(w http.ResponseWriter, status int, layout, viewPath string, data ViewData) error {
	t, ok := ts.views[viewPath]
	if !ok {
		return fmt.Errorf("template not found: %s", viewPath)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, layout, data); err != nil {
		return fmt.Errorf("execute %s: %w", viewPath, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
