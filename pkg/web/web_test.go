package web_test

import (
	"embed"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/tasnif/pkg/web"
)

//go:embed testdata
var testFS embed.FS

var (
	homeView  = web.ViewDef{Template: "home.html", Title: "Home", Bundle: "app"}
	errorView = web.ViewDef{Template: "error.html", Title: "Oops"}
)

func newTemplateSet(t *testing.T) *web.TemplateSet {
	t.Helper()
	ts, err := web.NewTemplateSet(testFS, "testdata/layouts/*.html", "testdata/views", "/app", homeView, errorView)
	if err != nil {
		t.Fatalf("NewTemplateSet: %v", err)
	}
	return ts
}

func TestRenderView(t *testing.T) {
	ts := newTemplateSet(t)
	rec := httptest.NewRecorder()

	if err := ts.RenderView(rec, http.StatusAccepted, "base", homeView, "payload"); err != nil {
		t.Fatalf("RenderView: %v", err)
	}

	if rec.Code != http.StatusAccepted {
		t.Errorf("status: got %d, want 202", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("content-type: got %s", ct)
	}
	body := rec.Body.String()
	for _, want := range []string{"<title>Home</title>", `data-base="/app/"`, "payload", `src="/app/dist/app.js"`} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q: %s", want, body)
		}
	}
}

func TestViewMissingFromDir(t *testing.T) {
	_, err := web.NewTemplateSet(testFS, "testdata/layouts/*.html", "testdata/views", "/app",
		web.ViewDef{Template: "absent.html"})
	if err == nil {
		t.Error("expected error for a view absent from the view directory")
	}
}

func TestRenderUnknownView(t *testing.T) {
	ts := newTemplateSet(t)
	rec := httptest.NewRecorder()

	if err := ts.Render(rec, http.StatusOK, "base", "missing.html", web.ViewData{}); err == nil {
		t.Error("expected error for unknown view")
	}
	if rec.Body.Len() != 0 {
		t.Error("nothing should be written for a failed render")
	}
}

func TestErrorHandler(t *testing.T) {
	ts := newTemplateSet(t)
	rec := httptest.NewRecorder()

	ts.ErrorHandler("base", errorView, http.StatusNotFound)(rec, httptest.NewRequest("GET", "/nope", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "<title>Oops</title>") {
		t.Errorf("body: %s", rec.Body.String())
	}
}

func TestDistServer(t *testing.T) {
	h := web.DistServer(testFS, "testdata/dist", "/dist/")

	tests := []struct {
		path string
		code int
	}{
		{"/dist/app.js", http.StatusOK},
		{"/dist/", http.StatusNotFound},
		{"/dist/missing.js", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest("GET", tt.path, nil))

			if rec.Code != tt.code {
				t.Fatalf("status: got %d, want %d", rec.Code, tt.code)
			}
			if tt.code == http.StatusOK {
				if !strings.Contains(rec.Body.String(), "console.log") {
					t.Errorf("body: %s", rec.Body.String())
				}
				if cc := rec.Header().Get("Cache-Control"); cc != "no-cache" {
					t.Errorf("cache-control: got %q", cc)
				}
			}
		})
	}
}
