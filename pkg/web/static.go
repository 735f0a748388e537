package web

import (
	"io/fs"
	"net/http"
	"strings"
)

// DistServer serves the files under dir of fsys at urlPrefix. Directory
// paths are answered with 404 instead of a listing.
func DistServer(fsys fs.FS, dir, urlPrefix string) http.Handler {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic("web: dist dir " + dir + ": " + err.Error())
	}
	files := http.StripPrefix(urlPrefix, http.FileServerFS(sub))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Cache-Control", "no-cache")
		files.ServeHTTP(w, r)
	})
}
