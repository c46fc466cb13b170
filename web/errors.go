package web

import (
	"io/fs"
	"net/http"
)

// errorPages maps status codes to the page served in their place.
var errorPages = map[int]string{
	http.StatusNotFound:            "404.html",
	http.StatusInternalServerError: "500.html",
}

// ErrorHandler captures 404 and 500 responses written by h and replaces their body
// with /404.html or /500.html from fsys. Other responses pass through unchanged.
func ErrorHandler(h http.Handler, fsys fs.FS) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.ServeHTTP(&errorWriter{ResponseWriter: w, fsys: fsys}, r)
	})
}

type errorWriter struct {
	http.ResponseWriter
	fsys     fs.FS
	replaced bool
	err      error
}

// Write discards the body of replaced responses.
func (w *errorWriter) Write(b []byte) (int, error) {
	if w.replaced {
		return len(b), w.err
	}
	return w.ResponseWriter.Write(b)
}

func (w *errorWriter) WriteHeader(statusCode int) {
	if name, ok := errorPages[statusCode]; ok {
		b, err := fs.ReadFile(w.fsys, name)
		if err == nil {
			h := w.Header()
			h.Set("Content-Type", "text/html; charset=utf-8")
			h.Del("Content-Length")
			w.ResponseWriter.WriteHeader(statusCode)
			w.replaced = true
			_, w.err = w.ResponseWriter.Write(b)
			return
		}
	}
	w.ResponseWriter.WriteHeader(statusCode)
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *errorWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
