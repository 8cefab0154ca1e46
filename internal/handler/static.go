package handler

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
)

// StaticHandler serves the prebuilt frontend bundle. Requests that do not
// name an existing file fall through to the unknown-endpoint response.
type StaticHandler struct {
	root     string
	files    http.Handler
	fallback http.HandlerFunc
}

// NewStaticHandler returns nil when dir does not exist, so callers can skip
// mounting it.
func NewStaticHandler(dir string, fallback http.HandlerFunc) *StaticHandler {
	if dir == "" {
		return nil
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil
	}
	return &StaticHandler{
		root:     dir,
		files:    http.FileServer(http.Dir(dir)),
		fallback: fallback,
	}
}

// ServeHTTP implements http.Handler.
func (h *StaticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		h.fallback(w, r)
		return
	}
	if !h.exists(r.URL.Path) {
		h.fallback(w, r)
		return
	}
	h.files.ServeHTTP(w, r)
}

// exists reports whether urlPath names a regular file, or a directory
// holding index.html.
func (h *StaticHandler) exists(urlPath string) bool {
	name := filepath.Join(h.root, filepath.FromSlash(path.Clean("/"+urlPath)))
	info, err := os.Stat(name)
	if err != nil {
		return false
	}
	if !info.IsDir() {
		return true
	}
	index, err := os.Stat(filepath.Join(name, "index.html"))
	return err == nil && !index.IsDir()
}
