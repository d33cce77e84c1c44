package api

import (
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
)

// StaticHandler serves the landing document at the root path.
type StaticHandler struct {
	path   string
	logger *slog.Logger
}

// NewStaticHandler creates a StaticHandler serving the file at path.
func NewStaticHandler(path string, logger *slog.Logger) *StaticHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &StaticHandler{path: path, logger: logger}
}

// ServeLanding handles GET / requests. A missing landing file is a 404; any
// other read failure is a 500. The file is read per request so it can be
// replaced without a restart.
func (h *StaticHandler) ServeLanding(w http.ResponseWriter, r *http.Request) {
	data, err := os.ReadFile(h.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			h.logger.Warn("landing page not found", "path", h.path)
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to read landing page", "path", h.path, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.logger.Error("failed to write landing page response", "error", err)
	}
}
