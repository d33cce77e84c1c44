package api

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeLanding(t *testing.T) {
	dir := t.TempDir()
	page := filepath.Join(dir, "index.html")
	require.NoError(t, os.WriteFile(page, []byte("<html><body>hello</body></html>"), 0o644))

	h := NewStaticHandler(page, nil)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.ServeLanding(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "hello")
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
}

func TestServeLandingMissingFile(t *testing.T) {
	h := NewStaticHandler(filepath.Join(t.TempDir(), "nope.html"), nil)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.ServeLanding(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServeLandingUnreadableFile(t *testing.T) {
	// A directory at the configured path fails to read without being absent.
	dir := t.TempDir()
	h := NewStaticHandler(dir, nil)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.ServeLanding(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
