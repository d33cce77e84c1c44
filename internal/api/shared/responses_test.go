package shared

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	RespondWithJSON(rec, req, http.StatusOK, map[string]string{"status": "awake"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "awake", body["status"])
}

func TestRespondWithErrorIncludesTraceID(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/generate-comment", nil)
	req = req.WithContext(SetTraceID(req.Context()))
	rec := httptest.NewRecorder()

	RespondWithError(rec, req, http.StatusBadRequest, "Missing or invalid context")

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Missing or invalid context", body.Error)
	assert.Len(t, body.TraceID, 32)
}

func TestRespondWithErrorAndLogHidesRawError(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()

	RespondWithErrorAndLog(rec, req, http.StatusInternalServerError,
		"Failed to generate content", errors.New("dial tcp: connection refused"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Failed to generate content", body.Error)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestSetAndGetTraceID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := req.Context()

	assert.Empty(t, GetTraceID(ctx), "expected empty trace ID before SetTraceID")

	ctx = SetTraceID(ctx)
	traceID := GetTraceID(ctx)
	assert.Len(t, traceID, 32, "expected 32 hex characters (16 bytes)")

	other := GetTraceID(SetTraceID(req.Context()))
	assert.NotEqual(t, traceID, other, "trace IDs must not repeat")
}
