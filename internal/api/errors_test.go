package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/postwright/postwright-api/internal/generation"
	"github.com/postwright/postwright-api/internal/redact"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"empty input", generation.ErrEmptyInput, http.StatusBadRequest},
		{"prompt blocked", generation.ErrPromptBlocked, http.StatusBadRequest},
		{"safety blocked", generation.ErrSafetyBlocked, http.StatusBadRequest},
		{"no text part", generation.ErrNoTextPart, http.StatusBadRequest},
		{"malformed payload", generation.ErrMalformedPayload, http.StatusBadRequest},
		{"no response", generation.ErrNoResponse, http.StatusInternalServerError},
		{"transport", generation.ErrTransport, http.StatusInternalServerError},
		{"unknown", errors.New("something else"), http.StatusInternalServerError},
		{"wrapped sentinel", fmt.Errorf("context: %w", generation.ErrSafetyBlocked), http.StatusBadRequest},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(nil))
	assert.Contains(t, GetSafeErrorMessage(generation.ErrPromptBlocked), "blocked")
	assert.Contains(t, GetSafeErrorMessage(generation.ErrSafetyBlocked), "blocked")
	assert.Equal(t, "Failed to generate content", GetSafeErrorMessage(generation.ErrTransport))
}

func TestClientErrorMessageTruncatesLongDetail(t *testing.T) {
	longDetail := strings.Repeat("x", 2000)
	err := fmt.Errorf("%w: %s", generation.ErrMalformedPayload, longDetail)

	msg := clientErrorMessage(http.StatusBadRequest, err)
	assert.LessOrEqual(t, len(msg), redact.MaxDetailLength+3,
		"backend detail must be truncated to a fixed small prefix")
}

func TestClientErrorMessageHidesServerErrorDetail(t *testing.T) {
	err := fmt.Errorf("%w: dial tcp 10.0.0.5:443: i/o timeout", generation.ErrTransport)

	msg := clientErrorMessage(http.StatusInternalServerError, err)
	assert.Equal(t, "Failed to generate content", msg)
}
