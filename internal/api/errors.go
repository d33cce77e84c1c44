package api

import (
	"errors"
	"net/http"

	"github.com/postwright/postwright-api/internal/generation"
	"github.com/postwright/postwright-api/internal/redact"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types to
// clients.
//
// Policy rejections and unusable-but-received backend output are the
// client's problem (400): the request produced content the system refuses
// to or cannot pass on. Only a missing response or a transport failure is a
// server-side fault (500).
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, generation.ErrEmptyInput),
		errors.Is(err, generation.ErrPromptBlocked),
		errors.Is(err, generation.ErrSafetyBlocked),
		errors.Is(err, generation.ErrNoTextPart),
		errors.Is(err, generation.ErrMalformedPayload):
		return http.StatusBadRequest

	case errors.Is(err, generation.ErrNoResponse),
		errors.Is(err, generation.ErrTransport):
		return http.StatusInternalServerError

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message based
// on the error type.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, generation.ErrEmptyInput):
		return "Missing or invalid input text"

	case errors.Is(err, generation.ErrPromptBlocked):
		return "Prompt was blocked by the safety system"

	case errors.Is(err, generation.ErrSafetyBlocked):
		return "Generated content was blocked by the safety system"

	case errors.Is(err, generation.ErrNoTextPart):
		return "The language model returned no usable text"

	case errors.Is(err, generation.ErrMalformedPayload):
		return "The language model returned an unparseable payload"

	case errors.Is(err, generation.ErrNoResponse),
		errors.Is(err, generation.ErrTransport):
		return "Failed to generate content"

	default:
		return "An unexpected error occurred"
	}
}

// clientErrorMessage builds the wire-visible message for a pipeline failure.
// For 4xx outcomes the redacted, truncated error text itself is informative
// and safe (it starts with the classified kind, e.g. "prompt blocked by
// ..."); 5xx outcomes get only the generic safe message.
func clientErrorMessage(status int, err error) string {
	if status >= http.StatusInternalServerError {
		return GetSafeErrorMessage(err)
	}
	return redact.Truncate(redact.Error(err))
}
