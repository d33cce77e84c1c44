package generation

import "errors"

// Common errors returned by the generation package
var (
	// ErrEmptyInput is returned when the caller-supplied text is empty after trimming
	ErrEmptyInput = errors.New("input text cannot be empty")

	// ErrNoResponse is returned when the backend produced no response object at all
	ErrNoResponse = errors.New("no response from language model")

	// ErrPromptBlocked is returned when the backend rejected the prompt itself
	ErrPromptBlocked = errors.New("prompt blocked by language model safety filters")

	// ErrSafetyBlocked is returned when a candidate carries safety ratings above the allowed severity
	ErrSafetyBlocked = errors.New("content blocked by language model safety filters")

	// ErrNoTextPart is returned when the candidate carries no usable text content
	ErrNoTextPart = errors.New("no text content in language model response")

	// ErrMalformedPayload is returned when the model text cannot be parsed into the expected shape
	ErrMalformedPayload = errors.New("malformed payload from language model")

	// ErrTransport is returned for network or client-level failures calling the backend
	ErrTransport = errors.New("transport error calling language model")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")
)
