// Package redact provides utilities for sanitizing backend error detail
// before it is logged or returned in error responses. It prevents the
// accidental leakage of API credentials and caps how much raw model output
// can escape into a client-visible message.
package redact

import "regexp"

// Constants for redaction placeholders
const (
	RedactedKeyPlaceholder = "[REDACTED_KEY]"

	// MaxDetailLength is the fixed prefix length backend detail is truncated
	// to in client-visible error messages.
	MaxDetailLength = 160
)

// Precompiled regex patterns
var (
	// API keys and tokens ("api_key=...", "key: ...", bearer tokens)
	apiKeyRegex = regexp.MustCompile(
		`(?i)(api[_-]?key|token|secret|key|bearer|auth)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`,
	)

	// Google API keys have a recognizable prefix
	googleKeyRegex = regexp.MustCompile(`AIza[A-Za-z0-9_\-]{10,}`)
)

// String redacts credential-shaped substrings from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := apiKeyRegex.ReplaceAllString(input, "${1}${2}"+RedactedKeyPlaceholder)
	result = googleKeyRegex.ReplaceAllString(result, RedactedKeyPlaceholder)
	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}

// Truncate caps s at MaxDetailLength runes, appending an ellipsis when the
// text was cut.
func Truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= MaxDetailLength {
		return s
	}
	return string(runes[:MaxDetailLength]) + "..."
}
