// Package gemini implements the generation.Generator interface using
// Google's Gemini API. It owns the three pipeline stages in front of the
// backend: prompt construction, the single-attempt model invocation, and
// the normalization of the raw response into a typed success value or a
// classified failure.
package gemini
