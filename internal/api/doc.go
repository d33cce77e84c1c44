// Package api implements the HTTP handlers for the generation endpoints.
// Handlers validate the request locally, invoke the generation pipeline, and
// translate its outcome into stable HTTP status codes and JSON bodies.
// Internal error kinds never leak to clients; see errors.go for the mapping.
package api
