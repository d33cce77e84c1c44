package api

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/postwright/postwright-api/internal/api/shared"
	"github.com/postwright/postwright-api/internal/generation"
)

// GenerateHandler handles the generation-related HTTP requests. It holds the
// process-lifetime generator and validator; both are read-only and safe for
// concurrent requests.
type GenerateHandler struct {
	generator generation.Generator
	validator *validator.Validate
	logger    *slog.Logger
}

// NewGenerateHandler creates a new GenerateHandler.
func NewGenerateHandler(generator generation.Generator, logger *slog.Logger) *GenerateHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &GenerateHandler{
		generator: generator,
		validator: validator.New(),
		logger:    logger,
	}
}

// GenerateComments handles POST /api/generate-comment requests.
func (h *GenerateHandler) GenerateComments(w http.ResponseWriter, r *http.Request) {
	var req GenerateCommentRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	// Local validation; a missing or blank field never reaches the backend.
	if err := h.validator.Struct(req); err != nil || strings.TrimSpace(req.Context) == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Missing or invalid context")
		return
	}

	comments, err := h.generator.GenerateComments(r.Context(), req.Context)
	if err != nil {
		status := MapErrorToStatusCode(err)
		shared.RespondWithErrorAndLog(w, r, status, clientErrorMessage(status, err), err)
		return
	}

	h.logger.DebugContext(r.Context(), "comment batch request served",
		"comment_count", len(comments))
	shared.RespondWithJSON(w, r, http.StatusOK, CommentsResponse{Comments: comments})
}

// GeneratePostContent handles POST /api/generate-post-content requests.
func (h *GenerateHandler) GeneratePostContent(w http.ResponseWriter, r *http.Request) {
	var req GeneratePostContentRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil || strings.TrimSpace(req.Theme) == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Missing or invalid theme")
		return
	}

	postText, err := h.generator.GeneratePostContent(r.Context(), req.Theme)
	if err != nil {
		status := MapErrorToStatusCode(err)
		shared.RespondWithErrorAndLog(w, r, status, clientErrorMessage(status, err), err)
		return
	}

	h.logger.DebugContext(r.Context(), "post content request served",
		"post_length", len(postText))
	shared.RespondWithJSON(w, r, http.StatusOK, PostContentResponse{PostText: postText})
}

// Ping handles GET /api/ping requests. It must answer regardless of backend
// health and therefore never touches the generator.
func (h *GenerateHandler) Ping(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, PingResponse{Status: "awake"})
}
