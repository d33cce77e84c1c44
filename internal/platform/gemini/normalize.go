package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/postwright/postwright-api/internal/generation"
	"google.golang.org/genai"
)

// extractText walks the raw response in a fixed order and either returns the
// first text part of the candidate or classifies the failure. The order is a
// contract: a response can exhibit several conditions at once (e.g. a
// high-severity safety rating next to perfectly valid text) and the earlier
// check must win.
func extractText(
	ctx context.Context,
	logger *slog.Logger,
	resp *genai.GenerateContentResponse,
) (string, error) {
	// 1. No response object at all.
	if resp == nil {
		return "", generation.ErrNoResponse
	}

	// 2. Prompt-level block, independent of any candidate.
	if feedback := resp.PromptFeedback; feedback != nil &&
		feedback.BlockReason != "" &&
		feedback.BlockReason != genai.BlockedReasonUnspecified {
		return "", fmt.Errorf("%w: prompt blocked (reason: %s)",
			generation.ErrPromptBlocked, feedback.BlockReason)
	}

	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: response carries no candidates", generation.ErrNoTextPart)
	}
	candidate := resp.Candidates[0]
	if candidate == nil {
		return "", fmt.Errorf("%w: response carries no candidates", generation.ErrNoTextPart)
	}

	// 3. Candidate safety ratings above low severity. Checked before text
	// extraction: blocked content must never reach the caller, even when
	// text is present.
	if blocked := blockedRatings(candidate.SafetyRatings); len(blocked) > 0 {
		return "", fmt.Errorf("%w: %s",
			generation.ErrSafetyBlocked, formatRatings(blocked))
	}

	// 4. An unexpected finish reason is a soft anomaly: the model may still
	// have returned usable partial text, so log and continue.
	if reason := candidate.FinishReason; reason != "" &&
		reason != genai.FinishReasonUnspecified &&
		reason != genai.FinishReasonStop &&
		reason != genai.FinishReasonMaxTokens {
		logger.WarnContext(ctx, "unexpected finish reason, attempting text extraction anyway",
			"finish_reason", string(reason))
	}

	// 5. First non-empty text part.
	if candidate.Content == nil {
		return "", fmt.Errorf("%w: candidate carries no content", generation.ErrNoTextPart)
	}
	for _, part := range candidate.Content.Parts {
		if part != nil && part.Text != "" {
			return part.Text, nil
		}
	}
	return "", fmt.Errorf("%w: candidate carries no text part", generation.ErrNoTextPart)
}

// normalizePostText extracts and trims the post text. The trimmed text alone
// is the success value; no structural parsing applies to this flow.
func normalizePostText(
	ctx context.Context,
	logger *slog.Logger,
	resp *genai.GenerateContentResponse,
) (string, error) {
	text, err := extractText(ctx, logger, resp)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// normalizeCommentList extracts the candidate text, strips an optional
// enclosing code fence, and parses the result as a JSON array of strings.
//
// The list length is not validated against the requested count: models
// under- and over-produce, and a short list is still a success. The mismatch
// is only logged.
func normalizeCommentList(
	ctx context.Context,
	logger *slog.Logger,
	resp *genai.GenerateContentResponse,
	requested int,
) ([]string, error) {
	text, err := extractText(ctx, logger, resp)
	if err != nil {
		return nil, err
	}

	payload := stripCodeFence(text)

	var parsed any
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
		return nil, fmt.Errorf("%w: not valid JSON: %v", generation.ErrMalformedPayload, err)
	}

	elements, ok := parsed.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected a JSON array, got %T",
			generation.ErrMalformedPayload, parsed)
	}

	comments := make([]string, 0, len(elements))
	for i, element := range elements {
		comment, ok := element.(string)
		if !ok {
			return nil, fmt.Errorf("%w: element %d is not a string",
				generation.ErrMalformedPayload, i)
		}
		comments = append(comments, comment)
	}

	if len(comments) != requested {
		logger.DebugContext(ctx, "comment count differs from requested count",
			"requested", requested,
			"received", len(comments))
	}

	return comments, nil
}

// blockedRatings returns the ratings whose severity is above low, i.e. not
// in {negligible, low}, plus any rating the backend itself flagged as
// blocked.
func blockedRatings(ratings []*genai.SafetyRating) []*genai.SafetyRating {
	var blocked []*genai.SafetyRating
	for _, rating := range ratings {
		if rating == nil {
			continue
		}
		if rating.Blocked ||
			rating.Probability == genai.HarmProbabilityMedium ||
			rating.Probability == genai.HarmProbabilityHigh {
			blocked = append(blocked, rating)
		}
	}
	return blocked
}

// formatRatings renders safety ratings as "category=probability" pairs for
// error details and logs.
func formatRatings(ratings []*genai.SafetyRating) string {
	pairs := make([]string, 0, len(ratings))
	for _, rating := range ratings {
		pairs = append(pairs, fmt.Sprintf("%s=%s", rating.Category, rating.Probability))
	}
	return strings.Join(pairs, ", ")
}
