package gemini

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/postwright/postwright-api/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

// testLogger discards output; normalization must not depend on log effects.
func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// textResponse builds a minimal well-formed response carrying one candidate
// with the given text.
func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Parts: []*genai.Part{{Text: text}},
				},
				FinishReason: genai.FinishReasonStop,
			},
		},
	}
}

func TestExtractTextNilResponse(t *testing.T) {
	_, err := extractText(context.Background(), testLogger(), nil)
	assert.ErrorIs(t, err, generation.ErrNoResponse)
}

func TestExtractTextPromptBlocked(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		PromptFeedback: &genai.GenerateContentResponsePromptFeedback{
			BlockReason: genai.BlockedReasonSafety,
		},
		// A candidate next to a prompt-level block must not rescue the response.
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []*genai.Part{{Text: "usable text"}}}},
		},
	}

	_, err := extractText(context.Background(), testLogger(), resp)
	require.ErrorIs(t, err, generation.ErrPromptBlocked)
	assert.Contains(t, err.Error(), "SAFETY")
}

func TestExtractTextSafetyBlockPrecedesValidText(t *testing.T) {
	resp := textResponse(`["perfectly", "valid"]`)
	resp.Candidates[0].SafetyRatings = []*genai.SafetyRating{
		{Category: genai.HarmCategoryHarassment, Probability: genai.HarmProbabilityHigh},
	}

	_, err := extractText(context.Background(), testLogger(), resp)
	require.ErrorIs(t, err, generation.ErrSafetyBlocked,
		"a high-severity rating must win over valid text")
	assert.Contains(t, err.Error(), string(genai.HarmCategoryHarassment))
}

func TestExtractTextMediumSeverityBlocks(t *testing.T) {
	resp := textResponse("text")
	resp.Candidates[0].SafetyRatings = []*genai.SafetyRating{
		{Category: genai.HarmCategoryDangerousContent, Probability: genai.HarmProbabilityMedium},
	}

	_, err := extractText(context.Background(), testLogger(), resp)
	assert.ErrorIs(t, err, generation.ErrSafetyBlocked)
}

func TestExtractTextLowSeverityRatingsPass(t *testing.T) {
	resp := textResponse("harmless")
	resp.Candidates[0].SafetyRatings = []*genai.SafetyRating{
		{Category: genai.HarmCategoryHarassment, Probability: genai.HarmProbabilityNegligible},
		{Category: genai.HarmCategoryHateSpeech, Probability: genai.HarmProbabilityLow},
	}

	text, err := extractText(context.Background(), testLogger(), resp)
	require.NoError(t, err)
	assert.Equal(t, "harmless", text)
}

func TestExtractTextUnexpectedFinishReasonTolerated(t *testing.T) {
	resp := textResponse("partial but usable")
	resp.Candidates[0].FinishReason = genai.FinishReasonRecitation

	text, err := extractText(context.Background(), testLogger(), resp)
	require.NoError(t, err, "a strange finish reason alone must not fail the response")
	assert.Equal(t, "partial but usable", text)
}

func TestExtractTextMaxTokensAccepted(t *testing.T) {
	resp := textResponse("cut off mid senten")
	resp.Candidates[0].FinishReason = genai.FinishReasonMaxTokens

	text, err := extractText(context.Background(), testLogger(), resp)
	require.NoError(t, err)
	assert.Equal(t, "cut off mid senten", text)
}

func TestExtractTextNoTextPart(t *testing.T) {
	tests := []struct {
		name string
		resp *genai.GenerateContentResponse
	}{
		{
			name: "no candidates",
			resp: &genai.GenerateContentResponse{},
		},
		{
			name: "candidate without content",
			resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{FinishReason: genai.FinishReasonStop}},
			},
		},
		{
			name: "content without parts",
			resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{Content: &genai.Content{}}},
			},
		},
		{
			name: "parts without text",
			resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{
					{Content: &genai.Content{Parts: []*genai.Part{{}}}},
				},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := extractText(context.Background(), testLogger(), tc.resp)
			assert.ErrorIs(t, err, generation.ErrNoTextPart)
		})
	}
}

func TestNormalizePostTextTrims(t *testing.T) {
	resp := textResponse("\n  A crisp morning on the trail.  \n")

	text, err := normalizePostText(context.Background(), testLogger(), resp)
	require.NoError(t, err)
	assert.Equal(t, "A crisp morning on the trail.", text)
}

func TestNormalizeCommentListFencedArray(t *testing.T) {
	resp := textResponse("```json\n[\"nice!\", \"love it\", \"great news\"]\n```")

	comments, err := normalizeCommentList(context.Background(), testLogger(), resp, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"nice!", "love it", "great news"}, comments)
}

func TestNormalizeCommentListPlainArray(t *testing.T) {
	resp := textResponse(`["one", "two"]`)

	comments, err := normalizeCommentList(context.Background(), testLogger(), resp, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, comments)
}

func TestNormalizeCommentListCountMismatchIsSuccess(t *testing.T) {
	resp := textResponse(`["only", "three", "comments"]`)

	comments, err := normalizeCommentList(context.Background(), testLogger(), resp, 15)
	require.NoError(t, err, "a shorter-than-requested list is accepted as success")
	assert.Len(t, comments, 3)
}

func TestNormalizeCommentListMalformedPayloads(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"not JSON at all", "here are some comments: nice, cool"},
		{"JSON object instead of array", `{"comments": ["a"]}`},
		{"array with non-string element", `["a", 2, "c"]`},
		{"top-level string", `"just one comment"`},
		{"JSON null", `null`},
		{"truncated array", `["a", "b"`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp := textResponse(tc.text)
			comments, err := normalizeCommentList(context.Background(), testLogger(), resp, 10)
			assert.ErrorIs(t, err, generation.ErrMalformedPayload)
			assert.Nil(t, comments, "malformed payloads must never yield a partial success")
		})
	}
}

func TestNormalizationIsDeterministic(t *testing.T) {
	resp := textResponse("```json\n[\"a\", \"b\"]\n```")

	first, err1 := normalizeCommentList(context.Background(), testLogger(), resp, 12)
	second, err2 := normalizeCommentList(context.Background(), testLogger(), resp, 12)

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, first, second, "identical input must yield identical outcome")
}
