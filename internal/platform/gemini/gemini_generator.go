package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"

	"github.com/postwright/postwright-api/internal/config"
	"github.com/postwright/postwright-api/internal/generation"
	"google.golang.org/genai"
)

// generateFunc is the signature of one backend generation call. It exists so
// tests can substitute a fake backend; production binds it to
// client.Models.GenerateContent.
type generateFunc func(
	ctx context.Context,
	model string,
	contents []*genai.Content,
	config *genai.GenerateContentConfig,
) (*genai.GenerateContentResponse, error)

// GeminiGenerator implements the generation.Generator interface using
// Google's Gemini API. It is constructed once at startup and is safe for
// concurrent use: all fields are read-only after construction.
type GeminiGenerator struct {
	// logger is used for structured logging
	logger *slog.Logger

	// model is the name of the Gemini model to use
	model string

	// commentPolicy and postPolicy fix the sampling parameters per flow
	commentPolicy GenerationPolicy
	postPolicy    GenerationPolicy

	// safety is the fixed safety-threshold table sent with every call
	safety []*genai.SafetySetting

	// generate performs one backend call; injectable for tests
	generate generateFunc

	// pickCount draws the comment target count; injectable for tests
	pickCount func(lo, hi int) int
}

// NewGeminiGenerator creates a new GeminiGenerator with the provided
// dependencies. It validates the configuration and constructs the Gemini
// client; either failing is fatal to the caller.
func NewGeminiGenerator(
	ctx context.Context,
	logger *slog.Logger,
	cfg config.LLMConfig,
) (*GeminiGenerator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, err)
	}

	return &GeminiGenerator{
		logger: logger,
		model:  cfg.ModelName,
		commentPolicy: GenerationPolicy{
			Temperature:     cfg.CommentTemperature,
			TopP:            cfg.CommentTopP,
			MaxOutputTokens: cfg.CommentMaxOutputTokens,
		},
		postPolicy: GenerationPolicy{
			Temperature:     cfg.PostTemperature,
			TopP:            cfg.PostTopP,
			MaxOutputTokens: cfg.PostMaxOutputTokens,
		},
		safety:    safetySettings(),
		generate:  client.Models.GenerateContent,
		pickCount: defaultPickCount,
	}, nil
}

// defaultPickCount draws an integer uniformly from [lo, hi] inclusive.
func defaultPickCount(lo, hi int) int {
	return lo + rand.Intn(hi-lo+1)
}

// invoke performs exactly one backend call with the given prompt and policy.
// Retries are a caller policy decision and are deliberately not implemented
// here; a client or network failure surfaces as ErrTransport.
func (g *GeminiGenerator) invoke(
	ctx context.Context,
	prompt string,
	policy GenerationPolicy,
) (*genai.GenerateContentResponse, error) {
	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(policy.Temperature),
		TopP:            genai.Ptr(policy.TopP),
		MaxOutputTokens: policy.MaxOutputTokens,
		SafetySettings:  g.safety,
	}

	resp, err := g.generate(ctx, g.model, genai.Text(prompt), cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", generation.ErrTransport, err)
	}
	return resp, nil
}

// GenerateComments builds the comment-batch prompt with a freshly drawn
// target count, calls the backend once, and normalizes the response into an
// ordered comment list.
func (g *GeminiGenerator) GenerateComments(
	ctx context.Context,
	commentContext string,
) ([]string, error) {
	if strings.TrimSpace(commentContext) == "" {
		return nil, generation.ErrEmptyInput
	}

	count := g.pickCount(minCommentCount, maxCommentCount)
	prompt, err := buildCommentPrompt(commentContext, count)
	if err != nil {
		return nil, err
	}

	g.logger.InfoContext(ctx, "generating comment batch",
		"context_length", len(commentContext),
		"requested_count", count)

	resp, err := g.invoke(ctx, prompt, g.commentPolicy)
	if err != nil {
		return nil, err
	}

	comments, err := normalizeCommentList(ctx, g.logger, resp, count)
	if err != nil {
		return nil, err
	}

	g.logger.InfoContext(ctx, "comment batch generated",
		"requested_count", count,
		"received_count", len(comments))
	return comments, nil
}

// GeneratePostContent builds the post prompt, calls the backend once, and
// normalizes the response into a single trimmed string.
func (g *GeminiGenerator) GeneratePostContent(
	ctx context.Context,
	theme string,
) (string, error) {
	if strings.TrimSpace(theme) == "" {
		return "", generation.ErrEmptyInput
	}

	prompt, err := buildPostPrompt(theme)
	if err != nil {
		return "", err
	}

	g.logger.InfoContext(ctx, "generating post content",
		"theme_length", len(theme))

	resp, err := g.invoke(ctx, prompt, g.postPolicy)
	if err != nil {
		return "", err
	}

	text, err := normalizePostText(ctx, g.logger, resp)
	if err != nil {
		return "", err
	}

	g.logger.InfoContext(ctx, "post content generated",
		"post_length", len(text))
	return text, nil
}

// Compile-time check that GeminiGenerator satisfies generation.Generator.
var _ generation.Generator = (*GeminiGenerator)(nil)
