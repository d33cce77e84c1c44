package gemini

import "google.golang.org/genai"

// GenerationPolicy fixes the sampling parameters for one generation flow.
// Policies are built once from configuration and never mutated afterwards.
type GenerationPolicy struct {
	Temperature     float32
	TopP            float32
	MaxOutputTokens int32
}

// commentPromptData is the data passed to the comment prompt template.
type commentPromptData struct {
	Context string
	Count   int
}

// postPromptData is the data passed to the post prompt template.
type postPromptData struct {
	Theme string
}

// Bounds of the per-request comment count, drawn uniformly inclusive.
const (
	minCommentCount = 10
	maxCommentCount = 25
)

// safetySettings returns the fixed safety-threshold table applied to every
// generation call: medium-and-above severity blocks, identical for both
// flows.
func safetySettings() []*genai.SafetySetting {
	categories := []genai.HarmCategory{
		genai.HarmCategoryHarassment,
		genai.HarmCategoryHateSpeech,
		genai.HarmCategorySexuallyExplicit,
		genai.HarmCategoryDangerousContent,
	}

	settings := make([]*genai.SafetySetting, 0, len(categories))
	for _, category := range categories {
		settings = append(settings, &genai.SafetySetting{
			Category:  category,
			Threshold: genai.HarmBlockThresholdBlockMediumAndAbove,
		})
	}
	return settings
}
