package gemini

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/postwright/postwright-api/internal/generation"
)

// Prompt templates for the two generation flows. The caller text is embedded
// verbatim; the surrounding instructions fix tone, length bounds, and the
// output format the normalizer expects.
var (
	commentPromptTemplate = template.Must(template.New("comments").Parse(
		`You write short social-media comments reacting to a post.

Post:
{{.Context}}

Write exactly {{.Count}} comments reacting to the post above. Keep each comment under 120 characters, vary the tone between casual, warm, and enthusiastic, and make every comment sound like a different person wrote it. Do not number the comments and do not address the post author by name.

Respond with a JSON array of strings and nothing else.`))

	postPromptTemplate = template.Must(template.New("post").Parse(
		`You write engaging social-media posts.

Theme:
{{.Theme}}

Write one post about the theme above, between two and four sentences long, in a friendly and upbeat tone. Do not use hashtags or emojis excessively.

Respond with the post text only, without quotation marks or any markdown formatting.`))
)

// buildCommentPrompt produces the instruction string for the comment-batch
// flow. It is a pure function of the caller text and the drawn count; the
// count embedded here is the one the caller logged and expects downstream.
func buildCommentPrompt(commentContext string, count int) (string, error) {
	trimmed := strings.TrimSpace(commentContext)
	if trimmed == "" {
		return "", generation.ErrEmptyInput
	}

	var buf bytes.Buffer
	data := commentPromptData{Context: trimmed, Count: count}
	if err := commentPromptTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute comment prompt template: %w", err)
	}
	return buf.String(), nil
}

// buildPostPrompt produces the instruction string for the post-content flow.
func buildPostPrompt(theme string) (string, error) {
	trimmed := strings.TrimSpace(theme)
	if trimmed == "" {
		return "", generation.ErrEmptyInput
	}

	var buf bytes.Buffer
	data := postPromptData{Theme: trimmed}
	if err := postPromptTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute post prompt template: %w", err)
	}
	return buf.String(), nil
}
