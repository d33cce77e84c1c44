package gemini

import "strings"

// fenceMarker is the markdown code-fence delimiter models wrap structured
// output in.
const fenceMarker = "```"

// stripCodeFence removes a single enclosing markdown code fence from s.
//
// The opening fence may carry a language tag on the same line ("```json").
// A missing closing fence is tolerated: the body then runs to the end of the
// text. Text that does not start with a fence is returned trimmed but
// otherwise unchanged, which makes the function idempotent on unwrapped
// input. Exactly one leading/trailing pair is stripped; fences nested inside
// the body are left alone.
func stripCodeFence(s string) string {
	body := strings.TrimSpace(s)
	if !strings.HasPrefix(body, fenceMarker) {
		return body
	}
	body = body[len(fenceMarker):]

	// The rest of the opening line is the optional language tag.
	if newline := strings.IndexByte(body, '\n'); newline >= 0 {
		body = body[newline+1:]
	} else {
		// Fence and payload share one line ("```[...]```").
		body = strings.TrimSpace(body)
		body = strings.TrimSuffix(body, fenceMarker)
		return strings.TrimSpace(body)
	}

	body = strings.TrimSpace(body)
	body = strings.TrimSuffix(body, fenceMarker)
	return strings.TrimSpace(body)
}
