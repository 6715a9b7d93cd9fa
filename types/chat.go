package types

type ChatRequest struct {
	Message  string `json:"message"`
	MemberID string `json:"memberId,omitempty"`
}

// ChatResponse carries the final answer text. Media markup rides inside
// the text; videoHtml stays on the wire for the widget but is null unless a
// standalone video payload is ever split out again.
type ChatResponse struct {
	Text      string  `json:"text"`
	VideoHTML *string `json:"videoHtml"`
}

// CompletionRequest is one call against a completion provider. Light marks
// cheap classification calls that may run on a smaller model.
type CompletionRequest struct {
	System      string
	User        string
	Temperature float32
	MaxTokens   int
	Light       bool
}
