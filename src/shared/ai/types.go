package ai

import "context"

// Tool represents a tool capability (e.g., web_search) for providers that support it.
type Tool struct {
	Type string
}

// Options controls model behavior; zero fields fall back to client defaults.
type Options struct {
	Model               string
	Temperature         float64
	MaxCompletionTokens int
	SystemPrompt        string
}

// Citation is a URL annotation attached to a web-search-backed response.
type Citation struct {
	Title string
	URL   string
}

// Response carries the model output plus any web citations it produced.
type Response struct {
	Text      string
	Citations []Citation
}

// Client is a provider-agnostic interface for the LLM operations we need.
type Client interface {
	// AnswerQuestion runs a plain completion with a system prompt.
	AnswerQuestion(ctx context.Context, system string, question string, opts Options) (string, error)
	// Respond allows passing arbitrary input and optional tools for advanced flows.
	Respond(ctx context.Context, input string, tools []Tool, opts Options) (*Response, error)
}
