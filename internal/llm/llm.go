package llm

import (
	"context"

	"coverletter-backend/internal/shared/telemetry"
)

// SystemPrompt is sent ahead of every completion request.
const SystemPrompt = "You are an AI assistant specializing in crafting personalized recruiter messages and cover letters. " +
	"Generate both based on the provided resume and job description."

// CoverLetter is the structured result of a completion.
type CoverLetter struct {
	RecruiterMessage string `json:"recruiter_message"`
	CoverLetter      string `json:"cover_letter"`
}

// Completer produces a CoverLetter for a prompt. Implementations make exactly one
// attempt and report every failure as *CompletionError.
type Completer interface {
	Complete(ctx context.Context, prompt string) (CoverLetter, error)
}

// CompleterFunc adapts a function to Completer.
type CompleterFunc func(ctx context.Context, prompt string) (CoverLetter, error)

// Complete calls f.
func (f CompleterFunc) Complete(ctx context.Context, prompt string) (CoverLetter, error) {
	return f(ctx, prompt)
}

// Usage is the token accounting a provider reports for one completion.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// LogUsage records one completion's token accounting. A nil usage logs the model only.
func LogUsage(provider, model string, u *Usage) {
	fields := map[string]any{
		"provider": provider,
		"model":    model,
	}
	if u != nil {
		fields["prompt_tokens"] = u.PromptTokens
		fields["completion_tokens"] = u.CompletionTokens
		fields["total_tokens"] = u.TotalTokens
	}
	telemetry.Info("llm.response", fields)
}
