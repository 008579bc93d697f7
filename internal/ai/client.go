// Package ai wraps the generative-AI text completion collaborator. The Ask
// contract is deliberately lossy: it never returns an error, converting every
// upstream failure into a fixed human-readable apology so callers can treat
// the result as opaque display text.
package ai

import "context"

// Apology is returned whenever the upstream AI service fails or is overloaded.
const Apology = "Sorry, AI suggestions are temporarily unavailable. Please try again in a few minutes."

// NotConfigured is returned by the placeholder client when no API key is set.
const NotConfigured = "AI suggestions are not enabled yet. Set AI_API_KEY to activate this feature."

// Client asks the AI collaborator for a completion. Implementations must not
// return errors through the text; they swap in a fixed apology instead.
type Client interface {
	Ask(ctx context.Context, prompt string) string
}

// Placeholder is the no-key implementation.
type Placeholder struct{}

// Ask always reports that AI is not configured.
func (Placeholder) Ask(ctx context.Context, prompt string) string {
	_ = ctx
	_ = prompt
	return NotConfigured
}
