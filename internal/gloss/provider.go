// Package gloss generates optional natural-language paraphrases of
// composed events via an LLM. Glosses are presentational only: they
// never feed back into composition or its confidence scores.
package gloss

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/ppiankov/semflow/internal/model"
)

// Provider defines the interface for gloss backends
type Provider interface {
	// Name returns the provider name
	Name() string

	// Paraphrase generates a one-sentence gloss of the composed events
	Paraphrase(ctx context.Context, req Request) (*Response, error)

	// IsAvailable checks if the provider is configured and reachable
	IsAvailable(ctx context.Context) bool
}

// Request contains the input for gloss generation
type Request struct {
	// Events is the composition result to paraphrase
	Events *model.ComposedEvents

	// Prompt is an optional custom prompt (if empty, use default)
	Prompt string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// Response contains the generated gloss
type Response struct {
	// Gloss is the paraphrase text
	Gloss string

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// Config holds gloss provider configuration
type Config struct {
	// Provider name: "openai", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for the provider
	APIKey string

	// BaseURL for custom endpoints
	BaseURL string

	// Timeout for API requests, seconds
	Timeout int

	// MaxTokens for response generation
	MaxTokens int
}

// NewProvider creates a gloss provider from configuration. An empty
// provider name disables glossing and returns nil, nil.
func NewProvider(config Config) (Provider, error) {
	switch strings.ToLower(config.Provider) {
	case "openai":
		return NewOpenAIProvider(config)
	case "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown gloss provider: %s (supported: openai)", config.Provider)
	}
}

// ConfigFromModel converts model.LLMConfig to gloss.Config
func ConfigFromModel(mc model.LLMConfig) Config {
	return Config{
		Provider:  mc.Provider,
		Model:     mc.Model,
		APIKey:    mc.APIKey,
		BaseURL:   mc.BaseURL,
		Timeout:   mc.Timeout,
		MaxTokens: mc.MaxTokens,
	}
}

// BuildPrompt renders the default paraphrase prompt. The event
// structure is spelled out so the model restates it rather than
// re-analyzing the sentence.
func BuildPrompt(events *model.ComposedEvents) string {
	var b strings.Builder
	b.WriteString("Restate the following event analysis as one plain English sentence per event.\n")
	b.WriteString("Only use the participants listed; do not invent entities or details.\n\n")

	for _, e := range events.Events {
		fmt.Fprintf(&b, "Event %d: predicate %q, operator %s, aspect %s, voice %s\n",
			e.ID, e.Event.Predicate.Lemma, e.Event.LittleV, e.Event.Aspect, e.Event.Voice)

		roles := make([]string, 0, len(e.Event.Participants))
		for role := range e.Event.Participants {
			roles = append(roles, string(role))
		}
		sort.Strings(roles)
		for _, role := range roles {
			ent := e.Event.Participants[model.ThetaRole(role)]
			fmt.Fprintf(&b, "  %s: %s\n", role, ent.Text)
		}
		for _, mod := range e.Event.Modifiers {
			fmt.Fprintf(&b, "  %s (modifier): %s\n", mod.Role, mod.Text)
		}
	}

	return b.String()
}
