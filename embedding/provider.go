// Package embedding turns normalized question text into dense unit-norm vectors.
package embedding

//go:generate go run go.uber.org/mock/mockgen -source=provider.go -destination=../mocks/mock_provider.go -package=mocks

import (
	"context"
	"fmt"
	"log/slog"
	"question-lab/errors"
	"time"
)

// Provider embeds normalized text. Implementations must be safe for concurrent use
// and return vectors of L2 norm 1 (or the zero vector for featureless text).
type Provider interface {
	Name() string
	Dimension() int
	Embed(ctx context.Context, normalizedText string) ([]float64, error)
}

const (
	KindHash   = "hash"
	KindOpenAI = "openai"
)

type Config struct {
	Kind      string
	Dimension int
	BaseURL   string
	Model     string
	APIKey    string
	Rate      float64
	Timeout   time.Duration
}

// New selects the provider named by cfg.Kind.
func New(log *slog.Logger, cfg Config) (Provider, error) {
	switch cfg.Kind {
	case "", KindHash:
		return NewHashEmbedder(cfg.Dimension), nil
	case KindOpenAI:
		return NewOpenAIClient(log, OpenAIConfig{
			BaseURL: cfg.BaseURL,
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			Rate:    cfg.Rate,
			Timeout: cfg.Timeout,
		})
	default:
		return nil, fmt.Errorf("%w: unknown embedder %q", errors.ErrModelLoad, cfg.Kind)
	}
}
