// Package summary condenses the questions of a slide into a few lines of text.
package summary

//go:generate go run go.uber.org/mock/mockgen -source=summarizer.go -destination=../mocks/mock_summarizer.go -package=mocks

import (
	"context"
	"strings"
)

// Summarizer returns nil when there is nothing to summarize.
type Summarizer interface {
	Summarize(ctx context.Context, questions []string, maxLines int) (*string, error)
}

// Noop is used when no language model is configured.
type Noop struct{}

func (Noop) Summarize(context.Context, []string, int) (*string, error) {
	return nil, nil
}

// truncate keeps the first maxLines non-empty lines, trimmed.
func truncate(text string, maxLines int) *string {
	var lines []string
	for _, l := range strings.Split(text, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	if len(lines) == 0 {
		return nil
	}
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	out := strings.Join(lines, "\n")
	return &out
}
