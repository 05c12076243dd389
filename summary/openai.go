package summary

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/abadojack/whatlanggo"
	"github.com/samber/lo"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	defaultModel   = "gpt-4o-mini"
	temperature    = 0.2
	maxTokens      = 240
	fallbackLang   = "English"
)

type OpenAIConfig struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// OpenAI summarizes through an OpenAI compatible chat completions endpoint.
type OpenAI struct {
	log     *slog.Logger
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
}

// New returns Noop when no api key is configured.
func New(log *slog.Logger, cfg OpenAIConfig) Summarizer {
	if cfg.APIKey == "" {
		log.Warn("No language model api key, summaries are disabled")
		return Noop{}
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &OpenAI{
		log:     log,
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (o *OpenAI) Summarize(ctx context.Context, questions []string, maxLines int) (*string, error) {
	questions = lo.Filter(questions, func(q string, _ int) bool { return strings.TrimSpace(q) != "" })
	if len(questions) == 0 {
		return nil, nil
	}
	lang := detectLanguage(questions)

	body, err := json.Marshal(chatRequest{
		Model: o.model,
		Messages: []chatMessage{
			{Role: "system", Content: fmt.Sprintf("You assist a presenter. Answer in %s, clearly and concisely.", lang)},
			{Role: "user", Content: buildPrompt(questions, maxLines, lang)},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.apiKey)

	resp, err := o.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("chat completion request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("chat completion answered %s", resp.Status)
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode chat completion: %w", err)
	}
	if len(out.Choices) == 0 {
		return nil, fmt.Errorf("chat completion has no choice")
	}
	o.log.Debug("Summary generated", "questions", len(questions), "lang", lang)
	return truncate(out.Choices[0].Message.Content, maxLines), nil
}

func buildPrompt(questions []string, maxLines int, lang string) string {
	var b strings.Builder
	b.WriteString("Here are the audience questions asked during a presentation.\n")
	fmt.Fprintf(&b, "Group overlapping questions and summarize only the key points in %s.\n", lang)
	fmt.Fprintf(&b, "Write at most %d short lines.\n\n", maxLines)
	for _, q := range questions {
		fmt.Fprintf(&b, "- %s\n", q)
	}
	b.WriteString("\n[Output format]\n")
	for i := 1; i <= maxLines; i++ {
		fmt.Fprintf(&b, "%d) ...\n", i)
	}
	return b.String()
}

func detectLanguage(questions []string) string {
	info := whatlanggo.Detect(strings.Join(questions, "\n"))
	if !info.IsReliable() {
		return fallbackLang
	}
	return info.Lang.String()
}
