package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"question-lab/errors"
	"question-lab/similarity"
	"strconv"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultBaseURL    = "https://api.openai.com/v1"
	defaultModel      = "text-embedding-3-small"
	defaultMaxRetries = 4

	// sent once to learn the dimension of a model missing from knownDimensions
	sizingInput = "dimension"
)

var knownDimensions = map[string]int{
	"text-embedding-3-small": 1536,
	"text-embedding-3-large": 3072,
	"text-embedding-ada-002": 1536,
}

type OpenAIConfig struct {
	BaseURL    string
	APIKey     string
	Model      string
	Rate       float64 // requests per second, 0 means unlimited
	Timeout    time.Duration
	MaxRetries int
	Dimension  int // optional, looked up from the model name when 0
}

// OpenAIClient calls an OpenAI compatible /embeddings endpoint.
type OpenAIClient struct {
	log        *slog.Logger
	baseURL    string
	apiKey     string
	model      string
	client     *http.Client
	limiter    *rate.Limiter
	maxRetries int
	dimension  atomic.Int64
	backoff    func(attempt int) time.Duration
}

func NewOpenAIClient(log *slog.Logger, cfg OpenAIConfig) (*OpenAIClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: missing embedding api key", errors.ErrModelLoad)
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
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = defaultMaxRetries
	}
	limit := rate.Inf
	if cfg.Rate > 0 {
		limit = rate.Limit(cfg.Rate)
	}
	if cfg.Dimension <= 0 {
		cfg.Dimension = knownDimensions[cfg.Model]
	}
	c := &OpenAIClient{
		log:        log,
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		client:     &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(limit, 1),
		maxRetries: cfg.MaxRetries,
		backoff:    retryDelay,
	}
	c.dimension.Store(int64(cfg.Dimension))
	return c, nil
}

func (c *OpenAIClient) Name() string { return KindOpenAI }

// Dimension comes from the config or the model name,
// otherwise it is known after the first successful call and 0 before.
func (c *OpenAIClient) Dimension() int { return int(c.dimension.Load()) }

type embeddingRequest struct {
	Input string `json:"input"`
	Model string `json:"model"`
}

type embeddingResponse struct {
	Data []struct {
		Embedding []float64 `json:"embedding"`
	} `json:"data"`
}

// Embed returns the L2 normalized embedding of normalizedText.
// Empty text never reaches the endpoint: it maps to the zero vector.
func (c *OpenAIClient) Embed(ctx context.Context, normalizedText string) ([]float64, error) {
	if normalizedText == "" {
		return c.zeroVector(ctx)
	}
	return c.embed(ctx, normalizedText)
}

func (c *OpenAIClient) zeroVector(ctx context.Context) ([]float64, error) {
	if dim := c.Dimension(); dim > 0 {
		return make([]float64, dim), nil
	}
	if _, err := c.embed(ctx, sizingInput); err != nil {
		return nil, err
	}
	return make([]float64, c.Dimension()), nil
}

func (c *OpenAIClient) embed(ctx context.Context, normalizedText string) ([]float64, error) {
	body, err := json.Marshal(embeddingRequest{Input: normalizedText, Model: c.model})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrEmbeddingFailure, err)
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: %v", errors.ErrEmbeddingFailure, err)
		}
		vec, wait, err := c.call(ctx, body)
		if err == nil {
			return vec, nil
		}
		lastErr = err
		if wait < 0 || attempt == c.maxRetries {
			break
		}
		if wait == 0 {
			wait = c.backoff(attempt)
		}
		c.log.Debug("Retrying embedding request", "attempt", attempt+1, "wait", wait, "error", err)
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %v", errors.ErrEmbeddingFailure, ctx.Err())
		case <-time.After(wait):
		}
	}
	return nil, fmt.Errorf("%w: %v", errors.ErrEmbeddingFailure, lastErr)
}

// call performs one request. A negative wait means the failure is not retryable,
// a zero wait asks for the default backoff.
func (c *OpenAIClient) call(ctx context.Context, body []byte) ([]float64, time.Duration, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/embeddings", bytes.NewReader(body))
	if err != nil {
		return nil, -1, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, -1, err
		}
		return nil, 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, retryAfter(resp.Header.Get("Retry-After")), fmt.Errorf("embeddings endpoint answered %s", resp.Status)
	}
	if resp.StatusCode >= 300 {
		return nil, -1, fmt.Errorf("embeddings endpoint answered %s", resp.Status)
	}

	var out embeddingResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, -1, fmt.Errorf("decode embeddings response: %w", err)
	}
	if len(out.Data) == 0 || len(out.Data[0].Embedding) == 0 {
		return nil, -1, fmt.Errorf("empty embedding in response")
	}
	vec := out.Data[0].Embedding
	for _, x := range vec {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, -1, fmt.Errorf("non finite embedding component")
		}
	}
	if dim := c.dimension.Load(); dim != 0 && int(dim) != len(vec) {
		return nil, -1, fmt.Errorf("embedding dimension changed from %d to %d", dim, len(vec))
	}
	c.dimension.CompareAndSwap(0, int64(len(vec)))
	similarity.NormalizeL2(vec)
	return vec, 0, nil
}

func retryAfter(header string) time.Duration {
	if header == "" {
		return 0
	}
	secs, err := strconv.Atoi(header)
	if err != nil || secs < 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}

// retryDelay doubles from 500ms and is capped at 8s.
func retryDelay(attempt int) time.Duration {
	d := 500 * time.Millisecond << attempt
	if d > 8*time.Second || d <= 0 {
		return 8 * time.Second
	}
	return d
}
