package embedding

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"question-lab/errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, url string, maxRetries int) *OpenAIClient {
	t.Helper()
	c, err := NewOpenAIClient(logs.GetLoggerFromLevel(slog.LevelDebug), OpenAIConfig{
		BaseURL:    url,
		APIKey:     "secret",
		Model:      "test-model",
		MaxRetries: maxRetries,
	})
	require.NoError(t, err)
	c.backoff = func(int) time.Duration { return 0 }
	return c
}

func TestOpenAIClient_Embed(t *testing.T) {
	req := require.New(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req.Equal("/embeddings", r.URL.Path)
		req.Equal("Bearer secret", r.Header.Get("Authorization"))
		var body embeddingRequest
		req.NoError(json.NewDecoder(r.Body).Decode(&body))
		req.Equal("test-model", body.Model)
		req.Equal("is this recorded", body.Input)
		_, _ = w.Write([]byte(`{"data":[{"embedding":[3,4]}]}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, 1)
	req.Equal(0, c.Dimension())

	vec, err := c.Embed(context.Background(), "is this recorded")
	req.NoError(err)
	req.InDeltaSlice([]float64{0.6, 0.8}, vec, 1e-9)
	req.Equal(2, c.Dimension())
}

func TestOpenAIClient_RetriesServerErrors(t *testing.T) {
	req := require.New(t)
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"data":[{"embedding":[1,0]}]}`))
	}))
	defer srv.Close()

	vec, err := newTestClient(t, srv.URL, 3).Embed(context.Background(), "hello")
	req.NoError(err)
	req.Equal([]float64{1, 0}, vec)
	req.Equal(int32(3), calls.Load())
}

func TestOpenAIClient_Failures(t *testing.T) {
	tests := []struct {
		description   string
		status        int
		payload       string
		maxRetries    int
		expectedCalls int32
	}{
		{"Client error is not retried", http.StatusBadRequest, "", 3, 1},
		{"Retries are exhausted", http.StatusInternalServerError, "", 2, 3},
		{"Empty embedding", http.StatusOK, `{"data":[]}`, 2, 1},
		{"Malformed payload", http.StatusOK, `{"data":`, 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			req := require.New(t)
			var calls atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.payload))
			}))
			defer srv.Close()

			_, err := newTestClient(t, srv.URL, tt.maxRetries).Embed(context.Background(), "hello")
			req.ErrorIs(err, errors.ErrEmbeddingFailure)
			req.Equal(tt.expectedCalls, calls.Load())
		})
	}
}

func TestOpenAIClient_CancelledContext(t *testing.T) {
	req := require.New(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newTestClient(t, srv.URL, 3).Embed(ctx, "hello")
	req.ErrorIs(err, errors.ErrEmbeddingFailure)
}

func TestNew(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	p, err := New(log, Config{Dimension: 32})
	req.NoError(err)
	req.Equal(KindHash, p.Name())
	req.Equal(32, p.Dimension())

	_, err = New(log, Config{Kind: KindOpenAI})
	req.ErrorIs(err, errors.ErrModelLoad)

	p, err = New(log, Config{Kind: KindOpenAI, APIKey: "k"})
	req.NoError(err)
	req.Equal(KindOpenAI, p.Name())
	req.Equal(1536, p.Dimension())

	_, err = New(log, Config{Kind: "word2vec"})
	req.ErrorIs(err, errors.ErrModelLoad)
}

func TestOpenAIClient_EmptyText(t *testing.T) {
	tests := []struct {
		description   string
		dimension     int
		expectedDim   int
		expectedCalls int32
	}{
		{"Known dimension skips the endpoint", 3, 3, 0},
		{"Unknown dimension is learned from one sizing call", 0, 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			req := require.New(t)
			var calls atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				var body embeddingRequest
				_ = json.NewDecoder(r.Body).Decode(&body)
				if body.Input == "" {
					w.WriteHeader(http.StatusBadRequest)
					return
				}
				_, _ = w.Write([]byte(`{"data":[{"embedding":[3,4]}]}`))
			}))
			defer srv.Close()

			c := newTestClient(t, srv.URL, 1)
			c.dimension.Store(int64(tt.dimension))

			vec, err := c.Embed(context.Background(), "")
			req.NoError(err)
			req.Equal(make([]float64, tt.expectedDim), vec)

			again, err := c.Embed(context.Background(), "")
			req.NoError(err)
			req.Len(again, tt.expectedDim)
			req.Equal(tt.expectedCalls, calls.Load())
		})
	}
}
