package internal

import (
	"fmt"
	"question-lab/clustering"
	"question-lab/embedding"
	"question-lab/infrastructure/http/server"
	"question-lab/summary"
	"strings"
	"time"
)

type Config struct {
	AppName  string `env:"APP_NAME,default=question-lab"`
	Host     string `env:"HOST,default=0.0.0.0"`
	Port     int    `env:"PORT,default=8080"`
	GRPCPort int    `env:"GRPC_PORT,default=9090"`
	LogLevel string `env:"LOG_LEVEL,default=INFO"`

	BadgerFilepath string `env:"BADGER_FILEPATH,required=true"`
	SqliteFilepath string `env:"SQLITE_FILEPATH,required=true"`
	BlugeFilepath  string `env:"BLUGE_FILEPATH,required=true"`

	APIKey       string  `env:"API_KEY"`
	JWTSecret    string  `env:"JWT_SECRET"`
	AllowOrigins string  `env:"ALLOW_ORIGINS"`
	RequestRate  float64 `env:"REQUEST_RATE"`

	Embedder         string        `env:"EMBEDDER,default=hash"`
	EmbeddingDim     int           `env:"EMBEDDING_DIM,default=256"`
	EmbeddingBaseURL string        `env:"EMBEDDING_BASE_URL"`
	EmbeddingModel   string        `env:"EMBEDDING_MODEL"`
	EmbeddingWorkers int           `env:"EMBEDDING_WORKERS,default=4"`
	EmbeddingRate    float64       `env:"EMBEDDING_RATE"`
	OpenAIAPIKey     string        `env:"OPENAI_API_KEY"`
	OpenAIModel      string        `env:"OPENAI_MODEL"`
	RequestTimeout   time.Duration `env:"REQUEST_TIMEOUT,default=30s"`
	SummaryTimeout   time.Duration `env:"SUMMARY_TIMEOUT,default=10s"`
	SummaryMaxLines  int           `env:"SUMMARY_MAX_LINES,default=3"`

	// Clustering thresholds, see clustering.DefaultThresholds.
	SemanticThreshold float64 `env:"SEMANTIC_THRESHOLD,default=0.45"`
	HammingThreshold  int     `env:"HAMMING_THRESHOLD,default=4"`
	JaccardThreshold  float64 `env:"JACCARD_THRESHOLD,default=0.60"`
	BucketBits        int     `env:"BUCKET_BITS,default=14"`
	BucketScoped      bool    `env:"BUCKET_SCOPED,default=false"`

	ModerationWordsFile string `env:"MODERATION_WORDS_FILE"`
	CharReplacement     string `env:"MODERATION_CHARACTER_REPLACEMENT,default=*"`
	MaxContentLength    int    `env:"MAX_CONTENT_LENGTH,default=500"`
	// Caps room listings, Top3 input included. Slide reads stay uncapped.
	LimitQuestions      *int   `env:"LIMIT_QUESTIONS"`

	MetricInterval  time.Duration `env:"METRIC_INTERVAL,default=5s"`
	RestartInterval time.Duration `env:"RESTART_INTERVAL,default=1s"`
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"MODERATION_CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}

// Origins splits ALLOW_ORIGINS on commas.
func (c Config) Origins() []string {
	var origins []string
	for _, o := range strings.Split(c.AllowOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func (c Config) Thresholds() clustering.Thresholds {
	th := clustering.DefaultThresholds()
	th.Semantic = c.SemanticThreshold
	th.Hamming = c.HammingThreshold
	th.Jaccard = c.JaccardThreshold
	th.BucketBits = c.BucketBits
	th.BucketScoped = c.BucketScoped
	return th
}

func (c Config) Embedding() embedding.Config {
	return embedding.Config{
		Kind:      c.Embedder,
		Dimension: c.EmbeddingDim,
		BaseURL:   c.EmbeddingBaseURL,
		Model:     c.EmbeddingModel,
		APIKey:    c.OpenAIAPIKey,
		Rate:      c.EmbeddingRate,
		Timeout:   c.RequestTimeout,
	}
}

func (c Config) Summary() summary.OpenAIConfig {
	return summary.OpenAIConfig{
		APIKey:  c.OpenAIAPIKey,
		Model:   c.OpenAIModel,
		Timeout: c.SummaryTimeout,
	}
}

func (c Config) HTTP() server.Config {
	return server.Config{
		AppName:        c.AppName,
		Host:           c.Host,
		Port:           c.Port,
		AllowOrigins:   c.Origins(),
		RequestTimeout: c.RequestTimeout,
		RequestRate:    c.RequestRate,
	}
}
