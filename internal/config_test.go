package internal

import (
	"testing"
	"time"

	"github.com/Netflix/go-env"
	"github.com/stretchr/testify/require"
)

func TestConfig_Defaults(t *testing.T) {
	req := require.New(t)
	t.Setenv("BADGER_FILEPATH", "/tmp/badger")
	t.Setenv("SQLITE_FILEPATH", "/tmp/report.db")
	t.Setenv("BLUGE_FILEPATH", "/tmp/bluge")
	t.Setenv("ALLOW_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("LIMIT_QUESTIONS", "100")

	var config Config
	_, err := env.UnmarshalFromEnviron(&config)
	req.NoError(err)

	req.Equal("question-lab", config.AppName)
	req.Equal(8080, config.Port)
	req.Equal("hash", config.Embedder)
	req.Equal(30*time.Second, config.RequestTimeout)
	req.Equal([]string{"https://a.example", "https://b.example"}, config.Origins())
	req.NotNil(config.LimitQuestions)
	req.Equal(100, *config.LimitQuestions)

	th := config.Thresholds()
	req.Equal(0.45, th.Semantic)
	req.Equal(4, th.Hamming)
	req.Equal(0.60, th.Jaccard)
	req.Equal(14, th.BucketBits)
	req.Equal(2, th.ShingleSize)
}

func TestCharacterRune(t *testing.T) {
	req := require.New(t)

	r, err := CharacterRune("#")
	req.NoError(err)
	req.Equal('#', r)

	_, err = CharacterRune("##")
	req.Error(err)
	_, err = CharacterRune("")
	req.Error(err)
}
