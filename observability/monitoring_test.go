package observability

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestMonitoring_Counters(t *testing.T) {
	req := require.New(t)
	m := NewMonitoring(logs.GetLoggerFromLevel(slog.LevelDebug))

	m.IncrQuestionsIngested()
	m.IncrQuestionsIngested()
	m.AddQuestionsClustered(5)
	m.IncrReportsBuilt()
	m.IncrReportFailures()
	m.IncrSummaryFailures()

	s := m.Snapshot()
	req.Equal(uint64(2), s.QuestionsIngested)
	req.Equal(uint64(5), s.QuestionsClustered)
	req.Equal(uint64(1), s.ReportsBuilt)
	req.Equal(uint64(1), s.ReportFailures)
	req.Equal(uint64(1), s.SummaryFailures)
	req.Empty(s.UpdatedAt)
}

func TestMonitoring_Listen(t *testing.T) {
	req := require.New(t)
	m := NewMonitoring(logs.GetLoggerFromLevel(slog.LevelDebug))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	m.Listen(ctx, 10*time.Millisecond)

	s := m.Snapshot()
	req.NotEmpty(s.UpdatedAt)
	req.Positive(s.Goroutines)
}
