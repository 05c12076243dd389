package repositories

import (
	"context"
	"log/slog"
	"path/filepath"
	"question-lab/domain"
	"question-lab/errors"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func newReportRepository(t *testing.T) ReportRepository {
	t.Helper()
	db, err := OpenReportDB(filepath.Join(t.TempDir(), "report.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	repo := NewReportRepository(db, logs.GetLoggerFromLevel(slog.LevelDebug))
	repo.now = func() time.Time { return time.Unix(1_700_000_000, 0) }
	return repo
}

func TestReportRepository_Top3(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repo := newReportRepository(t)

	_, err := repo.GetReport(ctx, "room-1")
	req.ErrorIs(err, errors.ErrNoQuestions)

	// A room without question is marked with a null top 3
	req.NoError(repo.UpsertTop3Null(ctx, "room-1"))
	stored, err := repo.GetReport(ctx, "room-1")
	req.NoError(err)
	req.Nil(stored.Top3)
	req.Nil(stored.PopularQuestion)
	req.Equal(time.Unix(1_700_000_000, 0).UTC(), stored.UpdatedAt)

	// Then representatives replace the marker
	req.NoError(repo.UpsertTop3(ctx, "room-1", []domain.TopQuestionItem{
		{Representative: "Is this recorded?", Count: 3},
		{Representative: "", Count: 2},
		{Representative: "녹화되나요?", Count: 1},
	}))
	stored, err = repo.GetReport(ctx, "room-1")
	req.NoError(err)
	req.Equal([]string{"Is this recorded?", "녹화되나요?"}, stored.Top3)
}

func TestReportRepository_PopularQuestion(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repo := newReportRepository(t)

	req.NoError(repo.UpsertTop3(ctx, "room-1", []domain.TopQuestionItem{{Representative: "Slides?"}}))
	report := domain.TopSlideReport{
		RoomID:         "room-1",
		Slide:          4,
		TotalQuestions: 1,
		Questions:      []domain.SlideQuestion{{ID: "q1", Slide: 4, Content: "Slides?", Ts: 10}},
		Summary:        lo.ToPtr("1) Slides"),
	}
	req.NoError(repo.UpdatePopularQuestion(ctx, report))

	stored, err := repo.GetReport(ctx, "room-1")
	req.NoError(err)
	// Both columns survive each other's upsert
	req.Equal([]string{"Slides?"}, stored.Top3)
	req.Equal(&PopularQuestion{
		Slide:     4,
		Questions: report.Questions,
		Summary:   lo.ToPtr("1) Slides"),
	}, stored.PopularQuestion)
}
