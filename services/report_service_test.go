package services_test

import (
	"context"
	"fmt"
	"log/slog"
	"question-lab/clustering"
	"question-lab/domain"
	"question-lab/embedding"
	"question-lab/errors"
	"question-lab/mocks"
	"question-lab/observability"
	"question-lab/services"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type reportFixture struct {
	questions  *mocks.MockIQuestionRepository
	reports    *mocks.MockIReportRepository
	summarizer *mocks.MockSummarizer
	monitoring *observability.Monitoring
	service    *services.ReportService
}

func newReportFixture(t *testing.T) reportFixture {
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	f := reportFixture{
		questions:  mocks.NewMockIQuestionRepository(ctrl),
		reports:    mocks.NewMockIReportRepository(ctrl),
		summarizer: mocks.NewMockSummarizer(ctrl),
		monitoring: observability.NewMonitoring(log),
	}
	engine := clustering.NewEngine(log, embedding.NewHashEmbedder(128), clustering.DefaultThresholds(), 2)
	f.service = services.NewReportService(log, f.questions, f.reports, engine, f.summarizer, f.monitoring, time.Second, 3)
	return f
}

func TestReportService_Top3(t *testing.T) {
	req := require.New(t)
	f := newReportFixture(t)
	records := []domain.QuestionRecord{
		{ID: "q1", RoomID: "room-1", Slide: 1, Content: "Is this recorded?", Ts: 1},
		{ID: "q2", RoomID: "room-1", Slide: 2, Content: "is this recorded", Ts: 2},
		{ID: "q3", RoomID: "room-1", Slide: 3, Content: "Where can I find the slides?", Ts: 3},
	}

	f.questions.EXPECT().ListRoomQuestions(gomock.Any(), domain.RoomID("room-1"), nil).Return(records, nil)
	f.reports.EXPECT().UpsertTop3(gomock.Any(), domain.RoomID("room-1"), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.RoomID, items []domain.TopQuestionItem) error {
			req.Equal("Is this recorded?", items[0].Representative)
			return nil
		})

	report, err := f.service.Top3(context.Background(), "room-1")
	req.NoError(err)
	req.Equal(3, report.TotalQuestions)
	req.Equal(2, report.UniqueGroups)
	req.Len(report.Top3, 2)
	req.Equal([]string{"q1", "q2"}, report.Top3[0].QuestionIDs)
	req.Equal([]int{1, 2}, report.Top3[0].Slides)

	stats := f.monitoring.Snapshot()
	req.Equal(uint64(3), stats.QuestionsClustered)
	req.Equal(uint64(1), stats.ReportsBuilt)
}

func TestReportService_Top3_EmptyRoom(t *testing.T) {
	req := require.New(t)
	f := newReportFixture(t)

	f.questions.EXPECT().ListRoomQuestions(gomock.Any(), domain.RoomID("room-1"), nil).Return(nil, nil)
	f.reports.EXPECT().UpsertTop3Null(gomock.Any(), domain.RoomID("room-1")).Return(nil)

	report, err := f.service.Top3(context.Background(), "room-1")
	req.NoError(err)
	req.Equal(domain.TopQuestionReport{RoomID: "room-1", Top3: []domain.TopQuestionItem{}}, report)
}

func TestReportService_Top3_Failures(t *testing.T) {
	t.Run("Invalid room", func(t *testing.T) {
		f := newReportFixture(t)
		_, err := f.service.Top3(context.Background(), "room/1")
		require.ErrorIs(t, err, errors.ErrInvalidRoomID)
	})

	t.Run("Store unavailable", func(t *testing.T) {
		f := newReportFixture(t)
		f.questions.EXPECT().ListRoomQuestions(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("%w: closed", errors.ErrStoreUnavailable))
		_, err := f.service.Top3(context.Background(), "room-1")
		require.ErrorIs(t, err, errors.ErrStoreUnavailable)
	})

	t.Run("Preprocessing failure persists nothing", func(t *testing.T) {
		f := newReportFixture(t)
		f.questions.EXPECT().ListRoomQuestions(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]domain.QuestionRecord{{ID: "q1", RoomID: "room-1", Content: "bad \xff"}}, nil)
		_, err := f.service.Top3(context.Background(), "room-1")
		require.ErrorIs(t, err, errors.ErrPreprocessingFailure)
		require.Equal(t, uint64(1), f.monitoring.Snapshot().ReportFailures)
	})
}

func TestReportService_TopSlide(t *testing.T) {
	req := require.New(t)
	f := newReportFixture(t)
	records := []domain.QuestionRecord{
		{ID: "b", RoomID: "room-1", Slide: 2, Content: "Second?", Ts: 20},
		{ID: "a", RoomID: "room-1", Slide: 2, Content: "First?", Ts: 10},
	}

	// Slides 2 and 5 are tied: the lowest wins
	f.questions.EXPECT().SlideCounts(gomock.Any(), domain.RoomID("room-1")).Return(map[int]int{5: 2, 2: 2, 1: 1}, nil)
	f.questions.EXPECT().ListSlideQuestions(gomock.Any(), domain.RoomID("room-1"), 2, true).Return(records, nil)
	f.summarizer.EXPECT().Summarize(gomock.Any(), []string{"Second?", "First?"}, 3).Return(lo.ToPtr("1) Two questions"), nil)
	f.reports.EXPECT().UpdatePopularQuestion(gomock.Any(), gomock.Any()).Return(nil)

	report, err := f.service.TopSlide(context.Background(), "room-1", true)
	req.NoError(err)
	req.Equal(domain.TopSlideReport{
		RoomID:         "room-1",
		Slide:          2,
		TotalQuestions: 2,
		Questions: []domain.SlideQuestion{
			{ID: "b", Slide: 2, Content: "Second?", Ts: 20},
			{ID: "a", Slide: 2, Content: "First?", Ts: 10},
		},
		Summary: lo.ToPtr("1) Two questions"),
	}, report)
}

func TestReportService_TopSlide_SummaryFailureIsTolerated(t *testing.T) {
	req := require.New(t)
	f := newReportFixture(t)

	f.questions.EXPECT().SlideCounts(gomock.Any(), gomock.Any()).Return(map[int]int{1: 1}, nil)
	f.questions.EXPECT().ListSlideQuestions(gomock.Any(), gomock.Any(), 1, false).
		Return([]domain.QuestionRecord{{ID: "a", RoomID: "room-1", Slide: 1, Content: "Why?", Ts: 1}}, nil)
	f.summarizer.EXPECT().Summarize(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("timeout"))
	f.reports.EXPECT().UpdatePopularQuestion(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r domain.TopSlideReport) error {
			req.Nil(r.Summary)
			return nil
		})

	report, err := f.service.TopSlide(context.Background(), "room-1", false)
	req.NoError(err)
	req.Nil(report.Summary)
	req.Equal(uint64(1), f.monitoring.Snapshot().SummaryFailures)
}

func TestReportService_TopSlide_EmptyRoom(t *testing.T) {
	f := newReportFixture(t)
	f.questions.EXPECT().SlideCounts(gomock.Any(), gomock.Any()).Return(map[int]int{}, nil)

	_, err := f.service.TopSlide(context.Background(), "room-1", false)
	require.ErrorIs(t, err, errors.ErrNoQuestions)
}
