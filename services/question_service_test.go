package services_test

import (
	"context"
	"fmt"
	"log/slog"
	"question-lab/domain"
	"question-lab/domain/search"
	"question-lab/errors"
	"question-lab/mocks"
	"question-lab/moderation"
	"question-lab/observability"
	"question-lab/repositories"
	"question-lab/services"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type questionFixture struct {
	questions  *mocks.MockIQuestionRepository
	index      *mocks.MockIQuestionIndex
	sink       *mocks.MockQuestionSink
	monitoring *observability.Monitoring
	service    *services.QuestionService
}

func newQuestionFixture(t *testing.T, moderator *moderation.Moderator) questionFixture {
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	f := questionFixture{
		questions:  mocks.NewMockIQuestionRepository(ctrl),
		index:      mocks.NewMockIQuestionIndex(ctrl),
		sink:       mocks.NewMockQuestionSink(ctrl),
		monitoring: observability.NewMonitoring(log),
	}
	f.service = services.NewQuestionService(log, f.questions, f.index, f.sink, moderator, f.monitoring, 20)
	return f
}

func TestQuestionService_Ingest(t *testing.T) {
	req := require.New(t)
	f := newQuestionFixture(t, nil)

	f.sink.EXPECT().Consume(gomock.Any(), domain.QuestionRecord{
		ID:         "q1",
		RoomID:     "room-1",
		Slide:      3,
		AudienceID: lo.ToPtr("aud"),
		Content:    "Is this recorded?",
		Ts:         42,
	}).Return(nil)

	q, err := f.service.Ingest(context.Background(), "room-1", services.IngestRequest{
		ID:         "q1",
		Slide:      3,
		AudienceID: lo.ToPtr("aud"),
		Content:    "  Is this recorded?  ",
		Ts:         lo.ToPtr(int64(42)),
	})
	req.NoError(err)
	req.Equal("Is this recorded?", q.Content)
	req.Equal(uint64(1), f.monitoring.Snapshot().QuestionsIngested)
}

func TestQuestionService_Ingest_GeneratesIDAndTs(t *testing.T) {
	req := require.New(t)
	f := newQuestionFixture(t, nil)
	f.sink.EXPECT().Consume(gomock.Any(), gomock.Any()).Return(nil)

	q, err := f.service.Ingest(context.Background(), "room-1", services.IngestRequest{Slide: 1, Content: "Lunch?"})
	req.NoError(err)
	_, err = uuid.Parse(q.ID)
	req.NoError(err)
	req.Positive(q.Ts)
}

func TestQuestionService_Ingest_Moderation(t *testing.T) {
	req := require.New(t)
	moderator, err := moderation.NewModerator([]string{"badger"}, '*', logs.GetLoggerFromLevel(slog.LevelDebug))
	req.NoError(err)
	f := newQuestionFixture(t, moderator)
	f.sink.EXPECT().Consume(gomock.Any(), gomock.Any()).Return(nil)

	q, err := f.service.Ingest(context.Background(), "room-1", services.IngestRequest{Content: "Why a badger?"})
	req.NoError(err)
	req.Equal("Why a ******?", q.Content)
}

func TestQuestionService_Ingest_Invalid(t *testing.T) {
	tests := []struct {
		description string
		roomID      domain.RoomID
		request     services.IngestRequest
		expected    error
	}{
		{"Invalid room", "room 1", services.IngestRequest{Content: "ok"}, errors.ErrInvalidRoomID},
		{"Missing content", "room-1", services.IngestRequest{}, errors.ErrInvalidQuestion},
		{"Blank content", "room-1", services.IngestRequest{Content: "   "}, errors.ErrInvalidQuestion},
		{"Negative slide", "room-1", services.IngestRequest{Slide: -1, Content: "ok"}, errors.ErrInvalidQuestion},
		{"Negative ts", "room-1", services.IngestRequest{Content: "ok", Ts: lo.ToPtr(int64(-5))}, errors.ErrInvalidQuestion},
		{"Id with separator", "room-1", services.IngestRequest{ID: "a:b", Content: "ok"}, errors.ErrInvalidQuestion},
		{"Content too long", "room-1", services.IngestRequest{Content: strings.Repeat("a", 21)}, errors.ErrInvalidQuestion},
		{"Malformed text", "room-1", services.IngestRequest{Content: "bad \xff"}, errors.ErrInvalidQuestion},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			f := newQuestionFixture(t, nil)
			_, err := f.service.Ingest(context.Background(), tt.roomID, tt.request)
			require.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestQuestionService_Ingest_SinkFailure(t *testing.T) {
	req := require.New(t)
	f := newQuestionFixture(t, nil)
	f.sink.EXPECT().Consume(gomock.Any(), gomock.Any()).Return(fmt.Errorf("%w: closed", errors.ErrStoreUnavailable))

	_, err := f.service.Ingest(context.Background(), "room-1", services.IngestRequest{Content: "ok"})
	req.ErrorIs(err, errors.ErrStoreUnavailable)
	req.Zero(f.monitoring.Snapshot().QuestionsIngested)
}

func TestQuestionService_List(t *testing.T) {
	req := require.New(t)
	f := newQuestionFixture(t, nil)
	from := lo.ToPtr(int64(10))
	f.questions.EXPECT().ListRoomQuestions(gomock.Any(), domain.RoomID("room-1"), from).
		Return([]domain.QuestionRecord{{ID: "q2", Ts: 11}}, nil)

	questions, err := f.service.List(context.Background(), "room-1", from)
	req.NoError(err)
	req.Len(questions, 1)
}

func TestQuestionService_Search(t *testing.T) {
	req := require.New(t)
	f := newQuestionFixture(t, nil)

	f.index.EXPECT().Search(gomock.Any(), search.Query{
		RawInput: "/find deadline --room other --slide 2",
		Terms:    "deadline",
		RoomID:   "room-1",
		Slide:    lo.ToPtr(2),
		Limit:    10,
	}).Return(nil, nil)

	hits, err := f.service.Search(context.Background(), "room-1", "/find deadline --room other --slide 2")
	req.NoError(err)
	req.Equal([]repositories.Hit{}, hits)
}
