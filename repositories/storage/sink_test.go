package storage

import (
	"context"
	"fmt"
	"log/slog"
	"question-lab/domain"
	"question-lab/errors"
	"question-lab/mocks"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestQuestionSink_Consume(t *testing.T) {
	question := domain.QuestionRecord{ID: "q1", RoomID: "room-1", Slide: 1, Content: "Is this recorded?", Ts: 10}

	t.Run("Stores then indexes", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockIQuestionRepository(ctrl)
		index := mocks.NewMockIQuestionIndex(ctrl)

		gomock.InOrder(
			repo.EXPECT().StoreQuestion(gomock.Any(), question).Return(nil),
			index.EXPECT().Index(gomock.Any(), question).Return(nil),
		)

		sink := NewQuestionSink(repo, index, logs.GetLoggerFromLevel(slog.LevelDebug))
		req.NoError(sink.Consume(context.Background(), question))
	})

	t.Run("Store failure skips indexing", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockIQuestionRepository(ctrl)
		index := mocks.NewMockIQuestionIndex(ctrl)

		repo.EXPECT().StoreQuestion(gomock.Any(), question).
			Return(fmt.Errorf("%w: disk full", errors.ErrStoreUnavailable))

		sink := NewQuestionSink(repo, index, logs.GetLoggerFromLevel(slog.LevelDebug))
		req.ErrorIs(sink.Consume(context.Background(), question), errors.ErrStoreUnavailable)
	})

	t.Run("Index failure is tolerated", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockIQuestionRepository(ctrl)
		index := mocks.NewMockIQuestionIndex(ctrl)

		repo.EXPECT().StoreQuestion(gomock.Any(), question).Return(nil)
		index.EXPECT().Index(gomock.Any(), question).Return(fmt.Errorf("index closed"))

		sink := NewQuestionSink(repo, index, logs.GetLoggerFromLevel(slog.LevelDebug))
		req.NoError(sink.Consume(context.Background(), question))
	})
}
