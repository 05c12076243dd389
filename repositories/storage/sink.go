package storage

import (
	"context"
	"log/slog"
	"question-lab/domain"
	"question-lab/repositories"
)

// QuestionSink persists an ingested question then makes it searchable.
// The store is the source of truth: an indexing failure is logged, not returned.
type QuestionSink struct {
	repository repositories.IQuestionRepository
	index      repositories.IQuestionIndex
	log        *slog.Logger
}

func NewQuestionSink(repository repositories.IQuestionRepository, index repositories.IQuestionIndex, log *slog.Logger) QuestionSink {
	return QuestionSink{repository: repository, index: index, log: log}
}

func (d QuestionSink) Consume(ctx context.Context, question domain.QuestionRecord) error {
	if err := d.repository.StoreQuestion(ctx, question); err != nil {
		return err
	}
	if d.index == nil {
		return nil
	}
	if err := d.index.Index(ctx, question); err != nil {
		d.log.Warn("Question stored but not indexed", "room", question.RoomID, "id", question.ID, "error", err)
	}
	return nil
}
