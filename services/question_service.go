//go:generate go run go.uber.org/mock/mockgen -source=question_service.go -destination=../mocks/mock_question_service.go -package=mocks
package services

import (
	"context"
	"fmt"
	"log/slog"
	"question-lab/contract"
	"question-lab/domain"
	"question-lab/domain/search"
	"question-lab/errors"
	"question-lab/moderation"
	"question-lab/observability"
	"question-lab/repositories"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

type IQuestionService interface {
	Ingest(ctx context.Context, roomID domain.RoomID, req IngestRequest) (domain.QuestionRecord, error)
	List(ctx context.Context, roomID domain.RoomID, fromTs *int64) ([]domain.QuestionRecord, error)
	Search(ctx context.Context, roomID domain.RoomID, rawQuery string) ([]repositories.Hit, error)
}

// IngestRequest is a question as posted by the audience. Missing id and ts are generated.
type IngestRequest struct {
	ID         string  `json:"id" validate:"omitempty,max=64,excludesall=:"`
	Slide      int     `json:"slide" validate:"gte=0"`
	AudienceID *string `json:"audienceId" validate:"omitempty,max=128"`
	Content    string  `json:"content" validate:"required"`
	Ts         *int64  `json:"ts" validate:"omitempty,gte=0"`
}

type QuestionService struct {
	log              *slog.Logger
	questions        repositories.IQuestionRepository
	index            repositories.IQuestionIndex
	sink             contract.QuestionSink
	moderator        *moderation.Moderator
	monitoring       *observability.Monitoring
	maxContentLength int
	now              func() time.Time
}

func NewQuestionService(
	log *slog.Logger,
	questions repositories.IQuestionRepository,
	index repositories.IQuestionIndex,
	sink contract.QuestionSink,
	moderator *moderation.Moderator,
	monitoring *observability.Monitoring,
	maxContentLength int,
) *QuestionService {
	return &QuestionService{
		log:              log,
		questions:        questions,
		index:            index,
		sink:             sink,
		moderator:        moderator,
		monitoring:       monitoring,
		maxContentLength: maxContentLength,
		now:              time.Now,
	}
}

func (s *QuestionService) Ingest(ctx context.Context, roomID domain.RoomID, req IngestRequest) (domain.QuestionRecord, error) {
	if err := roomID.Validate(); err != nil {
		return domain.QuestionRecord{}, err
	}
	if err := validate.Struct(req); err != nil {
		return domain.QuestionRecord{}, fmt.Errorf("%w: %v", errors.ErrInvalidQuestion, err)
	}
	content := strings.TrimSpace(req.Content)
	if content == "" || !utf8.ValidString(content) {
		return domain.QuestionRecord{}, fmt.Errorf("%w: empty or malformed content", errors.ErrInvalidQuestion)
	}
	if s.maxContentLength > 0 && utf8.RuneCountInString(content) > s.maxContentLength {
		return domain.QuestionRecord{}, fmt.Errorf("%w: content longer than %d characters", errors.ErrInvalidQuestion, s.maxContentLength)
	}

	if s.moderator != nil {
		var censored []string
		content, censored = s.moderator.Censor(content)
		if len(censored) > 0 {
			s.log.Debug("Question censored", "room", roomID, "words", len(censored))
		}
	}

	question := domain.QuestionRecord{
		ID:         req.ID,
		RoomID:     roomID,
		Slide:      req.Slide,
		AudienceID: req.AudienceID,
		Content:    content,
	}
	if question.ID == "" {
		question.ID = uuid.NewString()
	}
	if req.Ts != nil {
		question.Ts = *req.Ts
	} else {
		question.Ts = s.now().UnixMilli()
	}

	if err := s.sink.Consume(ctx, question); err != nil {
		return domain.QuestionRecord{}, err
	}
	s.monitoring.IncrQuestionsIngested()
	return question, nil
}

// List returns the room's questions, strictly after fromTs when set.
func (s *QuestionService) List(ctx context.Context, roomID domain.RoomID, fromTs *int64) ([]domain.QuestionRecord, error) {
	if err := roomID.Validate(); err != nil {
		return nil, err
	}
	return s.questions.ListRoomQuestions(ctx, roomID, fromTs)
}

// Search accepts the command syntax `/find terms --slide N --limit N`.
// The room always comes from the path, never from the query.
func (s *QuestionService) Search(ctx context.Context, roomID domain.RoomID, rawQuery string) ([]repositories.Hit, error) {
	if err := roomID.Validate(); err != nil {
		return nil, err
	}
	query := search.NewSearchQuery(rawQuery)
	query.RoomID = roomID.String()
	hits, err := s.index.Search(ctx, *query)
	if err != nil {
		return nil, err
	}
	if hits == nil {
		hits = []repositories.Hit{}
	}
	return hits, nil
}
