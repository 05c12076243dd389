//go:generate go run go.uber.org/mock/mockgen -source=report_service.go -destination=../mocks/mock_report_service.go -package=mocks
package services

import (
	"context"
	"fmt"
	"log/slog"
	"question-lab/clustering"
	"question-lab/domain"
	"question-lab/errors"
	"question-lab/observability"
	"question-lab/repositories"
	"question-lab/summary"
	"slices"
	"time"

	"github.com/samber/lo"
)

type IReportService interface {
	Top3(ctx context.Context, roomID domain.RoomID) (domain.TopQuestionReport, error)
	TopSlide(ctx context.Context, roomID domain.RoomID, latestFirst bool) (domain.TopSlideReport, error)
}

type ReportService struct {
	log             *slog.Logger
	questions       repositories.IQuestionRepository
	reports         repositories.IReportRepository
	engine          *clustering.Engine
	summarizer      summary.Summarizer
	monitoring      *observability.Monitoring
	summaryTimeout  time.Duration
	summaryMaxLines int
}

func NewReportService(
	log *slog.Logger,
	questions repositories.IQuestionRepository,
	reports repositories.IReportRepository,
	engine *clustering.Engine,
	summarizer summary.Summarizer,
	monitoring *observability.Monitoring,
	summaryTimeout time.Duration,
	summaryMaxLines int,
) *ReportService {
	return &ReportService{
		log:             log,
		questions:       questions,
		reports:         reports,
		engine:          engine,
		summarizer:      summarizer,
		monitoring:      monitoring,
		summaryTimeout:  summaryTimeout,
		summaryMaxLines: summaryMaxLines,
	}
}

// Top3 clusters every question of the room and persists the representatives.
// A room without question yields an empty report and a null marker in the sink.
func (s *ReportService) Top3(ctx context.Context, roomID domain.RoomID) (domain.TopQuestionReport, error) {
	if err := roomID.Validate(); err != nil {
		return domain.TopQuestionReport{}, err
	}
	records, err := s.questions.ListRoomQuestions(ctx, roomID, nil)
	if err != nil {
		return domain.TopQuestionReport{}, err
	}

	if len(records) == 0 {
		if err := s.reports.UpsertTop3Null(ctx, roomID); err != nil {
			return domain.TopQuestionReport{}, err
		}
		return domain.TopQuestionReport{RoomID: roomID, Top3: []domain.TopQuestionItem{}}, nil
	}

	report, err := clustering.BuildTop3(ctx, s.engine, roomID, records)
	if err != nil {
		s.monitoring.IncrReportFailures()
		return domain.TopQuestionReport{}, fmt.Errorf("top 3 of room %s: %w", roomID, err)
	}
	if err := s.reports.UpsertTop3(ctx, roomID, report.Top3); err != nil {
		return domain.TopQuestionReport{}, err
	}

	s.monitoring.AddQuestionsClustered(len(records))
	s.monitoring.IncrReportsBuilt()
	s.log.Debug("Top 3 built",
		"room", roomID,
		"questions", report.TotalQuestions,
		"groups", report.UniqueGroups)
	return report, nil
}

// TopSlide finds the slide with the most questions, the lowest slide winning ties.
func (s *ReportService) TopSlide(ctx context.Context, roomID domain.RoomID, latestFirst bool) (domain.TopSlideReport, error) {
	if err := roomID.Validate(); err != nil {
		return domain.TopSlideReport{}, err
	}
	counts, err := s.questions.SlideCounts(ctx, roomID)
	if err != nil {
		return domain.TopSlideReport{}, err
	}
	if len(counts) == 0 {
		return domain.TopSlideReport{}, fmt.Errorf("room %s: %w", roomID, errors.ErrNoQuestions)
	}

	slides := lo.Keys(counts)
	slices.Sort(slides)
	top := slides[0]
	for _, slide := range slides[1:] {
		if counts[slide] > counts[top] {
			top = slide
		}
	}

	records, err := s.questions.ListSlideQuestions(ctx, roomID, top, latestFirst)
	if err != nil {
		return domain.TopSlideReport{}, err
	}
	report := domain.TopSlideReport{
		RoomID:         roomID,
		Slide:          top,
		TotalQuestions: counts[top],
		Questions:      lo.Map(records, func(q domain.QuestionRecord, _ int) domain.SlideQuestion { return domain.ToSlideQuestion(q) }),
	}
	report.Summary = s.summarize(ctx, roomID, records)

	if err := s.reports.UpdatePopularQuestion(ctx, report); err != nil {
		return domain.TopSlideReport{}, err
	}
	s.monitoring.IncrReportsBuilt()
	return report, nil
}

// summarize never fails the report: errors are logged and the summary left empty.
func (s *ReportService) summarize(ctx context.Context, roomID domain.RoomID, records []domain.QuestionRecord) *string {
	if s.summaryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.summaryTimeout)
		defer cancel()
	}

	contents := lo.Map(records, func(q domain.QuestionRecord, _ int) string { return q.Content })
	text, err := s.summarizer.Summarize(ctx, contents, s.summaryMaxLines)
	if err != nil {
		s.monitoring.IncrSummaryFailures()
		s.log.Warn("Summary skipped", "room", roomID, "error", err)
		return nil
	}
	return text
}
