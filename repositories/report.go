//go:generate go run go.uber.org/mock/mockgen -source=report.go -destination=../mocks/mock_report_repository.go -package=mocks
package repositories

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"
	"question-lab/domain"
	"question-lab/errors"
	"time"

	"github.com/samber/lo"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schema string

type IReportRepository interface {
	UpsertTop3(ctx context.Context, roomID domain.RoomID, items []domain.TopQuestionItem) error
	UpsertTop3Null(ctx context.Context, roomID domain.RoomID) error
	UpdatePopularQuestion(ctx context.Context, report domain.TopSlideReport) error
	GetReport(ctx context.Context, roomID domain.RoomID) (StoredReport, error)
}

// PopularQuestion is the persisted form of a top slide report.
type PopularQuestion struct {
	Slide     int                    `json:"slide"`
	Questions []domain.SlideQuestion `json:"questions"`
	Summary   *string                `json:"summary"`
}

// StoredReport is a room row of the report sink. Top3 is nil when the room had no question.
type StoredReport struct {
	RoomID          domain.RoomID
	Top3            []string
	PopularQuestion *PopularQuestion
	UpdatedAt       time.Time
}

type ReportRepository struct {
	db  *sql.DB
	log *slog.Logger
	now func() time.Time
}

// OpenReportDB opens the SQLite file in WAL mode and creates the schema.
func OpenReportDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening report database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating report schema: %w", err)
	}
	return db, nil
}

func NewReportRepository(db *sql.DB, log *slog.Logger) ReportRepository {
	return ReportRepository{db: db, log: log, now: time.Now}
}

// UpsertTop3 stores the representatives of the top groups as a JSON array.
func (r ReportRepository) UpsertTop3(ctx context.Context, roomID domain.RoomID, items []domain.TopQuestionItem) error {
	representatives := lo.FilterMap(items, func(it domain.TopQuestionItem, _ int) (string, bool) {
		return it.Representative, it.Representative != ""
	})
	payload, err := json.Marshal(representatives)
	if err != nil {
		return err
	}
	return r.upsert(ctx, "top3_question", roomID, string(payload))
}

// UpsertTop3Null marks a room as having no question.
func (r ReportRepository) UpsertTop3Null(ctx context.Context, roomID domain.RoomID) error {
	return r.upsert(ctx, "top3_question", roomID, nil)
}

func (r ReportRepository) UpdatePopularQuestion(ctx context.Context, report domain.TopSlideReport) error {
	questions := report.Questions
	if questions == nil {
		questions = []domain.SlideQuestion{}
	}
	payload, err := json.Marshal(PopularQuestion{
		Slide:     report.Slide,
		Questions: questions,
		Summary:   report.Summary,
	})
	if err != nil {
		return err
	}
	return r.upsert(ctx, "popular_question", report.RoomID, string(payload))
}

// upsert writes a single column. column is never user input.
func (r ReportRepository) upsert(ctx context.Context, column string, roomID domain.RoomID, value any) error {
	query := fmt.Sprintf(`
		INSERT INTO report (room_id, %[1]s, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(room_id) DO UPDATE SET %[1]s = excluded.%[1]s, updated_at = excluded.updated_at`, column)
	if _, err := r.db.ExecContext(ctx, query, roomID.String(), value, r.now().Unix()); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrStoreUnavailable, err)
	}
	r.log.Debug("Report stored", "room", roomID, "column", column)
	return nil
}

func (r ReportRepository) GetReport(ctx context.Context, roomID domain.RoomID) (StoredReport, error) {
	var (
		top3      sql.NullString
		popular   sql.NullString
		updatedAt int64
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT top3_question, popular_question, updated_at FROM report WHERE room_id = ?`,
		roomID.String()).Scan(&top3, &popular, &updatedAt)
	if stderrors.Is(err, sql.ErrNoRows) {
		return StoredReport{}, fmt.Errorf("room %s: %w", roomID, errors.ErrNoQuestions)
	}
	if err != nil {
		return StoredReport{}, fmt.Errorf("%w: %v", errors.ErrStoreUnavailable, err)
	}

	report := StoredReport{RoomID: roomID, UpdatedAt: time.Unix(updatedAt, 0).UTC()}
	if top3.Valid {
		if err := json.Unmarshal([]byte(top3.String), &report.Top3); err != nil {
			return StoredReport{}, fmt.Errorf("decode top3 of room %s: %w", roomID, err)
		}
	}
	if popular.Valid {
		var p PopularQuestion
		if err := json.Unmarshal([]byte(popular.String), &p); err != nil {
			return StoredReport{}, fmt.Errorf("decode popular question of room %s: %w", roomID, err)
		}
		report.PopularQuestion = &p
	}
	return report, nil
}
