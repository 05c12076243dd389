package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"question-lab/domain"
	"question-lab/domain/mimetypes"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed <file>",
	Short: "Import questions from a JSON array or a CSV file",
	Long: "Import questions into the question store and the search index.\n" +
		"CSV files need a header with id, roomId, slide, content, ts and optionally audienceId.",
	Args: cobra.ExactArgs(1),
	RunE: runSeed,
}

func runSeed(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}
	questions, err := parseQuestions(data)
	if err != nil {
		return err
	}

	s, err := openStores(config)
	if err != nil {
		return err
	}
	defer s.Close()

	for _, q := range questions {
		if err := q.RoomID.Validate(); err != nil {
			return fmt.Errorf("question %s: %w", q.ID, err)
		}
		if err := s.sink.Consume(cmd.Context(), q); err != nil {
			return fmt.Errorf("question %s: %w", q.ID, err)
		}
	}
	rooms := lo.Uniq(lo.Map(questions, func(q domain.QuestionRecord, _ int) domain.RoomID { return q.RoomID }))
	fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d questions in %d rooms\n", len(questions), len(rooms))
	return nil
}

// parseQuestions sniffs the content type and decodes JSON or CSV records.
func parseQuestions(data []byte) ([]domain.QuestionRecord, error) {
	format, detected := mimetypes.DetectImport(data)
	switch format {
	case mimetypes.ApplicationJSON:
		var questions []domain.QuestionRecord
		if err := json.Unmarshal(data, &questions); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
		return questions, nil
	case mimetypes.TextCSV:
		return parseCSV(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("unsupported file type %s", detected)
	}
}

func parseCSV(r io.Reader) ([]domain.QuestionRecord, error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	columns := make(map[string]int, len(header))
	for i, h := range header {
		columns[strings.TrimSpace(h)] = i
	}
	for _, required := range []string{"id", "roomId", "slide", "content", "ts"} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("csv column %q is missing", required)
		}
	}

	var questions []domain.QuestionRecord
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			return questions, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read csv line %d: %w", line, err)
		}
		slide, err := strconv.Atoi(row[columns["slide"]])
		if err != nil {
			return nil, fmt.Errorf("csv line %d: invalid slide: %w", line, err)
		}
		ts, err := strconv.ParseInt(row[columns["ts"]], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("csv line %d: invalid ts: %w", line, err)
		}
		q := domain.QuestionRecord{
			ID:      row[columns["id"]],
			RoomID:  domain.RoomID(row[columns["roomId"]]),
			Slide:   slide,
			Content: row[columns["content"]],
			Ts:      ts,
		}
		if i, ok := columns["audienceId"]; ok && row[i] != "" {
			q.AudienceID = lo.ToPtr(row[i])
		}
		questions = append(questions, q)
	}
}
