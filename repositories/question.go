//go:generate go run go.uber.org/mock/mockgen -source=question.go -destination=../mocks/mock_question_repository.go -package=mocks
package repositories

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"question-lab/domain"
	"question-lab/errors"
	"strconv"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

type IQuestionRepository interface {
	StoreQuestion(ctx context.Context, question domain.QuestionRecord) error
	ListRoomQuestions(ctx context.Context, roomID domain.RoomID, fromTs *int64) ([]domain.QuestionRecord, error)
	SlideCounts(ctx context.Context, roomID domain.RoomID) (map[int]int, error)
	ListSlideQuestions(ctx context.Context, roomID domain.RoomID, slide int, latestFirst bool) ([]domain.QuestionRecord, error)
}

type QuestionRepository struct {
	db             *badger.DB
	log            *slog.Logger
	limitQuestions *int
}

func NewQuestionRepository(db *badger.DB, log *slog.Logger, limitQuestions *int) QuestionRepository {
	return QuestionRepository{db: db, log: log, limitQuestions: limitQuestions}
}

func roomPrefix(roomID domain.RoomID) string {
	return fmt.Sprintf("q:%s:", roomID)
}

func slidesPrefix(roomID domain.RoomID) string {
	return fmt.Sprintf("slide:%s:", roomID)
}

func slidePrefix(roomID domain.RoomID, slide int) string {
	return fmt.Sprintf("slide:%s:%010d:", roomID, slide)
}

func idKey(roomID domain.RoomID, id string) string {
	return fmt.Sprintf("id:%s:%s", roomID, id)
}

func timelineKey(roomID domain.RoomID, ts int64, id string) string {
	return fmt.Sprintf("%s%019d:%s", roomPrefix(roomID), ts, id)
}

func slideKey(roomID domain.RoomID, slide int, ts int64, id string) string {
	return fmt.Sprintf("%s%019d:%s", slidePrefix(roomID, slide), ts, id)
}

// StoreQuestion writes the question under three keys in a single transaction:
//   - "q:{room}:{ts}:{id}" keeps the room timeline ordered by timestamp,
//   - "slide:{room}:{slide}:{ts}:{id}" indexes questions per slide,
//   - "id:{room}:{id}" holds "{ts}:{slide}" of the current version.
//
// Numbers are zero padded so that lexicographical order is numerical order.
// Storing an id again replaces the previous version: its timeline and slide
// keys are removed in the same transaction.
func (r QuestionRepository) StoreQuestion(ctx context.Context, question domain.QuestionRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	bytes, err := encodeQuestion(question)
	if err != nil {
		return err
	}
	indexKey := []byte(idKey(question.RoomID, question.ID))

	err = r.db.Update(func(txn *badger.Txn) error {
		// Drop the previous version, if any
		item, err := txn.Get(indexKey)
		switch {
		case err == nil:
			previous, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			if err := r.deletePrevious(txn, question, string(previous)); err != nil {
				return err
			}
		case !stderrors.Is(err, badger.ErrKeyNotFound):
			return err
		}

		if err := txn.Set([]byte(timelineKey(question.RoomID, question.Ts, question.ID)), bytes); err != nil {
			return err
		}
		if err := txn.Set([]byte(slideKey(question.RoomID, question.Slide, question.Ts, question.ID)), bytes); err != nil {
			return err
		}
		return txn.Set(indexKey, []byte(fmt.Sprintf("%d:%d", question.Ts, question.Slide)))
	})
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrStoreUnavailable, err)
	}
	return nil
}

func (r QuestionRepository) deletePrevious(txn *badger.Txn, question domain.QuestionRecord, previous string) error {
	tsPart, slidePart, ok := strings.Cut(previous, ":")
	if !ok {
		r.log.Debug("Skipping malformed id index", "id", question.ID, "value", previous)
		return nil
	}
	ts, err := strconv.ParseInt(tsPart, 10, 64)
	if err != nil {
		return fmt.Errorf("id index timestamp: %w", err)
	}
	slide, err := strconv.Atoi(slidePart)
	if err != nil {
		return fmt.Errorf("id index slide: %w", err)
	}
	if err := txn.Delete([]byte(timelineKey(question.RoomID, ts, question.ID))); err != nil {
		return err
	}
	return txn.Delete([]byte(slideKey(question.RoomID, slide, ts, question.ID)))
}

// ListRoomQuestions returns the questions of a room, oldest first.
// When fromTs is set, only questions strictly newer than it are returned.
// The optional limitQuestions cap applies here, so a capped Top3 only
// clusters the oldest limitQuestions questions of the room.
func (r QuestionRepository) ListRoomQuestions(ctx context.Context, roomID domain.RoomID, fromTs *int64) ([]domain.QuestionRecord, error) {
	prefix := []byte(roomPrefix(roomID))
	seek := prefix
	if fromTs != nil {
		seek = []byte(fmt.Sprintf("%s%019d", prefix, *fromTs+1))
	}
	return r.scan(ctx, prefix, seek, false, r.limitQuestions)
}

// ListSlideQuestions returns the questions asked on one slide, ordered by timestamp.
// It is never capped, so its length always matches SlideCounts.
func (r QuestionRepository) ListSlideQuestions(ctx context.Context, roomID domain.RoomID, slide int, latestFirst bool) ([]domain.QuestionRecord, error) {
	prefix := []byte(slidePrefix(roomID, slide))
	seek := prefix
	if latestFirst {
		seek = append(append([]byte{}, prefix...), 0xFF)
	}
	return r.scan(ctx, prefix, seek, latestFirst, nil)
}

// SlideCounts counts questions per slide with a key only scan.
func (r QuestionRepository) SlideCounts(ctx context.Context, roomID domain.RoomID) (map[int]int, error) {
	prefixStr := slidesPrefix(roomID)
	prefix := []byte(prefixStr)
	counts := make(map[int]int)

	err := r.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			rest := string(it.Item().Key()[len(prefixStr):])
			slidePart, _, ok := strings.Cut(rest, ":")
			if !ok {
				continue
			}
			slide, err := strconv.Atoi(slidePart)
			if err != nil {
				r.log.Debug("Skipping malformed slide key", "key", string(it.Item().Key()))
				continue
			}
			counts[slide]++
		}
		return nil
	})
	if err != nil {
		return nil, storeError(ctx, err)
	}
	return counts, nil
}

// scan collects values under prefix starting at seek.
// It stops once limit values are collected, when limit is set.
func (r QuestionRepository) scan(ctx context.Context, prefix, seek []byte, reverse bool, limit *int) ([]domain.QuestionRecord, error) {
	var byteQuestions [][]byte
	err := r.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.Reverse = reverse
		it := txn.NewIterator(options)
		defer it.Close()

		for it.Seek(seek); it.ValidForPrefix(prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			if limit != nil && len(byteQuestions) == *limit {
				r.log.Debug(fmt.Sprintf("Maximum of %d questions reached", *limit))
				break
			}
			value, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			byteQuestions = append(byteQuestions, value)
		}
		return nil
	})
	if err != nil {
		return nil, storeError(ctx, err)
	}

	questions := make([]domain.QuestionRecord, 0, len(byteQuestions))
	for _, b := range byteQuestions {
		q, err := decodeQuestion(b)
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, nil
}

func storeError(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return fmt.Errorf("%w: %v", errors.ErrStoreUnavailable, err)
}

// Timestamps are kept as strings: a float64 number value would lose precision.
func encodeQuestion(q domain.QuestionRecord) ([]byte, error) {
	fields := map[string]any{
		"id":      q.ID,
		"roomId":  q.RoomID.String(),
		"slide":   float64(q.Slide),
		"content": q.Content,
		"ts":      strconv.FormatInt(q.Ts, 10),
	}
	if q.AudienceID != nil {
		fields["audienceId"] = *q.AudienceID
	}
	s, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("encode question %s: %w", q.ID, err)
	}
	return proto.Marshal(s)
}

func decodeQuestion(b []byte) (domain.QuestionRecord, error) {
	var s structpb.Struct
	if err := proto.Unmarshal(b, &s); err != nil {
		return domain.QuestionRecord{}, fmt.Errorf("decode question: %w", err)
	}
	fields := s.GetFields()
	ts, err := strconv.ParseInt(fields["ts"].GetStringValue(), 10, 64)
	if err != nil {
		return domain.QuestionRecord{}, fmt.Errorf("decode question timestamp: %w", err)
	}
	q := domain.QuestionRecord{
		ID:      fields["id"].GetStringValue(),
		RoomID:  domain.RoomID(fields["roomId"].GetStringValue()),
		Slide:   int(fields["slide"].GetNumberValue()),
		Content: fields["content"].GetStringValue(),
		Ts:      ts,
	}
	if v, ok := fields["audienceId"]; ok {
		q.AudienceID = lo.ToPtr(v.GetStringValue())
	}
	return q, nil
}
