//go:generate go run go.uber.org/mock/mockgen -source=search.go -destination=../mocks/mock_question_index.go -package=mocks
package repositories

import (
	"context"
	"fmt"
	"log/slog"
	"question-lab/domain"
	"question-lab/domain/search"
	"question-lab/errors"
	"question-lab/similarity"
	"slices"
	"strconv"

	"github.com/blugelabs/bluge"
)

const (
	fieldQuestionID = "question_id"
	fieldRoom       = "room"
	fieldSlide      = "slide"
	fieldContent    = "content"
	fieldTs         = "ts"
)

type IQuestionIndex interface {
	Index(ctx context.Context, question domain.QuestionRecord) error
	Search(ctx context.Context, query search.Query) ([]Hit, error)
}

// Hit is a search result. Score is the index relevance, Lexical the character n-gram
// TF-IDF cosine between the query and the question, used for the final order.
type Hit struct {
	Question domain.QuestionRecord
	Score    float64
	Lexical  float64
}

type QuestionIndex struct {
	writer *bluge.Writer
	log    *slog.Logger
}

func NewQuestionIndex(writer *bluge.Writer, log *slog.Logger) QuestionIndex {
	return QuestionIndex{writer: writer, log: log}
}

// Index adds or replaces the document "{room}:{id}".
func (i QuestionIndex) Index(ctx context.Context, q domain.QuestionRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	doc := bluge.NewDocument(fmt.Sprintf("%s:%s", q.RoomID, q.ID)).
		AddField(bluge.NewKeywordField(fieldQuestionID, q.ID).StoreValue()).
		AddField(bluge.NewKeywordField(fieldRoom, q.RoomID.String()).StoreValue()).
		AddField(bluge.NewNumericField(fieldSlide, float64(q.Slide)).StoreValue()).
		AddField(bluge.NewTextField(fieldContent, q.Content).StoreValue()).
		AddField(bluge.NewKeywordField(fieldTs, strconv.FormatInt(q.Ts, 10)).StoreValue())

	if err := i.writer.Update(doc.ID(), doc); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrStoreUnavailable, err)
	}
	return nil
}

// Search matches the query terms against question content inside one room.
// An empty term list returns the room's questions.
func (i QuestionIndex) Search(ctx context.Context, query search.Query) ([]Hit, error) {
	reader, err := i.writer.Reader()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrStoreUnavailable, err)
	}
	defer func() {
		if err := reader.Close(); err != nil {
			i.log.Debug("Closing index reader", "error", err)
		}
	}()

	q := bluge.NewBooleanQuery().
		AddMust(bluge.NewTermQuery(query.RoomID).SetField(fieldRoom))
	if query.Terms != "" {
		q.AddMust(bluge.NewMatchQuery(query.Terms).SetField(fieldContent))
	}
	if query.Slide != nil {
		slide := float64(*query.Slide)
		q.AddMust(bluge.NewNumericRangeInclusiveQuery(slide, slide, true, true).SetField(fieldSlide))
	}

	limit := query.Limit
	if limit <= 0 {
		limit = 10
	}
	matches, err := reader.Search(ctx, bluge.NewTopNSearch(limit, q))
	if err != nil {
		return nil, storeError(ctx, err)
	}

	var hits []Hit
	match, err := matches.Next()
	for err == nil && match != nil {
		hit := Hit{Score: match.Score, Question: domain.QuestionRecord{RoomID: domain.RoomID(query.RoomID)}}
		var visitErr error
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			switch field {
			case fieldQuestionID:
				hit.Question.ID = string(value)
			case fieldContent:
				hit.Question.Content = string(value)
			case fieldSlide:
				slide, decodeErr := bluge.DecodeNumericFloat64(value)
				if decodeErr != nil {
					visitErr = decodeErr
					return false
				}
				hit.Question.Slide = int(slide)
			case fieldTs:
				ts, parseErr := strconv.ParseInt(string(value), 10, 64)
				if parseErr != nil {
					visitErr = parseErr
					return false
				}
				hit.Question.Ts = ts
			}
			return true
		})
		if err == nil {
			err = visitErr
		}
		if err != nil {
			break
		}
		hits = append(hits, hit)
		match, err = matches.Next()
	}
	if err != nil {
		return nil, storeError(ctx, err)
	}

	rerank(query.Terms, hits)
	i.log.Debug("Questions searched", "room", query.RoomID, "terms", query.Terms, "hits", len(hits))
	return hits, nil
}

// rerank orders hits by TF-IDF cosine over character n-grams, the index order breaking ties.
func rerank(terms string, hits []Hit) {
	if terms == "" || len(hits) == 0 {
		return
	}
	corpus := make([][]string, len(hits))
	for k, h := range hits {
		corpus[k] = similarity.CharNgramsMulti(h.Question.Content, 2, 4)
	}
	idf := similarity.IDF(corpus)
	queryVec := similarity.TFIDF(similarity.CharNgramsMulti(terms, 2, 4), idf)
	for k := range hits {
		hits[k].Lexical = similarity.CosineSparse(queryVec, similarity.TFIDF(corpus[k], idf))
	}
	slices.SortStableFunc(hits, func(a, b Hit) int {
		switch {
		case a.Lexical > b.Lexical:
			return -1
		case a.Lexical < b.Lexical:
			return 1
		default:
			return 0
		}
	})
}
