package clustering

import (
	"context"
	stderrors "errors"
	"fmt"
	"maps"
	"question-lab/domain"
	"question-lab/embedding"
	"question-lab/errors"
	"question-lab/similarity"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"
)

// Feature holds everything the engine compares for one question. Immutable once built.
type Feature struct {
	Record      domain.QuestionRecord
	Normalized  string
	Shingles    similarity.Shingles
	Fingerprint uint64
	Bucket      uint64
	Embedding   []float64
}

func newFeature(record domain.QuestionRecord, th Thresholds) (Feature, error) {
	if !utf8.ValidString(record.Content) {
		return Feature{}, fmt.Errorf("%w: question %s is not valid UTF-8", errors.ErrPreprocessingFailure, record.ID)
	}
	normalized := similarity.Normalize(record.Content)
	shingles := similarity.CharNgrams(normalized, th.ShingleSize)
	fp := similarity.Fingerprint(maps.Keys(shingles))
	return Feature{
		Record:      record,
		Normalized:  normalized,
		Shingles:    shingles,
		Fingerprint: fp,
		Bucket:      similarity.Bucket(fp, th.BucketBits),
	}, nil
}

// extractFeatures builds one feature per record, in input order.
// Embeddings are fetched with at most workers concurrent provider calls.
func extractFeatures(ctx context.Context, provider embedding.Provider, records []domain.QuestionRecord, th Thresholds, workers int) ([]Feature, error) {
	features := make([]Feature, len(records))
	for i, r := range records {
		f, err := newFeature(r, th)
		if err != nil {
			return nil, err
		}
		features[i] = f
	}

	embed := func(ctx context.Context, i int) error {
		vec, err := provider.Embed(ctx, features[i].Normalized)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if stderrors.Is(err, errors.ErrEmbeddingFailure) {
				return err
			}
			return fmt.Errorf("%w: question %s: %v", errors.ErrEmbeddingFailure, features[i].Record.ID, err)
		}
		features[i].Embedding = vec
		return nil
	}

	if workers <= 1 {
		for i := range features {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if err := embed(ctx, i); err != nil {
				return nil, err
			}
		}
		return features, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range features {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return embed(gctx, i)
		})
	}
	if err := g.Wait(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, err
	}
	return features, nil
}
