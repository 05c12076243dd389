// Package clustering groups the questions of one room into semantically equivalent
// clusters and ranks them.
package clustering

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"question-lab/domain"
	"question-lab/embedding"
	"question-lab/similarity"
)

// Thresholds configures the assignment tiers. A tier can be switched off with a
// threshold no score can reach (Semantic > 1, Hamming < 0, Jaccard > 1).
type Thresholds struct {
	Semantic    float64
	Hamming     int
	Jaccard     float64
	BucketBits  int
	ShingleSize int
	// SampleCap bounds samples of clusters grown through the Jaccard tier.
	SampleCap int
	// BucketScoped restricts candidates to clusters holding a member of the same bucket.
	BucketScoped bool
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		Semantic:    0.45,
		Hamming:     4,
		Jaccard:     0.60,
		BucketBits:  14,
		ShingleSize: 2,
		SampleCap:   3,
	}
}

type State int

const (
	StateEmpty State = iota
	StateAccumulating
	StateFinalized
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateAccumulating:
		return "accumulating"
	case StateFinalized:
		return "finalized"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Engine is stateless between runs and may be shared across rooms.
type Engine struct {
	log        *slog.Logger
	provider   embedding.Provider
	thresholds Thresholds
	workers    int
}

func NewEngine(log *slog.Logger, provider embedding.Provider, thresholds Thresholds, workers int) *Engine {
	return &Engine{
		log:        log,
		provider:   provider,
		thresholds: thresholds,
		workers:    workers,
	}
}

func (e *Engine) Thresholds() Thresholds { return e.thresholds }

// Run partitions records into clusters, in creation order.
// Any failure returns no clusters at all.
func (e *Engine) Run(ctx context.Context, records []domain.QuestionRecord) ([]*Cluster, error) {
	r := &run{thresholds: e.thresholds}
	if len(records) == 0 {
		r.state = StateFinalized
		return []*Cluster{}, nil
	}

	features, err := extractFeatures(ctx, e.provider, records, e.thresholds, e.workers)
	if err != nil {
		e.log.Error("Feature extraction failed", "questions", len(records), "error", err)
		return nil, err
	}

	order, buckets := groupByBucket(features)
	r.state = StateAccumulating
	for _, key := range order {
		for _, i := range buckets[key] {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if err := r.assign(features[i]); err != nil {
				e.log.Error("Clustering aborted", "question", features[i].Record.ID, "error", err)
				return nil, err
			}
		}
	}
	r.state = StateFinalized

	e.log.Debug("Clustering done",
		"state", r.state,
		"questions", len(records),
		"buckets", len(order),
		"clusters", len(r.clusters))
	return r.clusters, nil
}

// groupByBucket keeps buckets in first-seen order and arrival order inside a bucket.
func groupByBucket(features []Feature) ([]uint64, map[uint64][]int) {
	var order []uint64
	buckets := make(map[uint64][]int)
	for i, f := range features {
		if _, ok := buckets[f.Bucket]; !ok {
			order = append(order, f.Bucket)
		}
		buckets[f.Bucket] = append(buckets[f.Bucket], i)
	}
	return order, buckets
}

// run holds the mutable state of one Run call.
type run struct {
	thresholds Thresholds
	state      State
	clusters   []*Cluster
}

func (r *run) candidates(f Feature) []*Cluster {
	if !r.thresholds.BucketScoped {
		return r.clusters
	}
	var out []*Cluster
	for _, c := range r.clusters {
		if c.hasBucket(f.Bucket) {
			out = append(out, c)
		}
	}
	return out
}

func (r *run) assign(f Feature) error {
	th := r.thresholds
	candidates := r.candidates(f)

	var (
		bestSemantic    *Cluster
		bestScore       = math.Inf(-1)
		bestFingerprint *Cluster
		bestDistance    = math.MaxInt
	)
	for _, c := range candidates {
		score, err := similarity.Dot(f.Embedding, c.embedding)
		if err != nil {
			return fmt.Errorf("question %s: %w", f.Record.ID, err)
		}
		if score > bestScore {
			bestSemantic, bestScore = c, score
		}
		if d := similarity.Hamming(f.Fingerprint, c.fingerprint); d < bestDistance {
			bestFingerprint, bestDistance = c, d
		}
	}

	switch {
	case bestSemantic != nil && bestScore >= th.Semantic:
		bestSemantic.join(f, -1)
		bestSemantic.embedding = f.Embedding
		return nil
	case bestFingerprint != nil && bestDistance <= th.Hamming:
		bestFingerprint.join(f, -1)
		return nil
	}

	for _, c := range candidates {
		if similarity.Jaccard(f.Shingles, c.founder) >= th.Jaccard {
			c.join(f, th.SampleCap)
			return nil
		}
	}
	r.clusters = append(r.clusters, newCluster(f))
	return nil
}
