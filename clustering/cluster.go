package clustering

import (
	"question-lab/domain"
	"question-lab/similarity"
	"slices"

	"github.com/samber/lo"
)

// Cluster is a group of questions considered to ask the same thing.
// The centroid fingerprint is the founder's and never moves, while the centroid
// embedding follows the latest semantic join.
type Cluster struct {
	Representative string
	Members        []domain.QuestionRecord
	Samples        []string

	fingerprint uint64
	embedding   []float64
	founder     similarity.Shingles
	slides      map[int]struct{}
	questionIDs map[string]struct{}
	buckets     map[uint64]struct{}
	maxTs       int64
}

func newCluster(f Feature) *Cluster {
	c := &Cluster{
		Representative: f.Record.Content,
		fingerprint:    f.Fingerprint,
		embedding:      f.Embedding,
		founder:        f.Shingles,
		slides:         make(map[int]struct{}),
		questionIDs:    make(map[string]struct{}),
		buckets:        make(map[uint64]struct{}),
		maxTs:          f.Record.Ts,
	}
	c.add(f)
	c.Samples = []string{f.Record.Content}
	return c
}

func (c *Cluster) add(f Feature) {
	c.Members = append(c.Members, f.Record)
	c.slides[f.Record.Slide] = struct{}{}
	c.questionIDs[f.Record.ID] = struct{}{}
	c.buckets[f.Bucket] = struct{}{}
	c.maxTs = max(c.maxTs, f.Record.Ts)
}

// join adds f to the cluster. A negative sampleCap keeps every sample.
func (c *Cluster) join(f Feature, sampleCap int) {
	c.add(f)
	if sampleCap < 0 || len(c.Samples) < sampleCap {
		c.Samples = append(c.Samples, f.Record.Content)
	}
}

func (c *Cluster) Size() int { return len(c.Members) }

// MaxTs is the most recent member timestamp.
func (c *Cluster) MaxTs() int64 { return c.maxTs }

func (c *Cluster) Fingerprint() uint64 { return c.fingerprint }

func (c *Cluster) Embedding() []float64 { return c.embedding }

func (c *Cluster) QuestionIDs() []string {
	ids := lo.Keys(c.questionIDs)
	slices.Sort(ids)
	return ids
}

func (c *Cluster) Slides() []int {
	slides := lo.Keys(c.slides)
	slices.Sort(slides)
	return slides
}

func (c *Cluster) hasBucket(bucket uint64) bool {
	_, ok := c.buckets[bucket]
	return ok
}
