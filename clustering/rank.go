package clustering

import (
	"cmp"
	"context"
	"question-lab/domain"
	"slices"
)

const TopK = 3

// Rank orders clusters by size then latest question, largest and freshest first.
// Full ties keep creation order.
func Rank(clusters []*Cluster) []*Cluster {
	ranked := slices.Clone(clusters)
	slices.SortStableFunc(ranked, func(a, b *Cluster) int {
		if c := cmp.Compare(b.Size(), a.Size()); c != 0 {
			return c
		}
		return cmp.Compare(b.MaxTs(), a.MaxTs())
	})
	return ranked
}

// Project converts ranked clusters into the top 3 report.
func Project(roomID domain.RoomID, total int, ranked []*Cluster) domain.TopQuestionReport {
	top := ranked[:min(TopK, len(ranked))]
	items := make([]domain.TopQuestionItem, 0, len(top))
	for _, c := range top {
		items = append(items, domain.TopQuestionItem{
			Representative: c.Representative,
			Count:          c.Size(),
			QuestionIDs:    c.QuestionIDs(),
			Slides:         c.Slides(),
			Samples:        slices.Clone(c.Samples),
		})
	}
	return domain.TopQuestionReport{
		RoomID:         roomID,
		TotalQuestions: total,
		UniqueGroups:   len(ranked),
		Top3:           items,
	}
}

func BuildTop3(ctx context.Context, engine *Engine, roomID domain.RoomID, records []domain.QuestionRecord) (domain.TopQuestionReport, error) {
	clusters, err := engine.Run(ctx, records)
	if err != nil {
		return domain.TopQuestionReport{}, err
	}
	return Project(roomID, len(records), Rank(clusters)), nil
}
