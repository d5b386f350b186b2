package core

import (
	"sort"

	"github.com/talentlens/talentlens/schema"
)

// RankResults orders analysis results by overall impression descending,
// breaking ties by confidence descending and then candidate name, and keeps
// at most limit entries. A non-positive limit keeps everything.
func RankResults(results []*schema.AnalysisResult, limit int) []*schema.AnalysisResult {
	ranked := make([]*schema.AnalysisResult, len(results))
	copy(ranked, results)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Overall() != ranked[j].Overall() {
			return ranked[i].Overall() > ranked[j].Overall()
		}
		if ranked[i].ConfidenceScore != ranked[j].ConfidenceScore {
			return ranked[i].ConfidenceScore > ranked[j].ConfidenceScore
		}
		return ranked[i].CandidateName < ranked[j].CandidateName
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
