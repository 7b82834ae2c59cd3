package filtering

import (
	"fmt"

	"github.com/resumepilot/resumepilot/internal/ai"
)

type minScoreFilter struct {
	threshold float64
}

// NewMinScore creates a filter that removes results scoring below the given
// match percentage.
func NewMinScore(threshold float64) Filter {
	return &minScoreFilter{threshold: threshold}
}

func (f *minScoreFilter) Name() string { return "min_score" }

func (f *minScoreFilter) Apply(results []ai.MatchResult) ([]ai.MatchResult, Step, error) {
	initial := len(results)
	if f.threshold < 0 || f.threshold > 100 {
		return nil, Step{}, fmt.Errorf("threshold %.2f is outside the 0-100 range", f.threshold)
	}

	kept := make([]ai.MatchResult, 0, initial)
	for _, result := range results {
		if result.MatchPercentage >= f.threshold {
			kept = append(kept, result)
		}
	}

	return kept, Step{Initial: initial, Dropped: initial - len(kept), Left: len(kept)}, nil
}
