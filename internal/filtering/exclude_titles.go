package filtering

import (
	"strings"

	"github.com/resumepilot/resumepilot/internal/ai"
)

type excludeTitlesFilter struct {
	phrases []string
}

// NewExcludeTitles creates a filter that removes results whose job title
// contains any of the given phrases. Matching is case-insensitive.
func NewExcludeTitles(phrases []string) Filter {
	return &excludeTitlesFilter{phrases: phrases}
}

func (f *excludeTitlesFilter) Name() string { return "exclude_titles" }

func (f *excludeTitlesFilter) Apply(results []ai.MatchResult) ([]ai.MatchResult, Step, error) {
	initial := len(results)
	if len(f.phrases) == 0 {
		return results, Step{Initial: initial, Dropped: 0, Left: initial}, nil
	}

	kept := make([]ai.MatchResult, 0, initial)
	for _, result := range results {
		if !f.excluded(result.JobTitle) {
			kept = append(kept, result)
		}
	}

	return kept, Step{Initial: initial, Dropped: initial - len(kept), Left: len(kept)}, nil
}

func (f *excludeTitlesFilter) excluded(title string) bool {
	title = strings.ToLower(title)
	for _, phrase := range f.phrases {
		if phrase == "" {
			continue
		}
		if strings.Contains(title, strings.ToLower(phrase)) {
			return true
		}
	}
	return false
}
