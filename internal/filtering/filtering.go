// Package filtering narrows a list of match results through a sequence of
// named steps, logging how many entries each step dropped.
package filtering

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/resumepilot/resumepilot/internal/ai"
)

// Filter represents a single filtering step applied to match results.
type Filter interface {
	Name() string
	Apply(results []ai.MatchResult) ([]ai.MatchResult, Step, error)
}

// Step describes the result of executing a filtering step.
type Step struct {
	Initial int
	Dropped int
	Left    int
}

// Run executes the supplied filters sequentially, returning the surviving
// results.
func Run(logger *zap.Logger, steps []Filter, results []ai.MatchResult) ([]ai.MatchResult, error) {
	for _, step := range steps {
		next, info, err := step.Apply(results)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}

		if logger != nil {
			logger.Info("filter step",
				zap.String("name", step.Name()),
				zap.Int("initial", info.Initial),
				zap.Int("dropped", info.Dropped),
				zap.Int("left", info.Left),
			)
		}

		results = next
	}

	return results, nil
}
