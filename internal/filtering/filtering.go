// Package filtering narrows the job catalog before it is matched and ranked.
package filtering

import (
	"context"
	"fmt"
	"maps"

	"go.uber.org/zap"

	"github.com/spigell/skillmatch/internal/ai"
	"github.com/spigell/skillmatch/internal/catalog"
)

// Filter represents a single filtering step applied to jobs.
type Filter interface {
	Name() string
	Disable(reason string)
	IsEnabled() bool

	Validate() error
	Apply(ctx context.Context, jobs *catalog.Jobs) (*catalog.Jobs, Step, error)
}

// Step describes the result of executing a filtering step.
type Step struct {
	Initial int
	Dropped int
	Left    int
}

// Status represents runtime information about a filter.
type Status struct {
	Name    string            `json:"name"`
	Enabled bool              `json:"enabled"`
	Reason  string            `json:"reason,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

type statusProvider interface {
	Status() Status
}

type assessmentCollector interface {
	Assessments() map[string]*ai.FitAssessment
}

// Filtering runs a fixed list of filters in order.
type Filtering struct {
	steps       []Filter
	logger      *zap.Logger
	assessments map[string]*ai.FitAssessment
}

func New(steps []Filter, logger *zap.Logger) *Filtering {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Filtering{
		steps:       steps,
		logger:      logger,
		assessments: make(map[string]*ai.FitAssessment),
	}
}

// DisableByName marks a filter with the provided name as disabled while keeping it in the list.
func DisableByName(steps []Filter, name, reason string) {
	for _, step := range steps {
		if step.Name() == name {
			step.Disable(reason)
		}
	}
}

// RunFilters validates every enabled filter first and then applies them
// sequentially.
func (f *Filtering) RunFilters(ctx context.Context, jobs *catalog.Jobs) (*catalog.Jobs, error) {
	for _, step := range f.steps {
		if !step.IsEnabled() {
			continue
		}
		if err := step.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}
	}

	for _, step := range f.steps {
		if !step.IsEnabled() {
			f.logger.Info("filter disabled", zap.String("name", step.Name()))
			continue
		}

		next, info, err := step.Apply(ctx, jobs)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}

		f.logger.Info("filter step",
			zap.String("name", step.Name()),
			zap.Int("initial", info.Initial),
			zap.Int("dropped", info.Dropped),
			zap.Int("left", info.Left),
		)

		jobs = next

		if collector, ok := step.(assessmentCollector); ok {
			maps.Copy(f.assessments, collector.Assessments())
		}
	}

	return jobs, nil
}

// Assessments returns the AI verdicts gathered by the last run, keyed by job ID.
func (f *Filtering) Assessments() map[string]*ai.FitAssessment {
	return maps.Clone(f.assessments)
}

func (f *Filtering) Describe() []Status {
	return Describe(f.steps)
}

// Describe returns status entries for the provided filters.
func Describe(steps []Filter) []Status {
	statuses := make([]Status, 0, len(steps))
	for _, step := range steps {
		if reporter, ok := step.(statusProvider); ok {
			statuses = append(statuses, reporter.Status())
			continue
		}

		statuses = append(statuses, Status{
			Name:    step.Name(),
			Enabled: step.IsEnabled(),
		})
	}
	return statuses
}

func stepOf(initial int, jobs *catalog.Jobs) Step {
	return Step{Initial: initial, Dropped: initial - jobs.Len(), Left: jobs.Len()}
}
