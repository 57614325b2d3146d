package filtering

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/skillmatch/internal/catalog"
)

type employersFilter struct {
	employers []string
	logger    *zap.Logger
}

// NewExcludedEmployers creates a filter that removes jobs of the given employer IDs.
func NewExcludedEmployers(employers []string, logger *zap.Logger) Filter {
	if logger == nil {
		logger = zap.NewNop()
	}

	cleaned := make([]string, 0, len(employers))
	for _, id := range employers {
		if id = strings.TrimSpace(id); id != "" {
			cleaned = append(cleaned, id)
		}
	}

	return &employersFilter{employers: cleaned, logger: logger}
}

func (f *employersFilter) Name() string { return "employers" }

func (f *employersFilter) Disable(string) {}

func (f *employersFilter) IsEnabled() bool { return true }

func (f *employersFilter) Validate() error { return nil }

func (f *employersFilter) Apply(_ context.Context, jobs *catalog.Jobs) (*catalog.Jobs, Step, error) {
	initial := jobs.Len()
	if len(f.employers) == 0 {
		return jobs, stepOf(initial, jobs), nil
	}

	excluded := jobs.Exclude(catalog.JobEmployerIDField, f.employers)
	if len(excluded) > 0 {
		f.logger.Info("excluding jobs by employers",
			zap.Strings("excluded_employers", f.employers),
			zap.Strings("excluded_jobs", excluded),
			zap.Int("jobs_left", jobs.Len()),
		)
	}

	return jobs, stepOf(initial, jobs), nil
}

func (f *employersFilter) Status() Status {
	details := map[string]string{}
	if len(f.employers) > 0 {
		details["employers"] = strings.Join(f.employers, ",")
	}
	return Status{Name: f.Name(), Enabled: true, Details: details}
}
