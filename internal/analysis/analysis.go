// Package analysis runs a resume through the whole engine: extraction,
// matching, insights, ranking and the resume review.
package analysis

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spigell/skillmatch/internal/catalog"
	"github.com/spigell/skillmatch/internal/extraction"
	"github.com/spigell/skillmatch/internal/feedback"
	"github.com/spigell/skillmatch/internal/insights"
	"github.com/spigell/skillmatch/internal/logger"
	"github.com/spigell/skillmatch/internal/matching"
	"github.com/spigell/skillmatch/internal/ranking"
	"github.com/spigell/skillmatch/internal/vocabulary"
)

// Options configure an Analyzer.
type Options struct {
	Ranking  ranking.Options
	GapLimit int
}

// Result is everything produced for one resume. Matches are ranked; Report is
// built from the unjittered results of every job in catalog order.
type Result struct {
	ID       string                         `json:"id"`
	Source   string                         `json:"source,omitempty"`
	Skills   []extraction.ExtractedSkill    `json:"skills"`
	Matches  []ranking.Ranked[*catalog.Job] `json:"matches"`
	Report   *insights.Report               `json:"report"`
	Feedback *feedback.Feedback             `json:"feedback"`
}

// SkillNames returns the detected skills without confidences.
func (r *Result) SkillNames() []string {
	return extraction.Names(r.Skills)
}

// Jobs returns the ranked jobs in ranking order.
func (r *Result) Jobs() *catalog.Jobs {
	jobs := &catalog.Jobs{Items: make([]*catalog.Job, 0, len(r.Matches))}
	for _, m := range r.Matches {
		jobs.Items = append(jobs.Items, m.Item)
	}
	return jobs
}

type Analyzer struct {
	extractor   *extraction.Extractor
	synthesizer *insights.Synthesizer
	opts        ranking.Options
	logger      *zap.Logger
	newID       func() string
}

func New(v *vocabulary.Vocabulary, opts Options, l *zap.Logger) *Analyzer {
	if v == nil {
		v = vocabulary.Default()
	}
	if l == nil {
		l = zap.NewNop()
	}
	if opts.Ranking.Matcher == nil {
		opts.Ranking.Matcher = matching.Default()
	}

	return &Analyzer{
		extractor:   extraction.New(v),
		synthesizer: insights.New(v, insights.WithGapLimit(opts.GapLimit)),
		opts:        opts.Ranking,
		logger:      l,
		newID:       uuid.NewString,
	}
}

// Extract detects skills in text and reviews the resume without matching it
// against any job.
func (a *Analyzer) Extract(text string) ([]extraction.ExtractedSkill, *feedback.Feedback) {
	skills := a.extractor.Extract(text)
	return skills, feedback.Evaluate(text, extraction.Names(skills))
}

// Analyze processes resume text against jobs. A nil jobs list is treated as
// empty. The only error is a cancelled context.
func (a *Analyzer) Analyze(ctx context.Context, source, text string, jobs *catalog.Jobs) (*Result, error) {
	if jobs == nil {
		jobs = &catalog.Jobs{}
	}

	id := a.newID()
	log := logger.ForAnalysis(a.logger, id, source)
	started := time.Now()

	skills, review := a.Extract(text)
	names := extraction.Names(skills)
	log.Debug("skills extracted",
		zap.String(logger.FieldStage, "extraction"),
		zap.Int("count", len(skills)),
		zap.Strings("skills", names),
	)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries := ranking.ScoreJobs(jobs.Items, names, a.opts.Matcher)
	results := make([]matching.Result, 0, len(entries))
	for _, e := range entries {
		results = append(results, e.Match)
	}
	log.Debug("jobs matched",
		zap.String(logger.FieldStage, "matching"),
		zap.Int("jobs", len(results)),
	)

	report := a.synthesizer.Synthesize(names, results)
	log.Debug("insights synthesized",
		zap.String(logger.FieldStage, "insights"),
		zap.Int("readiness_score", report.ReadinessScore),
		zap.Int("market_alignment", report.MarketAlignment),
	)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ranked := ranking.Rank(entries, a.opts)

	log.Info("analysis completed",
		zap.Int("skills", len(skills)),
		zap.Int("jobs", jobs.Len()),
		zap.Int("ranked", len(ranked)),
		zap.Int("readiness_score", report.ReadinessScore),
		zap.Duration("took", time.Since(started)),
	)

	return &Result{
		ID:       id,
		Source:   source,
		Skills:   skills,
		Matches:  ranked,
		Report:   report,
		Feedback: review,
	}, nil
}

// RankCandidates orders candidates for job. Candidates without a skill list
// are matched on the skills extracted from their resume text; the input is
// not modified.
func (a *Analyzer) RankCandidates(job *catalog.Job, candidates *catalog.Candidates) []ranking.Ranked[*catalog.Candidate] {
	var items []*catalog.Candidate
	if candidates != nil {
		items = make([]*catalog.Candidate, 0, candidates.Len())
		for _, c := range candidates.Items {
			if len(c.Skills) == 0 && c.Resume != "" {
				withSkills := *c
				withSkills.Skills = extraction.Names(a.extractor.Extract(c.Resume))
				c = &withSkills
			}
			items = append(items, c)
		}
	}

	var requirer ranking.Requirer
	if job != nil {
		requirer = job
	}

	ranked := ranking.RankCandidatesForJob(items, requirer, a.opts)

	fields := []zap.Field{
		zap.Int("candidates", len(items)),
		zap.Int("ranked", len(ranked)),
	}
	if job != nil {
		fields = append(fields, zap.String(logger.FieldJobID, job.ID))
	}
	a.logger.Info("candidates ranked", fields...)

	return ranked
}
