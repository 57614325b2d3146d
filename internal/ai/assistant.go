// Package ai holds the provider-neutral contract for LLM based fit reviews.
package ai

import (
	"context"

	"github.com/spigell/skillmatch/internal/catalog"
)

// Profile is the candidate side of a review: extracted skills plus a short
// free-form summary of the resume.
type Profile struct {
	ID      string   `json:"id"`
	Name    string   `json:"name,omitempty"`
	Skills  []string `json:"skills"`
	Summary string   `json:"summary,omitempty"`
}

type FitAssessment struct {
	Fit     bool    `json:"fit"`
	Score   float64 `json:"score"`
	Reason  string  `json:"reason"`
	Message string  `json:"message"`
	Raw     string  `json:"-"`
}

type Matcher interface {
	Evaluate(ctx context.Context, profile *Profile, job *catalog.Job) (*FitAssessment, error)
}
