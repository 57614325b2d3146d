package gemini

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/spigell/skillmatch/internal/ai"
	"github.com/spigell/skillmatch/internal/catalog"
	"github.com/spigell/skillmatch/internal/logger"
	"github.com/spigell/skillmatch/internal/matching"
	"github.com/spigell/skillmatch/internal/util"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, system, message string) (string, error)
	Model() string
}

//go:embed prompt.md
var promptTemplate string

const (
	defaultMaxLogLength      = 200
	defaultTone              = "Friendly"
	maxUserInstructionRunes  = 600
	userInstructionIndent    = "  - "
	placeholderEmptyOverride = "none"
)

// PromptOverrides carries user preferences that are rendered into the
// system prompt. Every value is sanitized before use.
type PromptOverrides struct {
	ExtraCriteria     string `mapstructure:"extra_criteria"`
	DealBreakers      string `mapstructure:"deal_breakers"`
	CustomKeywords    string `mapstructure:"custom_keywords"`
	Tone              string `mapstructure:"tone"`
	RegionConstraints string `mapstructure:"region_constraints"`
	UserInstructions  string `mapstructure:"user_instructions"`
}

type Matcher struct {
	generator contentGenerator
	minScore  float64
	maxLogLen int
	overrides PromptOverrides
	logger    *zap.Logger
}

var _ ai.Matcher = (*Matcher)(nil)

func NewMatcher(generator contentGenerator, minScore float64, maxLogLength int, l *zap.Logger) *Matcher {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	return &Matcher{
		generator: generator,
		minScore:  minScore,
		maxLogLen: maxLogLength,
		logger:    logger.WithFields(l, logger.AIFields("gemini", generator.Model())...),
	}
}

func (m *Matcher) SetPromptOverrides(overrides PromptOverrides) {
	m.overrides = overrides
}

// Evaluate asks the model for a fit verdict. Scores below the configured
// minimum always produce Fit == false.
func (m *Matcher) Evaluate(ctx context.Context, profile *ai.Profile, job *catalog.Job) (*ai.FitAssessment, error) {
	if profile == nil {
		return nil, errors.New("candidate profile is required")
	}
	if job == nil {
		return nil, errors.New("job is required")
	}

	match := matching.Compute(job.ID, job.RequiredSkills, profile.Skills)

	message, err := buildMessage(profile, job, match)
	if err != nil {
		return nil, err
	}
	system := buildSystemPrompt(m.overrides)

	m.logger.Debug("gemini fit request",
		zap.String(logger.FieldJobID, job.ID),
		zap.String(logger.FieldCandidate, profile.ID),
		zap.Int("match_percentage", match.MatchPercentage),
		zap.Int("message_length", utf8.RuneCountInString(message)),
		zap.String("message_preview", util.TruncateForLog(message, m.maxLogLen)),
	)

	raw, err := m.generator.GenerateContent(ctx, system, message)
	if err != nil {
		return nil, err
	}

	m.logger.Debug("gemini fit response",
		zap.String(logger.FieldJobID, job.ID),
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", util.TruncateForLog(raw, m.maxLogLen)),
	)

	assessment, err := parseResponse(raw)
	if err != nil {
		return nil, err
	}

	if m.minScore > 0 && assessment.Score < m.minScore {
		m.logger.Debug("set fit to false by score threshold",
			zap.String(logger.FieldJobID, job.ID),
			zap.Float64("score", assessment.Score),
			zap.Float64("threshold", m.minScore),
		)
		assessment.Fit = false
	}

	assessment.Raw = raw
	return assessment, nil
}

func buildMessage(profile *ai.Profile, job *catalog.Job, match matching.Result) (string, error) {
	docs := []struct {
		label string
		value any
	}{
		{"PROFILE", profile},
		{"JOB", job},
		{"MATCH", match},
	}

	var b strings.Builder
	for i, doc := range docs {
		data, err := json.MarshalIndent(doc.value, "", "  ")
		if err != nil {
			return "", fmt.Errorf("marshal %s payload: %w", strings.ToLower(doc.label), err)
		}
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(doc.label)
		b.WriteString(":\n")
		b.Write(data)
	}
	return b.String(), nil
}

func buildSystemPrompt(o PromptOverrides) string {
	tone := sanitizeLine(o.Tone)
	if tone == "" {
		tone = defaultTone
	}

	return strings.NewReplacer(
		"{{EXTRA_CRITERIA}}", orNone(sanitizeLine(o.ExtraCriteria)),
		"{{DEAL_BREAKERS}}", orNone(sanitizeLine(o.DealBreakers)),
		"{{CUSTOM_KEYWORDS}}", orNone(sanitizeLine(o.CustomKeywords)),
		"{{TONE}}", tone,
		"{{REGION_CONSTRAINTS}}", orNone(sanitizeLine(o.RegionConstraints)),
		"{{USER_INSTRUCTIONS}}", sanitizeInstructions(o.UserInstructions),
	).Replace(promptTemplate)
}

// sanitizeLine collapses whitespace and neutralises square brackets so a
// value can not open a new prompt section.
func sanitizeLine(value string) string {
	value = strings.NewReplacer("[", "(", "]", ")").Replace(value)
	return strings.Join(strings.Fields(value), " ")
}

func sanitizeInstructions(value string) string {
	budget := maxUserInstructionRunes
	var lines []string
	for _, line := range strings.Split(value, "\n") {
		line = sanitizeLine(line)
		if line == "" || budget <= 0 {
			continue
		}
		if utf8.RuneCountInString(line) > budget {
			line = string([]rune(line)[:budget])
		}
		budget -= utf8.RuneCountInString(line)
		lines = append(lines, userInstructionIndent+line)
	}

	if len(lines) == 0 {
		return userInstructionIndent + placeholderEmptyOverride
	}
	return strings.Join(lines, "\n")
}

func orNone(value string) string {
	if value == "" {
		return placeholderEmptyOverride
	}
	return value
}

func parseResponse(raw string) (*ai.FitAssessment, error) {
	var data map[string]any
	if err := json.Unmarshal([]byte(util.CleanJSON(raw)), &data); err != nil {
		return nil, fmt.Errorf("parse gemini response: %w", err)
	}

	score := coerceFloat(data["score"])
	if math.IsNaN(score) {
		score = 0
	}

	return &ai.FitAssessment{
		Fit:     coerceBool(data["fit"]),
		Score:   score,
		Reason:  coerceString(data["reason"]),
		Message: coerceString(data["message"]),
	}, nil
}

func coerceBool(v any) bool {
	switch val := v.(type) {
	case bool:
		return val
	case string:
		lower := strings.ToLower(strings.TrimSpace(val))
		return lower == "true" || lower == "yes"
	case float64:
		return val != 0
	default:
		return false
	}
}

func coerceFloat(v any) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}

func coerceString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(val)
	default:
		data, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(data)
	}
}
