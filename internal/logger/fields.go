package logger

import (
	"strings"

	"go.uber.org/zap"
)

const (
	// FieldProvider is the structured log field key for the AI provider name.
	FieldProvider = "ai_provider"
	// FieldModel is the structured log field key for the AI model identifier.
	FieldModel = "ai_model"

	FieldAnalysisID = "analysis_id"
	FieldSource     = "source"
	FieldJobID      = "job_id"
	FieldCandidate  = "candidate_id"
	FieldStage      = "stage"
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the provided key/value pairs into zap fields, trimming
// whitespace and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields attaches the provided fields to the logger. A nil logger becomes
// a no-op logger.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// AIFields describes the AI provider and model.
func AIFields(provider, model string) []zap.Field {
	return StringFields(
		StringField{Key: FieldProvider, Value: provider},
		StringField{Key: FieldModel, Value: model},
	)
}

// AnalysisFields identifies one analysis run and the resume it was built from.
func AnalysisFields(id, source string) []zap.Field {
	return StringFields(
		StringField{Key: FieldAnalysisID, Value: id},
		StringField{Key: FieldSource, Value: source},
	)
}

// ForAnalysis returns a logger tagged with the analysis fields.
func ForAnalysis(logger *zap.Logger, id, source string) *zap.Logger {
	return WithFields(logger, AnalysisFields(id, source)...)
}
