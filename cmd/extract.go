package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/skillmatch/internal/analysis"
	"github.com/spigell/skillmatch/internal/extraction"
	"github.com/spigell/skillmatch/internal/feedback"
	"github.com/spigell/skillmatch/internal/ingestion"
)

var extractCmd = &cobra.Command{
	Use:   "extract <resume>",
	Short: "Print the skills found in a resume and a review of the resume itself",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		extract(args[0])
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)
}

func extract(path string) {
	logger, _ := setup()

	text, err := ingestion.ReadFile(path)
	if err != nil {
		logger.Fatal("reading resume", zap.Error(err))
	}

	skills, review := analysis.New(nil, analysis.Options{}, logger).Extract(text)
	logger.Info("skills extracted", zap.Int("count", len(skills)))

	out := struct {
		Skills   []extraction.ExtractedSkill `json:"skills"`
		Feedback *feedback.Feedback          `json:"feedback"`
	}{skills, review}

	if err := printJSON(out); err != nil {
		logger.Fatal("printing result", zap.Error(err))
	}
}
