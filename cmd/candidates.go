package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/skillmatch/internal/analysis"
	"github.com/spigell/skillmatch/internal/catalog"
)

var candidatesCmd = &cobra.Command{
	Use:   "candidates",
	Short: "Rank candidates for a job from the catalog",
	Run: func(cmd *cobra.Command, _ []string) {
		candidates(cmd)
	},
}

func init() {
	rootCmd.AddCommand(candidatesCmd)

	candidatesCmd.Flags().String("job", "", "id of the job to rank candidates for")
	candidatesCmd.Flags().String("candidates-file", "candidates.json", "json file with candidates")
	candidatesCmd.MarkFlagRequired("job")
	addRankingFlags(candidatesCmd)

	viper.BindPFlag("candidates-file", candidatesCmd.Flags().Lookup("candidates-file"))
}

func candidates(cmd *cobra.Command) {
	logger, config := setup()

	jobID, _ := cmd.Flags().GetString("job")

	jobs, err := catalog.LoadJobs(config.JobsFile)
	if err != nil {
		logger.Fatal("loading jobs", zap.Error(err), zap.String("jobs_file", config.JobsFile))
	}

	job := jobs.FindByID(jobID)
	if job == nil {
		logger.Fatal("job with given id not found", zap.String("job_id", jobID), zap.Int("jobs", jobs.Len()))
	}

	people, err := catalog.LoadCandidates(config.CandidatesFile)
	if err != nil {
		logger.Fatal("loading candidates", zap.Error(err), zap.String("candidates_file", config.CandidatesFile))
	}

	ranked := analysis.New(nil, analysisOptions(cmd, config), logger).RankCandidates(job, people)

	if err := printJSON(ranked); err != nil {
		logger.Fatal("printing result", zap.Error(err))
	}
}
