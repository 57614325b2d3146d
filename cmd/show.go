package cmd

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/skillmatch/internal/store"
)

var showCmd = &cobra.Command{
	Use:   "show <analysis-id>",
	Short: "Print a saved analysis result (requires store-dir)",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		show(args[0])
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func show(id string) {
	logger, config := setup()

	if config.StoreDir == "" {
		logger.Fatal("store is not configured", zap.String("hint", "set store-dir in the config or SKILLMATCH_STORE_DIR"))
	}

	s, err := openStore(config)
	if err != nil {
		logger.Fatal("opening store", zap.Error(err))
	}

	var saved json.RawMessage
	if err := store.GetJSON(context.Background(), s, id, &saved); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			logger.Fatal("analysis not found", zap.String("analysis_id", id))
		}
		logger.Fatal("reading analysis", zap.Error(err))
	}

	if err := printJSON(saved); err != nil {
		logger.Fatal("printing result", zap.Error(err))
	}
}
