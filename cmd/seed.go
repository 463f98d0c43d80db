package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"finance-tracker/internal/database"
	"finance-tracker/internal/server"
	"finance-tracker/internal/services"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var (
	flagSeedUser   string
	flagSeedEmail  string
	flagSeedMonths int
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Generate demo history for a user",
	Long:  "Generate months of realistic expenses, incomes and savings goals for a user, provisioning the user when needed.",
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&flagSeedUser, "user", "", "User ID (token subject) to seed")
	seedCmd.Flags().StringVar(&flagSeedEmail, "email", "", "Email used when the user does not exist yet")
	seedCmd.Flags().IntVar(&flagSeedMonths, "months", 3, "Months of history to generate")
	_ = seedCmd.MarkFlagRequired("user")

	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	userID, err := uuid.Parse(flagSeedUser)
	if err != nil {
		return fmt.Errorf("invalid --user: %w", err)
	}

	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := database.Initialize(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	metrics := services.NewPrometheusMetrics(prometheus.NewRegistry())
	svc := server.NewServices(cfg, server.NewRepositories(db.DB), nil, metrics, logger)

	summary, err := svc.Seed.Seed(cmd.Context(), userID, flagSeedEmail, flagSeedMonths, time.Now().UTC())
	if err != nil {
		return err
	}

	out := json.NewEncoder(cmd.OutOrStdout())
	out.SetIndent("", "  ")
	return out.Encode(summary)
}
