package cmd

import (
	"fmt"
	"time"

	"finance-tracker/internal/database"
	"finance-tracker/internal/repositories"
	"finance-tracker/internal/services"

	"github.com/spf13/cobra"
)

var flagAuditRetention time.Duration

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Maintain the activity trail",
}

var auditPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete audit entries older than the retention window",
	RunE:  runAuditPrune,
}

func init() {
	auditPruneCmd.Flags().DurationVar(&flagAuditRetention, "older-than", 365*24*time.Hour, "Retention window, at least 24h")

	auditCmd.AddCommand(auditPruneCmd)
	rootCmd.AddCommand(auditCmd)
}

func runAuditPrune(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := database.Initialize(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	audit := services.NewAuditService(repositories.NewAuditLogRepository(db.DB))
	deleted, err := audit.PruneActivity(cmd.Context(), flagAuditRetention)
	if err != nil {
		return err
	}

	logger.Info("audit trail pruned", "deleted", deleted, "retention", flagAuditRetention.String())
	fmt.Fprintf(cmd.OutOrStdout(), "deleted %d audit entries\n", deleted)
	return nil
}
