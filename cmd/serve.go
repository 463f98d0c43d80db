package cmd

import (
	"os/signal"
	"syscall"

	"finance-tracker/internal/database"
	"finance-tracker/internal/server"
	"finance-tracker/internal/services"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := database.Initialize(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	publisher, err := server.NewPublisher(cfg.Integration, logger)
	if err != nil {
		return err
	}
	defer publisher.Close()

	metrics := services.NewPrometheusMetrics(prometheus.DefaultRegisterer)
	svc := server.NewServices(cfg, server.NewRepositories(db.DB), publisher, metrics, logger)
	router := server.NewRouter(cfg, svc, db)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return server.New(cfg, router, logger).Run(ctx)
}
