package cmd

import (
	"fmt"
	"time"

	"finance-tracker/internal/services"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	flagTokenUser  string
	flagTokenEmail string
	flagTokenTTL   time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a development access token",
	Long:  "Sign an access token with JWT_PRIVATE_KEY for local development. Production tokens come from the identity provider.",
	RunE:  runToken,
}

func init() {
	tokenCmd.Flags().StringVar(&flagTokenUser, "user", "", "User ID for the token subject (random when empty)")
	tokenCmd.Flags().StringVar(&flagTokenEmail, "email", "dev@example.com", "Email claim")
	tokenCmd.Flags().DurationVar(&flagTokenTTL, "ttl", 0, "Token lifetime (defaults to JWT_DEV_TOKEN_TTL)")

	rootCmd.AddCommand(tokenCmd)
}

func runToken(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	userID := uuid.New()
	if flagTokenUser != "" {
		if userID, err = uuid.Parse(flagTokenUser); err != nil {
			return fmt.Errorf("invalid --user: %w", err)
		}
	}

	ttl := flagTokenTTL
	if ttl <= 0 {
		ttl = cfg.JWT.DevTokenTTL
	}

	token, expiresAt, err := services.NewTokenService(&cfg.JWT).GenerateDevToken(userID, flagTokenEmail, ttl)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "user:    %s\nexpires: %s\ntoken:   %s\n", userID, expiresAt.Format(time.RFC3339), token)
	return nil
}
