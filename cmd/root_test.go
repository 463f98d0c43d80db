package cmd

import (
	"context"
	"log/slog"
	"testing"

	"finance-tracker/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_RegistersSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"serve", "migrate", "seed", "token", "audit"} {
		assert.True(t, names[want], "missing %s command", want)
	}

	migrateNames := make(map[string]bool)
	for _, c := range migrateCmd.Commands() {
		migrateNames[c.Name()] = true
	}
	assert.Equal(t, map[string]bool{"up": true, "down": true, "status": true}, migrateNames)
}

func TestSeedCommand_Flags(t *testing.T) {
	months := seedCmd.Flags().Lookup("months")
	require.NotNil(t, months)
	assert.Equal(t, "3", months.DefValue)
	assert.NotNil(t, seedCmd.Flags().Lookup("user"))
}

func TestAuditPruneCommand_Flags(t *testing.T) {
	require.Len(t, auditCmd.Commands(), 1)
	assert.Equal(t, "prune", auditCmd.Commands()[0].Name())

	retention := auditPruneCmd.Flags().Lookup("older-than")
	require.NotNil(t, retention)
	assert.Equal(t, "8760h0m0s", retention.DefValue)
}

func TestNewLogger(t *testing.T) {
	jsonLogger := newLogger(config.LogConfig{Level: slog.LevelWarn, Format: "JSON"})
	_, isJSON := jsonLogger.Handler().(*slog.JSONHandler)
	assert.True(t, isJSON)
	assert.False(t, jsonLogger.Enabled(context.Background(), slog.LevelInfo))

	textLogger := newLogger(config.LogConfig{Level: slog.LevelDebug, Format: "text"})
	_, isText := textLogger.Handler().(*slog.TextHandler)
	assert.True(t, isText)
	assert.True(t, textLogger.Enabled(context.Background(), slog.LevelDebug))
}
