package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/shopspring/decimal"

	"finance-tracker/internal/models"
)

// WizardConfig tunes the budget wizard heuristics and the taxonomy given
// to new users.
type WizardConfig struct {
	EssentialCategories  []string                 `toml:"essential_categories"`
	MinSpendingThreshold decimal.Decimal          `toml:"min_spending_threshold"`
	EligibilityDays      int                      `toml:"eligibility_days"`
	DefaultCategories    []models.DefaultCategory `toml:"default_categories"`
}

// DefaultWizardConfig returns the built-in wizard rules.
func DefaultWizardConfig() WizardConfig {
	return WizardConfig{
		EssentialCategories: []string{
			"Housing",
			"Groceries",
			"Utilities",
			"Transportation",
			"Healthcare",
			"Insurance",
		},
		MinSpendingThreshold: decimal.NewFromInt(100),
		EligibilityDays:      10,
		DefaultCategories:    models.DefaultCategories(),
	}
}

// LoadWizardConfig overlays the TOML file at path on the defaults. An empty
// path or a missing file yields the defaults.
func LoadWizardConfig(path string) (WizardConfig, error) {
	cfg := DefaultWizardConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading wizard config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing wizard config: %w", err)
	}

	return cfg, cfg.Validate()
}

func (w WizardConfig) Validate() error {
	if w.EligibilityDays < 1 || w.EligibilityDays > 31 {
		return fmt.Errorf("eligibility_days must be between 1 and 31, got %d", w.EligibilityDays)
	}
	if w.MinSpendingThreshold.IsNegative() {
		return errors.New("min_spending_threshold must not be negative")
	}
	return nil
}
