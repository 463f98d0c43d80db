package models

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category types
const (
	CategoryTypeExpense = "expense"
	CategoryTypeIncome  = "income"
)

// UncategorizedName labels expenses without a category in aggregated views.
const UncategorizedName = "Uncategorized"

var (
	ErrCategoryNameRequired = errors.New("category name is required")
	ErrInvalidCategoryType  = errors.New("invalid category type")
	ErrInvalidCategoryColor = errors.New("category color must be a #rrggbb hex value")

	hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
)

// Category is a user-owned label for expenses and incomes.
type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Icon      string    `gorm:"type:varchar(50)" json:"icon,omitempty"`
	Color     string    `gorm:"type:varchar(7)" json:"color,omitempty"`
	Type      string    `gorm:"type:varchar(20);not null;default:'expense'" json:"type"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// DefaultCategory describes a category provisioned for new users.
type DefaultCategory struct {
	Name  string `toml:"name"`
	Icon  string `toml:"icon"`
	Color string `toml:"color"`
	Type  string `toml:"type"`
}

// DefaultCategories is the taxonomy every new user starts with.
func DefaultCategories() []DefaultCategory {
	return []DefaultCategory{
		{Name: "Housing", Icon: "home", Color: "#4f46e5", Type: CategoryTypeExpense},
		{Name: "Groceries", Icon: "shopping-cart", Color: "#16a34a", Type: CategoryTypeExpense},
		{Name: "Utilities", Icon: "bolt", Color: "#f59e0b", Type: CategoryTypeExpense},
		{Name: "Transportation", Icon: "car", Color: "#0ea5e9", Type: CategoryTypeExpense},
		{Name: "Healthcare", Icon: "heart-pulse", Color: "#ef4444", Type: CategoryTypeExpense},
		{Name: "Insurance", Icon: "shield", Color: "#64748b", Type: CategoryTypeExpense},
		{Name: "Dining Out", Icon: "utensils", Color: "#f97316", Type: CategoryTypeExpense},
		{Name: "Entertainment", Icon: "film", Color: "#a855f7", Type: CategoryTypeExpense},
		{Name: "Shopping", Icon: "bag", Color: "#ec4899", Type: CategoryTypeExpense},
		{Name: "Subscriptions", Icon: "repeat", Color: "#14b8a6", Type: CategoryTypeExpense},
		{Name: "Travel", Icon: "plane", Color: "#06b6d4", Type: CategoryTypeExpense},
		{Name: "Salary", Icon: "wallet", Color: "#22c55e", Type: CategoryTypeIncome},
	}
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.Type == "" {
		c.Type = CategoryTypeExpense
	}

	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}

	return c.Validate()
}

func (c *Category) BeforeUpdate(tx *gorm.DB) error {
	if isPartialUpdate(tx) {
		return nil
	}
	c.UpdatedAt = time.Now()
	return c.Validate()
}

func (c *Category) Validate() error {
	if c.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}
	if strings.TrimSpace(c.Name) == "" {
		return ErrCategoryNameRequired
	}
	if len(c.Name) > 100 {
		return errors.New("category name too long")
	}
	if c.Type != CategoryTypeExpense && c.Type != CategoryTypeIncome {
		return ErrInvalidCategoryType
	}
	if c.Color != "" && !hexColorRegex.MatchString(c.Color) {
		return ErrInvalidCategoryColor
	}
	return nil
}

// NormalizedName is the key used for case-insensitive name comparisons.
func (c *Category) NormalizedName() string {
	return NormalizeCategoryName(c.Name)
}

// NormalizeCategoryName lowercases and trims a category name.
func NormalizeCategoryName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (c *Category) TableName() string {
	return "categories"
}
