package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense sources
const (
	ExpenseSourceManual   = "manual"
	ExpenseSourceShortcut = "shortcut"
	ExpenseSourceEmail    = "email"
	ExpenseSourceSeed     = "seed"
)

var (
	ErrInvalidAmount        = errors.New("amount must be positive")
	ErrInvalidExpenseSource = errors.New("invalid expense source")
	ErrDateRequired         = errors.New("date is required")
)

// Expense is money spent by a user on a given day.
type Expense struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	CategoryID  *uuid.UUID      `gorm:"type:uuid;index" json:"category_id,omitempty"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Description string          `gorm:"type:text" json:"description"`
	Merchant    string          `gorm:"type:varchar(255)" json:"merchant,omitempty"`
	Date        time.Time       `gorm:"type:date;not null;index" json:"date"`
	Source      string          `gorm:"type:varchar(20);not null;default:'manual'" json:"source"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`

	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category,omitempty"`
}

func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.Source == "" {
		e.Source = ExpenseSourceManual
	}
	e.Date = TruncateToDate(e.Date)

	now := time.Now()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	if e.UpdatedAt.IsZero() {
		e.UpdatedAt = now
	}

	return e.Validate()
}

func (e *Expense) BeforeUpdate(tx *gorm.DB) error {
	if isPartialUpdate(tx) {
		return nil
	}
	e.UpdatedAt = time.Now()
	return e.Validate()
}

func (e *Expense) Validate() error {
	if e.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}
	if !e.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	if e.Date.IsZero() {
		return ErrDateRequired
	}
	if !IsValidExpenseSource(e.Source) {
		return ErrInvalidExpenseSource
	}
	return nil
}

func IsValidExpenseSource(source string) bool {
	switch source {
	case ExpenseSourceManual, ExpenseSourceShortcut, ExpenseSourceEmail, ExpenseSourceSeed:
		return true
	}
	return false
}

func (e *Expense) TableName() string {
	return "expenses"
}

// ExpenseFilters narrows expense listings.
type ExpenseFilters struct {
	From       *time.Time
	To         *time.Time
	CategoryID *uuid.UUID
	Offset     int
	Limit      int
}

// ExpenseRow is an expense joined with its category metadata, as read by
// the spending aggregations.
type ExpenseRow struct {
	ID            uuid.UUID       `json:"id"`
	CategoryID    *uuid.UUID      `json:"category_id,omitempty"`
	CategoryName  string          `json:"category_name"`
	CategoryIcon  string          `json:"category_icon,omitempty"`
	CategoryColor string          `json:"category_color,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Date          time.Time       `json:"date"`
}

// Validate rejects rows that cannot take part in aggregation.
func (r ExpenseRow) Validate() error {
	if r.ID == uuid.Nil {
		return errors.New("expense row without ID")
	}
	if !r.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	if r.Date.IsZero() {
		return ErrDateRequired
	}
	return nil
}

// CategoryKey returns the grouping key, the nil UUID for uncategorized rows.
func (r ExpenseRow) CategoryKey() uuid.UUID {
	if r.CategoryID == nil {
		return uuid.Nil
	}
	return *r.CategoryID
}
