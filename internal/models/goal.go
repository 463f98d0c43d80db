package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrGoalNameRequired   = errors.New("goal name is required")
	ErrInvalidTargetAmt   = errors.New("goal target amount must be positive")
	ErrZeroEntryAmount    = errors.New("goal entry amount must be non-zero")
	ErrGoalEntryImmutable = errors.New("goal entries cannot be modified")
)

// Goal is a savings target. Its current amount is never stored; it is the
// sum of its entries and is recomputed on every read.
type Goal struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Name         string          `gorm:"type:varchar(100);not null" json:"name"`
	TargetAmount decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"target_amount"`
	TargetDate   time.Time       `gorm:"type:date;not null" json:"target_date"`
	CategoryID   *uuid.UUID      `gorm:"type:uuid" json:"category_id,omitempty"`
	BudgetID     *uuid.UUID      `gorm:"type:uuid" json:"budget_id,omitempty"`
	CreatedAt    time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"not null" json:"updated_at"`

	Entries []GoalEntry `gorm:"foreignKey:GoalID;constraint:OnDelete:CASCADE" json:"-"`
}

func (g *Goal) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	g.TargetDate = TruncateToDate(g.TargetDate)

	now := time.Now()
	if g.CreatedAt.IsZero() {
		g.CreatedAt = now
	}
	if g.UpdatedAt.IsZero() {
		g.UpdatedAt = now
	}

	return g.Validate()
}

func (g *Goal) BeforeUpdate(tx *gorm.DB) error {
	if isPartialUpdate(tx) {
		return nil
	}
	g.UpdatedAt = time.Now()
	return g.Validate()
}

func (g *Goal) Validate() error {
	if g.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}
	if strings.TrimSpace(g.Name) == "" {
		return ErrGoalNameRequired
	}
	if !g.TargetAmount.IsPositive() {
		return ErrInvalidTargetAmt
	}
	if g.TargetDate.IsZero() {
		return ErrDateRequired
	}
	return nil
}

func (g *Goal) TableName() string {
	return "goals"
}

// GoalEntry is one contribution (positive) or withdrawal (negative) in a
// goal's ledger. Entries are created and deleted, never updated.
type GoalEntry struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	GoalID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"goal_id"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Description string          `gorm:"type:text" json:"description,omitempty"`
	Date        time.Time       `gorm:"type:date;not null" json:"date"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`
}

func (e *GoalEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
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

func (e *GoalEntry) BeforeUpdate(tx *gorm.DB) error {
	return ErrGoalEntryImmutable
}

func (e *GoalEntry) Validate() error {
	if e.GoalID == uuid.Nil {
		return errors.New("goal ID is required")
	}
	if e.Amount.IsZero() {
		return ErrZeroEntryAmount
	}
	if e.Date.IsZero() {
		return ErrDateRequired
	}
	return nil
}

// IsWithdrawal reports whether the entry takes money out of the goal.
func (e *GoalEntry) IsWithdrawal() bool {
	return e.Amount.IsNegative()
}

func (e *GoalEntry) TableName() string {
	return "goal_entries"
}
