package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Budget sources
const (
	BudgetSourceManual = "manual"
	BudgetSourceWizard = "wizard"
)

// Budget caps spending in one category over an inclusive date period.
type Budget struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	CategoryID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"category_id"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	PeriodStart time.Time       `gorm:"type:date;not null" json:"period_start"`
	PeriodEnd   time.Time       `gorm:"type:date;not null" json:"period_end"`
	Source      string          `gorm:"type:varchar(20);not null;default:'manual'" json:"source"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`

	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"category,omitempty"`
}

func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.Source == "" {
		b.Source = BudgetSourceManual
	}
	b.PeriodStart = TruncateToDate(b.PeriodStart)
	b.PeriodEnd = TruncateToDate(b.PeriodEnd)

	now := time.Now()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	if b.UpdatedAt.IsZero() {
		b.UpdatedAt = now
	}

	return b.Validate()
}

func (b *Budget) BeforeUpdate(tx *gorm.DB) error {
	if isPartialUpdate(tx) {
		return nil
	}
	b.UpdatedAt = time.Now()
	return b.Validate()
}

func (b *Budget) Validate() error {
	if b.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}
	if b.CategoryID == uuid.Nil {
		return errors.New("category ID is required")
	}
	if !b.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	if b.Source != BudgetSourceManual && b.Source != BudgetSourceWizard {
		return errors.New("invalid budget source")
	}
	return b.Period().Validate()
}

// Period returns the budget's inclusive date range.
func (b *Budget) Period() DateRange {
	return DateRange{Start: b.PeriodStart, End: b.PeriodEnd}
}

func (b *Budget) TableName() string {
	return "budgets"
}

// BudgetWithSpending adds the amount spent in the budget's category over its period.
type BudgetWithSpending struct {
	Budget
	Spent          decimal.Decimal `json:"spent"`
	Remaining      decimal.Decimal `json:"remaining"`
	PercentageUsed decimal.Decimal `json:"percentage_used"`
}
