package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Income is money received by a user on a given day.
type Income struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	CategoryID  *uuid.UUID      `gorm:"type:uuid;index" json:"category_id,omitempty"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Description string          `gorm:"type:text" json:"description"`
	Date        time.Time       `gorm:"type:date;not null;index" json:"date"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`

	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category,omitempty"`
}

func (i *Income) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	i.Date = TruncateToDate(i.Date)

	now := time.Now()
	if i.CreatedAt.IsZero() {
		i.CreatedAt = now
	}
	if i.UpdatedAt.IsZero() {
		i.UpdatedAt = now
	}

	return i.Validate()
}

func (i *Income) BeforeUpdate(tx *gorm.DB) error {
	if isPartialUpdate(tx) {
		return nil
	}
	i.UpdatedAt = time.Now()
	return i.Validate()
}

func (i *Income) Validate() error {
	if i.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}
	if !i.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	if i.Date.IsZero() {
		return ErrDateRequired
	}
	return nil
}

func (i *Income) TableName() string {
	return "incomes"
}
