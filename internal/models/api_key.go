package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// APIKeyPrefixLength is how many leading characters of a key are kept for display.
const APIKeyPrefixLength = 8

// APIKey authenticates integration clients such as iPhone shortcuts and
// mail forwarders. Only the sha256 hash of the secret is stored.
type APIKey struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Name       string     `gorm:"type:varchar(100);not null" json:"name"`
	Prefix     string     `gorm:"type:varchar(16);not null" json:"prefix"`
	KeyHash    string     `gorm:"type:varchar(64);uniqueIndex;not null" json:"-"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
	RevokedAt  *time.Time `json:"revoked_at,omitempty"`
	CreatedAt  time.Time  `gorm:"not null" json:"created_at"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (k *APIKey) BeforeCreate(tx *gorm.DB) error {
	if k.ID == uuid.Nil {
		k.ID = uuid.New()
	}
	if k.CreatedAt.IsZero() {
		k.CreatedAt = time.Now()
	}
	return k.Validate()
}

func (k *APIKey) Validate() error {
	if k.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}
	if strings.TrimSpace(k.Name) == "" {
		return errors.New("api key name is required")
	}
	if len(k.KeyHash) != 64 {
		return errors.New("api key hash must be a sha256 hex digest")
	}
	return nil
}

func (k *APIKey) IsRevoked() bool {
	return k.RevokedAt != nil
}

func (k *APIKey) TableName() string {
	return "api_keys"
}
