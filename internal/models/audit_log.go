package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AuditActionCreate        = "create"
	AuditActionUpdate        = "update"
	AuditActionDelete        = "delete"
	AuditActionWizardApplied = "budget_wizard_applied"
	AuditActionKeyCreated    = "api_key_created"
	AuditActionKeyRevoked    = "api_key_revoked"
	AuditActionIngested      = "expense_ingested"
)

const (
	AuditResourceGoal     = "goal"
	AuditResourceEntry    = "goal_entry"
	AuditResourceBudget   = "budget"
	AuditResourceCategory = "category"
	AuditResourceAPIKey   = "api_key"
	AuditResourceExpense  = "expense"
)

// AuditLog is one persisted entry of a user's activity trail. CorrelationID
// matches the request trace ID and the correlation_id of the slog audit
// stream.
type AuditLog struct {
	ID            uuid.UUID     `gorm:"type:uuid;primary_key" json:"id"`
	UserID        *uuid.UUID    `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Action        string        `gorm:"type:varchar(100);not null;index" json:"action"`
	Resource      string        `gorm:"type:varchar(100);not null" json:"resource"`
	ResourceID    string        `gorm:"type:varchar(255)" json:"resource_id,omitempty"`
	IPAddress     string        `gorm:"type:varchar(45)" json:"ip_address,omitempty"`
	UserAgent     string        `gorm:"type:text" json:"user_agent,omitempty"`
	CorrelationID string        `gorm:"type:varchar(64)" json:"correlation_id,omitempty"`
	Metadata      AuditMetadata `gorm:"type:text" json:"metadata,omitempty"`
	CreatedAt     time.Time     `gorm:"not null;index" json:"created_at"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"-"`
}

func (al *AuditLog) SetMetadata(key string, value interface{}) {
	if al.Metadata == nil {
		al.Metadata = make(AuditMetadata)
	}
	al.Metadata[key] = value
}

// GetMetadata returns the value under key, or defaultValue. Values read back
// from the database are JSON decoded, so numbers come back as float64.
func (al *AuditLog) GetMetadata(key string, defaultValue interface{}) interface{} {
	if value, ok := al.Metadata[key]; ok {
		return value
	}
	return defaultValue
}

func (al *AuditLog) TableName() string {
	return "audit_logs"
}

func (al *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if al.ID == uuid.Nil {
		al.ID = uuid.New()
	}
	if al.CreatedAt.IsZero() {
		al.CreatedAt = time.Now().UTC()
	}
	return nil
}

// AuditMetadata is stored as a JSON text column so the same schema works on
// postgres and sqlite.
type AuditMetadata map[string]interface{}

func (m AuditMetadata) Value() (driver.Value, error) {
	if len(m) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(map[string]interface{}(m))
	if err != nil {
		return nil, fmt.Errorf("encoding audit metadata: %w", err)
	}
	return string(data), nil
}

func (m *AuditMetadata) Scan(value interface{}) error {
	var data []byte
	switch v := value.(type) {
	case nil:
		*m = nil
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into AuditMetadata", value)
	}

	if len(data) == 0 {
		*m = nil
		return nil
	}

	decoded := make(map[string]interface{})
	if err := json.Unmarshal(data, &decoded); err != nil {
		return fmt.Errorf("decoding audit metadata: %w", err)
	}
	*m = decoded
	return nil
}
