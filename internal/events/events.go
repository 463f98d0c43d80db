package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Routing keys
const (
	ExpenseCreated      = "expense.created"
	BudgetWizardApplied = "budget.wizard_applied"
	GoalAchieved        = "goal.achieved"
)

// Message is the envelope published for every domain event. Consumers fetch
// the full record by ResourceID when they need it.
type Message struct {
	ID         uuid.UUID         `json:"id"`
	Type       string            `json:"type"`
	UserID     uuid.UUID         `json:"user_id"`
	ResourceID uuid.UUID         `json:"resource_id"`
	Attributes map[string]string `json:"attributes,omitempty"`
	Timestamp  time.Time         `json:"timestamp"`
}

func NewMessage(eventType string, userID, resourceID uuid.UUID, attributes map[string]string) *Message {
	return &Message{
		ID:         uuid.New(),
		Type:       eventType,
		UserID:     userID,
		ResourceID: resourceID,
		Attributes: attributes,
		Timestamp:  time.Now().UTC(),
	}
}

func (m *Message) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func MessageFromJSON(data []byte) (*Message, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// Publisher announces domain events. Publishing is best effort: callers log
// failures and carry on.
type Publisher interface {
	Publish(ctx context.Context, msg *Message) error
	Close() error
}

// NoopPublisher drops every message. It is used when no broker is configured.
type NoopPublisher struct{}

func NewNoopPublisher() Publisher {
	return NoopPublisher{}
}

func (NoopPublisher) Publish(ctx context.Context, msg *Message) error {
	return nil
}

func (NoopPublisher) Close() error {
	return nil
}
