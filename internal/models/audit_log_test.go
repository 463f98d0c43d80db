package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditLog_Metadata(t *testing.T) {
	log := &AuditLog{Action: AuditActionWizardApplied}

	assert.Equal(t, 0, log.GetMetadata("created", 0))

	log.SetMetadata("created", 3)
	log.SetMetadata("source", ExpenseSourceEmail)

	assert.Equal(t, 3, log.GetMetadata("created", 0))
	assert.Equal(t, ExpenseSourceEmail, log.GetMetadata("source", ""))
	assert.Equal(t, "fallback", log.GetMetadata("missing", "fallback"))
}

func TestAuditMetadata_Value(t *testing.T) {
	value, err := AuditMetadata(nil).Value()
	require.NoError(t, err)
	assert.Nil(t, value)

	value, err = AuditMetadata{}.Value()
	require.NoError(t, err)
	assert.Nil(t, value)

	value, err = AuditMetadata{"deleted": 1}.Value()
	require.NoError(t, err)
	assert.JSONEq(t, `{"deleted":1}`, value.(string))
}

func TestAuditMetadata_Scan(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected AuditMetadata
		wantErr  bool
	}{
		{name: "nil", input: nil, expected: nil},
		{name: "empty string", input: "", expected: nil},
		{name: "string", input: `{"skipped":2}`, expected: AuditMetadata{"skipped": float64(2)}},
		{name: "bytes", input: []byte(`{"name":"Emergency fund"}`), expected: AuditMetadata{"name": "Emergency fund"}},
		{name: "malformed", input: `{"name":`, wantErr: true},
		{name: "unsupported type", input: 42, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m AuditMetadata
			err := m.Scan(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, m)
		})
	}
}

func TestAuditLog_BeforeCreate(t *testing.T) {
	log := &AuditLog{}
	require.NoError(t, log.BeforeCreate(nil))

	assert.NotEmpty(t, log.ID)
	assert.False(t, log.CreatedAt.IsZero())
	assert.Equal(t, "audit_logs", log.TableName())
}
