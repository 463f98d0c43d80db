package models

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_Validate(t *testing.T) {
	tests := []struct {
		name    string
		user    User
		wantErr string
	}{
		{
			name: "valid user",
			user: User{Email: "ana@example.com", Currency: "EUR"},
		},
		{
			name:    "missing email",
			user:    User{Currency: "EUR"},
			wantErr: "email is required",
		},
		{
			name:    "malformed email",
			user:    User{Email: "ana-at-example", Currency: "EUR"},
			wantErr: "invalid email format",
		},
		{
			name:    "display name too long",
			user:    User{Email: "ana@example.com", Currency: "EUR", DisplayName: strings.Repeat("a", 101)},
			wantErr: "display name too long",
		},
		{
			name:    "lowercase currency",
			user:    User{Email: "ana@example.com", Currency: "eur"},
			wantErr: "currency must be a three-letter ISO code",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.user.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestUser_BeforeCreate(t *testing.T) {
	user := &User{Email: "ana@example.com"}

	require.NoError(t, user.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, DefaultCurrency, user.Currency)
	assert.False(t, user.CreatedAt.IsZero())
	assert.Equal(t, user.CreatedAt, user.UpdatedAt)
}

func TestUser_BeforeCreate_KeepsExplicitID(t *testing.T) {
	id := uuid.New()
	user := &User{ID: id, Email: "ana@example.com", Currency: "USD"}

	require.NoError(t, user.BeforeCreate(nil))
	assert.Equal(t, id, user.ID)
	assert.Equal(t, "USD", user.Currency)
}

func TestUser_BeforeCreate_RejectsInvalid(t *testing.T) {
	user := &User{Email: "nope"}

	assert.Error(t, user.BeforeCreate(nil))
}

func TestUser_Name(t *testing.T) {
	assert.Equal(t, "Ana", (&User{Email: "ana@example.com", DisplayName: "Ana"}).Name())
	assert.Equal(t, "ana.silva", (&User{Email: "ana.silva@example.com"}).Name())
}
