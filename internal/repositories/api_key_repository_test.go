package repositories

import (
	"context"
	"strings"
	"testing"
	"time"

	"finance-tracker/internal/database"
	"finance-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

func TestAPIKeyRepository(t *testing.T) {
	suite.Run(t, new(APIKeyRepositorySuite))
}

type APIKeyRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo APIKeyRepositoryInterface
	ctx  context.Context
	user *models.User
}

func (s *APIKeyRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewAPIKeyRepository(s.db.DB)
	s.ctx = context.Background()
	s.user = database.CreateTestUser(s.T(), s.db, "keys@example.com")
}

func (s *APIKeyRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *APIKeyRepositorySuite) newKey(name, hashChar string) *models.APIKey {
	key := &models.APIKey{
		UserID:  s.user.ID,
		Name:    name,
		Prefix:  "ftk_abcd",
		KeyHash: strings.Repeat(hashChar, 64),
	}
	s.Require().NoError(s.repo.Create(s.ctx, key))
	return key
}

func (s *APIKeyRepositorySuite) TestGetByHash() {
	key := s.newKey("iPhone shortcut", "a")

	found, err := s.repo.GetByHash(s.ctx, key.KeyHash)
	s.NoError(err)
	s.Equal(key.ID, found.ID)

	_, err = s.repo.GetByHash(s.ctx, strings.Repeat("f", 64))
	s.ErrorIs(err, ErrAPIKeyNotFound)
}

func (s *APIKeyRepositorySuite) TestRevoke() {
	key := s.newKey("Mail forwarder", "b")

	s.NoError(s.repo.Revoke(s.ctx, s.user.ID, key.ID, time.Now()))
	s.ErrorIs(s.repo.Revoke(s.ctx, s.user.ID, key.ID, time.Now()), ErrAPIKeyNotFound)
	s.ErrorIs(s.repo.Revoke(s.ctx, s.user.ID, uuid.New(), time.Now()), ErrAPIKeyNotFound)

	found, err := s.repo.GetByHash(s.ctx, key.KeyHash)
	s.NoError(err)
	s.True(found.IsRevoked())
}

func (s *APIKeyRepositorySuite) TestTouchLastUsedAndList() {
	key := s.newKey("Shortcut", "c")
	s.newKey("Forwarder", "d")

	s.NoError(s.repo.TouchLastUsed(s.ctx, key.ID, time.Now()))

	keys, err := s.repo.ListByUser(s.ctx, s.user.ID)
	s.NoError(err)
	s.Len(keys, 2)

	found, err := s.repo.GetByHash(s.ctx, key.KeyHash)
	s.NoError(err)
	s.NotNil(found.LastUsedAt)
}
