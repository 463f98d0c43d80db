package repositories

import (
	"context"
	"testing"

	"finance-tracker/internal/database"
	"finance-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

func TestUserRepository(t *testing.T) {
	suite.Run(t, new(UserRepositorySuite))
}

type UserRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo UserRepositoryInterface
	ctx  context.Context
}

func (s *UserRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewUserRepository(s.db.DB)
	s.ctx = context.Background()
}

func (s *UserRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *UserRepositorySuite) TestUserRepository_Create() {
	user := &models.User{
		ID:          uuid.New(),
		Email:       "test@example.com",
		DisplayName: "Test User",
	}

	err := s.repo.Create(s.ctx, user)
	s.NoError(err)
	s.NotZero(user.CreatedAt)
	s.Equal(models.DefaultCurrency, user.Currency)
}

func (s *UserRepositorySuite) TestUserRepository_CreateDuplicateEmail() {
	s.Require().NoError(s.repo.Create(s.ctx, &models.User{Email: "dup@example.com"}))

	err := s.repo.Create(s.ctx, &models.User{Email: "dup@example.com"})
	s.ErrorIs(err, ErrUserAlreadyExists)
}

func (s *UserRepositorySuite) TestUserRepository_GetByID() {
	user := database.CreateTestUser(s.T(), s.db, "lookup@example.com")

	found, err := s.repo.GetByID(s.ctx, user.ID)
	s.NoError(err)
	s.Equal(user.Email, found.Email)

	_, err = s.repo.GetByID(s.ctx, uuid.New())
	s.ErrorIs(err, ErrUserNotFound)
}

func (s *UserRepositorySuite) TestUserRepository_Update() {
	user := database.CreateTestUser(s.T(), s.db, "update@example.com")

	user.DisplayName = "Renamed"
	user.Currency = "USD"
	s.NoError(s.repo.Update(s.ctx, user))

	found, err := s.repo.GetByID(s.ctx, user.ID)
	s.NoError(err)
	s.Equal("Renamed", found.DisplayName)
	s.Equal("USD", found.Currency)
}

func (s *UserRepositorySuite) TestUserRepository_UpdateRejectsInvalidCurrency() {
	user := database.CreateTestUser(s.T(), s.db, "currency@example.com")

	user.Currency = "euro"
	s.Error(s.repo.Update(s.ctx, user))
}
