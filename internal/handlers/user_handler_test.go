package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/models"
	"finance-tracker/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type UserHandlerSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	userService  *service_mocks.MockUserServiceInterface
	auditService *service_mocks.MockAuditServiceInterface
	handler      *UserHandler
	echo         *echo.Echo
	userID       uuid.UUID
}

func TestUserHandlerSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerSuite))
}

func (s *UserHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.userService = service_mocks.NewMockUserServiceInterface(s.ctrl)
	s.auditService = service_mocks.NewMockAuditServiceInterface(s.ctrl)
	s.handler = NewUserHandler(s.userService, s.auditService)
	s.echo = newTestEcho()
	s.userID = uuid.New()
}

func (s *UserHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *UserHandlerSuite) TestGetMe() {
	s.userService.EXPECT().GetProfile(gomock.Any(), s.userID).
		Return(&models.User{ID: s.userID, Email: "ada@example.com", Currency: "EUR"}, nil)

	c, rec := newTestContext(s.echo, http.MethodGet, "/api/v1/me", nil, s.userID)
	s.NoError(s.handler.GetMe(c))

	s.Equal(http.StatusOK, rec.Code)
	var resp models.User
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("ada@example.com", resp.Email)
}

func (s *UserHandlerSuite) TestUpdateMe() {
	currency := "USD"
	s.userService.EXPECT().UpdateProfile(gomock.Any(), s.userID, &dto.UpdateProfileRequest{Currency: &currency}).
		Return(&models.User{ID: s.userID, Currency: currency}, nil)

	c, rec := newTestContext(s.echo, http.MethodPatch, "/api/v1/me", dto.UpdateProfileRequest{Currency: &currency}, s.userID)
	s.NoError(s.handler.UpdateMe(c))

	s.Equal(http.StatusOK, rec.Code)
}

func (s *UserHandlerSuite) TestUpdateMe_InvalidCurrency() {
	currency := "euro"

	c, rec := newTestContext(s.echo, http.MethodPatch, "/api/v1/me", dto.UpdateProfileRequest{Currency: &currency}, s.userID)
	s.NoError(s.handler.UpdateMe(c))

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(decodeError(rec).Error.Details[0], "currency")
}

func (s *UserHandlerSuite) TestGetActivity() {
	entries := []*models.AuditLog{{ID: uuid.New(), Action: models.AuditActionWizardApplied}}
	s.auditService.EXPECT().GetActivity(gomock.Any(), s.userID, 50, 50).Return(entries, int64(51), nil)

	c, rec := newTestContext(s.echo, http.MethodGet, "/api/v1/me/activity?page=2&limit=50", nil, s.userID)
	s.NoError(s.handler.GetActivity(c))

	s.Equal(http.StatusOK, rec.Code)
	var resp dto.ActivityResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Len(resp.Entries, 1)
	s.Equal(2, resp.Pagination.TotalPages)
}
