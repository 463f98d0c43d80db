package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"finance-tracker/internal/config"
	"finance-tracker/internal/handlers"
	"finance-tracker/internal/models"
	"finance-tracker/internal/services"
	"finance-tracker/internal/services/service_mocks"

	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestAuthMiddleware(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareSuite))
}

type AuthMiddlewareSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	jwtConfig          *config.JWTConfig
	tokenService       services.TokenServiceInterface
	mockUserService    *service_mocks.MockUserServiceInterface
	mockIntegrationSvc *service_mocks.MockIntegrationServiceInterface
	e                  *echo.Echo
}

func (s *AuthMiddlewareSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.jwtConfig = s.newJWTConfig()
	s.tokenService = services.NewTokenService(s.jwtConfig)
	s.mockUserService = service_mocks.NewMockUserServiceInterface(s.ctrl)
	s.mockIntegrationSvc = service_mocks.NewMockIntegrationServiceInterface(s.ctrl)
	s.e = echo.New()
}

// TearDownTest runs after each test in the suite
func (s *AuthMiddlewareSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AuthMiddlewareSuite) newJWTConfig() *config.JWTConfig {
	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	return &config.JWTConfig{
		PrivateKey:  privateKey,
		PublicKey:   publicKey,
		Issuer:      "test-issuer",
		Audience:    "finance-tracker",
		DevTokenTTL: time.Hour,
	}
}

func (s *AuthMiddlewareSuite) okHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *AuthMiddlewareSuite) do(mw echo.MiddlewareFunc, header, value string, next echo.HandlerFunc) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if value != "" {
		req.Header.Set(header, value)
	}
	rec := httptest.NewRecorder()

	// SendError writes the response and returns nil
	s.NoError(mw(next)(s.e.NewContext(req, rec)))
	return rec
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ValidToken() {
	user := &models.User{ID: uuid.New(), Email: "test@example.com"}
	token, _, err := s.tokenService.GenerateDevToken(user.ID, user.Email, time.Hour)
	s.Require().NoError(err)

	s.mockUserService.EXPECT().EnsureUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, claims *models.CustomClaims) (*models.User, error) {
			s.Equal(user.ID.String(), claims.Subject)
			s.Equal(user.Email, claims.Email)
			return user, nil
		})

	rec := s.do(RequireAuth(s.tokenService, s.mockUserService), "Authorization", "Bearer "+token, func(c echo.Context) error {
		s.Equal(user.ID, c.Get(handlers.UserIDContextKey))
		s.Equal(user.Email, c.Get(handlers.UserEmailContextKey))
		s.Equal(user, c.Get(handlers.UserContextKey))
		return s.okHandler(c)
	})

	s.Equal(http.StatusOK, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_MissingAuthorizationHeader() {
	rec := s.do(RequireAuth(s.tokenService, s.mockUserService), "Authorization", "", s.okHandler)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_001")
}

func (s *AuthMiddlewareSuite) TestRequireAuth_InvalidTokenFormat() {
	rec := s.do(RequireAuth(s.tokenService, s.mockUserService), "Authorization", "InvalidToken", s.okHandler)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_003")
}

func (s *AuthMiddlewareSuite) TestRequireAuth_MalformedJWT() {
	rec := s.do(RequireAuth(s.tokenService, s.mockUserService), "Authorization", "Bearer invalid.jwt.token", s.okHandler)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_003")
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ExpiredToken() {
	past := time.Now().Add(-2 * time.Hour)
	claims := models.CustomClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.jwtConfig.Issuer,
			Subject:   uuid.NewString(),
			Audience:  jwt.ClaimStrings{s.jwtConfig.Audience},
			IssuedAt:  jwt.NewNumericDate(past),
			ExpiresAt: jwt.NewNumericDate(past.Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(s.jwtConfig.PrivateKey)
	s.Require().NoError(err)

	rec := s.do(RequireAuth(s.tokenService, s.mockUserService), "Authorization", "Bearer "+token, s.okHandler)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_002")
}

func (s *AuthMiddlewareSuite) TestRequireAuth_TokenSignedWithDifferentKey() {
	other := services.NewTokenService(s.newJWTConfig())
	token, _, err := other.GenerateDevToken(uuid.New(), "test@example.com", time.Hour)
	s.Require().NoError(err)

	rec := s.do(RequireAuth(s.tokenService, s.mockUserService), "Authorization", "Bearer "+token, s.okHandler)

	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_InvalidSubject() {
	token, _, err := s.tokenService.GenerateDevToken(uuid.New(), "", time.Hour)
	s.Require().NoError(err)

	s.mockUserService.EXPECT().EnsureUser(gomock.Any(), gomock.Any()).Return(nil, services.ErrInvalidSubject)

	rec := s.do(RequireAuth(s.tokenService, s.mockUserService), "Authorization", "Bearer "+token, s.okHandler)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "Invalid user ID in token")
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ProvisioningFailure() {
	token, _, err := s.tokenService.GenerateDevToken(uuid.New(), "test@example.com", time.Hour)
	s.Require().NoError(err)

	s.mockUserService.EXPECT().EnsureUser(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))

	rec := s.do(RequireAuth(s.tokenService, s.mockUserService), "Authorization", "Bearer "+token, s.okHandler)

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.NotContains(rec.Body.String(), "connection refused")
}

func (s *AuthMiddlewareSuite) TestRequireAPIKey_Valid() {
	key := &models.APIKey{ID: uuid.New(), UserID: uuid.New()}
	s.mockIntegrationSvc.EXPECT().Authenticate(gomock.Any(), "ftk_secret").Return(key, nil)

	rec := s.do(RequireAPIKey(s.mockIntegrationSvc), APIKeyHeader, " ftk_secret ", func(c echo.Context) error {
		s.Equal(key.UserID, c.Get(handlers.UserIDContextKey))
		s.Equal(key.ID, c.Get(handlers.APIKeyIDContextKey))
		return s.okHandler(c)
	})

	s.Equal(http.StatusOK, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAPIKey_Failures() {
	testCases := []struct {
		name         string
		header       string
		authErr      error
		expectedCode int
		errorCode    string
	}{
		{"missing header", "", nil, http.StatusUnauthorized, "AUTH_005"},
		{"unknown key", "ftk_unknown", services.ErrInvalidAPIKey, http.StatusUnauthorized, "AUTH_006"},
		{"revoked key", "ftk_revoked", services.ErrAPIKeyRevoked, http.StatusUnauthorized, "INTEGRATION_003"},
		{"repository failure", "ftk_any", errors.New("db down"), http.StatusInternalServerError, "SYSTEM_001"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			if tc.authErr != nil {
				s.mockIntegrationSvc.EXPECT().Authenticate(gomock.Any(), tc.header).Return(nil, tc.authErr)
			}

			rec := s.do(RequireAPIKey(s.mockIntegrationSvc), APIKeyHeader, tc.header, s.okHandler)

			s.Equal(tc.expectedCode, rec.Code)
			s.Contains(rec.Body.String(), tc.errorCode)
		})
	}
}
