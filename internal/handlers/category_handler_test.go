package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"
	"finance-tracker/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type CategoryHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *service_mocks.MockCategoryServiceInterface
	handler     *CategoryHandler
	echo        *echo.Echo
	userID      uuid.UUID
}

func TestCategoryHandlerSuite(t *testing.T) {
	suite.Run(t, new(CategoryHandlerSuite))
}

func (s *CategoryHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = service_mocks.NewMockCategoryServiceInterface(s.ctrl)
	s.handler = NewCategoryHandler(s.mockService)
	s.echo = newTestEcho()
	s.userID = uuid.New()
}

func (s *CategoryHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CategoryHandlerSuite) TestListCategories_ByType() {
	s.mockService.EXPECT().List(gomock.Any(), s.userID, models.CategoryTypeIncome).
		Return([]models.Category{{ID: uuid.New(), Name: "Salary", Type: models.CategoryTypeIncome}}, nil)

	c, rec := newTestContext(s.echo, http.MethodGet, "/api/v1/categories?type=income", nil, s.userID)
	s.NoError(s.handler.ListCategories(c))

	s.Equal(http.StatusOK, rec.Code)
	var resp dto.CategoryListResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Require().Len(resp.Categories, 1)
	s.Equal("Salary", resp.Categories[0].Name)
}

func (s *CategoryHandlerSuite) TestListCategories_UnknownType() {
	c, rec := newTestContext(s.echo, http.MethodGet, "/api/v1/categories?type=transfer", nil, s.userID)
	s.NoError(s.handler.ListCategories(c))

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *CategoryHandlerSuite) TestCreateCategory() {
	body := dto.CreateCategoryRequest{Name: "Pets", Color: "#aabbcc"}
	s.mockService.EXPECT().Create(gomock.Any(), s.userID, &body).
		Return(&models.Category{ID: uuid.New(), Name: "Pets"}, nil)

	c, rec := newTestContext(s.echo, http.MethodPost, "/api/v1/categories", body, s.userID)
	s.NoError(s.handler.CreateCategory(c))

	s.Equal(http.StatusCreated, rec.Code)
}

func (s *CategoryHandlerSuite) TestCreateCategory_Duplicate() {
	body := dto.CreateCategoryRequest{Name: "Groceries"}
	s.mockService.EXPECT().Create(gomock.Any(), s.userID, gomock.Any()).Return(nil, repositories.ErrCategoryAlreadyExists)

	c, rec := newTestContext(s.echo, http.MethodPost, "/api/v1/categories", body, s.userID)
	s.NoError(s.handler.CreateCategory(c))

	s.Equal(http.StatusConflict, rec.Code)
	s.Equal("CATEGORY_002", decodeError(rec).Error.Code)
}

func (s *CategoryHandlerSuite) TestCreateCategory_BadColor() {
	c, rec := newTestContext(s.echo, http.MethodPost, "/api/v1/categories", dto.CreateCategoryRequest{Name: "Pets", Color: "blue"}, s.userID)
	s.NoError(s.handler.CreateCategory(c))

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(decodeError(rec).Error.Details[0], "color")
}

func (s *CategoryHandlerSuite) TestUpdateCategory() {
	id := uuid.New()
	name := "Food"
	s.mockService.EXPECT().Update(gomock.Any(), s.userID, id, &dto.UpdateCategoryRequest{Name: &name}).
		Return(&models.Category{ID: id, Name: name}, nil)

	c, rec := newTestContext(s.echo, http.MethodPut, "/", dto.UpdateCategoryRequest{Name: &name}, s.userID)
	s.NoError(s.handler.UpdateCategory(withParams(c, "id", id.String())))

	s.Equal(http.StatusOK, rec.Code)
}

func (s *CategoryHandlerSuite) TestDeleteCategory_NotFound() {
	id := uuid.New()
	s.mockService.EXPECT().Delete(gomock.Any(), s.userID, id).Return(repositories.ErrCategoryNotFound)

	c, rec := newTestContext(s.echo, http.MethodDelete, "/", nil, s.userID)
	s.NoError(s.handler.DeleteCategory(withParams(c, "id", id.String())))

	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *CategoryHandlerSuite) TestDeleteCategory() {
	id := uuid.New()
	s.mockService.EXPECT().Delete(gomock.Any(), s.userID, id).Return(nil)

	c, rec := newTestContext(s.echo, http.MethodDelete, "/", nil, s.userID)
	s.NoError(s.handler.DeleteCategory(withParams(c, "id", id.String())))

	s.Equal(http.StatusNoContent, rec.Code)
}
