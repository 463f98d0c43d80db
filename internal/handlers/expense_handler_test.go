package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"
	"finance-tracker/internal/services"
	"finance-tracker/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ExpenseHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *service_mocks.MockExpenseServiceInterface
	handler     *ExpenseHandler
	echo        *echo.Echo
	userID      uuid.UUID
}

func TestExpenseHandlerSuite(t *testing.T) {
	suite.Run(t, new(ExpenseHandlerSuite))
}

func (s *ExpenseHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = service_mocks.NewMockExpenseServiceInterface(s.ctrl)
	s.handler = NewExpenseHandler(s.mockService)
	s.echo = newTestEcho()
	s.userID = uuid.New()
}

func (s *ExpenseHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ExpenseHandlerSuite) TestCreateExpense() {
	body := dto.CreateExpenseRequest{Amount: "12.50", Merchant: "Lidl", Date: "2025-03-04"}
	expense := &models.Expense{ID: uuid.New(), UserID: s.userID, Amount: decimal.RequireFromString("12.50")}

	s.mockService.EXPECT().
		Create(gomock.Any(), s.userID, gomock.Any(), models.ExpenseSourceManual).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, req *dto.CreateExpenseRequest, _ string) (*models.Expense, error) {
			s.Equal("12.50", req.Amount)
			s.Equal("Lidl", req.Merchant)
			return expense, nil
		})

	c, rec := newTestContext(s.echo, http.MethodPost, "/api/v1/expenses", body, s.userID)
	s.NoError(s.handler.CreateExpense(c))

	s.Equal(http.StatusCreated, rec.Code)
	var resp models.Expense
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(expense.ID, resp.ID)
}

func (s *ExpenseHandlerSuite) TestCreateExpense_ValidationErrors() {
	body := dto.CreateExpenseRequest{Amount: "-3", Date: "04/03/2025"}

	c, rec := newTestContext(s.echo, http.MethodPost, "/api/v1/expenses", body, s.userID)
	s.NoError(s.handler.CreateExpense(c))

	s.Equal(http.StatusBadRequest, rec.Code)
	resp := decodeError(rec)
	s.Equal("VALIDATION_001", resp.Error.Code)
	s.Len(resp.Error.Details, 2)
	s.Equal("test-trace-id", resp.Error.TraceID)
}

func (s *ExpenseHandlerSuite) TestCreateExpense_MalformedBody() {
	c, rec := newTestContext(s.echo, http.MethodPost, "/api/v1/expenses", `{"amount":`, s.userID)
	s.NoError(s.handler.CreateExpense(c))

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(decodeError(rec).Error.Details, "Invalid request body")
}

func (s *ExpenseHandlerSuite) TestCreateExpense_Unauthenticated() {
	c, rec := newTestContext(s.echo, http.MethodPost, "/api/v1/expenses", dto.CreateExpenseRequest{}, uuid.Nil)
	s.NoError(s.handler.CreateExpense(c))

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("AUTH_001", decodeError(rec).Error.Code)
}

func (s *ExpenseHandlerSuite) TestCreateExpense_UnknownCategory() {
	categoryID := uuid.NewString()
	body := dto.CreateExpenseRequest{Amount: "9.99", Date: "2025-03-04", CategoryID: &categoryID}

	s.mockService.EXPECT().
		Create(gomock.Any(), s.userID, gomock.Any(), models.ExpenseSourceManual).
		Return(nil, repositories.ErrCategoryNotFound)

	c, rec := newTestContext(s.echo, http.MethodPost, "/api/v1/expenses", body, s.userID)
	s.NoError(s.handler.CreateExpense(c))

	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("CATEGORY_001", decodeError(rec).Error.Code)
}

func (s *ExpenseHandlerSuite) TestListExpenses_Filters() {
	categoryID := uuid.New()
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

	s.mockService.EXPECT().
		List(gomock.Any(), s.userID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, filters models.ExpenseFilters) ([]models.Expense, int64, error) {
			s.Equal(from, *filters.From)
			s.Equal(to, *filters.To)
			s.Equal(categoryID, *filters.CategoryID)
			s.Equal(10, filters.Offset)
			s.Equal(5, filters.Limit)
			return []models.Expense{{ID: uuid.New()}}, 11, nil
		})

	path := "/api/v1/expenses?from=2025-01-01&to=2025-01-31&category_id=" + categoryID.String() + "&page=3&limit=5"
	c, rec := newTestContext(s.echo, http.MethodGet, path, nil, s.userID)
	s.NoError(s.handler.ListExpenses(c))

	s.Equal(http.StatusOK, rec.Code)
	var resp dto.ExpenseListResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Len(resp.Expenses, 1)
	s.Equal(dto.PaginationInfo{Page: 3, Limit: 5, Total: 11, TotalPages: 3}, resp.Pagination)
}

func (s *ExpenseHandlerSuite) TestListExpenses_Defaults() {
	s.mockService.EXPECT().
		List(gomock.Any(), s.userID, models.ExpenseFilters{Offset: 0, Limit: dto.DefaultPageSize}).
		Return(nil, int64(0), nil)

	c, rec := newTestContext(s.echo, http.MethodGet, "/api/v1/expenses", nil, s.userID)
	s.NoError(s.handler.ListExpenses(c))

	s.Equal(http.StatusOK, rec.Code)
}

func (s *ExpenseHandlerSuite) TestListExpenses_InvalidQuery() {
	c, rec := newTestContext(s.echo, http.MethodGet, "/api/v1/expenses?limit=500&from=yesterday", nil, s.userID)
	s.NoError(s.handler.ListExpenses(c))

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Len(decodeError(rec).Error.Details, 2)
}

func (s *ExpenseHandlerSuite) TestListExpenses_InvertedRange() {
	s.mockService.EXPECT().
		List(gomock.Any(), s.userID, gomock.Any()).
		Return(nil, int64(0), models.ErrInvalidDateRange)

	c, rec := newTestContext(s.echo, http.MethodGet, "/api/v1/expenses?from=2025-02-01&to=2025-01-01", nil, s.userID)
	s.NoError(s.handler.ListExpenses(c))

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_006", decodeError(rec).Error.Code)
}

func (s *ExpenseHandlerSuite) TestGetExpense() {
	id := uuid.New()
	s.mockService.EXPECT().Get(gomock.Any(), s.userID, id).Return(&models.Expense{ID: id}, nil)

	c, rec := newTestContext(s.echo, http.MethodGet, "/api/v1/expenses/"+id.String(), nil, s.userID)
	s.NoError(s.handler.GetExpense(withParams(c, "id", id.String())))

	s.Equal(http.StatusOK, rec.Code)
}

func (s *ExpenseHandlerSuite) TestGetExpense_InvalidID() {
	c, rec := newTestContext(s.echo, http.MethodGet, "/api/v1/expenses/abc", nil, s.userID)
	s.NoError(s.handler.GetExpense(withParams(c, "id", "abc")))

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_007", decodeError(rec).Error.Code)
}

func (s *ExpenseHandlerSuite) TestGetExpense_NotFound() {
	id := uuid.New()
	s.mockService.EXPECT().Get(gomock.Any(), s.userID, id).Return(nil, repositories.ErrExpenseNotFound)

	c, rec := newTestContext(s.echo, http.MethodGet, "/api/v1/expenses/"+id.String(), nil, s.userID)
	s.NoError(s.handler.GetExpense(withParams(c, "id", id.String())))

	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("EXPENSE_001", decodeError(rec).Error.Code)
}

func (s *ExpenseHandlerSuite) TestUpdateExpense() {
	id := uuid.New()
	body := dto.UpdateExpenseRequest{Amount: "20.00", Date: "2025-03-05"}
	s.mockService.EXPECT().Update(gomock.Any(), s.userID, id, gomock.Any()).Return(&models.Expense{ID: id}, nil)

	c, rec := newTestContext(s.echo, http.MethodPut, "/api/v1/expenses/"+id.String(), body, s.userID)
	s.NoError(s.handler.UpdateExpense(withParams(c, "id", id.String())))

	s.Equal(http.StatusOK, rec.Code)
}

func (s *ExpenseHandlerSuite) TestUpdateExpense_InvalidInput() {
	id := uuid.New()
	body := dto.UpdateExpenseRequest{Amount: "20.00", Date: "2025-03-05"}
	s.mockService.EXPECT().Update(gomock.Any(), s.userID, id, gomock.Any()).
		Return(nil, services.ErrCategoryTypeMismatch)

	c, rec := newTestContext(s.echo, http.MethodPut, "/api/v1/expenses/"+id.String(), body, s.userID)
	s.NoError(s.handler.UpdateExpense(withParams(c, "id", id.String())))

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_001", decodeError(rec).Error.Code)
}

func (s *ExpenseHandlerSuite) TestDeleteExpense() {
	id := uuid.New()
	s.mockService.EXPECT().Delete(gomock.Any(), s.userID, id).Return(nil)

	c, rec := newTestContext(s.echo, http.MethodDelete, "/api/v1/expenses/"+id.String(), nil, s.userID)
	s.NoError(s.handler.DeleteExpense(withParams(c, "id", id.String())))

	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *ExpenseHandlerSuite) TestDeleteExpense_SystemError() {
	id := uuid.New()
	s.mockService.EXPECT().Delete(gomock.Any(), s.userID, id).Return(errTestDatabase)

	c, rec := newTestContext(s.echo, http.MethodDelete, "/api/v1/expenses/"+id.String(), nil, s.userID)
	s.NoError(s.handler.DeleteExpense(withParams(c, "id", id.String())))

	s.Equal(http.StatusInternalServerError, rec.Code)
	resp := decodeError(rec)
	s.Equal("SYSTEM_001", resp.Error.Code)
	s.NotContains(rec.Body.String(), errTestDatabase.Error())
}
