package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/models"
	"finance-tracker/internal/services"
	"finance-tracker/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type BudgetWizardHandlerSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	insights *service_mocks.MockInsightServiceInterface
	wizard   *service_mocks.MockBudgetWizardServiceInterface
	handler  *BudgetWizardHandler
	echo     *echo.Echo
	userID   uuid.UUID
	now      time.Time
}

func TestBudgetWizardHandlerSuite(t *testing.T) {
	suite.Run(t, new(BudgetWizardHandlerSuite))
}

func (s *BudgetWizardHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.insights = service_mocks.NewMockInsightServiceInterface(s.ctrl)
	s.wizard = service_mocks.NewMockBudgetWizardServiceInterface(s.ctrl)
	s.handler = NewBudgetWizardHandler(s.insights, s.wizard)
	s.now = time.Date(2025, 4, 5, 9, 0, 0, 0, time.UTC)
	s.handler.now = func() time.Time { return s.now }
	s.echo = newTestEcho()
	s.userID = uuid.New()
}

func (s *BudgetWizardHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *BudgetWizardHandlerSuite) applyRequest() dto.ApplyWizardRequest {
	return dto.ApplyWizardRequest{
		PeriodStart: "2025-04-01",
		PeriodEnd:   "2025-04-30",
		Allocations: []dto.AllocationRequest{
			{CategoryID: uuid.NewString(), Percentage: "50"},
			{CategoryID: uuid.NewString(), Percentage: "30.5"},
		},
		Decisions: []dto.ConflictDecision{
			{ExistingBudgetID: uuid.NewString(), Action: "replace"},
		},
	}
}

func (s *BudgetWizardHandlerSuite) TestGetSpendingInsights() {
	insights := &models.SpendingInsights{
		LastMonthTotal: decimal.NewFromInt(390),
		QuarterAverage: decimal.NewFromInt(250),
	}
	s.insights.EXPECT().SpendingInsights(gomock.Any(), s.userID, s.now).Return(insights, nil)

	c, rec := newTestContext(s.echo, http.MethodGet, "/api/v1/insights/spending", nil, s.userID)
	s.NoError(s.handler.GetSpendingInsights(c))

	s.Equal(http.StatusOK, rec.Code)
	var resp models.SpendingInsights
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.True(resp.LastMonthTotal.Equal(decimal.NewFromInt(390)))
}

func (s *BudgetWizardHandlerSuite) TestGetState() {
	state := &dto.WizardStateResponse{
		Eligibility:    models.WizardEligibility{Eligible: true, WithinDateWindow: true, HasIncomeThisMonth: true, HasEligibleCats: true},
		AvailableFunds: decimal.NewFromInt(3000),
	}
	s.wizard.EXPECT().State(gomock.Any(), s.userID, s.now).Return(state, nil)

	c, rec := newTestContext(s.echo, http.MethodGet, "/api/v1/budget-wizard", nil, s.userID)
	s.NoError(s.handler.GetState(c))

	s.Equal(http.StatusOK, rec.Code)
	var resp dto.WizardStateResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.True(resp.Eligibility.Eligible)
	s.True(resp.AvailableFunds.Equal(decimal.NewFromInt(3000)))
}

func (s *BudgetWizardHandlerSuite) TestPreviewConflicts() {
	req := dto.WizardConflictsRequest{
		PeriodStart: "2025-01-15",
		PeriodEnd:   "2025-02-15",
		Allocations: []dto.AllocationRequest{{CategoryID: uuid.NewString(), Percentage: "40"}},
	}
	conflict := models.BudgetConflict{ExistingBudgetID: uuid.New(), Action: models.ConflictActionReplace}
	s.wizard.EXPECT().Conflicts(gomock.Any(), s.userID, &req).Return([]models.BudgetConflict{conflict}, nil)

	c, rec := newTestContext(s.echo, http.MethodPost, "/api/v1/budget-wizard/conflicts", req, s.userID)
	s.NoError(s.handler.PreviewConflicts(c))

	s.Equal(http.StatusOK, rec.Code)
	var resp dto.WizardConflictsResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Require().Len(resp.Conflicts, 1)
	s.Equal(models.ConflictActionReplace, resp.Conflicts[0].Action)
}

func (s *BudgetWizardHandlerSuite) TestPreviewConflicts_RejectsBadPercentage() {
	req := dto.WizardConflictsRequest{
		PeriodStart: "2025-01-15",
		PeriodEnd:   "2025-02-15",
		Allocations: []dto.AllocationRequest{{CategoryID: uuid.NewString(), Percentage: "140"}},
	}

	c, rec := newTestContext(s.echo, http.MethodPost, "/api/v1/budget-wizard/conflicts", req, s.userID)
	s.NoError(s.handler.PreviewConflicts(c))

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *BudgetWizardHandlerSuite) TestPreviewConflicts_OverAllocated() {
	req := dto.WizardConflictsRequest{
		PeriodStart: "2025-01-01",
		PeriodEnd:   "2025-01-31",
		Allocations: []dto.AllocationRequest{
			{CategoryID: uuid.NewString(), Percentage: "60"},
			{CategoryID: uuid.NewString(), Percentage: "60"},
		},
	}
	s.wizard.EXPECT().Conflicts(gomock.Any(), s.userID, gomock.Any()).Return(nil, services.ErrAllocationExceeded)

	c, rec := newTestContext(s.echo, http.MethodPost, "/api/v1/budget-wizard/conflicts", req, s.userID)
	s.NoError(s.handler.PreviewConflicts(c))

	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Equal("BUDGET_004", decodeError(rec).Error.Code)
}

func (s *BudgetWizardHandlerSuite) TestApply() {
	req := s.applyRequest()
	result := &dto.ApplyWizardResponse{
		Created: []models.Budget{{ID: uuid.New()}, {ID: uuid.New()}},
		Deleted: []uuid.UUID{uuid.New()},
	}
	s.wizard.EXPECT().
		Apply(gomock.Any(), s.userID, gomock.Any(), s.now, gomock.Any(), "handler-test").
		DoAndReturn(func(_ context.Context, _ uuid.UUID, got *dto.ApplyWizardRequest, _ time.Time, _, _ string) (*dto.ApplyWizardResponse, error) {
			s.Equal(req, *got)
			return result, nil
		})

	c, rec := newTestContext(s.echo, http.MethodPost, "/api/v1/budget-wizard/apply", req, s.userID)
	s.NoError(s.handler.Apply(c))

	s.Equal(http.StatusCreated, rec.Code)
	var resp dto.ApplyWizardResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Len(resp.Created, 2)
	s.Len(resp.Deleted, 1)
}

func (s *BudgetWizardHandlerSuite) TestApply_InvalidDecision() {
	req := s.applyRequest()
	req.Decisions[0].Action = "merge"

	c, rec := newTestContext(s.echo, http.MethodPost, "/api/v1/budget-wizard/apply", req, s.userID)
	s.NoError(s.handler.Apply(c))

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *BudgetWizardHandlerSuite) TestApply_ServiceErrors() {
	testCases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"no income", services.ErrWizardNotEligible, http.StatusUnprocessableEntity, "BUDGET_003"},
		{"inverted period", services.ErrInvalidPeriod, http.StatusBadRequest, "BUDGET_002"},
		{"duplicate category", services.ErrDuplicateAllocation, http.StatusBadRequest, "VALIDATION_001"},
		{"transaction failed", errTestDatabase, http.StatusInternalServerError, "SYSTEM_001"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.wizard.EXPECT().
				Apply(gomock.Any(), s.userID, gomock.Any(), s.now, gomock.Any(), gomock.Any()).
				Return(nil, tc.err)

			c, rec := newTestContext(s.echo, http.MethodPost, "/api/v1/budget-wizard/apply", s.applyRequest(), s.userID)
			s.NoError(s.handler.Apply(c))

			s.Equal(tc.status, rec.Code)
			s.Equal(tc.code, decodeError(rec).Error.Code)
		})
	}
}
