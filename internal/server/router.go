package server

import (
	"log/slog"
	"net/http"

	"finance-tracker/internal/config"
	"finance-tracker/internal/handlers"
	"finance-tracker/internal/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const bodyLimit = "1M"

// NewRouter builds the echo instance with middleware and every route.
func NewRouter(cfg *config.Config, svc *Services, db handlers.Pinger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Validator = handlers.NewValidator()

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(requestLogger())
	e.Use(middleware.RequestMetrics())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization, middleware.APIKeyHeader, middleware.TraceIDHeader},
	}))
	e.Use(echomw.BodyLimit(bodyLimit))
	e.Use(middleware.RateLimiter(float64(cfg.Security.RateLimitPerSecond), cfg.Security.RateLimitBurst))

	healthHandler := handlers.NewHealthCheckHandler(db)
	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	registerRoutes(e.Group("/api/v1"), cfg, svc)

	return e
}

func registerRoutes(api *echo.Group, cfg *config.Config, svc *Services) {
	userHandler := handlers.NewUserHandler(svc.Users, svc.Audit)
	categoryHandler := handlers.NewCategoryHandler(svc.Categories)
	expenseHandler := handlers.NewExpenseHandler(svc.Expenses)
	incomeHandler := handlers.NewIncomeHandler(svc.Incomes)
	goalHandler := handlers.NewGoalHandler(svc.Goals)
	budgetHandler := handlers.NewBudgetHandler(svc.Budgets)
	wizardHandler := handlers.NewBudgetWizardHandler(svc.Insights, svc.Wizard)
	integrationHandler := handlers.NewIntegrationHandler(svc.Integration)

	// API key routes sit outside the bearer group
	ingest := api.Group("/integration", middleware.RequireAPIKey(svc.Integration))
	ingest.POST("/shortcut/expenses", integrationHandler.IngestShortcut)
	ingest.POST("/email/expenses", integrationHandler.IngestEmail)

	authed := api.Group("", middleware.RequireAuth(svc.Tokens, svc.Users))

	authed.GET("/me", userHandler.GetMe)
	authed.PATCH("/me", userHandler.UpdateMe)
	authed.GET("/me/activity", userHandler.GetActivity)

	authed.GET("/categories", categoryHandler.ListCategories)
	authed.POST("/categories", categoryHandler.CreateCategory)
	authed.PUT("/categories/:id", categoryHandler.UpdateCategory)
	authed.DELETE("/categories/:id", categoryHandler.DeleteCategory)

	authed.GET("/expenses", expenseHandler.ListExpenses)
	authed.POST("/expenses", expenseHandler.CreateExpense)
	authed.GET("/expenses/:id", expenseHandler.GetExpense)
	authed.PUT("/expenses/:id", expenseHandler.UpdateExpense)
	authed.DELETE("/expenses/:id", expenseHandler.DeleteExpense)

	authed.GET("/incomes", incomeHandler.ListIncomes)
	authed.POST("/incomes", incomeHandler.CreateIncome)
	authed.PUT("/incomes/:id", incomeHandler.UpdateIncome)
	authed.DELETE("/incomes/:id", incomeHandler.DeleteIncome)

	authed.GET("/goals", goalHandler.ListGoals)
	authed.POST("/goals", goalHandler.CreateGoal)
	authed.GET("/goals/:id", goalHandler.GetGoal)
	authed.PUT("/goals/:id", goalHandler.UpdateGoal)
	authed.DELETE("/goals/:id", goalHandler.DeleteGoal)
	authed.POST("/goals/:id/entries", goalHandler.AddEntry)
	authed.DELETE("/goals/:id/entries/:entryId", goalHandler.DeleteEntry)

	authed.GET("/budgets", budgetHandler.ListBudgets)
	authed.POST("/budgets", budgetHandler.CreateBudget)
	authed.PUT("/budgets/:id", budgetHandler.UpdateBudget)
	authed.DELETE("/budgets/:id", budgetHandler.DeleteBudget)

	authed.GET("/insights/spending", wizardHandler.GetSpendingInsights)
	authed.GET("/budget-wizard", wizardHandler.GetState)
	authed.POST("/budget-wizard/conflicts", wizardHandler.PreviewConflicts)
	authed.POST("/budget-wizard/apply", wizardHandler.Apply)

	authed.GET("/integration/keys", integrationHandler.ListKeys)
	authed.POST("/integration/keys", integrationHandler.CreateKey)
	authed.DELETE("/integration/keys/:id", integrationHandler.RevokeKey)

	if cfg.IsDevelopment() {
		devHandler := handlers.NewDevHandler(svc.Seed)
		authed.POST("/dev/seed", devHandler.SeedCurrentUser)
	}
}

func requestLogger() echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"remote_ip", v.RemoteIP,
				"trace_id", middleware.GetTraceID(c),
			}
			if v.Error != nil {
				slog.WarnContext(c.Request().Context(), "request failed", append(attrs, "error", v.Error.Error())...)
				return nil
			}
			slog.InfoContext(c.Request().Context(), "request", attrs...)
			return nil
		},
	})
}
