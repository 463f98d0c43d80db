package server

import (
	"log/slog"
	"time"

	"finance-tracker/internal/config"
	"finance-tracker/internal/events"
	"finance-tracker/internal/repositories"
	"finance-tracker/internal/services"

	"gorm.io/gorm"
)

// Repositories groups the gorm-backed stores.
type Repositories struct {
	Users      repositories.UserRepositoryInterface
	Categories repositories.CategoryRepositoryInterface
	Expenses   repositories.ExpenseRepositoryInterface
	Incomes    repositories.IncomeRepositoryInterface
	Goals      repositories.GoalRepositoryInterface
	Budgets    repositories.BudgetRepositoryInterface
	APIKeys    repositories.APIKeyRepositoryInterface
	AuditLogs  repositories.AuditLogRepositoryInterface
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Users:      repositories.NewUserRepository(db),
		Categories: repositories.NewCategoryRepository(db),
		Expenses:   repositories.NewExpenseRepository(db),
		Incomes:    repositories.NewIncomeRepository(db),
		Goals:      repositories.NewGoalRepository(db),
		Budgets:    repositories.NewBudgetRepository(db),
		APIKeys:    repositories.NewAPIKeyRepository(db),
		AuditLogs:  repositories.NewAuditLogRepository(db),
	}
}

// Services is everything the HTTP layer and the CLI call into.
type Services struct {
	Users       services.UserServiceInterface
	Categories  services.CategoryServiceInterface
	Expenses    services.ExpenseServiceInterface
	Incomes     services.IncomeServiceInterface
	Goals       services.GoalServiceInterface
	Budgets     services.BudgetServiceInterface
	Insights    services.InsightServiceInterface
	Wizard      services.BudgetWizardServiceInterface
	Integration services.IntegrationServiceInterface
	Audit       services.AuditServiceInterface
	Tokens      services.TokenServiceInterface
	Seed        services.SeedServiceInterface
}

// NewServices builds the service graph on top of repos. A nil publisher
// disables event publishing.
func NewServices(
	cfg *config.Config,
	repos *Repositories,
	publisher events.Publisher,
	metrics services.MetricsRecorderInterface,
	logger *slog.Logger,
) *Services {
	if publisher == nil {
		publisher = events.NewNoopPublisher()
	}

	auditLogger := services.NewAuditLogger(logger)
	auditService := services.NewAuditService(repos.AuditLogs)

	categoryService := services.NewCategoryService(repos.Categories, nil, cfg.Wizard.DefaultCategories)
	userService := services.NewUserService(repos.Users, categoryService, auditLogger, metrics)
	expenseService := services.NewExpenseService(repos.Expenses, repos.Categories, publisher, auditLogger, metrics)
	incomeService := services.NewIncomeService(repos.Incomes, repos.Categories)
	insightService := services.NewInsightService(repos.Expenses, metrics)

	return &Services{
		Users:      userService,
		Categories: categoryService,
		Expenses:   expenseService,
		Incomes:    incomeService,
		Goals: services.NewGoalService(
			repos.Goals, repos.Categories, repos.Budgets,
			auditService, auditLogger, publisher, metrics,
		),
		Budgets:  services.NewBudgetService(repos.Budgets, repos.Categories, repos.Expenses),
		Insights: insightService,
		Wizard: services.NewBudgetWizardService(
			services.NewWizardRules(cfg.Wizard),
			repos.Categories, repos.Budgets,
			incomeService, insightService,
			auditService, auditLogger, publisher, metrics,
		),
		Integration: services.NewIntegrationService(
			repos.APIKeys, expenseService, categoryService,
			auditService, auditLogger, metrics,
		),
		Audit:  auditService,
		Tokens: services.NewTokenService(&cfg.JWT),
		Seed: services.NewSeedService(
			userService, repos.Categories, repos.Expenses, repos.Incomes, repos.Goals,
			services.NewExpenseGenerator(uint64(time.Now().UnixNano())),
		),
	}
}

// NewPublisher connects to the configured broker, or returns a publisher
// that drops events when none is configured.
func NewPublisher(cfg config.IntegrationConfig, logger *slog.Logger) (events.Publisher, error) {
	if !cfg.PublishingEnabled() {
		logger.Info("event publishing disabled")
		return events.NewNoopPublisher(), nil
	}

	publisher, err := events.NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPExchange, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("event publishing enabled", "exchange", cfg.AMQPExchange)
	return events.NewBreakingPublisher(publisher, events.DefaultBreakerConfig()), nil
}
