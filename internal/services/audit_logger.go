package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

type contextKey string

// CorrelationIDKey holds the request trace ID on a context.Context.
const CorrelationIDKey contextKey = "correlation_id"

// WithCorrelationID returns a copy of ctx carrying id for log correlation.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, CorrelationIDKey, id)
}

type AuditLogger struct {
	logger *slog.Logger
}

func NewAuditLogger(logger *slog.Logger) AuditLoggerInterface {
	return &AuditLogger{
		logger: logger,
	}
}

func (al *AuditLogger) LogUserProvisioned(ctx context.Context, userID uuid.UUID, categories int) {
	al.logger.InfoContext(ctx, "user provisioned",
		slog.String("event_type", "user_provisioned"),
		slog.String("user_id", userID.String()),
		slog.Int("default_categories", categories),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogGoalAchieved(ctx context.Context, userID, goalID uuid.UUID) {
	al.logger.InfoContext(ctx, "goal achieved",
		slog.String("event_type", "goal_achieved"),
		slog.String("user_id", userID.String()),
		slog.String("goal_id", goalID.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogGoalEntryRecorded(ctx context.Context, userID, goalID, entryID uuid.UUID, amount string) {
	al.logger.InfoContext(ctx, "goal entry recorded",
		slog.String("event_type", "goal_entry_recorded"),
		slog.String("user_id", userID.String()),
		slog.String("goal_id", goalID.String()),
		slog.String("entry_id", entryID.String()),
		slog.String("amount", amount),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogWizardApplied(ctx context.Context, userID uuid.UUID, created, deleted, skipped int, durationMs int64) {
	al.logger.InfoContext(ctx, "budget wizard applied",
		slog.String("event_type", "budget_wizard_applied"),
		slog.String("user_id", userID.String()),
		slog.Int("created", created),
		slog.Int("deleted", deleted),
		slog.Int("skipped", skipped),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogExpenseIngested(ctx context.Context, userID, expenseID uuid.UUID, source string, confidence float64) {
	al.logger.InfoContext(ctx, "expense ingested",
		slog.String("event_type", "expense_ingested"),
		slog.String("user_id", userID.String()),
		slog.String("expense_id", expenseID.String()),
		slog.String("source", source),
		slog.Float64("category_confidence", confidence),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogAPIKeyAuthenticated(ctx context.Context, keyID, userID uuid.UUID) {
	al.logger.DebugContext(ctx, "api key authenticated",
		slog.String("event_type", "api_key_authenticated"),
		slog.String("key_id", keyID.String()),
		slog.String("user_id", userID.String()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogAPIKeyRejected(ctx context.Context, reason string) {
	al.logger.WarnContext(ctx, "api key rejected",
		slog.String("event_type", "api_key_rejected"),
		slog.String("reason", reason),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogEventPublishFailed(ctx context.Context, eventType string, errorMsg string) {
	al.logger.WarnContext(ctx, "event publish failed",
		slog.String("event_type", "event_publish_failed"),
		slog.String("event", eventType),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogAuditWriteFailed(ctx context.Context, action string, errorMsg string) {
	al.logger.ErrorContext(ctx, "audit log write failed",
		slog.String("event_type", "audit_write_failed"),
		slog.String("action", action),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func getCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return correlationID
	}

	return ""
}
