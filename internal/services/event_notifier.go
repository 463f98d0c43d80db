package services

import (
	"context"

	"finance-tracker/internal/events"
)

// eventNotifier publishes domain events without failing the caller.
type eventNotifier struct {
	publisher   events.Publisher
	auditLogger AuditLoggerInterface
	metrics     MetricsRecorderInterface
}

func newEventNotifier(publisher events.Publisher, auditLogger AuditLoggerInterface, metrics MetricsRecorderInterface) eventNotifier {
	if publisher == nil {
		publisher = events.NewNoopPublisher()
	}
	return eventNotifier{
		publisher:   publisher,
		auditLogger: auditLogger,
		metrics:     metrics,
	}
}

func (n eventNotifier) notify(ctx context.Context, msg *events.Message) {
	status := "success"
	if err := n.publisher.Publish(ctx, msg); err != nil {
		status = "failure"
		n.auditLogger.LogEventPublishFailed(ctx, msg.Type, err.Error())
	}
	n.metrics.IncrementCounter(MetricEventPublished, map[string]string{
		"type":   msg.Type,
		"status": status,
	})
}
