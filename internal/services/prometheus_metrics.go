package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names accepted by PrometheusMetrics.
const (
	MetricExpenseCreated     = "expense_created"
	MetricGoalEntryRecorded  = "goal_entry_recorded"
	MetricGoalAchieved       = "goal_achieved"
	MetricWizardApplied      = "budget_wizard_applied"
	MetricAPIKeyAuth         = "api_key_auth"
	MetricEventPublished     = "event_published"
	MetricCalculation        = "calculation"
	MetricEligibleCategories = "wizard_eligible_categories"
	MetricUsersProvisioned   = "user_provisioned"
)

type PrometheusMetrics struct {
	expensesCreated     *prometheus.CounterVec
	goalEntriesRecorded *prometheus.CounterVec
	goalsAchieved       prometheus.Counter
	wizardApplications  *prometheus.CounterVec
	apiKeyAuth          *prometheus.CounterVec
	eventsPublished     *prometheus.CounterVec
	usersProvisioned    prometheus.Counter
	calculationDuration *prometheus.HistogramVec
	eligibleCategories  prometheus.Histogram
}

// NewPrometheusMetrics registers the service metrics on reg.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		expensesCreated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finance_expenses_created_total",
				Help: "Total number of expenses created by source",
			},
			[]string{"source"},
		),
		goalEntriesRecorded: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finance_goal_entries_total",
				Help: "Total number of goal entries by kind",
			},
			[]string{"kind"},
		),
		goalsAchieved: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "finance_goals_achieved_total",
				Help: "Total number of goals that reached their target",
			},
		),
		wizardApplications: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finance_budget_wizard_applications_total",
				Help: "Total number of budget wizard applications",
			},
			[]string{"status"},
		),
		apiKeyAuth: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finance_api_key_authentications_total",
				Help: "Total number of integration API key authentications",
			},
			[]string{"status"},
		),
		eventsPublished: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finance_events_published_total",
				Help: "Total number of domain events published",
			},
			[]string{"type", "status"},
		),
		usersProvisioned: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "finance_users_provisioned_total",
				Help: "Total number of users created from bearer tokens",
			},
		),
		calculationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "finance_calculation_duration_milliseconds",
				Help:    "Duration of progress and insight calculations in milliseconds",
				Buckets: prometheus.ExponentialBuckets(0.5, 2, 12),
			},
			[]string{"calculation"},
		),
		eligibleCategories: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "finance_wizard_eligible_categories",
				Help:    "Number of categories eligible for the budget wizard per state request",
				Buckets: prometheus.LinearBuckets(0, 1, 13),
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	status := tags["status"]

	switch name {
	case MetricExpenseCreated:
		m.expensesCreated.WithLabelValues(tags["source"]).Inc()
	case MetricGoalEntryRecorded:
		m.goalEntriesRecorded.WithLabelValues(tags["kind"]).Inc()
	case MetricGoalAchieved:
		m.goalsAchieved.Inc()
	case MetricWizardApplied:
		if status != "" {
			m.wizardApplications.WithLabelValues(status).Inc()
		}
	case MetricAPIKeyAuth:
		if status != "" {
			m.apiKeyAuth.WithLabelValues(status).Inc()
		}
	case MetricEventPublished:
		m.eventsPublished.WithLabelValues(tags["type"], status).Inc()
	case MetricUsersProvisioned:
		m.usersProvisioned.Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	m.calculationDuration.WithLabelValues(name).Observe(float64(duration.Microseconds()) / 1000)
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricEligibleCategories:
		m.eligibleCategories.Observe(value)
	}
}

// NoopMetrics discards every measurement.
type NoopMetrics struct{}

func (NoopMetrics) IncrementCounter(name string, tags map[string]string)           {}
func (NoopMetrics) RecordProcessingTime(name string, duration time.Duration)       {}
func (NoopMetrics) RecordGauge(name string, value float64, tags map[string]string) {}
