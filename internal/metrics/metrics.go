package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	NotificationsWritten = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rescue_notifications_written_total",
			Help: "Total number of notifications persisted by fan-out",
		},
		[]string{"type"},
	)

	NotificationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rescue_notification_failures_total",
			Help: "Total number of per-recipient notification writes that failed",
		},
		[]string{"type"},
	)

	ReportTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rescue_report_transitions_total",
			Help: "Total number of report status transitions by target status",
		},
		[]string{"status"},
	)

	ReportsBacklog = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "rescue_reports_backlog",
			Help: "Number of stored reports per status at the last backlog scan",
		},
		[]string{"status"},
	)
)
