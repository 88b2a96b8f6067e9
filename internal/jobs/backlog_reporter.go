package jobs

import (
	"context"
	"fmt"

	"github.com/Dias221467/Animal_Rescue/internal/metrics"
	"github.com/Dias221467/Animal_Rescue/internal/models"
	"github.com/sirupsen/logrus"
)

// StatusCounter counts stored reports per status. *services.ReportService implements it.
type StatusCounter interface {
	CountByStatus(ctx context.Context) (map[string]int64, error)
}

type BacklogReporter struct {
	Reports StatusCounter
}

// NewBacklogReporter creates a new instance of BacklogReporter
func NewBacklogReporter(reports StatusCounter) *BacklogReporter {
	return &BacklogReporter{Reports: reports}
}

// Run publishes the current number of open reports per status to the backlog gauge.
// Statuses with no reports are reset to zero.
func (b *BacklogReporter) Run(ctx context.Context) error {
	counts, err := b.Reports.CountByStatus(ctx)
	if err != nil {
		return fmt.Errorf("failed to count reports: %w", err)
	}

	for _, status := range []string{models.ReportStatusPending, models.ReportStatusInProgress} {
		metrics.ReportsBacklog.WithLabelValues(status).Set(float64(counts[status]))
	}

	logrus.WithFields(logrus.Fields{
		"pending":     counts[models.ReportStatusPending],
		"in_progress": counts[models.ReportStatusInProgress],
	}).Info("Report backlog scan completed")
	return nil
}
