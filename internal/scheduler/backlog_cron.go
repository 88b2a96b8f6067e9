package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/Dias221467/Animal_Rescue/internal/jobs"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const backlogScanTimeout = 30 * time.Second

// StartBacklogCron schedules the backlog scan with a standard cron spec or a descriptor
// such as "@every 5m". The caller stops the returned cron on shutdown.
func StartBacklogCron(spec string, reporter *jobs.BacklogReporter) (*cron.Cron, error) {
	c := cron.New()

	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), backlogScanTimeout)
		defer cancel()

		if err := reporter.Run(ctx); err != nil {
			logrus.WithError(err).Error("Backlog scan failed")
		}
	})
	if err != nil {
		return nil, fmt.Errorf("invalid backlog schedule %q: %w", spec, err)
	}

	c.Start()
	return c, nil
}
