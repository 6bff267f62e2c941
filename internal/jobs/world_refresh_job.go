package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"shiptrack/internal/service"
)

// WorldRefreshJob periodically recomputes the per-country shipment
// aggregation so the geocode cache stays warm and the world map endpoint
// answers from cached coordinates.
type WorldRefreshJob struct {
	shipments service.Shipments
	schedule  string
	cron      *cron.Cron
}

func NewWorldRefreshJob(shipments service.Shipments, schedule string) *WorldRefreshJob {
	return &WorldRefreshJob{
		shipments: shipments,
		schedule:  schedule,
		cron:      cron.New(),
	}
}

func (j *WorldRefreshJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		stats, err := j.shipments.WorldStats(ctx)
		if err != nil {
			logrus.WithError(err).Error("world stats refresh failed")
			return
		}
		logrus.WithField("countries", len(stats)).Debug("world stats refreshed")
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	logrus.WithField("schedule", j.schedule).Info("world stats refresh job started")
	return nil
}

func (j *WorldRefreshJob) Stop() {
	j.cron.Stop()
	logrus.Info("world stats refresh job stopped")
}
