package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

// PopularityRefresher recomputes event popularity from registrations.
type PopularityRefresher interface {
	RefreshPopularity(ctx context.Context) (int64, error)
}

// ReminderSender pushes "starting soon" notifications for due registrations.
type ReminderSender interface {
	SendUpcomingReminders(ctx context.Context) (int, error)
}

// Scheduler runs the maintenance passes the request path never performs:
// the popularity ranking refresh and the event-start reminders.
type Scheduler struct {
	popularity PopularityRefresher
	reminders  ReminderSender
	interval   time.Duration
	logger     logger.Logger
}

func New(
	popularity PopularityRefresher,
	reminders ReminderSender,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		popularity: popularity,
		reminders:  reminders,
		interval:   interval,
		logger:     logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	updated, err := s.popularity.RefreshPopularity(ctx)
	if err != nil {
		s.logger.Error("failed to refresh popularity",
			logger.String("error", err.Error()),
		)
	} else if updated > 0 {
		s.logger.Info("popularity refreshed",
			logger.Int64("events_updated", updated),
		)
	}

	sent, err := s.reminders.SendUpcomingReminders(ctx)
	if err != nil {
		s.logger.Error("failed to send reminders",
			logger.String("error", err.Error()),
		)
		return
	}
	if sent > 0 {
		s.logger.Info("reminders sent",
			logger.Int("count", sent),
		)
	}
}
