package monitor

import (
	"context"
	"fmt"
	"time"

	"chancebot/domain/interfaces"
	"chancebot/events"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

// leaderboardPostTimeout bounds one posting run, including the subgraph
// fetch and the Discord round-trips.
const leaderboardPostTimeout = 2 * time.Minute

// LeaderboardScheduler posts the daily leaderboards at a fixed UTC hour.
type LeaderboardScheduler struct {
	cron      *cron.Cron
	poster    interfaces.LeaderboardPoster
	publisher interfaces.EventPublisher
	hour      int
}

// NewLeaderboardScheduler creates a new daily leaderboard scheduler
func NewLeaderboardScheduler(poster interfaces.LeaderboardPoster, publisher interfaces.EventPublisher, hour int) *LeaderboardScheduler {
	return &LeaderboardScheduler{
		cron:      cron.New(cron.WithLocation(time.UTC)),
		poster:    poster,
		publisher: publisher,
		hour:      hour,
	}
}

// Start registers the daily job and begins the scheduler.
func (s *LeaderboardScheduler) Start() error {
	spec := fmt.Sprintf("0 %d * * *", s.hour)
	if _, err := s.cron.AddFunc(spec, func() {
		if err := s.Post(context.Background(), false); err != nil {
			log.WithError(err).Error("Failed to post daily leaderboards")
		}
	}); err != nil {
		return fmt.Errorf("failed to schedule leaderboard post: %w", err)
	}

	s.cron.Start()
	log.WithField("hourUTC", s.hour).Info("Leaderboard scheduler started")
	return nil
}

// Stop halts the scheduler; the returned context completes when any running
// job finishes.
func (s *LeaderboardScheduler) Stop() context.Context {
	return s.cron.Stop()
}

// Post runs one leaderboard posting cycle. Forced posts come from the
// admin command rather than the schedule.
func (s *LeaderboardScheduler) Post(ctx context.Context, forced bool) error {
	ctx, cancel := context.WithTimeout(ctx, leaderboardPostTimeout)
	defer cancel()

	if err := s.poster.PostLeaderboards(ctx); err != nil {
		return fmt.Errorf("failed to post leaderboards: %w", err)
	}

	s.publisher.Emit(ctx, events.LeaderboardPostedEvent{Forced: forced})
	return nil
}
