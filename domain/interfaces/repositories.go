package interfaces

import (
	"context"

	"chancebot/domain/entities"
	"chancebot/events"
)

// AlertRepository is the keyed store backing the alert system. Alerts live
// in memory for the bot's lifetime; there is deliberately no persistence.
type AlertRepository interface {
	// ListByUser returns the user's alerts ordered by ID.
	ListByUser(userID string) []*entities.Alert

	// SetForUser replaces the user's alert list. An empty list removes the
	// user's entry entirely.
	SetForUser(userID string, alerts []*entities.Alert)

	// All returns a snapshot of every user's alerts.
	All() map[string][]*entities.Alert
}

// LotteryFeed fetches lottery records from the platform's data source.
type LotteryFeed interface {
	// RecentLotteries returns the newest lotteries first, at most limit.
	RecentLotteries(ctx context.Context, limit int) ([]*entities.Lottery, error)
}

// EventPublisher publishes domain events to interested subscribers.
type EventPublisher interface {
	Emit(ctx context.Context, event events.Event)
}

// LotteryPoster announces a discovered lottery to a set of channels.
// Implemented by the bot layer; the monitor decides the routing.
type LotteryPoster interface {
	PostLottery(ctx context.Context, lottery *entities.Lottery, eco *entities.EconomicsResult, channelIDs []string) error
}

// LeaderboardPoster posts the daily leaderboards to the configured channel.
type LeaderboardPoster interface {
	PostLeaderboards(ctx context.Context) error
}
