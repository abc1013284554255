package monitor

import (
	"context"
	"fmt"
	"time"

	"chancebot/domain/entities"
	"chancebot/domain/interfaces"
	"chancebot/events"

	log "github.com/sirupsen/logrus"
)

const (
	// monitorFetchLimit is how many recent lotteries each poll inspects.
	monitorFetchLimit = 100

	// seenTrimThreshold and seenTrimKeep bound the dedup set: once it
	// grows past the threshold, only the most recent keys survive.
	seenTrimThreshold = 10000
	seenTrimKeep      = 5000
)

// Channels holds the announcement channel IDs. Empty IDs are skipped.
type Channels struct {
	NewLotteries string
	HighValue    string
	BudgetPlays  string
	Moonshots    string
}

// Monitor polls the lottery feed and announces newly discovered lotteries.
// It is not safe for concurrent use; run a single Start loop.
type Monitor struct {
	feed      interfaces.LotteryFeed
	economics interfaces.EconomicsService
	poster    interfaces.LotteryPoster
	publisher interfaces.EventPublisher
	interval  time.Duration
	channels  Channels

	seen      map[string]struct{}
	seenOrder []string
}

// NewMonitor creates a new lottery monitor
func NewMonitor(
	feed interfaces.LotteryFeed,
	economics interfaces.EconomicsService,
	poster interfaces.LotteryPoster,
	publisher interfaces.EventPublisher,
	interval time.Duration,
	channels Channels,
) *Monitor {
	return &Monitor{
		feed:      feed,
		economics: economics,
		poster:    poster,
		publisher: publisher,
		interval:  interval,
		channels:  channels,
		seen:      make(map[string]struct{}),
	}
}

// Start polls until the context is cancelled. Poll errors are logged and
// the loop keeps going; a flaky subgraph must not kill the monitor.
func (m *Monitor) Start(ctx context.Context) {
	log.WithField("interval", m.interval).Info("Starting lottery monitor")

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		if err := m.CheckOnce(ctx); err != nil {
			log.WithError(err).Error("Failed to check for new lotteries")
		}

		select {
		case <-ctx.Done():
			log.Info("Lottery monitor stopped")
			return
		case <-ticker.C:
		}
	}
}

// CheckOnce runs a single poll: fetch the recent page, skip everything
// already announced, and post the rest.
func (m *Monitor) CheckOnce(ctx context.Context) error {
	lotteries, err := m.feed.RecentLotteries(ctx, monitorFetchLimit)
	if err != nil {
		return fmt.Errorf("failed to fetch recent lotteries: %w", err)
	}

	for _, lottery := range lotteries {
		key := lottery.Key()
		if key == "" {
			continue
		}
		if _, ok := m.seen[key]; ok {
			continue
		}
		m.markSeen(key)

		// Completed lotteries arriving on the first poll are history, not
		// news.
		if !lottery.IsActive() {
			continue
		}

		m.announce(ctx, lottery)
	}

	return nil
}

func (m *Monitor) announce(ctx context.Context, lottery *entities.Lottery) {
	eco, err := m.economics.Evaluate(lottery.Setup())
	if err != nil {
		// Feed rows missing odds or price still get announced; the embed
		// just omits the analysis section.
		log.WithError(err).WithField("lottery", lottery.Key()).Debug("Lottery economics unavailable")
		eco = nil
	}

	channelIDs := m.routeChannels(lottery)

	log.WithFields(log.Fields{
		"lottery":  lottery.Key(),
		"prize":    lottery.Prize,
		"channels": len(channelIDs),
	}).Info("Announcing new lottery")

	if err := m.poster.PostLottery(ctx, lottery, eco, channelIDs); err != nil {
		log.WithError(err).WithField("lottery", lottery.Key()).Error("Failed to post lottery")
	}

	m.publisher.Emit(ctx, events.LotteryDiscoveredEvent{
		Lottery:   lottery,
		Economics: eco,
	})
}

// routeChannels picks every channel the lottery belongs in: all new
// lotteries go to the main channel, plus any threshold channels that apply.
func (m *Monitor) routeChannels(lottery *entities.Lottery) []string {
	var ids []string
	add := func(id string) {
		if id != "" {
			ids = append(ids, id)
		}
	}

	add(m.channels.NewLotteries)
	if lottery.IsHighValue() {
		add(m.channels.HighValue)
	}
	if lottery.IsBudgetPlay() {
		add(m.channels.BudgetPlays)
	}
	if lottery.IsMoonshot() {
		add(m.channels.Moonshots)
	}
	return ids
}

func (m *Monitor) markSeen(key string) {
	m.seen[key] = struct{}{}
	m.seenOrder = append(m.seenOrder, key)

	if len(m.seenOrder) > seenTrimThreshold {
		m.seen, m.seenOrder = trimSeen(m.seenOrder)
	}
}

// trimSeen keeps the newest seenTrimKeep keys in insertion order.
func trimSeen(order []string) (map[string]struct{}, []string) {
	kept := order[len(order)-seenTrimKeep:]
	trimmed := make([]string, len(kept))
	copy(trimmed, kept)

	seen := make(map[string]struct{}, len(trimmed))
	for _, key := range trimmed {
		seen[key] = struct{}{}
	}
	return seen, trimmed
}
