package alerts

import (
	"context"

	"chancebot/bot/common"
	"chancebot/domain/interfaces"
	"chancebot/events"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Notifier DMs users whose alerts match a newly discovered lottery.
type Notifier struct {
	session *discordgo.Session
	alerts  interfaces.AlertService
}

// NewNotifier creates a new alert notifier
func NewNotifier(session *discordgo.Session, alerts interfaces.AlertService) *Notifier {
	return &Notifier{
		session: session,
		alerts:  alerts,
	}
}

// Subscribe registers the notifier on the event bus.
func (n *Notifier) Subscribe(bus *events.Bus) {
	bus.Subscribe(events.EventTypeLotteryDiscovered, n.handleLotteryDiscovered)
}

func (n *Notifier) handleLotteryDiscovered(ctx context.Context, event events.Event) {
	discovered, ok := event.(events.LotteryDiscoveredEvent)
	if !ok {
		log.Warnf("Unexpected event type in alert notifier: %T", event)
		return
	}
	lottery := discovered.Lottery

	matches := n.alerts.MatchingAlerts(lottery)
	if len(matches) == 0 {
		return
	}

	rtp := 0.0
	if discovered.Economics != nil {
		rtp = discovered.Economics.RTPPercent
	}
	embed := CreateAlertNotificationEmbed(lottery, rtp)

	// One DM per user even when several of their alerts match.
	notified := make(map[string]struct{})
	for _, alert := range matches {
		if _, done := notified[alert.UserID]; done {
			continue
		}
		notified[alert.UserID] = struct{}{}

		if err := common.SendDMEmbed(n.session, alert.UserID, embed); err != nil {
			log.WithError(err).WithField("userID", alert.UserID).Warn("Could not deliver alert DM")
			continue
		}
		log.WithFields(log.Fields{
			"userID":  alert.UserID,
			"lottery": lottery.Key(),
		}).Info("Alert notification sent")
	}
}
