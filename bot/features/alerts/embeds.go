package alerts

import (
	"fmt"
	"strings"

	"chancebot/bot/common"
	"chancebot/domain/entities"
	"chancebot/domain/utils"

	"github.com/bwmarrin/discordgo"
)

// describeCriteria renders an alert's set criteria as one line.
func describeCriteria(a *entities.Alert) string {
	var parts []string
	if a.MinPrize != nil {
		parts = append(parts, fmt.Sprintf("prize ≥ %s", utils.FormatUSD(*a.MinPrize)))
	}
	if a.MaxPrize != nil {
		parts = append(parts, fmt.Sprintf("prize ≤ %s", utils.FormatUSD(*a.MaxPrize)))
	}
	if a.MaxTicket != nil {
		parts = append(parts, fmt.Sprintf("ticket ≤ %s", utils.FormatUSD(*a.MaxTicket)))
	}
	if a.MinRTP != nil {
		parts = append(parts, fmt.Sprintf("RTP ≥ %.0f%%", *a.MinRTP))
	}
	return strings.Join(parts, " • ")
}

// CreateAlertCreatedEmbed confirms a new alert.
func CreateAlertCreatedEmbed(alert *entities.Alert) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "🔔 Alert Created",
		Color:       common.ColorSuccess,
		Description: fmt.Sprintf("**Alert #%d** will DM you when a lottery matches:\n%s", alert.ID, describeCriteria(alert)),
		Footer:      &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("You can hold up to %d alerts • /myalerts to review", entities.MaxAlertsPerUser)},
	}
}

// CreateAlertListEmbed lists the user's alerts.
func CreateAlertListEmbed(alerts []*entities.Alert) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:  "🔔 Your Alerts",
		Color:  common.ColorInfo,
		Footer: &discordgo.MessageEmbedFooter{Text: "Delete with /deletealert id:<number>"},
	}

	if len(alerts) == 0 {
		embed.Description = "You have no alerts. Create one with `/alert`!"
		return embed
	}

	var lines []string
	for _, a := range alerts {
		lines = append(lines, fmt.Sprintf("**#%d** — %s", a.ID, describeCriteria(a)))
	}
	embed.Description = strings.Join(lines, "\n")
	return embed
}

// CreateAlertNotificationEmbed is the DM sent when a lottery matches.
func CreateAlertNotificationEmbed(lottery *entities.Lottery, rtp float64) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       "🔔 Lottery Alert!",
		Color:       common.ColorGold,
		Description: "A new lottery matches your criteria!",
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "🏆 Prize",
				Value:  fmt.Sprintf("**%s** USDC", utils.FormatUSD(lottery.Prize)),
				Inline: true,
			},
			{
				Name:   "🎫 Ticket",
				Value:  fmt.Sprintf("**%s** USDC", utils.FormatUSD(lottery.TicketPrice)),
				Inline: true,
			},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "Manage alerts with /myalerts and /deletealert"},
	}

	oddsValue := "N/A"
	if lottery.Odds > 0 {
		oddsValue = fmt.Sprintf("**1 in %s**", utils.FormatCount(lottery.Odds))
	}
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:   "🎲 Odds",
		Value:  oddsValue,
		Inline: true,
	})

	if rtp > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "📊 RTP",
			Value:  fmt.Sprintf("**%.1f%%**", rtp),
			Inline: true,
		})
	}

	if lottery.URL != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "🎮 Play Now",
			Value:  fmt.Sprintf("[Click to Play](%s)", lottery.URL),
			Inline: false,
		})
	}

	return embed
}
