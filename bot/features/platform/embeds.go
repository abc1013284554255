package platform

import (
	"fmt"
	"strings"
	"time"

	"chancebot/bot/common"
	"chancebot/domain/entities"
	"chancebot/domain/utils"

	"github.com/bwmarrin/discordgo"
)

// medals decorate leaderboard rows, one per rank.
var medals = []string{"🥇", "🥈", "🥉", "4️⃣", "5️⃣", "6️⃣", "7️⃣", "8️⃣", "9️⃣", "🔟"}

func medal(rank int) string {
	if rank < len(medals) {
		return medals[rank]
	}
	return fmt.Sprintf("%d.", rank+1)
}

func shortAddr(addr string) string {
	if addr == "" {
		return "Unknown"
	}
	return "`" + utils.ShortAddress(addr) + "`"
}

// CreateLotteryAnnouncementEmbed builds the channel announcement for a new
// lottery. Economics may be nil when the feed row lacked odds; the embed
// then omits the RTP section.
func CreateLotteryAnnouncementEmbed(lottery *entities.Lottery, eco *entities.EconomicsResult) *discordgo.MessageEmbed {
	color := common.ColorPrimary
	if eco != nil {
		switch {
		case eco.RTPPercent >= common.RTPHotThreshold:
			color = common.ColorSuccess
		case eco.RTPPercent >= common.RTPGoodThreshold:
			color = common.ColorInfo
		case eco.PassesMinimum:
			color = common.ColorOrange
		default:
			color = common.ColorDanger
		}
	}

	embed := &discordgo.MessageEmbed{
		Title:     "🎰 NEW LOTTERY LIVE",
		Color:     color,
		URL:       lottery.URL,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "💰 Prize",
				Value:  fmt.Sprintf("**%s** USDC", utils.FormatUSD(lottery.Prize)),
				Inline: true,
			},
			{
				Name:   "🎫 Ticket Price",
				Value:  fmt.Sprintf("**%s** USDC", utils.FormatUSD(lottery.TicketPrice)),
				Inline: true,
			},
		},
	}

	if lottery.Odds > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "📊 Odds",
			Value:  fmt.Sprintf("**1 in %s**", utils.FormatCount(lottery.Odds)),
			Inline: true,
		})
	}

	if eco != nil {
		rtpEmoji := "✅"
		if !eco.PassesMinimum {
			rtpEmoji = "❌"
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "📈 RTP",
			Value:  fmt.Sprintf("**%.2f%%** %s", eco.RTPPercent, rtpEmoji),
			Inline: true,
		})
	}

	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:   "⏰ Duration",
		Value:  fmt.Sprintf("**%s**", formatDuration(lottery.DurationSeconds)),
		Inline: true,
	})

	if lottery.MaxTickets != nil {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "🎟️ Max Tickets",
			Value:  fmt.Sprintf("**%s**", utils.FormatCount(*lottery.MaxTickets)),
			Inline: true,
		})
	}

	if lottery.URL != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "🎮 Play Now",
			Value:  fmt.Sprintf("[chance.fun](%s)", lottery.URL),
			Inline: false,
		})
	}

	return embed
}

func formatDuration(seconds *int64) string {
	if seconds == nil || *seconds <= 0 {
		return "Unlimited"
	}
	hours := *seconds / 3600
	if hours < 24 {
		return fmt.Sprintf("%d hours", hours)
	}
	return fmt.Sprintf("%d days", hours/24)
}

// CreateCreatorsEmbed builds the top-creators leaderboard embed.
func CreateCreatorsEmbed(rows []entities.CreatorRank) *discordgo.MessageEmbed {
	text := "No creators yet!"
	if len(rows) > 0 {
		var lines []string
		for i, row := range rows {
			lines = append(lines, fmt.Sprintf("%s %s — **%d** lotteries • %s vol",
				medal(i), shortAddr(row.Address), row.Lotteries, utils.FormatUSDShort(row.Volume)))
		}
		text = strings.Join(lines, "\n")
	}

	return &discordgo.MessageEmbed{
		Title:       "🎨 Top Creators",
		Description: "Ranked by lotteries created",
		Color:       common.ColorGold,
		Fields:      []*discordgo.MessageEmbedField{{Name: "Rankings", Value: text, Inline: false}},
	}
}

// CreateWinnersEmbed builds the top-winners leaderboard embed.
func CreateWinnersEmbed(rows []entities.WinnerRank) *discordgo.MessageEmbed {
	text := "No winners yet!"
	if len(rows) > 0 {
		var lines []string
		for i, row := range rows {
			lines = append(lines, fmt.Sprintf("%s %s — **%s** • %d wins",
				medal(i), shortAddr(row.Address), utils.FormatUSDShort(row.TotalWon), row.Wins))
		}
		text = strings.Join(lines, "\n")
	}

	return &discordgo.MessageEmbed{
		Title:       "💰 Top Winners",
		Description: "Ranked by total prizes won",
		Color:       common.ColorSuccess,
		Fields:      []*discordgo.MessageEmbedField{{Name: "Rankings", Value: text, Inline: false}},
	}
}

// CreateVolumeEmbed builds the top-volume leaderboard embed.
func CreateVolumeEmbed(rows []entities.VolumeRank) *discordgo.MessageEmbed {
	text := "No volume yet!"
	if len(rows) > 0 {
		var lines []string
		for i, row := range rows {
			lines = append(lines, fmt.Sprintf("%s %s — **%s** • %s tickets",
				medal(i), shortAddr(row.Address), utils.FormatUSDShort(row.Volume), utils.FormatCount(row.Tickets)))
		}
		text = strings.Join(lines, "\n")
	}

	return &discordgo.MessageEmbed{
		Title:       "📊 Top Volume",
		Description: "Ranked by total volume generated",
		Color:       common.ColorInfo,
		Fields:      []*discordgo.MessageEmbedField{{Name: "Rankings", Value: text, Inline: false}},
	}
}

// CreateStatsEmbed builds the /stats platform snapshot embed.
func CreateStatsEmbed(stats *entities.PlatformStats) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "📈 Chance Platform Stats",
		Color: common.ColorInfo,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name: "🎰 Lotteries",
				Value: fmt.Sprintf("**Total:** %d\n**Active:** %d\n**Completed:** %d",
					stats.TotalLotteries, stats.ActiveLotteries, stats.CompletedLotteries),
				Inline: true,
			},
			{
				Name: "💵 Volume",
				Value: fmt.Sprintf("**Gross:** %s\n**Prizes paid:** %s\n**Tickets sold:** %s",
					utils.FormatUSDShort(stats.TotalVolume), utils.FormatUSDShort(stats.TotalPrizesPaid),
					utils.FormatCount(stats.TotalTicketsSold)),
				Inline: true,
			},
			{
				Name:   "🏆 Largest Active Prize",
				Value:  utils.FormatUSD(stats.LargestActivePrize),
				Inline: true,
			},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "Live from the Chance subgraph"},
	}
}

// CreateHelpEmbed builds the ephemeral /help embed.
func CreateHelpEmbed() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "🎰 Chance Discord Bot - Help",
		Color:       common.ColorInfo,
		Description: "Your complete toolkit for creating and analyzing lotteries!",
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "📊 Analysis Commands",
				Value:  "**`/rtp`** - Calculate RTP\n**`/breakeven`** - Profit scenarios\n**`/optimize`** - Best parameters\n**`/suggest`** - Reverse calculator\n**`/simulate`** - Monte Carlo sim\n**`/compare`** - Compare setups",
				Inline: true,
			},
			{
				Name:   "📈 Platform Commands",
				Value:  "**`/stats`** - Platform stats\n**`/leaderboard`** - Top users\n**`/preview`** - Preview lottery",
				Inline: true,
			},
			{
				Name:   "🔔 Alert Commands",
				Value:  "**`/alert`** - Create alert\n**`/myalerts`** - View alerts\n**`/deletealert`** - Remove alert",
				Inline: true,
			},
			{
				Name:   "🎯 /suggest - Reverse Calculator",
				Value:  "Tell us your prize & target RTP, get 3 optimized setups!\n`/suggest prize:5000 target_rtp:75`",
				Inline: false,
			},
			{
				Name:   "📈 RTP Tiers",
				Value:  "**$100-$10K:** 70% • **$10K-$100K:** 60% • **$100K+:** 50%",
				Inline: false,
			},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "Need more help? Ask in #creator-support"},
	}
}

// CreatePostHelpEmbeds builds the three public help embeds for /posthelp.
func CreatePostHelpEmbeds() []*discordgo.MessageEmbed {
	commandsEmbed := &discordgo.MessageEmbed{
		Title:       "🎰 CHANCE BOT COMMANDS",
		Description: "Your complete toolkit for creating and analyzing lotteries!",
		Color:       common.ColorGold,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "📊 ANALYSIS COMMANDS",
				Value:  "`/rtp` — Calculate RTP and validate tiers\n`/breakeven` — Calculate profit scenarios\n`/optimize` — Get optimized lottery parameters\n`/suggest` — Reverse calculator (Prize + RTP → Parameters)\n`/simulate` — Run Monte Carlo simulations\n`/compare` — Compare two lottery setups side-by-side",
				Inline: false,
			},
			{
				Name:   "📈 PLATFORM COMMANDS",
				Value:  "`/stats` — View live platform statistics\n`/leaderboard` — See top creators, winners & volume\n`/preview` — Preview your lottery before launching",
				Inline: false,
			},
			{
				Name:   "🔔 ALERT COMMANDS",
				Value:  "`/alert` — Create custom lottery alerts (get DM'd!)\n`/myalerts` — View your active alerts\n`/deletealert` — Remove an alert",
				Inline: false,
			},
		},
	}

	examplesEmbed := &discordgo.MessageEmbed{
		Title: "🎯 EXAMPLES",
		Color: common.ColorInfo,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Calculate RTP", Value: "`/rtp prize:5000 ticket:25 odds:250`", Inline: false},
			{Name: "Get Suggested Parameters", Value: "`/suggest prize:5000 target_rtp:75`", Inline: false},
			{Name: "Simulate Outcomes", Value: "`/simulate prize:5000 ticket:25 odds:250`", Inline: false},
			{Name: "Set an Alert", Value: "`/alert min_prize:10000 max_ticket:25`", Inline: false},
		},
	}

	tiersEmbed := &discordgo.MessageEmbed{
		Title:       "📈 RTP TIERS",
		Description: "💰 **$100 - $10K** → Minimum 70% RTP\n💎 **$10K - $100K** → Minimum 60% RTP\n👑 **$100K+** → Minimum 50% RTP",
		Color:       common.ColorSuccess,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "🎮 Ready to play?", Value: "**https://chance.fun**", Inline: false},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "Questions? Open a ticket in #support!"},
	}

	return []*discordgo.MessageEmbed{commandsEmbed, examplesEmbed, tiersEmbed}
}
