package analysis

import (
	"fmt"
	"strings"

	"chancebot/bot/common"
	"chancebot/domain/entities"
	"chancebot/domain/utils"

	"github.com/bwmarrin/discordgo"
)

// suggestionEmoji decorates the reverse calculator option names.
var suggestionEmoji = map[string]string{
	"Micro":       "🪙",
	"Budget Play": "💚",
	"Standard":    "💛",
	"Premium":     "💎",
	"Whale":       "🐋",
}

// CreateRTPEmbed builds the /rtp result embed.
func CreateRTPEmbed(prize, ticket float64, odds int64, rtp float64, tier entities.TierRequirement, passes bool) *discordgo.MessageEmbed {
	color := common.ColorDanger
	statusEmoji := "❌"
	statusMsg := fmt.Sprintf("Below %.0f%% minimum for %s", tier.MinimumRTP, tier.Label)
	if passes {
		color = common.ColorSuccess
		statusEmoji = "✅"
		statusMsg = fmt.Sprintf("Meets %.0f%% minimum for %s", tier.MinimumRTP, tier.Label)
	}

	embed := &discordgo.MessageEmbed{
		Title:       "🎰 RTP Calculator Results",
		Color:       color,
		Description: "Calculation for your lottery parameters",
		Fields: []*discordgo.MessageEmbedField{
			{
				Name: "📊 Input Parameters",
				Value: fmt.Sprintf("**Prize:** %s USDC\n**Ticket Price:** %s USDC\n**Odds:** 1 in %s",
					utils.FormatUSD(prize), utils.FormatUSD(ticket), utils.FormatCount(odds)),
				Inline: false,
			},
			{
				Name:   "📈 RTP Result",
				Value:  fmt.Sprintf("**%.2f%%** %s", rtp, statusEmoji),
				Inline: true,
			},
			{
				Name:   "🎯 Tier Requirement",
				Value:  fmt.Sprintf("**%.0f%%** minimum\n(%s)", tier.MinimumRTP, tier.Label),
				Inline: true,
			},
			{
				Name:   "✨ Status",
				Value:  statusMsg,
				Inline: false,
			},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "Chance RTP Calculator • Use /breakeven for profit calculations"},
	}

	if !passes {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "💡 How to Fix",
			Value: fmt.Sprintf("Your RTP is **%.2f%%** too low.\n\n**Options:**\n• Increase prize amount\n• Decrease ticket price\n• Improve odds (lower pick range)",
				tier.MinimumRTP-rtp),
			Inline: false,
		})
		return embed
	}

	var competitive string
	switch {
	case rtp >= common.RTPHotThreshold:
		competitive = "🔥 **Very competitive!** This is player-friendly RTP."
	case rtp >= common.RTPGoodThreshold:
		competitive = "✅ **Competitive.** Good balance of value and profit."
	case rtp >= tier.MinimumRTP+5:
		competitive = "⚠️ **Meets minimum** but competitors may offer better."
	default:
		competitive = "⚠️ **Barely passes.** Consider increasing RTP to compete."
	}
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:   "💡 Market Position",
		Value:  competitive,
		Inline: false,
	})
	return embed
}

// CreateBreakEvenEmbed builds the /breakeven result embed.
func CreateBreakEvenEmbed(eco *entities.EconomicsResult, scenarios []entities.ProfitScenario, affiliatePercent float64) *discordgo.MessageEmbed {
	color := common.ColorSuccess
	if eco.ExpectedProfit <= 0 {
		color = common.ColorWarning
	}

	var scenarioLines []string
	for _, sc := range scenarios {
		emoji := "📊"
		if sc.NetProfit > 0 {
			emoji = "🟢"
		} else if sc.NetProfit < 0 {
			emoji = "🔴"
		}
		scenarioLines = append(scenarioLines, fmt.Sprintf("%s **%s** (%s tickets): %s",
			emoji, sc.Label, utils.FormatCount(sc.TicketsSold), utils.FormatUSD(sc.NetProfit)))
	}

	return &discordgo.MessageEmbed{
		Title: "⚖️ Break-Even Analysis",
		Color: color,
		Description: fmt.Sprintf("**Prize:** %s USDC • **Ticket:** %s USDC • **Odds:** 1 in %s\n**Affiliate:** %.0f%%",
			utils.FormatUSD(eco.Setup.Prize), utils.FormatUSD(eco.Setup.TicketPrice),
			utils.FormatCount(eco.Setup.Odds), affiliatePercent),
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "🎯 Break-Even Point",
				Value:  fmt.Sprintf("**%s tickets** must sell to cover the prize", utils.FormatCount(eco.BreakEvenTickets)),
				Inline: false,
			},
			{
				Name:   "💰 Your Expected ROI",
				Value:  fmt.Sprintf("**%.1f%%**", eco.CreatorROIPercent),
				Inline: true,
			},
			{
				Name:   "💵 Expected Profit",
				Value:  utils.FormatUSD(eco.ExpectedProfit),
				Inline: true,
			},
			{
				Name:   "📊 Profit Scenarios",
				Value:  strings.Join(scenarioLines, "\n"),
				Inline: false,
			},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "Scenarios assume ticket sales at 0.5x / 1x / 1.5x the odds"},
	}
}

// CreateOptimizeEmbed builds the /optimize result embed.
func CreateOptimizeEmbed(result *entities.OptimizationResult, affiliatePercent float64) *discordgo.MessageEmbed {
	eco := result.Economics
	return &discordgo.MessageEmbed{
		Title: "🔧 Optimized Lottery Setup",
		Color: common.ColorSuccess,
		Description: fmt.Sprintf("**Strategy:** %s\n**Prize:** %s USDC • **Affiliate:** %.0f%%",
			strategyTitle(result.Strategy), utils.FormatUSD(result.Setup.Prize), affiliatePercent),
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "🎫 Ticket Price",
				Value:  utils.FormatUSD(result.Setup.TicketPrice),
				Inline: true,
			},
			{
				Name:   "🎲 Odds",
				Value:  fmt.Sprintf("1 in %s", utils.FormatCount(result.Setup.Odds)),
				Inline: true,
			},
			{
				Name:   "📊 RTP",
				Value:  fmt.Sprintf("%.1f%% (min %.0f%%)", eco.RTPPercent, eco.Tier.MinimumRTP),
				Inline: true,
			},
			{
				Name:   "💰 Your ROI",
				Value:  fmt.Sprintf("%.1f%%", eco.CreatorROIPercent),
				Inline: true,
			},
			{
				Name:   "⚖️ Break-Even",
				Value:  fmt.Sprintf("%s tickets", utils.FormatCount(eco.BreakEvenTickets)),
				Inline: true,
			},
			{
				Name:   "💵 Expected Profit",
				Value:  utils.FormatUSD(eco.ExpectedProfit),
				Inline: true,
			},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "Use /simulate to stress-test this setup"},
	}
}

// CreateSuggestionsEmbed builds the /suggest result embed.
func CreateSuggestionsEmbed(setups []entities.SuggestedSetup, prize, targetRTP, affiliatePercent, minRTP, maxProfitableRTP float64, tierLabel string) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "🎯 Suggested Lottery Parameters",
		Color: common.ColorSuccess,
		Description: fmt.Sprintf("**Prize:** %s USDC\n**Target RTP:** %.0f%%\n**Affiliate:** %.0f%%",
			utils.FormatUSD(prize), targetRTP, affiliatePercent),
		Footer: &discordgo.MessageEmbedFooter{Text: "Use /simulate to test any of these setups!"},
	}

	for _, s := range setups {
		name := s.Name
		if emoji, ok := suggestionEmoji[s.Name]; ok {
			name = emoji + " " + s.Name
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: name,
			Value: fmt.Sprintf("*%s*\n🎫 **Ticket:** %s\n🎲 **Odds:** 1 in %s\n📊 **RTP:** %.1f%%\n💰 **Your ROI:** %.1f%%\n⚖️ **Break-even:** %s tickets\n💵 **Expected Profit:** %s",
				s.Description,
				utils.FormatUSD(s.Setup.TicketPrice),
				utils.FormatCount(s.Setup.Odds),
				s.Economics.RTPPercent,
				s.Economics.CreatorROIPercent,
				utils.FormatCount(s.Economics.BreakEvenTickets),
				utils.FormatUSD(s.Economics.ExpectedProfit)),
			Inline: true,
		})
	}

	embed.Fields = append(embed.Fields,
		&discordgo.MessageEmbedField{
			Name: "📋 Summary",
			Value: fmt.Sprintf("All options achieve ~**%.0f%% RTP** for players\nMin RTP required: %.0f%% (%s) ✅\nMax profitable RTP: %.1f%%",
				targetRTP, minRTP, tierLabel, maxProfitableRTP),
			Inline: false,
		},
		&discordgo.MessageEmbedField{
			Name:   "💡 Tips",
			Value:  "• **Budget** = More players, longer to fill\n• **Premium** = Fewer players needed, faster fill\n• Use `/preview` to see how it looks before launch",
			Inline: false,
		},
	)

	return embed
}

// CreateSimulationEmbed builds the /simulate result embed.
func CreateSimulationEmbed(run *entities.SimulationRun) *discordgo.MessageEmbed {
	color := common.ColorSuccess
	if run.ProfitableFraction < 0.5 {
		color = common.ColorWarning
	}

	return &discordgo.MessageEmbed{
		Title: "🎲 Monte Carlo Simulation",
		Color: color,
		Description: fmt.Sprintf("**%s trials** • Prize %s • Ticket %s • Odds 1 in %s",
			utils.FormatCount(int64(run.Trials)),
			utils.FormatUSD(run.Setup.Prize),
			utils.FormatUSD(run.Setup.TicketPrice),
			utils.FormatCount(run.Setup.Odds)),
		Fields: []*discordgo.MessageEmbedField{
			{
				Name: "💵 Creator Profit",
				Value: fmt.Sprintf("**Mean:** %s\n**Median:** %s\n**Range:** %s → %s",
					utils.FormatUSD(run.Profit.Mean), utils.FormatUSD(run.Profit.Median),
					utils.FormatUSD(run.Profit.Min), utils.FormatUSD(run.Profit.Max)),
				Inline: true,
			},
			{
				Name: "📊 Percentiles",
				Value: fmt.Sprintf("**P10:** %s\n**P25:** %s\n**P75:** %s\n**P90:** %s",
					utils.FormatUSD(run.Profit.P10), utils.FormatUSD(run.Profit.P25),
					utils.FormatUSD(run.Profit.P75), utils.FormatUSD(run.Profit.P90)),
				Inline: true,
			},
			{
				Name: "🎫 Tickets To A Winner",
				Value: fmt.Sprintf("**Mean:** %.0f\n**Median:** %s\n**Range:** %s → %s",
					run.Tickets.Mean, utils.FormatCount(run.Tickets.Median),
					utils.FormatCount(run.Tickets.Min), utils.FormatCount(run.Tickets.Max)),
				Inline: true,
			},
			{
				Name: "🎯 Outcomes",
				Value: fmt.Sprintf("**Profitable runs:** %.1f%%\n**Ended below break-even (%s tickets):** %.1f%%",
					run.ProfitableFraction*100, utils.FormatCount(run.BreakEvenTickets), run.BelowBreakEvenFraction*100),
				Inline: false,
			},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "Each trial sells tickets until the first winner"},
	}
}

// CreateComparisonEmbed builds the /compare result embed.
func CreateComparisonEmbed(result *entities.ComparisonResult) *discordgo.MessageEmbed {
	var color int
	var verdict string
	switch result.Recommendation {
	case entities.WinnerA:
		color = common.ColorInfo
		verdict = "🏆 **Setup A wins** " + fmt.Sprintf("(%d - %d)", result.ScoreA, result.ScoreB)
	case entities.WinnerB:
		color = common.ColorInfo
		verdict = "🏆 **Setup B wins** " + fmt.Sprintf("(%d - %d)", result.ScoreB, result.ScoreA)
	default:
		color = common.ColorWarning
		verdict = fmt.Sprintf("🤝 **It's a tie** (%d - %d)", result.ScoreA, result.ScoreB)
	}

	return &discordgo.MessageEmbed{
		Title:       "⚔️ Setup Comparison",
		Color:       color,
		Description: verdict,
		Fields: []*discordgo.MessageEmbedField{
			setupField("🅰️ Setup A", result.A),
			setupField("🅱️ Setup B", result.B),
			{
				Name: "📋 Per-Metric Winners",
				Value: fmt.Sprintf("**Tier/RTP:** %s\n**Creator ROI:** %s\n**Expected Profit:** %s\n**Break-Even:** %s",
					winnerLabel(result.Winners.RTP), winnerLabel(result.Winners.ROI),
					winnerLabel(result.Winners.Profit), winnerLabel(result.Winners.BreakEven)),
				Inline: false,
			},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "Points: tier 3 • ROI 2 • profit 2 • break-even 1"},
	}
}

func setupField(name string, eco entities.EconomicsResult) *discordgo.MessageEmbedField {
	passEmoji := "✅"
	if !eco.PassesMinimum {
		passEmoji = "❌"
	}
	return &discordgo.MessageEmbedField{
		Name: name,
		Value: fmt.Sprintf("🎫 %s • 🎲 1 in %s\n📊 RTP %.1f%% %s\n💰 ROI %.1f%%\n💵 Profit %s\n⚖️ Break-even %s",
			utils.FormatUSD(eco.Setup.TicketPrice), utils.FormatCount(eco.Setup.Odds),
			eco.RTPPercent, passEmoji, eco.CreatorROIPercent,
			utils.FormatUSD(eco.ExpectedProfit), utils.FormatCount(eco.BreakEvenTickets)),
		Inline: true,
	}
}

func strategyTitle(strategy entities.Strategy) string {
	s := string(strategy)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func winnerLabel(w entities.ComparisonWinner) string {
	switch w {
	case entities.WinnerA:
		return "Setup A"
	case entities.WinnerB:
		return "Setup B"
	default:
		return "Tie"
	}
}
