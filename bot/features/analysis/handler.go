package analysis

import (
	"chancebot/bot/common"
	"chancebot/domain/entities"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// handleRTP calculates RTP, validates it against the tier minimum and DMs
// the user a copy of the result.
func (f *Feature) handleRTP(s *discordgo.Session, i *discordgo.InteractionCreate) {
	opts := common.OptionMap(i)
	prize := common.FloatOption(opts, "prize", 0)
	ticket := common.FloatOption(opts, "ticket", 0)
	odds := common.IntOption(opts, "odds", 0)

	if prize <= 0 || ticket <= 0 || odds <= 0 {
		common.RespondWithError(s, i, "**Error:** All values must be positive numbers!")
		return
	}
	if prize < entities.TierMinimumPrize {
		common.RespondWithError(s, i, "**Error:** Minimum prize is $100 USDC")
		return
	}
	if ticket > prize {
		common.RespondWithError(s, i, "**Error:** Ticket price cannot exceed prize amount!")
		return
	}

	rtp, err := f.economics.ComputeRTP(prize, ticket, odds)
	if err != nil {
		common.RespondWithError(s, i, userMessage(err))
		return
	}
	tier := f.economics.MinimumRTPFor(prize)
	passes := f.economics.PassesMinimum(rtp, tier.MinimumRTP)

	embed := CreateRTPEmbed(prize, ticket, odds, rtp, tier, passes)
	if err := common.RespondWithEmbed(s, i, embed, true); err != nil {
		log.WithError(err).Error("Failed to respond to rtp command")
		return
	}

	// DM a copy so the calculation survives the ephemeral response.
	dmEmbed := *embed
	dmEmbed.Footer = &discordgo.MessageEmbedFooter{Text: "This is your private RTP calculation from Chance Discord"}
	userID := common.InteractionUserID(i)
	if err := common.SendDMEmbed(s, userID, &dmEmbed); err != nil {
		log.WithError(err).WithField("userID", userID).Debug("Could not DM RTP calculation")
		common.FollowUpWithMessage(s, i, "⚠️ Couldn't send you a DM. Make sure your DMs are open to receive calculations!", true)
		return
	}
	common.FollowUpWithMessage(s, i, "📬 Check your DMs for a copy of your calculation!", true)
}

// handleBreakEven computes the break-even threshold and profit scenarios.
func (f *Feature) handleBreakEven(s *discordgo.Session, i *discordgo.InteractionCreate) {
	opts := common.OptionMap(i)
	prize := common.FloatOption(opts, "prize", 0)
	ticket := common.FloatOption(opts, "ticket", 0)
	odds := common.IntOption(opts, "odds", 0)
	affiliatePercent := common.FloatOption(opts, "affiliate", 0)

	setup := entities.LotterySetup{
		Prize:         prize,
		TicketPrice:   ticket,
		Odds:          odds,
		AffiliateRate: affiliatePercent / 100,
	}

	eco, err := f.economics.Evaluate(setup)
	if err != nil {
		common.RespondWithError(s, i, userMessage(err))
		return
	}
	scenarios, err := f.economics.ProfitScenarios(setup)
	if err != nil {
		common.RespondWithError(s, i, userMessage(err))
		return
	}

	if err := common.RespondWithEmbed(s, i, CreateBreakEvenEmbed(eco, scenarios, affiliatePercent), true); err != nil {
		log.WithError(err).Error("Failed to respond to breakeven command")
	}
}

// handleOptimize searches for the best parameters under a strategy.
func (f *Feature) handleOptimize(s *discordgo.Session, i *discordgo.InteractionCreate) {
	opts := common.OptionMap(i)
	prize := common.FloatOption(opts, "prize", 0)
	affiliatePercent := common.FloatOption(opts, "affiliate", 0)

	strategy, err := entities.ParseStrategy(common.StringOption(opts, "strategy", string(entities.StrategyBalanced)))
	if err != nil {
		common.RespondWithError(s, i, userMessage(err))
		return
	}

	result, err := f.optimizer.Optimize(prize, affiliatePercent/100, strategy)
	if err != nil {
		common.RespondWithError(s, i, userMessage(err))
		return
	}

	if err := common.RespondWithEmbed(s, i, CreateOptimizeEmbed(result, affiliatePercent), true); err != nil {
		log.WithError(err).Error("Failed to respond to optimize command")
	}
}

// handleSuggest runs the reverse calculator: prize + target RTP in, three
// parameter options out.
func (f *Feature) handleSuggest(s *discordgo.Session, i *discordgo.InteractionCreate) {
	opts := common.OptionMap(i)
	prize := common.FloatOption(opts, "prize", 0)
	targetRTP := common.FloatOption(opts, "target_rtp", 0)
	affiliatePercent := common.FloatOption(opts, "affiliate", 0)

	setups, err := f.suggestions.SuggestSetups(prize, targetRTP, affiliatePercent/100)
	if err != nil {
		common.RespondWithError(s, i, userMessage(err))
		return
	}

	tier := f.economics.MinimumRTPFor(prize)
	maxProfitableRTP := (1 - entities.PlatformFeeRate - affiliatePercent/100) * 100

	embed := CreateSuggestionsEmbed(setups, prize, targetRTP, affiliatePercent, tier.MinimumRTP, maxProfitableRTP, tier.Label)
	if err := common.RespondWithEmbed(s, i, embed, true); err != nil {
		log.WithError(err).Error("Failed to respond to suggest command")
	}
}

// handleSimulate runs the Monte Carlo simulation. The response is deferred;
// thousands of trials can take a moment.
func (f *Feature) handleSimulate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	opts := common.OptionMap(i)
	setup := entities.LotterySetup{
		Prize:         common.FloatOption(opts, "prize", 0),
		TicketPrice:   common.FloatOption(opts, "ticket", 0),
		Odds:          common.IntOption(opts, "odds", 0),
		AffiliateRate: common.FloatOption(opts, "affiliate", 0) / 100,
	}
	trials := int(common.IntOption(opts, "trials", entities.DefaultSimulationTrials))

	if err := common.DeferResponse(s, i, true); err != nil {
		log.WithError(err).Error("Failed to defer simulate response")
		return
	}

	run, err := f.simulation.Simulate(setup, trials)
	if err != nil {
		common.FollowUpWithMessage(s, i, "❌ "+userMessage(err), true)
		return
	}

	if _, err := s.FollowupMessageCreate(i.Interaction, false, &discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{CreateSimulationEmbed(run)},
		Flags:  discordgo.MessageFlagsEphemeral,
	}); err != nil {
		log.WithError(err).Error("Failed to send simulation result")
	}
}

// handleCompare evaluates two setups side by side.
func (f *Feature) handleCompare(s *discordgo.Session, i *discordgo.InteractionCreate) {
	opts := common.OptionMap(i)
	a := entities.LotterySetup{
		Prize:       common.FloatOption(opts, "prize_a", 0),
		TicketPrice: common.FloatOption(opts, "ticket_a", 0),
		Odds:        common.IntOption(opts, "odds_a", 0),
	}
	b := entities.LotterySetup{
		Prize:       common.FloatOption(opts, "prize_b", 0),
		TicketPrice: common.FloatOption(opts, "ticket_b", 0),
		Odds:        common.IntOption(opts, "odds_b", 0),
	}
	affiliatePercent := common.FloatOption(opts, "affiliate", 0)

	result, err := f.comparison.Compare(a, b, affiliatePercent/100)
	if err != nil {
		common.RespondWithError(s, i, userMessage(err))
		return
	}

	if err := common.RespondWithEmbed(s, i, CreateComparisonEmbed(result), true); err != nil {
		log.WithError(err).Error("Failed to respond to compare command")
	}
}
