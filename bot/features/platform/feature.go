package platform

import (
	"context"

	"chancebot/bot/common"
	"chancebot/domain/entities"
	"chancebot/domain/interfaces"
	"chancebot/events"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Feature bundles the platform commands (stats, leaderboard, preview, help)
// and the admin commands (forceleaderboard, posthelp). It also implements
// the monitor's LotteryPoster and the scheduler's LeaderboardPoster.
type Feature struct {
	session              *discordgo.Session
	leaderboards         interfaces.LeaderboardService
	economics            interfaces.EconomicsService
	publisher            interfaces.EventPublisher
	leaderboardChannelID string
}

// NewFeature creates a new platform feature instance
func NewFeature(
	session *discordgo.Session,
	leaderboards interfaces.LeaderboardService,
	economics interfaces.EconomicsService,
	publisher interfaces.EventPublisher,
	leaderboardChannelID string,
) *Feature {
	return &Feature{
		session:              session,
		leaderboards:         leaderboards,
		economics:            economics,
		publisher:            publisher,
		leaderboardChannelID: leaderboardChannelID,
	}
}

// HandleCommand routes platform slash commands
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.ApplicationCommandData().Name {
	case "stats":
		f.handleStats(s, i)
	case "leaderboard":
		f.handleLeaderboard(s, i)
	case "preview":
		f.handlePreview(s, i)
	case "forceleaderboard":
		f.handleForceLeaderboard(s, i)
	case "posthelp":
		f.handlePostHelp(s, i)
	case "help":
		f.handleHelp(s, i)
	default:
		log.Warnf("Unknown platform command: %s", i.ApplicationCommandData().Name)
	}
}

func (f *Feature) handleStats(s *discordgo.Session, i *discordgo.InteractionCreate) {
	stats, err := f.leaderboards.PlatformStats(context.Background())
	if err != nil {
		log.WithError(err).Error("Failed to fetch platform stats")
		common.RespondWithError(s, i, "Couldn't reach the platform data feed. Try again in a moment.")
		return
	}

	if err := common.RespondWithEmbed(s, i, CreateStatsEmbed(stats), false); err != nil {
		log.WithError(err).Error("Failed to respond to stats command")
	}
}

func (f *Feature) handleLeaderboard(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if err := common.DeferResponse(s, i, false); err != nil {
		log.WithError(err).Error("Failed to defer leaderboard response")
		return
	}

	boards, err := f.leaderboards.Leaderboards(context.Background())
	if err != nil {
		log.WithError(err).Error("Failed to build leaderboards")
		common.FollowUpWithMessage(s, i, "❌ Couldn't reach the platform data feed. Try again in a moment.", true)
		return
	}

	if _, err := s.FollowupMessageCreate(i.Interaction, false, &discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{
			CreateCreatorsEmbed(boards.Creators),
			CreateWinnersEmbed(boards.Winners),
			CreateVolumeEmbed(boards.Volume),
		},
	}); err != nil {
		log.WithError(err).Error("Failed to send leaderboard embeds")
	}
}

// handlePreview renders a lottery announcement for parameters the creator is
// still considering, without posting it anywhere public.
func (f *Feature) handlePreview(s *discordgo.Session, i *discordgo.InteractionCreate) {
	opts := common.OptionMap(i)
	prize := common.FloatOption(opts, "prize", 0)
	ticket := common.FloatOption(opts, "ticket", 0)
	odds := common.IntOption(opts, "odds", 0)
	affiliatePercent := common.FloatOption(opts, "affiliate", 0)

	lottery := &entities.Lottery{
		Prize:       prize,
		TicketPrice: ticket,
		Odds:        odds,
		Status:      entities.LotteryStatusActive,
	}

	eco, err := f.economics.Evaluate(entities.LotterySetup{
		Prize:         prize,
		TicketPrice:   ticket,
		Odds:          odds,
		AffiliateRate: affiliatePercent / 100,
	})
	if err != nil {
		common.RespondWithError(s, i, "**Error:** All values must be positive numbers!")
		return
	}

	embed := CreateLotteryAnnouncementEmbed(lottery, eco)
	embed.Title = "👀 Lottery Preview"
	embed.Footer = &discordgo.MessageEmbedFooter{Text: "This is a preview — nothing was posted"}

	if err := common.RespondWithEmbed(s, i, embed, true); err != nil {
		log.WithError(err).Error("Failed to respond to preview command")
	}
}

func (f *Feature) handleForceLeaderboard(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if f.leaderboardChannelID == "" {
		common.RespondWithError(s, i, "Leaderboard channel is not configured!")
		return
	}

	if err := common.RespondWithSuccess(s, i, "📊 **Posting leaderboards now...** Check the leaderboard channel!", true); err != nil {
		log.WithError(err).Error("Failed to respond to forceleaderboard command")
		return
	}

	ctx := context.Background()
	if err := f.PostLeaderboards(ctx); err != nil {
		log.WithError(err).Error("Forced leaderboard post failed")
		common.FollowUpWithMessage(s, i, "❌ Posting failed: "+err.Error(), true)
		return
	}
	f.publisher.Emit(ctx, events.LeaderboardPostedEvent{Forced: true})
}

func (f *Feature) handlePostHelp(s *discordgo.Session, i *discordgo.InteractionCreate) {
	embeds := CreatePostHelpEmbeds()

	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Embeds: embeds},
	}); err != nil {
		log.WithError(err).Error("Failed to respond to posthelp command")
	}
}

func (f *Feature) handleHelp(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if err := common.RespondWithEmbed(s, i, CreateHelpEmbed(), true); err != nil {
		log.WithError(err).Error("Failed to respond to help command")
	}
}
