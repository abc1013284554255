package platform

import (
	"context"
	"fmt"
	"time"

	"chancebot/domain/entities"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// PostLottery announces a lottery to every routed channel. A failure on one
// channel does not stop delivery to the rest; the first error is returned.
func (f *Feature) PostLottery(ctx context.Context, lottery *entities.Lottery, eco *entities.EconomicsResult, channelIDs []string) error {
	embed := CreateLotteryAnnouncementEmbed(lottery, eco)

	var firstErr error
	for _, channelID := range channelIDs {
		if _, err := f.session.ChannelMessageSendEmbed(channelID, embed); err != nil {
			log.WithError(err).WithFields(log.Fields{
				"channelID": channelID,
				"lottery":   lottery.Key(),
			}).Error("Failed to post lottery announcement")
			if firstErr == nil {
				firstErr = fmt.Errorf("failed to post to channel %s: %w", channelID, err)
			}
			continue
		}
		log.WithFields(log.Fields{
			"channelID": channelID,
			"lottery":   lottery.Key(),
		}).Info("Posted lottery announcement")
	}
	return firstErr
}

// PostLeaderboards posts the daily header and the three ranking embeds to
// the configured leaderboard channel.
func (f *Feature) PostLeaderboards(ctx context.Context) error {
	if f.leaderboardChannelID == "" {
		return fmt.Errorf("leaderboard channel is not configured")
	}

	boards, err := f.leaderboards.Leaderboards(ctx)
	if err != nil {
		return fmt.Errorf("failed to build leaderboards: %w", err)
	}

	header := fmt.Sprintf("# 🏆 Daily Leaderboards - %s\n━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━",
		time.Now().UTC().Format("January 2, 2006"))
	if _, err := f.session.ChannelMessageSend(f.leaderboardChannelID, header); err != nil {
		return fmt.Errorf("failed to post leaderboard header: %w", err)
	}

	embeds := []*discordgo.MessageEmbed{
		CreateCreatorsEmbed(boards.Creators),
		CreateWinnersEmbed(boards.Winners),
		CreateVolumeEmbed(boards.Volume),
	}
	for _, embed := range embeds {
		if _, err := f.session.ChannelMessageSendEmbed(f.leaderboardChannelID, embed); err != nil {
			return fmt.Errorf("failed to post leaderboard embed: %w", err)
		}
	}

	log.WithField("channelID", f.leaderboardChannelID).Info("Posted daily leaderboards")
	return nil
}
