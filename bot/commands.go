package bot

import (
	"fmt"

	"chancebot/domain/entities"

	"github.com/bwmarrin/discordgo"
)

var adminPermission int64 = discordgo.PermissionManageServer

func numberOption(name, description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionNumber,
		Name:        name,
		Description: description,
		Required:    true,
	}
}

func affiliateOption() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionNumber,
		Name:        "affiliate",
		Description: "Affiliate commission percentage, 0-20 (default 0)",
		Required:    false,
	}
}

func (b *Bot) registerCommands() error {
	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "rtp",
			Description: "Calculate RTP and check it against the prize tier minimum",
			Options: []*discordgo.ApplicationCommandOption{
				numberOption("prize", "Prize amount in USDC"),
				numberOption("ticket", "Ticket price in USDC"),
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "odds",
					Description: "Odds as 1 in N (the pick range)",
					Required:    true,
				},
			},
		},
		{
			Name:        "breakeven",
			Description: "Calculate break-even ticket sales and profit scenarios",
			Options: []*discordgo.ApplicationCommandOption{
				numberOption("prize", "Prize amount in USDC"),
				numberOption("ticket", "Ticket price in USDC"),
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "odds",
					Description: "Odds as 1 in N (the pick range)",
					Required:    true,
				},
				affiliateOption(),
			},
		},
		{
			Name:        "optimize",
			Description: "Find the best ticket price and odds for your prize",
			Options: []*discordgo.ApplicationCommandOption{
				numberOption("prize", "Prize amount in USDC"),
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "strategy",
					Description: "Optimization goal (default balanced)",
					Required:    false,
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "Max Profit", Value: string(entities.StrategyProfit)},
						{Name: "Max Volume", Value: string(entities.StrategyVolume)},
						{Name: "Balanced", Value: string(entities.StrategyBalanced)},
					},
				},
				affiliateOption(),
			},
		},
		{
			Name:        "suggest",
			Description: "Reverse calculator: prize + target RTP in, three setups out",
			Options: []*discordgo.ApplicationCommandOption{
				numberOption("prize", "Prize amount in USDC"),
				numberOption("target_rtp", "Target RTP percentage, e.g. 75"),
				affiliateOption(),
			},
		},
		{
			Name:        "simulate",
			Description: "Run Monte Carlo simulations of a lottery setup",
			Options: []*discordgo.ApplicationCommandOption{
				numberOption("prize", "Prize amount in USDC"),
				numberOption("ticket", "Ticket price in USDC"),
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "odds",
					Description: "Odds as 1 in N (the pick range)",
					Required:    true,
				},
				affiliateOption(),
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "trials",
					Description: fmt.Sprintf("Number of trials, %d-%d (default %d)", entities.MinSimulationTrials, entities.MaxSimulationTrials, entities.DefaultSimulationTrials),
					Required:    false,
				},
			},
		},
		{
			Name:        "compare",
			Description: "Compare two lottery setups side-by-side",
			Options: []*discordgo.ApplicationCommandOption{
				numberOption("prize_a", "Setup A prize in USDC"),
				numberOption("ticket_a", "Setup A ticket price in USDC"),
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "odds_a",
					Description: "Setup A odds as 1 in N",
					Required:    true,
				},
				numberOption("prize_b", "Setup B prize in USDC"),
				numberOption("ticket_b", "Setup B ticket price in USDC"),
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "odds_b",
					Description: "Setup B odds as 1 in N",
					Required:    true,
				},
				affiliateOption(),
			},
		},
		{
			Name:        "alert",
			Description: "Create a lottery alert; we DM you when one matches",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionNumber,
					Name:        "min_prize",
					Description: "Minimum prize in USDC",
					Required:    false,
				},
				{
					Type:        discordgo.ApplicationCommandOptionNumber,
					Name:        "max_prize",
					Description: "Maximum prize in USDC",
					Required:    false,
				},
				{
					Type:        discordgo.ApplicationCommandOptionNumber,
					Name:        "max_ticket",
					Description: "Maximum ticket price in USDC",
					Required:    false,
				},
				{
					Type:        discordgo.ApplicationCommandOptionNumber,
					Name:        "min_rtp",
					Description: "Minimum RTP percentage",
					Required:    false,
				},
			},
		},
		{
			Name:        "myalerts",
			Description: "View your active lottery alerts",
		},
		{
			Name:        "deletealert",
			Description: "Delete one of your lottery alerts",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "id",
					Description: "Alert number from /myalerts",
					Required:    true,
				},
			},
		},
		{
			Name:        "stats",
			Description: "View live platform statistics",
		},
		{
			Name:        "leaderboard",
			Description: "See top creators, winners and volume",
		},
		{
			Name:        "preview",
			Description: "Preview your lottery announcement before launching",
			Options: []*discordgo.ApplicationCommandOption{
				numberOption("prize", "Prize amount in USDC"),
				numberOption("ticket", "Ticket price in USDC"),
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "odds",
					Description: "Odds as 1 in N (the pick range)",
					Required:    true,
				},
				affiliateOption(),
			},
		},
		{
			Name:                     "forceleaderboard",
			Description:              "Post the daily leaderboards right now (admin)",
			DefaultMemberPermissions: &adminPermission,
		},
		{
			Name:                     "posthelp",
			Description:              "Post the public help embeds in this channel (admin)",
			DefaultMemberPermissions: &adminPermission,
		},
		{
			Name:        "help",
			Description: "Show all bot commands",
		},
	}

	for _, cmd := range commands {
		_, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.GuildID, cmd)
		if err != nil {
			return fmt.Errorf("cannot create '%s' command: %w", cmd.Name, err)
		}
	}

	return nil
}
