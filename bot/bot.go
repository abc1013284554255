package bot

import (
	"fmt"

	"chancebot/bot/features/alerts"
	"chancebot/bot/features/analysis"
	"chancebot/bot/features/platform"
	"chancebot/domain/interfaces"
	"chancebot/events"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Config holds bot configuration
type Config struct {
	Token                string
	GuildID              string
	LeaderboardChannelID string
}

// Services bundles the domain services the bot's features depend on.
type Services struct {
	Economics    interfaces.EconomicsService
	Optimizer    interfaces.OptimizerService
	Simulation   interfaces.SimulationService
	Comparison   interfaces.ComparisonService
	Suggestions  interfaces.SuggestionService
	Alerts       interfaces.AlertService
	Leaderboards interfaces.LeaderboardService
}

type Bot struct {
	config   Config
	session  *discordgo.Session
	analysis *analysis.Feature
	alerts   *alerts.Feature
	platform *platform.Feature
	notifier *alerts.Notifier
	eventBus *events.Bus
}

// New connects to Discord, wires the feature modules and registers the slash
// commands. The returned bot is live; call Close to disconnect.
func New(config Config, services Services, eventBus *events.Bus) (*Bot, error) {
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages | discordgo.IntentsDirectMessages

	bot := &Bot{
		config:   config,
		session:  dg,
		analysis: analysis.NewFeature(services.Economics, services.Optimizer, services.Simulation, services.Comparison, services.Suggestions),
		alerts:   alerts.NewFeature(services.Alerts),
		eventBus: eventBus,
	}
	bot.platform = platform.NewFeature(dg, services.Leaderboards, services.Economics, eventBus, config.LeaderboardChannelID)
	bot.notifier = alerts.NewNotifier(dg, services.Alerts)
	bot.notifier.Subscribe(eventBus)

	dg.AddHandler(bot.handleCommands)

	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	if err := bot.registerCommands(); err != nil {
		dg.Close()
		return nil, fmt.Errorf("error registering commands: %w", err)
	}

	log.WithField("user", dg.State.User.Username).Info("Bot connected")
	return bot, nil
}

func (b *Bot) Close() error {
	return b.session.Close()
}

// Platform exposes the platform feature, which doubles as the monitor's
// lottery poster and the scheduler's leaderboard poster.
func (b *Bot) Platform() *platform.Feature {
	return b.platform
}

func (b *Bot) handleCommands(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	switch i.ApplicationCommandData().Name {
	case "rtp", "breakeven", "optimize", "suggest", "simulate", "compare":
		b.analysis.HandleCommand(s, i)
	case "alert", "myalerts", "deletealert":
		b.alerts.HandleCommand(s, i)
	case "stats", "leaderboard", "preview", "forceleaderboard", "posthelp", "help":
		b.platform.HandleCommand(s, i)
	}
}
