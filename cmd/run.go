package cmd

import (
	"context"
	"fmt"
	"time"

	"chancebot/bot"
	"chancebot/config"
	"chancebot/domain/services"
	"chancebot/events"
	"chancebot/infrastructure"
	"chancebot/monitor"
	"chancebot/repository"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found, using environment variables")
	}

	cfg := config.Get()
	if cfg.Environment == "production" {
		log.SetFormatter(&log.JSONFormatter{})
	}

	log.Info("Starting chancebot...")

	eventBus := events.NewBus()

	// Domain services. Economics is the root; everything else layers on it.
	economics := services.NewEconomicsService()
	optimizer := services.NewOptimizerService(economics)
	simulation := services.NewSimulationService(economics)
	comparison := services.NewComparisonService(economics)
	suggestions := services.NewSuggestionService(economics)

	alertRepo := repository.NewAlertRepository()
	alerts := services.NewAlertService(alertRepo, economics)

	feed := infrastructure.NewGoldskyClient(cfg.SubgraphURL)
	leaderboards := services.NewLeaderboardService(feed)

	log.Info("Initializing Discord bot...")
	discordBot, err := bot.New(bot.Config{
		Token:                cfg.DiscordToken,
		GuildID:              cfg.GuildID,
		LeaderboardChannelID: cfg.LeaderboardChannelID,
	}, bot.Services{
		Economics:    economics,
		Optimizer:    optimizer,
		Simulation:   simulation,
		Comparison:   comparison,
		Suggestions:  suggestions,
		Alerts:       alerts,
		Leaderboards: leaderboards,
	}, eventBus)
	if err != nil {
		return fmt.Errorf("failed to initialize Discord bot: %w", err)
	}

	// The platform feature posts both announcements and leaderboards.
	poster := discordBot.Platform()

	lotteryMonitor := monitor.NewMonitor(feed, economics, poster, eventBus, cfg.CheckInterval, monitor.Channels{
		NewLotteries: cfg.NewLotteriesChannelID,
		HighValue:    cfg.HighValueChannelID,
		BudgetPlays:  cfg.BudgetPlaysChannelID,
		Moonshots:    cfg.MoonshotsChannelID,
	})
	go lotteryMonitor.Start(ctx)

	scheduler := monitor.NewLeaderboardScheduler(poster, eventBus, cfg.LeaderboardPostHour)
	scheduler.Start()

	health := infrastructure.NewHealthServer(cfg.HealthAddr)
	go func() {
		if err := health.Start(); err != nil {
			log.WithError(err).Error("Health server stopped")
		}
	}()

	log.WithField("environment", cfg.Environment).Info("Bot is running")
	<-ctx.Done()

	log.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	<-scheduler.Stop().Done()

	if err := health.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Error shutting down health server")
	}
	if err := discordBot.Close(); err != nil {
		log.WithError(err).Error("Error closing Discord bot")
	}

	log.Info("Shutdown completed")
	return nil
}
