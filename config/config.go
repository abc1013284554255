package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"
)

// DefaultSubgraphURL is the public Goldsky endpoint for the Chance lottery
// subgraph.
const DefaultSubgraphURL = "https://api.goldsky.com/api/public/project_cmjboofbdidyj01x8bi8t0xia/subgraphs/chance-lottery-testnet/2.0.0/gn"

// Config holds all application configuration
type Config struct {
	// Discord configuration
	DiscordToken string
	GuildID      string // Primary Discord guild ID

	// Subgraph configuration
	SubgraphURL string

	// Monitor configuration
	CheckInterval time.Duration // How often the monitor polls for new lotteries

	// Announcement channel IDs; empty channels are skipped
	NewLotteriesChannelID string
	HighValueChannelID    string
	BudgetPlaysChannelID  string
	MoonshotsChannelID    string
	LeaderboardChannelID  string

	// Leaderboard configuration
	LeaderboardPostHour int // Hour in UTC when daily leaderboards are posted (0-23)

	// Health server configuration
	HealthAddr string

	// Environment
	Environment string // "development" or "production"
}

var (
	instance *Config
	once     sync.Once
	mu       sync.Mutex // Protects instance for test setup
)

// Get returns the global configuration instance
func Get() *Config {
	mu.Lock()
	defer mu.Unlock()

	// If instance is already set (e.g., by tests), return it
	if instance != nil {
		return instance
	}

	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			// In test environment, use a default test config instead of panicking
			if os.Getenv("GO_TEST") == "1" || os.Getenv("ENVIRONMENT") == "test" {
				instance = NewTestConfig()
				instance.DiscordToken = "test-token"
			} else {
				panic(fmt.Sprintf("failed to load config: %v", err))
			}
		}
	})
	return instance
}

// load loads configuration from environment variables
func load() (*Config, error) {
	config := &Config{
		// Discord
		DiscordToken: os.Getenv("DISCORD_TOKEN"),
		GuildID:      os.Getenv("GUILD_ID"),

		// Subgraph
		SubgraphURL: getEnvWithDefault("CHANCE_API_URL", DefaultSubgraphURL),

		// Monitor
		CheckInterval: 30 * time.Second,

		// Channels
		NewLotteriesChannelID: os.Getenv("CHANNEL_NEW_LOTTERIES"),
		HighValueChannelID:    os.Getenv("CHANNEL_HIGH_VALUE"),
		BudgetPlaysChannelID:  os.Getenv("CHANNEL_BUDGET_PLAYS"),
		MoonshotsChannelID:    os.Getenv("CHANNEL_MOONSHOTS"),
		LeaderboardChannelID:  os.Getenv("CHANNEL_LEADERBOARD"),

		// Leaderboards
		LeaderboardPostHour: 12, // Noon UTC

		// Health server
		HealthAddr: getEnvWithDefault("HEALTH_ADDR", ":8080"),

		// Environment
		Environment: os.Getenv("ENVIRONMENT"),
	}

	// Override defaults if environment variables are set
	if interval := os.Getenv("CHECK_INTERVAL_SECONDS"); interval != "" {
		if seconds, err := strconv.Atoi(interval); err == nil && seconds > 0 {
			config.CheckInterval = time.Duration(seconds) * time.Second
		}
	}
	if hour := os.Getenv("LEADERBOARD_POST_HOUR"); hour != "" {
		if parsed, err := strconv.Atoi(hour); err == nil && parsed >= 0 && parsed <= 23 {
			config.LeaderboardPostHour = parsed
		}
	}

	// Set default environment if not specified
	if config.Environment == "" {
		config.Environment = "development"
	}

	if config.Environment != "test" {
		// Validate required configuration
		if config.DiscordToken == "" {
			return nil, fmt.Errorf("DISCORD_TOKEN is required")
		}
	}

	return config, nil
}

// getEnvWithDefault returns the environment variable value or a default if not set
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Test helpers - only use in tests

// SetTestConfig overrides the global config instance for testing
// This should only be called from test files
func SetTestConfig(testConfig *Config) {
	mu.Lock()
	defer mu.Unlock()
	instance = testConfig
}

// ResetConfig resets the global config instance and sync.Once for testing
// This should only be called from test files
func ResetConfig() {
	mu.Lock()
	defer mu.Unlock()
	instance = nil
	once = sync.Once{}
}

// NewTestConfig creates a minimal config suitable for unit tests
func NewTestConfig() *Config {
	return &Config{
		Environment:         "test",
		SubgraphURL:         DefaultSubgraphURL,
		CheckInterval:       30 * time.Second,
		LeaderboardPostHour: 12,
		HealthAddr:          ":0",
	}
}
