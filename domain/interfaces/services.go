package interfaces

import (
	"context"

	"chancebot/domain/entities"
)

// EconomicsService defines the pure financial calculators every command and
// the monitor depend on. All methods are stateless and safe for concurrent
// use; invalid inputs return errors wrapping entities.ErrInvalidInput.
type EconomicsService interface {
	// ComputeRTP returns the return-to-player percentage for a setup.
	ComputeRTP(prize, ticketPrice float64, odds int64) (float64, error)

	// MinimumRTPFor returns the tier requirement for a prize amount.
	MinimumRTPFor(prize float64) entities.TierRequirement

	// PassesMinimum reports whether an RTP meets a tier minimum (inclusive).
	PassesMinimum(rtp, minimum float64) bool

	// ComputeROI returns the creator's expected return on investment
	// percentage, modeling expected volume as exactly Odds tickets.
	ComputeROI(prize, ticketPrice float64, odds int64, affiliateRate float64) (float64, error)

	// ComputeBreakEven returns the smallest ticket count whose net revenue
	// covers the prize. Returns entities.ErrMarginExhausted when the fee
	// plus affiliate rate leave no margin.
	ComputeBreakEven(prize, ticketPrice, affiliateRate float64) (int64, error)

	// Evaluate computes the full economics record for a setup.
	Evaluate(setup entities.LotterySetup) (*entities.EconomicsResult, error)

	// ProfitScenarios returns worst/expected/best case net profit at
	// 0.5x, 1.0x and 1.5x the expected ticket volume.
	ProfitScenarios(setup entities.LotterySetup) ([]entities.ProfitScenario, error)
}

// OptimizerService searches for a ticket price and odds pair satisfying both
// the strategy's profit target and the prize tier's RTP minimum.
type OptimizerService interface {
	// Optimize returns entities.ErrInfeasible when the bounded search finds
	// no valid setup; it never returns one that violates the tier minimum.
	Optimize(prize, affiliateRate float64, strategy entities.Strategy) (*entities.OptimizationResult, error)
}

// SimulationService runs Monte Carlo trials of a setup.
type SimulationService interface {
	// Simulate runs the given number of independent trials. Trials must be
	// within [entities.MinSimulationTrials, entities.MaxSimulationTrials].
	Simulate(setup entities.LotterySetup, trials int) (*entities.SimulationRun, error)
}

// ComparisonService compares two setups under a shared affiliate rate.
type ComparisonService interface {
	Compare(a, b entities.LotterySetup, affiliateRate float64) (*entities.ComparisonResult, error)
}

// SuggestionService is the reverse calculator: prize plus target RTP in,
// concrete parameter options out.
type SuggestionService interface {
	SuggestSetups(prize, targetRTP, affiliateRate float64) ([]entities.SuggestedSetup, error)
}

// AlertService manages user alert criteria and matches discovered lotteries
// against them.
type AlertService interface {
	// CreateAlert stores a new alert for the user, assigning the next
	// sequential ID. Fails once the user holds entities.MaxAlertsPerUser.
	CreateAlert(userID string, alert entities.Alert) (*entities.Alert, error)

	// GetAlerts returns the user's alerts ordered by ID.
	GetAlerts(userID string) []*entities.Alert

	// DeleteAlert removes an alert by its per-user ID and renumbers the
	// remaining alerts so IDs stay dense.
	DeleteAlert(userID string, alertID int) error

	// MatchingAlerts returns every alert satisfied by the lottery.
	MatchingAlerts(lottery *entities.Lottery) []*entities.Alert
}

// LeaderboardService aggregates feed data into rankings and platform stats.
type LeaderboardService interface {
	Leaderboards(ctx context.Context) (*entities.Leaderboards, error)
	PlatformStats(ctx context.Context) (*entities.PlatformStats, error)
}
