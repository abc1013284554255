package entities

import "fmt"

// Strategy selects the optimizer's tuning constants.
type Strategy string

const (
	StrategyProfit   Strategy = "profit"
	StrategyVolume   Strategy = "volume"
	StrategyBalanced Strategy = "balanced"
)

// ParseStrategy converts user input into a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyProfit, StrategyVolume, StrategyBalanced:
		return Strategy(s), nil
	default:
		return "", fmt.Errorf("%w: unknown strategy %q", ErrInvalidInput, s)
	}
}

// OptimizationResult is a concrete setup chosen by the optimizer together
// with its economics, tagged with the strategy that produced it.
type OptimizationResult struct {
	Strategy  Strategy
	Setup     LotterySetup
	Economics EconomicsResult
}
