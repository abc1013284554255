package entities

import "fmt"

const (
	// PlatformFeeRate is the fixed fraction of gross ticket revenue retained
	// by the platform operator.
	PlatformFeeRate = 0.05

	// MaxAffiliateRate is the largest affiliate share a lottery may configure.
	MaxAffiliateRate = 0.20
)

// LotterySetup holds the inputs to every economics calculation. Values are
// USDC amounts; Odds is the pick range of a "1 in Odds" winning chance.
type LotterySetup struct {
	Prize         float64
	TicketPrice   float64
	Odds          int64
	AffiliateRate float64 // fraction of gross revenue, [0, 0.20]
}

// Validate checks the setup against the engine's input ranges.
func (s LotterySetup) Validate() error {
	if s.Prize <= 0 {
		return fmt.Errorf("%w: prize must be positive, got %.2f", ErrInvalidInput, s.Prize)
	}
	if s.TicketPrice <= 0 {
		return fmt.Errorf("%w: ticket price must be positive, got %.2f", ErrInvalidInput, s.TicketPrice)
	}
	if s.Odds < 1 {
		return fmt.Errorf("%w: odds must be at least 1, got %d", ErrInvalidInput, s.Odds)
	}
	if s.AffiliateRate < 0 || s.AffiliateRate > MaxAffiliateRate {
		return fmt.Errorf("%w: affiliate rate must be within [0, %.2f], got %.4f", ErrInvalidInput, MaxAffiliateRate, s.AffiliateRate)
	}
	return nil
}

// WinProbability returns the per-ticket chance of winning.
func (s LotterySetup) WinProbability() float64 {
	return 1 / float64(s.Odds)
}

// NetCreatorRate returns the fraction of gross revenue the creator keeps
// after the platform fee and affiliate share.
func (s LotterySetup) NetCreatorRate() float64 {
	return 1 - PlatformFeeRate - s.AffiliateRate
}
