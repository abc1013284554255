package entities

// Prize boundaries for the platform's RTP tiers.
const (
	TierMinimumPrize   = 100.0
	TierMidPrize       = 10000.0
	TierHighPrize      = 100000.0
)

// TierRequirement is the minimum RTP a lottery must offer for its prize
// bracket, with a display label for the bracket.
type TierRequirement struct {
	MinimumRTP float64
	Label      string
}

// MinimumRTPFor returns the tier requirement for a prize amount.
// Boundaries are inclusive on the lower end of each bracket.
func MinimumRTPFor(prize float64) TierRequirement {
	switch {
	case prize < TierMinimumPrize:
		return TierRequirement{MinimumRTP: 0, Label: "Below minimum ($100+)"}
	case prize < TierMidPrize:
		return TierRequirement{MinimumRTP: 70, Label: "$100-$10K tier"}
	case prize < TierHighPrize:
		return TierRequirement{MinimumRTP: 60, Label: "$10K-$100K tier"}
	default:
		return TierRequirement{MinimumRTP: 50, Label: "$100K+ tier"}
	}
}
