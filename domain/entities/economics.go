package entities

// EconomicsResult is the full evaluation of a lottery setup from the
// creator's perspective. All fields derive deterministically from the setup
// plus the fixed platform fee.
type EconomicsResult struct {
	Setup             LotterySetup
	RTPPercent        float64
	Tier              TierRequirement
	PassesMinimum     bool
	CreatorROIPercent float64
	BreakEvenTickets  int64
	ExpectedProfit    float64 // net profit at expected volume (Odds tickets sold)
}

// ProfitScenario is a presentation-level what-if: net profit at a given
// ticket volume relative to the expected volume of one winner.
type ProfitScenario struct {
	Label       string
	OddsFactor  float64 // ticket volume as a multiple of Odds
	TicketsSold int64
	NetProfit   float64
}
