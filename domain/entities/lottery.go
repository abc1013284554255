package entities

import "time"

// Lottery statuses as reported by the subgraph.
const (
	LotteryStatusActive    = "ACTIVE"
	LotteryStatusCompleted = "COMPLETED"
)

// Announcement routing thresholds.
const (
	HighValuePrizeThreshold = 10000.0
	MoonshotPrizeThreshold  = 50000.0
	BudgetTicketThreshold   = 10.0
)

// Lottery is an on-chain lottery as reported by the Goldsky subgraph.
// Monetary fields are USDC amounts, already converted from the feed's
// micro-USDC integers.
type Lottery struct {
	ID               string
	ContractAddress  string
	Creator          string
	Prize            float64
	TicketPrice      float64
	Odds             int64 // pick range; 0 when the subgraph omits it
	AffiliatePercent float64
	DurationSeconds  *int64
	MaxTickets       *int64
	TicketsSold      int64
	GrossRevenue     float64
	Status           string
	HasWinner        bool
	Winner           string
	CreatedAt        time.Time
	URL              string
}

// Key returns the deduplication key for the lottery: its subgraph ID,
// falling back to the contract address.
func (l *Lottery) Key() string {
	if l.ID != "" {
		return l.ID
	}
	return l.ContractAddress
}

// IsActive returns true while the lottery is still selling tickets.
func (l *Lottery) IsActive() bool {
	return l.Status == LotteryStatusActive
}

// Setup converts the lottery's feed fields into engine inputs.
func (l *Lottery) Setup() LotterySetup {
	return LotterySetup{
		Prize:         l.Prize,
		TicketPrice:   l.TicketPrice,
		Odds:          l.Odds,
		AffiliateRate: l.AffiliatePercent / 100,
	}
}

// IsHighValue returns true for prizes that belong in the high-value channel.
func (l *Lottery) IsHighValue() bool {
	return l.Prize >= HighValuePrizeThreshold
}

// IsMoonshot returns true for prizes that belong in the moonshots channel.
func (l *Lottery) IsMoonshot() bool {
	return l.Prize >= MoonshotPrizeThreshold
}

// IsBudgetPlay returns true for ticket prices that belong in the
// budget-plays channel.
func (l *Lottery) IsBudgetPlay() bool {
	return l.TicketPrice < BudgetTicketThreshold
}
