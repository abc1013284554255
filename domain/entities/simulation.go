package entities

// Trial count bounds for the Monte Carlo simulator.
const (
	MinSimulationTrials     = 100
	MaxSimulationTrials     = 5000
	DefaultSimulationTrials = 1000
)

// ProfitSummary summarizes the per-trial net profit distribution.
// Median is the simple middle index of the sorted samples and the
// percentiles are floor(trials*p) index lookups, not interpolated.
type ProfitSummary struct {
	Mean   float64
	Median float64
	Min    float64
	Max    float64
	P10    float64
	P25    float64
	P75    float64
	P90    float64
}

// TicketSummary summarizes tickets sold until the first winner across trials.
type TicketSummary struct {
	Mean   float64
	Median int64
	Min    int64
	Max    int64
}

// SimulationRun is the aggregate outcome of a batch of independent trials.
// Runs are intentionally unseeded; two runs of the same setup differ.
type SimulationRun struct {
	Setup  LotterySetup
	Trials int

	Profit  ProfitSummary
	Tickets TicketSummary

	// ProfitableFraction is the share of trials with net profit > 0.
	ProfitableFraction float64

	// BelowBreakEvenFraction is the share of trials where the winner was
	// found before the break-even ticket count was reached.
	BelowBreakEvenFraction float64

	// BreakEvenTickets is the threshold used for BelowBreakEvenFraction.
	BreakEvenTickets int64
}
