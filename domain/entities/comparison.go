package entities

// ComparisonWinner identifies which side of a two-setup comparison won a
// metric or the overall recommendation.
type ComparisonWinner string

const (
	WinnerA   ComparisonWinner = "A"
	WinnerB   ComparisonWinner = "B"
	WinnerTie ComparisonWinner = "tie"
)

// MetricWinners records the per-metric outcome of a comparison.
// Higher RTP, ROI and profit win; lower break-even wins.
type MetricWinners struct {
	RTP       ComparisonWinner
	ROI       ComparisonWinner
	Profit    ComparisonWinner
	BreakEven ComparisonWinner
}

// ComparisonResult holds both evaluations, the per-metric winners, and the
// weighted-point recommendation (tier pass 3, ROI 2, profit 2, break-even 1).
type ComparisonResult struct {
	A EconomicsResult
	B EconomicsResult

	Winners MetricWinners

	ScoreA         int
	ScoreB         int
	Recommendation ComparisonWinner
}
