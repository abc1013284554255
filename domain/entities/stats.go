package entities

// PlatformStats is a snapshot of platform-wide activity computed from the
// most recent feed page.
type PlatformStats struct {
	TotalLotteries     int
	ActiveLotteries    int
	CompletedLotteries int
	TotalVolume        float64
	TotalPrizesPaid    float64
	TotalTicketsSold   int64
	LargestActivePrize float64
}

// CreatorRank is one row of the top-creators leaderboard.
type CreatorRank struct {
	Address   string
	Lotteries int
	Volume    float64
	Winners   int
}

// WinnerRank is one row of the top-winners leaderboard.
type WinnerRank struct {
	Address  string
	Wins     int
	TotalWon float64
}

// VolumeRank is one row of the top-volume leaderboard.
type VolumeRank struct {
	Address string
	Volume  float64
	Tickets int64
}

// Leaderboards bundles the three daily rankings.
type Leaderboards struct {
	Creators []CreatorRank
	Winners  []WinnerRank
	Volume   []VolumeRank
}
