package entities

// SuggestedSetup is one option from the reverse calculator: a concrete
// ticket price and odds hitting a requested player RTP, with its economics.
type SuggestedSetup struct {
	Name        string
	Description string
	Setup       LotterySetup
	Economics   EconomicsResult
}
