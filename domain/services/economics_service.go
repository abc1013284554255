package services

import (
	"fmt"
	"math"

	"chancebot/domain/entities"
	"chancebot/domain/interfaces"
)

// economicsService implements the pure financial calculators. It holds no
// state; every method is a closed-form formula over its arguments.
type economicsService struct{}

// NewEconomicsService creates a new economics service
func NewEconomicsService() interfaces.EconomicsService {
	return &economicsService{}
}

// ComputeRTP calculates the return-to-player percentage:
// RTP = (prize * winProbability) / ticketPrice * 100.
func (s *economicsService) ComputeRTP(prize, ticketPrice float64, odds int64) (float64, error) {
	if prize <= 0 {
		return 0, fmt.Errorf("%w: prize must be positive, got %.2f", entities.ErrInvalidInput, prize)
	}
	if ticketPrice <= 0 {
		return 0, fmt.Errorf("%w: ticket price must be positive, got %.2f", entities.ErrInvalidInput, ticketPrice)
	}
	if odds < 1 {
		return 0, fmt.Errorf("%w: odds must be at least 1, got %d", entities.ErrInvalidInput, odds)
	}

	return prize / float64(odds) / ticketPrice * 100, nil
}

// MinimumRTPFor returns the tier requirement for a prize amount.
func (s *economicsService) MinimumRTPFor(prize float64) entities.TierRequirement {
	return entities.MinimumRTPFor(prize)
}

// PassesMinimum reports whether an RTP meets a tier minimum. The boundary is
// inclusive: exact equality passes.
func (s *economicsService) PassesMinimum(rtp, minimum float64) bool {
	return rtp >= minimum
}

// ComputeROI calculates the creator's expected ROI percentage. Expected
// ticket volume to produce one winner is modeled as exactly Odds tickets,
// the mean of the geometric distribution with success probability 1/Odds.
func (s *economicsService) ComputeROI(prize, ticketPrice float64, odds int64, affiliateRate float64) (float64, error) {
	setup := entities.LotterySetup{Prize: prize, TicketPrice: ticketPrice, Odds: odds, AffiliateRate: affiliateRate}
	if err := setup.Validate(); err != nil {
		return 0, err
	}

	netRate := setup.NetCreatorRate()
	if netRate <= 0 {
		return 0, fmt.Errorf("%w: net creator rate %.4f", entities.ErrMarginExhausted, netRate)
	}

	gross := float64(odds) * ticketPrice
	profit := gross*netRate - prize
	return profit / prize * 100, nil
}

// ComputeBreakEven returns the smallest ticket count guaranteed to cover the
// prize: floor(prize / (ticketPrice * netRate)) + 1. The floor+1 convention
// (off by one from a true ceiling at exact integers) is the platform's
// established behavior and is kept deliberately.
func (s *economicsService) ComputeBreakEven(prize, ticketPrice, affiliateRate float64) (int64, error) {
	if prize <= 0 {
		return 0, fmt.Errorf("%w: prize must be positive, got %.2f", entities.ErrInvalidInput, prize)
	}
	if ticketPrice <= 0 {
		return 0, fmt.Errorf("%w: ticket price must be positive, got %.2f", entities.ErrInvalidInput, ticketPrice)
	}
	if affiliateRate < 0 || affiliateRate > entities.MaxAffiliateRate {
		return 0, fmt.Errorf("%w: affiliate rate must be within [0, %.2f], got %.4f", entities.ErrInvalidInput, entities.MaxAffiliateRate, affiliateRate)
	}

	netRate := 1 - entities.PlatformFeeRate - affiliateRate
	if netRate <= 0 {
		return 0, fmt.Errorf("%w: net creator rate %.4f", entities.ErrMarginExhausted, netRate)
	}

	return int64(math.Floor(prize/(ticketPrice*netRate))) + 1, nil
}

// Evaluate computes the full economics record for a setup.
func (s *economicsService) Evaluate(setup entities.LotterySetup) (*entities.EconomicsResult, error) {
	if err := setup.Validate(); err != nil {
		return nil, err
	}

	rtp, err := s.ComputeRTP(setup.Prize, setup.TicketPrice, setup.Odds)
	if err != nil {
		return nil, err
	}

	roi, err := s.ComputeROI(setup.Prize, setup.TicketPrice, setup.Odds, setup.AffiliateRate)
	if err != nil {
		return nil, err
	}

	breakEven, err := s.ComputeBreakEven(setup.Prize, setup.TicketPrice, setup.AffiliateRate)
	if err != nil {
		return nil, err
	}

	tier := entities.MinimumRTPFor(setup.Prize)
	expectedProfit := float64(setup.Odds)*setup.TicketPrice*setup.NetCreatorRate() - setup.Prize

	return &entities.EconomicsResult{
		Setup:             setup,
		RTPPercent:        rtp,
		Tier:              tier,
		PassesMinimum:     s.PassesMinimum(rtp, tier.MinimumRTP),
		CreatorROIPercent: roi,
		BreakEvenTickets:  breakEven,
		ExpectedProfit:    expectedProfit,
	}, nil
}

// ProfitScenarios evaluates net profit at half, exactly, and one-and-a-half
// times the expected ticket volume. These are presentation scenarios layered
// on the same formula, not separate models.
func (s *economicsService) ProfitScenarios(setup entities.LotterySetup) ([]entities.ProfitScenario, error) {
	if err := setup.Validate(); err != nil {
		return nil, err
	}

	netRate := setup.NetCreatorRate()
	scenarios := []entities.ProfitScenario{
		{Label: "Worst case", OddsFactor: 0.5},
		{Label: "Expected", OddsFactor: 1.0},
		{Label: "Best case", OddsFactor: 1.5},
	}
	for i := range scenarios {
		tickets := int64(scenarios[i].OddsFactor * float64(setup.Odds))
		scenarios[i].TicketsSold = tickets
		scenarios[i].NetProfit = float64(tickets)*setup.TicketPrice*netRate - setup.Prize
	}
	return scenarios, nil
}
