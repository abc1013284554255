package services

import (
	"fmt"

	"chancebot/domain/entities"
	"chancebot/domain/interfaces"
)

// Weighted points for the overall recommendation. Tier pass/fail dominates
// but the recommendation is literal point accumulation, so ties remain
// possible when scores coincide.
const (
	comparePointsTier      = 3
	comparePointsROI       = 2
	comparePointsProfit    = 2
	comparePointsBreakEven = 1
)

type comparisonService struct {
	economics interfaces.EconomicsService
}

// NewComparisonService creates a new comparison service
func NewComparisonService(economics interfaces.EconomicsService) interfaces.ComparisonService {
	return &comparisonService{economics: economics}
}

// Compare evaluates both setups under a shared affiliate rate and reports
// per-metric winners plus a weighted-point recommendation.
func (s *comparisonService) Compare(a, b entities.LotterySetup, affiliateRate float64) (*entities.ComparisonResult, error) {
	a.AffiliateRate = affiliateRate
	b.AffiliateRate = affiliateRate

	ecoA, err := s.economics.Evaluate(a)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate setup A: %w", err)
	}
	ecoB, err := s.economics.Evaluate(b)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate setup B: %w", err)
	}

	result := &entities.ComparisonResult{A: *ecoA, B: *ecoB}

	result.Winners.RTP = higherWins(ecoA.RTPPercent, ecoB.RTPPercent)
	result.Winners.ROI = higherWins(ecoA.CreatorROIPercent, ecoB.CreatorROIPercent)
	result.Winners.Profit = higherWins(ecoA.ExpectedProfit, ecoB.ExpectedProfit)
	result.Winners.BreakEven = higherWins(float64(ecoB.BreakEvenTickets), float64(ecoA.BreakEvenTickets))

	// Tier points go to the side that passes its minimum; when both or
	// neither pass, the higher RTP takes them.
	tierWinner := result.Winners.RTP
	if ecoA.PassesMinimum != ecoB.PassesMinimum {
		if ecoA.PassesMinimum {
			tierWinner = entities.WinnerA
		} else {
			tierWinner = entities.WinnerB
		}
	}

	addPoints(result, tierWinner, comparePointsTier)
	addPoints(result, result.Winners.ROI, comparePointsROI)
	addPoints(result, result.Winners.Profit, comparePointsProfit)
	addPoints(result, result.Winners.BreakEven, comparePointsBreakEven)

	switch {
	case result.ScoreA > result.ScoreB:
		result.Recommendation = entities.WinnerA
	case result.ScoreB > result.ScoreA:
		result.Recommendation = entities.WinnerB
	default:
		result.Recommendation = entities.WinnerTie
	}

	return result, nil
}

// higherWins returns the winner for a metric where larger is better.
func higherWins(a, b float64) entities.ComparisonWinner {
	switch {
	case a > b:
		return entities.WinnerA
	case b > a:
		return entities.WinnerB
	default:
		return entities.WinnerTie
	}
}

func addPoints(result *entities.ComparisonResult, winner entities.ComparisonWinner, points int) {
	switch winner {
	case entities.WinnerA:
		result.ScoreA += points
	case entities.WinnerB:
		result.ScoreB += points
	}
}
