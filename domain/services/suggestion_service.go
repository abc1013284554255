package services

import (
	"fmt"
	"math"

	"chancebot/domain/entities"
	"chancebot/domain/interfaces"
)

// suggestionOption is one candidate shape for the reverse calculator.
type suggestionOption struct {
	name        string
	description string
	fraction    float64 // ticket price as a fraction of the prize
	floor       float64
}

var primaryOptions = []suggestionOption{
	{name: "Budget Play", description: "Low entry, high odds - accessible to everyone", fraction: 0.005, floor: 1},
	{name: "Standard", description: "Balanced entry and odds", fraction: 0.01, floor: 5},
	{name: "Premium", description: "Higher entry, better odds per ticket", fraction: 0.025, floor: 10},
}

type suggestionService struct {
	economics interfaces.EconomicsService
}

// NewSuggestionService creates a new reverse calculator service
func NewSuggestionService(economics interfaces.EconomicsService) interfaces.SuggestionService {
	return &suggestionService{economics: economics}
}

// SuggestSetups derives up to three ticket/odds pairs that hit the target
// RTP. The identity used throughout: ticket * odds = prize * 100 / RTP.
func (s *suggestionService) SuggestSetups(prize, targetRTP, affiliateRate float64) ([]entities.SuggestedSetup, error) {
	if prize < entities.TierMinimumPrize {
		return nil, fmt.Errorf("%w: minimum prize is $%.0f, got %.2f", entities.ErrInvalidInput, entities.TierMinimumPrize, prize)
	}
	if targetRTP <= 0 || targetRTP > 100 {
		return nil, fmt.Errorf("%w: target RTP must be within (0, 100], got %.2f", entities.ErrInvalidInput, targetRTP)
	}
	if affiliateRate < 0 || affiliateRate > entities.MaxAffiliateRate {
		return nil, fmt.Errorf("%w: affiliate rate must be within [0, %.2f], got %.4f", entities.ErrInvalidInput, entities.MaxAffiliateRate, affiliateRate)
	}

	tier := entities.MinimumRTPFor(prize)
	if targetRTP < tier.MinimumRTP {
		return nil, fmt.Errorf("%w: target RTP %.1f%% is below the %.0f%% minimum for %s",
			entities.ErrInvalidInput, targetRTP, tier.MinimumRTP, tier.Label)
	}

	// An RTP above the creator's net rate can never be profitable at
	// expected volume, whatever the parameters.
	maxProfitableRTP := (1 - entities.PlatformFeeRate - affiliateRate) * 100
	if targetRTP > maxProfitableRTP {
		return nil, fmt.Errorf("%w: target RTP %.1f%% exceeds the max profitable %.1f%%",
			entities.ErrMarginExhausted, targetRTP, maxProfitableRTP)
	}

	product := prize * 100 / targetRTP

	var candidates []entities.SuggestedSetup
	for _, opt := range primaryOptions {
		ticket := math.Max(opt.floor, roundCents(prize*opt.fraction))
		odds := int64(product / ticket)
		if odds < minOddsFloor {
			continue
		}
		candidate, err := s.buildSuggestion(opt.name, opt.description, prize, ticket, odds, affiliateRate)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, *candidate)
	}

	// Fill out the list with a micro and a whale variant when the primary
	// shapes collapsed into each other.
	if len(candidates) < 3 {
		odds := int64(product)
		if odds >= minOddsFloor && !hasTicketPrice(candidates, 1) {
			candidate, err := s.buildSuggestion("Micro", "$1 entry - maximum accessibility", prize, 1, odds, affiliateRate)
			if err != nil {
				return nil, err
			}
			candidates = append([]entities.SuggestedSetup{*candidate}, candidates...)
		}
	}
	if len(candidates) < 3 {
		ticket := math.Max(50, roundCents(prize*0.05))
		odds := int64(product / ticket)
		if odds >= minOddsFloor {
			candidate, err := s.buildSuggestion("Whale", "High entry, best odds", prize, ticket, odds, affiliateRate)
			if err != nil {
				return nil, err
			}
			candidates = append(candidates, *candidate)
		}
	}

	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: no valid options for prize %.2f at target RTP %.1f%%", entities.ErrInfeasible, prize, targetRTP)
	}
	if len(candidates) > 3 {
		candidates = candidates[:3]
	}
	return candidates, nil
}

func (s *suggestionService) buildSuggestion(name, description string, prize, ticket float64, odds int64, affiliateRate float64) (*entities.SuggestedSetup, error) {
	setup := entities.LotterySetup{
		Prize:         prize,
		TicketPrice:   ticket,
		Odds:          odds,
		AffiliateRate: affiliateRate,
	}
	eco, err := s.economics.Evaluate(setup)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate suggested setup %s: %w", name, err)
	}
	return &entities.SuggestedSetup{
		Name:        name,
		Description: description,
		Setup:       setup,
		Economics:   *eco,
	}, nil
}

func hasTicketPrice(setups []entities.SuggestedSetup, price float64) bool {
	for _, s := range setups {
		if s.Setup.TicketPrice == price {
			return true
		}
	}
	return false
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
