package services

import (
	"fmt"
	"math"

	"chancebot/domain/entities"
	"chancebot/domain/interfaces"

	log "github.com/sirupsen/logrus"
)

const (
	// minOddsFloor is the tightest odds any lottery is permitted: 1-in-10.
	minOddsFloor = 10

	// optimizerMaxAttempts bounds the ticket price search so the optimizer
	// always terminates.
	optimizerMaxAttempts = 20

	// optimizerPriceStep is the ticket price increment between attempts.
	optimizerPriceStep = 5.0
)

// priceBracket maps a prize range to an initial ticket price heuristic:
// a fraction of the prize with an absolute floor.
type priceBracket struct {
	maxPrize float64 // exclusive; the last bracket uses +Inf
	fraction float64
	floor    float64
}

// strategyTuning holds the constants that differentiate the three
// optimization strategies. The search algorithm is identical for all.
type strategyTuning struct {
	targetROIPercent float64
	priceCapFraction float64 // ticket price search bound as a fraction of prize
	brackets         []priceBracket
}

var strategyTunings = map[entities.Strategy]strategyTuning{
	entities.StrategyProfit: {
		targetROIPercent: 25,
		priceCapFraction: 0.15,
		brackets: []priceBracket{
			{maxPrize: 1000, fraction: 0.02, floor: 5},
			{maxPrize: 10000, fraction: 0.015, floor: 10},
			{maxPrize: 100000, fraction: 0.008, floor: 25},
			{maxPrize: math.Inf(1), fraction: 0.004, floor: 75},
		},
	},
	entities.StrategyVolume: {
		targetROIPercent: 10,
		priceCapFraction: 0.10,
		brackets: []priceBracket{
			{maxPrize: 1000, fraction: 0.005, floor: 1},
			{maxPrize: 10000, fraction: 0.004, floor: 2},
			{maxPrize: 100000, fraction: 0.003, floor: 5},
			{maxPrize: math.Inf(1), fraction: 0.002, floor: 10},
		},
	},
	entities.StrategyBalanced: {
		targetROIPercent: 15,
		priceCapFraction: 0.10,
		brackets: []priceBracket{
			{maxPrize: 1000, fraction: 0.01, floor: 2},
			{maxPrize: 10000, fraction: 0.008, floor: 5},
			{maxPrize: 100000, fraction: 0.005, floor: 10},
			{maxPrize: math.Inf(1), fraction: 0.003, floor: 25},
		},
	},
}

type optimizerService struct {
	economics interfaces.EconomicsService
}

// NewOptimizerService creates a new optimizer service
func NewOptimizerService(economics interfaces.EconomicsService) interfaces.OptimizerService {
	return &optimizerService{economics: economics}
}

// Optimize searches for the cheapest ticket price whose odds window is
// non-empty, then picks the most player-favorable odds that still clears
// the strategy's profit target.
func (s *optimizerService) Optimize(prize, affiliateRate float64, strategy entities.Strategy) (*entities.OptimizationResult, error) {
	if prize <= 0 {
		return nil, fmt.Errorf("%w: prize must be positive, got %.2f", entities.ErrInvalidInput, prize)
	}
	if affiliateRate < 0 || affiliateRate > entities.MaxAffiliateRate {
		return nil, fmt.Errorf("%w: affiliate rate must be within [0, %.2f], got %.4f", entities.ErrInvalidInput, entities.MaxAffiliateRate, affiliateRate)
	}
	tuning, ok := strategyTunings[strategy]
	if !ok {
		return nil, fmt.Errorf("%w: unknown strategy %q", entities.ErrInvalidInput, strategy)
	}

	netRate := 1 - entities.PlatformFeeRate - affiliateRate
	tier := entities.MinimumRTPFor(prize)
	priceCap := tuning.priceCapFraction * prize

	price := roundTicketPrice(initialTicketPrice(prize, tuning))
	for attempt := 0; attempt < optimizerMaxAttempts && price <= priceCap; attempt++ {
		minOdds := minOddsForProfit(prize, price, netRate, tuning.targetROIPercent)

		// A zero tier minimum (sub-$100 prizes) puts no ceiling on odds.
		if tier.MinimumRTP > 0 {
			maxOdds := maxOddsForRTP(prize, price, tier.MinimumRTP)
			if minOdds > maxOdds {
				// Profit floor and RTP ceiling do not intersect at this
				// price; a pricier ticket widens the window.
				price += optimizerPriceStep
				continue
			}
		}

		setup := entities.LotterySetup{
			Prize:         prize,
			TicketPrice:   price,
			Odds:          minOdds,
			AffiliateRate: affiliateRate,
		}
		eco, err := s.economics.Evaluate(setup)
		if err != nil {
			return nil, fmt.Errorf("failed to evaluate optimized setup: %w", err)
		}

		log.WithFields(log.Fields{
			"strategy": strategy,
			"prize":    prize,
			"ticket":   price,
			"odds":     minOdds,
			"attempts": attempt + 1,
		}).Debug("Optimizer found feasible setup")

		return &entities.OptimizationResult{
			Strategy:  strategy,
			Setup:     setup,
			Economics: *eco,
		}, nil
	}

	return nil, fmt.Errorf("%w: strategy %s for prize %.2f at affiliate %.2f", entities.ErrInfeasible, strategy, prize, affiliateRate)
}

// initialTicketPrice picks the strategy's starting price for a prize.
func initialTicketPrice(prize float64, tuning strategyTuning) float64 {
	for _, b := range tuning.brackets {
		if prize < b.maxPrize {
			return math.Max(b.floor, prize*b.fraction)
		}
	}
	last := tuning.brackets[len(tuning.brackets)-1]
	return math.Max(last.floor, prize*last.fraction)
}

// roundTicketPrice rounds to the nearest $5 increment, or to the nearest
// whole dollar below $5 (minimum $1).
func roundTicketPrice(price float64) float64 {
	if price >= 5 {
		return math.Round(price/5) * 5
	}
	return math.Max(1, math.Round(price))
}

// minOddsForProfit is the smallest odds value whose expected volume clears
// the ROI target: ceil(prize * (1 + roi/100) / (price * netRate)), floored
// at the platform's 1-in-10 odds minimum.
func minOddsForProfit(prize, price, netRate, targetROIPercent float64) int64 {
	odds := int64(math.Ceil(prize * (1 + targetROIPercent/100) / (price * netRate)))
	if odds < minOddsFloor {
		odds = minOddsFloor
	}
	return odds
}

// maxOddsForRTP is the largest odds value that still meets the tier's RTP
// minimum: floor(prize * 100 / (minRTP * price)).
func maxOddsForRTP(prize, price, minRTP float64) int64 {
	return int64(math.Floor(prize * 100 / (minRTP * price)))
}
