package services

import (
	"testing"

	"chancebot/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptimizerService_Optimize_WorkedExamples(t *testing.T) {
	t.Parallel()

	svc := NewOptimizerService(NewEconomicsService())

	tests := []struct {
		name       string
		strategy   entities.Strategy
		wantTicket float64
		wantOdds   int64
	}{
		// $5000 prize, no affiliate. Each strategy starts at its bracket
		// price and finds a non-empty odds window on the first attempt.
		{"profit", entities.StrategyProfit, 75, 88},
		{"volume", entities.StrategyVolume, 20, 290},
		{"balanced", entities.StrategyBalanced, 40, 152},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := svc.Optimize(5000, 0, tt.strategy)
			require.NoError(t, err)

			assert.Equal(t, tt.strategy, result.Strategy)
			assert.Equal(t, tt.wantTicket, result.Setup.TicketPrice)
			assert.Equal(t, tt.wantOdds, result.Setup.Odds)
			assert.GreaterOrEqual(t, result.Economics.RTPPercent, 70.0)
			assert.True(t, result.Economics.PassesMinimum)
		})
	}
}

func TestOptimizerService_Optimize_FeasibilitySweep(t *testing.T) {
	t.Parallel()

	svc := NewOptimizerService(NewEconomicsService())

	prizes := []float64{100, 500, 2500, 10000, 50000, 100000, 500000}
	rates := []float64{0, 0.05, 0.10, 0.20}
	strategies := []entities.Strategy{entities.StrategyProfit, entities.StrategyVolume, entities.StrategyBalanced}

	for _, prize := range prizes {
		for _, rate := range rates {
			for _, strategy := range strategies {
				result, err := svc.Optimize(prize, rate, strategy)
				if err != nil {
					assert.ErrorIs(t, err, entities.ErrInfeasible,
						"prize=%v rate=%v strategy=%v", prize, rate, strategy)
					continue
				}

				tier := entities.MinimumRTPFor(prize)
				assert.GreaterOrEqual(t, result.Economics.RTPPercent, tier.MinimumRTP,
					"prize=%v rate=%v strategy=%v", prize, rate, strategy)
				assert.Greater(t, result.Economics.CreatorROIPercent, 0.0,
					"prize=%v rate=%v strategy=%v", prize, rate, strategy)
				assert.GreaterOrEqual(t, result.Setup.Odds, int64(minOddsFloor))
				assert.LessOrEqual(t, result.Setup.TicketPrice, strategyTunings[strategy].priceCapFraction*prize)
			}
		}
	}
}

func TestOptimizerService_Optimize_InfeasibleAtMaxAffiliate(t *testing.T) {
	t.Parallel()

	svc := NewOptimizerService(NewEconomicsService())

	// At a 20% affiliate rate the net rate is 0.75, so the best reachable
	// RTP with a 15% profit target is 75/1.15 = 65.2% - under the 70%
	// minimum for the $100-$10K tier at every ticket price.
	_, err := svc.Optimize(5000, entities.MaxAffiliateRate, entities.StrategyBalanced)
	assert.ErrorIs(t, err, entities.ErrInfeasible)
}

func TestOptimizerService_Optimize_NoTierCeilingBelowMinimumPrize(t *testing.T) {
	t.Parallel()

	svc := NewOptimizerService(NewEconomicsService())

	// Sub-$100 prizes have no RTP minimum, so the odds window never closes
	// and even the max affiliate rate stays feasible.
	result, err := svc.Optimize(50, entities.MaxAffiliateRate, entities.StrategyProfit)
	require.NoError(t, err)
	assert.Greater(t, result.Economics.CreatorROIPercent, 0.0)
	assert.Zero(t, result.Economics.Tier.MinimumRTP)
}

func TestOptimizerService_Optimize_InvalidInputs(t *testing.T) {
	t.Parallel()

	svc := NewOptimizerService(NewEconomicsService())

	_, err := svc.Optimize(0, 0, entities.StrategyBalanced)
	assert.ErrorIs(t, err, entities.ErrInvalidInput)

	_, err = svc.Optimize(5000, -0.01, entities.StrategyBalanced)
	assert.ErrorIs(t, err, entities.ErrInvalidInput)

	_, err = svc.Optimize(5000, 0.21, entities.StrategyBalanced)
	assert.ErrorIs(t, err, entities.ErrInvalidInput)

	_, err = svc.Optimize(5000, 0, entities.Strategy("yolo"))
	assert.ErrorIs(t, err, entities.ErrInvalidInput)
}
