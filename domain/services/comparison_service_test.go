package services

import (
	"testing"

	"chancebot/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComparisonService_Compare_WorkedExample(t *testing.T) {
	t.Parallel()

	svc := NewComparisonService(NewEconomicsService())

	// A: 80% RTP, passes tier; B: 40% RTP, fails tier but doubles the
	// creator's take. Points are literal accumulation, so B can still win
	// on ROI + profit + break-even despite losing the tier points.
	a := entities.LotterySetup{Prize: 5000, TicketPrice: 25, Odds: 250}
	b := entities.LotterySetup{Prize: 5000, TicketPrice: 50, Odds: 250}

	result, err := svc.Compare(a, b, 0)
	require.NoError(t, err)

	assert.True(t, result.A.PassesMinimum)
	assert.False(t, result.B.PassesMinimum)

	assert.Equal(t, entities.WinnerA, result.Winners.RTP)
	assert.Equal(t, entities.WinnerB, result.Winners.ROI)
	assert.Equal(t, entities.WinnerB, result.Winners.Profit)
	assert.Equal(t, entities.WinnerB, result.Winners.BreakEven)

	assert.Equal(t, 3, result.ScoreA)
	assert.Equal(t, 5, result.ScoreB)
	assert.Equal(t, entities.WinnerB, result.Recommendation)
}

func TestComparisonService_Compare_Symmetry(t *testing.T) {
	t.Parallel()

	svc := NewComparisonService(NewEconomicsService())

	a := entities.LotterySetup{Prize: 5000, TicketPrice: 25, Odds: 250}
	b := entities.LotterySetup{Prize: 5000, TicketPrice: 10, Odds: 600}

	forward, err := svc.Compare(a, b, 0.05)
	require.NoError(t, err)
	reverse, err := svc.Compare(b, a, 0.05)
	require.NoError(t, err)

	assert.Equal(t, forward.ScoreA, reverse.ScoreB)
	assert.Equal(t, forward.ScoreB, reverse.ScoreA)
	assert.Equal(t, flip(forward.Recommendation), reverse.Recommendation)
	assert.Equal(t, flip(forward.Winners.RTP), reverse.Winners.RTP)
	assert.Equal(t, flip(forward.Winners.ROI), reverse.Winners.ROI)
	assert.Equal(t, flip(forward.Winners.Profit), reverse.Winners.Profit)
	assert.Equal(t, flip(forward.Winners.BreakEven), reverse.Winners.BreakEven)
}

func TestComparisonService_Compare_IdenticalSetupsTie(t *testing.T) {
	t.Parallel()

	svc := NewComparisonService(NewEconomicsService())

	setup := entities.LotterySetup{Prize: 5000, TicketPrice: 25, Odds: 250}
	result, err := svc.Compare(setup, setup, 0.10)
	require.NoError(t, err)

	assert.Equal(t, entities.WinnerTie, result.Winners.RTP)
	assert.Equal(t, entities.WinnerTie, result.Winners.ROI)
	assert.Equal(t, entities.WinnerTie, result.Winners.Profit)
	assert.Equal(t, entities.WinnerTie, result.Winners.BreakEven)
	assert.Equal(t, 0, result.ScoreA)
	assert.Equal(t, 0, result.ScoreB)
	assert.Equal(t, entities.WinnerTie, result.Recommendation)
}

func TestComparisonService_Compare_SharedAffiliateRateApplied(t *testing.T) {
	t.Parallel()

	svc := NewComparisonService(NewEconomicsService())

	// Whatever rate the setups carried, the comparison's shared rate wins.
	a := entities.LotterySetup{Prize: 5000, TicketPrice: 25, Odds: 250, AffiliateRate: 0.20}
	b := entities.LotterySetup{Prize: 5000, TicketPrice: 50, Odds: 250}

	result, err := svc.Compare(a, b, 0.10)
	require.NoError(t, err)

	assert.Equal(t, 0.10, result.A.Setup.AffiliateRate)
	assert.Equal(t, 0.10, result.B.Setup.AffiliateRate)
}

func TestComparisonService_Compare_InvalidSetup(t *testing.T) {
	t.Parallel()

	svc := NewComparisonService(NewEconomicsService())

	valid := entities.LotterySetup{Prize: 5000, TicketPrice: 25, Odds: 250}
	invalid := entities.LotterySetup{Prize: 5000, TicketPrice: 0, Odds: 250}

	_, err := svc.Compare(valid, invalid, 0)
	assert.ErrorIs(t, err, entities.ErrInvalidInput)

	_, err = svc.Compare(invalid, valid, 0)
	assert.ErrorIs(t, err, entities.ErrInvalidInput)
}

func flip(w entities.ComparisonWinner) entities.ComparisonWinner {
	switch w {
	case entities.WinnerA:
		return entities.WinnerB
	case entities.WinnerB:
		return entities.WinnerA
	default:
		return entities.WinnerTie
	}
}
