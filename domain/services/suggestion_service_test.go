package services

import (
	"testing"

	"chancebot/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestionService_SuggestSetups_WorkedExample(t *testing.T) {
	t.Parallel()

	svc := NewSuggestionService(NewEconomicsService())

	// $5000 prize at 75% target: ticket * odds must equal ~6666.67.
	setups, err := svc.SuggestSetups(5000, 75, 0)
	require.NoError(t, err)
	require.Len(t, setups, 3)

	assert.Equal(t, "Budget Play", setups[0].Name)
	assert.Equal(t, 25.0, setups[0].Setup.TicketPrice)
	assert.Equal(t, int64(266), setups[0].Setup.Odds)

	assert.Equal(t, "Standard", setups[1].Name)
	assert.Equal(t, 50.0, setups[1].Setup.TicketPrice)
	assert.Equal(t, int64(133), setups[1].Setup.Odds)

	assert.Equal(t, "Premium", setups[2].Name)
	assert.Equal(t, 125.0, setups[2].Setup.TicketPrice)
	assert.Equal(t, int64(53), setups[2].Setup.Odds)

	// Truncating the odds downward can only raise the RTP, so every option
	// lands at or slightly above the target.
	for _, s := range setups {
		assert.GreaterOrEqual(t, s.Economics.RTPPercent, 75.0)
		assert.Less(t, s.Economics.RTPPercent, 80.0)
		assert.True(t, s.Economics.PassesMinimum)
		assert.Positive(t, s.Economics.BreakEvenTickets)
	}
}

func TestSuggestionService_SuggestSetups_MinimumPrize(t *testing.T) {
	t.Parallel()

	svc := NewSuggestionService(NewEconomicsService())

	// At the $100 floor the fractional prices collapse onto the ticket
	// floors: $1 / $5 / $10.
	setups, err := svc.SuggestSetups(100, 70, 0)
	require.NoError(t, err)
	require.Len(t, setups, 3)

	assert.Equal(t, 1.0, setups[0].Setup.TicketPrice)
	assert.Equal(t, int64(142), setups[0].Setup.Odds)
	assert.Equal(t, 5.0, setups[1].Setup.TicketPrice)
	assert.Equal(t, int64(28), setups[1].Setup.Odds)
	assert.Equal(t, 10.0, setups[2].Setup.TicketPrice)
	assert.Equal(t, int64(14), setups[2].Setup.Odds)
}

func TestSuggestionService_SuggestSetups_InvalidInputs(t *testing.T) {
	t.Parallel()

	svc := NewSuggestionService(NewEconomicsService())

	tests := []struct {
		name      string
		prize     float64
		targetRTP float64
		affiliate float64
		wantErr   error
	}{
		{"prize below tier minimum", 50, 70, 0, entities.ErrInvalidInput},
		{"zero target", 5000, 0, 0, entities.ErrInvalidInput},
		{"target above 100", 5000, 101, 0, entities.ErrInvalidInput},
		{"negative affiliate", 5000, 75, -0.01, entities.ErrInvalidInput},
		{"affiliate above cap", 5000, 75, 0.25, entities.ErrInvalidInput},
		{"target below tier minimum", 5000, 60, 0, entities.ErrInvalidInput},
		{"target above creator margin", 5000, 96, 0, entities.ErrMarginExhausted},
		{"affiliate squeezes margin below target", 5000, 80, 0.20, entities.ErrMarginExhausted},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := svc.SuggestSetups(tt.prize, tt.targetRTP, tt.affiliate)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSuggestionService_SuggestSetups_ExactMarginBoundary(t *testing.T) {
	t.Parallel()

	svc := NewSuggestionService(NewEconomicsService())

	// A target of exactly (1 - fee - affiliate) * 100 is still allowed; the
	// margin check is strictly greater-than.
	setups, err := svc.SuggestSetups(5000, 95, 0)
	require.NoError(t, err)
	assert.NotEmpty(t, setups)

	setups, err = svc.SuggestSetups(5000, 75, entities.MaxAffiliateRate)
	require.NoError(t, err)
	assert.NotEmpty(t, setups)
}
