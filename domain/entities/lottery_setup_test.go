package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLotterySetup_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		setup   LotterySetup
		wantErr bool
	}{
		{
			name:    "valid setup",
			setup:   LotterySetup{Prize: 5000, TicketPrice: 25, Odds: 250},
			wantErr: false,
		},
		{
			name:    "valid setup with max affiliate",
			setup:   LotterySetup{Prize: 5000, TicketPrice: 25, Odds: 250, AffiliateRate: 0.20},
			wantErr: false,
		},
		{
			name:    "zero prize",
			setup:   LotterySetup{Prize: 0, TicketPrice: 25, Odds: 250},
			wantErr: true,
		},
		{
			name:    "negative ticket price",
			setup:   LotterySetup{Prize: 5000, TicketPrice: -1, Odds: 250},
			wantErr: true,
		},
		{
			name:    "zero odds",
			setup:   LotterySetup{Prize: 5000, TicketPrice: 25, Odds: 0},
			wantErr: true,
		},
		{
			name:    "affiliate rate above cap",
			setup:   LotterySetup{Prize: 5000, TicketPrice: 25, Odds: 250, AffiliateRate: 0.21},
			wantErr: true,
		},
		{
			name:    "negative affiliate rate",
			setup:   LotterySetup{Prize: 5000, TicketPrice: 25, Odds: 250, AffiliateRate: -0.01},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.setup.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLotterySetup_NetCreatorRate(t *testing.T) {
	t.Parallel()

	noAffiliate := LotterySetup{Prize: 5000, TicketPrice: 25, Odds: 250}
	assert.InDelta(t, 0.95, noAffiliate.NetCreatorRate(), 1e-9)

	maxAffiliate := LotterySetup{Prize: 5000, TicketPrice: 25, Odds: 250, AffiliateRate: 0.20}
	assert.InDelta(t, 0.75, maxAffiliate.NetCreatorRate(), 1e-9)
}

func TestLotterySetup_WinProbability(t *testing.T) {
	t.Parallel()

	setup := LotterySetup{Prize: 5000, TicketPrice: 25, Odds: 250}
	assert.InDelta(t, 0.004, setup.WinProbability(), 1e-9)
}
