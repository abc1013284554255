package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinimumRTPFor_TierBoundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		prize     float64
		wantRTP   float64
		wantLabel string
	}{
		{
			name:      "just below minimum prize",
			prize:     99.99,
			wantRTP:   0,
			wantLabel: "Below minimum ($100+)",
		},
		{
			name:      "exactly at minimum prize",
			prize:     100,
			wantRTP:   70,
			wantLabel: "$100-$10K tier",
		},
		{
			name:      "just below mid tier",
			prize:     9999.99,
			wantRTP:   70,
			wantLabel: "$100-$10K tier",
		},
		{
			name:      "exactly at mid tier",
			prize:     10000,
			wantRTP:   60,
			wantLabel: "$10K-$100K tier",
		},
		{
			name:      "just below high tier",
			prize:     99999.99,
			wantRTP:   60,
			wantLabel: "$10K-$100K tier",
		},
		{
			name:      "exactly at high tier",
			prize:     100000,
			wantRTP:   50,
			wantLabel: "$100K+ tier",
		},
		{
			name:      "far above high tier",
			prize:     2500000,
			wantRTP:   50,
			wantLabel: "$100K+ tier",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tier := MinimumRTPFor(tt.prize)
			assert.Equal(t, tt.wantRTP, tier.MinimumRTP)
			assert.Equal(t, tt.wantLabel, tier.Label)
		})
	}
}
