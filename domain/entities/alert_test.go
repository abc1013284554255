package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func f(v float64) *float64 { return &v }

func TestAlert_Matches(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		alert  Alert
		prize  float64
		ticket float64
		rtp    float64
		want   bool
	}{
		{
			name:   "no criteria matches everything",
			alert:  Alert{},
			prize:  50, ticket: 1, rtp: 0,
			want: true,
		},
		{
			name:   "min prize satisfied",
			alert:  Alert{MinPrize: f(10000)},
			prize:  25000, ticket: 10, rtp: 80,
			want: true,
		},
		{
			name:   "min prize not satisfied",
			alert:  Alert{MinPrize: f(10000)},
			prize:  5000, ticket: 10, rtp: 80,
			want: false,
		},
		{
			name:   "max prize exceeded",
			alert:  Alert{MaxPrize: f(1000)},
			prize:  5000, ticket: 10, rtp: 80,
			want: false,
		},
		{
			name:   "max ticket exceeded",
			alert:  Alert{MaxTicket: f(25)},
			prize:  5000, ticket: 50, rtp: 80,
			want: false,
		},
		{
			name:   "min rtp not reached",
			alert:  Alert{MinRTP: f(75)},
			prize:  5000, ticket: 25, rtp: 70,
			want: false,
		},
		{
			name:   "all criteria satisfied",
			alert:  Alert{MinPrize: f(1000), MaxPrize: f(10000), MaxTicket: f(25), MinRTP: f(75)},
			prize:  5000, ticket: 25, rtp: 80,
			want: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.alert.Matches(tt.prize, tt.ticket, tt.rtp))
		})
	}
}

func TestAlert_HasCriteria(t *testing.T) {
	t.Parallel()

	assert.False(t, (&Alert{}).HasCriteria())
	assert.True(t, (&Alert{MinRTP: f(70)}).HasCriteria())
}
