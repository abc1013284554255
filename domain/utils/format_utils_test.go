package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatUSD(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value float64
		want  string
	}{
		{0, "$0"},
		{5, "$5"},
		{12.5, "$12.50"},
		{999.99, "$999.99"},
		{5000, "$5,000"},
		{1234567.89, "$1,234,567.89"},
		{-250.25, "-$250.25"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatUSD(tt.value), "FormatUSD(%v)", tt.value)
	}
}

func TestFormatUSDShort(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value float64
		want  string
	}{
		{500, "$500"},
		{1500, "$1.5K"},
		{50000, "$50K"},
		{2500000, "$2.50M"},
		{1200000000, "$1.20B"},
		{-50000, "-$50K"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatUSDShort(tt.value), "FormatUSDShort(%v)", tt.value)
	}
}

func TestFormatCount(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0", FormatCount(0))
	assert.Equal(t, "999", FormatCount(999))
	assert.Equal(t, "1,000", FormatCount(1000))
	assert.Equal(t, "12,345,678", FormatCount(12345678))
	assert.Equal(t, "-1,000", FormatCount(-1000))
}

func TestShortAddress(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0xabc", ShortAddress("0xabc"))
	assert.Equal(t, "0x1234...cdef", ShortAddress("0x123456789abcdef0cdef"))
}
