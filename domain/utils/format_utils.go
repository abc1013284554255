package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatUSD formats a dollar amount with a thousands-separated whole part,
// keeping cents only when they are non-zero (e.g., $5,000 or $12.50).
func FormatUSD(value float64) string {
	sign := ""
	if value < 0 {
		sign = "-"
		value = -value
	}

	whole := int64(value)
	cents := int64(value*100+0.5) - whole*100
	if cents >= 100 {
		whole++
		cents -= 100
	}

	if cents == 0 {
		return fmt.Sprintf("%s$%s", sign, groupThousands(whole))
	}
	return fmt.Sprintf("%s$%s.%02d", sign, groupThousands(whole), cents)
}

// FormatUSDShort formats a dollar amount using short notation
// (e.g., $50K instead of $50,000)
func FormatUSDShort(value float64) string {
	sign := ""
	if value < 0 {
		sign = "-"
		value = -value
	}

	switch {
	case value >= 1_000_000_000:
		return fmt.Sprintf("%s$%.2fB", sign, value/1_000_000_000)
	case value >= 1_000_000:
		return fmt.Sprintf("%s$%.2fM", sign, value/1_000_000)
	case value >= 10_000:
		// No decimal places between 10K and 1M
		return fmt.Sprintf("%s$%.0fK", sign, value/1_000)
	case value >= 1_000:
		// One decimal place under 10K
		return fmt.Sprintf("%s$%.1fK", sign, value/1_000)
	default:
		if sign == "-" {
			return FormatUSD(-value)
		}
		return FormatUSD(value)
	}
}

// FormatCount formats an integer with thousands separators.
func FormatCount(value int64) string {
	if value < 0 {
		return "-" + groupThousands(-value)
	}
	return groupThousands(value)
}

// ShortAddress truncates a wallet address for display: 0x1234...abcd.
func ShortAddress(addr string) string {
	if len(addr) <= 10 {
		return addr
	}
	return addr[:6] + "..." + addr[len(addr)-4:]
}

func groupThousands(value int64) string {
	digits := strconv.FormatInt(value, 10)
	n := len(digits)
	if n <= 3 {
		return digits
	}

	var b strings.Builder
	head := n % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
