package entities

import "time"

// MaxAlertsPerUser caps how many alerts one user may hold at once.
const MaxAlertsPerUser = 5

// Alert is one user's notification criteria. IDs are sequential per user,
// starting at 1, and are renumbered when an alert is deleted so the visible
// list stays dense. Nil criteria are unset and match everything.
type Alert struct {
	ID        int
	UserID    string // Discord user ID
	MinPrize  *float64
	MaxPrize  *float64
	MaxTicket *float64
	MinRTP    *float64
	CreatedAt time.Time
}

// Matches reports whether a lottery with the given prize, ticket price and
// RTP satisfies every set criterion.
func (a *Alert) Matches(prize, ticket, rtp float64) bool {
	if a.MinPrize != nil && prize < *a.MinPrize {
		return false
	}
	if a.MaxPrize != nil && prize > *a.MaxPrize {
		return false
	}
	if a.MaxTicket != nil && ticket > *a.MaxTicket {
		return false
	}
	if a.MinRTP != nil && rtp < *a.MinRTP {
		return false
	}
	return true
}

// HasCriteria returns true if at least one criterion is set.
func (a *Alert) HasCriteria() bool {
	return a.MinPrize != nil || a.MaxPrize != nil || a.MaxTicket != nil || a.MinRTP != nil
}
