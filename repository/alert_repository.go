package repository

import (
	"sync"

	"chancebot/domain/entities"
	"chancebot/domain/interfaces"
)

// alertRepository is an in-memory alert store. Alerts are deliberately not
// persisted; they reset with the process, matching the platform's current
// behavior.
type alertRepository struct {
	mu     sync.RWMutex
	alerts map[string][]*entities.Alert
}

// NewAlertRepository creates a new in-memory alert repository
func NewAlertRepository() interfaces.AlertRepository {
	return &alertRepository{
		alerts: make(map[string][]*entities.Alert),
	}
}

// ListByUser returns a copy of the user's alerts so callers can mutate the
// slice without racing the store.
func (r *alertRepository) ListByUser(userID string) []*entities.Alert {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.alerts[userID]
	if len(stored) == 0 {
		return nil
	}
	out := make([]*entities.Alert, len(stored))
	for i, a := range stored {
		copied := *a
		out[i] = &copied
	}
	return out
}

// SetForUser replaces the user's alert list. An empty list removes the user
// from the store entirely.
func (r *alertRepository) SetForUser(userID string, alerts []*entities.Alert) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(alerts) == 0 {
		delete(r.alerts, userID)
		return
	}
	stored := make([]*entities.Alert, len(alerts))
	for i, a := range alerts {
		copied := *a
		stored[i] = &copied
	}
	r.alerts[userID] = stored
}

// All returns a copy of every user's alerts keyed by user ID.
func (r *alertRepository) All() map[string][]*entities.Alert {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string][]*entities.Alert, len(r.alerts))
	for userID, stored := range r.alerts {
		alerts := make([]*entities.Alert, len(stored))
		for i, a := range stored {
			copied := *a
			alerts[i] = &copied
		}
		out[userID] = alerts
	}
	return out
}
