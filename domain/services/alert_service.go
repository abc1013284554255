package services

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"chancebot/domain/entities"
	"chancebot/domain/interfaces"
)

type alertService struct {
	alertRepo interfaces.AlertRepository
	economics interfaces.EconomicsService
}

// NewAlertService creates a new alert service
func NewAlertService(alertRepo interfaces.AlertRepository, economics interfaces.EconomicsService) interfaces.AlertService {
	return &alertService{
		alertRepo: alertRepo,
		economics: economics,
	}
}

// CreateAlert stores a new alert for the user with the next sequential ID.
func (s *alertService) CreateAlert(userID string, alert entities.Alert) (*entities.Alert, error) {
	if !alert.HasCriteria() {
		return nil, fmt.Errorf("%w: alert needs at least one criterion", entities.ErrInvalidInput)
	}

	alerts := s.alertRepo.ListByUser(userID)
	if len(alerts) >= entities.MaxAlertsPerUser {
		return nil, fmt.Errorf("maximum of %d alerts reached, delete one first", entities.MaxAlertsPerUser)
	}

	alert.ID = len(alerts) + 1
	alert.UserID = userID
	alert.CreatedAt = time.Now().UTC()

	alerts = append(alerts, &alert)
	s.alertRepo.SetForUser(userID, alerts)

	return &alert, nil
}

// GetAlerts returns the user's alerts ordered by ID.
func (s *alertService) GetAlerts(userID string) []*entities.Alert {
	return s.alertRepo.ListByUser(userID)
}

// DeleteAlert removes an alert and renumbers the rest so the visible list
// stays dense, matching how IDs were assigned.
func (s *alertService) DeleteAlert(userID string, alertID int) error {
	alerts := s.alertRepo.ListByUser(userID)
	if len(alerts) == 0 {
		return errors.New("you don't have any alerts")
	}

	idx := -1
	for i, a := range alerts {
		if a.ID == alertID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("alert #%d not found", alertID)
	}

	alerts = append(alerts[:idx], alerts[idx+1:]...)
	for i, a := range alerts {
		a.ID = i + 1
	}
	s.alertRepo.SetForUser(userID, alerts)

	return nil
}

// MatchingAlerts returns every alert satisfied by the lottery, ordered by
// user then alert ID so notification order is deterministic.
func (s *alertService) MatchingAlerts(lottery *entities.Lottery) []*entities.Alert {
	// A feed record without usable odds or ticket price still gets matched
	// on prize criteria; its RTP is treated as zero.
	rtp, err := s.economics.ComputeRTP(lottery.Prize, lottery.TicketPrice, lottery.Odds)
	if err != nil {
		rtp = 0
	}

	var matches []*entities.Alert
	for _, alerts := range s.alertRepo.All() {
		for _, alert := range alerts {
			if alert.Matches(lottery.Prize, lottery.TicketPrice, rtp) {
				matches = append(matches, alert)
			}
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].UserID != matches[j].UserID {
			return matches[i].UserID < matches[j].UserID
		}
		return matches[i].ID < matches[j].ID
	})
	return matches
}
