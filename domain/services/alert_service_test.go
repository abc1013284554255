package services

import (
	"testing"
	"time"

	"chancebot/domain/entities"
	"chancebot/domain/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func fptr(v float64) *float64 { return &v }

func TestAlertService_CreateAlert(t *testing.T) {
	t.Parallel()

	repo := new(testhelpers.MockAlertRepository)
	svc := NewAlertService(repo, NewEconomicsService())

	repo.On("ListByUser", "user1").Return(nil)
	repo.On("SetForUser", "user1", mock.MatchedBy(func(alerts []*entities.Alert) bool {
		return len(alerts) == 1 && alerts[0].ID == 1
	})).Return()

	alert, err := svc.CreateAlert("user1", entities.Alert{MinPrize: fptr(1000)})
	require.NoError(t, err)

	assert.Equal(t, 1, alert.ID)
	assert.Equal(t, "user1", alert.UserID)
	assert.WithinDuration(t, time.Now().UTC(), alert.CreatedAt, time.Minute)
	repo.AssertExpectations(t)
}

func TestAlertService_CreateAlert_SequentialIDs(t *testing.T) {
	t.Parallel()

	repo := new(testhelpers.MockAlertRepository)
	svc := NewAlertService(repo, NewEconomicsService())

	existing := []*entities.Alert{
		{ID: 1, UserID: "user1", MinPrize: fptr(500)},
		{ID: 2, UserID: "user1", MaxTicket: fptr(10)},
	}
	repo.On("ListByUser", "user1").Return(existing)
	repo.On("SetForUser", "user1", mock.Anything).Return()

	alert, err := svc.CreateAlert("user1", entities.Alert{MinRTP: fptr(80)})
	require.NoError(t, err)
	assert.Equal(t, 3, alert.ID)
}

func TestAlertService_CreateAlert_RequiresCriteria(t *testing.T) {
	t.Parallel()

	repo := new(testhelpers.MockAlertRepository)
	svc := NewAlertService(repo, NewEconomicsService())

	_, err := svc.CreateAlert("user1", entities.Alert{})
	assert.ErrorIs(t, err, entities.ErrInvalidInput)
	repo.AssertNotCalled(t, "SetForUser", mock.Anything, mock.Anything)
}

func TestAlertService_CreateAlert_EnforcesLimit(t *testing.T) {
	t.Parallel()

	repo := new(testhelpers.MockAlertRepository)
	svc := NewAlertService(repo, NewEconomicsService())

	full := make([]*entities.Alert, entities.MaxAlertsPerUser)
	for i := range full {
		full[i] = &entities.Alert{ID: i + 1, UserID: "user1", MinPrize: fptr(100)}
	}
	repo.On("ListByUser", "user1").Return(full)

	_, err := svc.CreateAlert("user1", entities.Alert{MinPrize: fptr(1000)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "maximum")
	repo.AssertNotCalled(t, "SetForUser", mock.Anything, mock.Anything)
}

func TestAlertService_DeleteAlert_RenumbersRemaining(t *testing.T) {
	t.Parallel()

	repo := new(testhelpers.MockAlertRepository)
	svc := NewAlertService(repo, NewEconomicsService())

	repo.On("ListByUser", "user1").Return([]*entities.Alert{
		{ID: 1, UserID: "user1", MinPrize: fptr(100)},
		{ID: 2, UserID: "user1", MinPrize: fptr(200)},
		{ID: 3, UserID: "user1", MinPrize: fptr(300)},
	})

	var saved []*entities.Alert
	repo.On("SetForUser", "user1", mock.Anything).Run(func(args mock.Arguments) {
		saved = args.Get(1).([]*entities.Alert)
	}).Return()

	err := svc.DeleteAlert("user1", 2)
	require.NoError(t, err)

	require.Len(t, saved, 2)
	assert.Equal(t, 1, saved[0].ID)
	assert.Equal(t, 100.0, *saved[0].MinPrize)
	assert.Equal(t, 2, saved[1].ID)
	assert.Equal(t, 300.0, *saved[1].MinPrize)
}

func TestAlertService_DeleteAlert_Errors(t *testing.T) {
	t.Parallel()

	repo := new(testhelpers.MockAlertRepository)
	svc := NewAlertService(repo, NewEconomicsService())

	repo.On("ListByUser", "empty").Return(nil)
	err := svc.DeleteAlert("empty", 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "don't have any alerts")

	repo.On("ListByUser", "user1").Return([]*entities.Alert{
		{ID: 1, UserID: "user1", MinPrize: fptr(100)},
	})
	err = svc.DeleteAlert("user1", 7)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "alert #7 not found")
}

func TestAlertService_MatchingAlerts(t *testing.T) {
	t.Parallel()

	repo := new(testhelpers.MockAlertRepository)
	svc := NewAlertService(repo, NewEconomicsService())

	repo.On("All").Return(map[string][]*entities.Alert{
		"zed": {
			{ID: 1, UserID: "zed", MaxTicket: fptr(30), MinRTP: fptr(75)},
		},
		"amy": {
			{ID: 1, UserID: "amy", MinPrize: fptr(1000)},
			{ID: 2, UserID: "amy", MinRTP: fptr(90)},
		},
	})

	// $5000 prize, $25 ticket, 1-in-250 odds: 80% RTP.
	lottery := &entities.Lottery{Prize: 5000, TicketPrice: 25, Odds: 250}
	matches := svc.MatchingAlerts(lottery)

	require.Len(t, matches, 2)
	assert.Equal(t, "amy", matches[0].UserID)
	assert.Equal(t, 1, matches[0].ID)
	assert.Equal(t, "zed", matches[1].UserID)
}

func TestAlertService_MatchingAlerts_MissingOddsTreatedAsZeroRTP(t *testing.T) {
	t.Parallel()

	repo := new(testhelpers.MockAlertRepository)
	svc := NewAlertService(repo, NewEconomicsService())

	repo.On("All").Return(map[string][]*entities.Alert{
		"amy": {
			{ID: 1, UserID: "amy", MinPrize: fptr(1000)},
			{ID: 2, UserID: "amy", MinRTP: fptr(50)},
		},
	})

	// The subgraph sometimes omits the pick range; prize-only criteria
	// still match but any RTP floor fails.
	lottery := &entities.Lottery{Prize: 5000, TicketPrice: 25, Odds: 0}
	matches := svc.MatchingAlerts(lottery)

	require.Len(t, matches, 1)
	assert.Equal(t, 1, matches[0].ID)
}
