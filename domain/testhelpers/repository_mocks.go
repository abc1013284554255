package testhelpers

import (
	"context"

	"chancebot/domain/entities"
	"chancebot/events"

	"github.com/stretchr/testify/mock"
)

// MockAlertRepository is a mock implementation of AlertRepository
type MockAlertRepository struct {
	mock.Mock
}

func (m *MockAlertRepository) ListByUser(userID string) []*entities.Alert {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]*entities.Alert)
}

func (m *MockAlertRepository) SetForUser(userID string, alerts []*entities.Alert) {
	m.Called(userID, alerts)
}

func (m *MockAlertRepository) All() map[string][]*entities.Alert {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(map[string][]*entities.Alert)
}

// MockLotteryFeed is a mock implementation of LotteryFeed
type MockLotteryFeed struct {
	mock.Mock
}

func (m *MockLotteryFeed) RecentLotteries(ctx context.Context, limit int) ([]*entities.Lottery, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Lottery), args.Error(1)
}

// MockLotteryPoster is a mock implementation of LotteryPoster
type MockLotteryPoster struct {
	mock.Mock
}

func (m *MockLotteryPoster) PostLottery(ctx context.Context, lottery *entities.Lottery, eco *entities.EconomicsResult, channelIDs []string) error {
	args := m.Called(ctx, lottery, eco, channelIDs)
	return args.Error(0)
}

// MockLeaderboardPoster is a mock implementation of LeaderboardPoster
type MockLeaderboardPoster struct {
	mock.Mock
}

func (m *MockLeaderboardPoster) PostLeaderboards(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockEventPublisher is a mock implementation of EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Emit(ctx context.Context, event events.Event) {
	m.Called(ctx, event)
}
