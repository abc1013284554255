package services

import (
	"context"
	"errors"
	"testing"

	"chancebot/domain/entities"
	"chancebot/domain/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func leaderboardFixture() []*entities.Lottery {
	return []*entities.Lottery{
		{ID: "1", Creator: "0xaaa", Status: entities.LotteryStatusActive, Prize: 10000, GrossRevenue: 2000, TicketsSold: 100},
		{ID: "2", Creator: "0xaaa", Status: entities.LotteryStatusCompleted, Prize: 500, GrossRevenue: 800, TicketsSold: 80, HasWinner: true, Winner: "0xw1"},
		{ID: "3", Creator: "0xbbb", Status: entities.LotteryStatusCompleted, Prize: 2000, GrossRevenue: 2500, TicketsSold: 50, HasWinner: true, Winner: "0xW1"},
		{ID: "4", Creator: "0xBBB", Status: entities.LotteryStatusCompleted, Prize: 300, GrossRevenue: 100, TicketsSold: 10, HasWinner: true, Winner: "0xw2"},
		{ID: "5", Creator: "0xccc", Status: entities.LotteryStatusActive, Prize: 50000},
	}
}

func TestLeaderboardService_Leaderboards(t *testing.T) {
	t.Parallel()

	feed := new(testhelpers.MockLotteryFeed)
	feed.On("RecentLotteries", mock.Anything, leaderboardFetchLimit).Return(leaderboardFixture(), nil)

	svc := NewLeaderboardService(feed)
	boards, err := svc.Leaderboards(context.Background())
	require.NoError(t, err)

	// Creators tie at two lotteries each; the address tiebreak keeps the
	// ordering stable. Addresses are case-folded before grouping.
	require.Len(t, boards.Creators, 3)
	assert.Equal(t, "0xaaa", boards.Creators[0].Address)
	assert.Equal(t, 2, boards.Creators[0].Lotteries)
	assert.Equal(t, 2800.0, boards.Creators[0].Volume)
	assert.Equal(t, 1, boards.Creators[0].Winners)
	assert.Equal(t, "0xbbb", boards.Creators[1].Address)
	assert.Equal(t, 2, boards.Creators[1].Lotteries)
	assert.Equal(t, "0xccc", boards.Creators[2].Address)

	require.Len(t, boards.Winners, 2)
	assert.Equal(t, "0xw1", boards.Winners[0].Address)
	assert.Equal(t, 2, boards.Winners[0].Wins)
	assert.Equal(t, 2500.0, boards.Winners[0].TotalWon)
	assert.Equal(t, "0xw2", boards.Winners[1].Address)
	assert.Equal(t, 300.0, boards.Winners[1].TotalWon)

	require.Len(t, boards.Volume, 3)
	assert.Equal(t, "0xaaa", boards.Volume[0].Address)
	assert.Equal(t, 2800.0, boards.Volume[0].Volume)
	assert.Equal(t, int64(180), boards.Volume[0].Tickets)
	assert.Equal(t, "0xbbb", boards.Volume[1].Address)
	assert.Equal(t, 2600.0, boards.Volume[1].Volume)
}

func TestLeaderboardService_Leaderboards_TopTenCap(t *testing.T) {
	t.Parallel()

	lotteries := make([]*entities.Lottery, 0, 15)
	for i := 0; i < 15; i++ {
		lotteries = append(lotteries, &entities.Lottery{
			ID:      string(rune('a' + i)),
			Creator: "0x" + string(rune('a'+i)),
			Status:  entities.LotteryStatusActive,
			Prize:   1000,
		})
	}

	feed := new(testhelpers.MockLotteryFeed)
	feed.On("RecentLotteries", mock.Anything, leaderboardFetchLimit).Return(lotteries, nil)

	svc := NewLeaderboardService(feed)
	boards, err := svc.Leaderboards(context.Background())
	require.NoError(t, err)

	assert.Len(t, boards.Creators, leaderboardSize)
	assert.Len(t, boards.Volume, leaderboardSize)
}

func TestLeaderboardService_PlatformStats(t *testing.T) {
	t.Parallel()

	feed := new(testhelpers.MockLotteryFeed)
	feed.On("RecentLotteries", mock.Anything, leaderboardFetchLimit).Return(leaderboardFixture(), nil)

	svc := NewLeaderboardService(feed)
	stats, err := svc.PlatformStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 5, stats.TotalLotteries)
	assert.Equal(t, 2, stats.ActiveLotteries)
	assert.Equal(t, 3, stats.CompletedLotteries)
	assert.Equal(t, 5400.0, stats.TotalVolume)
	assert.Equal(t, int64(240), stats.TotalTicketsSold)
	assert.Equal(t, 50000.0, stats.LargestActivePrize)
	assert.Equal(t, 2800.0, stats.TotalPrizesPaid)
}

func TestLeaderboardService_FeedErrorPropagates(t *testing.T) {
	t.Parallel()

	feed := new(testhelpers.MockLotteryFeed)
	feed.On("RecentLotteries", mock.Anything, leaderboardFetchLimit).Return(nil, errors.New("subgraph unavailable"))

	svc := NewLeaderboardService(feed)

	_, err := svc.Leaderboards(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "subgraph unavailable")

	_, err = svc.PlatformStats(context.Background())
	require.Error(t, err)
}
