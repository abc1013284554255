package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"chancebot/domain/entities"
	"chancebot/domain/interfaces"
)

const (
	// leaderboardFetchLimit is how many recent lotteries feed one ranking run.
	leaderboardFetchLimit = 1000

	// leaderboardSize caps each ranking at a top-10.
	leaderboardSize = 10
)

type leaderboardService struct {
	feed interfaces.LotteryFeed
}

// NewLeaderboardService creates a new leaderboard service
func NewLeaderboardService(feed interfaces.LotteryFeed) interfaces.LeaderboardService {
	return &leaderboardService{feed: feed}
}

// Leaderboards fetches the recent lottery page once and computes all three
// rankings from it.
func (s *leaderboardService) Leaderboards(ctx context.Context) (*entities.Leaderboards, error) {
	lotteries, err := s.feed.RecentLotteries(ctx, leaderboardFetchLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch lotteries for leaderboards: %w", err)
	}

	return &entities.Leaderboards{
		Creators: rankCreators(lotteries),
		Winners:  rankWinners(lotteries),
		Volume:   rankVolume(lotteries),
	}, nil
}

// PlatformStats computes a platform-wide snapshot from the recent page.
func (s *leaderboardService) PlatformStats(ctx context.Context) (*entities.PlatformStats, error) {
	lotteries, err := s.feed.RecentLotteries(ctx, leaderboardFetchLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch lotteries for stats: %w", err)
	}

	stats := &entities.PlatformStats{TotalLotteries: len(lotteries)}
	for _, l := range lotteries {
		stats.TotalVolume += l.GrossRevenue
		stats.TotalTicketsSold += l.TicketsSold
		if l.IsActive() {
			stats.ActiveLotteries++
			if l.Prize > stats.LargestActivePrize {
				stats.LargestActivePrize = l.Prize
			}
		} else {
			stats.CompletedLotteries++
		}
		if l.HasWinner {
			stats.TotalPrizesPaid += l.Prize
		}
	}
	return stats, nil
}

// rankCreators ranks creators by lotteries created.
func rankCreators(lotteries []*entities.Lottery) []entities.CreatorRank {
	byCreator := make(map[string]*entities.CreatorRank)
	for _, l := range lotteries {
		creator := strings.ToLower(l.Creator)
		if creator == "" {
			continue
		}
		row, ok := byCreator[creator]
		if !ok {
			row = &entities.CreatorRank{Address: creator}
			byCreator[creator] = row
		}
		row.Lotteries++
		row.Volume += l.GrossRevenue
		if l.HasWinner {
			row.Winners++
		}
	}

	rows := make([]entities.CreatorRank, 0, len(byCreator))
	for _, row := range byCreator {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Lotteries != rows[j].Lotteries {
			return rows[i].Lotteries > rows[j].Lotteries
		}
		return rows[i].Address < rows[j].Address
	})
	if len(rows) > leaderboardSize {
		rows = rows[:leaderboardSize]
	}
	return rows
}

// rankWinners ranks winners by total prizes won.
func rankWinners(lotteries []*entities.Lottery) []entities.WinnerRank {
	byWinner := make(map[string]*entities.WinnerRank)
	for _, l := range lotteries {
		if !l.HasWinner {
			continue
		}
		winner := strings.ToLower(l.Winner)
		if winner == "" {
			continue
		}
		row, ok := byWinner[winner]
		if !ok {
			row = &entities.WinnerRank{Address: winner}
			byWinner[winner] = row
		}
		row.Wins++
		row.TotalWon += l.Prize
	}

	rows := make([]entities.WinnerRank, 0, len(byWinner))
	for _, row := range byWinner {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].TotalWon != rows[j].TotalWon {
			return rows[i].TotalWon > rows[j].TotalWon
		}
		return rows[i].Address < rows[j].Address
	})
	if len(rows) > leaderboardSize {
		rows = rows[:leaderboardSize]
	}
	return rows
}

// rankVolume ranks creators by gross volume generated.
func rankVolume(lotteries []*entities.Lottery) []entities.VolumeRank {
	byCreator := make(map[string]*entities.VolumeRank)
	for _, l := range lotteries {
		creator := strings.ToLower(l.Creator)
		if creator == "" {
			continue
		}
		row, ok := byCreator[creator]
		if !ok {
			row = &entities.VolumeRank{Address: creator}
			byCreator[creator] = row
		}
		row.Volume += l.GrossRevenue
		row.Tickets += l.TicketsSold
	}

	rows := make([]entities.VolumeRank, 0, len(byCreator))
	for _, row := range byCreator {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Volume != rows[j].Volume {
			return rows[i].Volume > rows[j].Volume
		}
		return rows[i].Address < rows[j].Address
	})
	if len(rows) > leaderboardSize {
		rows = rows[:leaderboardSize]
	}
	return rows
}
