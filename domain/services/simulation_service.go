package services

import (
	"fmt"
	"math/rand"
	"sort"

	"chancebot/domain/entities"
	"chancebot/domain/interfaces"
)

type simulationService struct {
	economics interfaces.EconomicsService
}

// NewSimulationService creates a new Monte Carlo simulation service
func NewSimulationService(economics interfaces.EconomicsService) interfaces.SimulationService {
	return &simulationService{economics: economics}
}

// Simulate runs independent trials of selling tickets until the first
// winner. Runs are intentionally unseeded; callers get fresh randomness
// every time and only the statistics are meaningful.
func (s *simulationService) Simulate(setup entities.LotterySetup, trials int) (*entities.SimulationRun, error) {
	if err := setup.Validate(); err != nil {
		return nil, err
	}
	if trials < entities.MinSimulationTrials || trials > entities.MaxSimulationTrials {
		return nil, fmt.Errorf("%w: trials must be within [%d, %d], got %d",
			entities.ErrInvalidInput, entities.MinSimulationTrials, entities.MaxSimulationTrials, trials)
	}

	breakEven, err := s.economics.ComputeBreakEven(setup.Prize, setup.TicketPrice, setup.AffiliateRate)
	if err != nil {
		return nil, fmt.Errorf("failed to compute break-even threshold: %w", err)
	}

	winProbability := setup.WinProbability()
	netRate := setup.NetCreatorRate()

	profits := make([]float64, trials)
	tickets := make([]int64, trials)
	profitable := 0
	belowBreakEven := 0

	for i := 0; i < trials; i++ {
		sold := int64(0)
		for {
			sold++
			if rand.Float64() < winProbability {
				break
			}
		}

		profit := float64(sold)*setup.TicketPrice*netRate - setup.Prize
		profits[i] = profit
		tickets[i] = sold

		if profit > 0 {
			profitable++
		}
		if sold < breakEven {
			belowBreakEven++
		}
	}

	sort.Float64s(profits)
	sort.Slice(tickets, func(a, b int) bool { return tickets[a] < tickets[b] })

	return &entities.SimulationRun{
		Setup:                  setup,
		Trials:                 trials,
		Profit:                 summarizeProfits(profits),
		Tickets:                summarizeTickets(tickets),
		ProfitableFraction:     float64(profitable) / float64(trials),
		BelowBreakEvenFraction: float64(belowBreakEven) / float64(trials),
		BreakEvenTickets:       breakEven,
	}, nil
}

// summarizeProfits computes the distribution summary over sorted samples.
// The median is the simple middle index and percentiles are floor(n*p)
// lookups; both match the platform's established reporting.
func summarizeProfits(sorted []float64) entities.ProfitSummary {
	n := len(sorted)
	sum := 0.0
	for _, v := range sorted {
		sum += v
	}
	return entities.ProfitSummary{
		Mean:   sum / float64(n),
		Median: sorted[n/2],
		Min:    sorted[0],
		Max:    sorted[n-1],
		P10:    sorted[percentileIndex(n, 0.10)],
		P25:    sorted[percentileIndex(n, 0.25)],
		P75:    sorted[percentileIndex(n, 0.75)],
		P90:    sorted[percentileIndex(n, 0.90)],
	}
}

func summarizeTickets(sorted []int64) entities.TicketSummary {
	n := len(sorted)
	sum := int64(0)
	for _, v := range sorted {
		sum += v
	}
	return entities.TicketSummary{
		Mean:   float64(sum) / float64(n),
		Median: sorted[n/2],
		Min:    sorted[0],
		Max:    sorted[n-1],
	}
}

func percentileIndex(n int, p float64) int {
	idx := int(float64(n) * p)
	if idx >= n {
		idx = n - 1
	}
	return idx
}
