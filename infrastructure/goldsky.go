package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"chancebot/domain/entities"
	"chancebot/domain/interfaces"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

const (
	// microUSDC converts the subgraph's integer amounts to dollars.
	microUSDC = 1_000_000

	// lotteryURLBase is where a lottery lives on the platform site.
	lotteryURLBase = "https://chance.fun/lottery/"

	goldskyRequestTimeout = 15 * time.Second
)

// recentLotteriesQuery pulls the newest lotteries with every field the
// engine and leaderboards consume.
const recentLotteriesQuery = `query RecentLotteries($first: Int!) {
  lotteries(first: $first, orderBy: createdAt, orderDirection: desc) {
    id
    contractAddress
    prizeProvider
    prizeAmount
    ticketPrice
    pickRange
    affiliatePercentage
    duration
    maxTickets
    ticketsSold
    grossRevenue
    status
    hasWinner
    winner
    createdAt
  }
}`

// GoldskyClient reads the Chance lottery subgraph over GraphQL.
type GoldskyClient struct {
	url        string
	httpClient *http.Client
}

// NewGoldskyClient creates a new subgraph client
func NewGoldskyClient(url string) interfaces.LotteryFeed {
	return &GoldskyClient{
		url: url,
		httpClient: &http.Client{
			Timeout: goldskyRequestTimeout,
		},
	}
}

// RecentLotteries fetches the newest lotteries from the subgraph, newest
// first, converting amounts from micro-USDC to dollars.
func (c *GoldskyClient) RecentLotteries(ctx context.Context, limit int) ([]*entities.Lottery, error) {
	body, err := json.Marshal(map[string]interface{}{
		"query": recentLotteriesQuery,
		"variables": map[string]interface{}{
			"first": limit,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal subgraph query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create subgraph request: %w", err)
	}
	requestID := uuid.New().String()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to query subgraph: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("subgraph returned status %d", resp.StatusCode)
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read subgraph response: %w", err)
	}

	if errs := gjson.GetBytes(payload, "errors"); errs.Exists() {
		return nil, fmt.Errorf("subgraph query failed: %s", errs.Raw)
	}

	rows := gjson.GetBytes(payload, "data.lotteries")
	if !rows.Exists() {
		return nil, fmt.Errorf("subgraph response missing lotteries")
	}

	var lotteries []*entities.Lottery
	rows.ForEach(func(_, row gjson.Result) bool {
		lotteries = append(lotteries, parseLottery(row))
		return true
	})

	log.WithFields(log.Fields{
		"requestId": requestID,
		"count":     len(lotteries),
	}).Debug("Fetched recent lotteries from subgraph")

	return lotteries, nil
}

// parseLottery maps one subgraph row onto the domain entity. Missing or
// malformed fields become zero values; the engine treats zero odds as
// "RTP unknown" rather than failing the whole page.
func parseLottery(row gjson.Result) *entities.Lottery {
	lottery := &entities.Lottery{
		ID:               row.Get("id").String(),
		ContractAddress:  row.Get("contractAddress").String(),
		Creator:          row.Get("prizeProvider").String(),
		Prize:            row.Get("prizeAmount").Float() / microUSDC,
		TicketPrice:      row.Get("ticketPrice").Float() / microUSDC,
		Odds:             row.Get("pickRange").Int(),
		AffiliatePercent: row.Get("affiliatePercentage").Float(),
		TicketsSold:      row.Get("ticketsSold").Int(),
		GrossRevenue:     row.Get("grossRevenue").Float() / microUSDC,
		Status:           row.Get("status").String(),
		HasWinner:        row.Get("hasWinner").Bool(),
		Winner:           row.Get("winner").String(),
	}

	if d := row.Get("duration"); d.Exists() && d.Int() > 0 {
		seconds := d.Int()
		lottery.DurationSeconds = &seconds
	}
	if m := row.Get("maxTickets"); m.Exists() && m.Int() > 0 {
		max := m.Int()
		lottery.MaxTickets = &max
	}
	if ts := row.Get("createdAt").Int(); ts > 0 {
		lottery.CreatedAt = time.Unix(ts, 0).UTC()
	}
	if lottery.ID != "" {
		lottery.URL = lotteryURLBase + lottery.ID
	}

	return lottery
}
