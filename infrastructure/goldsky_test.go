package infrastructure

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const subgraphPage = `{
  "data": {
    "lotteries": [
      {
        "id": "0xlottery1",
        "contractAddress": "0xcontract1",
        "prizeProvider": "0xcreator1",
        "prizeAmount": "5000000000",
        "ticketPrice": "25000000",
        "pickRange": "250",
        "affiliatePercentage": "10",
        "duration": "86400",
        "maxTickets": "500",
        "ticketsSold": "42",
        "grossRevenue": "1050000000",
        "status": "ACTIVE",
        "hasWinner": false,
        "winner": "",
        "createdAt": "1755000000"
      },
      {
        "id": "0xlottery2",
        "prizeProvider": "0xcreator2",
        "prizeAmount": "100000000",
        "ticketPrice": "1000000",
        "status": "COMPLETED",
        "hasWinner": true,
        "winner": "0xwinner1"
      }
    ]
  }
}`

func TestGoldskyClient_RecentLotteries(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var request map[string]interface{}
		require.NoError(t, json.Unmarshal(body, &request))
		assert.Contains(t, request["query"], "lotteries(first: $first")
		variables := request["variables"].(map[string]interface{})
		assert.Equal(t, float64(100), variables["first"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(subgraphPage))
	}))
	defer server.Close()

	client := NewGoldskyClient(server.URL)
	lotteries, err := client.RecentLotteries(context.Background(), 100)
	require.NoError(t, err)
	require.Len(t, lotteries, 2)

	first := lotteries[0]
	assert.Equal(t, "0xlottery1", first.ID)
	assert.Equal(t, "0xcontract1", first.ContractAddress)
	assert.Equal(t, "0xcreator1", first.Creator)
	assert.Equal(t, 5000.0, first.Prize)
	assert.Equal(t, 25.0, first.TicketPrice)
	assert.Equal(t, int64(250), first.Odds)
	assert.Equal(t, 10.0, first.AffiliatePercent)
	require.NotNil(t, first.DurationSeconds)
	assert.Equal(t, int64(86400), *first.DurationSeconds)
	require.NotNil(t, first.MaxTickets)
	assert.Equal(t, int64(500), *first.MaxTickets)
	assert.Equal(t, int64(42), first.TicketsSold)
	assert.Equal(t, 1050.0, first.GrossRevenue)
	assert.True(t, first.IsActive())
	assert.Equal(t, time.Unix(1755000000, 0).UTC(), first.CreatedAt)
	assert.Equal(t, "https://chance.fun/lottery/0xlottery1", first.URL)

	// A sparse row still parses; missing odds stay zero.
	second := lotteries[1]
	assert.Equal(t, 100.0, second.Prize)
	assert.Zero(t, second.Odds)
	assert.Nil(t, second.DurationSeconds)
	assert.True(t, second.HasWinner)
	assert.Equal(t, "0xwinner1", second.Winner)
}

func TestGoldskyClient_RecentLotteries_GraphQLErrors(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"errors":[{"message":"rate limited"}]}`))
	}))
	defer server.Close()

	client := NewGoldskyClient(server.URL)
	_, err := client.RecentLotteries(context.Background(), 100)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
}

func TestGoldskyClient_RecentLotteries_HTTPError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewGoldskyClient(server.URL)
	_, err := client.RecentLotteries(context.Background(), 100)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

func TestGoldskyClient_RecentLotteries_MissingData(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data":{}}`))
	}))
	defer server.Close()

	client := NewGoldskyClient(server.URL)
	_, err := client.RecentLotteries(context.Background(), 100)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing lotteries")
}
