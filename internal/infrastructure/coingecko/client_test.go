package coingecko

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitos/crypto_dashboard/internal/domain"
)

const marketsJSON = `[
  {"id":"bitcoin","symbol":"btc","name":"Bitcoin","current_price":64000.5,"market_cap":1260000000000,"market_cap_rank":1,"price_change_percentage_24h":-1.25,"sparkline_in_7d":{"price":[1,2,3]}},
  {"id":"ethereum","symbol":"eth","name":"Ethereum","current_price":3100,"market_cap":372000000000,"market_cap_rank":2,"price_change_percentage_24h":0}
]`

const bitcoinJSON = `{
  "id":"bitcoin","symbol":"btc","name":"Bitcoin","market_cap_rank":1,
  "market_data":{
    "current_price":{"usd":64000.5,"eur":59000},
    "high_24h":{"usd":65000},
    "low_24h":{"usd":63000},
    "price_change_percentage_24h":-1.25,
    "total_volume":{"usd":25000000000},
    "market_cap":{"usd":1260000000000},
    "circulating_supply":19700000.5
  }
}`

func newTestServer(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, time.Second)
}

func TestListMarkets_RequestAndDecode(t *testing.T) {
	var gotPath string
	var gotQuery map[string]string
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(marketsJSON))
	})

	coins, err := c.ListMarkets(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/coins/markets", gotPath)
	assert.Equal(t, map[string]string{
		"vs_currency": "usd",
		"order":       "market_cap_desc",
		"per_page":    "20",
		"page":        "1",
		"sparkline":   "true",
	}, gotQuery)

	require.Len(t, coins, 2)
	assert.Equal(t, domain.CoinSummary{
		ID: "bitcoin", Name: "Bitcoin", Symbol: "btc", MarketCapRank: 1,
		CurrentPrice: 64000.5, MarketCap: 1260000000000, PriceChangePercentage24h: -1.25,
	}, coins[0])
	assert.Equal(t, "ethereum", coins[1].ID)
}

func TestListMarkets_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		check  func(t *testing.T, err error)
	}{
		{"empty array", 200, `[]`, func(t *testing.T, err error) {
			var e *domain.EmptyDataError
			assert.True(t, errors.As(err, &e))
		}},
		{"null body", 200, `null`, func(t *testing.T, err error) {
			var e *domain.EmptyDataError
			assert.True(t, errors.As(err, &e))
		}},
		{"server error", 500, `oops`, func(t *testing.T, err error) {
			var e *domain.HTTPError
			require.True(t, errors.As(err, &e))
			assert.Equal(t, 500, e.Status)
		}},
		{"rate limited", 429, `{}`, func(t *testing.T, err error) {
			var e *domain.HTTPError
			require.True(t, errors.As(err, &e))
			assert.Equal(t, 429, e.Status)
		}},
		{"not json", 200, `<html>`, func(t *testing.T, err error) {
			var e *domain.MalformedDataError
			assert.True(t, errors.As(err, &e))
		}},
		{"missing price", 200, `[{"id":"bitcoin","name":"Bitcoin","market_cap":1,"price_change_percentage_24h":1}]`, func(t *testing.T, err error) {
			var e *domain.MalformedDataError
			require.True(t, errors.As(err, &e))
			assert.Equal(t, "markets[0].current_price", e.Field)
		}},
		{"null change", 200, `[{"id":"bitcoin","name":"Bitcoin","current_price":1,"market_cap":1,"price_change_percentage_24h":null}]`, func(t *testing.T, err error) {
			var e *domain.MalformedDataError
			require.True(t, errors.As(err, &e))
			assert.Equal(t, "markets[0].price_change_percentage_24h", e.Field)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})
			coins, err := c.ListMarkets(context.Background())
			require.Error(t, err)
			assert.Nil(t, coins)
			tt.check(t, err)
		})
	}
}

func TestFetchData_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewClient(url, time.Second)
	_, err := c.ListMarkets(context.Background())

	var e *domain.NetworkError
	require.True(t, errors.As(err, &e))
	assert.Equal(t, "network", domain.ErrorKind(err))
}

func TestFetchData_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(func() { close(release) })

	c := NewClient(srv.URL, 50*time.Millisecond)
	_, err := c.GetCoin(context.Background(), "bitcoin")

	var e *domain.NetworkError
	assert.True(t, errors.As(err, &e))
}

func TestGetCoin_Decode(t *testing.T) {
	var gotPath, gotKey, gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-cg-demo-api-key")
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(bitcoinJSON))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL+"/", time.Second, WithAPIKey("demo-key"), WithUserAgent("dash/1.0"))
	coin, err := c.GetCoin(context.Background(), "bitcoin")
	require.NoError(t, err)

	assert.Equal(t, "/coins/bitcoin", gotPath)
	assert.Equal(t, "demo-key", gotKey)
	assert.Equal(t, "dash/1.0", gotUA)
	assert.Equal(t, &domain.CoinDetail{
		ID: "bitcoin", Name: "Bitcoin", Symbol: "btc", MarketCapRank: 1,
		MarketData: domain.MarketData{
			CurrentPriceUSD:          64000.5,
			High24hUSD:               65000,
			Low24hUSD:                63000,
			PriceChangePercentage24h: -1.25,
			TotalVolumeUSD:           25000000000,
			MarketCapUSD:             1260000000000,
			CirculatingSupply:        19700000.5,
		},
	}, coin)
}

func TestGetCoin_MissingMarketData(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"ethereum","symbol":"eth","name":"Ethereum","market_cap_rank":2}`))
	})

	coin, err := c.GetCoin(context.Background(), "ethereum")
	assert.Nil(t, coin)

	var e *domain.MalformedDataError
	require.True(t, errors.As(err, &e))
	assert.Equal(t, "market_data", e.Field)
}

func TestGetCoin_NullRankIsUnranked(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(strings.Replace(bitcoinJSON, `"market_cap_rank":1`, `"market_cap_rank":null`, 1)))
	})

	coin, err := c.GetCoin(context.Background(), "bitcoin")
	require.NoError(t, err)
	assert.Equal(t, 0, coin.MarketCapRank)
	assert.Equal(t, 64000.5, coin.MarketData.CurrentPriceUSD)
}

func TestGetCoin_MissingNestedUSD(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"x","symbol":"x","name":"X","market_cap_rank":9,
		  "market_data":{"current_price":{"usd":1},"high_24h":{},"low_24h":{"usd":1},
		  "price_change_percentage_24h":0,"total_volume":{"usd":1},"market_cap":{"usd":1},"circulating_supply":1}}`))
	})

	_, err := c.GetCoin(context.Background(), "x")

	var e *domain.MalformedDataError
	require.True(t, errors.As(err, &e))
	assert.Equal(t, "market_data.high_24h.usd", e.Field)
}

func TestGetCoin_EscapesID(t *testing.T) {
	var gotRawPath string
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotRawPath = r.URL.EscapedPath()
		w.Write([]byte(`null`))
	})

	_, err := c.GetCoin(context.Background(), "a/b")

	var e *domain.EmptyDataError
	assert.True(t, errors.As(err, &e))
	assert.Equal(t, "/coins/a%2Fb", gotRawPath)
}

func TestGetCoin_BlankID(t *testing.T) {
	c := NewClient("http://127.0.0.1:0", time.Second)
	_, err := c.GetCoin(context.Background(), "  ")
	assert.Equal(t, "malformed", domain.ErrorKind(err))
}
