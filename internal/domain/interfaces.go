package domain

import "context"

// MarketDataProvider fetches coin data from the upstream market API.
// Implementations validate payloads so callers only see well-formed values
// or one of the typed errors in errors.go.
type MarketDataProvider interface {
	ListMarkets(ctx context.Context) ([]CoinSummary, error)
	GetCoin(ctx context.Context, id string) (*CoinDetail, error)
}
