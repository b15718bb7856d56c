package domain

// CoinSummary is one row of the markets listing, ranked upstream by market cap.
type CoinSummary struct {
	ID                       string  `json:"id"`
	Name                     string  `json:"name"`
	Symbol                   string  `json:"symbol,omitempty"`
	MarketCapRank            int     `json:"market_cap_rank,omitempty"`
	CurrentPrice             float64 `json:"current_price"`
	MarketCap                float64 `json:"market_cap"`
	PriceChangePercentage24h float64 `json:"price_change_percentage_24h"`
}

// CoinDetail is the extended per-asset record fetched when a row is selected.
type CoinDetail struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Symbol        string     `json:"symbol"`
	MarketCapRank int        `json:"market_cap_rank,omitempty"` // 0 when unranked
	MarketData    MarketData `json:"market_data"`
}

// MarketData holds the USD figures shown on the detail panel.
type MarketData struct {
	CurrentPriceUSD          float64 `json:"current_price_usd"`
	High24hUSD               float64 `json:"high_24h_usd"`
	Low24hUSD                float64 `json:"low_24h_usd"`
	PriceChangePercentage24h float64 `json:"price_change_percentage_24h"`
	TotalVolumeUSD           float64 `json:"total_volume_usd"`
	MarketCapUSD             float64 `json:"market_cap_usd"`
	CirculatingSupply        float64 `json:"circulating_supply"`
}
