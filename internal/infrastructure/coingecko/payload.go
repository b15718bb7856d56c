package coingecko

import (
	"fmt"

	"github.com/vitos/crypto_dashboard/internal/domain"
)

// Raw upstream shapes. Pointer fields distinguish absent or null values from zero.

type marketPayload struct {
	ID                       *string  `json:"id"`
	Symbol                   *string  `json:"symbol"`
	Name                     *string  `json:"name"`
	CurrentPrice             *float64 `json:"current_price"`
	MarketCap                *float64 `json:"market_cap"`
	MarketCapRank            *int     `json:"market_cap_rank"`
	PriceChangePercentage24h *float64 `json:"price_change_percentage_24h"`
}

type usdPayload struct {
	USD *float64 `json:"usd"`
}

type marketDataPayload struct {
	CurrentPrice             *usdPayload `json:"current_price"`
	High24h                  *usdPayload `json:"high_24h"`
	Low24h                   *usdPayload `json:"low_24h"`
	PriceChangePercentage24h *float64    `json:"price_change_percentage_24h"`
	TotalVolume              *usdPayload `json:"total_volume"`
	MarketCap                *usdPayload `json:"market_cap"`
	CirculatingSupply        *float64    `json:"circulating_supply"`
}

type coinPayload struct {
	ID            *string            `json:"id"`
	Symbol        *string            `json:"symbol"`
	Name          *string            `json:"name"`
	MarketCapRank *int               `json:"market_cap_rank"`
	MarketData    *marketDataPayload `json:"market_data"`
}

func decodeMarkets(payload []marketPayload) ([]domain.CoinSummary, error) {
	if len(payload) == 0 {
		return nil, &domain.EmptyDataError{What: "markets"}
	}

	coins := make([]domain.CoinSummary, 0, len(payload))
	for i, p := range payload {
		field := func(name string) error {
			return &domain.MalformedDataError{Field: fmt.Sprintf("markets[%d].%s", i, name)}
		}
		switch {
		case p.ID == nil || *p.ID == "":
			return nil, field("id")
		case p.Name == nil:
			return nil, field("name")
		case p.CurrentPrice == nil:
			return nil, field("current_price")
		case p.MarketCap == nil:
			return nil, field("market_cap")
		case p.PriceChangePercentage24h == nil:
			return nil, field("price_change_percentage_24h")
		}

		c := domain.CoinSummary{
			ID:                       *p.ID,
			Name:                     *p.Name,
			CurrentPrice:             *p.CurrentPrice,
			MarketCap:                *p.MarketCap,
			PriceChangePercentage24h: *p.PriceChangePercentage24h,
		}
		if p.Symbol != nil {
			c.Symbol = *p.Symbol
		}
		if p.MarketCapRank != nil {
			c.MarketCapRank = *p.MarketCapRank
		}
		coins = append(coins, c)
	}
	return coins, nil
}

func decodeCoin(p *coinPayload) (*domain.CoinDetail, error) {
	if p == nil {
		return nil, &domain.EmptyDataError{What: "coin"}
	}
	if p.MarketData == nil {
		return nil, &domain.MalformedDataError{Field: "market_data"}
	}
	md := p.MarketData

	usd := func(v *usdPayload, name string) (float64, error) {
		if v == nil || v.USD == nil {
			return 0, &domain.MalformedDataError{Field: "market_data." + name + ".usd"}
		}
		return *v.USD, nil
	}

	var (
		d   domain.CoinDetail
		err error
	)
	switch {
	case p.ID == nil:
		return nil, &domain.MalformedDataError{Field: "id"}
	case p.Name == nil:
		return nil, &domain.MalformedDataError{Field: "name"}
	case p.Symbol == nil:
		return nil, &domain.MalformedDataError{Field: "symbol"}
	case md.PriceChangePercentage24h == nil:
		return nil, &domain.MalformedDataError{Field: "market_data.price_change_percentage_24h"}
	case md.CirculatingSupply == nil:
		return nil, &domain.MalformedDataError{Field: "market_data.circulating_supply"}
	}
	d.ID, d.Name, d.Symbol = *p.ID, *p.Name, *p.Symbol
	// Unranked coins come back with a null rank.
	if p.MarketCapRank != nil {
		d.MarketCapRank = *p.MarketCapRank
	}

	if d.MarketData.CurrentPriceUSD, err = usd(md.CurrentPrice, "current_price"); err != nil {
		return nil, err
	}
	if d.MarketData.High24hUSD, err = usd(md.High24h, "high_24h"); err != nil {
		return nil, err
	}
	if d.MarketData.Low24hUSD, err = usd(md.Low24h, "low_24h"); err != nil {
		return nil, err
	}
	if d.MarketData.TotalVolumeUSD, err = usd(md.TotalVolume, "total_volume"); err != nil {
		return nil, err
	}
	if d.MarketData.MarketCapUSD, err = usd(md.MarketCap, "market_cap"); err != nil {
		return nil, err
	}
	d.MarketData.PriceChangePercentage24h = *md.PriceChangePercentage24h
	d.MarketData.CirculatingSupply = *md.CirculatingSupply

	return &d, nil
}
