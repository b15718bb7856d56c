package usecase

import "github.com/vitos/crypto_dashboard/internal/domain"

// TableRow is one rendered row of the markets table.
type TableRow struct {
	CoinID      string `json:"coin_id"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	MarketCap   string `json:"market_cap"`
	Change      string `json:"change"`
	ChangeColor string `json:"change_color"`
	Hidden      bool   `json:"hidden"`
}

type ListRenderer struct{}

func NewListRenderer() *ListRenderer {
	return &ListRenderer{}
}

// Render turns the coin list into table rows, keeping upstream order.
// An empty list is a failure, not an empty table.
func (r *ListRenderer) Render(coins []domain.CoinSummary) ([]TableRow, error) {
	if len(coins) == 0 {
		return nil, &domain.EmptyDataError{What: "markets"}
	}

	rows := make([]TableRow, 0, len(coins))
	for _, c := range coins {
		rows = append(rows, TableRow{
			CoinID:      c.ID,
			Name:        c.Name,
			Price:       FormatPrice(c.CurrentPrice),
			MarketCap:   FormatUSD(c.MarketCap),
			Change:      FormatPercent(c.PriceChangePercentage24h),
			ChangeColor: ChangeColor(c.PriceChangePercentage24h),
		})
	}
	return rows, nil
}
