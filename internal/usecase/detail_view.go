package usecase

import (
	"fmt"
	"strings"

	"github.com/vitos/crypto_dashboard/internal/domain"
)

type DetailField struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Color string `json:"color,omitempty"`
}

// DetailPanel is the rendered detail view for one coin.
type DetailPanel struct {
	CoinID string        `json:"coin_id"`
	Title  string        `json:"title"`
	Fields []DetailField `json:"fields"`
}

type DetailRenderer struct{}

func NewDetailRenderer() *DetailRenderer {
	return &DetailRenderer{}
}

func (r *DetailRenderer) Render(coin *domain.CoinDetail) (DetailPanel, error) {
	if coin == nil {
		return DetailPanel{}, &domain.EmptyDataError{What: "coin"}
	}
	md := coin.MarketData

	return DetailPanel{
		CoinID: coin.ID,
		Title:  coin.Name + " Details",
		Fields: []DetailField{
			{Label: "Market Cap Rank", Value: formatRank(coin.MarketCapRank)},
			{Label: "Current Price", Value: FormatPrice(md.CurrentPriceUSD)},
			{Label: "24h High", Value: FormatPrice(md.High24hUSD)},
			{Label: "24h Low", Value: FormatPrice(md.Low24hUSD)},
			{
				Label: "24h Price Change",
				Value: FormatPercent(md.PriceChangePercentage24h),
				Color: ChangeColor(md.PriceChangePercentage24h),
			},
			{Label: "Total Volume", Value: FormatUSD(md.TotalVolumeUSD)},
			{Label: "Market Cap", Value: FormatUSD(md.MarketCapUSD)},
			{Label: "Circulating Supply", Value: GroupNumber(md.CirculatingSupply) + " " + strings.ToUpper(coin.Symbol)},
		},
	}, nil
}

func formatRank(rank int) string {
	if rank <= 0 {
		return RankUnknown
	}
	return fmt.Sprintf("#%d", rank)
}
