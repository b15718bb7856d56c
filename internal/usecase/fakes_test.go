package usecase

import (
	"context"
	"fmt"
	"html/template"
	"sync"

	"github.com/vitos/crypto_dashboard/internal/domain"
)

// MockProvider serves canned coin data. A gate, when set for an id, blocks
// GetCoin until the channel is closed. ListGate does the same for ListMarkets.
type MockProvider struct {
	mu          sync.Mutex
	Coins       []domain.CoinSummary
	ListErr     error
	ListGate    chan struct{}
	ListEntered chan struct{}

	Details   map[string]*domain.CoinDetail
	DetailErr map[string]error
	Gates     map[string]chan struct{}
	Entered   chan string

	ListCalls   int
	DetailCalls []string
}

func (m *MockProvider) ListMarkets(ctx context.Context) ([]domain.CoinSummary, error) {
	m.mu.Lock()
	m.ListCalls++
	gate, entered := m.ListGate, m.ListEntered
	m.mu.Unlock()

	if entered != nil {
		entered <- struct{}{}
	}
	if gate != nil {
		<-gate
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return append([]domain.CoinSummary(nil), m.Coins...), nil
}

func (m *MockProvider) GetCoin(ctx context.Context, id string) (*domain.CoinDetail, error) {
	m.mu.Lock()
	m.DetailCalls = append(m.DetailCalls, id)
	gate := m.Gates[id]
	entered := m.Entered
	m.mu.Unlock()

	if entered != nil {
		entered <- id
	}
	if gate != nil {
		<-gate
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.DetailErr[id]; err != nil {
		return nil, err
	}
	d, ok := m.Details[id]
	if !ok {
		return nil, &domain.HTTPError{Status: 404}
	}
	return d, nil
}

type mockChart struct {
	id        string
	dataset   domain.ChartDataset
	factory   *MockChartFactory
	destroyed bool
}

func (c *mockChart) ID() string                   { return c.id }
func (c *mockChart) Dataset() domain.ChartDataset { return c.dataset }
func (c *mockChart) Markup() template.HTML        { return template.HTML("<svg id=\"" + c.id + "\"></svg>") }

func (c *mockChart) Destroy() error {
	c.factory.mu.Lock()
	defer c.factory.mu.Unlock()
	if c.destroyed {
		return fmt.Errorf("%s destroyed twice", c.id)
	}
	c.destroyed = true
	c.factory.live--
	c.factory.Destroyed = append(c.factory.Destroyed, c.id)
	return nil
}

// MockChartFactory counts live widgets so leaked canvases are visible.
type MockChartFactory struct {
	mu        sync.Mutex
	seq       int
	live      int
	Created   []string
	Destroyed []string
	Err       error
}

func (f *MockChartFactory) NewChart(ds domain.ChartDataset) (domain.ChartWidget, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	f.seq++
	f.live++
	id := fmt.Sprintf("chart-%d", f.seq)
	f.Created = append(f.Created, id)
	return &mockChart{id: id, dataset: ds, factory: f}, nil
}

func (f *MockChartFactory) Live() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.live
}

func sampleCoins() []domain.CoinSummary {
	return []domain.CoinSummary{
		{ID: "bitcoin", Name: "Bitcoin", CurrentPrice: 64000.5, MarketCap: 1260000000000, PriceChangePercentage24h: -1.25},
		{ID: "ethereum", Name: "Ethereum", CurrentPrice: 3100, MarketCap: 372000000000, PriceChangePercentage24h: 0},
		{ID: "tether", Name: "Tether", CurrentPrice: 1, MarketCap: 110000000000, PriceChangePercentage24h: 0.01},
	}
}

func sampleDetail(id, name, symbol string, rank int, price float64) *domain.CoinDetail {
	return &domain.CoinDetail{
		ID:            id,
		Name:          name,
		Symbol:        symbol,
		MarketCapRank: rank,
		MarketData: domain.MarketData{
			CurrentPriceUSD:          price,
			High24hUSD:               price * 1.02,
			Low24hUSD:                price * 0.98,
			PriceChangePercentage24h: -2.5,
			TotalVolumeUSD:           25000000000,
			MarketCapUSD:             1234567,
			CirculatingSupply:        19700000.5,
		},
	}
}
