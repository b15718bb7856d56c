package usecase

import (
	"fmt"
	"sync"

	"github.com/vitos/crypto_dashboard/internal/domain"
)

const (
	ChartSeriesLabel = "Price (USD)"
	ChartFillColor   = "rgba(42, 80, 106, 0.6)"
	ChartStrokeColor = "rgb(58, 112, 148)"
)

// BuildDataset extracts names and prices into a single bar series.
func BuildDataset(coins []domain.CoinSummary) domain.ChartDataset {
	ds := domain.ChartDataset{
		Labels:      make([]string, 0, len(coins)),
		Values:      make([]float64, 0, len(coins)),
		SeriesLabel: ChartSeriesLabel,
		FillColor:   ChartFillColor,
		StrokeColor: ChartStrokeColor,
		BorderWidth: 1,
		BeginAtZero: true,
	}
	for _, c := range coins {
		ds.Labels = append(ds.Labels, c.Name)
		ds.Values = append(ds.Values, c.CurrentPrice)
	}
	return ds
}

// ChartRenderer owns the one live chart widget. The previous widget is
// destroyed before its replacement is created. Once disposed it creates no
// more widgets.
type ChartRenderer struct {
	factory domain.ChartFactory

	mu       sync.Mutex
	current  domain.ChartWidget
	disposed bool
}

func NewChartRenderer(factory domain.ChartFactory) *ChartRenderer {
	return &ChartRenderer{factory: factory}
}

func (r *ChartRenderer) Render(coins []domain.CoinSummary) (domain.ChartWidget, error) {
	ds := BuildDataset(coins)

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.disposed {
		return nil, ErrClosed
	}
	if r.current != nil {
		prev := r.current
		r.current = nil
		if err := prev.Destroy(); err != nil {
			return nil, fmt.Errorf("destroy chart %s: %w", prev.ID(), err)
		}
	}

	w, err := r.factory.NewChart(ds)
	if err != nil {
		return nil, fmt.Errorf("create chart: %w", err)
	}
	r.current = w
	return w, nil
}

// Current returns the live widget, or nil before the first render.
func (r *ChartRenderer) Current() domain.ChartWidget {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Dispose destroys the live widget, if any. Later renders fail with ErrClosed.
func (r *ChartRenderer) Dispose() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.disposed = true
	if r.current == nil {
		return nil
	}
	w := r.current
	r.current = nil
	return w.Destroy()
}
