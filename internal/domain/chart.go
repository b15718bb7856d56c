package domain

import "html/template"

// ChartDataset is a single bar series derived from the current coin list.
type ChartDataset struct {
	Labels      []string  `json:"labels"`
	Values      []float64 `json:"values"`
	SeriesLabel string    `json:"series_label"`
	FillColor   string    `json:"fill_color"`
	StrokeColor string    `json:"stroke_color"`
	BorderWidth int       `json:"border_width"`
	BeginAtZero bool      `json:"begin_at_zero"`
}

// ChartWidget is a live chart bound to a canvas. A destroyed widget must not be reused.
type ChartWidget interface {
	ID() string
	Dataset() ChartDataset
	Markup() template.HTML
	Destroy() error
}

// ChartFactory constructs chart widgets on the dashboard canvas.
type ChartFactory interface {
	NewChart(dataset ChartDataset) (ChartWidget, error)
}
