package chart

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/vitos/crypto_dashboard/internal/domain"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var ErrDestroyed = errors.New("chart already destroyed")

const (
	DefaultWidth  = 800
	DefaultHeight = 360
)

var textColor = drawing.ColorFromHex("e6edf3")

// SVGFactory draws bar charts as inline SVG on the dashboard canvas.
type SVGFactory struct {
	registry *Registry
	width    int
	height   int
	seq      atomic.Uint64
}

func NewSVGFactory(registry *Registry, width, height int) *SVGFactory {
	if registry == nil {
		registry = NewRegistry()
	}
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return &SVGFactory{registry: registry, width: width, height: height}
}

func (f *SVGFactory) Registry() *Registry { return f.registry }

func (f *SVGFactory) NewChart(dataset domain.ChartDataset) (domain.ChartWidget, error) {
	if len(dataset.Labels) != len(dataset.Values) {
		return nil, fmt.Errorf("chart: %d labels for %d values", len(dataset.Labels), len(dataset.Values))
	}
	if len(dataset.Values) == 0 {
		return nil, errors.New("chart: no values to draw")
	}

	id := fmt.Sprintf("priceChart-%d", f.seq.Add(1))
	markup, err := f.draw(id, dataset)
	if err != nil {
		return nil, err
	}

	c := &SVGChart{
		id:       id,
		dataset:  dataset,
		markup:   markup,
		registry: f.registry,
	}
	f.registry.add(id)
	return c, nil
}

func (f *SVGFactory) draw(id string, ds domain.ChartDataset) (template.HTML, error) {
	fill, err := parseColor(ds.FillColor)
	if err != nil {
		return "", err
	}
	stroke, err := parseColor(ds.StrokeColor)
	if err != nil {
		return "", err
	}

	barStyle := gochart.Style{
		FillColor:   fill,
		StrokeColor: stroke,
		StrokeWidth: float64(ds.BorderWidth),
	}
	bars := make([]gochart.Value, len(ds.Values))
	for i, v := range ds.Values {
		bars[i] = gochart.Value{Label: ds.Labels[i], Value: v, Style: barStyle}
	}

	bc := gochart.BarChart{
		Title:      ds.SeriesLabel,
		TitleStyle: gochart.Style{FontColor: textColor},
		Width:      f.width,
		Height:     f.height,
		Background: gochart.Style{
			Padding:   gochart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16},
			FillColor: drawing.ColorTransparent,
		},
		Canvas: gochart.Style{FillColor: drawing.ColorTransparent},
		XAxis:  gochart.Style{FontColor: textColor},
		YAxis: gochart.YAxis{
			Style: gochart.Style{FontColor: textColor},
			Range: yRange(ds),
		},
		Bars: bars,
	}
	// Fit every bar on the canvas; the library default spacing overflows at 20 coins.
	if slot := (f.width - 120) / len(bars); slot > 2 {
		bc.BarWidth = slot * 2 / 3
		bc.BarSpacing = slot - bc.BarWidth
	}

	var buf bytes.Buffer
	if err := bc.Render(gochart.SVG, &buf); err != nil {
		return "", fmt.Errorf("chart: render svg: %w", err)
	}
	return template.HTML(`<figure id="` + template.HTMLEscapeString(id) + `" class="price-chart">` +
		buf.String() + `</figure>`), nil
}

// yRange pins the axis floor to zero. A nil range lets the chart fit the data.
func yRange(ds domain.ChartDataset) gochart.Range {
	if !ds.BeginAtZero {
		return nil
	}
	hi := 0.0
	for _, v := range ds.Values {
		if v > hi {
			hi = v
		}
	}
	if hi == 0 {
		hi = 1
	}
	return &gochart.ContinuousRange{Min: 0, Max: hi * 1.1}
}

// parseColor reads "rgb(r, g, b)" and "rgba(r, g, b, a)" with a in [0,1],
// and falls back to hex for anything else.
func parseColor(s string) (drawing.Color, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	var r, g, b uint8
	var a float64
	switch {
	case s == "":
		return drawing.ColorTransparent, nil
	case strings.HasPrefix(s, "rgba("):
		if _, err := fmt.Sscanf(s, "rgba(%d,%d,%d,%g)", &r, &g, &b, &a); err != nil {
			return drawing.Color{}, fmt.Errorf("chart: bad color %q: %w", s, err)
		}
		if a < 0 || a > 1 {
			return drawing.Color{}, fmt.Errorf("chart: bad alpha in %q", s)
		}
		return drawing.Color{R: r, G: g, B: b, A: uint8(a*255 + 0.5)}, nil
	case strings.HasPrefix(s, "rgb("):
		if _, err := fmt.Sscanf(s, "rgb(%d,%d,%d)", &r, &g, &b); err != nil {
			return drawing.Color{}, fmt.Errorf("chart: bad color %q: %w", s, err)
		}
		return drawing.Color{R: r, G: g, B: b, A: 255}, nil
	default:
		return drawing.ColorFromHex(strings.TrimPrefix(s, "#")), nil
	}
}

// SVGChart is one drawn chart. It holds its canvas until Destroy is called.
type SVGChart struct {
	id       string
	dataset  domain.ChartDataset
	markup   template.HTML
	registry *Registry

	mu        sync.Mutex
	destroyed bool
}

func (c *SVGChart) ID() string { return c.id }

func (c *SVGChart) Dataset() domain.ChartDataset { return c.dataset }

func (c *SVGChart) Markup() template.HTML {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.destroyed {
		return ""
	}
	return c.markup
}

func (c *SVGChart) Destroy() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.destroyed {
		return ErrDestroyed
	}
	c.destroyed = true
	c.registry.remove(c.id)
	return nil
}
