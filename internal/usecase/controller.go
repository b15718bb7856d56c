package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/vitos/crypto_dashboard/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var ErrClosed = errors.New("controller closed")

// Controller owns the dashboard surface and runs the list and detail views.
// Fetches run without holding the lock, so overlapping requests race and the
// last one to resolve is what stays rendered.
type Controller struct {
	provider domain.MarketDataProvider
	list     *ListRenderer
	detail   *DetailRenderer
	chart    *ChartRenderer
	logger   *zap.Logger

	mu      sync.Mutex
	surface Surface
	closed  bool
}

func NewController(provider domain.MarketDataProvider, charts domain.ChartFactory, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		provider: provider,
		list:     NewListRenderer(),
		detail:   NewDetailRenderer(),
		chart:    NewChartRenderer(charts),
		logger:   logger,
	}
}

// Start performs the initial page load of the markets table.
func (c *Controller) Start(ctx context.Context) error {
	return c.Dispatch(ctx, domain.LoadList{})
}

// Dispatch applies one UI action. Fetch failures are not returned; they
// become a failed view with a retry control.
func (c *Controller) Dispatch(ctx context.Context, action domain.Action) error {
	c.mu.Lock()
	closed := c.closed
	c.mu.Unlock()
	if closed {
		return ErrClosed
	}

	c.logger.Debug("Dispatch", zap.String("action", domain.ActionName(action)))

	// In-flight fetches are never cancelled, even if the caller goes away.
	ctx = context.WithoutCancel(ctx)

	switch a := action.(type) {
	case domain.LoadList, domain.RetryList:
		c.loadList(ctx)
	case domain.SelectCoin:
		c.loadDetail(ctx, a.ID)
	case domain.RetryDetail:
		c.loadDetail(ctx, a.ID)
	case domain.Search:
		c.search(a.Query)
	default:
		return fmt.Errorf("unknown action %T", action)
	}
	return nil
}

func (c *Controller) loadList(ctx context.Context) {
	c.mu.Lock()
	c.surface.List = ListView{State: ViewLoading, Message: MsgListLoading}
	c.mu.Unlock()

	rows, err := c.fetchAndRenderList(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		c.logger.Debug("Dropping coin list after close", zap.Error(err))
		return
	}
	if err != nil {
		c.logger.Error("Failed to load coin list",
			zap.String("kind", domain.ErrorKind(err)),
			zap.Error(err),
		)
		c.surface.List = ListView{
			State:   ViewFailed,
			Message: MsgListFailed,
			Retry:   domain.RetryList{},
		}
		return
	}
	c.surface.List = ListView{State: ViewLoaded, Rows: rows}
	c.logger.Info("Coin list loaded", zap.Int("rows", len(rows)))
}

func (c *Controller) fetchAndRenderList(ctx context.Context) ([]TableRow, error) {
	coins, err := c.provider.ListMarkets(ctx)
	if err != nil {
		return nil, err
	}
	if len(coins) == 0 {
		return nil, &domain.EmptyDataError{What: "markets"}
	}

	var (
		rows []TableRow
		g    errgroup.Group
	)
	g.Go(func() error {
		var err error
		rows, err = c.list.Render(coins)
		return err
	})
	g.Go(func() error {
		_, err := c.chart.Render(coins)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Controller) loadDetail(ctx context.Context, id string) {
	c.mu.Lock()
	c.surface.Detail = DetailView{State: ViewLoading, CoinID: id, Message: MsgDetailLoading}
	c.mu.Unlock()

	var panel DetailPanel
	coin, err := c.provider.GetCoin(ctx, id)
	if err == nil {
		panel, err = c.detail.Render(coin)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.logger.Error("Failed to load coin details",
			zap.String("coin_id", id),
			zap.String("kind", domain.ErrorKind(err)),
			zap.Error(err),
		)
		c.surface.Detail = DetailView{
			State:   ViewFailed,
			CoinID:  id,
			Message: MsgDetailFailed,
			Retry:   domain.RetryDetail{ID: id},
		}
		return
	}
	c.surface.Detail = DetailView{State: ViewLoaded, CoinID: id, Panel: &panel}
}

func (c *Controller) search(query string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.surface.Query = query
	FilterRows(c.surface.List.Rows, query)
}

// Snapshot returns a copy of the surface safe to render.
func (c *Controller) Snapshot() Surface {
	c.mu.Lock()
	s := c.surface.clone()
	c.mu.Unlock()

	// The chart has its own lock, so it may come from a different list fetch
	// than the rows. Whichever fetch resolved last wins for each.
	if w := c.chart.Current(); w != nil {
		ds := w.Dataset()
		s.Chart = ChartView{WidgetID: w.ID(), Dataset: &ds, Markup: w.Markup()}
	}
	return s
}

// Close destroys the chart widget. Further dispatches fail with ErrClosed,
// and a list load still in flight finishes without drawing a chart.
func (c *Controller) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.mu.Unlock()
	return c.chart.Dispose()
}
