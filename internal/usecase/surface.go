package usecase

import (
	"html/template"

	"github.com/vitos/crypto_dashboard/internal/domain"
)

type ViewState int

const (
	ViewIdle ViewState = iota
	ViewLoading
	ViewLoaded
	ViewFailed
)

func (s ViewState) String() string {
	switch s {
	case ViewIdle:
		return "idle"
	case ViewLoading:
		return "loading"
	case ViewLoaded:
		return "loaded"
	case ViewFailed:
		return "failed"
	default:
		return "unknown"
	}
}

const (
	MsgListLoading   = "Loading..."
	MsgListFailed    = "Failed to load data. Please try again."
	MsgDetailLoading = "Loading coin details..."
	MsgDetailFailed  = "Failed to load coin details. Please try again."
)

type ListView struct {
	State   ViewState
	Rows    []TableRow
	Message string
	Retry   domain.Action
}

type DetailView struct {
	State   ViewState
	CoinID  string
	Panel   *DetailPanel
	Message string
	Retry   domain.Action
}

type ChartView struct {
	WidgetID string
	Dataset  *domain.ChartDataset
	Markup   template.HTML
}

// Surface is everything currently rendered on the dashboard.
type Surface struct {
	List   ListView
	Detail DetailView
	Chart  ChartView
	Query  string
}

func (s Surface) clone() Surface {
	out := s
	if s.List.Rows != nil {
		out.List.Rows = append([]TableRow(nil), s.List.Rows...)
	}
	if s.Detail.Panel != nil {
		p := *s.Detail.Panel
		p.Fields = append([]DetailField(nil), s.Detail.Panel.Fields...)
		out.Detail.Panel = &p
	}
	return out
}
