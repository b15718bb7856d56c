package web

import (
	"encoding/json"
	"net/http"

	"github.com/vitos/crypto_dashboard/internal/usecase"
	"go.uber.org/zap"
)

type listJSON struct {
	State   string             `json:"state"`
	Message string             `json:"message,omitempty"`
	Query   string             `json:"query"`
	Rows    []usecase.TableRow `json:"rows"`
}

type detailJSON struct {
	State   string               `json:"state"`
	CoinID  string               `json:"coin_id,omitempty"`
	Message string               `json:"message,omitempty"`
	Panel   *usecase.DetailPanel `json:"panel,omitempty"`
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Failed to encode response", zap.Error(err))
	}
}

func (s *Server) handleCoinsJSON(w http.ResponseWriter, r *http.Request) {
	snap := s.dashboard.Snapshot()
	rows := snap.List.Rows
	if rows == nil {
		rows = []usecase.TableRow{}
	}
	s.writeJSON(w, listJSON{
		State:   snap.List.State.String(),
		Message: snap.List.Message,
		Query:   snap.Query,
		Rows:    rows,
	})
}

func (s *Server) handleChartJSON(w http.ResponseWriter, r *http.Request) {
	chart := s.dashboard.Snapshot().Chart
	if chart.Dataset == nil {
		http.Error(w, "No chart rendered", http.StatusNotFound)
		return
	}
	s.writeJSON(w, chart.Dataset)
}

func (s *Server) handleDetailJSON(w http.ResponseWriter, r *http.Request) {
	d := s.dashboard.Snapshot().Detail
	s.writeJSON(w, detailJSON{
		State:   d.State.String(),
		CoinID:  d.CoinID,
		Message: d.Message,
		Panel:   d.Panel,
	})
}
