package web

import (
	"net/http"

	"github.com/vitos/crypto_dashboard/internal/domain"
	"go.uber.org/zap"
)

// chartRefreshEvent tells the page to pull the chart fragment again.
const chartRefreshEvent = "chart-refresh"

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		s.logger.Error("Template error", zap.String("template", name), zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func (s *Server) dispatch(w http.ResponseWriter, r *http.Request, action domain.Action) bool {
	if err := s.dashboard.Dispatch(r.Context(), action); err != nil {
		s.logger.Error("Dispatch failed", zap.String("action", domain.ActionName(action)), zap.Error(err))
		http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
		return false
	}
	return true
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.render(w, "index.html", s.dashboard.Snapshot())
}

func (s *Server) handleCoinRows(w http.ResponseWriter, r *http.Request) {
	s.render(w, "coin_rows", s.dashboard.Snapshot().List)
}

func (s *Server) handleLoadList(w http.ResponseWriter, r *http.Request) {
	s.listAction(w, r, domain.LoadList{})
}

func (s *Server) handleRetryList(w http.ResponseWriter, r *http.Request) {
	s.listAction(w, r, domain.RetryList{})
}

func (s *Server) listAction(w http.ResponseWriter, r *http.Request, action domain.Action) {
	if !s.dispatch(w, r, action) {
		return
	}
	w.Header().Set("HX-Trigger", chartRefreshEvent)
	s.render(w, "coin_rows", s.dashboard.Snapshot().List)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if !s.dispatch(w, r, domain.Search{Query: r.FormValue("q")}) {
		return
	}
	s.render(w, "coin_rows", s.dashboard.Snapshot().List)
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	s.render(w, "price_chart", s.dashboard.Snapshot().Chart)
}

func (s *Server) handleDetail(w http.ResponseWriter, r *http.Request) {
	s.render(w, "detail_panel", s.dashboard.Snapshot().Detail)
}

func (s *Server) handleSelectCoin(w http.ResponseWriter, r *http.Request) {
	s.detailAction(w, r, domain.SelectCoin{ID: r.PathValue("id")})
}

func (s *Server) handleRetryDetail(w http.ResponseWriter, r *http.Request) {
	s.detailAction(w, r, domain.RetryDetail{ID: r.PathValue("id")})
}

func (s *Server) detailAction(w http.ResponseWriter, r *http.Request, action domain.Action) {
	if !s.dispatch(w, r, action) {
		return
	}
	s.render(w, "detail_panel", s.dashboard.Snapshot().Detail)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("ok"))
}
