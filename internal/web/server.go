package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"time"

	"github.com/vitos/crypto_dashboard/internal/domain"
	"github.com/vitos/crypto_dashboard/internal/usecase"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

// Dashboard is the controller the handlers drive.
type Dashboard interface {
	Dispatch(ctx context.Context, action domain.Action) error
	Snapshot() usecase.Surface
}

type Server struct {
	router    *http.ServeMux
	server    *http.Server
	dashboard Dashboard
	templates *template.Template
	logger    *zap.Logger
}

func ParseTemplates() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"pathEscape": url.PathEscape,
	}).ParseFS(templateFS, "templates/*.html")
}

func NewServer(port int, dashboard Dashboard, logger *zap.Logger) (*Server, error) {
	tmpl, err := ParseTemplates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		router:    http.NewServeMux(),
		dashboard: dashboard,
		templates: tmpl,
		logger:    logger,
	}
	s.routes()
	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s, nil
}

func (s *Server) routes() {
	// Page
	s.router.HandleFunc("GET /{$}", s.handleIndex)

	// Markets table
	s.router.HandleFunc("GET /coins", s.handleCoinRows)
	s.router.HandleFunc("POST /coins/load", s.handleLoadList)
	s.router.HandleFunc("POST /coins/retry", s.handleRetryList)
	s.router.HandleFunc("POST /search", s.handleSearch)

	// Chart
	s.router.HandleFunc("GET /chart", s.handleChart)

	// Detail panel
	s.router.HandleFunc("GET /detail", s.handleDetail)
	s.router.HandleFunc("POST /coins/{id}/select", s.handleSelectCoin)
	s.router.HandleFunc("POST /coins/{id}/retry", s.handleRetryDetail)

	// JSON
	s.router.HandleFunc("GET /api/coins", s.handleCoinsJSON)
	s.router.HandleFunc("GET /api/chart", s.handleChartJSON)
	s.router.HandleFunc("GET /api/detail", s.handleDetailJSON)

	s.router.HandleFunc("GET /healthz", s.handleHealth)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Start() error {
	s.logger.Info("Starting web server", zap.String("addr", s.server.Addr))
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
