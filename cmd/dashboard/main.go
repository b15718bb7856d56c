package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"github.com/vitos/crypto_dashboard/internal/infrastructure/chart"
	"github.com/vitos/crypto_dashboard/internal/infrastructure/coingecko"
	"github.com/vitos/crypto_dashboard/internal/infrastructure/logger"
	"github.com/vitos/crypto_dashboard/internal/usecase"
	"github.com/vitos/crypto_dashboard/internal/web"
	"go.uber.org/zap"
)

func main() {
	configPath := pflag.StringP("config", "c", "config/config.yaml", "path to the YAML config file")
	pflag.Parse()

	// 1. Load Config
	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 2. Init Logger
	newLogger := logger.NewLogger
	if cfg.Logging.Development {
		newLogger = logger.NewDevelopmentLogger
	}
	log, err := newLogger(cfg.Logging.Level)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// 3. Init Upstream Client
	client := coingecko.NewClient(
		cfg.Upstream.BaseURL,
		cfg.UpstreamTimeout(),
		coingecko.WithAPIKey(cfg.Upstream.APIKey),
		coingecko.WithUserAgent(cfg.Upstream.UserAgent),
	)

	// 4. Init Controller
	charts := chart.NewSVGFactory(chart.NewRegistry(), cfg.Chart.Width, cfg.Chart.Height)
	ctrl := usecase.NewController(client, charts, log.Named("controller"))

	// 5. Init Web Server
	server, err := web.NewServer(cfg.Server.Port, ctrl, log.Named("web"))
	if err != nil {
		log.Fatal("Failed to init web server", zap.Error(err))
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()

	// 6. Wait for Shutdown
	<-stop

	log.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown failed", zap.Error(err))
	}
	if err := ctrl.Close(); err != nil {
		log.Error("Failed to dispose chart", zap.Error(err))
	}
}
