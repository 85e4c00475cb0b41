package app

import (
	"log/slog"

	"relay_go/internal/domain"
	"relay_go/internal/infra"
	"relay_go/internal/infra/coinbase"
	"relay_go/internal/infra/storage"
	"relay_go/internal/infra/tradingview"
	"relay_go/internal/server"
	"relay_go/internal/service"
)

// Bootstrap orchestrates the application startup sequence
type Bootstrap struct {
	Config  *infra.Config
	Journal *storage.Journal
	Relay   *service.RelayService
	Server  *server.Server
}

// NewBootstrap creates a new Bootstrap instance
func NewBootstrap() *Bootstrap {
	return &Bootstrap{}
}

// Initialize performs core system initialization (config, logger, journal,
// exchange client, relay, HTTP server).
func (b *Bootstrap) Initialize(configPath string) error {
	slog.Info("🚀 Bootstrapping Signal Relay...")

	// 1. Load Config
	cfg, err := infra.LoadConfig(configPath)
	if err != nil {
		return err // Let main handle the error
	}
	b.Config = cfg

	// 2. Setup Logger
	logger := infra.NewLogger(cfg)
	slog.SetDefault(logger)

	// 3. Journal (optional audit log)
	var journal domain.AlertJournal
	if cfg.Journal.Enabled {
		j, err := storage.NewJournal(cfg.Journal.Path)
		if err != nil {
			return err
		}
		b.Journal = j
		journal = j
		slog.Info("✅ Journal initialized", slog.String("path", cfg.Journal.Path))
	}

	// 4. Exchange client + relay service
	client := coinbase.NewClient(cfg)
	b.Relay = service.NewRelayService(client, journal, cfg.Trade.SizeUSD)

	// 5. HTTP server
	webhook := tradingview.NewWebhookHandler(b.Relay)
	b.Server = server.NewServer(server.Config{Port: cfg.Server.Port}, webhook, logger)

	slog.Info("✅ Relay wired",
		slog.String("trade_size_usd", cfg.Trade.SizeUSD.String()),
		slog.Int("port", cfg.Server.Port),
	)

	return nil
}
