package service

import (
	"context"
	"log/slog"
	"time"

	"relay_go/internal/domain"
	"relay_go/internal/infra"

	"github.com/shopspring/decimal"
)

// RelayService turns validated alerts into exchange orders. Stateless
// between requests: every field is set once at construction and only read
// afterwards, so concurrent Handle calls need no coordination.
type RelayService struct {
	exchange  domain.Exchange
	journal   domain.AlertJournal // nil when journaling is disabled
	tradeSize decimal.Decimal
	logger    *slog.Logger
}

// NewRelayService creates a new RelayService instance
func NewRelayService(exchange domain.Exchange, journal domain.AlertJournal, tradeSize decimal.Decimal) *RelayService {
	return &RelayService{
		exchange:  exchange,
		journal:   journal,
		tradeSize: tradeSize,
		logger:    slog.Default().With("module", "relay"),
	}
}

// Handle maps one alert onto at most one exchange order.
// Invalid signals and symbols produce zero orders and an error; a valid
// alert produces exactly one order whose funds equal the configured trade
// size regardless of the alert's price or time fields.
func (s *RelayService) Handle(ctx context.Context, alert domain.AlertEvent) (*domain.ExchangeResponse, error) {
	infra.GlobalMetrics.RecordAlert()

	s.logger.Info("Alert received",
		slog.String("signal", alert.Signal),
		slog.String("symbol", alert.Symbol),
		slog.String("price", alert.Price),
		slog.String("time", alert.Time),
	)

	if s.journal != nil {
		if err := s.journal.RecordAlert(alert); err != nil {
			// Audit only; never blocks the relay.
			s.logger.Warn("Failed to journal alert", slog.Any("error", err))
		}
	}

	order, err := domain.NewOrderRequest(alert, s.tradeSize)
	if err != nil {
		infra.GlobalMetrics.RecordRejected()
		s.logger.Warn("Alert rejected", slog.Any("error", err))
		return nil, err
	}

	start := time.Now()
	resp, err := s.exchange.PlaceMarketOrder(ctx, order)
	if err != nil {
		infra.GlobalMetrics.RecordExchangeError()
		s.logger.Error("Order submission failed", slog.Any("error", err))
		return nil, err
	}
	infra.GlobalMetrics.RecordOrder(time.Since(start).Nanoseconds())

	if !resp.OK() {
		infra.GlobalMetrics.RecordExchangeError()
	}

	if s.journal != nil {
		if err := s.journal.RecordOrder(order, resp); err != nil {
			s.logger.Warn("Failed to journal order", slog.Any("error", err))
		}
	}

	return resp, nil
}
