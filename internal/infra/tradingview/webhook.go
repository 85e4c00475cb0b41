package tradingview

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"relay_go/internal/domain"
)

// Relay is the handler's view of the relay service.
type Relay interface {
	Handle(ctx context.Context, alert domain.AlertEvent) (*domain.ExchangeResponse, error)
}

// WebhookHandler handles TradingView alert webhooks.
type WebhookHandler struct {
	relay  Relay
	logger *slog.Logger
}

// NewWebhookHandler creates a new WebhookHandler
func NewWebhookHandler(relay Relay) *WebhookHandler {
	return &WebhookHandler{
		relay:  relay,
		logger: slog.Default().With("module", "tradingview_webhook"),
	}
}

// HandleWebhook accepts the alert POST. TradingView sends JSON with at least:
//
//	{"signal": "BUY_SIGNAL", "symbol": "COINBASE:SOLUSD", "price": "123.45", "time": "..."}
//
// On success the exchange's status and body are relayed to the caller
// unchanged. Malformed or unknown-signal input gets a 400-class JSON error;
// a local signing/transport failure gets a 502.
func (h *WebhookHandler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	var alert domain.AlertEvent
	if err := json.NewDecoder(r.Body).Decode(&alert); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	if alert.Signal == "" || alert.Symbol == "" {
		writeError(w, http.StatusBadRequest, "missing signal or symbol")
		return
	}

	resp, err := h.relay.Handle(r.Context(), alert)
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}

	// Passthrough: the exchange's reply, verbatim.
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(resp.StatusCode)
	w.Write(resp.Body)
}

func statusForError(err error) int {
	switch {
	case domain.IsBadRequest(err):
		return http.StatusBadRequest
	case domain.IsExchange(err):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// writeError sends a JSON-formatted error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
