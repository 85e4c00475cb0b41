package domain

// Signal vocabulary accepted on the webhook. TradingView alerts carrying any
// other value are rejected without touching the exchange.
const (
	SignalBuy  = "BUY_SIGNAL"
	SignalExit = "EXIT_SIGNAL"
)

// AlertEvent is a single TradingView alert as POSTed to /webhook.
// Price and Time are informational: they show up in logs and the journal
// but never influence order placement.
type AlertEvent struct {
	Signal string `json:"signal"`
	Symbol string `json:"symbol"`
	Price  string `json:"price,omitempty"`
	Time   string `json:"time,omitempty"`
}

// ValidSignal reports whether the alert's signal is in the accepted set.
func (a *AlertEvent) ValidSignal() bool {
	return a.Signal == SignalBuy || a.Signal == SignalExit
}
