package domain

import (
	"github.com/shopspring/decimal"
)

const (
	SideBuy  = "BUY"
	SideSell = "SELL"

	OrderTypeMarket = "MARKET"
	TimeInForceIOC  = "IOC"
)

// OrderRequest is the one order derived from a valid alert.
// Funds is the quote-currency (USD) notional; the order is always a
// market order with IOC time-in-force, so no price or base quantity exists.
type OrderRequest struct {
	ProductID string
	Side      string
	Funds     decimal.Decimal
}

// ExchangeResponse is the exchange's raw reply, relayed to the webhook
// caller unchanged.
type ExchangeResponse struct {
	StatusCode int
	Body       []byte
}

// OK reports whether the exchange accepted the request.
func (r *ExchangeResponse) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// NewOrderRequest maps an alert onto an order: BUY_SIGNAL opens with a BUY,
// EXIT_SIGNAL closes with a SELL. Funds is taken verbatim from configuration;
// the alert's price and time fields are ignored.
func NewOrderRequest(alert AlertEvent, funds decimal.Decimal) (OrderRequest, error) {
	var side string
	switch alert.Signal {
	case SignalBuy:
		side = SideBuy
	case SignalExit:
		side = SideSell
	default:
		return OrderRequest{}, &UnknownSignalError{Signal: alert.Signal}
	}

	productID, err := TranslateSymbol(alert.Symbol)
	if err != nil {
		return OrderRequest{}, err
	}

	return OrderRequest{
		ProductID: productID,
		Side:      side,
		Funds:     funds,
	}, nil
}
