package domain

import "context"

// Exchange places orders on the target exchange.
type Exchange interface {
	PlaceMarketOrder(ctx context.Context, order OrderRequest) (*ExchangeResponse, error)
}

// AlertJournal records received alerts and submitted orders for audit.
// Implementations are write-only: nothing in the relay reads them back.
type AlertJournal interface {
	RecordAlert(alert AlertEvent) error
	RecordOrder(order OrderRequest, resp *ExchangeResponse) error
}
