package storage

import (
	"net/http"
	"path/filepath"
	"testing"

	"relay_go/internal/domain"

	"github.com/shopspring/decimal"
)

func newTestJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := NewJournal(filepath.Join(t.TempDir(), "relay.db"))
	if err != nil {
		t.Fatalf("NewJournal failed: %v", err)
	}
	return j
}

func TestJournal_RecordAlert(t *testing.T) {
	j := newTestJournal(t)

	alert := domain.AlertEvent{
		Signal: domain.SignalBuy,
		Symbol: "BTCUSD",
		Price:  "50000",
		Time:   "2025-11-26T15:30:00Z",
	}
	if err := j.RecordAlert(alert); err != nil {
		t.Fatalf("RecordAlert failed: %v", err)
	}

	var records []domain.AlertRecord
	if err := j.db.Find(&records).Error; err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("Expected 1 alert record, got %d", len(records))
	}

	rec := records[0]
	if rec.Signal != domain.SignalBuy || rec.Symbol != "BTCUSD" {
		t.Errorf("Record mismatch: %+v", rec)
	}
	if rec.Price != "50000" || rec.AlertTime != "2025-11-26T15:30:00Z" {
		t.Errorf("Informational fields not recorded: %+v", rec)
	}
	if rec.ReceivedAt.IsZero() {
		t.Error("ReceivedAt should be set")
	}
}

func TestJournal_RecordOrder(t *testing.T) {
	j := newTestJournal(t)

	order := domain.OrderRequest{
		ProductID: "BTC-USD",
		Side:      domain.SideBuy,
		Funds:     decimal.NewFromInt(1000),
	}
	resp := &domain.ExchangeResponse{
		StatusCode: http.StatusOK,
		Body:       []byte(`{"success":true}`),
	}
	if err := j.RecordOrder(order, resp); err != nil {
		t.Fatalf("RecordOrder failed: %v", err)
	}

	var records []domain.OrderRecord
	if err := j.db.Find(&records).Error; err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("Expected 1 order record, got %d", len(records))
	}

	rec := records[0]
	if rec.ProductID != "BTC-USD" || rec.Side != domain.SideBuy || rec.Funds != "1000" {
		t.Errorf("Record mismatch: %+v", rec)
	}
	if rec.StatusCode != http.StatusOK || rec.Response != `{"success":true}` {
		t.Errorf("Exchange reply not recorded: %+v", rec)
	}
}

func TestJournal_RecordOrder_NilResponse(t *testing.T) {
	j := newTestJournal(t)

	order := domain.OrderRequest{ProductID: "BTC-USD", Side: domain.SideSell, Funds: decimal.NewFromInt(1000)}
	if err := j.RecordOrder(order, nil); err != nil {
		t.Fatalf("RecordOrder with nil response failed: %v", err)
	}

	var count int64
	j.db.Model(&domain.OrderRecord{}).Count(&count)
	if count != 1 {
		t.Errorf("Expected 1 order record, got %d", count)
	}
}
