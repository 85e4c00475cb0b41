package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"relay_go/internal/domain"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Journal is an append-only audit log of alerts and orders.
// Write-only by design: the relay never reads it back, so enabling or
// disabling it cannot change relay behavior.
type Journal struct {
	db *gorm.DB
}

// NewJournal creates a new SQLite journal at the given path.
func NewJournal(path string) (*Journal, error) {
	// Ensure directory exists
	dbDir := filepath.Dir(path)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create journal directory: %w", err)
	}

	// Connect to SQLite (Pure Go)
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open journal database: %w", err)
	}

	// Auto Migration
	if err := db.AutoMigrate(&domain.AlertRecord{}, &domain.OrderRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate journal database: %w", err)
	}

	return &Journal{db: db}, nil
}

// RecordAlert appends a received alert to the journal.
func (j *Journal) RecordAlert(alert domain.AlertEvent) error {
	rec := domain.AlertRecord{
		Signal:     alert.Signal,
		Symbol:     alert.Symbol,
		Price:      alert.Price,
		AlertTime:  alert.Time,
		ReceivedAt: time.Now(),
	}
	return j.db.Create(&rec).Error
}

// RecordOrder appends a submitted order and the exchange's reply.
func (j *Journal) RecordOrder(order domain.OrderRequest, resp *domain.ExchangeResponse) error {
	rec := domain.OrderRecord{
		ProductID:   order.ProductID,
		Side:        order.Side,
		Funds:       order.Funds.String(),
		SubmittedAt: time.Now(),
	}
	if resp != nil {
		rec.StatusCode = resp.StatusCode
		rec.Response = string(resp.Body)
	}
	return j.db.Create(&rec).Error
}
