package domain

import (
	"time"
)

// AlertRecord is the journal row for a received alert.
type AlertRecord struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Signal     string    `json:"signal" gorm:"index"`
	Symbol     string    `json:"symbol"`
	Price      string    `json:"price"`
	AlertTime  string    `json:"alert_time"` // raw "time" field from the alert
	ReceivedAt time.Time `json:"received_at"`
}

// OrderRecord is the journal row for an order submitted to the exchange.
type OrderRecord struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ProductID   string    `json:"product_id" gorm:"index"`
	Side        string    `json:"side"`
	Funds       string    `json:"funds"`
	StatusCode  int       `json:"status_code"`
	Response    string    `json:"response"` // raw exchange body
	SubmittedAt time.Time `json:"submitted_at"`
}
