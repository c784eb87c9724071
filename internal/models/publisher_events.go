package models

import "time"

const (
	PaymentProcessedEventTopic = "payments.processed"
)

type PaymentProcessedEvent struct {
	PaymentID    int64     `json:"payment_id"`
	Status       string    `json:"status"`
	StatusDetail string    `json:"status_detail"`
	Amount       string    `json:"amount"`
	Description  string    `json:"description"`
	CustomerID   string    `json:"customer_id"`
	ProcessedAt  time.Time `json:"processed_at"`
}
