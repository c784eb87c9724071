package models

import (
	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	StatusApproved  PaymentStatus = "approved"
	StatusPending   PaymentStatus = "pending"
	StatusInProcess PaymentStatus = "in_process"
	StatusRejected  PaymentStatus = "rejected"
	StatusCancelled PaymentStatus = "cancelled"
)

func (s PaymentStatus) IsValid() bool {
	switch s {
	case StatusApproved, StatusPending, StatusInProcess, StatusRejected, StatusCancelled:
		return true
	default:
		return false
	}
}

// CardDetails carries the raw card data collected from the caller.
// It only exists between request binding and tokenization; it is never
// persisted, logged, or embedded in an error.
type CardDetails struct {
	Number          string
	ExpirationMonth int
	ExpirationYear  int
	HolderName      string
	SecurityCode    string
}

// CardToken is the processor's single-use stand-in for raw card data.
type CardToken struct {
	ID string `json:"id"`
}

type Payer struct {
	ID    string `json:"id,omitempty"`
	Email string `json:"email"`
}

// PaymentCreateRequest is the wire payload for the processor's payment
// endpoint. Installments is always 1 for this service.
type PaymentCreateRequest struct {
	TransactionAmount decimal.Decimal `json:"transaction_amount"`
	Token             string          `json:"token"`
	Description       string          `json:"description"`
	Installments      int             `json:"installments"`
	PaymentMethodID   string          `json:"payment_method_id"`
	Payer             Payer           `json:"payer"`
}

// PaymentResult is the processor's verdict on a charge. Rejected and
// pending are normal outcomes, not errors.
type PaymentResult struct {
	ID                int64           `json:"id"`
	Status            PaymentStatus   `json:"status"`
	StatusDetail      string          `json:"status_detail"`
	TransactionAmount decimal.Decimal `json:"transaction_amount"`
	Description       string          `json:"description,omitempty"`
	PaymentMethodID   string          `json:"payment_method_id,omitempty"`
	Payer             Payer           `json:"payer"`
}
