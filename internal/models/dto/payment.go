package dto

import (
	"fmt"
	"strings"

	"github.com/jeffleon2/mercadopago-payment-service/internal/models"
	"github.com/shopspring/decimal"
)

// PaymentForm is the inbound shape of POST /create.
type PaymentForm struct {
	Amount          string `form:"amount" binding:"required"`
	Description     string `form:"description"`
	CardNumber      string `form:"cardNumber" binding:"required"`
	ExpirationMonth int    `form:"expirationMonth" binding:"required"`
	ExpirationYear  int    `form:"expirationYear" binding:"required"`
	CardholderName  string `form:"cardholderName" binding:"required"`
	SecurityCode    string `form:"securityCode" binding:"required"`
	Email           string `form:"email" binding:"required,email"`
}

// PaymentRequest is what the orchestrator consumes: the validated,
// typed version of the form.
type PaymentRequest struct {
	Amount      decimal.Decimal
	Description string
	Card        models.CardDetails
	Email       string
}

func (p *PaymentForm) Sanitize() {
	p.Amount = strings.TrimSpace(p.Amount)
	p.Description = strings.TrimSpace(p.Description)
	p.CardNumber = strings.ReplaceAll(strings.TrimSpace(p.CardNumber), " ", "")
	p.CardholderName = strings.TrimSpace(p.CardholderName)
	p.SecurityCode = strings.TrimSpace(p.SecurityCode)
	p.Email = strings.TrimSpace(strings.ToLower(p.Email))
}

// ToRequest parses the amount and rejects non-positive values.
func (p *PaymentForm) ToRequest() (*PaymentRequest, error) {
	amount, err := decimal.NewFromString(p.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q: %w", p.Amount, err)
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("amount must be greater than zero")
	}

	return &PaymentRequest{
		Amount:      amount,
		Description: p.Description,
		Card: models.CardDetails{
			Number:          p.CardNumber,
			ExpirationMonth: p.ExpirationMonth,
			ExpirationYear:  p.ExpirationYear,
			HolderName:      p.CardholderName,
			SecurityCode:    p.SecurityCode,
		},
		Email: p.Email,
	}, nil
}
