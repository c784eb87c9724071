package service

import (
	"context"
	"fmt"

	"github.com/jeffleon2/mercadopago-payment-service/internal/models"
)

// CardTokenizer exchanges raw card data for a single-use processor
// token. Format, Luhn and expiry validation are the processor's job;
// only presence is checked here.
type CardTokenizer struct {
	Gateway Gateway
}

func NewCardTokenizer(gateway Gateway) *CardTokenizer {
	return &CardTokenizer{Gateway: gateway}
}

// Tokenize submits the card once and returns the token id. The card
// struct is not retained and never appears in the returned error; the
// wrapped cause only carries the processor's own response detail.
func (t *CardTokenizer) Tokenize(ctx context.Context, card models.CardDetails) (string, error) {
	if card.Number == "" || card.SecurityCode == "" || card.HolderName == "" {
		return "", &TokenizationError{Err: fmt.Errorf("missing card fields")}
	}

	token, err := t.Gateway.CreateCardToken(ctx, card)
	if err != nil {
		return "", &TokenizationError{Err: err}
	}

	return token.ID, nil
}
