package service

import (
	"context"
	"time"

	"github.com/jeffleon2/mercadopago-payment-service/internal/models"
	"github.com/jeffleon2/mercadopago-payment-service/internal/models/dto"
	"github.com/sirupsen/logrus"
)

const fixedInstallments = 1

// Gateway defines the processor operations the services depend on.
type Gateway interface {
	SearchCustomers(ctx context.Context, email string) ([]models.Customer, error)
	CreateCustomer(ctx context.Context, email string) (*models.Customer, error)
	CreateCardToken(ctx context.Context, card models.CardDetails) (*models.CardToken, error)
	CreatePayment(ctx context.Context, request models.PaymentCreateRequest) (*models.PaymentResult, error)
}

// Tokenizer defines the card tokenization step the orchestrator
// depends on.
type Tokenizer interface {
	Tokenize(ctx context.Context, card models.CardDetails) (string, error)
}

// Resolver defines the customer resolution steps the orchestrator
// depends on.
type Resolver interface {
	Find(ctx context.Context, email string) (string, bool, error)
	Resolve(ctx context.Context, email string) (string, error)
}

// Publisher defines the interface for publishing events to Kafka topics.
type Publisher interface {
	Publish(ctx context.Context, topic string, message interface{}) error
}

// PaymentService orchestrates a charge end-to-end: tokenize the card,
// resolve the paying customer, submit the payment. The three steps are
// strictly ordered since each consumes the previous step's output, and
// none is retried.
type PaymentService struct {
	Tokenizer       Tokenizer
	Resolver        Resolver
	Gateway         Gateway
	Publisher       Publisher
	PaymentMethodID string
}

// NewPaymentService creates a new PaymentService. Publisher may be nil
// when no broker is configured; processed-payment events are then
// skipped.
func NewPaymentService(tokenizer Tokenizer, resolver Resolver, gateway Gateway, publisher Publisher, paymentMethodID string) *PaymentService {
	return &PaymentService{
		Tokenizer:       tokenizer,
		Resolver:        resolver,
		Gateway:         gateway,
		Publisher:       publisher,
		PaymentMethodID: paymentMethodID,
	}
}

// ProcessPayment runs the charge workflow.
//
// Order is fixed: tokenize, resolve, submit. A failure aborts the
// workflow at that step — an already-issued token is simply discarded
// (tokens are single-use and short-lived), and a customer created
// before a failed submission is left in place since it stays reusable
// for future payments. The processor's verdict is returned verbatim;
// rejected or pending payments are results, not errors.
func (s *PaymentService) ProcessPayment(ctx context.Context, request *dto.PaymentRequest) (*models.PaymentResult, error) {
	tokenID, err := s.Tokenizer.Tokenize(ctx, request.Card)
	if err != nil {
		return nil, err
	}

	customerID, err := s.Resolver.Resolve(ctx, request.Email)
	if err != nil {
		return nil, err
	}

	result, err := s.Gateway.CreatePayment(ctx, models.PaymentCreateRequest{
		TransactionAmount: request.Amount,
		Token:             tokenID,
		Description:       request.Description,
		Installments:      fixedInstallments,
		PaymentMethodID:   s.PaymentMethodID,
		Payer: models.Payer{
			ID:    customerID,
			Email: request.Email,
		},
	})
	if err != nil {
		return nil, err
	}

	s.publishProcessed(ctx, customerID, result)

	return result, nil
}

// FindCustomer exposes the resolver's lookup so the handler depends on
// a single service interface.
func (s *PaymentService) FindCustomer(ctx context.Context, email string) (string, bool, error) {
	return s.Resolver.Find(ctx, email)
}

// publishProcessed emits the processed-payment event. Publishing is
// best-effort: the charge already has a processor verdict, so a broker
// failure is logged and swallowed.
func (s *PaymentService) publishProcessed(ctx context.Context, customerID string, result *models.PaymentResult) {
	if s.Publisher == nil {
		return
	}

	event := models.PaymentProcessedEvent{
		PaymentID:    result.ID,
		Status:       string(result.Status),
		StatusDetail: result.StatusDetail,
		Amount:       result.TransactionAmount.String(),
		Description:  result.Description,
		CustomerID:   customerID,
		ProcessedAt:  time.Now(),
	}

	if err := s.Publisher.Publish(ctx, models.PaymentProcessedEventTopic, event); err != nil {
		logrus.Errorf("error publishing processed payment %d: %s", result.ID, err.Error())
	}
}
