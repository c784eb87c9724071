package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/jeffleon2/mercadopago-payment-service/config"
	"github.com/jeffleon2/mercadopago-payment-service/internal/models"
)

const (
	customersSearchPath = "/v1/customers/search"
	customersPath       = "/v1/customers"
	cardTokensPath      = "/v1/card_tokens"
	paymentsPath        = "/v1/payments"
)

// Client is a thin authenticated client for the MercadoPago REST API.
// The embedded http.Client is shared and safe for concurrent use; the
// access token is set once at construction and never logged.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
}

func NewClient(cfg config.MercadoPago) *Client {
	return &Client{
		baseURL:     cfg.BaseURL,
		accessToken: cfg.AccessToken,
		httpClient:  &http.Client{Timeout: cfg.HTTPTimeout},
	}
}

// SearchCustomers queries the processor for customers with the exact
// email. An empty slice is a valid result, not an error.
func (c *Client) SearchCustomers(ctx context.Context, email string) ([]models.Customer, error) {
	query := url.Values{"email": []string{email}}

	var result models.CustomerSearchResult
	if err := c.get(ctx, customersSearchPath, query, &result); err != nil {
		return nil, err
	}

	return result.Results, nil
}

// CreateCustomer registers a new customer for the email and returns
// the processor-assigned record.
func (c *Client) CreateCustomer(ctx context.Context, email string) (*models.Customer, error) {
	payload := map[string]string{"email": email}

	var customer models.Customer
	if err := c.post(ctx, customersPath, payload, &customer); err != nil {
		return nil, err
	}
	if customer.ID == "" {
		return nil, fmt.Errorf("customer response missing id")
	}

	return &customer, nil
}

// CreateCardToken exchanges raw card data for a single-use token. The
// card payload is serialized for this one request and nothing from it
// is carried into the returned value or any error.
func (c *Client) CreateCardToken(ctx context.Context, card models.CardDetails) (*models.CardToken, error) {
	payload := cardTokenPayload{
		CardNumber:      card.Number,
		ExpirationMonth: card.ExpirationMonth,
		ExpirationYear:  card.ExpirationYear,
		SecurityCode:    card.SecurityCode,
	}
	payload.Cardholder.Name = card.HolderName

	var token models.CardToken
	if err := c.post(ctx, cardTokensPath, payload, &token); err != nil {
		return nil, err
	}
	if token.ID == "" {
		return nil, fmt.Errorf("card token response missing id")
	}

	return &token, nil
}

// CreatePayment submits a charge. Each submission carries a fresh
// idempotency key; the service never resubmits, so keys are never
// reused.
func (c *Client) CreatePayment(ctx context.Context, request models.PaymentCreateRequest) (*models.PaymentResult, error) {
	var result models.PaymentResult
	headers := map[string]string{"X-Idempotency-Key": uuid.New().String()}
	if err := c.postWithHeaders(ctx, paymentsPath, request, &result, headers); err != nil {
		return nil, err
	}
	if result.ID == 0 {
		return nil, fmt.Errorf("payment response missing id")
	}

	return &result, nil
}

type cardTokenPayload struct {
	CardNumber      string `json:"card_number"`
	ExpirationMonth int    `json:"expiration_month"`
	ExpirationYear  int    `json:"expiration_year"`
	Cardholder      struct {
		Name string `json:"name"`
	} `json:"cardholder"`
	SecurityCode string `json:"security_code"`
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("building request for %s: %w", path, err)
	}

	return c.do(req, path, out)
}

func (c *Client) post(ctx context.Context, path string, payload interface{}, out interface{}) error {
	return c.postWithHeaders(ctx, path, payload, out, nil)
}

func (c *Client) postWithHeaders(ctx context.Context, path string, payload interface{}, out interface{}, headers map[string]string) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling request for %s: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building request for %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return c.do(req, path, out)
}

func (c *Client) do(req *http.Request, path string, out interface{}) error {
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Op: req.Method + " " + path, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Op: req.Method + " " + path, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &UpstreamError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decoding response from %s: %w", path, err)
	}

	return nil
}
