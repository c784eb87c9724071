package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/mercadopago-payment-service/internal/handlers"
	"github.com/jeffleon2/mercadopago-payment-service/internal/handlers/mocks"
	"github.com/jeffleon2/mercadopago-payment-service/internal/models"
	"github.com/jeffleon2/mercadopago-payment-service/internal/models/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupRouter(h *handlers.PaymentHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/customerFind", h.FindCustomer)
	router.POST("/create", h.CreatePayment)
	return router
}

func paymentFormValues() url.Values {
	form := url.Values{}
	form.Set("amount", "100.50")
	form.Set("description", "order #1")
	form.Set("cardNumber", "5031433215406351")
	form.Set("expirationMonth", "11")
	form.Set("expirationYear", "2030")
	form.Set("cardholderName", "APRO")
	form.Set("securityCode", "123")
	form.Set("email", "new@example.com")
	return form
}

func postForm(router *gin.Engine, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/create", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestFindCustomer_Found(t *testing.T) {
	mockService := mocks.NewMockPaymentService(t)
	router := setupRouter(handlers.NewPaymentHandler(mockService))

	mockService.EXPECT().
		FindCustomer(mock.Anything, "known@example.com").
		Return("cust_999", true, nil).
		Once()

	req := httptest.NewRequest(http.MethodGet, "/customerFind?email=known%40example.com", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "cust_999", recorder.Body.String())
}

func TestFindCustomer_NotFound(t *testing.T) {
	mockService := mocks.NewMockPaymentService(t)
	router := setupRouter(handlers.NewPaymentHandler(mockService))

	mockService.EXPECT().
		FindCustomer(mock.Anything, "ghost@example.com").
		Return("", false, nil).
		Once()

	req := httptest.NewRequest(http.MethodGet, "/customerFind?email=ghost%40example.com", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "ghost@example.com")
}

func TestFindCustomer_ServiceError(t *testing.T) {
	mockService := mocks.NewMockPaymentService(t)
	router := setupRouter(handlers.NewPaymentHandler(mockService))

	mockService.EXPECT().
		FindCustomer(mock.Anything, "someone@example.com").
		Return("", false, errors.New("processor returned status 500: internal error")).
		Once()

	req := httptest.NewRequest(http.MethodGet, "/customerFind?email=someone%40example.com", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestFindCustomer_MissingEmail(t *testing.T) {
	mockService := mocks.NewMockPaymentService(t)
	router := setupRouter(handlers.NewPaymentHandler(mockService))

	req := httptest.NewRequest(http.MethodGet, "/customerFind", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	mockService.AssertNotCalled(t, "FindCustomer", mock.Anything, mock.Anything)
}

func TestCreatePayment_Success(t *testing.T) {
	mockService := mocks.NewMockPaymentService(t)
	router := setupRouter(handlers.NewPaymentHandler(mockService))

	var captured *dto.PaymentRequest
	mockService.EXPECT().
		ProcessPayment(mock.Anything, mock.AnythingOfType("*dto.PaymentRequest")).
		Run(func(ctx context.Context, request *dto.PaymentRequest) {
			captured = request
		}).
		Return(&models.PaymentResult{
			ID:                12345,
			Status:            models.StatusApproved,
			StatusDetail:      "accredited",
			TransactionAmount: decimal.RequireFromString("100.50"),
			Payer:             models.Payer{ID: "cust_123", Email: "new@example.com"},
		}, nil).
		Once()

	recorder := postForm(router, paymentFormValues())

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"status":"approved"`)
	assert.Contains(t, recorder.Body.String(), "cust_123")

	assert.Equal(t, "new@example.com", captured.Email)
	assert.Equal(t, "order #1", captured.Description)
	assert.Equal(t, "5031433215406351", captured.Card.Number)
	assert.Equal(t, 11, captured.Card.ExpirationMonth)
	assert.True(t, captured.Amount.Equal(decimal.RequireFromString("100.50")))
}

func TestCreatePayment_MissingCardNumber(t *testing.T) {
	mockService := mocks.NewMockPaymentService(t)
	router := setupRouter(handlers.NewPaymentHandler(mockService))

	form := paymentFormValues()
	form.Del("cardNumber")

	recorder := postForm(router, form)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	mockService.AssertNotCalled(t, "ProcessPayment", mock.Anything, mock.Anything)
}

func TestCreatePayment_InvalidAmount(t *testing.T) {
	mockService := mocks.NewMockPaymentService(t)
	router := setupRouter(handlers.NewPaymentHandler(mockService))

	form := paymentFormValues()
	form.Set("amount", "not-a-number")

	recorder := postForm(router, form)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	mockService.AssertNotCalled(t, "ProcessPayment", mock.Anything, mock.Anything)
}

func TestCreatePayment_NonPositiveAmount(t *testing.T) {
	mockService := mocks.NewMockPaymentService(t)
	router := setupRouter(handlers.NewPaymentHandler(mockService))

	form := paymentFormValues()
	form.Set("amount", "-5")

	recorder := postForm(router, form)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "greater than zero")
	mockService.AssertNotCalled(t, "ProcessPayment", mock.Anything, mock.Anything)
}

func TestCreatePayment_ServiceError(t *testing.T) {
	mockService := mocks.NewMockPaymentService(t)
	router := setupRouter(handlers.NewPaymentHandler(mockService))

	mockService.EXPECT().
		ProcessPayment(mock.Anything, mock.AnythingOfType("*dto.PaymentRequest")).
		Return(nil, errors.New("tokenizing card: processor returned status 400: invalid card")).
		Once()

	recorder := postForm(router, paymentFormValues())

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "invalid card")
}
