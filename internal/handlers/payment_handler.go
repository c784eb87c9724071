package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/mercadopago-payment-service/internal/models"
	"github.com/jeffleon2/mercadopago-payment-service/internal/models/dto"
	"github.com/sirupsen/logrus"
)

type PaymentService interface {
	ProcessPayment(ctx context.Context, request *dto.PaymentRequest) (*models.PaymentResult, error)
	FindCustomer(ctx context.Context, email string) (string, bool, error)
}

type PaymentHandler struct {
	Service PaymentService
}

func NewPaymentHandler(s PaymentService) *PaymentHandler {
	return &PaymentHandler{Service: s}
}

// GET /customerFind
func (h *PaymentHandler) FindCustomer(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email query parameter is required"})
		return
	}

	id, found, err := h.Service.FindCustomer(c.Request.Context(), email)
	if err != nil {
		logrus.Errorf("error finding customer: %s", err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("no customer found for email %s", email)})
		return
	}

	c.String(http.StatusOK, id)
}

// POST /create
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var form dto.PaymentForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	form.Sanitize()

	request, err := form.ToRequest()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.Service.ProcessPayment(c.Request.Context(), request)
	if err != nil {
		logrus.Errorf("error processing payment: %s", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
