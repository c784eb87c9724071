package app

import handlers "github.com/jeffleon2/mercadopago-payment-service/internal/handlers"

func (a *App) RegisterRoutes(h *handlers.PaymentHandler) {
	a.Router.GET("/customerFind", h.FindCustomer)
	a.Router.POST("/create", h.CreatePayment)
}
