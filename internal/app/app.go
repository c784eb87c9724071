package app

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/mercadopago-payment-service/config"
	"github.com/jeffleon2/mercadopago-payment-service/internal/gateway"
	handlers "github.com/jeffleon2/mercadopago-payment-service/internal/handlers"
	"github.com/jeffleon2/mercadopago-payment-service/internal/publisher"
	"github.com/jeffleon2/mercadopago-payment-service/internal/service"
	"github.com/sirupsen/logrus"
)

type App struct {
	config *config.Config
	Router *gin.Engine
}

func (a *App) Initialize(cfg *config.Config) {
	a.config = cfg

	gatewayClient := gateway.NewClient(cfg.MercadoPago)
	tokenizer := service.NewCardTokenizer(gatewayClient)
	resolver := service.NewCustomerResolver(gatewayClient)

	var pub service.Publisher
	if cfg.Kafka.Brokers != "" {
		publishTopics := strings.Split(cfg.Kafka.PublishTopics, ",")
		pub = publisher.NewKafkaPublisher(cfg.Kafka.Brokers, publishTopics, cfg.GetRetryConfig())
	} else {
		logrus.Info("no kafka brokers configured, payment events disabled")
	}

	paymentService := service.NewPaymentService(tokenizer, resolver, gatewayClient, pub, cfg.MercadoPago.PaymentMethodID)
	paymentHandler := handlers.NewPaymentHandler(paymentService)

	a.Router = gin.Default()
	a.Router.Use(gin.Recovery())
	a.RegisterRoutes(paymentHandler)
}

func (a *App) Run() {
	err := a.Router.Run(fmt.Sprintf(":%s", a.config.APP.PORT))
	if err != nil {
		panic(err)
	}
}
