package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func New() (*Config, error) {
	var Config Config
	err := godotenv.Load(".env")
	if err != nil {
		logrus.Error("Error can't get the environment variables by file")
	}
	if err := env.Parse(&Config); err != nil {
		return nil, fmt.Errorf("error parsing environment: %w", err)
	}
	if Config.MercadoPago.AccessToken == "" {
		return nil, fmt.Errorf("MP_ACCESS_TOKEN is required")
	}
	return &Config, nil
}

type Config struct {
	APP
	MercadoPago
	Kafka
}

type APP struct {
	PORT string `env:"APP_PORT" envDefault:"8080"`
}

type MercadoPago struct {
	AccessToken     string        `env:"MP_ACCESS_TOKEN"`
	BaseURL         string        `env:"MP_BASE_URL" envDefault:"https://api.mercadopago.com"`
	PaymentMethodID string        `env:"MP_PAYMENT_METHOD_ID" envDefault:"visa"`
	HTTPTimeout     time.Duration `env:"MP_HTTP_TIMEOUT" envDefault:"30s"`
}

type Kafka struct {
	Brokers       string `env:"KAFKA_BROKERS"`
	PublishTopics string `env:"KAFKA_PUBLISH_TOPICS" envDefault:"payments.processed"`

	RetryMaxAttempts int           `env:"KAFKA_RETRY_MAX_ATTEMPTS" envDefault:"5"`
	RetryBaseDelay   time.Duration `env:"KAFKA_RETRY_BASE_DELAY" envDefault:"100ms"`
	RetryMaxDelay    time.Duration `env:"KAFKA_RETRY_MAX_DELAY" envDefault:"10s"`
	RetryJitter      bool          `env:"KAFKA_RETRY_JITTER" envDefault:"true"`
}

type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Jitter      bool
}

func (k Kafka) GetRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: k.RetryMaxAttempts,
		BaseDelay:   k.RetryBaseDelay,
		MaxDelay:    k.RetryMaxDelay,
		Jitter:      k.RetryJitter,
	}
}
