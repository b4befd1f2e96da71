// Package config loads process configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

// Telemetry is shared by every process.
type Telemetry struct {
	ServiceName string `envconfig:"OTEL_SERVICE_NAME"`
	Enabled     bool   `envconfig:"OTEL_ENABLED" default:"true"`
	Endpoint    string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT" default:"localhost:4317"`
	Environment string `envconfig:"OTEL_RESOURCE_ATTRIBUTES_ENV" default:"local"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
}

// OrderService configures cmd/order-service.
type OrderService struct {
	Port         string `envconfig:"PORT" default:"9090"`
	DatabasePath string `envconfig:"DATABASE_PATH" default:"./data/orders.db"`
	RedisAddr    string `envconfig:"REDIS_ADDR"`

	KafkaBrokers []string `envconfig:"KAFKA_BROKERS"`
	EventsTopic  string   `envconfig:"ORDER_EVENTS_TOPIC" default:"orders.events"`

	TaxRate     string `envconfig:"ORDER_TAX_RATE" default:"0.08"`
	ShippingFee string `envconfig:"ORDER_SHIPPING_FEE" default:"9.99"`

	IdempotencyTTL time.Duration `envconfig:"IDEMPOTENCY_TTL" default:"24h"`

	OutboxPollInterval time.Duration `envconfig:"OUTBOX_POLL_INTERVAL" default:"2s"`
	OutboxBatchSize    int           `envconfig:"OUTBOX_BATCH_SIZE" default:"50"`
	OutboxMaxAttempts  int           `envconfig:"OUTBOX_MAX_ATTEMPTS" default:"10"`

	Telemetry Telemetry `ignored:"true"`
}

// Rates parses the configured tax rate and flat shipping fee.
func (c OrderService) Rates() (taxRate, shippingFee decimal.Decimal, err error) {
	taxRate, err = decimal.NewFromString(c.TaxRate)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("config: ORDER_TAX_RATE %q: %w", c.TaxRate, err)
	}
	if taxRate.IsNegative() {
		return decimal.Zero, decimal.Zero, fmt.Errorf("config: ORDER_TAX_RATE must not be negative")
	}

	shippingFee, err = decimal.NewFromString(c.ShippingFee)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("config: ORDER_SHIPPING_FEE %q: %w", c.ShippingFee, err)
	}
	if shippingFee.IsNegative() {
		return decimal.Zero, decimal.Zero, fmt.Errorf("config: ORDER_SHIPPING_FEE must not be negative")
	}
	return taxRate, shippingFee, nil
}

// Gateway configures cmd/api-gateway.
type Gateway struct {
	HTTPAddr         string `envconfig:"HTTP_ADDR" default:":8080"`
	OrderServiceAddr string `envconfig:"ORDER_SERVICE_ADDR" default:":9090"`

	// Headers written by the identity-aware proxy in front of the gateway
	// once it has verified the caller's token.
	SubjectHeader string `envconfig:"IDENTITY_SUBJECT_HEADER" default:"X-Auth-Subject"`
	RolesHeader   string `envconfig:"IDENTITY_ROLES_HEADER" default:"X-Auth-Roles"`

	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT" default:"10s"`

	Telemetry Telemetry `ignored:"true"`
}

// LoadOrderService reads OrderService from the environment.
func LoadOrderService() (OrderService, error) {
	var c OrderService
	if err := envconfig.Process("", &c); err != nil {
		return c, fmt.Errorf("config: order-service: %w", err)
	}
	t, err := loadTelemetry("order-service")
	if err != nil {
		return c, err
	}
	c.Telemetry = t
	if _, _, err := c.Rates(); err != nil {
		return c, err
	}
	return c, nil
}

// LoadGateway reads Gateway from the environment.
func LoadGateway() (Gateway, error) {
	var c Gateway
	if err := envconfig.Process("", &c); err != nil {
		return c, fmt.Errorf("config: api-gateway: %w", err)
	}
	t, err := loadTelemetry("api-gateway")
	if err != nil {
		return c, err
	}
	c.Telemetry = t
	return c, nil
}

func loadTelemetry(service string) (Telemetry, error) {
	var t Telemetry
	if err := envconfig.Process("", &t); err != nil {
		return t, fmt.Errorf("config: telemetry: %w", err)
	}
	if t.ServiceName == "" {
		t.ServiceName = service
	}
	return t, nil
}
