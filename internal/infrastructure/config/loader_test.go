package config

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(viper.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTP.Port != 8080 {
		t.Fatalf("expected port 8080, got %d", cfg.HTTP.Port)
	}
	if cfg.Checkout.PollInterval != 3*time.Second || cfg.Checkout.PollTimeout != 10*time.Minute {
		t.Fatalf("unexpected polling defaults: %+v", cfg.Checkout)
	}
	if cfg.Checkout.MaxInstallments != 12 {
		t.Fatalf("expected 12 installments, got %d", cfg.Checkout.MaxInstallments)
	}
	if cfg.Catalog.Source != CatalogSourceStatic || cfg.DynamoDB.Enabled {
		t.Fatalf("unexpected storage defaults: catalog=%s dynamodb=%v", cfg.Catalog.Source, cfg.DynamoDB.Enabled)
	}
	if cfg.DynamoDB.StockTable != "stock" {
		t.Fatalf("expected stock table, got %q", cfg.DynamoDB.StockTable)
	}
	if cfg.Email.SendGridAPIKey != "" || cfg.Email.SenderEmail != "noreply@3dstuff.com.br" {
		t.Fatalf("unexpected email defaults: %+v", cfg.Email)
	}
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
	t.Setenv("MERCADOPAGO_ACCESS_TOKEN", "TEST-123")
	t.Setenv("CHECKOUT_POLL_INTERVAL", "5s")
	t.Setenv("PORT", "9090")
	t.Setenv("PAYMENTS_TABLE", "payments-dev")
	t.Setenv("STOCK_TABLE", "stock-dev")
	t.Setenv("SENDGRID_API_KEY", "SG.key")
	t.Setenv("SENDER_EMAIL", "loja@example.com")
	t.Setenv("ADMIN_TOKEN", "s3cret")

	cfg, err := load(viper.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.MercadoPago.Mock || cfg.MercadoPago.AccessToken != "TEST-123" {
		t.Fatalf("unexpected mercadopago config: %+v", cfg.MercadoPago)
	}
	if cfg.Checkout.PollInterval != 5*time.Second {
		t.Fatalf("expected 5s poll interval, got %s", cfg.Checkout.PollInterval)
	}
	if cfg.HTTP.Port != 9090 {
		t.Fatalf("expected port 9090, got %d", cfg.HTTP.Port)
	}
	if cfg.DynamoDB.PaymentsTable != "payments-dev" || cfg.DynamoDB.StockTable != "stock-dev" {
		t.Fatalf("unexpected tables: %+v", cfg.DynamoDB)
	}
	if cfg.Email.SendGridAPIKey != "SG.key" || cfg.Email.SenderEmail != "loja@example.com" || cfg.Admin.Token != "s3cret" {
		t.Fatalf("unexpected email/admin config: %+v %+v", cfg.Email, cfg.Admin)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	v := viper.New()
	v.SetConfigType("yaml")
	yaml := `
catalog:
  source: dynamodb
dynamodb:
  enabled: true
  endpoint: http://dynamodb:8000
checkout:
  max_installments: 6
`
	if err := v.ReadConfig(strings.NewReader(yaml)); err != nil {
		t.Fatalf("read config: %v", err)
	}

	cfg, err := load(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Catalog.Source != CatalogSourceDynamoDB || cfg.DynamoDB.Endpoint != "http://dynamodb:8000" || cfg.Checkout.MaxInstallments != 6 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestConfig_Validate(t *testing.T) {
	base := func() Config {
		return Config{
			Catalog:  CatalogConfig{Source: CatalogSourceStatic},
			Checkout: CheckoutConfig{PollInterval: time.Second, PollTimeout: time.Minute},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "unknown catalog", mutate: func(c *Config) { c.Catalog.Source = "s3" }, wantErr: ErrInvalidCatalogSource},
		{name: "dynamodb catalog without dynamodb", mutate: func(c *Config) { c.Catalog.Source = CatalogSourceDynamoDB }, wantErr: ErrCatalogNeedsDynamoDB},
		{name: "zero poll interval", mutate: func(c *Config) { c.Checkout.PollInterval = 0 }, wantErr: ErrInvalidPolling},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
