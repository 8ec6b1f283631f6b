package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Load reads config.yaml (optional) and the environment. Env keys are the
// config keys upper-cased with "." replaced by "_" (CHECKOUT_POLL_INTERVAL);
// the historical variable names of the payment service are bound too.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("http.port", "HTTP_PORT", "PORT")
	_ = v.BindEnv("log.level", "LOG_LEVEL")
	_ = v.BindEnv("app.environment", "APP_ENVIRONMENT", "ENVIRONMENT")
	_ = v.BindEnv("mercadopago.access_token", "MERCADOPAGO_ACCESS_TOKEN")
	_ = v.BindEnv("mercadopago.mock", "MERCADOPAGO_MOCK", "PAYMENT_GATEWAY_MOCK")
	_ = v.BindEnv("dynamodb.region", "DYNAMODB_REGION", "AWS_REGION")
	_ = v.BindEnv("dynamodb.endpoint", "DYNAMODB_ENDPOINT")
	_ = v.BindEnv("dynamodb.access_key_id", "DYNAMODB_ACCESS_KEY_ID", "AWS_ACCESS_KEY_ID")
	_ = v.BindEnv("dynamodb.secret_access_key", "DYNAMODB_SECRET_ACCESS_KEY", "AWS_SECRET_ACCESS_KEY")
	_ = v.BindEnv("dynamodb.payments_table", "DYNAMODB_PAYMENTS_TABLE", "PAYMENTS_TABLE")
	_ = v.BindEnv("dynamodb.products_table", "DYNAMODB_PRODUCTS_TABLE", "PRODUCTS_TABLE")
	_ = v.BindEnv("dynamodb.stock_table", "DYNAMODB_STOCK_TABLE", "STOCK_TABLE")
	_ = v.BindEnv("redis.addr", "REDIS_ADDR", "REDIS_URL")
	_ = v.BindEnv("store.whatsapp", "STORE_WHATSAPP", "WHATSAPP_NUMBER")
	_ = v.BindEnv("email.sendgrid_api_key", "EMAIL_SENDGRID_API_KEY", "SENDGRID_API_KEY")
	_ = v.BindEnv("email.sender_email", "EMAIL_SENDER_EMAIL", "SENDER_EMAIL")
	_ = v.BindEnv("admin.token", "ADMIN_TOKEN")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "stuff3d-checkout")
	v.SetDefault("app.environment", "development")

	v.SetDefault("http.port", 8080)
	v.SetDefault("http.read_timeout", 15*time.Second)
	v.SetDefault("http.write_timeout", 30*time.Second)
	v.SetDefault("http.shutdown_timeout", 10*time.Second)

	v.SetDefault("log.level", "info")

	v.SetDefault("mercadopago.access_token", "")
	v.SetDefault("mercadopago.mock", false)
	v.SetDefault("mercadopago.mock_pix_approve_after", 15*time.Second)

	v.SetDefault("dynamodb.enabled", false)
	v.SetDefault("dynamodb.region", "us-east-1")
	v.SetDefault("dynamodb.endpoint", "")
	v.SetDefault("dynamodb.access_key_id", "local")
	v.SetDefault("dynamodb.secret_access_key", "local")
	v.SetDefault("dynamodb.payments_table", "payments")
	v.SetDefault("dynamodb.products_table", "products")
	v.SetDefault("dynamodb.stock_table", "stock")

	v.SetDefault("catalog.source", CatalogSourceStatic)

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.installments_ttl", 10*time.Minute)

	v.SetDefault("checkout.poll_interval", 3*time.Second)
	v.SetDefault("checkout.poll_timeout", 10*time.Minute)
	v.SetDefault("checkout.max_installments", 12)
	v.SetDefault("checkout.session_idle_timeout", 30*time.Minute)
	v.SetDefault("checkout.sweep_interval", time.Minute)
	v.SetDefault("checkout.gateway_url", "")
	v.SetDefault("checkout.gateway_timeout", 15*time.Second)
	v.SetDefault("checkout.strict_document", false)

	v.SetDefault("store.whatsapp", "5519971636969")

	v.SetDefault("email.sendgrid_api_key", "")
	v.SetDefault("email.sender_email", "noreply@3dstuff.com.br")
	v.SetDefault("email.sender_name", "3D Stuff")

	v.SetDefault("admin.token", "")
}

var (
	ErrInvalidCatalogSource = errors.New("catalog.source must be static or dynamodb")
	ErrCatalogNeedsDynamoDB = errors.New("catalog.source=dynamodb requires dynamodb.enabled")
	ErrInvalidPolling       = errors.New("checkout.poll_interval and checkout.poll_timeout must be positive")
)

func (c *Config) Validate() error {
	switch c.Catalog.Source {
	case CatalogSourceStatic:
	case CatalogSourceDynamoDB:
		if !c.DynamoDB.Enabled {
			return ErrCatalogNeedsDynamoDB
		}
	default:
		return fmt.Errorf("%w: %q", ErrInvalidCatalogSource, c.Catalog.Source)
	}
	if c.Checkout.PollInterval <= 0 || c.Checkout.PollTimeout <= 0 {
		return ErrInvalidPolling
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.App.Environment, "production")
}
