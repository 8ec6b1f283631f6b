package config

import "time"

type Config struct {
	App         AppConfig         `mapstructure:"app"`
	HTTP        HTTPConfig        `mapstructure:"http"`
	Log         LogConfig         `mapstructure:"log"`
	MercadoPago MercadoPagoConfig `mapstructure:"mercadopago"`
	DynamoDB    DynamoDBConfig    `mapstructure:"dynamodb"`
	Catalog     CatalogConfig     `mapstructure:"catalog"`
	Redis       RedisConfig       `mapstructure:"redis"`
	Checkout    CheckoutConfig    `mapstructure:"checkout"`
	Store       StoreConfig       `mapstructure:"store"`
	Email       EmailConfig       `mapstructure:"email"`
	Admin       AdminConfig       `mapstructure:"admin"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
}

type HTTPConfig struct {
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type MercadoPagoConfig struct {
	AccessToken string `mapstructure:"access_token"`
	// Mock answers locally instead of calling Mercado Pago.
	Mock bool `mapstructure:"mock"`
	// MockPixApproveAfter is how long a mock PIX payment stays pending.
	// Zero keeps it pending forever.
	MockPixApproveAfter time.Duration `mapstructure:"mock_pix_approve_after"`
}

type DynamoDBConfig struct {
	Enabled         bool   `mapstructure:"enabled"`
	Region          string `mapstructure:"region"`
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	PaymentsTable   string `mapstructure:"payments_table"`
	ProductsTable   string `mapstructure:"products_table"`
	StockTable      string `mapstructure:"stock_table"`
}

type CatalogConfig struct {
	// Source is "static" or "dynamodb".
	Source string `mapstructure:"source"`
}

type RedisConfig struct {
	Addr            string        `mapstructure:"addr"`
	Password        string        `mapstructure:"password"`
	DB              int           `mapstructure:"db"`
	InstallmentsTTL time.Duration `mapstructure:"installments_ttl"`
}

type CheckoutConfig struct {
	PollInterval       time.Duration `mapstructure:"poll_interval"`
	PollTimeout        time.Duration `mapstructure:"poll_timeout"`
	MaxInstallments    int           `mapstructure:"max_installments"`
	SessionIdleTimeout time.Duration `mapstructure:"session_idle_timeout"`
	SweepInterval      time.Duration `mapstructure:"sweep_interval"`
	// GatewayURL points the checkout sessions at a remote payment API. Empty
	// means the in-process payment use case.
	GatewayURL     string        `mapstructure:"gateway_url"`
	GatewayTimeout time.Duration `mapstructure:"gateway_timeout"`
	StrictDocument bool          `mapstructure:"strict_document"`
}

type StoreConfig struct {
	WhatsApp string `mapstructure:"whatsapp"`
}

type EmailConfig struct {
	// SendGridAPIKey empty means e-mails are logged instead of sent.
	SendGridAPIKey string `mapstructure:"sendgrid_api_key"`
	SenderEmail    string `mapstructure:"sender_email"`
	SenderName     string `mapstructure:"sender_name"`
}

type AdminConfig struct {
	// Token guards /v1/admin. Empty leaves the routes open.
	Token string `mapstructure:"token"`
}

const (
	CatalogSourceStatic   = "static"
	CatalogSourceDynamoDB = "dynamodb"
)
