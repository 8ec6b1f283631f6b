package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"stuff3d_checkout/internal/adapter/cache"
	"stuff3d_checkout/internal/adapter/gateway"
	"stuff3d_checkout/internal/adapter/http/handlers"
	"stuff3d_checkout/internal/adapter/http/routes"
	"stuff3d_checkout/internal/adapter/persistence/repository"
	"stuff3d_checkout/internal/domain/identity"
	"stuff3d_checkout/internal/infrastructure/config"
	"stuff3d_checkout/internal/infrastructure/database"
	"stuff3d_checkout/internal/infrastructure/email"
	"stuff3d_checkout/internal/infrastructure/logger"
	"stuff3d_checkout/internal/infrastructure/metrics"
	"stuff3d_checkout/internal/infrastructure/payments"
	"stuff3d_checkout/internal/usecase"
	"stuff3d_checkout/internal/usecase/checkout"
	"stuff3d_checkout/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

// @title           3D Stuff Checkout API
// @version         1.0
// @description     Catalog, payments (PIX, card, boleto via Mercado Pago) and server-side checkout sessions.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey  AdminToken
// @in                          header
// @name                        Authorization
// @description                 "Bearer <ADMIN_TOKEN>"; only enforced when ADMIN_TOKEN is set.

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl, err := logger.New(cfg.Log.Level, cfg.App.Environment)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, zl); err != nil {
		zl.Fatal("[app] stopped with error", zap.Error(err))
	}
	zl.Info("[app] stopped")
}

func run(ctx context.Context, cfg *config.Config, zl *zap.Logger) error {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	products, paymentRepo, stock, err := buildRepositories(ctx, cfg, zl)
	if err != nil {
		return err
	}

	var installmentCache interfaces.IInstallmentCache
	if cfg.Redis.Addr != "" {
		rdb, err := cache.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, zl)
		if err != nil {
			// installment options are recomputed on every request without it
			zl.Warn("[app] redis unavailable; installment cache disabled", zap.Error(err))
		} else {
			defer func() { _ = rdb.Close() }()
			installmentCache = cache.NewInstallmentRedisCache(rdb, cfg.Redis.InstallmentsTTL, zl)
		}
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(payments.Options{
		AccessToken:         cfg.MercadoPago.AccessToken,
		Mock:                cfg.MercadoPago.Mock,
		MockPixApproveAfter: cfg.MercadoPago.MockPixApproveAfter,
		Logger:              zl,
	})
	if err != nil {
		zl.Warn("[app] Mercado Pago gateway not configured", zap.Error(err))
	} else {
		paymentGateway = mpGateway
	}

	var validatorOpts []identity.Option
	if cfg.Checkout.StrictDocument {
		validatorOpts = append(validatorOpts, identity.WithCheckDigits())
	}
	validator := identity.NewValidator(validatorOpts...)

	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, products, paymentGateway, usecase.PaymentOptions{
		Cache:           installmentCache,
		Observer:        m,
		Validator:       validator,
		Stock:           stock,
		Notifier:        email.NewFromConfig(cfg.Email, cfg.Store.WhatsApp, zl),
		Logger:          zl,
		MaxInstallments: cfg.Checkout.MaxInstallments,
	})
	productUseCase := usecase.NewProductUseCase(products, cfg.Store.WhatsApp, zl)
	adminUseCase := usecase.NewAdminUseCase(products, stock, paymentRepo, nil, zl)

	var gatewayClient interfaces.IGatewayClient
	if cfg.Checkout.GatewayURL != "" {
		settings := gateway.DefaultHTTPClientSettings(cfg.Checkout.GatewayURL)
		if cfg.Checkout.GatewayTimeout > 0 {
			settings.Timeout = cfg.Checkout.GatewayTimeout
		}
		gatewayClient = gateway.NewHTTPClient(settings, nil, zl)
		zl.Info("[app] checkout sessions use remote payment API", zap.String("url", cfg.Checkout.GatewayURL))
	} else {
		gatewayClient = gateway.NewLocalClient(paymentUseCase)
	}

	sessions := checkout.NewSessionRegistry(products, func() *checkout.Orchestrator {
		return checkout.NewOrchestrator(gatewayClient, checkout.Options{
			PollInterval: cfg.Checkout.PollInterval,
			PollTimeout:  cfg.Checkout.PollTimeout,
			Logger:       zl,
			Validator:    validator,
			OnTransition: func(_, to checkout.State) { m.ObserveTransition(string(to)) },
			OnPoll:       m.ObservePoll,
		})
	}, checkout.RegistryOptions{
		Logger:         zl,
		OnSessionCount: m.SetActiveSessions,
	})
	defer sessions.CloseAll()
	go sessions.RunSweeper(ctx, cfg.Checkout.SweepInterval, cfg.Checkout.SessionIdleTimeout)

	router := routes.NewRouter(routes.Handlers{
		Payment:    handlers.NewPaymentHandler(paymentUseCase, zl),
		Product:    handlers.NewProductHandler(productUseCase, zl),
		Checkout:   handlers.NewCheckoutHandler(sessions, zl),
		Admin:      handlers.NewAdminHandler(adminUseCase, zl),
		AdminToken: cfg.Admin.Token,
	}, zl, m, reg)

	return routes.Run(ctx, cfg.HTTP, router, zl)
}

// buildRepositories returns nil payment and stock repositories when DynamoDB
// is off; payments are then tracked only by the provider and stock is not
// enforced.
func buildRepositories(ctx context.Context, cfg *config.Config, zl *zap.Logger) (interfaces.IProductRepository, interfaces.IPaymentRepository, interfaces.IStockRepository, error) {
	if !cfg.DynamoDB.Enabled {
		zl.Info("[app] DynamoDB disabled; using the static catalog without payment records or stock")
		return repository.NewProductStaticRepository(), nil, nil, nil
	}

	ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB, zl)
	if err != nil {
		return nil, nil, nil, err
	}
	paymentRepo := repository.NewPaymentDynamoRepository(ddb, cfg.DynamoDB.PaymentsTable, zl)
	stock := repository.NewStockDynamoRepository(ddb, cfg.DynamoDB.StockTable, zl)

	var products interfaces.IProductRepository = repository.NewProductStaticRepository()
	if cfg.Catalog.Source == config.CatalogSourceDynamoDB {
		products = repository.NewProductDynamoRepository(ddb, cfg.DynamoDB.ProductsTable, zl)
	}
	return products, paymentRepo, stock, nil
}
