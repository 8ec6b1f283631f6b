package routes

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	_ "stuff3d_checkout/docs" // swagger spec
	"stuff3d_checkout/internal/adapter/http/handlers"
	"stuff3d_checkout/internal/infrastructure/config"
	"stuff3d_checkout/internal/infrastructure/logger"
	"stuff3d_checkout/internal/infrastructure/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handlers groups the HTTP handlers mounted under /v1. AdminToken guards the
// /v1/admin group.
type Handlers struct {
	Payment    *handlers.PaymentHandler
	Product    *handlers.ProductHandler
	Checkout   *handlers.CheckoutHandler
	Admin      *handlers.AdminHandler
	AdminToken string
}

// NewRouter builds the gin engine. m and gatherer may be nil, in which case
// request metrics and /metrics are left out.
func NewRouter(h Handlers, log *zap.Logger, m *metrics.Metrics, gatherer prometheus.Gatherer) *gin.Engine {
	if log == nil {
		log = zap.NewNop()
	}
	router := gin.New()
	setMiddlewares(router, log, m)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	if h.Product != nil {
		addProductRoutes(v1, h.Product)
	}
	if h.Payment != nil {
		addPaymentRoutes(v1, h.Payment)
	}
	if h.Checkout != nil {
		addCheckoutRoutes(v1, h.Checkout)
	}
	if h.Admin != nil {
		addAdminRoutes(v1, h.Admin, h.AdminToken)
	}
	return router
}

// Run serves router until ctx is cancelled, then drains in-flight requests
// for at most cfg.ShutdownTimeout.
func Run(ctx context.Context, cfg config.HTTPConfig, router http.Handler, log *zap.Logger) error {
	srv := &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.Port),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("[http] listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("[http] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

func setMiddlewares(router *gin.Engine, log *zap.Logger, m *metrics.Metrics) {
	router.Use(logger.GinLogger(log))
	router.Use(logger.GinRecovery(log))
	if m != nil {
		router.Use(m.GinMiddleware())
	}
}
