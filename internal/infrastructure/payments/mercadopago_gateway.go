package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"go.uber.org/zap"

	"stuff3d_checkout/internal/usecase/interfaces"
	"stuff3d_checkout/pkg/clock"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

type Options struct {
	AccessToken string
	// Mock answers from an in-memory store instead of calling Mercado Pago.
	Mock bool
	// MockPixApproveAfter approves mock PIX payments once elapsed; zero keeps
	// them pending.
	MockPixApproveAfter time.Duration
	Clock               clock.Clock
	Logger              *zap.Logger
}

type MercadoPagoGateway struct {
	client payment.Client
	mock   *mockStore
	log    *zap.Logger
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(opts Options) (*MercadoPagoGateway, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	if opts.Mock {
		log.Info("[payment][gateway] mock mode enabled",
			zap.Duration("pix_approve_after", opts.MockPixApproveAfter))
		return &MercadoPagoGateway{mock: newMockStore(opts.Clock, opts.MockPixApproveAfter), log: log}, nil
	}

	if opts.AccessToken == "" {
		log.Warn("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(opts.AccessToken)
	if err != nil {
		log.Error("[payment][gateway] failed creating sdk config", zap.Error(err))
		return nil, err
	}
	log.Info("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg), log: log}, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error) {
	if g != nil && g.mock != nil {
		g.log.Debug("[payment][gateway] mock create start", zap.Int("payload_len", len(requestPayload)))
		id, status, raw, err := g.mock.create(requestPayload)
		if err != nil {
			g.log.Error("[payment][gateway] mock create failed", zap.Error(err))
			return "", "", nil, err
		}
		g.log.Info("[payment][gateway] mock create success",
			zap.String("provider_payment_id", id), zap.String("provider_status", status))
		return id, status, raw, nil
	}

	if g == nil || g.client == nil {
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}
	g.log.Debug("[payment][gateway] create start", zap.Int("payload_len", len(requestPayload)))

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		g.log.Error("[payment][gateway] payload unmarshal failed", zap.Error(err))
		return "", "", nil, err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		g.log.Warn("[payment][gateway] sdk create failed", zap.Error(err))
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		g.log.Error("[payment][gateway] response marshal failed", zap.Error(err))
		return "", "", nil, err
	}
	id := fmt.Sprintf("%d", resp.ID)
	g.log.Info("[payment][gateway] create success",
		zap.String("provider_payment_id", id), zap.String("provider_status", resp.Status))

	return id, resp.Status, b, nil
}

func (g *MercadoPagoGateway) GetPayment(ctx context.Context, providerPaymentID string) (providerStatus string, providerResponse json.RawMessage, err error) {
	if g != nil && g.mock != nil {
		return g.mock.get(providerPaymentID)
	}
	if g == nil || g.client == nil {
		return "", nil, ErrMercadoPagoGatewayNotConfigured
	}

	id, err := strconv.Atoi(strings.TrimSpace(providerPaymentID))
	if err != nil {
		return "", nil, fmt.Errorf("%w: %q", interfaces.ErrProviderPaymentNotFound, providerPaymentID)
	}

	resp, err := g.client.Get(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return "", nil, fmt.Errorf("%w: %w", interfaces.ErrProviderPaymentNotFound, err)
		}
		g.log.Warn("[payment][gateway] sdk get failed", zap.Int("provider_payment_id", id), zap.Error(err))
		return "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		g.log.Error("[payment][gateway] response marshal failed", zap.Error(err))
		return "", nil, err
	}
	g.log.Debug("[payment][gateway] get success",
		zap.Int("provider_payment_id", id), zap.String("provider_status", resp.Status))
	return resp.Status, b, nil
}

func isNotFound(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"status\":404") || strings.Contains(msg, "\"error\":\"not_found\"")
}
