package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"stuff3d_checkout/internal/domain/entities"
	"stuff3d_checkout/internal/domain/identity"
	"stuff3d_checkout/internal/domain/installments"
	"stuff3d_checkout/internal/usecase/interfaces"
	"stuff3d_checkout/pkg/clock"
)

var (
	ErrPaymentNotFound                = errors.New("payment not found")
	ErrInvalidPaymentID               = errors.New("invalid payment id")
	ErrInvalidProductID               = errors.New("invalid product id")
	ErrInvalidQuantity                = errors.New("quantity must be at least 1")
	ErrUnsupportedPaymentMethod       = errors.New("unsupported payment method")
	ErrCardTokenRequired              = errors.New("card token is required")
	ErrInvalidInstallments            = errors.New("invalid installments")
	ErrInvalidNotification            = errors.New("invalid payment notification")
	ErrOutOfStock                     = errors.New("product out of stock")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// IPaymentUseCase is the payment API consumed by the checkout.
//
//   - POST /payments => CreatePayment()
//   - GET /payments/{id}/status => GetStatus()
//   - GET /products/{id}/installments => InstallmentOptions()
//   - POST /payments/webhook => HandleNotification()
type IPaymentUseCase interface {
	CreatePayment(ctx context.Context, req entities.PaymentRequest) (entities.PaymentResult, error)
	GetStatus(ctx context.Context, paymentID string) (entities.PaymentResult, error)
	InstallmentOptions(ctx context.Context, productID string) ([]entities.InstallmentOption, error)
	HandleNotification(ctx context.Context, n entities.PaymentNotification) error
}

type PaymentOptions struct {
	Cache           interfaces.IInstallmentCache
	Stock           interfaces.IStockRepository
	Notifier        interfaces.INotifier
	Observer        interfaces.IPaymentObserver
	Validator       *identity.Validator
	Clock           clock.Clock
	Logger          *zap.Logger
	MaxInstallments int
}

type PaymentUseCase struct {
	repo            interfaces.IPaymentRepository
	products        interfaces.IProductRepository
	gateway         interfaces.IPaymentGateway
	cache           interfaces.IInstallmentCache
	stock           interfaces.IStockRepository
	notifier        interfaces.INotifier
	observer        interfaces.IPaymentObserver
	validator       *identity.Validator
	clock           clock.Clock
	log             *zap.Logger
	maxInstallments int
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository, products interfaces.IProductRepository, gateway interfaces.IPaymentGateway, opts PaymentOptions) *PaymentUseCase {
	if opts.Validator == nil {
		opts.Validator = identity.NewValidator()
	}
	if opts.Clock == nil {
		opts.Clock = clock.New()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Observer == nil {
		opts.Observer = noopPaymentObserver{}
	}
	if opts.Notifier == nil {
		opts.Notifier = noopNotifier{}
	}
	if opts.MaxInstallments < 1 {
		opts.MaxInstallments = installments.DefaultMaxTiers
	}
	return &PaymentUseCase{
		repo:            repo,
		products:        products,
		gateway:         gateway,
		cache:           opts.Cache,
		stock:           opts.Stock,
		notifier:        opts.Notifier,
		observer:        opts.Observer,
		validator:       opts.Validator,
		clock:           opts.Clock,
		log:             opts.Logger,
		maxInstallments: opts.MaxInstallments,
	}
}

func (u *PaymentUseCase) CreatePayment(ctx context.Context, req entities.PaymentRequest) (entities.PaymentResult, error) {
	u.log.Info("[payment][usecase] create start",
		zap.String("product_id", req.ProductID),
		zap.String("method", string(req.Method)),
		zap.Int("quantity", req.Quantity))

	if !req.Method.Valid() {
		return entities.PaymentResult{}, ErrUnsupportedPaymentMethod
	}
	req.ProductID = strings.TrimSpace(req.ProductID)
	if req.ProductID == "" {
		return entities.PaymentResult{}, ErrInvalidProductID
	}
	if req.Quantity < 1 {
		return entities.PaymentResult{}, ErrInvalidQuantity
	}
	if err := u.validator.Validate(req.Customer); err != nil {
		u.log.Info("[payment][usecase] invalid customer data", zap.Error(err))
		return entities.PaymentResult{}, err
	}
	req.Customer = req.Customer.Normalized()

	if req.Method == entities.PaymentMethodCreditCard {
		if strings.TrimSpace(req.CardToken) == "" {
			return entities.PaymentResult{}, ErrCardTokenRequired
		}
		if req.Installments == 0 {
			req.Installments = 1
		}
		if req.Installments < 1 || req.Installments > u.maxInstallments {
			return entities.PaymentResult{}, ErrInvalidInstallments
		}
	}

	if u.gateway == nil {
		u.log.Error("[payment][usecase] gateway not configured")
		return entities.PaymentResult{}, ErrPaymentGatewayNotConfigured
	}

	product, err := u.loadProduct(ctx, req.ProductID)
	if err != nil {
		return entities.PaymentResult{}, err
	}

	// The catalog is the source of truth for the amount.
	amount := product.Price.Mul(req.Quantity)
	if req.Method == entities.PaymentMethodCreditCard {
		// Tiers are priced over the whole charge, not one unit.
		if _, ok := installments.Find(installments.Calculate(amount, u.maxInstallments), req.Installments); !ok {
			return entities.PaymentResult{}, ErrInvalidInstallments
		}
	}

	if err := u.reserveStock(ctx, product.ID, req.Quantity); err != nil {
		return entities.PaymentResult{}, err
	}
	now := u.clock.Now()
	payload := buildProviderPayload(req, product, amount, now)
	body, err := json.Marshal(payload.fields)
	if err != nil {
		u.settleStock(ctx, product.ID, req.Quantity, entities.PaymentStatusPending, entities.PaymentStatusRejected)
		return entities.PaymentResult{}, err
	}

	u.log.Info("[payment][usecase] calling payment gateway",
		zap.String("external_reference", payload.externalReference),
		zap.String("amount", amount.String()))

	providerID, providerStatus, raw, err := u.gateway.CreatePayment(ctx, body)
	if err != nil {
		u.log.Warn("[payment][usecase] payment gateway failed",
			zap.String("external_reference", payload.externalReference), zap.Error(err))
		classified := classifyGatewayError(err)
		u.observer.GatewayFailed("create", gatewayFailureReason(classified))
		u.settleStock(ctx, product.ID, req.Quantity, entities.PaymentStatusPending, entities.PaymentStatusRejected)
		return entities.PaymentResult{}, classified
	}

	info := parseProviderPayment(raw)
	result := info.toResult(providerID, req.Method)
	result.Status = entities.NormalizeProviderStatus(providerStatus)
	result.Amount = amount
	result.ExternalReference = payload.externalReference
	if req.Method == entities.PaymentMethodCreditCard {
		result.Installments = req.Installments
	}
	if result.ExpiresAt == nil && payload.expiresAt != nil {
		result.ExpiresAt = payload.expiresAt
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		u.log.Warn("[payment][usecase] provider response unmarshal failed",
			zap.String("payment_id", providerID), zap.Error(err))
	}

	record := entities.PaymentRecord{
		ID:                providerID,
		ExternalReference: payload.externalReference,
		ProductID:         product.ID,
		ProductName:       product.Name,
		Method:            req.Method,
		Status:            result.Status,
		StatusDetail:      result.StatusDetail,
		Amount:            amount,
		Quantity:          req.Quantity,
		Installments:      max(req.Installments, 1),
		CustomerName:      req.Customer.Name,
		CustomerEmail:     req.Customer.Email,
		CustomerDocument:  req.Customer.Document,
		Date:              now.UTC(),
		UpdatedAt:         now.UTC(),
		ApprovedAt:        result.ApprovedAt,
		MPPayloadRaw:      raw,
		MPPayload:         parsed,
	}
	if u.repo != nil {
		if _, err := u.repo.Create(ctx, record); err != nil {
			// The provider already holds the payment; the record is only a
			// local copy, so the caller still gets the result.
			u.log.Error("[payment][usecase] payment repository create failed",
				zap.String("payment_id", providerID), zap.Error(err))
		}
	}

	// Units were reserved as pending; a card may already be settled.
	u.settleStock(ctx, product.ID, req.Quantity, entities.PaymentStatusPending, result.Status)
	switch {
	case result.Status == entities.PaymentStatusApproved:
		u.notify("approved", record.ID, u.notifier.PaymentApproved(ctx, record))
	case result.Status == entities.PaymentStatusPending && req.Method != entities.PaymentMethodCreditCard:
		u.notify("pending", record.ID, u.notifier.PaymentPending(ctx, record, result))
	}

	u.observer.PaymentCreated(req.Method, result.Status)
	u.log.Info("[payment][usecase] create success",
		zap.String("payment_id", providerID),
		zap.String("provider_status", providerStatus),
		zap.String("status", string(result.Status)))
	return result, nil
}

func (u *PaymentUseCase) GetStatus(ctx context.Context, paymentID string) (entities.PaymentResult, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return entities.PaymentResult{}, ErrInvalidPaymentID
	}
	if u.gateway == nil {
		return entities.PaymentResult{}, ErrPaymentGatewayNotConfigured
	}

	providerStatus, raw, err := u.gateway.GetPayment(ctx, paymentID)
	if err != nil {
		if errors.Is(err, interfaces.ErrProviderPaymentNotFound) || isGatewayNotFound(err) {
			return entities.PaymentResult{}, ErrPaymentNotFound
		}
		u.log.Warn("[payment][usecase] status lookup failed",
			zap.String("payment_id", paymentID), zap.Error(err))
		classified := classifyGatewayError(err)
		u.observer.GatewayFailed("status", gatewayFailureReason(classified))
		return entities.PaymentResult{}, classified
	}

	info := parseProviderPayment(raw)
	result := info.toResult(paymentID, "")
	result.Status = entities.NormalizeProviderStatus(providerStatus)

	u.syncRecord(ctx, &result, raw)
	return result, nil
}

// syncRecord copies the provider status onto the local record. Failures are
// logged only: the provider stays the source of truth.
func (u *PaymentUseCase) syncRecord(ctx context.Context, result *entities.PaymentResult, raw json.RawMessage) {
	if u.repo == nil {
		return
	}
	rec, err := u.repo.GetByID(ctx, result.PaymentID)
	if err != nil {
		u.log.Warn("[payment][usecase] record lookup failed",
			zap.String("payment_id", result.PaymentID), zap.Error(err))
		return
	}
	if rec.ID == "" {
		return
	}
	if result.Method == "" {
		result.Method = rec.Method
	}
	if result.ExternalReference == "" {
		result.ExternalReference = rec.ExternalReference
	}
	if result.Installments == 0 && rec.Method == entities.PaymentMethodCreditCard {
		result.Installments = rec.Installments
	}
	if rec.Status == result.Status && rec.StatusDetail == result.StatusDetail {
		return
	}

	updated, err := u.repo.UpdateStatus(ctx, rec.ID, result.Status, result.StatusDetail, raw)
	if err != nil {
		u.log.Warn("[payment][usecase] record status update failed",
			zap.String("payment_id", rec.ID), zap.Error(err))
		return
	}
	if result.ApprovedAt == nil {
		result.ApprovedAt = updated.ApprovedAt
	}
	u.log.Info("[payment][usecase] record status updated",
		zap.String("payment_id", rec.ID),
		zap.String("from", string(rec.Status)),
		zap.String("to", string(result.Status)))

	u.settleStock(ctx, rec.ProductID, rec.Quantity, rec.Status, result.Status)
	if result.Status == entities.PaymentStatusApproved && rec.Status != entities.PaymentStatusApproved {
		approved := rec
		if updated.ID != "" {
			approved = updated
		}
		approved.Status = result.Status
		approved.ApprovedAt = result.ApprovedAt
		u.notify("approved", rec.ID, u.notifier.PaymentApproved(ctx, approved))
	}
}

// reserveStock holds units for a new payment. The conditional update is the
// availability check: two buyers cannot reserve the same last unit.
func (u *PaymentUseCase) reserveStock(ctx context.Context, productID string, quantity int) error {
	if u.stock == nil {
		return nil
	}
	stock, err := u.stock.Reserve(ctx, productID, quantity)
	if err != nil {
		if errors.Is(err, interfaces.ErrInsufficientStock) {
			u.log.Info("[payment][usecase] product out of stock",
				zap.String("product_id", productID), zap.Int("quantity", quantity))
			return ErrOutOfStock
		}
		u.log.Error("[payment][usecase] stock reservation failed",
			zap.String("product_id", productID), zap.Error(err))
		return err
	}
	u.log.Debug("[payment][usecase] stock reserved",
		zap.String("product_id", productID),
		zap.Int("quantity", quantity),
		zap.Int("available", stock.Available))
	return nil
}

// settleStock moves the units of a payment according to its status change.
// A pending payment holds reserved units; approval sells them and rejection
// releases them. Failures are logged only.
func (u *PaymentUseCase) settleStock(ctx context.Context, productID string, quantity int, from, to entities.PaymentStatus) {
	if u.stock == nil || quantity < 1 || from == to {
		return
	}
	var err error
	switch {
	case to == entities.PaymentStatusApproved && from == entities.PaymentStatusRejected:
		if _, err = u.stock.Reserve(ctx, productID, quantity); err == nil {
			_, err = u.stock.ConfirmSale(ctx, productID, quantity)
		}
	case to == entities.PaymentStatusApproved:
		_, err = u.stock.ConfirmSale(ctx, productID, quantity)
	case to == entities.PaymentStatusRejected && from == entities.PaymentStatusPending:
		_, err = u.stock.Release(ctx, productID, quantity)
	case to == entities.PaymentStatusPending && from == entities.PaymentStatusRejected:
		_, err = u.stock.Reserve(ctx, productID, quantity)
	default:
		return
	}
	if err != nil {
		u.log.Warn("[payment][usecase] stock update failed",
			zap.String("product_id", productID),
			zap.String("from", string(from)),
			zap.String("to", string(to)),
			zap.Error(err))
	}
}

func (u *PaymentUseCase) notify(kind, paymentID string, err error) {
	if err != nil {
		u.log.Warn("[payment][usecase] customer notification failed",
			zap.String("kind", kind), zap.String("payment_id", paymentID), zap.Error(err))
	}
}

func (u *PaymentUseCase) InstallmentOptions(ctx context.Context, productID string) ([]entities.InstallmentOption, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return nil, ErrInvalidProductID
	}

	if u.cache != nil {
		cached, found, err := u.cache.Get(ctx, productID)
		if err != nil {
			u.log.Warn("[payment][usecase] installment cache read failed",
				zap.String("product_id", productID), zap.Error(err))
		} else if found {
			return cached, nil
		}
	}

	product, err := u.loadProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	options := installments.Calculate(product.Price, u.maxInstallments)

	if u.cache != nil {
		if err := u.cache.Set(ctx, productID, options); err != nil {
			u.log.Warn("[payment][usecase] installment cache write failed",
				zap.String("product_id", productID), zap.Error(err))
		}
	}
	return options, nil
}

// HandleNotification refreshes a payment announced by a provider webhook.
// Notifications for other topics are acknowledged and ignored.
func (u *PaymentUseCase) HandleNotification(ctx context.Context, n entities.PaymentNotification) error {
	if !n.IsPayment() {
		u.log.Info("[payment][webhook] ignoring notification",
			zap.String("topic", n.Topic), zap.String("type", n.Type))
		return nil
	}
	paymentID := n.PaymentID()
	if paymentID == "" {
		return ErrInvalidNotification
	}

	result, err := u.GetStatus(ctx, paymentID)
	if err != nil {
		return fmt.Errorf("refresh payment %s: %w", paymentID, err)
	}
	u.log.Info("[payment][webhook] payment refreshed",
		zap.String("payment_id", paymentID),
		zap.String("action", n.Action),
		zap.String("status", string(result.Status)))
	return nil
}

func (u *PaymentUseCase) loadProduct(ctx context.Context, productID string) (entities.Product, error) {
	if u.products == nil {
		return entities.Product{}, errors.New("product repository not configured")
	}
	product, err := u.products.GetByID(ctx, productID)
	if err != nil {
		u.log.Error("[payment][usecase] failed loading product",
			zap.String("product_id", productID), zap.Error(err))
		return entities.Product{}, err
	}
	if product.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return product, nil
}

type noopPaymentObserver struct{}

func (noopPaymentObserver) PaymentCreated(entities.PaymentMethod, entities.PaymentStatus) {}
func (noopPaymentObserver) GatewayFailed(string, string)                                  {}

type noopNotifier struct{}

func (noopNotifier) PaymentPending(context.Context, entities.PaymentRecord, entities.PaymentResult) error {
	return nil
}
func (noopNotifier) PaymentApproved(context.Context, entities.PaymentRecord) error { return nil }
