package checkout

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"stuff3d_checkout/internal/domain/entities"
	"stuff3d_checkout/internal/domain/identity"
	"stuff3d_checkout/internal/domain/installments"
	"stuff3d_checkout/internal/usecase/interfaces"
	"stuff3d_checkout/pkg/clock"
)

// State is a node of the checkout state machine.
type State string

const (
	StateIdle               State = "idle"
	StateCollectingData     State = "collecting_data"
	StateMethodSelected     State = "method_selected"
	StateSubmitting         State = "submitting"
	StateAwaitingResolution State = "awaiting_resolution"
	StateApproved           State = "approved"
	StateRejected           State = "rejected"
	StateExpired            State = "expired"
	// StatePending is the display state for a card payment the processor left
	// pending and for an issued boleto. Nothing is polled from here.
	StatePending State = "pending"
	StateClosed  State = "closed"
)

// Terminal reports whether the current attempt is over. A new attempt starts by
// selecting a payment method again.
func (s State) Terminal() bool {
	switch s {
	case StateApproved, StateRejected, StateExpired, StatePending:
		return true
	}
	return false
}

type Options struct {
	PollInterval time.Duration
	PollTimeout  time.Duration
	Clock        clock.Clock
	Logger       *zap.Logger
	Validator    *identity.Validator
	// OnTransition runs with the session lock held and must not call back
	// into the Orchestrator.
	OnTransition func(from, to State)
	// OnPoll receives the outcome of every status poll tick.
	OnPoll func(outcome string)
}

// Snapshot is a consistent copy of the session state.
type Snapshot struct {
	State              State
	Product            entities.Product
	Quantity           int
	Customer           entities.CustomerData
	Method             entities.PaymentMethod
	InstallmentOptions []entities.InstallmentOption
	Installments       int
	CardReady          bool
	Result             *entities.PaymentResult
	Violations         []identity.Violation
	Err                error
	Polling            bool
}

// Orchestrator drives one checkout modal session: data collection, method
// selection, submission and, for PIX, tracking the payment until it settles.
//
// All state is guarded by mu. Network calls run with mu released; their
// results are applied only if the session generation is unchanged, so a
// response for a closed or re-opened session is dropped.
type Orchestrator struct {
	gateway   interfaces.IGatewayClient
	builder   *RequestBuilder
	validator *identity.Validator
	clock     clock.Clock
	log       *zap.Logger
	opts      Options

	mu           sync.Mutex
	generation   uint64
	state        State
	product      entities.Product
	quantity     int
	customer     entities.CustomerData
	method       entities.PaymentMethod
	options      []entities.InstallmentOption
	unitOptions  []entities.InstallmentOption
	installments int
	card         CardDetails
	result       *entities.PaymentResult
	violations   []identity.Violation
	lastErr      error
	poller       *StatusPoller
	lastActivity time.Time
}

func NewOrchestrator(gateway interfaces.IGatewayClient, opts Options) *Orchestrator {
	if opts.Clock == nil {
		opts.Clock = clock.New()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Validator == nil {
		opts.Validator = identity.NewValidator()
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = DefaultPollInterval
	}
	if opts.PollTimeout <= 0 {
		opts.PollTimeout = DefaultPollTimeout
	}
	return &Orchestrator{
		gateway:      gateway,
		builder:      NewRequestBuilder(),
		validator:    opts.Validator,
		clock:        opts.Clock,
		log:          opts.Logger,
		opts:         opts,
		state:        StateClosed,
		lastActivity: opts.Clock.Now(),
	}
}

// Open starts a fresh session for product, discarding whatever the previous
// session held. Installment options are fetched from the gateway; when that
// fails the single full-price option is offered.
func (o *Orchestrator) Open(ctx context.Context, product entities.Product) error {
	if product.ID == "" {
		return ErrProductNotFound
	}

	o.mu.Lock()
	o.resetLocked()
	o.generation++
	gen := o.generation
	o.product = product
	o.quantity = 1
	o.options = installments.Single(product.Price)
	o.unitOptions = o.options
	o.installments = 1
	o.setStateLocked(StateIdle)
	o.mu.Unlock()

	o.log.Info("[checkout][orchestrator] session opened", zap.String("product_id", product.ID))

	fetched, err := o.gateway.FetchInstallmentOptions(ctx, product.ID)

	o.mu.Lock()
	defer o.mu.Unlock()
	if gen != o.generation {
		return nil
	}
	if err != nil {
		o.log.Warn("[checkout][orchestrator] installment options unavailable; offering single payment",
			zap.String("product_id", product.ID), zap.Error(err))
		return nil
	}
	if len(fetched) == 0 {
		return nil
	}
	o.unitOptions = append([]entities.InstallmentOption(nil), fetched...)
	o.repriceOptionsLocked()
	return nil
}

// UpdateCustomer replaces the identity fields. Validation is deferred to
// Submit.
func (o *Orchestrator) UpdateCustomer(data entities.CustomerData) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if err := o.editableLocked(); err != nil {
		return err
	}
	o.customer = data
	o.violations = nil
	if o.state == StateIdle {
		o.setStateLocked(StateCollectingData)
	}
	return nil
}

func (o *Orchestrator) SetQuantity(quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	if err := o.editableLocked(); err != nil {
		return err
	}
	o.quantity = quantity
	o.repriceOptionsLocked()
	return nil
}

// SelectMethod picks the payment method for the next attempt. Any stored
// result is discarded and an active poller stopped, so a new attempt can be
// submitted. Re-selecting the method of a PIX payment still awaiting
// confirmation is a no-op.
func (o *Orchestrator) SelectMethod(method entities.PaymentMethod) error {
	if !method.Valid() {
		return ErrUnknownMethod
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.touchLocked()

	switch o.state {
	case StateClosed:
		return ErrSessionClosed
	case StateSubmitting:
		return ErrAttemptInFlight
	case StateAwaitingResolution:
		if method == o.method {
			return nil
		}
	}

	o.stopPollerLocked()
	if o.result != nil {
		o.log.Info("[checkout][orchestrator] discarding previous result",
			zap.String("payment_id", o.result.PaymentID),
			zap.String("new_method", string(method)))
	}
	o.result = nil
	o.lastErr = nil
	o.violations = nil
	o.method = method
	o.setStateLocked(StateMethodSelected)
	return nil
}

// SelectInstallments picks one of the offered installment counts.
func (o *Orchestrator) SelectInstallments(count int) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if err := o.editableLocked(); err != nil {
		return err
	}
	return o.selectInstallmentsLocked(count)
}

// SetCard stores the tokenized card. A positive Installments also selects
// the installment count.
func (o *Orchestrator) SetCard(card CardDetails) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if err := o.editableLocked(); err != nil {
		return err
	}
	if card.Installments > 0 {
		if err := o.selectInstallmentsLocked(card.Installments); err != nil {
			return err
		}
	}
	o.card = CardDetails{
		Token:           card.Token,
		IssuerID:        card.IssuerID,
		PaymentMethodID: card.PaymentMethodID,
	}
	return nil
}

// Submit validates, builds and sends the payment for the selected method.
//
// Local failures (*identity.ValidationError, *BuildError) and gateway failures
// (*entities.GatewayError) leave the session in method_selected. The returned
// snapshot reflects the state after the call.
func (o *Orchestrator) Submit(ctx context.Context) (Snapshot, error) {
	o.mu.Lock()
	o.touchLocked()

	switch o.state {
	case StateMethodSelected:
	case StateClosed:
		o.mu.Unlock()
		return o.Snapshot(), ErrSessionClosed
	case StateSubmitting, StateAwaitingResolution:
		o.mu.Unlock()
		return o.Snapshot(), ErrAttemptInFlight
	case StateIdle, StateCollectingData:
		o.mu.Unlock()
		return o.Snapshot(), ErrMethodNotSelected
	default:
		o.mu.Unlock()
		return o.Snapshot(), ErrAttemptFinished
	}

	if err := o.validator.Validate(o.customer); err != nil {
		var vErr *identity.ValidationError
		if errors.As(err, &vErr) {
			o.violations = vErr.Violations
		}
		o.lastErr = err
		snap := o.snapshotLocked()
		o.mu.Unlock()
		return snap, err
	}

	card := o.card
	card.Installments = o.installments
	req, err := o.builder.Build(BuildInput{
		Customer: o.customer,
		Product:  o.product,
		Quantity: o.quantity,
		Method:   o.method,
		Card:     card,
	})
	if err != nil {
		o.lastErr = err
		snap := o.snapshotLocked()
		o.mu.Unlock()
		return snap, err
	}

	gen := o.generation
	method := o.method
	o.violations = nil
	o.lastErr = nil
	o.setStateLocked(StateSubmitting)
	o.mu.Unlock()

	o.log.Info("[checkout][orchestrator] submitting payment",
		zap.String("product_id", req.ProductID),
		zap.String("method", string(method)),
		zap.Int("quantity", req.Quantity))

	res, err := o.gateway.Create(ctx, req)

	o.mu.Lock()
	defer o.mu.Unlock()

	if gen != o.generation || o.state != StateSubmitting {
		o.log.Info("[checkout][orchestrator] dropping create response for a closed session",
			zap.String("payment_id", res.PaymentID))
		return o.snapshotLocked(), ErrSessionClosed
	}

	if err != nil {
		var gErr *entities.GatewayError
		if !errors.As(err, &gErr) {
			gErr = &entities.GatewayError{Op: "create", Err: err}
		}
		o.log.Warn("[checkout][orchestrator] create failed",
			zap.String("method", string(method)), zap.Error(gErr))
		o.lastErr = gErr
		o.setStateLocked(StateMethodSelected)
		return o.snapshotLocked(), gErr
	}

	if res.Method == "" {
		res.Method = method
	}
	o.result = &res

	switch res.Status {
	case entities.PaymentStatusApproved:
		o.setStateLocked(StateApproved)
	case entities.PaymentStatusRejected:
		o.setStateLocked(StateRejected)
	default:
		if method == entities.PaymentMethodPix {
			o.startPollerLocked(gen, res.PaymentID)
			o.setStateLocked(StateAwaitingResolution)
		} else {
			o.setStateLocked(StatePending)
		}
	}

	o.log.Info("[checkout][orchestrator] payment created",
		zap.String("payment_id", res.PaymentID),
		zap.String("status", string(res.Status)),
		zap.String("state", string(o.state)))
	return o.snapshotLocked(), nil
}

// Close ends the session from any state. Responses still in flight are
// dropped when they arrive.
func (o *Orchestrator) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.state == StateClosed {
		return
	}
	o.resetLocked()
	o.generation++
	o.setStateLocked(StateClosed)
	o.log.Info("[checkout][orchestrator] session closed")
}

func (o *Orchestrator) Snapshot() Snapshot {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.snapshotLocked()
}

func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// LastActivity is the time of the last caller interaction.
func (o *Orchestrator) LastActivity() time.Time {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.lastActivity
}

func (o *Orchestrator) startPollerLocked(gen uint64, paymentID string) {
	poller := NewStatusPoller(o.gateway, PollerOptions{
		Interval:    o.opts.PollInterval,
		MaxDuration: o.opts.PollTimeout,
		Clock:       o.clock,
		Logger:      o.log,
		Observer:    o.opts.OnPoll,
	})
	o.poller = poller
	// A fresh poller cannot already be started.
	_ = poller.Start(paymentID, func(u PollUpdate) {
		o.applyPollUpdate(gen, poller, u)
	})
}

func (o *Orchestrator) applyPollUpdate(gen uint64, poller *StatusPoller, u PollUpdate) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if gen != o.generation || poller != o.poller || o.state != StateAwaitingResolution {
		return
	}

	if o.result != nil {
		merged := *o.result
		if u.Result.Status != "" {
			merged.Status = u.Result.Status
		}
		if u.Result.StatusDetail != "" {
			merged.StatusDetail = u.Result.StatusDetail
		}
		if u.Result.ApprovedAt != nil {
			merged.ApprovedAt = u.Result.ApprovedAt
		}
		o.result = &merged
	}

	switch {
	case u.Expired:
		o.poller = nil
		o.lastErr = ErrPaymentExpired
		o.setStateLocked(StateExpired)
	case u.Result.Status == entities.PaymentStatusApproved:
		o.poller = nil
		o.setStateLocked(StateApproved)
	case u.Result.Status == entities.PaymentStatusRejected:
		o.poller = nil
		o.setStateLocked(StateRejected)
	default:
		return
	}

	o.log.Info("[checkout][orchestrator] payment resolved",
		zap.String("payment_id", u.Result.PaymentID),
		zap.String("state", string(o.state)))
}

func (o *Orchestrator) selectInstallmentsLocked(count int) error {
	if _, ok := installments.Find(o.options, count); !ok {
		return ErrInvalidInstallments
	}
	o.installments = count
	return nil
}

// editableLocked rejects edits while a closed session or an attempt in flight
// would make them meaningless.
func (o *Orchestrator) editableLocked() error {
	o.touchLocked()
	switch o.state {
	case StateClosed:
		return ErrSessionClosed
	case StateSubmitting, StateAwaitingResolution:
		return ErrAttemptInFlight
	}
	return nil
}

// repriceOptionsLocked derives the offered tiers for the current quantity.
// The gateway prices one unit; other quantities keep its tier count but are
// recalculated over the full amount. A selection that no longer exists falls
// back to the largest smaller count.
func (o *Orchestrator) repriceOptionsLocked() {
	if o.quantity <= 1 || len(o.unitOptions) == 0 {
		o.options = append([]entities.InstallmentOption(nil), o.unitOptions...)
	} else {
		maxTiers := o.unitOptions[len(o.unitOptions)-1].Installments
		o.options = installments.Calculate(o.product.Price.Mul(o.quantity), maxTiers)
	}
	if len(o.options) == 0 {
		o.options = installments.Single(o.product.Price.Mul(max(o.quantity, 1)))
	}
	if _, ok := installments.Find(o.options, o.installments); ok {
		return
	}
	selected := o.options[0].Installments
	for _, opt := range o.options {
		if opt.Installments <= o.installments {
			selected = opt.Installments
		}
	}
	o.installments = selected
}

func (o *Orchestrator) stopPollerLocked() {
	if o.poller != nil {
		o.poller.Stop()
		o.poller = nil
	}
}

func (o *Orchestrator) resetLocked() {
	o.stopPollerLocked()
	o.product = entities.Product{}
	o.quantity = 0
	o.customer = entities.CustomerData{}
	o.method = ""
	o.options = nil
	o.unitOptions = nil
	o.installments = 0
	o.card = CardDetails{}
	o.result = nil
	o.violations = nil
	o.lastErr = nil
	o.touchLocked()
}

func (o *Orchestrator) setStateLocked(to State) {
	from := o.state
	if from == to {
		return
	}
	o.state = to
	if o.opts.OnTransition != nil {
		o.opts.OnTransition(from, to)
	}
}

func (o *Orchestrator) touchLocked() {
	o.lastActivity = o.clock.Now()
}

func (o *Orchestrator) snapshotLocked() Snapshot {
	snap := Snapshot{
		State:              o.state,
		Product:            o.product,
		Quantity:           o.quantity,
		Customer:           o.customer,
		Method:             o.method,
		InstallmentOptions: append([]entities.InstallmentOption(nil), o.options...),
		Installments:       o.installments,
		CardReady:          o.card.Token != "",
		Violations:         append([]identity.Violation(nil), o.violations...),
		Err:                o.lastErr,
		Polling:            o.poller != nil,
	}
	if o.result != nil {
		r := *o.result
		snap.Result = &r
	}
	return snap
}
