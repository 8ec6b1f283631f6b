package checkout

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"stuff3d_checkout/internal/domain/entities"
	"stuff3d_checkout/internal/usecase/interfaces"
	"stuff3d_checkout/pkg/clock"
)

const (
	DefaultPollInterval = 3 * time.Second
	DefaultPollTimeout  = 10 * time.Minute
)

// Poll outcomes reported to the observer.
const (
	PollOutcomeOK        = "ok"
	PollOutcomeError     = "error"
	PollOutcomeSkipped   = "skipped"
	PollOutcomeDiscarded = "discarded"
	PollOutcomeExpired   = "expired"
)

// PollUpdate is delivered to the poller's callback. Expired marks the final
// delivery after the timeout; Result then carries the last known status.
type PollUpdate struct {
	Result  entities.PaymentResult
	Expired bool
}

type PollerOptions struct {
	Interval    time.Duration
	MaxDuration time.Duration
	Clock       clock.Clock
	Logger      *zap.Logger
	// Observer, when set, receives one outcome per tick.
	Observer func(outcome string)
}

// StatusPoller periodically queries the status of one payment until it
// settles, times out or is stopped. An instance is single use.
//
// Ticks are scheduled on a fixed cadence independent of call latency; a tick
// that fires while the previous call is still outstanding is skipped. Once
// Stop has run no tick queries or delivers, and a response that arrives late
// is discarded. A delivery that had already begun when Stop was called still
// completes, so callers must tolerate one straggling update.
type StatusPoller struct {
	gateway  interfaces.IGatewayClient
	clock    clock.Clock
	log      *zap.Logger
	observe  func(string)
	interval time.Duration
	maxDur   time.Duration

	mu        sync.Mutex
	paymentID string
	onUpdate  func(PollUpdate)
	started   bool
	stopped   bool
	inFlight  bool
	startedAt time.Time
	last      entities.PaymentResult
	timer     clock.Timer
	ctx       context.Context
	cancel    context.CancelFunc
}

func NewStatusPoller(gateway interfaces.IGatewayClient, opts PollerOptions) *StatusPoller {
	if opts.Interval <= 0 {
		opts.Interval = DefaultPollInterval
	}
	if opts.MaxDuration <= 0 {
		opts.MaxDuration = DefaultPollTimeout
	}
	if opts.Clock == nil {
		opts.Clock = clock.New()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Observer == nil {
		opts.Observer = func(string) {}
	}
	return &StatusPoller{
		gateway:  gateway,
		clock:    opts.Clock,
		log:      opts.Logger,
		observe:  opts.Observer,
		interval: opts.Interval,
		maxDur:   opts.MaxDuration,
	}
}

// Start begins polling. The first query happens one interval after Start.
func (p *StatusPoller) Start(paymentID string, onUpdate func(PollUpdate)) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		return ErrPollerStarted
	}
	p.started = true
	p.paymentID = paymentID
	p.onUpdate = onUpdate
	p.startedAt = p.clock.Now()
	p.last = entities.PaymentResult{PaymentID: paymentID, Status: entities.PaymentStatusPending}
	p.ctx, p.cancel = context.WithCancel(context.Background())
	p.timer = p.clock.AfterFunc(p.interval, p.tick)

	p.log.Info("[checkout][poller] started",
		zap.String("payment_id", paymentID),
		zap.Duration("interval", p.interval),
		zap.Duration("max_duration", p.maxDur))
	return nil
}

// Stop is idempotent and safe to call from the update callback.
func (p *StatusPoller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
}

func (p *StatusPoller) Stopped() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stopped
}

func (p *StatusPoller) stopLocked() {
	if p.stopped {
		return
	}
	p.stopped = true
	if p.timer != nil {
		p.timer.Stop()
	}
	if p.cancel != nil {
		p.cancel()
	}
}

func (p *StatusPoller) tick() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}

	if p.clock.Now().Sub(p.startedAt) >= p.maxDur {
		last := p.last
		onUpdate := p.onUpdate
		p.stopLocked()
		p.mu.Unlock()

		p.log.Warn("[checkout][poller] timed out",
			zap.String("payment_id", last.PaymentID),
			zap.String("last_status", string(last.Status)))
		p.observe(PollOutcomeExpired)
		onUpdate(PollUpdate{Result: last, Expired: true})
		return
	}

	p.timer = p.clock.AfterFunc(p.interval, p.tick)

	if p.inFlight {
		p.mu.Unlock()
		p.observe(PollOutcomeSkipped)
		return
	}
	p.inFlight = true
	ctx := p.ctx
	paymentID := p.paymentID
	p.mu.Unlock()

	res, err := p.gateway.GetStatus(ctx, paymentID)

	p.mu.Lock()
	p.inFlight = false
	if p.stopped {
		p.mu.Unlock()
		p.observe(PollOutcomeDiscarded)
		return
	}
	if err != nil {
		p.mu.Unlock()
		p.log.Warn("[checkout][poller] status query failed; will retry",
			zap.String("payment_id", paymentID), zap.Error(err))
		p.observe(PollOutcomeError)
		return
	}
	if res.PaymentID == "" {
		res.PaymentID = paymentID
	}
	p.last = res
	if res.Status.Terminal() {
		p.stopLocked()
	}
	onUpdate := p.onUpdate
	p.mu.Unlock()

	p.observe(PollOutcomeOK)
	onUpdate(PollUpdate{Result: res})
}
