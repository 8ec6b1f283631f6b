package checkout

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"stuff3d_checkout/internal/usecase/interfaces"
	"stuff3d_checkout/pkg/clock"
)

// OrchestratorFactory builds the orchestrator backing a new session.
type OrchestratorFactory func() *Orchestrator

type RegistryOptions struct {
	Clock  clock.Clock
	Logger *zap.Logger
	// OnSessionCount receives the number of open sessions after every change.
	OnSessionCount func(n int)
}

// SessionRegistry keeps one orchestrator per open checkout modal, keyed by an
// opaque session id.
type SessionRegistry struct {
	products interfaces.IProductRepository
	factory  OrchestratorFactory
	clock    clock.Clock
	log      *zap.Logger
	onCount  func(int)

	mu       sync.Mutex
	sessions map[string]*Orchestrator
}

func NewSessionRegistry(products interfaces.IProductRepository, factory OrchestratorFactory, opts RegistryOptions) *SessionRegistry {
	if opts.Clock == nil {
		opts.Clock = clock.New()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.OnSessionCount == nil {
		opts.OnSessionCount = func(int) {}
	}
	return &SessionRegistry{
		products: products,
		factory:  factory,
		clock:    opts.Clock,
		log:      opts.Logger,
		onCount:  opts.OnSessionCount,
		sessions: make(map[string]*Orchestrator),
	}
}

// Open looks the product up in the catalog and opens a session for it.
func (r *SessionRegistry) Open(ctx context.Context, productID string) (string, *Orchestrator, error) {
	product, err := r.products.GetByID(ctx, productID)
	if err != nil {
		return "", nil, fmt.Errorf("load product %s: %w", productID, err)
	}
	if product.ID == "" {
		return "", nil, ErrProductNotFound
	}

	orch := r.factory()
	if err := orch.Open(ctx, product); err != nil {
		return "", nil, err
	}

	id := uuid.NewString()
	r.mu.Lock()
	r.sessions[id] = orch
	n := len(r.sessions)
	r.mu.Unlock()
	r.onCount(n)

	r.log.Info("[checkout][sessions] opened",
		zap.String("session_id", id), zap.String("product_id", product.ID))
	return id, orch, nil
}

func (r *SessionRegistry) Get(id string) (*Orchestrator, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	orch, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return orch, nil
}

// Close closes the session and forgets it.
func (r *SessionRegistry) Close(id string) error {
	r.mu.Lock()
	orch, ok := r.sessions[id]
	delete(r.sessions, id)
	n := len(r.sessions)
	r.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}
	orch.Close()
	r.onCount(n)
	r.log.Info("[checkout][sessions] closed", zap.String("session_id", id))
	return nil
}

func (r *SessionRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// SweepIdle closes every session untouched for at least maxIdle and returns
// how many were closed.
func (r *SessionRegistry) SweepIdle(maxIdle time.Duration) int {
	now := r.clock.Now()

	r.mu.Lock()
	var idle []*Orchestrator
	for id, orch := range r.sessions {
		if now.Sub(orch.LastActivity()) >= maxIdle {
			idle = append(idle, orch)
			delete(r.sessions, id)
		}
	}
	n := len(r.sessions)
	r.mu.Unlock()

	for _, orch := range idle {
		orch.Close()
	}
	if len(idle) > 0 {
		r.onCount(n)
		r.log.Info("[checkout][sessions] swept idle sessions",
			zap.Int("closed", len(idle)), zap.Int("open", n))
	}
	return len(idle)
}

// RunSweeper calls SweepIdle every interval until ctx is done, then closes all
// remaining sessions.
func (r *SessionRegistry) RunSweeper(ctx context.Context, every, maxIdle time.Duration) {
	if every <= 0 || maxIdle <= 0 {
		<-ctx.Done()
		r.CloseAll()
		return
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			r.CloseAll()
			return
		case <-ticker.C:
			r.SweepIdle(maxIdle)
		}
	}
}

func (r *SessionRegistry) CloseAll() {
	r.mu.Lock()
	all := r.sessions
	r.sessions = make(map[string]*Orchestrator)
	r.mu.Unlock()
	for _, orch := range all {
		orch.Close()
	}
	r.onCount(0)
}
