package checkout

import (
	"context"
	"sync"

	"stuff3d_checkout/internal/domain/entities"
	"stuff3d_checkout/internal/usecase/interfaces"
)

type statusStep struct {
	res entities.PaymentResult
	err error
}

// fakeGateway is a scripted IGatewayClient. Status steps are consumed in
// order; the last one repeats.
type fakeGateway struct {
	mu sync.Mutex

	createResult entities.PaymentResult
	createErr    error
	createBlock  chan struct{}
	createEnter  chan struct{}
	createCalls  int
	lastRequest  entities.PaymentRequest

	steps       []statusStep
	statusBlock chan struct{}
	statusEnter chan struct{}
	statusCalls int
	inFlight    int
	maxInFlight int

	options    []entities.InstallmentOption
	optionsErr error
}

var _ interfaces.IGatewayClient = (*fakeGateway)(nil)

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		createEnter: make(chan struct{}, 1),
		statusEnter: make(chan struct{}, 1),
	}
}

func (g *fakeGateway) Create(ctx context.Context, req entities.PaymentRequest) (entities.PaymentResult, error) {
	g.mu.Lock()
	g.createCalls++
	g.lastRequest = req
	block := g.createBlock
	res, err := g.createResult, g.createErr
	g.mu.Unlock()

	select {
	case g.createEnter <- struct{}{}:
	default:
	}
	if block != nil {
		<-block
	}
	return res, err
}

func (g *fakeGateway) GetStatus(ctx context.Context, paymentID string) (entities.PaymentResult, error) {
	g.mu.Lock()
	g.statusCalls++
	g.inFlight++
	if g.inFlight > g.maxInFlight {
		g.maxInFlight = g.inFlight
	}
	var step statusStep
	if len(g.steps) > 0 {
		step = g.steps[0]
		if len(g.steps) > 1 {
			g.steps = g.steps[1:]
		}
	} else {
		step = statusStep{res: entities.PaymentResult{PaymentID: paymentID, Status: entities.PaymentStatusPending}}
	}
	block := g.statusBlock
	g.mu.Unlock()

	select {
	case g.statusEnter <- struct{}{}:
	default:
	}
	if block != nil {
		<-block
	}

	g.mu.Lock()
	g.inFlight--
	g.mu.Unlock()
	return step.res, step.err
}

func (g *fakeGateway) FetchInstallmentOptions(ctx context.Context, productID string) ([]entities.InstallmentOption, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.options, g.optionsErr
}

func (g *fakeGateway) counts() (create, status, maxInFlight int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.createCalls, g.statusCalls, g.maxInFlight
}

func (g *fakeGateway) setSteps(steps ...statusStep) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.steps = steps
}

func pending(id string) statusStep {
	return statusStep{res: entities.PaymentResult{PaymentID: id, Status: entities.PaymentStatusPending}}
}

func approved(id string) statusStep {
	return statusStep{res: entities.PaymentResult{PaymentID: id, Status: entities.PaymentStatusApproved, StatusDetail: "accredited"}}
}

func rejected(id string) statusStep {
	return statusStep{res: entities.PaymentResult{PaymentID: id, Status: entities.PaymentStatusRejected, StatusDetail: "cc_rejected_other_reason"}}
}
