package entities

import (
	"errors"
	"fmt"
)

var ErrGateway = errors.New("payment gateway error")

// GatewayError is a failure reported by, or while talking to, the payment
// gateway. StatusCode is zero for transport failures.
type GatewayError struct {
	Op         string
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *GatewayError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("gateway %s failed (status=%d code=%s): %s", e.Op, e.StatusCode, e.Code, msg)
	}
	return fmt.Sprintf("gateway %s failed: %s", e.Op, msg)
}

func (e *GatewayError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrGateway, e.Err}
	}
	return []error{ErrGateway}
}

// NotFound reports whether the gateway did not know the requested resource.
func (e *GatewayError) NotFound() bool {
	return e.StatusCode == 404
}
