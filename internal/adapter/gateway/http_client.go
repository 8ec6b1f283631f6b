package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"stuff3d_checkout/internal/domain/entities"
	"stuff3d_checkout/internal/usecase/interfaces"
)

const maxErrorBody = 64 << 10

type HTTPClientSettings struct {
	BaseURL string
	Timeout time.Duration

	// breaker
	Name             string
	MaxRequests      uint32
	Interval         time.Duration
	BreakerTimeout   time.Duration
	FailureThreshold uint32
}

func DefaultHTTPClientSettings(baseURL string) HTTPClientSettings {
	return HTTPClientSettings{
		BaseURL:          baseURL,
		Timeout:          15 * time.Second,
		Name:             "payment-api",
		MaxRequests:      1,
		Interval:         60 * time.Second,
		BreakerTimeout:   30 * time.Second,
		FailureThreshold: 5,
	}
}

// HTTPClient talks to the payment API over JSON. Transport failures and 5xx
// answers count against the circuit breaker; it never retries.
type HTTPClient struct {
	baseURL string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
	log     *zap.Logger
}

var _ interfaces.IGatewayClient = (*HTTPClient)(nil)

func NewHTTPClient(settings HTTPClientSettings, httpClient *http.Client, log *zap.Logger) *HTTPClient {
	if log == nil {
		log = zap.NewNop()
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: settings.Timeout}
	}
	threshold := settings.FailureThreshold
	if threshold == 0 {
		threshold = 5
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        settings.Name,
		MaxRequests: settings.MaxRequests,
		Interval:    settings.Interval,
		Timeout:     settings.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("[checkout][gateway] circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	})

	return &HTTPClient{
		baseURL: strings.TrimRight(settings.BaseURL, "/"),
		client:  httpClient,
		breaker: breaker,
		log:     log,
	}
}

func (c *HTTPClient) Create(ctx context.Context, req entities.PaymentRequest) (entities.PaymentResult, error) {
	var out entities.PaymentResult
	err := c.do(ctx, "create", http.MethodPost, "/payments", req, &out)
	return out, err
}

func (c *HTTPClient) GetStatus(ctx context.Context, paymentID string) (entities.PaymentResult, error) {
	var out entities.PaymentResult
	err := c.do(ctx, "status", http.MethodGet, "/payments/"+url.PathEscape(paymentID)+"/status", nil, &out)
	return out, err
}

func (c *HTTPClient) FetchInstallmentOptions(ctx context.Context, productID string) ([]entities.InstallmentOption, error) {
	var out struct {
		Options []entities.InstallmentOption `json:"options"`
	}
	if err := c.do(ctx, "installments", http.MethodGet, "/products/"+url.PathEscape(productID)+"/installments", nil, &out); err != nil {
		return nil, err
	}
	return out.Options, nil
}

type rawResponse struct {
	status int
	body   []byte
}

func (c *HTTPClient) do(ctx context.Context, op, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return &entities.GatewayError{Op: op, Message: "encode request", Err: err}
		}
		body = bytes.NewReader(b)
	}

	result, err := c.breaker.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")
		if in != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.client.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		b, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		if err != nil {
			return nil, err
		}
		raw := rawResponse{status: resp.StatusCode, body: b}
		if resp.StatusCode >= 500 {
			return raw, fmt.Errorf("server error: %d", resp.StatusCode)
		}
		return raw, nil
	})

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			c.log.Warn("[checkout][gateway] circuit breaker open, request blocked",
				zap.String("op", op), zap.String("path", path))
			return &entities.GatewayError{Op: op, Code: "CIRCUIT_OPEN", Message: "payment service temporarily unavailable", Err: err}
		}
		if raw, ok := result.(rawResponse); ok {
			return decodeError(op, raw)
		}
		c.log.Warn("[checkout][gateway] request failed", zap.String("op", op), zap.Error(err))
		return &entities.GatewayError{Op: op, Err: err}
	}

	raw := result.(rawResponse)
	if raw.status >= 300 {
		return decodeError(op, raw)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw.body, out); err != nil {
		return &entities.GatewayError{Op: op, StatusCode: raw.status, Message: "decode response", Err: err}
	}
	return nil
}

func decodeError(op string, raw rawResponse) *entities.GatewayError {
	var body struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	gerr := &entities.GatewayError{Op: op, StatusCode: raw.status}
	if err := json.Unmarshal(raw.body, &body); err == nil {
		gerr.Code, gerr.Message = body.Code, body.Message
	}
	if gerr.Message == "" {
		gerr.Message = http.StatusText(raw.status)
	}
	return gerr
}
