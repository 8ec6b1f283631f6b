package payments

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"stuff3d_checkout/internal/usecase/interfaces"
	"stuff3d_checkout/pkg/clock"
)

// Card tokens containing these markers force the matching mock outcome.
const (
	mockCardRejectMarker  = "REJECT"
	mockCardPendingMarker = "PENDING"
)

type mockPayment struct {
	createdAt time.Time
	body      map[string]any
}

// mockStore imitates the provider closely enough to drive the checkout end
// to end: PIX and boleto start pending, cards are approved unless the token
// says otherwise, and PIX payments approve after approveAfter.
type mockStore struct {
	mu           sync.Mutex
	clock        clock.Clock
	approveAfter time.Duration
	seq          int64
	payments     map[string]*mockPayment
}

func newMockStore(c clock.Clock, approveAfter time.Duration) *mockStore {
	if c == nil {
		c = clock.New()
	}
	return &mockStore{clock: c, approveAfter: approveAfter, payments: map[string]*mockPayment{}}
}

func (s *mockStore) create(requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	body := map[string]any{}
	if len(requestPayload) > 0 && json.Valid(requestPayload) {
		if err := json.Unmarshal(requestPayload, &body); err != nil {
			body = map[string]any{"request_payload_raw": string(requestPayload)}
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now().UTC()
	s.seq++
	id := strconv.FormatInt(now.UnixNano()/int64(time.Millisecond)*1000+s.seq%1000, 10)

	body["id"] = id
	body["date_created"] = now.Format(time.RFC3339Nano)
	methodID, _ := body["payment_method_id"].(string)

	switch methodID {
	case "pix":
		body["payment_type_id"] = "bank_transfer"
		body["status"] = "pending"
		body["status_detail"] = "pending_waiting_transfer"
		qr := fmt.Sprintf("00020126580014br.gov.bcb.pix0136mock-%s5204000053039865802BR5908STUFF3D6009CAMPINAS62070503***6304ABCD", id)
		body["point_of_interaction"] = map[string]any{
			"transaction_data": map[string]any{
				"qr_code":        qr,
				"qr_code_base64": base64.StdEncoding.EncodeToString([]byte(qr)),
				"ticket_url":     "https://www.mercadopago.com.br/payments/" + id + "/ticket",
			},
		}
	case "bolbradesco":
		body["payment_type_id"] = "ticket"
		body["status"] = "pending"
		body["status_detail"] = "pending_waiting_payment"
		barcode := "23793381286000" + id
		body["barcode"] = map[string]any{"content": barcode}
		body["transaction_details"] = map[string]any{
			"external_resource_url": "https://www.mercadopago.com.br/payments/" + id + "/ticket?caller_id=mock",
			"digitable_line":        barcode,
		}
	default:
		body["payment_type_id"] = "credit_card"
		token, _ := body["token"].(string)
		switch {
		case strings.Contains(strings.ToUpper(token), mockCardRejectMarker):
			body["status"] = "rejected"
			body["status_detail"] = "cc_rejected_other_reason"
		case strings.Contains(strings.ToUpper(token), mockCardPendingMarker):
			body["status"] = "in_process"
			body["status_detail"] = "pending_contingency"
		default:
			body["status"] = "approved"
			body["status_detail"] = "accredited"
			body["date_approved"] = now.Format(time.RFC3339Nano)
		}
	}

	b, err := json.Marshal(body)
	if err != nil {
		return "", "", nil, err
	}
	s.payments[id] = &mockPayment{createdAt: now, body: body}
	return id, body["status"].(string), b, nil
}

func (s *mockStore) get(id string) (string, json.RawMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.payments[strings.TrimSpace(id)]
	if !ok {
		return "", nil, fmt.Errorf("%w: %q", interfaces.ErrProviderPaymentNotFound, id)
	}

	now := s.clock.Now().UTC()
	if p.body["payment_method_id"] == "pix" && p.body["status"] == "pending" &&
		s.approveAfter > 0 && now.Sub(p.createdAt) >= s.approveAfter {
		p.body["status"] = "approved"
		p.body["status_detail"] = "accredited"
		p.body["date_approved"] = now.Format(time.RFC3339Nano)
	}

	b, err := json.Marshal(p.body)
	if err != nil {
		return "", nil, err
	}
	return p.body["status"].(string), b, nil
}
