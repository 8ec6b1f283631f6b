package email

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"stuff3d_checkout/internal/domain/entities"
	"stuff3d_checkout/internal/infrastructure/config"
)

type sentMessage struct {
	to      Recipient
	subject string
	plain   string
	html    string
}

type fakeProvider struct {
	sent []sentMessage
	err  error
}

func (f *fakeProvider) Send(_ context.Context, to Recipient, subject, plain, html string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMessage{to: to, subject: subject, plain: plain, html: html})
	return nil
}

func testRecord(method entities.PaymentMethod) entities.PaymentRecord {
	return entities.PaymentRecord{
		ID:            "mp-123",
		ProductID:     "1",
		ProductName:   "Luminária Lua",
		Method:        method,
		Status:        entities.PaymentStatusPending,
		Amount:        entities.Money(12990),
		Quantity:      1,
		CustomerName:  "Maria Souza",
		CustomerEmail: "maria@example.com",
	}
}

func TestNotifier_PaymentPending(t *testing.T) {
	tests := []struct {
		name     string
		method   entities.PaymentMethod
		result   entities.PaymentResult
		contains []string
	}{
		{
			name:     "pix carries copy and paste code",
			method:   entities.PaymentMethodPix,
			result:   entities.PaymentResult{QRCode: "00020126PIXCODE"},
			contains: []string{"PIX", "00020126PIXCODE"},
		},
		{
			name:     "boleto carries barcode and ticket",
			method:   entities.PaymentMethodBoleto,
			result:   entities.PaymentResult{Barcode: "34191.79001", TicketURL: "https://mp.example/ticket/1"},
			contains: []string{"Boleto Bancário", "34191.79001", "https://mp.example/ticket/1"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &fakeProvider{}
			n := NewNotifier(provider, "+55 (19) 97163-6969", nil)

			if err := n.PaymentPending(context.Background(), testRecord(tt.method), tt.result); err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if len(provider.sent) != 1 {
				t.Fatalf("expected 1 message, got %d", len(provider.sent))
			}
			msg := provider.sent[0]
			if msg.to.Email != "maria@example.com" || msg.to.Name != "Maria Souza" {
				t.Fatalf("unexpected recipient: %+v", msg.to)
			}
			if msg.subject != "⏳ Aguardando pagamento - Luminária Lua - 3D Stuff" {
				t.Fatalf("unexpected subject: %q", msg.subject)
			}
			for _, want := range tt.contains {
				if !strings.Contains(msg.plain, want) {
					t.Fatalf("plain body missing %q:\n%s", want, msg.plain)
				}
				if !strings.Contains(msg.html, want) {
					t.Fatalf("html body missing %q", want)
				}
			}
			if !strings.Contains(msg.html, "Olá, Maria!") {
				t.Fatalf("html should greet by first name")
			}
			if !strings.Contains(msg.html, "(19) 97163-6969") {
				t.Fatalf("html should carry the whatsapp label")
			}
		})
	}
}

func TestNotifier_PaymentApproved(t *testing.T) {
	provider := &fakeProvider{}
	n := NewNotifier(provider, "5519971636969", nil)
	rec := testRecord(entities.PaymentMethodCreditCard)
	rec.Status = entities.PaymentStatusApproved

	if err := n.PaymentApproved(context.Background(), rec); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(provider.sent) != 1 {
		t.Fatalf("expected 1 message, got %d", len(provider.sent))
	}
	msg := provider.sent[0]
	if msg.subject != "✅ Pedido confirmado - Luminária Lua - 3D Stuff" {
		t.Fatalf("unexpected subject: %q", msg.subject)
	}
	for _, want := range []string{"Cartão de Crédito", "mp-123", "https://wa.me/5519971636969?text="} {
		if !strings.Contains(msg.html, want) {
			t.Fatalf("html body missing %q", want)
		}
	}
}

func TestNotifier_SkipsAndErrors(t *testing.T) {
	t.Run("no customer email", func(t *testing.T) {
		provider := &fakeProvider{}
		n := NewNotifier(provider, "", nil)
		rec := testRecord(entities.PaymentMethodPix)
		rec.CustomerEmail = ""

		if err := n.PaymentApproved(context.Background(), rec); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(provider.sent) != 0 {
			t.Fatalf("expected no message, got %d", len(provider.sent))
		}
	})

	t.Run("provider error is returned", func(t *testing.T) {
		boom := errors.New("boom")
		n := NewNotifier(&fakeProvider{err: boom}, "", nil)

		err := n.PaymentApproved(context.Background(), testRecord(entities.PaymentMethodPix))
		if !errors.Is(err, boom) {
			t.Fatalf("expected boom, got %v", err)
		}
	})

	t.Run("without provider the message is logged", func(t *testing.T) {
		core, logs := observer.New(zapcore.InfoLevel)
		n := NewFromConfig(config.EmailConfig{}, "", zap.New(core))
		if n.Enabled() {
			t.Fatalf("notifier without api key should be disabled")
		}

		err := n.PaymentPending(context.Background(), testRecord(entities.PaymentMethodPix), entities.PaymentResult{})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		entries := logs.FilterMessageSnippet("provider not configured").All()
		if len(entries) != 1 {
			t.Fatalf("expected 1 log entry, got %d", len(entries))
		}
		if got := entries[0].ContextMap()["to"]; got != "maria@example.com" {
			t.Fatalf("unexpected logged recipient: %v", got)
		}
	})

	t.Run("api key enables sendgrid", func(t *testing.T) {
		n := NewFromConfig(config.EmailConfig{SendGridAPIKey: "SG.key", SenderEmail: "noreply@3dstuff.com.br", SenderName: "3D Stuff"}, "", nil)
		if !n.Enabled() {
			t.Fatalf("notifier with api key should be enabled")
		}
	})
}

type fakeSendClient struct {
	got      *mail.SGMailV3
	response *rest.Response
	err      error
}

func (f *fakeSendClient) SendWithContext(_ context.Context, email *mail.SGMailV3) (*rest.Response, error) {
	f.got = email
	return f.response, f.err
}

func TestSendGridProvider_Send(t *testing.T) {
	tests := []struct {
		name    string
		client  *fakeSendClient
		wantErr bool
	}{
		{name: "accepted", client: &fakeSendClient{response: &rest.Response{StatusCode: 202}}},
		{name: "rejected by api", client: &fakeSendClient{response: &rest.Response{StatusCode: 401, Body: "unauthorized"}}, wantErr: true},
		{name: "transport error", client: &fakeSendClient{err: errors.New("dial tcp")}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewSendGridProvider("SG.key", "noreply@3dstuff.com.br", "3D Stuff")
			p.client = tt.client

			err := p.Send(context.Background(), Recipient{Name: "Maria", Email: "maria@example.com"}, "assunto", "texto", "<p>html</p>")
			if (err != nil) != tt.wantErr {
				t.Fatalf("wantErr=%v, got %v", tt.wantErr, err)
			}
			if tt.client.got == nil {
				t.Fatalf("client was not called")
			}
			if tt.client.got.From.Address != "noreply@3dstuff.com.br" || tt.client.got.Subject != "assunto" {
				t.Fatalf("unexpected message: from=%s subject=%s", tt.client.got.From.Address, tt.client.got.Subject)
			}
			to := tt.client.got.Personalizations[0].To[0]
			if to.Address != "maria@example.com" {
				t.Fatalf("unexpected recipient %s", to.Address)
			}
		})
	}
}

func TestWhatsAppLabel(t *testing.T) {
	if got := whatsAppLabel("5519971636969"); got != "(19) 97163-6969" {
		t.Fatalf("got %q", got)
	}
	if got := whatsAppLabel("123"); got != "123" {
		t.Fatalf("got %q", got)
	}
}
