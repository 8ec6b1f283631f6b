// Package email sends the customer e-mails of the checkout.
package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"stuff3d_checkout/internal/domain/entities"
	"stuff3d_checkout/internal/infrastructure/config"
	"stuff3d_checkout/internal/usecase/interfaces"
)

// Notifier renders payment e-mails and hands them to a Provider. Without a
// provider the messages are only logged.
type Notifier struct {
	provider Provider
	whatsapp string
	log      *zap.Logger
}

var _ interfaces.INotifier = (*Notifier)(nil)

// NewNotifier takes the store WhatsApp number as digits (5519971636969).
func NewNotifier(provider Provider, whatsapp string, log *zap.Logger) *Notifier {
	if log == nil {
		log = zap.NewNop()
	}
	return &Notifier{provider: provider, whatsapp: entities.DigitsOnly(whatsapp), log: log}
}

// NewFromConfig uses SendGrid when an API key is configured.
func NewFromConfig(cfg config.EmailConfig, whatsapp string, log *zap.Logger) *Notifier {
	var provider Provider
	if cfg.SendGridAPIKey != "" {
		provider = NewSendGridProvider(cfg.SendGridAPIKey, cfg.SenderEmail, cfg.SenderName)
	}
	return NewNotifier(provider, whatsapp, log)
}

func (n *Notifier) Enabled() bool { return n.provider != nil }

type messageData struct {
	CustomerName  string
	ProductName   string
	Quantity      int
	Amount        string
	Method        string
	MethodLabel   string
	PaymentID     string
	QRCode        string
	TicketURL     string
	Barcode       string
	WhatsAppLabel string
	WhatsAppURL   string
}

func (n *Notifier) PaymentApproved(ctx context.Context, rec entities.PaymentRecord) error {
	data := n.data(rec)
	subject := fmt.Sprintf("✅ Pedido confirmado - %s - 3D Stuff", rec.ProductName)
	plain := fmt.Sprintf("Olá, %s!\n\nSeu pagamento de %s para %s foi aprovado.\nID do pagamento: %s\n\nO produto entra em produção em até 24h.",
		data.CustomerName, data.Amount, rec.ProductName, rec.ID)
	return n.send(ctx, rec, subject, plain, approvedHTML, data)
}

func (n *Notifier) PaymentPending(ctx context.Context, rec entities.PaymentRecord, result entities.PaymentResult) error {
	data := n.data(rec)
	data.QRCode = result.QRCode
	data.TicketURL = result.TicketURL
	data.Barcode = result.Barcode

	subject := fmt.Sprintf("⏳ Aguardando pagamento - %s - 3D Stuff", rec.ProductName)
	var plain strings.Builder
	fmt.Fprintf(&plain, "Olá, %s!\n\nRecebemos seu pedido de %s (%s) e aguardamos o pagamento via %s.\nID do pedido: %s\n",
		data.CustomerName, rec.ProductName, data.Amount, data.MethodLabel, rec.ID)
	if data.QRCode != "" {
		fmt.Fprintf(&plain, "\nPIX copia e cola:\n%s\n", data.QRCode)
	}
	if data.Barcode != "" {
		fmt.Fprintf(&plain, "\nCódigo de barras: %s\n", data.Barcode)
	}
	if data.TicketURL != "" {
		fmt.Fprintf(&plain, "\nInstruções: %s\n", data.TicketURL)
	}
	return n.send(ctx, rec, subject, plain.String(), pendingHTML, data)
}

func (n *Notifier) send(ctx context.Context, rec entities.PaymentRecord, subject, plain string, tmpl *template.Template, data messageData) error {
	if rec.CustomerEmail == "" {
		n.log.Warn("[email][notifier] record has no customer email", zap.String("payment_id", rec.ID))
		return nil
	}
	if n.provider == nil {
		n.log.Info("[email][notifier] email provider not configured; message logged only",
			zap.String("payment_id", rec.ID),
			zap.String("to", rec.CustomerEmail),
			zap.String("subject", subject))
		return nil
	}

	var html bytes.Buffer
	if err := tmpl.Execute(&html, data); err != nil {
		return fmt.Errorf("render %s email: %w", tmpl.Name(), err)
	}
	to := Recipient{Name: rec.CustomerName, Email: rec.CustomerEmail}
	if err := n.provider.Send(ctx, to, subject, plain, html.String()); err != nil {
		return err
	}
	n.log.Info("[email][notifier] email sent",
		zap.String("payment_id", rec.ID),
		zap.String("template", tmpl.Name()))
	return nil
}

func (n *Notifier) data(rec entities.PaymentRecord) messageData {
	d := messageData{
		CustomerName: firstName(rec.CustomerName),
		ProductName:  rec.ProductName,
		Quantity:     rec.Quantity,
		Amount:       rec.Amount.String(),
		Method:       string(rec.Method),
		MethodLabel:  methodLabel(rec.Method),
		PaymentID:    rec.ID,
	}
	if n.whatsapp != "" {
		d.WhatsAppLabel = whatsAppLabel(n.whatsapp)
		d.WhatsAppURL = fmt.Sprintf("https://wa.me/%s?%s", n.whatsapp,
			url.Values{"text": {"Olá! Tenho uma dúvida sobre meu pedido " + rec.ID}}.Encode())
	}
	return d
}

func methodLabel(m entities.PaymentMethod) string {
	switch m {
	case entities.PaymentMethodPix:
		return "PIX"
	case entities.PaymentMethodCreditCard:
		return "Cartão de Crédito"
	case entities.PaymentMethodBoleto:
		return "Boleto Bancário"
	default:
		return string(m)
	}
}

func firstName(name string) string {
	if fields := strings.Fields(name); len(fields) > 0 {
		return fields[0]
	}
	return "cliente"
}

// whatsAppLabel formats 5519971636969 as (19) 97163-6969.
func whatsAppLabel(digits string) string {
	local := strings.TrimPrefix(digits, "55")
	if len(local) != 11 {
		return digits
	}
	return fmt.Sprintf("(%s) %s-%s", local[:2], local[2:7], local[7:])
}
