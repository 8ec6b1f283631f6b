package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"stuff3d_checkout/internal/domain/entities"
	"stuff3d_checkout/internal/usecase/interfaces"
)

var (
	ErrProductNotFound       = errors.New("product not found")
	ErrInvalidContactMessage = errors.New("name, email and message are required")
	ErrWhatsAppNotConfigured = errors.New("store whatsapp number not configured")
)

// IProductUseCase exposes the catalog and the order-by-message shortcuts.
//
//   - GET /products?category= => List()
//   - GET /products/{id} => GetByID()
//   - GET /products/categories => Categories()
//   - GET /products/{id}/whatsapp => WhatsAppOrderLink()
//   - POST /contact => ContactLink()
type IProductUseCase interface {
	List(ctx context.Context, category string) ([]entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	Categories(ctx context.Context) ([]string, error)
	WhatsAppOrderLink(ctx context.Context, productID string, quantity int, customerName string) (string, error)
	ContactLink(name, email, message string) (string, error)
}

type ProductUseCase struct {
	repo     interfaces.IProductRepository
	whatsapp string
	log      *zap.Logger
}

var _ IProductUseCase = (*ProductUseCase)(nil)

// NewProductUseCase takes the store WhatsApp number in international format,
// digits only (e.g. 5519971636969).
func NewProductUseCase(repo interfaces.IProductRepository, whatsappNumber string, log *zap.Logger) *ProductUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &ProductUseCase{repo: repo, whatsapp: entities.DigitsOnly(whatsappNumber), log: log}
}

func (u *ProductUseCase) List(ctx context.Context, category string) ([]entities.Product, error) {
	products, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	category = strings.TrimSpace(category)
	if category == "" || category == entities.AllCategories {
		return products, nil
	}
	return lo.Filter(products, func(p entities.Product, _ int) bool {
		return p.Category == category
	}), nil
}

func (u *ProductUseCase) GetByID(ctx context.Context, id string) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidProductID
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if p.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return p, nil
}

// Categories lists "Todos" followed by the distinct product categories in
// catalog order.
func (u *ProductUseCase) Categories(ctx context.Context) ([]string, error) {
	products, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	categories := lo.Uniq(lo.FilterMap(products, func(p entities.Product, _ int) (string, bool) {
		return p.Category, p.Category != ""
	}))
	return append([]string{entities.AllCategories}, categories...), nil
}

// WhatsAppOrderLink builds a wa.me deep link with a pre-filled order message.
// It bypasses the payment gateway entirely.
func (u *ProductUseCase) WhatsAppOrderLink(ctx context.Context, productID string, quantity int, customerName string) (string, error) {
	if quantity < 1 {
		return "", ErrInvalidQuantity
	}
	if u.whatsapp == "" {
		return "", ErrWhatsAppNotConfigured
	}
	p, err := u.GetByID(ctx, productID)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("Olá!")
	if name := strings.TrimSpace(customerName); name != "" {
		fmt.Fprintf(&b, " Meu nome é *%s*.", name)
	}
	b.WriteString(" Tenho interesse no produto:\n\n")
	fmt.Fprintf(&b, "🛍️ *%s*\n", p.Name)
	fmt.Fprintf(&b, "💰 Preço: %s\n", p.Price)
	fmt.Fprintf(&b, "📦 Quantidade: %d\n", quantity)
	fmt.Fprintf(&b, "🆔 Código: %s\n", p.ID)
	if p.Description != "" {
		fmt.Fprintf(&b, "\n📝 Descrição: %s\n", p.Description)
	}
	b.WriteString("\nGostaria de mais informações sobre disponibilidade e formas de pagamento.\n\nObrigado!")

	u.log.Debug("[product][usecase] whatsapp order link", zap.String("product_id", p.ID), zap.Int("quantity", quantity))
	return u.waLink(b.String()), nil
}

// ContactLink turns the contact form into a wa.me link.
func (u *ProductUseCase) ContactLink(name, email, message string) (string, error) {
	name, email, message = strings.TrimSpace(name), strings.TrimSpace(email), strings.TrimSpace(message)
	if name == "" || email == "" || message == "" {
		return "", ErrInvalidContactMessage
	}
	if u.whatsapp == "" {
		return "", ErrWhatsAppNotConfigured
	}
	text := fmt.Sprintf("Olá! Meu nome é *%s*.\n\n📧 Email: %s\n\n💬 Mensagem: %s\n\nAguardo retorno. Obrigado!", name, email, message)
	return u.waLink(text), nil
}

func (u *ProductUseCase) waLink(text string) string {
	return fmt.Sprintf("https://wa.me/%s?%s", u.whatsapp, url.Values{"text": {text}}.Encode())
}
