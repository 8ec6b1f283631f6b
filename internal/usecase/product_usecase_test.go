package usecase

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"

	"stuff3d_checkout/internal/domain/entities"
	mock_interfaces "stuff3d_checkout/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var catalog = []entities.Product{
	{ID: "1", Name: "Miniatura de Personagem", Price: 4500, Category: "Miniaturas", Description: "Miniaturas detalhadas de personagens famosos"},
	{ID: "2", Name: "Suporte para Celular", Price: 2500, Category: "Acessórios"},
	{ID: "3", Name: "Chaveiros Personalizados", Price: 1500, Category: "Acessórios"},
}

func newProductUseCase(t *testing.T) (*ProductUseCase, *mock_interfaces.MockIProductRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIProductRepository(ctrl)
	return NewProductUseCase(repo, "+55 (19) 97163-6969", nil), repo
}

func TestProductUseCase_List(t *testing.T) {
	tests := []struct {
		name     string
		category string
		want     int
	}{
		{name: "empty means all", category: "", want: 3},
		{name: "Todos means all", category: "Todos", want: 3},
		{name: "filter", category: "Acessórios", want: 2},
		{name: "unknown category", category: "Brinquedos", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, repo := newProductUseCase(t)
			repo.EXPECT().List(gomock.Any()).Return(catalog, nil)

			got, err := uc.List(context.Background(), tt.category)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != tt.want {
				t.Fatalf("expected %d products, got %d", tt.want, len(got))
			}
		})
	}
}

func TestProductUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc, _ := newProductUseCase(t)
		if _, err := uc.GetByID(context.Background(), ""); !errors.Is(err, ErrInvalidProductID) {
			t.Fatalf("expected ErrInvalidProductID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, repo := newProductUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "9").Return(entities.Product{}, nil)
		if _, err := uc.GetByID(context.Background(), "9"); !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		uc, repo := newProductUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "1").Return(catalog[0], nil)
		got, err := uc.GetByID(context.Background(), "1")
		if err != nil || got.Name != "Miniatura de Personagem" {
			t.Fatalf("unexpected product %+v err=%v", got, err)
		}
	})
}

func TestProductUseCase_Categories(t *testing.T) {
	uc, repo := newProductUseCase(t)
	repo.EXPECT().List(gomock.Any()).Return(catalog, nil)

	got, err := uc.Categories(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"Todos", "Miniaturas", "Acessórios"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestProductUseCase_WhatsAppOrderLink(t *testing.T) {
	t.Run("builds the order message", func(t *testing.T) {
		uc, repo := newProductUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "1").Return(catalog[0], nil)

		link, err := uc.WhatsAppOrderLink(context.Background(), "1", 2, "Maria")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		u, err := url.Parse(link)
		if err != nil {
			t.Fatalf("invalid link: %v", err)
		}
		if u.Host != "wa.me" || u.Path != "/5519971636969" {
			t.Fatalf("unexpected link target %s", link)
		}
		text := u.Query().Get("text")
		for _, want := range []string{"Meu nome é *Maria*", "*Miniatura de Personagem*", "R$ 45,00", "Quantidade: 2", "Código: 1"} {
			if !strings.Contains(text, want) {
				t.Fatalf("expected message to contain %q, got %q", want, text)
			}
		}
	})

	t.Run("without customer name", func(t *testing.T) {
		uc, repo := newProductUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "2").Return(catalog[1], nil)

		link, err := uc.WhatsAppOrderLink(context.Background(), "2", 1, " ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		u, _ := url.Parse(link)
		if strings.Contains(u.Query().Get("text"), "Meu nome") {
			t.Fatalf("did not expect a name in %q", u.Query().Get("text"))
		}
	})

	t.Run("invalid quantity", func(t *testing.T) {
		uc, _ := newProductUseCase(t)
		if _, err := uc.WhatsAppOrderLink(context.Background(), "1", 0, ""); !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("expected ErrInvalidQuantity, got %v", err)
		}
	})

	t.Run("number not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := NewProductUseCase(mock_interfaces.NewMockIProductRepository(ctrl), "", nil)
		if _, err := uc.WhatsAppOrderLink(context.Background(), "1", 1, ""); !errors.Is(err, ErrWhatsAppNotConfigured) {
			t.Fatalf("expected ErrWhatsAppNotConfigured, got %v", err)
		}
	})
}

func TestProductUseCase_ContactLink(t *testing.T) {
	uc, _ := newProductUseCase(t)

	if _, err := uc.ContactLink("Ana", "", "oi"); !errors.Is(err, ErrInvalidContactMessage) {
		t.Fatalf("expected ErrInvalidContactMessage, got %v", err)
	}

	link, err := uc.ContactLink("Ana", "ana@example.com", "Vocês fazem peças sob encomenda?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	u, _ := url.Parse(link)
	text := u.Query().Get("text")
	if !strings.Contains(text, "*Ana*") || !strings.Contains(text, "ana@example.com") || !strings.Contains(text, "sob encomenda") {
		t.Fatalf("unexpected message %q", text)
	}
}
