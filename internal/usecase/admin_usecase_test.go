package usecase

import (
	"context"
	"errors"
	"testing"

	"stuff3d_checkout/internal/domain/entities"
	mock_interfaces "stuff3d_checkout/internal/usecase/interfaces/mocks"
	"stuff3d_checkout/pkg/clock"

	"go.uber.org/mock/gomock"
)

type adminMocks struct {
	products *mock_interfaces.MockIProductRepository
	stock    *mock_interfaces.MockIStockRepository
	payments *mock_interfaces.MockIPaymentRepository
}

func newAdminUseCase(t *testing.T) (*AdminUseCase, adminMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := adminMocks{
		products: mock_interfaces.NewMockIProductRepository(ctrl),
		stock:    mock_interfaces.NewMockIStockRepository(ctrl),
		payments: mock_interfaces.NewMockIPaymentRepository(ctrl),
	}
	return NewAdminUseCase(m.products, m.stock, m.payments, clock.NewManual(fixedNow), nil), m
}

var lamp = entities.Product{ID: "6", Name: "Luminária Personalizada", Price: 8000, Category: "Decoração"}

func TestAdminUseCase_Inventory(t *testing.T) {
	t.Run("summary totals every catalog product", func(t *testing.T) {
		uc, m := newAdminUseCase(t)
		m.products.EXPECT().List(gomock.Any()).Return([]entities.Product{miniature, lamp}, nil)
		m.stock.EXPECT().Get(gomock.Any(), "1").Return(entities.Stock{ProductID: "1", Available: 40, Reserved: 2, ReorderLevel: 10}, nil)
		m.stock.EXPECT().Get(gomock.Any(), "6").Return(entities.Stock{ProductID: "6", Available: 8, Reserved: 1, ReorderLevel: 10}, nil)

		got, err := uc.InventorySummary(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.TotalProducts != 2 || got.TotalStock != 48 || got.TotalReserved != 3 {
			t.Fatalf("unexpected totals %+v", got)
		}
		if got.Items[1].Product.Name != lamp.Name || got.Items[1].Stock.Status() != entities.StockStatusLowStock {
			t.Fatalf("unexpected item %+v", got.Items[1])
		}
	})

	t.Run("low stock keeps products at or below the reorder level", func(t *testing.T) {
		uc, m := newAdminUseCase(t)
		m.products.EXPECT().List(gomock.Any()).Return([]entities.Product{miniature, lamp}, nil)
		m.stock.EXPECT().Get(gomock.Any(), "1").Return(entities.Stock{ProductID: "1", Available: 11, ReorderLevel: 10}, nil)
		m.stock.EXPECT().Get(gomock.Any(), "6").Return(entities.Stock{ProductID: "6", Available: 10, ReorderLevel: 10}, nil)

		got, err := uc.LowStock(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].Product.ID != "6" {
			t.Fatalf("expected only the lamp, got %+v", got)
		}
	})

	t.Run("stock errors propagate", func(t *testing.T) {
		uc, m := newAdminUseCase(t)
		m.products.EXPECT().List(gomock.Any()).Return([]entities.Product{miniature}, nil)
		m.stock.EXPECT().Get(gomock.Any(), "1").Return(entities.Stock{}, errors.New("throttled"))

		if _, err := uc.InventorySummary(context.Background()); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("no stock store", func(t *testing.T) {
		uc := NewAdminUseCase(nil, nil, nil, nil, nil)
		if _, err := uc.LowStock(context.Background()); !errors.Is(err, ErrInventoryNotConfigured) {
			t.Fatalf("expected ErrInventoryNotConfigured, got %v", err)
		}
		if _, err := uc.Restock(context.Background(), "1", 5); !errors.Is(err, ErrInventoryNotConfigured) {
			t.Fatalf("expected ErrInventoryNotConfigured, got %v", err)
		}
	})
}

func TestAdminUseCase_Restock(t *testing.T) {
	tests := []struct {
		name      string
		productID string
		quantity  int
		setup     func(m adminMocks)
		wantErr   error
	}{
		{name: "blank id", productID: " ", quantity: 5, setup: func(adminMocks) {}, wantErr: ErrInvalidProductID},
		{name: "zero quantity", productID: "1", quantity: 0, setup: func(adminMocks) {}, wantErr: ErrInvalidRestockQuantity},
		{
			name: "unknown product", productID: "99", quantity: 5, wantErr: ErrProductNotFound,
			setup: func(m adminMocks) {
				m.products.EXPECT().GetByID(gomock.Any(), "99").Return(entities.Product{}, nil)
			},
		},
		{
			name: "adds units", productID: "1", quantity: 5,
			setup: func(m adminMocks) {
				m.products.EXPECT().GetByID(gomock.Any(), "1").Return(miniature, nil)
				m.stock.EXPECT().Restock(gomock.Any(), "1", 5).Return(entities.Stock{ProductID: "1", Available: 15, ReorderLevel: 10}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, m := newAdminUseCase(t)
			tt.setup(m)

			got, err := uc.Restock(context.Background(), tt.productID, tt.quantity)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if tt.wantErr == nil && (got.Stock.Available != 15 || got.Product.Name != miniature.Name) {
				t.Fatalf("unexpected item %+v", got)
			}
		})
	}
}

func TestAdminUseCase_SalesSummary(t *testing.T) {
	uc, m := newAdminUseCase(t)
	m.payments.EXPECT().List(gomock.Any()).Return([]entities.PaymentRecord{
		{ID: "1", Status: entities.PaymentStatusApproved, Amount: 4500},
		{ID: "2", Status: entities.PaymentStatusApproved, Amount: 8000},
		{ID: "3", Status: entities.PaymentStatusPending, Amount: 4500},
	}, nil)

	got, err := uc.SalesSummary(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	approved := got.ByStatus[entities.PaymentStatusApproved]
	if approved.Count != 2 || approved.Total != 12500 {
		t.Fatalf("unexpected approved bucket %+v", approved)
	}
	if got.ByStatus[entities.PaymentStatusPending].Count != 1 {
		t.Fatalf("unexpected buckets %+v", got.ByStatus)
	}
	if _, ok := got.ByStatus[entities.PaymentStatusRejected]; ok {
		t.Fatalf("empty statuses are omitted")
	}
	if !got.LastUpdated.Equal(fixedNow) {
		t.Fatalf("unexpected last_updated %v", got.LastUpdated)
	}

	t.Run("no payment store", func(t *testing.T) {
		uc := NewAdminUseCase(nil, nil, nil, nil, nil)
		if _, err := uc.SalesSummary(context.Background()); !errors.Is(err, ErrPaymentStoreNotConfigured) {
			t.Fatalf("expected ErrPaymentStoreNotConfigured, got %v", err)
		}
	})
}
