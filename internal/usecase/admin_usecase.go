package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"stuff3d_checkout/internal/domain/entities"
	"stuff3d_checkout/internal/usecase/interfaces"
	"stuff3d_checkout/pkg/clock"
)

var (
	ErrInventoryNotConfigured    = errors.New("inventory store not configured")
	ErrPaymentStoreNotConfigured = errors.New("payment store not configured")
	ErrInvalidRestockQuantity    = errors.New("restock quantity must be at least 1")
)

// InventoryItem is the stock position of one catalog product.
type InventoryItem struct {
	Product entities.Product
	Stock   entities.Stock
}

type InventorySummary struct {
	TotalProducts int
	TotalStock    int
	TotalReserved int
	Items         []InventoryItem
}

// SalesBucket aggregates the payments sharing a status.
type SalesBucket struct {
	Count int
	Total entities.Money
}

type SalesSummary struct {
	ByStatus    map[entities.PaymentStatus]SalesBucket
	LastUpdated time.Time
}

// IAdminUseCase is the back-office view over stock and sales.
//
//   - GET /admin/inventory/summary => InventorySummary()
//   - GET /admin/inventory/low-stock => LowStock()
//   - POST /admin/inventory/restock/{id}?quantity= => Restock()
//   - GET /admin/sales/summary => SalesSummary()
type IAdminUseCase interface {
	InventorySummary(ctx context.Context) (InventorySummary, error)
	LowStock(ctx context.Context) ([]InventoryItem, error)
	Restock(ctx context.Context, productID string, quantity int) (InventoryItem, error)
	SalesSummary(ctx context.Context) (SalesSummary, error)
}

type AdminUseCase struct {
	products interfaces.IProductRepository
	stock    interfaces.IStockRepository
	payments interfaces.IPaymentRepository
	clock    clock.Clock
	log      *zap.Logger
}

var _ IAdminUseCase = (*AdminUseCase)(nil)

// NewAdminUseCase accepts nil stock or payments; the matching reports then
// fail with ErrInventoryNotConfigured or ErrPaymentStoreNotConfigured.
func NewAdminUseCase(products interfaces.IProductRepository, stock interfaces.IStockRepository, payments interfaces.IPaymentRepository, clk clock.Clock, log *zap.Logger) *AdminUseCase {
	if clk == nil {
		clk = clock.New()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &AdminUseCase{products: products, stock: stock, payments: payments, clock: clk, log: log}
}

// InventorySummary reports every catalog product. Products never sold are
// seeded with the default stock on the way.
func (u *AdminUseCase) InventorySummary(ctx context.Context) (InventorySummary, error) {
	items, err := u.inventory(ctx)
	if err != nil {
		return InventorySummary{}, err
	}
	summary := InventorySummary{TotalProducts: len(items), Items: items}
	for _, it := range items {
		summary.TotalStock += it.Stock.Available
		summary.TotalReserved += it.Stock.Reserved
	}
	return summary, nil
}

func (u *AdminUseCase) LowStock(ctx context.Context) ([]InventoryItem, error) {
	items, err := u.inventory(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Filter(items, func(it InventoryItem, _ int) bool {
		return it.Stock.NeedsRestock()
	}), nil
}

func (u *AdminUseCase) Restock(ctx context.Context, productID string, quantity int) (InventoryItem, error) {
	if u.stock == nil {
		return InventoryItem{}, ErrInventoryNotConfigured
	}
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return InventoryItem{}, ErrInvalidProductID
	}
	if quantity < 1 {
		return InventoryItem{}, ErrInvalidRestockQuantity
	}
	product, err := u.products.GetByID(ctx, productID)
	if err != nil {
		return InventoryItem{}, err
	}
	if product.ID == "" {
		return InventoryItem{}, ErrProductNotFound
	}

	stock, err := u.stock.Restock(ctx, productID, quantity)
	if err != nil {
		u.log.Error("[admin][usecase] restock failed", zap.String("product_id", productID), zap.Error(err))
		return InventoryItem{}, err
	}
	u.log.Info("[admin][usecase] product restocked",
		zap.String("product_id", productID),
		zap.Int("quantity", quantity),
		zap.Int("available", stock.Available))
	return InventoryItem{Product: product, Stock: stock}, nil
}

// SalesSummary groups every recorded payment by status.
func (u *AdminUseCase) SalesSummary(ctx context.Context) (SalesSummary, error) {
	if u.payments == nil {
		return SalesSummary{}, ErrPaymentStoreNotConfigured
	}
	records, err := u.payments.List(ctx)
	if err != nil {
		u.log.Error("[admin][usecase] payment scan failed", zap.Error(err))
		return SalesSummary{}, err
	}
	grouped := lo.GroupBy(records, func(r entities.PaymentRecord) entities.PaymentStatus {
		return r.Status
	})
	return SalesSummary{
		ByStatus: lo.MapValues(grouped, func(rs []entities.PaymentRecord, _ entities.PaymentStatus) SalesBucket {
			return SalesBucket{
				Count: len(rs),
				Total: lo.SumBy(rs, func(r entities.PaymentRecord) entities.Money { return r.Amount }),
			}
		}),
		LastUpdated: u.clock.Now().UTC(),
	}, nil
}

func (u *AdminUseCase) inventory(ctx context.Context) ([]InventoryItem, error) {
	if u.stock == nil {
		return nil, ErrInventoryNotConfigured
	}
	products, err := u.products.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]InventoryItem, 0, len(products))
	for _, p := range products {
		s, err := u.stock.Get(ctx, p.ID)
		if err != nil {
			u.log.Error("[admin][usecase] stock lookup failed", zap.String("product_id", p.ID), zap.Error(err))
			return nil, err
		}
		items = append(items, InventoryItem{Product: p, Stock: s})
	}
	return items, nil
}
