package interfaces

import (
	"context"
	"errors"

	"stuff3d_checkout/internal/domain/entities"
)

// ErrInsufficientStock is returned when a conditional stock update fails
// because the product does not hold enough units.
var ErrInsufficientStock = errors.New("insufficient stock")

// IStockRepository abstracts the inventory table.
//
// Every mutation is a single conditional update: quantities never go negative
// and concurrent reservations cannot oversell.
//   - Get seeds a product with entities.DefaultInitialStock on first access
//   - Reserve fails with ErrInsufficientStock when available < quantity
//   - ConfirmSale and Release fail with ErrInsufficientStock when reserved < quantity
//   - List returns stock positions ordered by product id
type IStockRepository interface {
	Get(ctx context.Context, productID string) (entities.Stock, error)
	Reserve(ctx context.Context, productID string, quantity int) (entities.Stock, error)
	ConfirmSale(ctx context.Context, productID string, quantity int) (entities.Stock, error)
	Release(ctx context.Context, productID string, quantity int) (entities.Stock, error)
	Restock(ctx context.Context, productID string, quantity int) (entities.Stock, error)
	List(ctx context.Context) ([]entities.Stock, error)
}
