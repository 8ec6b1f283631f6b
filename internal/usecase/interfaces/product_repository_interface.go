package interfaces

import (
	"context"
	"stuff3d_checkout/internal/domain/entities"
)

// IProductRepository abstracts the product catalog source.
//
// The catalog is the source of truth for prices: the payment use case never
// trusts an amount sent by the client.
//   - GetByID returns a zero product (empty ID) when the id is unknown
//   - List returns products ordered by id

type IProductRepository interface {
	List(ctx context.Context) ([]entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
}

// IInstallmentCache caches computed installment tiers per product.
// Get reports found=false on a miss.
type IInstallmentCache interface {
	Get(ctx context.Context, productID string) (options []entities.InstallmentOption, found bool, err error)
	Set(ctx context.Context, productID string, options []entities.InstallmentOption) error
}
