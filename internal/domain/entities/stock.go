package entities

import "time"

// StockStatus is derived from the available quantity and the reorder level.
type StockStatus string

const (
	StockStatusInStock    StockStatus = "in_stock"
	StockStatusLowStock   StockStatus = "low_stock"
	StockStatusOutOfStock StockStatus = "out_of_stock"
)

const (
	// DefaultInitialStock seeds a product the first time its stock is read.
	DefaultInitialStock = 50
	DefaultReorderLevel = 10
)

// Stock is the inventory position of one product.
//
// Reserve moves units from Available to Reserved; ConfirmSale moves them from
// Reserved to Sold; Release moves them back to Available.
//
// Storage model (DynamoDB):
//   - PK: product_id
type Stock struct {
	ProductID    string    `json:"product_id"`
	Available    int       `json:"available"`
	Reserved     int       `json:"reserved"`
	Sold         int       `json:"sold"`
	ReorderLevel int       `json:"reorder_level"`
	UpdatedAt    time.Time `json:"last_updated"`
}

func NewStock(productID string, initial int) Stock {
	return Stock{ProductID: productID, Available: initial, ReorderLevel: DefaultReorderLevel}
}

func (s Stock) Status() StockStatus {
	switch {
	case s.Available <= 0:
		return StockStatusOutOfStock
	case s.Available <= s.ReorderLevel:
		return StockStatusLowStock
	default:
		return StockStatusInStock
	}
}

func (s Stock) NeedsRestock() bool {
	return s.Available <= s.ReorderLevel
}

// Total counts the units still held by the store (available plus reserved).
func (s Stock) Total() int {
	return s.Available + s.Reserved
}

func (s Stock) CanFulfill(quantity int) bool {
	return quantity > 0 && s.Available >= quantity
}
