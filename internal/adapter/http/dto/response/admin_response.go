package response

import (
	"time"

	"stuff3d_checkout/internal/domain/entities"
	"stuff3d_checkout/internal/usecase"
)

type InventoryItemResponse struct {
	ProductID    string         `json:"product_id"`
	ProductName  string         `json:"product_name"`
	Category     string         `json:"category,omitempty"`
	Price        entities.Money `json:"price"`
	Available    int            `json:"available"`
	Reserved     int            `json:"reserved"`
	Sold         int            `json:"sold"`
	ReorderLevel int            `json:"reorder_level"`
	Status       string         `json:"status"`
	NeedsRestock bool           `json:"needs_restock"`
}

type InventorySummaryResponse struct {
	TotalProducts int                     `json:"total_products"`
	TotalStock    int                     `json:"total_stock"`
	TotalReserved int                     `json:"total_reserved"`
	Products      []InventoryItemResponse `json:"products"`
}

type LowStockResponse struct {
	AlertCount       int                     `json:"alert_count"`
	LowStockProducts []InventoryItemResponse `json:"low_stock_products"`
}

type RestockResponse struct {
	Success       bool                  `json:"success"`
	Message       string                `json:"message"`
	ProductID     string                `json:"product_id"`
	QuantityAdded int                   `json:"quantity_added"`
	Stock         InventoryItemResponse `json:"stock"`
}

type SalesBucketResponse struct {
	Count       int            `json:"count"`
	TotalAmount entities.Money `json:"total_amount"`
	TotalLabel  string         `json:"total_label"`
}

type SalesSummaryResponse struct {
	SalesSummary map[string]SalesBucketResponse `json:"sales_summary"`
	LastUpdated  time.Time                      `json:"last_updated"`
}

func FromInventoryItem(it usecase.InventoryItem) InventoryItemResponse {
	return InventoryItemResponse{
		ProductID:    it.Product.ID,
		ProductName:  it.Product.Name,
		Category:     it.Product.Category,
		Price:        it.Product.Price,
		Available:    it.Stock.Available,
		Reserved:     it.Stock.Reserved,
		Sold:         it.Stock.Sold,
		ReorderLevel: it.Stock.ReorderLevel,
		Status:       string(it.Stock.Status()),
		NeedsRestock: it.Stock.NeedsRestock(),
	}
}

func FromInventoryItems(items []usecase.InventoryItem) []InventoryItemResponse {
	out := make([]InventoryItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, FromInventoryItem(it))
	}
	return out
}

func FromInventorySummary(s usecase.InventorySummary) InventorySummaryResponse {
	return InventorySummaryResponse{
		TotalProducts: s.TotalProducts,
		TotalStock:    s.TotalStock,
		TotalReserved: s.TotalReserved,
		Products:      FromInventoryItems(s.Items),
	}
}

func FromLowStock(items []usecase.InventoryItem) LowStockResponse {
	return LowStockResponse{AlertCount: len(items), LowStockProducts: FromInventoryItems(items)}
}

func FromSalesSummary(s usecase.SalesSummary) SalesSummaryResponse {
	out := SalesSummaryResponse{
		SalesSummary: make(map[string]SalesBucketResponse, len(s.ByStatus)),
		LastUpdated:  s.LastUpdated,
	}
	for status, b := range s.ByStatus {
		out.SalesSummary[string(status)] = SalesBucketResponse{Count: b.Count, TotalAmount: b.Total, TotalLabel: b.Total.String()}
	}
	return out
}
