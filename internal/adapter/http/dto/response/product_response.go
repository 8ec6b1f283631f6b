package response

import "stuff3d_checkout/internal/domain/entities"

type ProductResponse struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Price       entities.Money `json:"price"`
	PriceLabel  string         `json:"price_label"`
	Image       string         `json:"image,omitempty"`
	Category    string         `json:"category,omitempty"`
}

func FromProduct(p entities.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		PriceLabel:  p.Price.String(),
		Image:       p.Image,
		Category:    p.Category,
	}
}

func FromProducts(products []entities.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, FromProduct(p))
	}
	return out
}

type LinkResponse struct {
	URL string `json:"url"`
}
