package repository

import (
	"context"
	"slices"

	"stuff3d_checkout/internal/domain/entities"
	"stuff3d_checkout/internal/usecase/interfaces"
)

// ProductStaticRepository serves the built-in catalog. It is the price table
// the payment API charges from when no products table is configured.
type ProductStaticRepository struct {
	products []entities.Product
}

var _ interfaces.IProductRepository = (*ProductStaticRepository)(nil)

func NewProductStaticRepository(products ...entities.Product) *ProductStaticRepository {
	if len(products) == 0 {
		products = DefaultCatalog()
	}
	products = slices.Clone(products)
	sortProducts(products)
	return &ProductStaticRepository{products: products}
}

// DefaultCatalog is the storefront's fixed product table.
func DefaultCatalog() []entities.Product {
	return []entities.Product{
		{ID: "1", Name: "Miniatura de Personagem", Price: 4500, Category: "Miniaturas", Description: "Miniaturas detalhadas de personagens famosos"},
		{ID: "2", Name: "Suporte para Celular", Price: 2500, Category: "Acessórios", Description: "Suporte ergonômico e resistente"},
		{ID: "3", Name: "Chaveiros Personalizados", Price: 1500, Category: "Chaveiros", Description: "Chaveiros únicos personalizados"},
		{ID: "4", Name: "Peças Decorativas", Price: 3500, Category: "Decoração", Description: "Objetos decorativos modernos"},
		{ID: "5", Name: "Porta-Canetas Geométrico", Price: 3000, Category: "Organização", Description: "Organizador de mesa com design único"},
		{ID: "6", Name: "Luminária Personalizada", Price: 8000, Category: "Iluminação", Description: "Luminária LED com design exclusivo"},
	}
}

func (r *ProductStaticRepository) List(_ context.Context) ([]entities.Product, error) {
	return slices.Clone(r.products), nil
}

func (r *ProductStaticRepository) GetByID(_ context.Context, id string) (entities.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return entities.Product{}, nil
}
