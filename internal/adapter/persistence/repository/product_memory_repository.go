package repository

import (
	"context"
	"errors"
	"fmt"

	"paint_estimator/internal/domain/entities"
	"paint_estimator/internal/usecase/interfaces"
)

var ErrDuplicateProduct = errors.New("duplicate product id")

// ProductMemoryRepository serves the paint catalog from memory.
//
// The product list is validated and copied once on construction and never
// changes afterwards, so the repository is safe for concurrent readers.

type ProductMemoryRepository struct {
	products []entities.PaintProduct
	byID     map[string]int
}

var _ interfaces.IProductRepository = (*ProductMemoryRepository)(nil)

func NewProductMemoryRepository(products []entities.PaintProduct) (*ProductMemoryRepository, error) {
	r := &ProductMemoryRepository{
		products: make([]entities.PaintProduct, 0, len(products)),
		byID:     make(map[string]int, len(products)),
	}
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, ok := r.byID[p.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateProduct, p.ID)
		}
		r.byID[p.ID] = len(r.products)
		r.products = append(r.products, p)
	}
	return r, nil
}

func (r *ProductMemoryRepository) GetByID(_ context.Context, id string) (entities.PaintProduct, error) {
	i, ok := r.byID[id]
	if !ok {
		return entities.PaintProduct{}, nil
	}
	return r.products[i], nil
}

// List returns products in catalog order. An empty category returns all of them.
func (r *ProductMemoryRepository) List(_ context.Context, category entities.ProductCategory) ([]entities.PaintProduct, error) {
	out := make([]entities.PaintProduct, 0, len(r.products))
	for _, p := range r.products {
		if category == "" || p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

// CountByCategory reports how many products each known category holds.
func (r *ProductMemoryRepository) CountByCategory() map[entities.ProductCategory]int {
	out := make(map[entities.ProductCategory]int, len(entities.ValidProductCategories()))
	for _, c := range entities.ValidProductCategories() {
		out[c] = 0
	}
	for _, p := range r.products {
		out[p.Category]++
	}
	return out
}
