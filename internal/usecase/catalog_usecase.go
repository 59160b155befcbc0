package usecase

import (
	"context"
	"errors"
	"strings"

	"paint_estimator/internal/domain/entities"
	"paint_estimator/internal/usecase/interfaces"
)

var (
	ErrInvalidProductID = errors.New("invalid product id")
	ErrInvalidCategory  = errors.New("invalid product category")
)

// ICatalogUseCase serves the static reference data: products, trend colours
// and room types.

type ICatalogUseCase interface {
	ListProducts(ctx context.Context, category string) ([]entities.PaintProduct, error)
	GetProduct(ctx context.Context, id string) (entities.PaintProduct, error)
	ListTrends(ctx context.Context) ([]entities.TrendColor, error)
	ListRoomTypes(ctx context.Context) ([]entities.RoomType, error)
}

type CatalogUseCase struct {
	products  interfaces.IProductRepository
	trends    interfaces.ITrendRepository
	roomTypes interfaces.IRoomTypeRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(products interfaces.IProductRepository, trends interfaces.ITrendRepository, roomTypes interfaces.IRoomTypeRepository) *CatalogUseCase {
	return &CatalogUseCase{products: products, trends: trends, roomTypes: roomTypes}
}

// ListProducts returns every product, or only one category when category is set.
func (u *CatalogUseCase) ListProducts(ctx context.Context, category string) ([]entities.PaintProduct, error) {
	category = strings.ToLower(strings.TrimSpace(category))
	if category != "" && !entities.IsValidProductCategory(category) {
		return nil, ErrInvalidCategory
	}
	return u.products.List(ctx, entities.ProductCategory(category))
}

func (u *CatalogUseCase) GetProduct(ctx context.Context, id string) (entities.PaintProduct, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PaintProduct{}, ErrInvalidProductID
	}

	p, err := u.products.GetByID(ctx, id)
	if err != nil {
		return entities.PaintProduct{}, err
	}
	if p.ID == "" {
		return entities.PaintProduct{}, ErrProductNotFound
	}
	return p, nil
}

func (u *CatalogUseCase) ListTrends(ctx context.Context) ([]entities.TrendColor, error) {
	return u.trends.List(ctx)
}

func (u *CatalogUseCase) ListRoomTypes(ctx context.Context) ([]entities.RoomType, error) {
	return u.roomTypes.List(ctx)
}
