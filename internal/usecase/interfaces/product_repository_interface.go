package interfaces

import (
	"context"
	"paint_estimator/internal/domain/entities"
)

// IProductRepository is the read-only paint catalog.
//
// A lookup miss is a normal outcome: GetByID returns a zero PaintProduct
// (empty ID) and a nil error.

type IProductRepository interface {
	GetByID(ctx context.Context, id string) (entities.PaintProduct, error)
	List(ctx context.Context, category entities.ProductCategory) ([]entities.PaintProduct, error)
}
