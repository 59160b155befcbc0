package interfaces

import (
	"context"
	"paint_estimator/internal/domain/entities"
)

// IPriceLookupGateway abstracts the external shopping search used to show
// market prices next to an estimate.
//
// Implementations return synthetic results flagged IsMock when no upstream
// credential is configured, and must stop when ctx is cancelled.
type IPriceLookupGateway interface {
	Search(ctx context.Context, query, location string) (entities.PriceSearchResult, error)
}
