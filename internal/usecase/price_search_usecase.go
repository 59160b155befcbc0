package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"paint_estimator/internal/domain/entities"
	"paint_estimator/internal/usecase/interfaces"
	"paint_estimator/pkg/metrics"

	"go.uber.org/zap"
)

var (
	ErrInvalidQuery             = errors.New("query parameter is required")
	ErrPriceLookupFailed        = errors.New("failed to fetch prices")
	ErrPriceLookupNotConfigured = errors.New("price lookup gateway not configured")
)

const (
	priceSourceUpstream = "upstream"
	priceSourceMock     = "mock"
)

// IPriceSearchUseCase looks up market prices for paint.
//
// Failures are reported as ErrPriceLookupFailed; callers are expected to show
// "no results" rather than treat them as fatal.

type IPriceSearchUseCase interface {
	Search(ctx context.Context, query, location string) (entities.PriceSearchResult, error)
	SearchForProduct(ctx context.Context, productID, location string) (entities.PriceSearchResult, error)
}

type PriceSearchUseCase struct {
	gateway  interfaces.IPriceLookupGateway
	products interfaces.IProductRepository
}

var _ IPriceSearchUseCase = (*PriceSearchUseCase)(nil)

func NewPriceSearchUseCase(gateway interfaces.IPriceLookupGateway, products interfaces.IProductRepository) *PriceSearchUseCase {
	return &PriceSearchUseCase{gateway: gateway, products: products}
}

func (u *PriceSearchUseCase) Search(ctx context.Context, query, location string) (entities.PriceSearchResult, error) {
	query = strings.TrimSpace(query)
	location = strings.TrimSpace(location)
	if query == "" {
		return entities.PriceSearchResult{}, ErrInvalidQuery
	}
	if u.gateway == nil {
		return entities.PriceSearchResult{}, ErrPriceLookupNotConfigured
	}

	log := zap.S().Named("pricing")
	log.Debugw("price search start", "query", query, "location", location)

	res, err := u.gateway.Search(ctx, query, location)
	if err != nil {
		metrics.IncreasePriceSearchesTotal(priceSourceUpstream, "failure")
		log.Warnw("price search failed", "query", query, "error", err)
		return entities.PriceSearchResult{}, fmt.Errorf("%w: %w", ErrPriceLookupFailed, err)
	}
	if res.Results == nil {
		res.Results = []entities.PriceSnippet{}
	}

	source := priceSourceUpstream
	if res.IsMock {
		source = priceSourceMock
	}
	metrics.IncreasePriceSearchesTotal(source, "success")
	log.Debugw("price search success", "query", query, "results", len(res.Results), "is_mock", res.IsMock)
	return res, nil
}

// SearchForProduct searches with the "<brand> <name> paint" query of a catalog product.
func (u *PriceSearchUseCase) SearchForProduct(ctx context.Context, productID, location string) (entities.PriceSearchResult, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return entities.PriceSearchResult{}, ErrInvalidProductID
	}

	p, err := u.products.GetByID(ctx, productID)
	if err != nil {
		return entities.PriceSearchResult{}, err
	}
	if p.ID == "" {
		return entities.PriceSearchResult{}, ErrProductNotFound
	}
	return u.Search(ctx, p.SearchQuery(), location)
}
