package routes

import (
	"context"
	"fmt"

	"paint_estimator/internal/adapter/http/handlers"
	"paint_estimator/internal/adapter/persistence/repository"
	"paint_estimator/internal/config"
	"paint_estimator/internal/domain/entities"
	"paint_estimator/internal/infrastructure/database"
	"paint_estimator/internal/infrastructure/pricing"
	"paint_estimator/internal/usecase"
	"paint_estimator/pkg/metrics"

	"go.uber.org/zap"
)

// Dependencies holds the handlers plus the facts /health reports.
type Dependencies struct {
	EstimateHandler *handlers.EstimateHandler
	CatalogHandler  *handlers.CatalogHandler
	PriceHandler    *handlers.PriceHandler

	CatalogSource   string
	CatalogProducts int
	MockPricing     bool
}

// BuildDependencies loads the catalog once and wires use cases and handlers.
func BuildDependencies(ctx context.Context, cfg config.Config) (Dependencies, error) {
	log := zap.S().Named("bootstrap")

	products, err := loadProducts(ctx, cfg)
	if err != nil {
		return Dependencies{}, err
	}
	productRepo, err := repository.NewProductMemoryRepository(products)
	if err != nil {
		return Dependencies{}, fmt.Errorf("invalid product catalog: %w", err)
	}
	for category, n := range productRepo.CountByCategory() {
		metrics.SetCatalogProducts(string(category), n)
	}
	if p, _ := productRepo.GetByID(ctx, entities.PrimerProductID); p.ID == "" {
		log.Warnw("primer product missing from catalog; primer layers will be skipped", "primer_id", entities.PrimerProductID)
	}

	trendRepo := repository.NewTrendMemoryRepository(repository.SeedTrends())
	roomTypeRepo := repository.NewRoomTypeMemoryRepository(repository.SeedRoomTypes())

	gateway := pricing.NewSerpAPIGateway(cfg, nil)

	estimateUseCase := usecase.NewEstimateUseCase(productRepo, roomTypeRepo)
	catalogUseCase := usecase.NewCatalogUseCase(productRepo, trendRepo, roomTypeRepo)
	priceUseCase := usecase.NewPriceSearchUseCase(gateway, productRepo)

	log.Infow("dependencies ready",
		"catalog_source", cfg.Catalog.Source,
		"products", len(products),
		"mock_pricing", gateway.MockMode(),
	)

	return Dependencies{
		EstimateHandler: handlers.NewEstimateHandler(estimateUseCase),
		CatalogHandler:  handlers.NewCatalogHandler(catalogUseCase),
		PriceHandler:    handlers.NewPriceHandler(priceUseCase),
		CatalogSource:   cfg.Catalog.Source,
		CatalogProducts: len(products),
		MockPricing:     gateway.MockMode(),
	}, nil
}

func loadProducts(ctx context.Context, cfg config.Config) ([]entities.PaintProduct, error) {
	if cfg.Catalog.Source != config.CatalogSourceDynamoDB {
		return repository.SeedProducts(), nil
	}

	ddb, err := database.ConnectDynamoDB(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect dynamodb: %w", err)
	}
	return repository.NewProductDynamoSource(ddb, cfg.Catalog.ProductsTable).LoadOrSeed(ctx, repository.SeedProducts())
}
