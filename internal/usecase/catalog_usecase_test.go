package usecase

import (
	"context"
	"errors"
	"testing"

	"paint_estimator/internal/domain/entities"
	mock_interfaces "paint_estimator/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCatalogUseCase_ListProducts(t *testing.T) {
	t.Run("invalid category", func(t *testing.T) {
		uc := NewCatalogUseCase(nil, nil, nil)
		_, err := uc.ListProducts(context.Background(), "ceiling")
		if !errors.Is(err, ErrInvalidCategory) {
			t.Fatalf("expected ErrInvalidCategory, got %v", err)
		}
	})

	t.Run("all products", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewCatalogUseCase(products, nil, nil)

		products.EXPECT().List(gomock.Any(), entities.ProductCategory("")).Return([]entities.PaintProduct{wallStandard, trimGloss}, nil)

		out, err := uc.ListProducts(context.Background(), "")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(out) != 2 {
			t.Fatalf("expected 2 products, got %d", len(out))
		}
	})

	t.Run("category is normalised", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewCatalogUseCase(products, nil, nil)

		products.EXPECT().List(gomock.Any(), entities.ProductCategoryTrim).Return([]entities.PaintProduct{trimGloss}, nil)

		out, err := uc.ListProducts(context.Background(), " Trim ")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(out) != 1 || out[0].ID != "trim_gloss" {
			t.Fatalf("unexpected products: %+v", out)
		}
	})
}

func TestCatalogUseCase_GetProduct(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		uc := NewCatalogUseCase(nil, nil, nil)
		_, err := uc.GetProduct(context.Background(), " ")
		if !errors.Is(err, ErrInvalidProductID) {
			t.Fatalf("expected ErrInvalidProductID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewCatalogUseCase(products, nil, nil)

		products.EXPECT().GetByID(gomock.Any(), "nope").Return(entities.PaintProduct{}, nil)

		_, err := uc.GetProduct(context.Background(), "nope")
		if !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewCatalogUseCase(products, nil, nil)

		products.EXPECT().GetByID(gomock.Any(), "wall_standard").Return(wallStandard, nil)

		p, err := uc.GetProduct(context.Background(), "wall_standard")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if p.Name != wallStandard.Name {
			t.Fatalf("unexpected product: %+v", p)
		}
	})
}

func TestCatalogUseCase_Reference(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	trends := mock_interfaces.NewMockITrendRepository(ctrl)
	roomTypes := mock_interfaces.NewMockIRoomTypeRepository(ctrl)
	uc := NewCatalogUseCase(nil, trends, roomTypes)

	trends.EXPECT().List(gomock.Any()).Return([]entities.TrendColor{{ID: "t1", Hex: "#ffcc00"}}, nil)
	roomTypes.EXPECT().List(gomock.Any()).Return(nil, errors.New("boom"))

	tc, err := uc.ListTrends(context.Background())
	if err != nil || len(tc) != 1 {
		t.Fatalf("unexpected trends: %v %v", tc, err)
	}
	if _, err := uc.ListRoomTypes(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
}
