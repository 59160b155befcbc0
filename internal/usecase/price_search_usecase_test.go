package usecase

import (
	"context"
	"errors"
	"testing"

	"paint_estimator/internal/domain/entities"
	mock_interfaces "paint_estimator/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPriceSearchUseCase_Search(t *testing.T) {
	t.Run("blank query", func(t *testing.T) {
		uc := NewPriceSearchUseCase(nil, nil)
		_, err := uc.Search(context.Background(), "   ", "")
		if !errors.Is(err, ErrInvalidQuery) {
			t.Fatalf("expected ErrInvalidQuery, got %v", err)
		}
	})

	t.Run("no gateway", func(t *testing.T) {
		uc := NewPriceSearchUseCase(nil, nil)
		_, err := uc.Search(context.Background(), "dulux", "")
		if !errors.Is(err, ErrPriceLookupNotConfigured) {
			t.Fatalf("expected ErrPriceLookupNotConfigured, got %v", err)
		}
	})

	t.Run("upstream failure is wrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIPriceLookupGateway(ctrl)
		uc := NewPriceSearchUseCase(gw, nil)

		upstream := errors.New("status 500")
		gw.EXPECT().Search(gomock.Any(), "dulux matt", "London").Return(entities.PriceSearchResult{}, upstream)

		_, err := uc.Search(context.Background(), " dulux matt ", " London ")
		if !errors.Is(err, ErrPriceLookupFailed) || !errors.Is(err, upstream) {
			t.Fatalf("expected wrapped failure, got %v", err)
		}
	})

	t.Run("success normalises nil results", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIPriceLookupGateway(ctrl)
		uc := NewPriceSearchUseCase(gw, nil)

		gw.EXPECT().Search(gomock.Any(), "dulux", "").Return(entities.PriceSearchResult{IsMock: true}, nil)

		res, err := uc.Search(context.Background(), "dulux", "")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if res.Results == nil || !res.IsMock {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestPriceSearchUseCase_SearchForProduct(t *testing.T) {
	t.Run("unknown product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewPriceSearchUseCase(nil, products)

		products.EXPECT().GetByID(gomock.Any(), "nope").Return(entities.PaintProduct{}, nil)

		_, err := uc.SearchForProduct(context.Background(), "nope", "")
		if !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("builds query from brand and name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		gw := mock_interfaces.NewMockIPriceLookupGateway(ctrl)
		uc := NewPriceSearchUseCase(gw, products)

		products.EXPECT().GetByID(gomock.Any(), "trim_gloss").Return(trimGloss, nil)
		gw.EXPECT().Search(gomock.Any(), "Dulux Trade High Gloss (Standard) paint", "Leeds").
			Return(entities.PriceSearchResult{Results: []entities.PriceSnippet{{Title: "Gloss", Price: "£24.00"}}}, nil)

		res, err := uc.SearchForProduct(context.Background(), "trim_gloss", "Leeds")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(res.Results) != 1 {
			t.Fatalf("expected 1 result, got %d", len(res.Results))
		}
	})
}
