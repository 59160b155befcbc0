package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	response "paint_estimator/internal/adapter/http/dto/response"
	"paint_estimator/internal/adapter/http/handlers/mocks"
	"paint_estimator/internal/domain/entities"
	"paint_estimator/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newPriceRouter(uc usecase.IPriceSearchUseCase) *gin.Engine {
	h := NewPriceHandler(uc)
	r := gin.New()
	r.GET("/v1/prices/search", h.SearchPrices)
	r.GET("/v1/prices/products/:product_id", h.SearchProductPrices)
	return r
}

func TestPriceHandler_SearchPrices(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPriceSearchUseCase(ctrl)
		r := newPriceRouter(uc)

		uc.EXPECT().Search(gomock.Any(), "", "").Return(entities.PriceSearchResult{}, usecase.ErrInvalidQuery)

		w := get(r, "/v1/prices/search")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if got := decodeError(t, w); got.Error != "Query parameter is required" {
			t.Fatalf("unexpected error body: %+v", got)
		}
	})

	t.Run("upstream failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPriceSearchUseCase(ctrl)
		r := newPriceRouter(uc)

		uc.EXPECT().Search(gomock.Any(), "dulux", "").
			Return(entities.PriceSearchResult{}, fmt.Errorf("%w: %w", usecase.ErrPriceLookupFailed, errors.New("Invalid API key.")))

		w := get(r, "/v1/prices/search?query=dulux")
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		got := decodeError(t, w)
		if got.Error != "Failed to fetch prices" || got.Details == "" {
			t.Fatalf("unexpected error body: %+v", got)
		}
	})

	t.Run("mock results", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPriceSearchUseCase(ctrl)
		r := newPriceRouter(uc)

		uc.EXPECT().Search(gomock.Any(), "dulux matt", "London").Return(entities.PriceSearchResult{
			Results: []entities.PriceSnippet{{Title: "Dulux 5L", Price: "£42.00", Source: "Mock Hardware Store", Link: "#"}},
			IsMock:  true,
		}, nil)

		w := get(r, "/v1/prices/search?query=dulux+matt&location=London")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var out response.PriceSearchResponse
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if !out.IsMock || len(out.Results) != 1 || out.Results[0].PriceValue == nil || *out.Results[0].PriceValue != 42 {
			t.Fatalf("unexpected response: %+v", out)
		}
	})
}

func TestPriceHandler_SearchProductPrices(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPriceSearchUseCase(ctrl)
		r := newPriceRouter(uc)

		uc.EXPECT().SearchForProduct(gomock.Any(), "nope", "").Return(entities.PriceSearchResult{}, usecase.ErrProductNotFound)

		if w := get(r, "/v1/prices/products/nope"); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPriceSearchUseCase(ctrl)
		r := newPriceRouter(uc)

		uc.EXPECT().SearchForProduct(gomock.Any(), "trim_gloss", "Leeds").Return(entities.PriceSearchResult{}, nil)

		w := get(r, "/v1/prices/products/trim_gloss?location=Leeds")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != `{"results":[],"isMock":false}` {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
