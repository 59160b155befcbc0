package handlers

import (
	"context"
	"errors"
	"net/http"

	response "paint_estimator/internal/adapter/http/dto/response"
	"paint_estimator/internal/usecase"
	"paint_estimator/pkg"

	"github.com/gin-gonic/gin"
)

// PriceHandler proxies market price lookups.
//
// A failed lookup is a 502 with details; clients show "no results" for it.

type PriceHandler struct {
	usecase usecase.IPriceSearchUseCase
}

func NewPriceHandler(uc usecase.IPriceSearchUseCase) *PriceHandler {
	return &PriceHandler{usecase: uc}
}

// SearchPrices godoc
// @Summary      Search market prices
// @Description  Google Shopping snippets for a free-text query. isMock is true when no upstream key is configured.
// @Tags         prices
// @Produce      json
// @Param        query     query     string  true   "Search text"
// @Param        location  query     string  false  "Location hint, e.g. London"
// @Success      200       {object}  response.PriceSearchResponse
// @Failure      400       {object}  pkg.HTTPError
// @Failure      502       {object}  pkg.HTTPError
// @Router       /prices/search [get]
func (h *PriceHandler) SearchPrices(c *gin.Context) {
	res, err := h.usecase.Search(c.Request.Context(), c.Query("query"), c.Query("location"))
	if err != nil {
		writeError(c, mapPriceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPriceSearchResult(res))
}

// SearchProductPrices godoc
// @Summary      Search market prices for a catalog product
// @Tags         prices
// @Produce      json
// @Param        product_id  path      string  true   "Product id"
// @Param        location    query     string  false  "Location hint"
// @Success      200         {object}  response.PriceSearchResponse
// @Failure      404         {object}  pkg.HTTPError
// @Failure      502         {object}  pkg.HTTPError
// @Router       /prices/products/{product_id} [get]
func (h *PriceHandler) SearchProductPrices(c *gin.Context) {
	res, err := h.usecase.SearchForProduct(c.Request.Context(), c.Param("product_id"), c.Query("location"))
	if err != nil {
		writeError(c, mapPriceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPriceSearchResult(res))
}

func mapPriceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuery):
		return pkg.NewDomainErrorSimple("INVALID_QUERY", "Query parameter is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidProductID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPriceLookupNotConfigured):
		return pkg.NewDomainErrorSimple("PRICE_LOOKUP_UNAVAILABLE", "Price lookup is not available", http.StatusServiceUnavailable)
	case errors.Is(err, context.Canceled), errors.Is(err, usecase.ErrPriceLookupFailed):
		return pkg.NewDomainError("PRICE_LOOKUP_FAILED", "Failed to fetch prices", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
