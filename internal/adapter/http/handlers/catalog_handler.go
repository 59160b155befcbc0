package handlers

import (
	"errors"
	"net/http"

	response "paint_estimator/internal/adapter/http/dto/response"
	"paint_estimator/internal/usecase"
	"paint_estimator/pkg"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves products, trend colours and room types.

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// ListProducts godoc
// @Summary      List paint products
// @Tags         catalog
// @Produce      json
// @Param        category  query     string  false  "wall, trim or primer"
// @Success      200       {array}   response.ProductResponse
// @Failure      400       {object}  pkg.HTTPError
// @Router       /products [get]
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	products, err := h.usecase.ListProducts(c.Request.Context(), c.Query("category"))
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProducts(products))
}

// GetProduct godoc
// @Summary      Get a paint product
// @Tags         catalog
// @Produce      json
// @Param        product_id  path      string  true  "Product id"
// @Success      200         {object}  response.ProductResponse
// @Failure      404         {object}  pkg.HTTPError
// @Router       /products/{product_id} [get]
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	p, err := h.usecase.GetProduct(c.Request.Context(), c.Param("product_id"))
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProduct(p))
}

// ListTrends godoc
// @Summary      List seasonal trend colours
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  response.TrendColorResponse
// @Router       /trends [get]
func (h *CatalogHandler) ListTrends(c *gin.Context) {
	trends, err := h.usecase.ListTrends(c.Request.Context())
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTrends(trends))
}

// ListRoomTypes godoc
// @Summary      List room types
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  response.RoomTypeResponse
// @Router       /room-types [get]
func (h *CatalogHandler) ListRoomTypes(c *gin.Context) {
	roomTypes, err := h.usecase.ListRoomTypes(c.Request.Context())
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRoomTypes(roomTypes))
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCategory), errors.Is(err, usecase.ErrInvalidProductID):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
