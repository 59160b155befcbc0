package routes

import (
	"paint_estimator/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEstimates = "/estimates"
	PathProducts  = "/products"
	PathTrends    = "/trends"
	PathRoomTypes = "/room-types"
	PathPrices    = "/prices"
)

func addEstimateRoutes(rg *gin.RouterGroup, h *handlers.EstimateHandler) {
	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("", h.EstimateRoom)
		estimates.POST("/project", h.EstimateProject)
	}
}

func addCatalogRoutes(rg *gin.RouterGroup, h *handlers.CatalogHandler) {
	products := rg.Group(PathProducts)
	{
		products.GET("", h.ListProducts)
		products.GET("/:product_id", h.GetProduct)
	}
	rg.GET(PathTrends, h.ListTrends)
	rg.GET(PathRoomTypes, h.ListRoomTypes)
}

func addPriceRoutes(rg *gin.RouterGroup, h *handlers.PriceHandler) {
	prices := rg.Group(PathPrices)
	{
		prices.GET("/search", h.SearchPrices)
		prices.GET("/products/:product_id", h.SearchProductPrices)
	}
}
