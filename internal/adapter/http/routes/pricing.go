package routes

import (
	"nbtech_pricing/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes    = "/quotes"
	PathReference = "/reference"
)

func addPricingRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler, referenceHandler *handlers.ReferenceHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("/products", quoteHandler.QuoteProduct)
		quotes.POST("/services", quoteHandler.QuoteService)
		quotes.POST("/contracts", quoteHandler.QuoteContract)
	}

	reference := rg.Group(PathReference)
	{
		reference.GET("/jurisdictions", referenceHandler.ListJurisdictions)
		reference.GET("/price-lists", referenceHandler.PriceLists)
		reference.GET("/tax-presets", referenceHandler.TaxPresets)
	}
}
