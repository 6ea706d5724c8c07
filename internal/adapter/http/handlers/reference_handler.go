package handlers

import (
	"net/http"

	response "nbtech_pricing/internal/adapter/http/dto/response"
	"nbtech_pricing/internal/domain/entities"
	"nbtech_pricing/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ReferenceHandler serves the read-only data behind the quoting forms.
type ReferenceHandler struct {
	usecase usecase.IReferenceUseCase
}

func NewReferenceHandler(uc usecase.IReferenceUseCase) *ReferenceHandler {
	return &ReferenceHandler{usecase: uc}
}

// ListJurisdictions godoc
// @Summary      List ICMS rates per state
// @Tags         reference
// @Produce      json
// @Param        tax_year  query     string  false  "Tax year (defaults to the configured year)"
// @Success      200       {object}  response.JurisdictionsResponse
// @Failure      404       {object}  pkg.HTTPError
// @Failure      500       {object}  pkg.HTTPError
// @Router       /reference/jurisdictions [get]
func (h *ReferenceHandler) ListJurisdictions(c *gin.Context) {
	table, err := h.usecase.ListJurisdictions(c.Request.Context(), c.Query("tax_year"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJurisdictionTable(table))
}

// PriceLists godoc
// @Summary      Official service price lists
// @Tags         reference
// @Produce      json
// @Success      200  {object}  response.PriceListsResponse
// @Router       /reference/price-lists [get]
func (h *ReferenceHandler) PriceLists(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromPriceLists(entities.OfficialPriceListsVersion, h.usecase.PriceLists(c.Request.Context())))
}

// TaxPresets godoc
// @Summary      IPI and MVA presets per product family
// @Tags         reference
// @Produce      json
// @Success      200  {object}  response.TaxPresetsResponse
// @Router       /reference/tax-presets [get]
func (h *ReferenceHandler) TaxPresets(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromTaxPresets(h.usecase.TaxPresets(c.Request.Context())))
}
