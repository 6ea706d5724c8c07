package handlers

import (
	"net/http"

	request "nbtech_pricing/internal/adapter/http/dto/request"
	response "nbtech_pricing/internal/adapter/http/dto/response"
	"nbtech_pricing/internal/usecase"
	"nbtech_pricing/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// QuoteHandler handles HTTP requests for product, service and contract quotes.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// QuoteProduct godoc
// @Summary      Quote a product resale
// @Description  Suggests a selling price that covers ICMS, DIFAL, PIS/COFINS, commission, admin costs and the target margin.
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        request  body      request.ProductQuoteRequest  true  "Product, customer and scenario"
// @Success      200      {object}  response.ProductQuoteResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      422      {object}  pkg.HTTPError
// @Failure      500      {object}  pkg.HTTPError
// @Router       /quotes/products [post]
func (h *QuoteHandler) QuoteProduct(c *gin.Context) {
	var payload request.ProductQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := bindError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	product, customer, scenario := payload.ToDomain()
	quote, err := h.usecase.QuoteProduct(c.Request.Context(), payload.TaxYear, product, customer, scenario)
	if err != nil {
		appErr := mapQuoteError(err)
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			logger.Error("product quote failed", zap.Error(err))
		}
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProductQuote(quote))
}

// QuoteService godoc
// @Summary      Quote a one-off field service
// @Description  Prices a single visit: technician hours plus round-trip mileage, billed once.
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        request  body      request.ServiceQuoteRequest  true  "Visit details"
// @Success      200      {object}  response.ContractQuoteResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      500      {object}  pkg.HTTPError
// @Router       /quotes/services [post]
func (h *QuoteHandler) QuoteService(c *gin.Context) {
	var payload request.ServiceQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := bindError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	service, scenario := payload.ToDomain()
	quote, err := h.usecase.QuoteService(c.Request.Context(), service, scenario)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromContractQuote(quote))
}

// QuoteContract godoc
// @Summary      Quote a maintenance or rental contract
// @Description  Monthly price of a recurring contract. Deductions of 95% or more are clamped to 90% and flagged.
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        request  body      request.ContractQuoteRequest  true  "Contract details"
// @Success      200      {object}  response.ContractQuoteResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      500      {object}  pkg.HTTPError
// @Router       /quotes/contracts [post]
func (h *QuoteHandler) QuoteContract(c *gin.Context) {
	var payload request.ContractQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := bindError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	service, scenario := payload.ToDomain()
	quote, err := h.usecase.QuoteContract(c.Request.Context(), service, scenario)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromContractQuote(quote))
}
