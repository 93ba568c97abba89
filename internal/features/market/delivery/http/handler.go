package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trading-platform-backend/internal/common/request"
	"trading-platform-backend/internal/features/market/models"
	"trading-platform-backend/internal/features/market/service"
)

type MarketHandler struct {
	service service.MarketService
}

func NewMarketHandler(service service.MarketService) *MarketHandler {
	return &MarketHandler{service: service}
}

// RegisterRoutes expects the engine to run with UseRawPath so that escaped
// symbols such as BTC%2FUSD reach the handler as one parameter.
func (h *MarketHandler) RegisterRoutes(router *gin.RouterGroup, wrap func(gin.HandlerFunc) gin.HandlerFunc) {
	market := router.Group("/market")
	{
		market.GET("", wrap(h.GetAllQuotes))
		market.GET("/:symbol", wrap(h.GetQuote))
		market.POST("", wrap(h.UpsertQuote))
		market.DELETE("/:symbol", wrap(h.DeleteQuote))
	}
}

// @Summary List market quotes
// @Tags market
// @Produce json
// @Success 200 {array} models.MarketQuote
// @Failure 500 {object} middleware.ErrorResponse
// @Router /market [get]
func (h *MarketHandler) GetAllQuotes(c *gin.Context) {
	quotes, err := h.service.GetAllQuotes(c.Request.Context())
	if err != nil {
		request.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, quotes)
}

// @Summary Get market quote
// @Tags market
// @Produce json
// @Param symbol path string true "URL-escaped symbol, e.g. BTC%2FUSD"
// @Success 200 {object} models.MarketQuote
// @Failure 404 {object} middleware.ErrorResponse "Market data not found"
// @Failure 500 {object} middleware.ErrorResponse
// @Router /market/{symbol} [get]
func (h *MarketHandler) GetQuote(c *gin.Context) {
	q, err := h.service.GetQuote(c.Request.Context(), c.Param("symbol"))
	if err != nil {
		request.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, q)
}

// @Summary Create or replace market quote
// @Description The id of an existing symbol is preserved
// @Tags market
// @Accept json
// @Produce json
// @Param quote body models.UpsertQuoteRequest true "Quote"
// @Success 201 {object} models.MarketQuote
// @Failure 400 {object} middleware.ErrorResponse "Invalid market data"
// @Failure 500 {object} middleware.ErrorResponse
// @Router /market [post]
func (h *MarketHandler) UpsertQuote(c *gin.Context) {
	var input models.UpsertQuoteRequest
	if err := request.BindJSON(c, &input, "Invalid market data"); err != nil {
		request.Fail(c, err)
		return
	}

	q, err := h.service.UpsertQuote(c.Request.Context(), input)
	if err != nil {
		request.Fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, q)
}

// @Summary Delete market quote
// @Tags market
// @Param symbol path string true "URL-escaped symbol"
// @Success 204
// @Failure 404 {object} middleware.ErrorResponse "Market data not found"
// @Failure 500 {object} middleware.ErrorResponse
// @Router /market/{symbol} [delete]
func (h *MarketHandler) DeleteQuote(c *gin.Context) {
	if err := h.service.DeleteQuote(c.Request.Context(), c.Param("symbol")); err != nil {
		request.Fail(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
