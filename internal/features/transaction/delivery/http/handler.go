package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trading-platform-backend/internal/common/request"
	"trading-platform-backend/internal/features/transaction/models"
	"trading-platform-backend/internal/features/transaction/service"
)

type TransactionHandler struct {
	service service.TransactionService
}

func NewTransactionHandler(service service.TransactionService) *TransactionHandler {
	return &TransactionHandler{service: service}
}

func (h *TransactionHandler) RegisterRoutes(router *gin.RouterGroup, wrap func(gin.HandlerFunc) gin.HandlerFunc) {
	router.GET("/users/:id/transactions", wrap(h.GetUserTransactions))

	transactions := router.Group("/transactions")
	{
		transactions.GET("/:id", wrap(h.GetTransaction))
		transactions.POST("", wrap(h.CreateTransaction))
		transactions.PUT("/:id", wrap(h.UpdateTransaction))
		transactions.DELETE("/:id", wrap(h.DeleteTransaction))
	}
}

// @Summary List user transactions
// @Description Newest first; an unknown user yields an empty list
// @Tags transactions
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} models.Transaction
// @Failure 400 {object} middleware.ErrorResponse "Invalid id"
// @Failure 500 {object} middleware.ErrorResponse
// @Router /users/{id}/transactions [get]
func (h *TransactionHandler) GetUserTransactions(c *gin.Context) {
	userID, err := request.ParseID(c, "id")
	if err != nil {
		request.Fail(c, err)
		return
	}

	items, err := h.service.GetUserTransactions(c.Request.Context(), userID)
	if err != nil {
		request.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// @Summary Get transaction
// @Tags transactions
// @Produce json
// @Param id path int true "Transaction ID"
// @Success 200 {object} models.Transaction
// @Failure 400 {object} middleware.ErrorResponse "Invalid id"
// @Failure 404 {object} middleware.ErrorResponse "Transaction not found"
// @Failure 500 {object} middleware.ErrorResponse
// @Router /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	id, err := request.ParseID(c, "id")
	if err != nil {
		request.Fail(c, err)
		return
	}

	t, err := h.service.GetTransaction(c.Request.Context(), id)
	if err != nil {
		request.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, t)
}

// @Summary Create transaction
// @Description Status defaults to pending
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body models.CreateTransactionRequest true "New transaction"
// @Success 201 {object} models.Transaction
// @Failure 400 {object} middleware.ErrorResponse "Invalid transaction data"
// @Failure 500 {object} middleware.ErrorResponse
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var input models.CreateTransactionRequest
	if err := request.BindJSON(c, &input, "Invalid transaction data"); err != nil {
		request.Fail(c, err)
		return
	}

	t, err := h.service.CreateTransaction(c.Request.Context(), input)
	if err != nil {
		request.Fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, t)
}

// @Summary Update transaction
// @Description Only supplied fields change; description and reference may be null
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path int true "Transaction ID"
// @Param transaction body models.UpdateTransactionRequest true "Changed fields"
// @Success 200 {object} models.Transaction
// @Failure 400 {object} middleware.ErrorResponse "Invalid update data"
// @Failure 404 {object} middleware.ErrorResponse "Transaction not found"
// @Failure 500 {object} middleware.ErrorResponse
// @Router /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	id, err := request.ParseID(c, "id")
	if err != nil {
		request.Fail(c, err)
		return
	}

	var input models.UpdateTransactionRequest
	if err := request.BindJSON(c, &input, "Invalid update data"); err != nil {
		request.Fail(c, err)
		return
	}

	t, err := h.service.UpdateTransaction(c.Request.Context(), id, input)
	if err != nil {
		request.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, t)
}

// @Summary Delete transaction
// @Tags transactions
// @Param id path int true "Transaction ID"
// @Success 204
// @Failure 400 {object} middleware.ErrorResponse "Invalid id"
// @Failure 404 {object} middleware.ErrorResponse "Transaction not found"
// @Failure 500 {object} middleware.ErrorResponse
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	id, err := request.ParseID(c, "id")
	if err != nil {
		request.Fail(c, err)
		return
	}

	if err := h.service.DeleteTransaction(c.Request.Context(), id); err != nil {
		request.Fail(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
