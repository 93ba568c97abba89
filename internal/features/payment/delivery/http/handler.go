package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trading-platform-backend/internal/common/request"
	"trading-platform-backend/internal/features/payment/models"
	"trading-platform-backend/internal/features/payment/service"
)

type PaymentHandler struct {
	service service.PaymentService
}

func NewPaymentHandler(service service.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

func (h *PaymentHandler) RegisterRoutes(router *gin.RouterGroup, wrap func(gin.HandlerFunc) gin.HandlerFunc) {
	router.GET("/users/:id/payments", wrap(h.GetUserPayments))

	payments := router.Group("/payments")
	{
		payments.GET("/:id", wrap(h.GetPayment))
		payments.POST("", wrap(h.SubmitPayment))
		payments.PUT("/:id", wrap(h.UpdatePayment))
		payments.DELETE("/:id", wrap(h.DeletePayment))
	}
}

// @Summary List user payment submissions
// @Description Most recently submitted first
// @Tags payments
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} models.PaymentSubmission
// @Failure 400 {object} middleware.ErrorResponse "Invalid id"
// @Failure 500 {object} middleware.ErrorResponse
// @Router /users/{id}/payments [get]
func (h *PaymentHandler) GetUserPayments(c *gin.Context) {
	userID, err := request.ParseID(c, "id")
	if err != nil {
		request.Fail(c, err)
		return
	}

	items, err := h.service.GetUserPayments(c.Request.Context(), userID)
	if err != nil {
		request.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// @Summary Get payment submission
// @Tags payments
// @Produce json
// @Param id path int true "Payment submission ID"
// @Success 200 {object} models.PaymentSubmission
// @Failure 400 {object} middleware.ErrorResponse "Invalid id"
// @Failure 404 {object} middleware.ErrorResponse "Payment submission not found"
// @Failure 500 {object} middleware.ErrorResponse
// @Router /payments/{id} [get]
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	id, err := request.ParseID(c, "id")
	if err != nil {
		request.Fail(c, err)
		return
	}

	p, err := h.service.GetPayment(c.Request.Context(), id)
	if err != nil {
		request.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

// @Summary Submit payment
// @Description screenshotUrl holds the reference returned by the upload store
// @Tags payments
// @Accept json
// @Produce json
// @Param payment body models.CreatePaymentRequest true "Submission"
// @Success 201 {object} models.PaymentSubmission
// @Failure 400 {object} middleware.ErrorResponse "Invalid payment data"
// @Failure 500 {object} middleware.ErrorResponse
// @Router /payments [post]
func (h *PaymentHandler) SubmitPayment(c *gin.Context) {
	var input models.CreatePaymentRequest
	if err := request.BindJSON(c, &input, "Invalid payment data"); err != nil {
		request.Fail(c, err)
		return
	}

	p, err := h.service.SubmitPayment(c.Request.Context(), input)
	if err != nil {
		request.Fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, p)
}

// @Summary Update payment submission
// @Description Merges the supplied fields; processedAt changes only when sent
// @Tags payments
// @Accept json
// @Produce json
// @Param id path int true "Payment submission ID"
// @Param payment body models.UpdatePaymentRequest true "Changed fields"
// @Success 200 {object} models.PaymentSubmission
// @Failure 400 {object} middleware.ErrorResponse "Invalid update data"
// @Failure 404 {object} middleware.ErrorResponse "Payment submission not found"
// @Failure 500 {object} middleware.ErrorResponse
// @Router /payments/{id} [put]
func (h *PaymentHandler) UpdatePayment(c *gin.Context) {
	id, err := request.ParseID(c, "id")
	if err != nil {
		request.Fail(c, err)
		return
	}

	var input models.UpdatePaymentRequest
	if err := request.BindJSON(c, &input, "Invalid update data"); err != nil {
		request.Fail(c, err)
		return
	}

	p, err := h.service.UpdatePayment(c.Request.Context(), id, input)
	if err != nil {
		request.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

// @Summary Delete payment submission
// @Tags payments
// @Param id path int true "Payment submission ID"
// @Success 204
// @Failure 400 {object} middleware.ErrorResponse "Invalid id"
// @Failure 404 {object} middleware.ErrorResponse "Payment submission not found"
// @Failure 500 {object} middleware.ErrorResponse
// @Router /payments/{id} [delete]
func (h *PaymentHandler) DeletePayment(c *gin.Context) {
	id, err := request.ParseID(c, "id")
	if err != nil {
		request.Fail(c, err)
		return
	}

	if err := h.service.DeletePayment(c.Request.Context(), id); err != nil {
		request.Fail(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
