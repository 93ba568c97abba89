package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trading-platform-backend/internal/common/request"
	"trading-platform-backend/internal/features/notification/models"
	"trading-platform-backend/internal/features/notification/service"
)

// MessageResponse is returned by the read-marking endpoints.
type MessageResponse struct {
	Message string `json:"message" example:"Notification marked as read"`
}

// ReadAllResponse reports the outcome of marking a user's feed as read.
type ReadAllResponse struct {
	Message string `json:"message" example:"All notifications marked as read"`
	Updated bool   `json:"updated"`
}

type NotificationHandler struct {
	service service.NotificationService
}

func NewNotificationHandler(service service.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

func (h *NotificationHandler) RegisterRoutes(router *gin.RouterGroup, wrap func(gin.HandlerFunc) gin.HandlerFunc) {
	userNotifications := router.Group("/users/:id/notifications")
	{
		userNotifications.GET("", wrap(h.GetUserNotifications))
		userNotifications.GET("/unread", wrap(h.GetUnreadNotifications))
		userNotifications.PUT("/read-all", wrap(h.MarkAllAsRead))
	}

	notifications := router.Group("/notifications")
	{
		notifications.GET("/:id", wrap(h.GetNotification))
		notifications.POST("", wrap(h.CreateNotification))
		notifications.PUT("/:id", wrap(h.UpdateNotification))
		notifications.PUT("/:id/read", wrap(h.MarkAsRead))
		notifications.DELETE("/:id", wrap(h.DeleteNotification))
	}
}

// @Summary List user notifications
// @Tags notifications
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} models.Notification
// @Failure 400 {object} middleware.ErrorResponse "Invalid id"
// @Failure 500 {object} middleware.ErrorResponse
// @Router /users/{id}/notifications [get]
func (h *NotificationHandler) GetUserNotifications(c *gin.Context) {
	userID, err := request.ParseID(c, "id")
	if err != nil {
		request.Fail(c, err)
		return
	}

	items, err := h.service.GetUserNotifications(c.Request.Context(), userID)
	if err != nil {
		request.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// @Summary List unread notifications
// @Description Newest first
// @Tags notifications
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} models.Notification
// @Failure 400 {object} middleware.ErrorResponse "Invalid id"
// @Failure 500 {object} middleware.ErrorResponse
// @Router /users/{id}/notifications/unread [get]
func (h *NotificationHandler) GetUnreadNotifications(c *gin.Context) {
	userID, err := request.ParseID(c, "id")
	if err != nil {
		request.Fail(c, err)
		return
	}

	items, err := h.service.GetUnreadNotifications(c.Request.Context(), userID)
	if err != nil {
		request.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// @Summary Mark all notifications as read
// @Tags notifications
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} ReadAllResponse
// @Failure 400 {object} middleware.ErrorResponse "Invalid id"
// @Failure 500 {object} middleware.ErrorResponse
// @Router /users/{id}/notifications/read-all [put]
func (h *NotificationHandler) MarkAllAsRead(c *gin.Context) {
	userID, err := request.ParseID(c, "id")
	if err != nil {
		request.Fail(c, err)
		return
	}

	updated, err := h.service.MarkAllAsRead(c.Request.Context(), userID)
	if err != nil {
		request.Fail(c, err)
		return
	}

	resp := ReadAllResponse{Message: "No notifications to update", Updated: updated}
	if updated {
		resp.Message = "All notifications marked as read"
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get notification
// @Tags notifications
// @Produce json
// @Param id path int true "Notification ID"
// @Success 200 {object} models.Notification
// @Failure 400 {object} middleware.ErrorResponse "Invalid id"
// @Failure 404 {object} middleware.ErrorResponse "Notification not found"
// @Failure 500 {object} middleware.ErrorResponse
// @Router /notifications/{id} [get]
func (h *NotificationHandler) GetNotification(c *gin.Context) {
	id, err := request.ParseID(c, "id")
	if err != nil {
		request.Fail(c, err)
		return
	}

	n, err := h.service.GetNotification(c.Request.Context(), id)
	if err != nil {
		request.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, n)
}

// @Summary Create notification
// @Tags notifications
// @Accept json
// @Produce json
// @Param notification body models.CreateNotificationRequest true "New notification"
// @Success 201 {object} models.Notification
// @Failure 400 {object} middleware.ErrorResponse "Invalid notification data"
// @Failure 500 {object} middleware.ErrorResponse
// @Router /notifications [post]
func (h *NotificationHandler) CreateNotification(c *gin.Context) {
	var input models.CreateNotificationRequest
	if err := request.BindJSON(c, &input, "Invalid notification data"); err != nil {
		request.Fail(c, err)
		return
	}

	n, err := h.service.CreateNotification(c.Request.Context(), input)
	if err != nil {
		request.Fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, n)
}

// @Summary Update notification
// @Tags notifications
// @Accept json
// @Produce json
// @Param id path int true "Notification ID"
// @Param notification body models.UpdateNotificationRequest true "Changed fields"
// @Success 200 {object} models.Notification
// @Failure 400 {object} middleware.ErrorResponse "Invalid update data"
// @Failure 404 {object} middleware.ErrorResponse "Notification not found"
// @Failure 500 {object} middleware.ErrorResponse
// @Router /notifications/{id} [put]
func (h *NotificationHandler) UpdateNotification(c *gin.Context) {
	id, err := request.ParseID(c, "id")
	if err != nil {
		request.Fail(c, err)
		return
	}

	var input models.UpdateNotificationRequest
	if err := request.BindJSON(c, &input, "Invalid update data"); err != nil {
		request.Fail(c, err)
		return
	}

	n, err := h.service.UpdateNotification(c.Request.Context(), id, input)
	if err != nil {
		request.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, n)
}

// @Summary Mark notification as read
// @Tags notifications
// @Produce json
// @Param id path int true "Notification ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} middleware.ErrorResponse "Invalid id"
// @Failure 404 {object} middleware.ErrorResponse "Notification not found"
// @Failure 500 {object} middleware.ErrorResponse
// @Router /notifications/{id}/read [put]
func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	id, err := request.ParseID(c, "id")
	if err != nil {
		request.Fail(c, err)
		return
	}

	if err := h.service.MarkAsRead(c.Request.Context(), id); err != nil {
		request.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Notification marked as read"})
}

// @Summary Delete notification
// @Tags notifications
// @Param id path int true "Notification ID"
// @Success 204
// @Failure 400 {object} middleware.ErrorResponse "Invalid id"
// @Failure 404 {object} middleware.ErrorResponse "Notification not found"
// @Failure 500 {object} middleware.ErrorResponse
// @Router /notifications/{id} [delete]
func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
	id, err := request.ParseID(c, "id")
	if err != nil {
		request.Fail(c, err)
		return
	}

	if err := h.service.DeleteNotification(c.Request.Context(), id); err != nil {
		request.Fail(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
