package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trading-platform-backend/internal/common/request"
	"trading-platform-backend/internal/features/user/models"
	"trading-platform-backend/internal/features/user/service"
)

type UserHandler struct {
	service service.UserService
}

func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{
		service: service,
	}
}

func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup, wrap func(gin.HandlerFunc) gin.HandlerFunc) {
	users := router.Group("/users")
	{
		users.GET("/email/:email", wrap(h.GetUserByEmail))
		users.GET("/:id", wrap(h.GetUser))
		users.POST("", wrap(h.CreateUser))
		users.PUT("/:id", wrap(h.UpdateUser))
		users.DELETE("/:id", wrap(h.DeleteUser))
	}
}

// @Summary Get user by ID
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.User
// @Failure 400 {object} middleware.ErrorResponse "Invalid id"
// @Failure 404 {object} middleware.ErrorResponse "User not found"
// @Failure 500 {object} middleware.ErrorResponse
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := request.ParseID(c, "id")
	if err != nil {
		request.Fail(c, err)
		return
	}

	user, err := h.service.GetUser(c.Request.Context(), id)
	if err != nil {
		request.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// @Summary Get user by email
// @Description Exact, case-sensitive match
// @Tags users
// @Produce json
// @Param email path string true "Email"
// @Success 200 {object} models.User
// @Failure 404 {object} middleware.ErrorResponse "User not found"
// @Failure 500 {object} middleware.ErrorResponse
// @Router /users/email/{email} [get]
func (h *UserHandler) GetUserByEmail(c *gin.Context) {
	user, err := h.service.GetUserByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		request.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// @Summary Create user
// @Description Omitted tier, verification flag and balances get their defaults
// @Tags users
// @Accept json
// @Produce json
// @Param user body models.CreateUserRequest true "New user"
// @Success 201 {object} models.User
// @Failure 400 {object} middleware.ErrorResponse "Invalid user data"
// @Failure 409 {object} middleware.ErrorResponse "Email already registered"
// @Failure 500 {object} middleware.ErrorResponse
// @Router /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var input models.CreateUserRequest
	if err := request.BindJSON(c, &input, "Invalid user data"); err != nil {
		request.Fail(c, err)
		return
	}

	user, err := h.service.CreateUser(c.Request.Context(), input)
	if err != nil {
		request.Fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// @Summary Update user
// @Description Only supplied fields change; depositAddress may be null
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param user body models.UpdateUserRequest true "Changed fields"
// @Success 200 {object} models.User
// @Failure 400 {object} middleware.ErrorResponse "Invalid update data"
// @Failure 404 {object} middleware.ErrorResponse "User not found"
// @Failure 409 {object} middleware.ErrorResponse "Email already registered"
// @Failure 500 {object} middleware.ErrorResponse
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := request.ParseID(c, "id")
	if err != nil {
		request.Fail(c, err)
		return
	}

	var input models.UpdateUserRequest
	if err := request.BindJSON(c, &input, "Invalid update data"); err != nil {
		request.Fail(c, err)
		return
	}

	user, err := h.service.UpdateUser(c.Request.Context(), id, input)
	if err != nil {
		request.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// @Summary Delete user
// @Tags users
// @Param id path int true "User ID"
// @Success 204
// @Failure 400 {object} middleware.ErrorResponse "Invalid id"
// @Failure 404 {object} middleware.ErrorResponse "User not found"
// @Failure 500 {object} middleware.ErrorResponse
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := request.ParseID(c, "id")
	if err != nil {
		request.Fail(c, err)
		return
	}

	if err := h.service.DeleteUser(c.Request.Context(), id); err != nil {
		request.Fail(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
