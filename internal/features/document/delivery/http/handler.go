package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trading-platform-backend/internal/common/request"
	"trading-platform-backend/internal/features/document/models"
	"trading-platform-backend/internal/features/document/service"
)

type DocumentHandler struct {
	service service.DocumentService
}

func NewDocumentHandler(service service.DocumentService) *DocumentHandler {
	return &DocumentHandler{service: service}
}

func (h *DocumentHandler) RegisterRoutes(router *gin.RouterGroup, wrap func(gin.HandlerFunc) gin.HandlerFunc) {
	router.GET("/users/:id/documents", wrap(h.GetUserDocuments))

	documents := router.Group("/documents")
	{
		documents.GET("/:id", wrap(h.GetDocument))
		documents.POST("", wrap(h.SubmitDocument))
		documents.PUT("/:id", wrap(h.UpdateDocument))
		documents.DELETE("/:id", wrap(h.DeleteDocument))
	}
}

// @Summary List user document verifications
// @Description Most recently submitted first
// @Tags documents
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} models.DocumentVerification
// @Failure 400 {object} middleware.ErrorResponse "Invalid id"
// @Failure 500 {object} middleware.ErrorResponse
// @Router /users/{id}/documents [get]
func (h *DocumentHandler) GetUserDocuments(c *gin.Context) {
	userID, err := request.ParseID(c, "id")
	if err != nil {
		request.Fail(c, err)
		return
	}

	items, err := h.service.GetUserDocuments(c.Request.Context(), userID)
	if err != nil {
		request.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// @Summary Get document verification
// @Tags documents
// @Produce json
// @Param id path int true "Document verification ID"
// @Success 200 {object} models.DocumentVerification
// @Failure 400 {object} middleware.ErrorResponse "Invalid id"
// @Failure 404 {object} middleware.ErrorResponse "Document verification not found"
// @Failure 500 {object} middleware.ErrorResponse
// @Router /documents/{id} [get]
func (h *DocumentHandler) GetDocument(c *gin.Context) {
	id, err := request.ParseID(c, "id")
	if err != nil {
		request.Fail(c, err)
		return
	}

	d, err := h.service.GetDocument(c.Request.Context(), id)
	if err != nil {
		request.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, d)
}

// @Summary Submit document for verification
// @Description Image fields hold references returned by the upload store
// @Tags documents
// @Accept json
// @Produce json
// @Param document body models.CreateDocumentRequest true "Submission"
// @Success 201 {object} models.DocumentVerification
// @Failure 400 {object} middleware.ErrorResponse "Invalid document data"
// @Failure 500 {object} middleware.ErrorResponse
// @Router /documents [post]
func (h *DocumentHandler) SubmitDocument(c *gin.Context) {
	var input models.CreateDocumentRequest
	if err := request.BindJSON(c, &input, "Invalid document data"); err != nil {
		request.Fail(c, err)
		return
	}

	d, err := h.service.SubmitDocument(c.Request.Context(), input)
	if err != nil {
		request.Fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, d)
}

// @Summary Update document verification
// @Description Merges the supplied fields; reviewedAt changes only when sent
// @Tags documents
// @Accept json
// @Produce json
// @Param id path int true "Document verification ID"
// @Param document body models.UpdateDocumentRequest true "Changed fields"
// @Success 200 {object} models.DocumentVerification
// @Failure 400 {object} middleware.ErrorResponse "Invalid update data"
// @Failure 404 {object} middleware.ErrorResponse "Document verification not found"
// @Failure 500 {object} middleware.ErrorResponse
// @Router /documents/{id} [put]
func (h *DocumentHandler) UpdateDocument(c *gin.Context) {
	id, err := request.ParseID(c, "id")
	if err != nil {
		request.Fail(c, err)
		return
	}

	var input models.UpdateDocumentRequest
	if err := request.BindJSON(c, &input, "Invalid update data"); err != nil {
		request.Fail(c, err)
		return
	}

	d, err := h.service.UpdateDocument(c.Request.Context(), id, input)
	if err != nil {
		request.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, d)
}

// @Summary Delete document verification
// @Tags documents
// @Param id path int true "Document verification ID"
// @Success 204
// @Failure 400 {object} middleware.ErrorResponse "Invalid id"
// @Failure 404 {object} middleware.ErrorResponse "Document verification not found"
// @Failure 500 {object} middleware.ErrorResponse
// @Router /documents/{id} [delete]
func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	id, err := request.ParseID(c, "id")
	if err != nil {
		request.Fail(c, err)
		return
	}

	if err := h.service.DeleteDocument(c.Request.Context(), id); err != nil {
		request.Fail(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
