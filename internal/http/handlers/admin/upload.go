package admin

import (
	"github.com/delipedidos/api/internal/http/response"
	"github.com/delipedidos/api/internal/service"

	"github.com/gin-gonic/gin"
)

// SignUploadRequest declares the file the client wants to upload.
type SignUploadRequest struct {
	Entity      string `json:"entity" binding:"required"`
	EntityID    uint   `json:"entity_id" binding:"required"`
	ContentType string `json:"content_type" binding:"required"`
	Size        int64  `json:"size" binding:"required"`
}

// SignUpload returns a one-time signed upload URL for the object storage.
func (h *Handler) SignUpload(c *gin.Context) {
	var req SignUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "entity, entity_id, content_type and size are required")
		return
	}

	signed, err := h.UploadService.SignUpload(c.Request.Context(), service.SignUploadInput{
		Entity:      req.Entity,
		EntityID:    req.EntityID,
		ContentType: req.ContentType,
		Size:        req.Size,
	})
	if err != nil {
		respondServiceError(c, err, "upload target not found")
		return
	}
	response.Success(c, signed)
}

// SignRead returns a short-lived signed read URL for a stored object.
func (h *Handler) SignRead(c *gin.Context) {
	path := c.Query("path")
	url, err := h.UploadService.SignRead(c.Request.Context(), path)
	if err != nil {
		respondServiceError(c, err, "object not found")
		return
	}
	response.Success(c, gin.H{"url": url})
}
