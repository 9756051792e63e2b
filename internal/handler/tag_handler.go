package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DevGleb/RealWorldApp/internal/middleware"
	"github.com/DevGleb/RealWorldApp/internal/service"
)

// TagHandler handles the global tag listing.
type TagHandler struct {
	tagService service.TagServiceInterface
}

// NewTagHandler creates a new TagHandler.
func NewTagHandler(tagService service.TagServiceInterface) *TagHandler {
	return &TagHandler{tagService: tagService}
}

// List handles GET /api/tags
func (h *TagHandler) List(c *gin.Context) {
	tags, err := h.tagService.List(c.Request.Context())
	if err != nil {
		log.Printf("[request_id=%s] Failed to list tags: %v", middleware.GetRequestID(c), err)
		internalError(c)
		return
	}
	if tags == nil {
		tags = []string{}
	}

	c.JSON(http.StatusOK, gin.H{"tags": tags})
}
