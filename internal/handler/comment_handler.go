package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DevGleb/RealWorldApp/internal/domain"
	"github.com/DevGleb/RealWorldApp/internal/middleware"
	"github.com/DevGleb/RealWorldApp/internal/service"
	"github.com/DevGleb/RealWorldApp/internal/validator"
)

// CommentHandler handles comment HTTP requests under an article slug.
type CommentHandler struct {
	commentService service.CommentServiceInterface
	validator      *validator.Validator
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(commentService service.CommentServiceInterface, v *validator.Validator) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
		validator:      v,
	}
}

type createCommentRequest struct {
	Comment struct {
		Body string `json:"body"`
	} `json:"comment"`
}

// commentResponse wraps a single comment view in the API envelope.
type commentResponse struct {
	Comment domain.CommentView `json:"comment"`
}

// commentsResponse wraps a comment list in the API envelope.
type commentsResponse struct {
	Comments []domain.CommentView `json:"comments"`
}

// Create handles POST /api/articles/:slug/comments
func (h *CommentHandler) Create(c *gin.Context) {
	slug := c.Param("slug")

	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	input := validator.CommentInput{Body: req.Comment.Body}
	if err := h.validator.ValidateComment(&input); err != nil {
		unprocessable(c, err)
		return
	}

	actorID := middleware.GetUserID(c)
	view, err := h.commentService.Add(c.Request.Context(), slug, input.Body, actorID)
	if err != nil {
		log.Printf("[request_id=%s] Failed to add comment to %s: %v", middleware.GetRequestID(c), slug, err)
		internalError(c)
		return
	}
	if view == nil {
		notFound(c)
		return
	}

	c.JSON(http.StatusCreated, commentResponse{Comment: *view})
}

// List handles GET /api/articles/:slug/comments
func (h *CommentHandler) List(c *gin.Context) {
	slug := c.Param("slug")

	views, err := h.commentService.List(c.Request.Context(), slug)
	if err != nil {
		log.Printf("[request_id=%s] Failed to list comments for %s: %v", middleware.GetRequestID(c), slug, err)
		internalError(c)
		return
	}

	c.JSON(http.StatusOK, commentsResponse{Comments: views})
}

// Delete handles DELETE /api/articles/:slug/comments/:id
func (h *CommentHandler) Delete(c *gin.Context) {
	slug := c.Param("slug")
	commentID := c.Param("id")
	actorID := middleware.GetUserID(c)

	deleted, err := h.commentService.Delete(c.Request.Context(), slug, commentID, actorID)
	if err != nil {
		log.Printf("[request_id=%s] Failed to delete comment %s: %v", middleware.GetRequestID(c), commentID, err)
		internalError(c)
		return
	}
	if !deleted {
		notFound(c)
		return
	}

	c.Status(http.StatusNoContent)
}
