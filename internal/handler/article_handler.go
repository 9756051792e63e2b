package handler

import (
	"context"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/DevGleb/RealWorldApp/internal/domain"
	"github.com/DevGleb/RealWorldApp/internal/middleware"
	"github.com/DevGleb/RealWorldApp/internal/service"
	"github.com/DevGleb/RealWorldApp/internal/validator"
)

// ArticleHandler handles article HTTP requests: listing, the feed, and
// the per-slug operations including the favorite relation.
type ArticleHandler struct {
	articleService service.ArticleServiceInterface
	validator      *validator.Validator
}

// NewArticleHandler creates a new ArticleHandler.
func NewArticleHandler(articleService service.ArticleServiceInterface, v *validator.Validator) *ArticleHandler {
	return &ArticleHandler{
		articleService: articleService,
		validator:      v,
	}
}

type createArticleRequest struct {
	Article struct {
		Title       string   `json:"title"`
		Description string   `json:"description"`
		Body        string   `json:"body"`
		TagList     []string `json:"tagList"`
	} `json:"article"`
}

type updateArticleRequest struct {
	Article struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Body        *string `json:"body"`
	} `json:"article"`
}

// articleResponse wraps a single article view in the API envelope.
type articleResponse struct {
	Article domain.ArticleView `json:"article"`
}

// pagination extracts limit and offset query parameters, clamping them
// to the allowed range. Garbage values fall back to the defaults.
func pagination(c *gin.Context) (limit, offset int) {
	limit = DefaultLimit
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	offset = DefaultOffset
	if raw := c.Query("offset"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			offset = n
		}
	}
	return limit, offset
}

// List handles GET /api/articles
func (h *ArticleHandler) List(c *gin.Context) {
	limit, offset := pagination(c)
	viewerID := middleware.GetUserID(c)

	list, err := h.articleService.List(c.Request.Context(), limit, offset, viewerID)
	if err != nil {
		log.Printf("[request_id=%s] Failed to list articles: %v", middleware.GetRequestID(c), err)
		internalError(c)
		return
	}

	c.JSON(http.StatusOK, list)
}

// Feed handles GET /api/articles/feed
func (h *ArticleHandler) Feed(c *gin.Context) {
	limit, offset := pagination(c)
	viewerID := middleware.GetUserID(c)

	list, err := h.articleService.Feed(c.Request.Context(), viewerID, limit, offset)
	if err != nil {
		log.Printf("[request_id=%s] Failed to build feed: %v", middleware.GetRequestID(c), err)
		internalError(c)
		return
	}

	c.JSON(http.StatusOK, list)
}

// Get handles GET /api/articles/:slug
func (h *ArticleHandler) Get(c *gin.Context) {
	slug := c.Param("slug")
	viewerID := middleware.GetUserID(c)

	view, err := h.articleService.GetBySlug(c.Request.Context(), slug, viewerID)
	if err != nil {
		log.Printf("[request_id=%s] Failed to get article %s: %v", middleware.GetRequestID(c), slug, err)
		internalError(c)
		return
	}
	if view == nil {
		notFound(c)
		return
	}

	c.JSON(http.StatusOK, articleResponse{Article: *view})
}

// Create handles POST /api/articles
func (h *ArticleHandler) Create(c *gin.Context) {
	var req createArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	input := validator.ArticleInput{
		Title:       req.Article.Title,
		Description: req.Article.Description,
		Body:        req.Article.Body,
	}
	if err := h.validator.ValidateArticle(&input); err != nil {
		unprocessable(c, err)
		return
	}

	authorID := middleware.GetUserID(c)
	view, err := h.articleService.Create(c.Request.Context(),
		input.Title, input.Description, input.Body, req.Article.TagList, authorID)
	if err != nil {
		log.Printf("[request_id=%s] Failed to create article: %v", middleware.GetRequestID(c), err)
		internalError(c)
		return
	}

	c.JSON(http.StatusCreated, articleResponse{Article: *view})
}

// Update handles PUT /api/articles/:slug
func (h *ArticleHandler) Update(c *gin.Context) {
	slug := c.Param("slug")

	var req updateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	update := domain.ArticleUpdate{
		Title:       req.Article.Title,
		Description: req.Article.Description,
		Body:        req.Article.Body,
	}

	actorID := middleware.GetUserID(c)
	view, err := h.articleService.Update(c.Request.Context(), slug, update, actorID)
	if err != nil {
		log.Printf("[request_id=%s] Failed to update article %s: %v", middleware.GetRequestID(c), slug, err)
		internalError(c)
		return
	}
	if view == nil {
		notFound(c)
		return
	}

	c.JSON(http.StatusOK, articleResponse{Article: *view})
}

// Delete handles DELETE /api/articles/:slug
func (h *ArticleHandler) Delete(c *gin.Context) {
	slug := c.Param("slug")
	actorID := middleware.GetUserID(c)

	deleted, err := h.articleService.Delete(c.Request.Context(), slug, actorID)
	if err != nil {
		log.Printf("[request_id=%s] Failed to delete article %s: %v", middleware.GetRequestID(c), slug, err)
		internalError(c)
		return
	}
	if !deleted {
		notFound(c)
		return
	}

	c.Status(http.StatusNoContent)
}

// Favorite handles POST /api/articles/:slug/favorite
func (h *ArticleHandler) Favorite(c *gin.Context) {
	h.mutateFavorite(c, h.articleService.Favorite)
}

// Unfavorite handles DELETE /api/articles/:slug/favorite
func (h *ArticleHandler) Unfavorite(c *gin.Context) {
	h.mutateFavorite(c, h.articleService.Unfavorite)
}

func (h *ArticleHandler) mutateFavorite(c *gin.Context, op func(ctx context.Context, slug, actorID string) (*domain.ArticleView, error)) {
	slug := c.Param("slug")
	actorID := middleware.GetUserID(c)

	view, err := op(c.Request.Context(), slug, actorID)
	if err != nil {
		log.Printf("[request_id=%s] Failed to change favorite state for %s: %v", middleware.GetRequestID(c), slug, err)
		internalError(c)
		return
	}
	if view == nil {
		notFound(c)
		return
	}

	c.JSON(http.StatusOK, articleResponse{Article: *view})
}
