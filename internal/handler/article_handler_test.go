package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/DevGleb/RealWorldApp/internal/domain"
	"github.com/DevGleb/RealWorldApp/internal/middleware"
	"github.com/DevGleb/RealWorldApp/internal/mocks"
	"github.com/DevGleb/RealWorldApp/internal/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testArticleView(slug string) *domain.ArticleView {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return &domain.ArticleView{
		Slug:        slug,
		Title:       "How to train your dragon",
		Description: "Ever wonder how?",
		Body:        "Very carefully.",
		TagList:     []string{"dragons"},
		CreatedAt:   now,
		UpdatedAt:   now,
		Author:      domain.ProfileView{Username: "jake"},
	}
}

// asUser injects an authenticated identity the way the auth middleware
// would.
func asUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID)
		c.Next()
	}
}

func TestArticleHandler_List(t *testing.T) {
	t.Run("returns the page with the total count", func(t *testing.T) {
		mockService := mocks.NewMockArticleServiceInterface(t)
		h := NewArticleHandler(mockService, validator.NewValidator())

		mockService.EXPECT().List(mock.Anything, 20, 0, "").Return(&domain.ArticleList{
			Articles:      []domain.ArticleView{*testArticleView("a-slug")},
			ArticlesCount: 42,
		}, nil)

		router := gin.New()
		router.GET("/api/articles", h.List)

		req := httptest.NewRequest(http.MethodGet, "/api/articles", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Articles      []map[string]any `json:"articles"`
			ArticlesCount int              `json:"articlesCount"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 42, resp.ArticlesCount)
		require.Len(t, resp.Articles, 1)
		assert.Equal(t, "a-slug", resp.Articles[0]["slug"])
	})

	t.Run("clamps an oversized limit", func(t *testing.T) {
		mockService := mocks.NewMockArticleServiceInterface(t)
		h := NewArticleHandler(mockService, validator.NewValidator())

		mockService.EXPECT().List(mock.Anything, MaxLimit, 40, "").Return(&domain.ArticleList{
			Articles: []domain.ArticleView{}, ArticlesCount: 0,
		}, nil)

		router := gin.New()
		router.GET("/api/articles", h.List)

		req := httptest.NewRequest(http.MethodGet, "/api/articles?limit=9999&offset=40", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestArticleHandler_Get(t *testing.T) {
	t.Run("unknown slug yields 404", func(t *testing.T) {
		mockService := mocks.NewMockArticleServiceInterface(t)
		h := NewArticleHandler(mockService, validator.NewValidator())

		mockService.EXPECT().GetBySlug(mock.Anything, "no-such-slug", "").Return(nil, nil)

		router := gin.New()
		router.GET("/api/articles/:slug", h.Get)

		req := httptest.NewRequest(http.MethodGet, "/api/articles/no-such-slug", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("wraps the article in its envelope", func(t *testing.T) {
		mockService := mocks.NewMockArticleServiceInterface(t)
		h := NewArticleHandler(mockService, validator.NewValidator())

		mockService.EXPECT().GetBySlug(mock.Anything, "a-slug", "u1").Return(testArticleView("a-slug"), nil)

		router := gin.New()
		router.GET("/api/articles/:slug", asUser("u1"), h.Get)

		req := httptest.NewRequest(http.MethodGet, "/api/articles/a-slug", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Article map[string]any `json:"article"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "a-slug", resp.Article["slug"])
		assert.Equal(t, "jake", resp.Article["author"].(map[string]any)["username"])
	})
}

func TestArticleHandler_Create(t *testing.T) {
	t.Run("creates and returns 201", func(t *testing.T) {
		mockService := mocks.NewMockArticleServiceInterface(t)
		h := NewArticleHandler(mockService, validator.NewValidator())

		mockService.EXPECT().
			Create(mock.Anything, "How to train your dragon", "Ever wonder how?", "Very carefully.", []string{"dragons"}, "u1").
			Return(testArticleView("how-to-train-your-dragon-abcd1234"), nil)

		router := gin.New()
		router.POST("/api/articles", asUser("u1"), h.Create)

		body := `{"article":{"title":"How to train your dragon","description":"Ever wonder how?","body":"Very carefully.","tagList":["dragons"]}}`
		req := httptest.NewRequest(http.MethodPost, "/api/articles", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("rejects a short title with 422", func(t *testing.T) {
		mockService := mocks.NewMockArticleServiceInterface(t)
		h := NewArticleHandler(mockService, validator.NewValidator())

		router := gin.New()
		router.POST("/api/articles", asUser("u1"), h.Create)

		body := `{"article":{"title":"ab","description":"d","body":"b"}}`
		req := httptest.NewRequest(http.MethodPost, "/api/articles", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "errors")
	})

	t.Run("rejects malformed JSON with 400", func(t *testing.T) {
		mockService := mocks.NewMockArticleServiceInterface(t)
		h := NewArticleHandler(mockService, validator.NewValidator())

		router := gin.New()
		router.POST("/api/articles", asUser("u1"), h.Create)

		req := httptest.NewRequest(http.MethodPost, "/api/articles", bytes.NewBufferString("{not json"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestArticleHandler_Delete(t *testing.T) {
	t.Run("deletes and returns 204", func(t *testing.T) {
		mockService := mocks.NewMockArticleServiceInterface(t)
		h := NewArticleHandler(mockService, validator.NewValidator())

		mockService.EXPECT().Delete(mock.Anything, "a-slug", "u1").Return(true, nil)

		router := gin.New()
		router.DELETE("/api/articles/:slug", asUser("u1"), h.Delete)

		req := httptest.NewRequest(http.MethodDelete, "/api/articles/a-slug", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("non-owner sees 404", func(t *testing.T) {
		mockService := mocks.NewMockArticleServiceInterface(t)
		h := NewArticleHandler(mockService, validator.NewValidator())

		mockService.EXPECT().Delete(mock.Anything, "a-slug", "u2").Return(false, nil)

		router := gin.New()
		router.DELETE("/api/articles/:slug", asUser("u2"), h.Delete)

		req := httptest.NewRequest(http.MethodDelete, "/api/articles/a-slug", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestArticleHandler_Favorite(t *testing.T) {
	t.Run("returns the refreshed article", func(t *testing.T) {
		mockService := mocks.NewMockArticleServiceInterface(t)
		h := NewArticleHandler(mockService, validator.NewValidator())

		view := testArticleView("a-slug")
		view.Favorited = true
		view.FavoritesCount = 1
		mockService.EXPECT().Favorite(mock.Anything, "a-slug", "u2").Return(view, nil)

		router := gin.New()
		router.POST("/api/articles/:slug/favorite", asUser("u2"), h.Favorite)

		req := httptest.NewRequest(http.MethodPost, "/api/articles/a-slug/favorite", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Article map[string]any `json:"article"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, true, resp.Article["favorited"])
		assert.Equal(t, float64(1), resp.Article["favoritesCount"])
	})
}
