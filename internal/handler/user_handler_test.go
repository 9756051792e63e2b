package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/DevGleb/RealWorldApp/internal/domain"
	"github.com/DevGleb/RealWorldApp/internal/mocks"
	"github.com/DevGleb/RealWorldApp/internal/service"
	"github.com/DevGleb/RealWorldApp/internal/validator"
)

func TestUserHandler_Register(t *testing.T) {
	t.Run("registers and returns 201 with a token", func(t *testing.T) {
		mockService := mocks.NewMockUserServiceInterface(t)
		h := NewUserHandler(mockService, validator.NewValidator())

		mockService.EXPECT().
			Register(mock.Anything, "jake", "jake@example.com", "secret1").
			Return(&domain.UserView{Username: "jake", Email: "jake@example.com", Token: "jwt-token"}, nil)

		router := gin.New()
		router.POST("/api/users", h.Register)

		body := `{"user":{"username":"jake","email":"jake@example.com","password":"secret1"}}`
		req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)

		var resp struct {
			User map[string]any `json:"user"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "jake", resp.User["username"])
		assert.Equal(t, "jwt-token", resp.User["token"])
	})

	t.Run("duplicate email yields 409", func(t *testing.T) {
		mockService := mocks.NewMockUserServiceInterface(t)
		h := NewUserHandler(mockService, validator.NewValidator())

		mockService.EXPECT().
			Register(mock.Anything, "jake2", "jake@example.com", "secret1").
			Return(nil, service.ErrEmailTaken)

		router := gin.New()
		router.POST("/api/users", h.Register)

		body := `{"user":{"username":"jake2","email":"jake@example.com","password":"secret1"}}`
		req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("invalid input yields 422 before the service is called", func(t *testing.T) {
		mockService := mocks.NewMockUserServiceInterface(t)
		h := NewUserHandler(mockService, validator.NewValidator())

		router := gin.New()
		router.POST("/api/users", h.Register)

		body := `{"user":{"username":"jake","email":"not-an-email","password":"secret1"}}`
		req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestUserHandler_Login(t *testing.T) {
	t.Run("bad credentials yield 401", func(t *testing.T) {
		mockService := mocks.NewMockUserServiceInterface(t)
		h := NewUserHandler(mockService, validator.NewValidator())

		mockService.EXPECT().
			Login(mock.Anything, "jake@example.com", "wrong").
			Return(nil, service.ErrInvalidCredentials)

		router := gin.New()
		router.POST("/api/users/login", h.Login)

		body := `{"user":{"email":"jake@example.com","password":"wrong"}}`
		req := httptest.NewRequest(http.MethodPost, "/api/users/login", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestUserHandler_Update(t *testing.T) {
	t.Run("passes only the supplied fields through", func(t *testing.T) {
		mockService := mocks.NewMockUserServiceInterface(t)
		h := NewUserHandler(mockService, validator.NewValidator())

		var captured domain.UserUpdate
		mockService.EXPECT().
			UpdateCurrent(mock.Anything, "u1", mock.Anything).
			Run(func(ctx context.Context, userID string, update domain.UserUpdate) {
				captured = update
			}).
			Return(&domain.UserView{Username: "jake", Bio: "new bio", Token: "jwt-token"}, nil)

		router := gin.New()
		router.PUT("/api/user", asUser("u1"), h.Update)

		body := `{"user":{"bio":"new bio"}}`
		req := httptest.NewRequest(http.MethodPut, "/api/user", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "new bio")
		require.NotNil(t, captured.Bio)
		assert.Equal(t, "new bio", *captured.Bio)
		assert.Nil(t, captured.Username)
		assert.Nil(t, captured.Password)
	})
}
