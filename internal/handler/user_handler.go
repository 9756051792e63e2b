package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DevGleb/RealWorldApp/internal/domain"
	"github.com/DevGleb/RealWorldApp/internal/middleware"
	"github.com/DevGleb/RealWorldApp/internal/service"
	"github.com/DevGleb/RealWorldApp/internal/validator"
)

// UserHandler handles registration, login and current-user HTTP
// requests.
type UserHandler struct {
	userService service.UserServiceInterface
	validator   *validator.Validator
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserServiceInterface, v *validator.Validator) *UserHandler {
	return &UserHandler{
		userService: userService,
		validator:   v,
	}
}

type registerRequest struct {
	User struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	} `json:"user"`
}

type loginRequest struct {
	User struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	} `json:"user"`
}

type updateUserRequest struct {
	User struct {
		Username *string `json:"username"`
		Email    *string `json:"email"`
		Password *string `json:"password"`
		Bio      *string `json:"bio"`
		Image    *string `json:"image"`
	} `json:"user"`
}

// userResponse wraps a user view in the API envelope.
type userResponse struct {
	User domain.UserView `json:"user"`
}

// Register handles POST /api/users
func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	input := validator.RegisterInput{
		Username: req.User.Username,
		Email:    req.User.Email,
		Password: req.User.Password,
	}
	if err := h.validator.ValidateRegister(&input); err != nil {
		unprocessable(c, err)
		return
	}

	view, err := h.userService.Register(c.Request.Context(), input.Username, input.Email, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			conflict(c, "email already registered")
		case errors.Is(err, service.ErrUsernameTaken):
			conflict(c, "username already taken")
		default:
			log.Printf("[request_id=%s] Failed to register user: %v", middleware.GetRequestID(c), err)
			internalError(c)
		}
		return
	}

	c.JSON(http.StatusCreated, userResponse{User: *view})
}

// Login handles POST /api/users/login
func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	input := validator.LoginInput{
		Email:    req.User.Email,
		Password: req.User.Password,
	}
	if err := h.validator.ValidateLogin(&input); err != nil {
		unprocessable(c, err)
		return
	}

	view, err := h.userService.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"errors": gin.H{"body": []string{"invalid email or password"}},
			})
			return
		}
		log.Printf("[request_id=%s] Failed to log in: %v", middleware.GetRequestID(c), err)
		internalError(c)
		return
	}

	c.JSON(http.StatusOK, userResponse{User: *view})
}

// Current handles GET /api/user
func (h *UserHandler) Current(c *gin.Context) {
	userID := middleware.GetUserID(c)

	view, err := h.userService.GetCurrent(c.Request.Context(), userID)
	if err != nil {
		log.Printf("[request_id=%s] Failed to get current user: %v", middleware.GetRequestID(c), err)
		internalError(c)
		return
	}
	if view == nil {
		notFound(c)
		return
	}

	c.JSON(http.StatusOK, userResponse{User: *view})
}

// Update handles PUT /api/user
func (h *UserHandler) Update(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	input := validator.UpdateUserInput{}
	if req.User.Email != nil {
		input.Email = *req.User.Email
	}
	if req.User.Password != nil {
		input.Password = *req.User.Password
	}
	if err := h.validator.ValidateUpdateUser(&input); err != nil {
		unprocessable(c, err)
		return
	}

	update := domain.UserUpdate{
		Username: req.User.Username,
		Email:    req.User.Email,
		Password: req.User.Password,
		Bio:      req.User.Bio,
		Image:    req.User.Image,
	}

	view, err := h.userService.UpdateCurrent(c.Request.Context(), userID, update)
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			conflict(c, "username already taken")
			return
		}
		log.Printf("[request_id=%s] Failed to update user: %v", middleware.GetRequestID(c), err)
		internalError(c)
		return
	}
	if view == nil {
		notFound(c)
		return
	}

	c.JSON(http.StatusOK, userResponse{User: *view})
}
