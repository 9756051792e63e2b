package handler

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DevGleb/RealWorldApp/internal/domain"
	"github.com/DevGleb/RealWorldApp/internal/middleware"
	"github.com/DevGleb/RealWorldApp/internal/service"
)

// ProfileHandler handles public profile and follow-graph HTTP requests.
type ProfileHandler struct {
	profileService service.ProfileServiceInterface
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService service.ProfileServiceInterface) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// profileResponse wraps a profile view in the API envelope.
type profileResponse struct {
	Profile domain.ProfileView `json:"profile"`
}

// Get handles GET /api/profiles/:username
func (h *ProfileHandler) Get(c *gin.Context) {
	username := c.Param("username")
	viewerID := middleware.GetUserID(c)

	view, err := h.profileService.Get(c.Request.Context(), username, viewerID)
	if err != nil {
		log.Printf("[request_id=%s] Failed to get profile %s: %v", middleware.GetRequestID(c), username, err)
		internalError(c)
		return
	}
	if view == nil {
		notFound(c)
		return
	}

	c.JSON(http.StatusOK, profileResponse{Profile: *view})
}

// Follow handles POST /api/profiles/:username/follow
func (h *ProfileHandler) Follow(c *gin.Context) {
	h.mutateFollow(c, h.profileService.Follow)
}

// Unfollow handles DELETE /api/profiles/:username/follow
func (h *ProfileHandler) Unfollow(c *gin.Context) {
	h.mutateFollow(c, h.profileService.Unfollow)
}

// mutateFollow runs a follow-graph mutation; Follow and Unfollow differ
// only in the service call.
func (h *ProfileHandler) mutateFollow(c *gin.Context, op func(ctx context.Context, username, actorID string) (*domain.ProfileView, error)) {
	username := c.Param("username")
	actorID := middleware.GetUserID(c)

	view, err := op(c.Request.Context(), username, actorID)
	if err != nil {
		if errors.Is(err, service.ErrSelfFollow) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"errors": gin.H{"body": []string{"cannot follow yourself"}},
			})
			return
		}
		log.Printf("[request_id=%s] Failed to change follow state for %s: %v", middleware.GetRequestID(c), username, err)
		internalError(c)
		return
	}
	if view == nil {
		notFound(c)
		return
	}

	c.JSON(http.StatusOK, profileResponse{Profile: *view})
}
