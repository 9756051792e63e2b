package service

import (
	"context"
	"log/slog"

	"github.com/DevGleb/RealWorldApp/internal/domain"
	"github.com/DevGleb/RealWorldApp/internal/logger"
	"github.com/DevGleb/RealWorldApp/internal/metrics"
	"github.com/DevGleb/RealWorldApp/internal/repository"
)

// ProfileService orchestrates public profiles and the follow graph.
type ProfileService struct {
	users repository.UserRepository
}

// NewProfileService creates a new ProfileService.
func NewProfileService(users repository.UserRepository) *ProfileService {
	return &ProfileService{users: users}
}

// Get returns a user's public profile, or nil when absent. The
// following flag is computed only when a viewer is present.
func (s *ProfileService) Get(ctx context.Context, username, viewerID string) (*domain.ProfileView, error) {
	target, err := s.users.GetByUsername(ctx, username)
	if err != nil || target == nil {
		return nil, err
	}

	following := false
	if viewerID != "" {
		following, err = s.users.IsFollowing(ctx, viewerID, target.ID)
		if err != nil {
			return nil, err
		}
	}

	view := domain.NewProfileView(target, following)
	return &view, nil
}

// Follow records a follow membership and returns the target's profile
// with following=true. Following an already-followed user is a no-op.
// Following yourself fails with ErrSelfFollow.
func (s *ProfileService) Follow(ctx context.Context, username, actorID string) (*domain.ProfileView, error) {
	target, err := s.users.GetByUsername(ctx, username)
	if err != nil || target == nil {
		return nil, err
	}
	if target.ID == actorID {
		return nil, ErrSelfFollow
	}

	if err := s.users.Follow(ctx, actorID, target.ID); err != nil {
		return nil, err
	}

	metrics.Follows.WithLabelValues("follow").Inc()
	logger.Info("user followed",
		slog.String("follower_id", actorID),
		slog.String("username", username))

	view := domain.NewProfileView(target, true)
	return &view, nil
}

// Unfollow removes a follow membership and returns the target's profile
// with following=false, even when no membership existed.
func (s *ProfileService) Unfollow(ctx context.Context, username, actorID string) (*domain.ProfileView, error) {
	target, err := s.users.GetByUsername(ctx, username)
	if err != nil || target == nil {
		return nil, err
	}
	if target.ID == actorID {
		return nil, ErrSelfFollow
	}

	if err := s.users.Unfollow(ctx, actorID, target.ID); err != nil {
		return nil, err
	}

	metrics.Follows.WithLabelValues("unfollow").Inc()

	view := domain.NewProfileView(target, false)
	return &view, nil
}
