package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/DevGleb/RealWorldApp/internal/mocks"
	"github.com/DevGleb/RealWorldApp/internal/service"
)

func TestProfileService_Get(t *testing.T) {
	t.Run("anonymous viewer sees following false without a lookup", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository(t)
		svc := service.NewProfileService(userRepo)

		userRepo.EXPECT().GetByUsername(mock.Anything, "celeb").Return(testAuthor("u2", "celeb"), nil)

		view, err := svc.Get(context.Background(), "celeb", "")

		require.NoError(t, err)
		require.NotNil(t, view)
		assert.Equal(t, "celeb", view.Username)
		assert.False(t, view.Following)
	})

	t.Run("authenticated viewer sees follow state", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository(t)
		svc := service.NewProfileService(userRepo)

		userRepo.EXPECT().GetByUsername(mock.Anything, "celeb").Return(testAuthor("u2", "celeb"), nil)
		userRepo.EXPECT().IsFollowing(mock.Anything, "u1", "u2").Return(true, nil)

		view, err := svc.Get(context.Background(), "celeb", "u1")

		require.NoError(t, err)
		assert.True(t, view.Following)
	})

	t.Run("unknown username yields nil", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository(t)
		svc := service.NewProfileService(userRepo)

		userRepo.EXPECT().GetByUsername(mock.Anything, "ghost").Return(nil, nil)

		view, err := svc.Get(context.Background(), "ghost", "u1")

		require.NoError(t, err)
		assert.Nil(t, view)
	})
}

func TestProfileService_Follow(t *testing.T) {
	t.Run("records the membership and reports following", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository(t)
		svc := service.NewProfileService(userRepo)

		userRepo.EXPECT().GetByUsername(mock.Anything, "celeb").Return(testAuthor("u2", "celeb"), nil)
		userRepo.EXPECT().Follow(mock.Anything, "u1", "u2").Return(nil)

		view, err := svc.Follow(context.Background(), "celeb", "u1")

		require.NoError(t, err)
		require.NotNil(t, view)
		assert.True(t, view.Following)
	})

	t.Run("following yourself is rejected", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository(t)
		svc := service.NewProfileService(userRepo)

		userRepo.EXPECT().GetByUsername(mock.Anything, "jake").Return(testAuthor("u1", "jake"), nil)

		view, err := svc.Follow(context.Background(), "jake", "u1")

		assert.ErrorIs(t, err, service.ErrSelfFollow)
		assert.Nil(t, view)
	})

	t.Run("unknown username yields nil", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository(t)
		svc := service.NewProfileService(userRepo)

		userRepo.EXPECT().GetByUsername(mock.Anything, "ghost").Return(nil, nil)

		view, err := svc.Follow(context.Background(), "ghost", "u1")

		require.NoError(t, err)
		assert.Nil(t, view)
	})
}

func TestProfileService_Unfollow(t *testing.T) {
	t.Run("removes the membership and reports not following", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository(t)
		svc := service.NewProfileService(userRepo)

		userRepo.EXPECT().GetByUsername(mock.Anything, "celeb").Return(testAuthor("u2", "celeb"), nil)
		userRepo.EXPECT().Unfollow(mock.Anything, "u1", "u2").Return(nil)

		view, err := svc.Unfollow(context.Background(), "celeb", "u1")

		require.NoError(t, err)
		assert.False(t, view.Following)
	})

	t.Run("unfollowing someone never followed still reports not following", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository(t)
		svc := service.NewProfileService(userRepo)

		// The store's removal is a no-op for an absent membership.
		userRepo.EXPECT().GetByUsername(mock.Anything, "celeb").Return(testAuthor("u2", "celeb"), nil)
		userRepo.EXPECT().Unfollow(mock.Anything, "u1", "u2").Return(nil)

		view, err := svc.Unfollow(context.Background(), "celeb", "u1")

		require.NoError(t, err)
		assert.False(t, view.Following)
	})

	t.Run("unfollowing yourself is rejected", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository(t)
		svc := service.NewProfileService(userRepo)

		userRepo.EXPECT().GetByUsername(mock.Anything, "jake").Return(testAuthor("u1", "jake"), nil)

		view, err := svc.Unfollow(context.Background(), "jake", "u1")

		assert.ErrorIs(t, err, service.ErrSelfFollow)
		assert.Nil(t, view)
	})
}
