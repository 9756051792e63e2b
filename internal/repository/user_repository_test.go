package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DevGleb/RealWorldApp/internal/domain"
	"github.com/DevGleb/RealWorldApp/internal/repository"
)

func TestPostgresUserRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := repository.NewPostgresUserRepository(testDB.Pool)
	ctx := context.Background()

	t.Run("add and look up by id, email and username", func(t *testing.T) {
		testDB.TruncateTables(t, "users")

		seeded := testDB.SeedUser(t, "jake")

		byID, err := repo.GetByID(ctx, seeded.ID)
		require.NoError(t, err)
		require.NotNil(t, byID)
		assert.Equal(t, "jake", byID.Username)

		byEmail, err := repo.GetByEmail(ctx, "jake@example.com")
		require.NoError(t, err)
		require.NotNil(t, byEmail)
		assert.Equal(t, seeded.ID, byEmail.ID)

		byUsername, err := repo.GetByUsername(ctx, "jake")
		require.NoError(t, err)
		require.NotNil(t, byUsername)
		assert.Equal(t, seeded.ID, byUsername.ID)
	})

	t.Run("missing rows yield nil without an error", func(t *testing.T) {
		testDB.TruncateTables(t, "users")

		user, err := repo.GetByEmail(ctx, "ghost@example.com")
		require.NoError(t, err)
		assert.Nil(t, user)

		user, err = repo.GetByID(ctx, uuid.New().String())
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("duplicate email surfaces ErrDuplicate", func(t *testing.T) {
		testDB.TruncateTables(t, "users")

		testDB.SeedUser(t, "jake")

		now := time.Now().UTC()
		err := repo.Add(ctx, &domain.User{
			ID:           uuid.New().String(),
			Username:     "jake2",
			Email:        "jake@example.com",
			PasswordHash: "x",
			CreatedAt:    now,
			UpdatedAt:    now,
		})

		assert.ErrorIs(t, err, repository.ErrDuplicate)
	})

	t.Run("duplicate username surfaces ErrDuplicate", func(t *testing.T) {
		testDB.TruncateTables(t, "users")

		testDB.SeedUser(t, "jake")

		now := time.Now().UTC()
		err := repo.Add(ctx, &domain.User{
			ID:           uuid.New().String(),
			Username:     "jake",
			Email:        "other@example.com",
			PasswordHash: "x",
			CreatedAt:    now,
			UpdatedAt:    now,
		})

		assert.ErrorIs(t, err, repository.ErrDuplicate)
	})

	t.Run("update persists changed fields", func(t *testing.T) {
		testDB.TruncateTables(t, "users")

		user := testDB.SeedUser(t, "jake")
		user.Bio = "I work at statefarm"
		user.UpdatedAt = time.Now().UTC().Truncate(time.Microsecond)

		require.NoError(t, repo.Update(ctx, user))

		got, err := repo.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "I work at statefarm", got.Bio)
	})

	t.Run("follow is idempotent and drives IsFollowing and FollowingIDs", func(t *testing.T) {
		testDB.TruncateTables(t, "users")

		follower := testDB.SeedUser(t, "jake")
		followee := testDB.SeedUser(t, "celeb")

		require.NoError(t, repo.Follow(ctx, follower.ID, followee.ID))
		require.NoError(t, repo.Follow(ctx, follower.ID, followee.ID))

		following, err := repo.IsFollowing(ctx, follower.ID, followee.ID)
		require.NoError(t, err)
		assert.True(t, following)

		ids, err := repo.FollowingIDs(ctx, follower.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{followee.ID}, ids)

		// Not symmetric.
		reverse, err := repo.IsFollowing(ctx, followee.ID, follower.ID)
		require.NoError(t, err)
		assert.False(t, reverse)
	})

	t.Run("unfollow removes the membership and tolerates absence", func(t *testing.T) {
		testDB.TruncateTables(t, "users")

		follower := testDB.SeedUser(t, "jake")
		followee := testDB.SeedUser(t, "celeb")

		require.NoError(t, repo.Follow(ctx, follower.ID, followee.ID))
		require.NoError(t, repo.Unfollow(ctx, follower.ID, followee.ID))
		require.NoError(t, repo.Unfollow(ctx, follower.ID, followee.ID))

		following, err := repo.IsFollowing(ctx, follower.ID, followee.ID)
		require.NoError(t, err)
		assert.False(t, following)
	})
}
