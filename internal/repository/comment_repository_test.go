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

func TestPostgresCommentRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := repository.NewPostgresCommentRepository(testDB.Pool)
	ctx := context.Background()

	seedComment := func(t *testing.T, articleID, authorID, body string, at time.Time) *domain.Comment {
		t.Helper()
		comment := &domain.Comment{
			ID:        uuid.New().String(),
			Body:      body,
			ArticleID: articleID,
			AuthorID:  authorID,
			CreatedAt: at.UTC().Truncate(time.Microsecond),
			UpdatedAt: at.UTC().Truncate(time.Microsecond),
		}
		require.NoError(t, repo.Add(ctx, comment))
		return comment
	}

	t.Run("list returns comments oldest first", func(t *testing.T) {
		testDB.TruncateTables(t, "users", "articles")

		author := testDB.SeedUser(t, "jake")
		article := testDB.SeedArticle(t, author.ID, "a-slug", time.Now())

		base := time.Now().UTC()
		seedComment(t, article.ID, author.ID, "second", base.Add(time.Minute))
		seedComment(t, article.ID, author.ID, "first", base)

		comments, err := repo.ListByArticle(ctx, article.ID)
		require.NoError(t, err)
		require.Len(t, comments, 2)
		assert.Equal(t, "first", comments[0].Body)
		assert.Equal(t, "second", comments[1].Body)
	})

	t.Run("get by id and delete", func(t *testing.T) {
		testDB.TruncateTables(t, "users", "articles")

		author := testDB.SeedUser(t, "jake")
		article := testDB.SeedArticle(t, author.ID, "a-slug", time.Now())
		comment := seedComment(t, article.ID, author.ID, "hello", time.Now())

		got, err := repo.GetByID(ctx, comment.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, article.ID, got.ArticleID)

		require.NoError(t, repo.Delete(ctx, comment.ID))

		gone, err := repo.GetByID(ctx, comment.ID)
		require.NoError(t, err)
		assert.Nil(t, gone)
	})
}

func TestPostgresFavoriteRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := repository.NewPostgresFavoriteRepository(testDB.Pool)
	ctx := context.Background()

	t.Run("add is idempotent and counts one membership per user", func(t *testing.T) {
		testDB.TruncateTables(t, "users", "articles")

		author := testDB.SeedUser(t, "jake")
		reader := testDB.SeedUser(t, "anna")
		article := testDB.SeedArticle(t, author.ID, "a-slug", time.Now())

		require.NoError(t, repo.Add(ctx, article.ID, reader.ID))
		require.NoError(t, repo.Add(ctx, article.ID, reader.ID))

		count, err := repo.CountByArticle(ctx, article.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		favorited, err := repo.IsFavorited(ctx, article.ID, reader.ID)
		require.NoError(t, err)
		assert.True(t, favorited)

		other, err := repo.IsFavorited(ctx, article.ID, author.ID)
		require.NoError(t, err)
		assert.False(t, other)
	})

	t.Run("remove tolerates an absent membership", func(t *testing.T) {
		testDB.TruncateTables(t, "users", "articles")

		author := testDB.SeedUser(t, "jake")
		reader := testDB.SeedUser(t, "anna")
		article := testDB.SeedArticle(t, author.ID, "a-slug", time.Now())

		require.NoError(t, repo.Add(ctx, article.ID, reader.ID))
		require.NoError(t, repo.Remove(ctx, article.ID, reader.ID))
		require.NoError(t, repo.Remove(ctx, article.ID, reader.ID))

		count, err := repo.CountByArticle(ctx, article.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})
}
