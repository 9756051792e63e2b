package service

import (
	"context"

	"github.com/DevGleb/RealWorldApp/internal/domain"
)

// PasswordHasher hashes and verifies passwords. Implemented by
// auth.PasswordHasher; the services never look inside a hash.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hashed string) bool
}

// TokenIssuer issues opaque authentication tokens. Implemented by
// auth.TokenManager.
type TokenIssuer interface {
	Issue(userID, email string) (string, error)
}

// ArticleServiceInterface defines the article operations consumed by
// the HTTP layer. Used for dependency injection and mocking in tests.
type ArticleServiceInterface interface {
	// List returns a page of the global article listing, newest first.
	// viewerID may be empty for anonymous callers.
	List(ctx context.Context, limit, offset int, viewerID string) (*domain.ArticleList, error)
	// Feed returns the page of articles authored by users the viewer
	// follows, newest first.
	Feed(ctx context.Context, viewerID string, limit, offset int) (*domain.ArticleList, error)
	// GetBySlug returns the composed article, or nil when absent.
	GetBySlug(ctx context.Context, slug, viewerID string) (*domain.ArticleView, error)
	// Create persists a new article with its tags and returns the
	// composed view.
	Create(ctx context.Context, title, description, body string, tagNames []string, authorID string) (*domain.ArticleView, error)
	// Update applies a partial update. It returns nil when the slug is
	// unknown or the actor is not the author.
	Update(ctx context.Context, slug string, update domain.ArticleUpdate, actorID string) (*domain.ArticleView, error)
	// Delete removes an article. It returns true iff the article
	// existed and the actor owned it.
	Delete(ctx context.Context, slug, actorID string) (bool, error)
	// Favorite records a favorite membership; idempotent.
	Favorite(ctx context.Context, slug, actorID string) (*domain.ArticleView, error)
	// Unfavorite removes a favorite membership; idempotent.
	Unfavorite(ctx context.Context, slug, actorID string) (*domain.ArticleView, error)
}

// CommentServiceInterface defines the comment operations consumed by
// the HTTP layer.
type CommentServiceInterface interface {
	// Add attaches a comment to the article with the given slug, or
	// returns nil when the article is absent.
	Add(ctx context.Context, slug, body, actorID string) (*domain.CommentView, error)
	// List returns the article's comments in chronological order. A
	// missing article yields an empty list, not an error.
	List(ctx context.Context, slug string) ([]domain.CommentView, error)
	// Delete removes a comment. It returns true iff the comment exists,
	// belongs to the slug's article, and was authored by the actor.
	Delete(ctx context.Context, slug, commentID, actorID string) (bool, error)
}

// ProfileServiceInterface defines the profile and follow-graph
// operations consumed by the HTTP layer.
type ProfileServiceInterface interface {
	// Get returns a user's public profile, or nil when absent.
	Get(ctx context.Context, username, viewerID string) (*domain.ProfileView, error)
	// Follow records a follow membership; idempotent. Following
	// yourself fails with ErrSelfFollow.
	Follow(ctx context.Context, username, actorID string) (*domain.ProfileView, error)
	// Unfollow removes a follow membership; idempotent.
	Unfollow(ctx context.Context, username, actorID string) (*domain.ProfileView, error)
}

// UserServiceInterface defines registration, login and current-user
// operations consumed by the HTTP layer.
type UserServiceInterface interface {
	// Register creates an account and returns the view with a fresh
	// token. Duplicates fail with ErrEmailTaken or ErrUsernameTaken.
	Register(ctx context.Context, username, email, password string) (*domain.UserView, error)
	// Login verifies credentials and returns the view with a fresh
	// token, or ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (*domain.UserView, error)
	// GetCurrent returns the authenticated user's own view, or nil
	// when the account no longer exists.
	GetCurrent(ctx context.Context, userID string) (*domain.UserView, error)
	// UpdateCurrent applies a partial update to the authenticated user.
	UpdateCurrent(ctx context.Context, userID string, update domain.UserUpdate) (*domain.UserView, error)
}

// TagServiceInterface exposes the global tag listing.
type TagServiceInterface interface {
	List(ctx context.Context) ([]string, error)
}
