package repository

import (
	"context"

	"github.com/DevGleb/RealWorldApp/internal/domain"
)

// Repositories are stateless facades over the datastore. Lookup methods
// return (nil, nil) when no row matches; uniqueness is enforced by the
// database constraints, surfaced as ErrDuplicate.

// ArticleRepository defines persistence operations for articles and
// their tag memberships.
type ArticleRepository interface {
	Count(ctx context.Context) (int, error)
	List(ctx context.Context, limit, offset int) ([]domain.Article, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Article, error)
	CountByAuthors(ctx context.Context, authorIDs []string) (int, error)
	ListByAuthors(ctx context.Context, authorIDs []string, limit, offset int) ([]domain.Article, error)
	ListTags(ctx context.Context, articleID string) ([]string, error)
	AttachTag(ctx context.Context, articleID, tagName string) error
	Add(ctx context.Context, article *domain.Article) error
	Update(ctx context.Context, article *domain.Article) error
	Delete(ctx context.Context, id string) error
}

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	Add(ctx context.Context, comment *domain.Comment) error
	ListByArticle(ctx context.Context, articleID string) ([]domain.Comment, error)
	GetByID(ctx context.Context, id string) (*domain.Comment, error)
	Delete(ctx context.Context, id string) error
}

// FavoriteRepository defines persistence operations for the
// (user, article) favorite membership relation.
type FavoriteRepository interface {
	CountByArticle(ctx context.Context, articleID string) (int, error)
	IsFavorited(ctx context.Context, articleID, userID string) (bool, error)
	Add(ctx context.Context, articleID, userID string) error
	Remove(ctx context.Context, articleID, userID string) error
}

// UserRepository defines persistence operations for users and the
// follow graph.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Add(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	FollowingIDs(ctx context.Context, userID string) ([]string, error)
	IsFollowing(ctx context.Context, followerID, followingID string) (bool, error)
	Follow(ctx context.Context, followerID, followingID string) error
	Unfollow(ctx context.Context, followerID, followingID string) error
}

// TagRepository defines read access to the global tag set.
type TagRepository interface {
	ListAllDistinct(ctx context.Context) ([]string, error)
}
