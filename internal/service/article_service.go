package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/DevGleb/RealWorldApp/internal/domain"
	"github.com/DevGleb/RealWorldApp/internal/logger"
	"github.com/DevGleb/RealWorldApp/internal/metrics"
	"github.com/DevGleb/RealWorldApp/internal/repository"
	"github.com/DevGleb/RealWorldApp/internal/slug"
)

// maxSlugAttempts bounds the retry loop on slug collisions. The suffix
// carries 32 bits of entropy, so hitting the bound means something is
// wrong with the store, not with luck.
const maxSlugAttempts = 5

// ArticleService orchestrates article operations: listing, the feed,
// creation with tag attachment, ownership-guarded mutation, and the
// favorite relation. It also owns article view composition.
type ArticleService struct {
	articles  repository.ArticleRepository
	users     repository.UserRepository
	favorites repository.FavoriteRepository
}

// NewArticleService creates a new ArticleService.
func NewArticleService(
	articles repository.ArticleRepository,
	users repository.UserRepository,
	favorites repository.FavoriteRepository,
) *ArticleService {
	return &ArticleService{
		articles:  articles,
		users:     users,
		favorites: favorites,
	}
}

// List returns a page of the global listing ordered by creation time
// descending. ArticlesCount always reflects the full population,
// independent of limit and offset.
func (s *ArticleService) List(ctx context.Context, limit, offset int, viewerID string) (*domain.ArticleList, error) {
	totalCount, err := s.articles.Count(ctx)
	if err != nil {
		return nil, err
	}

	articles, err := s.articles.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	return s.buildArticleList(ctx, articles, totalCount, viewerID, false)
}

// Feed returns the page of articles authored by users the viewer
// follows. Feed membership implies a follow relationship, so every
// entry's author is composed with following=true. An empty follow set
// yields an empty feed, not an error.
func (s *ArticleService) Feed(ctx context.Context, viewerID string, limit, offset int) (*domain.ArticleList, error) {
	followingIDs, err := s.users.FollowingIDs(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	if len(followingIDs) == 0 {
		return &domain.ArticleList{Articles: []domain.ArticleView{}, ArticlesCount: 0}, nil
	}

	totalCount, err := s.articles.CountByAuthors(ctx, followingIDs)
	if err != nil {
		return nil, err
	}

	articles, err := s.articles.ListByAuthors(ctx, followingIDs, limit, offset)
	if err != nil {
		return nil, err
	}

	return s.buildArticleList(ctx, articles, totalCount, viewerID, true)
}

// GetBySlug returns the composed article, or nil when absent.
func (s *ArticleService) GetBySlug(ctx context.Context, slugStr, viewerID string) (*domain.ArticleView, error) {
	article, err := s.articles.GetBySlug(ctx, slugStr)
	if err != nil || article == nil {
		return nil, err
	}
	return s.buildArticleView(ctx, article, viewerID, false)
}

// Create persists a new article, generating a unique slug and attaching
// each distinct tag name. Tags are created on first global use and
// reused thereafter. Title, description and body are validated
// upstream.
func (s *ArticleService) Create(ctx context.Context, title, description, body string, tagNames []string, authorID string) (*domain.ArticleView, error) {
	now := time.Now().UTC()
	article := &domain.Article{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		Body:        body,
		AuthorID:    authorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.addWithUniqueSlug(ctx, article); err != nil {
		return nil, err
	}

	for _, tagName := range dedupe(tagNames) {
		if err := s.articles.AttachTag(ctx, article.ID, tagName); err != nil {
			return nil, err
		}
	}

	metrics.ArticlesCreated.Inc()
	logger.Info("article created",
		slog.String("slug", article.Slug),
		slog.String("author_id", authorID))

	return s.buildArticleView(ctx, article, authorID, false)
}

// addWithUniqueSlug inserts the article, regenerating the slug suffix
// when the store reports a collision.
func (s *ArticleService) addWithUniqueSlug(ctx context.Context, article *domain.Article) error {
	for attempt := 0; attempt < maxSlugAttempts; attempt++ {
		article.Slug = slug.Generate(article.Title)

		err := s.articles.Add(ctx, article)
		if err == nil {
			return nil
		}
		if !errors.Is(err, repository.ErrDuplicate) {
			return err
		}
		logger.Warn("slug collision, retrying",
			slog.String("slug", article.Slug),
			slog.Int("attempt", attempt+1))
	}
	return fmt.Errorf("generate unique slug for %q: %w", article.Title, repository.ErrDuplicate)
}

// Update applies a partial update: an empty or omitted field means
// "leave unchanged". UpdatedAt is refreshed on every successful update
// regardless of which fields changed. A missing slug and a non-owner
// actor both yield nil.
func (s *ArticleService) Update(ctx context.Context, slugStr string, update domain.ArticleUpdate, actorID string) (*domain.ArticleView, error) {
	article, err := s.articles.GetBySlug(ctx, slugStr)
	if err != nil {
		return nil, err
	}
	if article == nil || !domain.CanMutate(actorID, article.AuthorID) {
		return nil, nil
	}

	applyIfSet(&article.Title, update.Title)
	applyIfSet(&article.Description, update.Description)
	applyIfSet(&article.Body, update.Body)
	article.UpdatedAt = time.Now().UTC()

	if err := s.articles.Update(ctx, article); err != nil {
		return nil, err
	}

	return s.buildArticleView(ctx, article, actorID, false)
}

// Delete removes an article. It returns true iff the article existed
// and the actor owned it; the two failure cases are indistinguishable
// to the caller. Dependent rows go away via the store's cascades.
func (s *ArticleService) Delete(ctx context.Context, slugStr, actorID string) (bool, error) {
	article, err := s.articles.GetBySlug(ctx, slugStr)
	if err != nil {
		return false, err
	}
	if article == nil || !domain.CanMutate(actorID, article.AuthorID) {
		return false, nil
	}

	if err := s.articles.Delete(ctx, article.ID); err != nil {
		return false, err
	}

	logger.Info("article deleted",
		slog.String("slug", slugStr),
		slog.String("author_id", actorID))
	return true, nil
}

// Favorite records a favorite membership for the actor. Favoriting an
// already-favorited article is a no-op; the current composed view is
// returned either way.
func (s *ArticleService) Favorite(ctx context.Context, slugStr, actorID string) (*domain.ArticleView, error) {
	article, err := s.articles.GetBySlug(ctx, slugStr)
	if err != nil || article == nil {
		return nil, err
	}

	favorited, err := s.favorites.IsFavorited(ctx, article.ID, actorID)
	if err != nil {
		return nil, err
	}
	if !favorited {
		if err := s.favorites.Add(ctx, article.ID, actorID); err != nil {
			return nil, err
		}
		metrics.Favorites.WithLabelValues("add").Inc()
	}

	return s.buildArticleView(ctx, article, actorID, false)
}

// Unfavorite removes the actor's favorite membership; idempotent in the
// same sense as Favorite.
func (s *ArticleService) Unfavorite(ctx context.Context, slugStr, actorID string) (*domain.ArticleView, error) {
	article, err := s.articles.GetBySlug(ctx, slugStr)
	if err != nil || article == nil {
		return nil, err
	}

	favorited, err := s.favorites.IsFavorited(ctx, article.ID, actorID)
	if err != nil {
		return nil, err
	}
	if favorited {
		if err := s.favorites.Remove(ctx, article.ID, actorID); err != nil {
			return nil, err
		}
		metrics.Favorites.WithLabelValues("remove").Inc()
	}

	return s.buildArticleView(ctx, article, actorID, false)
}

// buildArticleView assembles the externally visible article
// representation from four independent relations: authorship, tag
// membership, favorite count, and the viewer's favorite state. The
// author's following flag is whatever the call site supplies; single
// article composition passes false, only the feed forces true. Read
// only.
func (s *ArticleService) buildArticleView(ctx context.Context, article *domain.Article, viewerID string, following bool) (*domain.ArticleView, error) {
	author, err := s.users.GetByID(ctx, article.AuthorID)
	if err != nil {
		return nil, err
	}

	tags, err := s.articles.ListTags(ctx, article.ID)
	if err != nil {
		return nil, err
	}

	favoritesCount, err := s.favorites.CountByArticle(ctx, article.ID)
	if err != nil {
		return nil, err
	}

	favorited := false
	if viewerID != "" {
		favorited, err = s.favorites.IsFavorited(ctx, article.ID, viewerID)
		if err != nil {
			return nil, err
		}
	}

	return &domain.ArticleView{
		Slug:           article.Slug,
		Title:          article.Title,
		Description:    article.Description,
		Body:           article.Body,
		TagList:        tags,
		CreatedAt:      article.CreatedAt,
		UpdatedAt:      article.UpdatedAt,
		Favorited:      favorited,
		FavoritesCount: favoritesCount,
		Author:         domain.NewProfileView(author, following),
	}, nil
}

func (s *ArticleService) buildArticleList(ctx context.Context, articles []domain.Article, totalCount int, viewerID string, following bool) (*domain.ArticleList, error) {
	views := make([]domain.ArticleView, 0, len(articles))
	for i := range articles {
		view, err := s.buildArticleView(ctx, &articles[i], viewerID, following)
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return &domain.ArticleList{Articles: views, ArticlesCount: totalCount}, nil
}

// applyIfSet overwrites dst when the update field is present and
// non-empty. Empty means "leave unchanged", never "clear".
func applyIfSet(dst *string, src *string) {
	if src != nil && *src != "" {
		*dst = *src
	}
}

// dedupe returns the distinct tag names in first-seen order. Case is
// treated as provided; no normalization.
func dedupe(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
