package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/DevGleb/RealWorldApp/internal/domain"
	"github.com/DevGleb/RealWorldApp/internal/logger"
	"github.com/DevGleb/RealWorldApp/internal/metrics"
	"github.com/DevGleb/RealWorldApp/internal/repository"
)

// CommentService orchestrates comment operations against an article
// identified by slug.
type CommentService struct {
	comments repository.CommentRepository
	articles repository.ArticleRepository
	users    repository.UserRepository
}

// NewCommentService creates a new CommentService.
func NewCommentService(
	comments repository.CommentRepository,
	articles repository.ArticleRepository,
	users repository.UserRepository,
) *CommentService {
	return &CommentService{
		comments: comments,
		articles: articles,
		users:    users,
	}
}

// Add attaches a comment to the article with the given slug. It returns
// nil when the article is absent. Body is validated upstream.
func (s *CommentService) Add(ctx context.Context, slug, body, actorID string) (*domain.CommentView, error) {
	article, err := s.articles.GetBySlug(ctx, slug)
	if err != nil || article == nil {
		return nil, err
	}

	now := time.Now().UTC()
	comment := &domain.Comment{
		ID:        uuid.New().String(),
		Body:      body,
		ArticleID: article.ID,
		AuthorID:  actorID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.comments.Add(ctx, comment); err != nil {
		return nil, err
	}

	metrics.CommentsCreated.Inc()
	logger.Info("comment added",
		slog.String("slug", slug),
		slog.String("comment_id", comment.ID))

	author, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}

	view := buildCommentView(comment, author)
	return &view, nil
}

// List returns the article's comments in chronological order. A missing
// article yields an empty list, not an error.
func (s *CommentService) List(ctx context.Context, slug string) ([]domain.CommentView, error) {
	article, err := s.articles.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return []domain.CommentView{}, nil
	}

	comments, err := s.comments.ListByArticle(ctx, article.ID)
	if err != nil {
		return nil, err
	}

	views := make([]domain.CommentView, 0, len(comments))
	for i := range comments {
		author, err := s.users.GetByID(ctx, comments[i].AuthorID)
		if err != nil {
			return nil, err
		}
		views = append(views, buildCommentView(&comments[i], author))
	}
	return views, nil
}

// Delete removes a comment. It returns true iff the comment exists,
// belongs to the slug's article, and was authored by the actor; any
// mismatch yields false with no hint which check failed.
func (s *CommentService) Delete(ctx context.Context, slug, commentID, actorID string) (bool, error) {
	article, err := s.articles.GetBySlug(ctx, slug)
	if err != nil || article == nil {
		return false, err
	}

	comment, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return false, err
	}
	if comment == nil || comment.ArticleID != article.ID || !domain.CanMutate(actorID, comment.AuthorID) {
		return false, nil
	}

	if err := s.comments.Delete(ctx, comment.ID); err != nil {
		return false, err
	}
	return true, nil
}

// buildCommentView composes a comment with its author's profile. The
// author's following flag is always false here, matching single-article
// composition.
func buildCommentView(c *domain.Comment, author *domain.User) domain.CommentView {
	return domain.CommentView{
		ID:        c.ID,
		Body:      c.Body,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		Author:    domain.NewProfileView(author, false),
	}
}
