package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/DevGleb/RealWorldApp/internal/domain"
)

// PostgresArticleRepository implements ArticleRepository using PostgreSQL.
type PostgresArticleRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresArticleRepository creates a new PostgresArticleRepository.
func NewPostgresArticleRepository(pool *pgxpool.Pool) *PostgresArticleRepository {
	return &PostgresArticleRepository{pool: pool}
}

const articleColumns = "id, slug, title, description, body, author_id, created_at, updated_at"

// Count returns the total number of articles, independent of paging.
func (r *PostgresArticleRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM articles`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count articles: %w", err)
	}
	return count, nil
}

// List returns a page of articles ordered by creation time descending.
func (r *PostgresArticleRepository) List(ctx context.Context, limit, offset int) ([]domain.Article, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+articleColumns+`
		FROM articles
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query articles: %w", err)
	}
	defer rows.Close()

	return scanArticles(rows)
}

// GetBySlug returns the article with the given slug, or nil when absent.
func (r *PostgresArticleRepository) GetBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	var a domain.Article
	err := r.pool.QueryRow(ctx, `
		SELECT `+articleColumns+`
		FROM articles
		WHERE slug = $1
	`, slug).Scan(&a.ID, &a.Slug, &a.Title, &a.Description, &a.Body, &a.AuthorID, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get article by slug: %w", err)
	}
	return &a, nil
}

// CountByAuthors returns the number of articles authored by any of the
// given users.
func (r *PostgresArticleRepository) CountByAuthors(ctx context.Context, authorIDs []string) (int, error) {
	if len(authorIDs) == 0 {
		return 0, nil
	}
	var count int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM articles WHERE author_id = ANY($1)
	`, authorIDs).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count articles by authors: %w", err)
	}
	return count, nil
}

// ListByAuthors returns a page of articles authored by any of the given
// users, newest first.
func (r *PostgresArticleRepository) ListByAuthors(ctx context.Context, authorIDs []string, limit, offset int) ([]domain.Article, error) {
	if len(authorIDs) == 0 {
		return []domain.Article{}, nil
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+articleColumns+`
		FROM articles
		WHERE author_id = ANY($1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, authorIDs, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query articles by authors: %w", err)
	}
	defer rows.Close()

	return scanArticles(rows)
}

// ListTags returns the tag names attached to an article in alphabetical
// order. Insertion order is not preserved by the join table, so a
// deterministic sort keeps responses reproducible.
func (r *PostgresArticleRepository) ListTags(ctx context.Context, articleID string) ([]string, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT tag_name FROM article_tags
		WHERE article_id = $1
		ORDER BY tag_name
	`, articleID)
	if err != nil {
		return nil, fmt.Errorf("query article tags: %w", err)
	}
	defer rows.Close()

	tags := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		tags = append(tags, name)
	}
	return tags, rows.Err()
}

// AttachTag associates a tag with an article, creating the tag on first
// global use. Both inserts are idempotent.
func (r *PostgresArticleRepository) AttachTag(ctx context.Context, articleID, tagName string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin attach tag: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `
		INSERT INTO tags (name) VALUES ($1)
		ON CONFLICT (name) DO NOTHING
	`, tagName); err != nil {
		return fmt.Errorf("insert tag: %w", err)
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO article_tags (article_id, tag_name) VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`, articleID, tagName); err != nil {
		return fmt.Errorf("attach tag: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit attach tag: %w", err)
	}
	return nil
}

// Add inserts a new article. A slug collision is reported as
// ErrDuplicate so the caller can retry with a fresh slug.
func (r *PostgresArticleRepository) Add(ctx context.Context, a *domain.Article) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO articles (id, slug, title, description, body, author_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, a.ID, a.Slug, a.Title, a.Description, a.Body, a.AuthorID, a.CreatedAt, a.UpdatedAt)
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("insert article: %w", err)
	}
	return nil
}

// Update persists the mutable fields of an article.
func (r *PostgresArticleRepository) Update(ctx context.Context, a *domain.Article) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE articles
		SET title = $2, description = $3, body = $4, updated_at = $5
		WHERE id = $1
	`, a.ID, a.Title, a.Description, a.Body, a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update article: %w", err)
	}
	return nil
}

// Delete removes an article. Comments, favorites and tag memberships
// referencing it are removed by the schema's cascading foreign keys.
func (r *PostgresArticleRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	return nil
}

func scanArticles(rows pgx.Rows) ([]domain.Article, error) {
	articles := []domain.Article{}
	for rows.Next() {
		var a domain.Article
		if err := rows.Scan(&a.ID, &a.Slug, &a.Title, &a.Description, &a.Body, &a.AuthorID, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}
