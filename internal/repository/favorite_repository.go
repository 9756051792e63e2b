package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresFavoriteRepository implements FavoriteRepository using
// PostgreSQL. A favorite is a bare (user, article) membership row.
type PostgresFavoriteRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresFavoriteRepository creates a new PostgresFavoriteRepository.
func NewPostgresFavoriteRepository(pool *pgxpool.Pool) *PostgresFavoriteRepository {
	return &PostgresFavoriteRepository{pool: pool}
}

// CountByArticle returns the number of users who favorited an article.
func (r *PostgresFavoriteRepository) CountByArticle(ctx context.Context, articleID string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM favorites WHERE article_id = $1
	`, articleID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count favorites: %w", err)
	}
	return count, nil
}

// IsFavorited reports whether a favorite membership exists.
func (r *PostgresFavoriteRepository) IsFavorited(ctx context.Context, articleID, userID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM favorites WHERE article_id = $1 AND user_id = $2)
	`, articleID, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check favorite: %w", err)
	}
	return exists, nil
}

// Add records a favorite membership. Inserting an existing pair is a
// no-op, which keeps concurrent identical requests idempotent.
func (r *PostgresFavoriteRepository) Add(ctx context.Context, articleID, userID string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO favorites (article_id, user_id) VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`, articleID, userID)
	if err != nil {
		return fmt.Errorf("insert favorite: %w", err)
	}
	return nil
}

// Remove deletes a favorite membership. Removing an absent pair is a
// no-op.
func (r *PostgresFavoriteRepository) Remove(ctx context.Context, articleID, userID string) error {
	_, err := r.pool.Exec(ctx, `
		DELETE FROM favorites WHERE article_id = $1 AND user_id = $2
	`, articleID, userID)
	if err != nil {
		return fmt.Errorf("delete favorite: %w", err)
	}
	return nil
}
