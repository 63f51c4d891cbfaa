package repository

import (
	"context"
	"ctchen222/acme-store/internal/api/models"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// FavoriteRepository defines the interface for favorite data operations.
type FavoriteRepository interface {
	Create(ctx context.Context, userID, productID int64) (*models.Favorite, error)
	ListProducts(ctx context.Context, userID int64) ([]models.Product, error)
	Delete(ctx context.Context, favoriteID int64) error
}

type sqlFavoriteRepository struct {
	db *sqlx.DB
}

// NewFavoriteRepository creates a new sqlx-backed FavoriteRepository.
func NewFavoriteRepository(db *sqlx.DB) FavoriteRepository {
	return &sqlFavoriteRepository{db: db}
}

// Create links a user to a product. A repeated pair fails with ErrUniqueViolation, an
// unknown user or product with ErrForeignKeyViolation.
func (r *sqlFavoriteRepository) Create(ctx context.Context, userID, productID int64) (*models.Favorite, error) {
	ctx, span := tracer.Start(ctx, "FavoriteRepository.Create", trace.WithAttributes(
		attribute.Int64("user.id", userID),
		attribute.Int64("product.id", productID),
	))
	defer span.End()

	var favorite models.Favorite
	query := r.db.Rebind(`INSERT INTO favorites (user_id, product_id) VALUES (?, ?) RETURNING id, user_id, product_id`)
	if err := r.db.GetContext(ctx, &favorite, query, userID, productID); err != nil {
		err = classify(err)
		slog.ErrorContext(ctx, "Error creating favorite", "user.id", userID, "product.id", productID, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to create favorite")
		return nil, fmt.Errorf("failed to create favorite: %w", err)
	}

	span.SetAttributes(attribute.Int64("favorite.id", favorite.ID))
	return &favorite, nil
}

// ListProducts returns the products a user has marked as favorite. A user with no
// favorites, or no such user, yields an empty slice.
func (r *sqlFavoriteRepository) ListProducts(ctx context.Context, userID int64) ([]models.Product, error) {
	ctx, span := tracer.Start(ctx, "FavoriteRepository.ListProducts", trace.WithAttributes(
		attribute.Int64("user.id", userID),
	))
	defer span.End()

	products := []models.Product{}
	query := r.db.Rebind(`
		SELECT products.id, products.name
		FROM favorites
		JOIN products ON favorites.product_id = products.id
		WHERE favorites.user_id = ?
		ORDER BY favorites.id`)
	if err := r.db.SelectContext(ctx, &products, query, userID); err != nil {
		slog.ErrorContext(ctx, "Error fetching favorites", "user.id", userID, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch favorites")
		return nil, fmt.Errorf("failed to fetch favorites: %w", err)
	}
	return products, nil
}

// Delete removes a favorite by id. Deleting an id that does not exist is not an error.
func (r *sqlFavoriteRepository) Delete(ctx context.Context, favoriteID int64) error {
	ctx, span := tracer.Start(ctx, "FavoriteRepository.Delete", trace.WithAttributes(
		attribute.Int64("favorite.id", favoriteID),
	))
	defer span.End()

	res, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM favorites WHERE id = ?`), favoriteID)
	if err != nil {
		slog.ErrorContext(ctx, "Error deleting favorite", "favorite.id", favoriteID, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to delete favorite")
		return fmt.Errorf("failed to delete favorite: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil {
		span.SetAttributes(attribute.Int64("db.rows_affected", n))
	}
	return nil
}
