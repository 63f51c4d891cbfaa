package service

import (
	"context"
	"ctchen222/acme-store/internal/api/apperr"
	"ctchen222/acme-store/internal/api/models"
	"ctchen222/acme-store/internal/api/repository"
	"ctchen222/acme-store/internal/events"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel/metric"
)

// FavoriteService defines the interface for managing a user's favorite products.
type FavoriteService interface {
	Create(ctx context.Context, userID int64, req *models.CreateFavoriteRequest) (*models.Favorite, error)
	List(ctx context.Context, userID int64) ([]models.Product, error)
	Delete(ctx context.Context, userID, favoriteID int64) error
}

type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	publisher    events.Publisher
	created      metric.Int64Counter
	deleted      metric.Int64Counter
}

// NewFavoriteService creates a new FavoriteService. A nil publisher disables events.
func NewFavoriteService(favoriteRepo repository.FavoriteRepository, publisher events.Publisher) FavoriteService {
	created, err := meter.Int64Counter("favorites.created", metric.WithDescription("Favorites created"))
	if err != nil {
		slog.Warn("Failed to create favorites.created counter", "error", err)
	}
	deleted, err := meter.Int64Counter("favorites.deleted", metric.WithDescription("Favorite deletions requested"))
	if err != nil {
		slog.Warn("Failed to create favorites.deleted counter", "error", err)
	}
	return &favoriteService{
		favoriteRepo: favoriteRepo,
		publisher:    orNop(publisher),
		created:      created,
		deleted:      deleted,
	}
}

// Create marks a product as a favorite of the user. A pair that already exists is a
// conflict; any other failure, unknown user or product included, is internal.
func (s *favoriteService) Create(ctx context.Context, userID int64, req *models.CreateFavoriteRequest) (*models.Favorite, error) {
	if req.ProductID == 0 {
		return nil, apperr.Validation("product_id is required")
	}

	favorite, err := s.favoriteRepo.Create(ctx, userID, int64(req.ProductID))
	if err != nil {
		if errors.Is(err, repository.ErrUniqueViolation) {
			return nil, apperr.Conflict("Favorite already exists for this user and product", err)
		}
		return nil, apperr.Internal("", err)
	}

	if s.created != nil {
		s.created.Add(ctx, 1)
	}
	publish(ctx, s.publisher, events.TypeFavoriteCreated, events.FavoriteCreatedPayload{
		FavoriteID: favorite.ID,
		UserID:     favorite.UserID,
		ProductID:  favorite.ProductID,
	})
	return favorite, nil
}

// List returns the products the user has favorited.
func (s *favoriteService) List(ctx context.Context, userID int64) ([]models.Product, error) {
	products, err := s.favoriteRepo.ListProducts(ctx, userID)
	if err != nil {
		return nil, apperr.Internal("", err)
	}
	return products, nil
}

// Delete removes a favorite by id. userID is only recorded; ownership is not checked.
func (s *favoriteService) Delete(ctx context.Context, userID, favoriteID int64) error {
	// TODO: reject deletes of favorites owned by another user once requests carry an authenticated identity.
	if err := s.favoriteRepo.Delete(ctx, favoriteID); err != nil {
		return apperr.Internal("", err)
	}

	if s.deleted != nil {
		s.deleted.Add(ctx, 1)
	}
	publish(ctx, s.publisher, events.TypeFavoriteDeleted, events.FavoriteDeletedPayload{FavoriteID: favoriteID, UserID: userID})
	return nil
}
