package service

import (
	"context"
	"ctchen222/acme-store/internal/api/apperr"
	"ctchen222/acme-store/internal/api/models"
	"ctchen222/acme-store/internal/api/repository"
	"ctchen222/acme-store/internal/events"
	"log/slog"

	"go.opentelemetry.io/otel/metric"
)

// UserService defines the interface for user-related business logic.
type UserService interface {
	Create(ctx context.Context, req *models.CreateUserRequest) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
}

type userService struct {
	userRepo  repository.UserRepository
	publisher events.Publisher
	created   metric.Int64Counter
}

// NewUserService creates a new UserService. A nil publisher disables events.
func NewUserService(userRepo repository.UserRepository, publisher events.Publisher) UserService {
	created, err := meter.Int64Counter("users.created", metric.WithDescription("Users created through signup"))
	if err != nil {
		slog.Warn("Failed to create users.created counter", "error", err)
	}
	return &userService{userRepo: userRepo, publisher: orNop(publisher), created: created}
}

// Create signs up a new user. Every storage failure, a taken username included, is
// reported as an internal error.
func (s *userService) Create(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	user, err := s.userRepo.Create(ctx, req.Username, req.Password)
	if err != nil {
		return nil, apperr.Internal("Failed to create user", err)
	}

	if s.created != nil {
		s.created.Add(ctx, 1)
	}
	publish(ctx, s.publisher, events.TypeUserCreated, events.UserCreatedPayload{UserID: user.ID, Username: user.Username})
	return user, nil
}

// List returns all users.
func (s *userService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, apperr.Internal("", err)
	}
	return users, nil
}
