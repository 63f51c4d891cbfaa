package repository

import (
	"context"
	"ctchen222/acme-store/internal/api/models"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/crypto/bcrypt"
)

// PasswordCost is the bcrypt cost factor used for every stored password.
const PasswordCost = 10

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	Create(ctx context.Context, username, password string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
}

type sqlUserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new sqlx-backed UserRepository.
func NewUserRepository(db *sqlx.DB) UserRepository {
	return &sqlUserRepository{db: db}
}

// Create hashes the password and inserts a new user. Only the id and username are
// returned.
func (r *sqlUserRepository) Create(ctx context.Context, username, password string) (*models.User, error) {
	ctx, span := tracer.Start(ctx, "UserRepository.Create")
	defer span.End()
	span.SetAttributes(attribute.String("user.username", username))

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		slog.ErrorContext(ctx, "Error hashing password", "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	var user models.User
	query := r.db.Rebind(`INSERT INTO users (username, password) VALUES (?, ?) RETURNING id, username`)
	if err := r.db.GetContext(ctx, &user, query, username, string(hashedPassword)); err != nil {
		err = classify(err)
		slog.ErrorContext(ctx, "Error creating user", "user.username", username, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to create user")
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	span.SetAttributes(attribute.Int64("user.id", user.ID))
	return &user, nil
}

// List returns every user, without password hashes.
func (r *sqlUserRepository) List(ctx context.Context) ([]models.User, error) {
	ctx, span := tracer.Start(ctx, "UserRepository.List")
	defer span.End()

	users := []models.User{}
	if err := r.db.SelectContext(ctx, &users, `SELECT id, username FROM users ORDER BY id`); err != nil {
		slog.ErrorContext(ctx, "Error fetching users", "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch users")
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	return users, nil
}
