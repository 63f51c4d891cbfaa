package repository

import (
	"context"
	"ctchen222/acme-store/internal/api/models"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// ProductRepository defines the interface for product data operations.
type ProductRepository interface {
	Create(ctx context.Context, name string) (*models.Product, error)
	List(ctx context.Context) ([]models.Product, error)
}

type sqlProductRepository struct {
	db *sqlx.DB
}

// NewProductRepository creates a new sqlx-backed ProductRepository.
func NewProductRepository(db *sqlx.DB) ProductRepository {
	return &sqlProductRepository{db: db}
}

// Create inserts a product and returns the stored row.
func (r *sqlProductRepository) Create(ctx context.Context, name string) (*models.Product, error) {
	ctx, span := tracer.Start(ctx, "ProductRepository.Create")
	defer span.End()

	var product models.Product
	query := r.db.Rebind(`INSERT INTO products (name) VALUES (?) RETURNING id, name`)
	if err := r.db.GetContext(ctx, &product, query, name); err != nil {
		err = classify(err)
		slog.ErrorContext(ctx, "Error creating product", "product.name", name, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to create product")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	span.SetAttributes(attribute.Int64("product.id", product.ID))
	return &product, nil
}

// List returns every product in storage order.
func (r *sqlProductRepository) List(ctx context.Context) ([]models.Product, error) {
	ctx, span := tracer.Start(ctx, "ProductRepository.List")
	defer span.End()

	products := []models.Product{}
	if err := r.db.SelectContext(ctx, &products, `SELECT id, name FROM products ORDER BY id`); err != nil {
		slog.ErrorContext(ctx, "Error fetching products", "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch products")
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	return products, nil
}
