package service

import (
	"context"
	"ctchen222/acme-store/internal/api/apperr"
	"ctchen222/acme-store/internal/api/models"
	"ctchen222/acme-store/internal/api/repository"
	"ctchen222/acme-store/internal/events"
)

// ProductService defines the interface for product catalogue logic.
type ProductService interface {
	Create(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	List(ctx context.Context) ([]models.Product, error)
}

type productService struct {
	productRepo repository.ProductRepository
	publisher   events.Publisher
}

// NewProductService creates a new ProductService. A nil publisher disables events.
func NewProductService(productRepo repository.ProductRepository, publisher events.Publisher) ProductService {
	return &productService{productRepo: productRepo, publisher: orNop(publisher)}
}

func (s *productService) Create(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	product, err := s.productRepo.Create(ctx, req.Name)
	if err != nil {
		return nil, apperr.Internal("", err)
	}
	publish(ctx, s.publisher, events.TypeProductCreated, events.ProductCreatedPayload{ProductID: product.ID, Name: product.Name})
	return product, nil
}

func (s *productService) List(ctx context.Context) ([]models.Product, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, apperr.Internal("", err)
	}
	return products, nil
}
