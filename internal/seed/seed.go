// Package seed inserts the fixed demonstration data set.
package seed

import (
	"context"
	"ctchen222/acme-store/internal/api/models"
	"ctchen222/acme-store/internal/api/service"
	"fmt"
	"log/slog"
)

const (
	Username = "john_doe"
	Password = "securepassword"
)

// ProductNames are created in order; the seed user favorites each of them.
var ProductNames = []string{"Product A", "Product B"}

// Result holds the rows the seed created.
type Result struct {
	User      *models.User
	Products  []*models.Product
	Favorites []*models.Favorite
}

// Services are the write paths the seed goes through.
type Services struct {
	Users     service.UserService
	Products  service.ProductService
	Favorites service.FavoriteService
}

// Run creates the seed user, the seed products and one favorite per product. It
// expects an empty schema and stops at the first failure.
func Run(ctx context.Context, svc Services) (*Result, error) {
	user, err := svc.Users.Create(ctx, &models.CreateUserRequest{Username: Username, Password: Password})
	if err != nil {
		return nil, fmt.Errorf("failed to seed user: %w", err)
	}
	res := &Result{User: user}

	for _, name := range ProductNames {
		product, err := svc.Products.Create(ctx, &models.CreateProductRequest{Name: name})
		if err != nil {
			return res, fmt.Errorf("failed to seed product %q: %w", name, err)
		}
		res.Products = append(res.Products, product)
	}

	for _, product := range res.Products {
		favorite, err := svc.Favorites.Create(ctx, user.ID, &models.CreateFavoriteRequest{ProductID: models.NumericID(product.ID)})
		if err != nil {
			return res, fmt.Errorf("failed to seed favorite for product %d: %w", product.ID, err)
		}
		res.Favorites = append(res.Favorites, favorite)
	}

	slog.InfoContext(ctx, "Sample data created",
		"user.id", user.ID,
		"products", len(res.Products),
		"favorites", len(res.Favorites),
	)
	return res, nil
}
