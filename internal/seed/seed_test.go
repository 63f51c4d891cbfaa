package seed

import (
	"context"
	"path/filepath"
	"testing"

	"ctchen222/acme-store/internal/api/repository"
	"ctchen222/acme-store/internal/api/service"
	"ctchen222/acme-store/internal/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	ctx := context.Background()
	conn, err := db.Connect(ctx, filepath.Join(t.TempDir(), "seed.db"))
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, db.InitializeSchema(ctx, conn))

	favorites := service.NewFavoriteService(repository.NewFavoriteRepository(conn), nil)
	svc := Services{
		Users:     service.NewUserService(repository.NewUserRepository(conn), nil),
		Products:  service.NewProductService(repository.NewProductRepository(conn), nil),
		Favorites: favorites,
	}

	res, err := Run(ctx, svc)
	require.NoError(t, err)
	assert.Equal(t, Username, res.User.Username)
	require.Len(t, res.Products, 2)
	require.Len(t, res.Favorites, 2)

	products, err := favorites.List(ctx, res.User.ID)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.ElementsMatch(t, ProductNames, []string{products[0].Name, products[1].Name})

	// Seeding twice without a reset collides on the unique username.
	_, err = Run(ctx, svc)
	assert.Error(t, err)
}
