package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"ctchen222/acme-store/internal/api/controller"
	"ctchen222/acme-store/internal/api/models"
	"ctchen222/acme-store/internal/api/repository"
	"ctchen222/acme-store/internal/api/service"
	"ctchen222/acme-store/internal/db"
	"ctchen222/acme-store/internal/seed"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingPinger struct{}

func (failingPinger) PingContext(context.Context) error { return errors.New("connection refused") }

func newTestServer(t *testing.T) (*Server, *seed.Result) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctx := context.Background()
	conn, err := db.Connect(ctx, filepath.Join(t.TempDir(), "store.db"))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	require.NoError(t, db.InitializeSchema(ctx, conn))

	users := service.NewUserService(repository.NewUserRepository(conn), nil)
	products := service.NewProductService(repository.NewProductRepository(conn), nil)
	favorites := service.NewFavoriteService(repository.NewFavoriteRepository(conn), nil)

	res, err := seed.Run(ctx, seed.Services{Users: users, Products: products, Favorites: favorites})
	require.NoError(t, err)

	srv := NewServer(Controllers{
		Users:     controller.NewUserController(users),
		Products:  controller.NewProductController(products),
		Favorites: controller.NewFavoriteController(favorites),
	}, conn)
	return srv, res
}

func do(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestSeededFavorites(t *testing.T) {
	srv, res := newTestServer(t)

	w := do(srv.Engine(), http.MethodGet, "/api/users/1/favorites", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":1,"name":"Product A"},{"id":2,"name":"Product B"}]`, w.Body.String())
	assert.Equal(t, int64(1), res.User.ID)
}

func TestUsersAndProducts(t *testing.T) {
	srv, _ := newTestServer(t)
	h := srv.Engine()

	w := do(h, http.MethodPost, "/api/users", `{"username":"jane","password":"hunter2"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id":2,"username":"jane"}`, w.Body.String())

	w = do(h, http.MethodGet, "/api/users", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":1,"username":"john_doe"},{"id":2,"username":"jane"}]`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "password")

	w = do(h, http.MethodPost, "/api/users", `{"username":"jane","password":"again"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to create user"}`, w.Body.String())

	w = do(h, http.MethodGet, "/api/products", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":1,"name":"Product A"},{"id":2,"name":"Product B"}]`, w.Body.String())
}

func TestFavoriteLifecycle(t *testing.T) {
	srv, _ := newTestServer(t)
	h := srv.Engine()

	w := do(h, http.MethodPost, "/api/products", `{"name":"Product C"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(h, http.MethodPost, "/api/users/1/favorites", `{"product_id":3}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.Favorite
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, models.Favorite{ID: 3, UserID: 1, ProductID: 3}, created)

	w = do(h, http.MethodPost, "/api/users/1/favorites", `{"product_id":3}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"error":"Favorite already exists for this user and product"}`, w.Body.String())

	w = do(h, http.MethodPost, "/api/users/1/favorites", `{"product_id":999}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, w.Body.String())

	w = do(h, http.MethodDelete, "/api/users/1/favorites/3", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(h, http.MethodDelete, "/api/users/1/favorites/12345", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(h, http.MethodGet, "/api/users/1/favorites", "")
	assert.JSONEq(t, `[{"id":1,"name":"Product A"},{"id":2,"name":"Product B"}]`, w.Body.String())

	w = do(h, http.MethodPost, "/api/users/1/favorites", `{"product_id":"3"}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = do(h, http.MethodGet, "/api/users/0/favorites", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = do(h, http.MethodGet, "/api/users/42/favorites", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestPanicRecovery(t *testing.T) {
	srv, _ := newTestServer(t)
	srv.Engine().GET("/boom", func(c *gin.Context) {
		panic("database exploded at /var/lib/secret")
	})

	var logs bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	w := do(srv.Engine(), http.MethodGet, "/boom", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "secret")

	// The failed request is still logged and counted.
	assert.Contains(t, logs.String(), "msg=\"HTTP request\" http.method=GET http.path=/boom http.status=500")

	w = do(srv.Engine(), http.MethodGet, "/metrics", "")
	assert.Contains(t, w.Body.String(), `http_requests_total{method="GET",route="/boom",status="500"} 1`)
}

func TestNoRoute(t *testing.T) {
	srv, _ := newTestServer(t)

	w := do(srv.Engine(), http.MethodGet, "/api/unknown", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Not Found"}`, w.Body.String())
}

func TestRequestID(t *testing.T) {
	srv, _ := newTestServer(t)

	w := do(srv.Engine(), http.MethodGet, "/api/products", "")
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	srv.Engine().ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(requestIDHeader))
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t)

	w := do(srv.Engine(), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	srv.store = failingPinger{}
	w = do(srv.Engine(), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{"error":"database unavailable"}`, w.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	do(srv.Engine(), http.MethodGet, "/api/products", "")
	w := do(srv.Engine(), http.MethodGet, "/metrics", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `http_requests_total{method="GET",route="/api/products",status="200"} 1`)
}

func TestHandlerCORS(t *testing.T) {
	srv, _ := newTestServer(t)
	h := srv.Handler([]string{"https://shop.example.com"})

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	req.Header.Set("Origin", "https://shop.example.com")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://shop.example.com", w.Header().Get("Access-Control-Allow-Origin"))
}
