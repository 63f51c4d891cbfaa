package server

import (
	"context"
	"ctchen222/acme-store/internal/api/apperr"
	"ctchen222/acme-store/internal/api/controller"
	"ctchen222/acme-store/internal/api/response"
	"ctchen222/acme-store/internal/metrics"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Controllers groups the HTTP handlers the server routes to.
type Controllers struct {
	Users     *controller.UserController
	Products  *controller.ProductController
	Favorites *controller.FavoriteController
}

type Server struct {
	engine  *gin.Engine
	metrics *metrics.HTTP
	store   Pinger
}

// NewServer builds the gin engine with middleware and every API route.
func NewServer(ctrls Controllers, store Pinger) *Server {
	s := &Server{
		engine:  gin.New(),
		metrics: metrics.NewHTTP(),
		store:   store,
	}

	// recovery runs innermost so panicking requests still reach the access log and metrics.
	s.engine.Use(requestID(), accessLog(), s.metrics.Middleware(), recovery())
	s.RegisterHandlers(ctrls)
	return s
}

// RegisterHandlers mounts the API, health and metrics routes.
func (s *Server) RegisterHandlers(ctrls Controllers) {
	api := s.engine.Group("/api")
	{
		api.POST("/users", ctrls.Users.Create)
		api.GET("/users", ctrls.Users.List)

		api.GET("/products", ctrls.Products.List)
		api.POST("/products", ctrls.Products.Create)

		favorites := api.Group("/users/:id/favorites")
		favorites.GET("", ctrls.Favorites.List)
		favorites.POST("", ctrls.Favorites.Create)
		favorites.DELETE("/:favoriteId", ctrls.Favorites.Delete)
	}

	s.engine.GET("/healthz", s.handleHealth)
	s.engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.metrics.Registry, promhttp.HandlerOpts{})))

	s.engine.NoRoute(func(c *gin.Context) {
		response.Fail(c, apperr.NotFound("Not Found"))
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	if s.store != nil {
		if err := s.store.PingContext(c.Request.Context()); err != nil {
			response.ErrorResponse(c, http.StatusServiceUnavailable, "database unavailable")
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Engine exposes the underlying gin engine.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Handler wraps the engine with CORS and OpenTelemetry HTTP instrumentation.
func (s *Server) Handler(allowedOrigins []string) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
		MaxAge:         600,
	})
	return otelhttp.NewHandler(c.Handler(s.engine), "acme-store")
}
