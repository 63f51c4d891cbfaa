package service

import (
	"context"
	"ctchen222/acme-store/internal/events"
	"log/slog"

	"go.opentelemetry.io/otel"
)

//go:generate mockgen -source=user_service.go -destination=mocks/mock_user_service.go -package=mocks
//go:generate mockgen -source=product_service.go -destination=mocks/mock_product_service.go -package=mocks
//go:generate mockgen -source=favorite_service.go -destination=mocks/mock_favorite_service.go -package=mocks

var meter = otel.Meter("api.service")

// publish sends an event and only logs failures: the write it describes has already
// been committed.
func publish(ctx context.Context, pub events.Publisher, eventType string, payload any) {
	if err := pub.Publish(ctx, eventType, payload); err != nil {
		slog.WarnContext(ctx, "Failed to publish event", "event.type", eventType, "error", err)
	}
}

func orNop(pub events.Publisher) events.Publisher {
	if pub == nil {
		return events.NopPublisher{}
	}
	return pub
}
