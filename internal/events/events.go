package events

import "encoding/json"

// Pub/Sub channel constants
const (
	EventsChannel = "channel:events"
)

// Event types
const (
	TypeUserCreated     = "user_created"
	TypeProductCreated  = "product_created"
	TypeFavoriteCreated = "favorite_created"
	TypeFavoriteDeleted = "favorite_deleted"
)

// Event represents a global message published via Pub/Sub.
type Event struct {
	Type    string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
}

// UserCreatedPayload is the payload for the "user_created" event.
type UserCreatedPayload struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

// ProductCreatedPayload is the payload for the "product_created" event.
type ProductCreatedPayload struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
}

// FavoriteCreatedPayload is the payload for the "favorite_created" event.
type FavoriteCreatedPayload struct {
	FavoriteID int64 `json:"favorite_id"`
	UserID     int64 `json:"user_id"`
	ProductID  int64 `json:"product_id"`
}

// FavoriteDeletedPayload is the payload for the "favorite_deleted" event.
type FavoriteDeletedPayload struct {
	FavoriteID int64 `json:"favorite_id"`
	UserID     int64 `json:"user_id"`
}
