//go:build integration

package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"ctchen222/acme-store/internal/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

func TestRedisPublisher_Publish(t *testing.T) {
	ctx := context.Background()

	redisContainer, err := tcredis.Run(ctx, "redis:7-alpine")
	testcontainers.CleanupContainer(t, redisContainer)
	require.NoError(t, err)

	uri, err := redisContainer.ConnectionString(ctx)
	require.NoError(t, err)

	rdb, err := db.NewRedisClient(ctx, uri)
	require.NoError(t, err)
	defer rdb.Close()

	sub := rdb.Subscribe(ctx, EventsChannel)
	defer sub.Close()
	_, err = sub.Receive(ctx)
	require.NoError(t, err)

	pub := NewRedisPublisher(rdb)
	require.NoError(t, pub.Publish(ctx, TypeFavoriteDeleted, FavoriteDeletedPayload{FavoriteID: 9, UserID: 1}))

	select {
	case msg := <-sub.Channel():
		var event Event
		require.NoError(t, json.Unmarshal([]byte(msg.Payload), &event))
		assert.Equal(t, TypeFavoriteDeleted, event.Type)
		assert.JSONEq(t, `{"favorite_id":9,"user_id":1}`, string(event.Payload))
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for published event")
	}
}
