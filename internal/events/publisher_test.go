package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	data, err := Encode(TypeFavoriteCreated, FavoriteCreatedPayload{FavoriteID: 3, UserID: 1, ProductID: 2})
	require.NoError(t, err)

	var event Event
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, TypeFavoriteCreated, event.Type)
	assert.JSONEq(t, `{"favorite_id":3,"user_id":1,"product_id":2}`, string(event.Payload))
}

func TestEncode_UnmarshalablePayload(t *testing.T) {
	_, err := Encode(TypeUserCreated, map[string]any{"bad": make(chan int)})
	assert.Error(t, err)
}

func TestNopPublisher(t *testing.T) {
	assert.NoError(t, NopPublisher{}.Publish(t.Context(), TypeUserCreated, nil))
}
