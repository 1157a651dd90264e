package websocket

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubBroadcastReachesSubscribers(t *testing.T) {
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	c := &Client{hub: hub, send: make(chan []byte, 1), orderID: 1}
	hub.register <- c

	hub.BroadcastOrderUpdate(1, "Shipped")

	select {
	case msg := <-c.send:
		var upd OrderUpdate
		require.NoError(t, json.Unmarshal(msg, &upd))
		assert.Equal(t, 1, upd.OrderID)
		assert.Equal(t, "Shipped", upd.Status)
	case <-time.After(time.Second):
		t.Fatal("no broadcast received")
	}
}

func TestHubBroadcastIsScopedToOrder(t *testing.T) {
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	other := &Client{hub: hub, send: make(chan []byte, 1), orderID: 2}
	hub.register <- other

	hub.BroadcastOrderUpdate(1, "Shipped")

	select {
	case <-other.send:
		t.Fatal("client for another order received the update")
	case <-time.After(100 * time.Millisecond):
	}
}
