package relay

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHub(t *testing.T) (*Hub, context.CancelFunc) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	hub := NewHub(logger)
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	t.Cleanup(cancel)
	return hub, cancel
}

// бесконтактный клиент: только канал, без websocket-соединения
func newBareClient(hub *Hub, buffer int) *Client {
	c := &Client{hub: hub, send: make(chan []byte, buffer)}
	hub.register <- c
	return c
}

func TestHub_BroadcastReachesAllClients(t *testing.T) {
	hub, _ := newTestHub(t)

	first := newBareClient(hub, 4)
	second := newBareClient(hub, 4)

	hub.Broadcast([]byte(`{"type":"scan_log_created"}`))

	for _, c := range []*Client{first, second} {
		select {
		case msg := <-c.send:
			assert.JSONEq(t, `{"type":"scan_log_created"}`, string(msg))
		case <-time.After(time.Second):
			t.Fatal("client did not receive broadcast")
		}
	}
}

func TestHub_SlowClientIsDropped(t *testing.T) {
	hub, _ := newTestHub(t)

	healthy := newBareClient(hub, 4)
	slow := newBareClient(hub, 1)

	// Забиваем буфер медленного клиента
	hub.Broadcast([]byte(`first`))
	hub.Broadcast([]byte(`second`))
	hub.Broadcast([]byte(`third`))

	// Здоровый клиент получает все три события
	for i := 0; i < 3; i++ {
		select {
		case <-healthy.send:
		case <-time.After(time.Second):
			t.Fatal("healthy client starved")
		}
	}

	// Медленному досталось первое событие, затем хаб закрыл его канал
	<-slow.send
	select {
	case _, open := <-slow.send:
		assert.False(t, open, "slow client channel should be closed")
	case <-time.After(time.Second):
		t.Fatal("slow client channel was not closed")
	}
}

func TestHub_UnregisterClosesSendChannel(t *testing.T) {
	hub, _ := newTestHub(t)
	client := newBareClient(hub, 1)

	hub.unregister <- client

	select {
	case _, open := <-client.send:
		assert.False(t, open)
	case <-time.After(time.Second):
		t.Fatal("send channel was not closed on unregister")
	}
}

func TestHub_ShutdownClosesClients(t *testing.T) {
	hub, cancel := newTestHub(t)
	client := newBareClient(hub, 1)

	cancel()

	select {
	case _, open := <-client.send:
		require.False(t, open)
	case <-time.After(time.Second):
		t.Fatal("send channel was not closed on shutdown")
	}
}
