package relay

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Hub ведет множество подключенных клиентов и рассылает им события.
// Фильтрации и буферизации нет: каждое принятое событие доставляется всем
// текущим подписчикам в порядке прихода. Клиент, не успевающий читать,
// отключается, чтобы не тормозить остальных.
type Hub struct {
	clients    map[*Client]struct{}
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	logger     *logrus.Logger
}

// NewHub создает новый Hub
func NewHub(logger *logrus.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]struct{}),
		broadcast:  make(chan []byte, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		logger:     logger,
	}
}

// Broadcast ставит сырое событие в очередь на рассылку
func (h *Hub) Broadcast(message []byte) {
	h.broadcast <- message
}

// Run крутит цикл хаба до отмены контекста
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			for client := range h.clients {
				close(client.send)
				delete(h.clients, client)
			}
			h.logger.Info("Relay hub stopped.")
			return

		case client := <-h.register:
			h.clients[client] = struct{}{}
			h.logger.WithField("total_clients", len(h.clients)).Info("Relay client connected")

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.logger.WithField("total_clients", len(h.clients)).Info("Relay client disconnected")

		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Переполненный клиент отключается, а не блокирует рассылку
					delete(h.clients, client)
					close(client.send)
				}
			}
		}
	}
}
