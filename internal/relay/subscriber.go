package relay

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Subscriber слушает общий канал Redis Pub/Sub и мостит каждое событие
// в хаб. Событий по неизвестным точкам это тоже касается: подписчики
// сверяются по идентификатору сами, мост ничего не отбрасывает и не
// переупорядочивает.
type Subscriber struct {
	redisClient *redis.Client
	hub         *Hub
	logger      *logrus.Logger
}

// NewSubscriber создает мост Redis -> хаб
func NewSubscriber(client *redis.Client, hub *Hub, logger *logrus.Logger) *Subscriber {
	return &Subscriber{
		redisClient: client,
		hub:         hub,
		logger:      logger,
	}
}

// Start запускает горутину подписки. Ошибки соединения логируются, не
// ретраятся здесь: переподключение - забота клиента go-redis.
func (s *Subscriber) Start(ctx context.Context) {
	s.logger.Info("Starting relay subscriber...")
	pubsub := s.redisClient.Subscribe(ctx, EventsChannel)

	go func() {
		defer pubsub.Close()
		ch := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				s.logger.Info("Stopping relay subscriber.")
				return
			case msg, ok := <-ch:
				if !ok {
					s.logger.Warn("Relay subscription channel closed")
					return
				}
				// Проверяем только то, что это валидный конверт события;
				// содержимое уходит дальше как есть
				var event Event
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					s.logger.WithError(err).Warn("Dropping malformed relay event")
					continue
				}
				s.hub.Broadcast([]byte(msg.Payload))
			}
		}
	}()
}
