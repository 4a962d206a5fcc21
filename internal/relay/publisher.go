// Package relay - общий канал реального времени: события об отметках и
// смене статусов публикуются в Redis Pub/Sub и веером расходятся всем
// подключенным websocket-клиентам панели мониторинга.
package relay

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// EventsChannel - канал Redis Pub/Sub, через который идут все события
const EventsChannel = "patrol_events"

// EventScanLogCreated - тип события о новой отметке охранника
const EventScanLogCreated = "scan_log_created"

// Event - обертка события для подписчиков
type Event struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// ScanLogEvent - полезная нагрузка события scan_log_created
type ScanLogEvent struct {
	LogID        uuid.UUID `json:"logId"`
	CheckpointID uuid.UUID `json:"checkpointId"`
	ObjectID     uuid.UUID `json:"objectId"`
	CardNumber   string    `json:"cardNumber"`
	Guard        string    `json:"guard"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

// EventPublisher - интерфейс для публикации событий в канал реального времени
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, payload any) error
}

// RedisEventPublisher - реализация EventPublisher поверх Redis Pub/Sub
type RedisEventPublisher struct {
	redisClient *redis.Client
}

// NewRedisEventPublisher создает новый RedisEventPublisher
func NewRedisEventPublisher(client *redis.Client) *RedisEventPublisher {
	return &RedisEventPublisher{
		redisClient: client,
	}
}

// Publish сериализует событие и публикует его в общий канал
func (p *RedisEventPublisher) Publish(ctx context.Context, eventType string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal relay event payload: %w", err)
	}
	raw, err := json.Marshal(Event{Type: eventType, Data: data})
	if err != nil {
		return fmt.Errorf("failed to marshal relay event: %w", err)
	}
	if err := p.redisClient.Publish(ctx, EventsChannel, raw).Err(); err != nil {
		return fmt.Errorf("failed to publish relay event to Redis: %w", err)
	}
	return nil
}
