package status

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/FirdavsNurmatov/guard-monitoring/internal/models"
)

// CheckpointState - точка вместе с ее последним логом (nil, если логов нет)
type CheckpointState struct {
	Checkpoint *models.Checkpoint
	Latest     *models.ScanLog
}

// StateSource отдает текущее состояние всех контрольных точек
type StateSource interface {
	LatestStates(ctx context.Context) ([]CheckpointState, error)
}

// Publisher публикует событие в канал реального времени
type Publisher interface {
	Publish(ctx context.Context, eventType string, payload any) error
}

// StatusUpdate - полезная нагрузка события status_update
type StatusUpdate struct {
	CheckpointID uuid.UUID `json:"checkpointId"`
	ObjectID     uuid.UUID `json:"objectId"`
	Status       Status    `json:"status"`
	ChangedAt    time.Time `json:"changedAt"`
}

// EventStatusUpdate - тип события, рассылаемого при смене статуса
const EventStatusUpdate = "status_update"

// Monitor периодически пересчитывает статусы всех точек по настенным часам.
// Чисто событийная модель никогда не заметила бы точку, молча перешедшую
// в MISSED, поэтому пересчет идет и по тику таймера, а не только по
// приходу новых логов.
type Monitor struct {
	source    StateSource
	publisher Publisher
	logger    *logrus.Logger
	interval  time.Duration

	known map[uuid.UUID]Status
}

// NewMonitor создает монитор статусов
func NewMonitor(source StateSource, publisher Publisher, logger *logrus.Logger, interval time.Duration) *Monitor {
	return &Monitor{
		source:    source,
		publisher: publisher,
		logger:    logger,
		interval:  interval,
		known:     make(map[uuid.UUID]Status),
	}
}

// Start запускает горутину пересчета. Останавливается по отмене контекста.
func (m *Monitor) Start(ctx context.Context) {
	m.logger.WithField("interval", m.interval.String()).Info("Starting status monitor...")
	go func() {
		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				m.logger.Info("Stopping status monitor.")
				return
			case <-ticker.C:
				m.Sweep(ctx)
			}
		}
	}()
}

// Sweep выполняет один проход пересчета и рассылает события по переходам
func (m *Monitor) Sweep(ctx context.Context) {
	states, err := m.source.LatestStates(ctx)
	if err != nil {
		m.logger.WithError(err).Error("Failed to load checkpoint states for status sweep")
		return
	}

	now := time.Now()
	for _, st := range states {
		current := Current(st.Checkpoint, st.Latest, now)
		previous, seen := m.known[st.Checkpoint.ID]
		m.known[st.Checkpoint.ID] = current

		if seen && previous == current {
			continue
		}

		update := StatusUpdate{
			CheckpointID: st.Checkpoint.ID,
			ObjectID:     st.Checkpoint.ObjectID,
			Status:       current,
			ChangedAt:    now,
		}
		if err := m.publisher.Publish(ctx, EventStatusUpdate, update); err != nil {
			m.logger.WithError(err).WithField("checkpoint_id", st.Checkpoint.ID).
				Error("Failed to publish status update")
		}
	}
}
