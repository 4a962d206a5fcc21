package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/FirdavsNurmatov/guard-monitoring/internal/models"
	"github.com/FirdavsNurmatov/guard-monitoring/internal/relay"
	"github.com/FirdavsNurmatov/guard-monitoring/internal/status"
	"github.com/FirdavsNurmatov/guard-monitoring/internal/webhook"
)

// ScanLogRepository определяет контракт для работы с бд логов отметок
type ScanLogRepository interface {
	Create(ctx context.Context, scanLog *models.ScanLog) error
	LatestByCheckpoint(ctx context.Context, checkpointID uuid.UUID) (*models.ScanLog, error)
	ListByCheckpoint(ctx context.Context, checkpointID uuid.UUID, limit int) ([]*models.ScanLog, error)
}

// CheckpointStatusView - точка с ее последним логом и текущим статусом,
// как ее видит панель мониторинга
type CheckpointStatusView struct {
	Checkpoint *models.Checkpoint `json:"checkpoint"`
	LatestLog  *models.ScanLog    `json:"latestLog,omitempty"`
	Status     status.Status      `json:"status"`
}

// ScanLogService определяет контракт для приема отметок и снимков статусов
type ScanLogService interface {
	RegisterScan(ctx context.Context, cardNumber, guard string) (*models.ScanLog, error)
	ListCheckpointLogs(ctx context.Context, checkpointID uuid.UUID, limit int) ([]*models.ScanLog, error)
	ObjectStatuses(ctx context.Context, objectID uuid.UUID) ([]*CheckpointStatusView, error)
}

type scanLogService struct {
	scanLogs    ScanLogRepository
	checkpoints CheckpointRepository
	publisher   relay.EventPublisher
	webhooks    webhook.WebhookPublisher
	logger      *logrus.Logger
}

func NewScanLogService(
	scanLogs ScanLogRepository,
	checkpoints CheckpointRepository,
	publisher relay.EventPublisher,
	webhooks webhook.WebhookPublisher,
	logger *logrus.Logger,
) ScanLogService {
	return &scanLogService{
		scanLogs:    scanLogs,
		checkpoints: checkpoints,
		publisher:   publisher,
		webhooks:    webhooks,
		logger:      logger,
	}
}

// RegisterScan принимает отметку охранника по номеру карты.
// Статус вычисляется относительно предыдущей отметки той же точки и
// фиксируется в логе; событие уходит подписчикам канала реального времени
// и в очередь вебхуков.
func (s *scanLogService) RegisterScan(ctx context.Context, cardNumber, guard string) (*models.ScanLog, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "scanlog",
		"method":      "RegisterScan",
		"card_number": cardNumber,
		"guard":       guard,
	})
	log.Info("Registering guard scan")

	checkpoint, err := s.checkpoints.GetByCardNumber(ctx, cardNumber)
	if err != nil {
		log.WithError(err).Warn("Scan for unknown card number")
		return nil, fmt.Errorf("service: checkpoint for card %q: %w", cardNumber, err)
	}

	previous, err := s.scanLogs.LatestByCheckpoint(ctx, checkpoint.ID)
	if err != nil {
		log.WithError(err).Error("Failed to load previous scan log")
		return nil, fmt.Errorf("service: could not load previous scan log: %w", err)
	}

	now := time.Now()
	scanLog := &models.ScanLog{
		CheckpointID: checkpoint.ID,
		Guard:        guard,
		Status:       string(status.AtScan(checkpoint, previous, now)),
		CreatedAt:    now,
	}
	if err := s.scanLogs.Create(ctx, scanLog); err != nil {
		log.WithError(err).Error("Failed to save scan log")
		return nil, fmt.Errorf("service: could not save scan log: %w", err)
	}

	event := relay.ScanLogEvent{
		LogID:        scanLog.ID,
		CheckpointID: checkpoint.ID,
		ObjectID:     checkpoint.ObjectID,
		CardNumber:   checkpoint.CardNumber,
		Guard:        guard,
		Status:       scanLog.Status,
		CreatedAt:    scanLog.CreatedAt,
	}
	// Доставка события - best effort: отметка уже сохранена
	if err := s.publisher.Publish(ctx, relay.EventScanLogCreated, event); err != nil {
		log.WithError(err).Error("Failed to publish scan log event")
	}
	if err := s.webhooks.Publish(ctx, webhook.ScanEvent{
		CheckpointID: checkpoint.ID,
		ObjectID:     checkpoint.ObjectID,
		CardNumber:   checkpoint.CardNumber,
		Guard:        guard,
		Status:       scanLog.Status,
		Timestamp:    scanLog.CreatedAt,
	}); err != nil {
		log.WithError(err).Error("Failed to enqueue scan webhook event")
	}

	log.WithField("status", scanLog.Status).Info("Scan registered successfully")
	return scanLog, nil
}

// ListCheckpointLogs возвращает последние логи точки, новые первыми
func (s *scanLogService) ListCheckpointLogs(ctx context.Context, checkpointID uuid.UUID, limit int) ([]*models.ScanLog, error) {
	if limit < 1 || limit > 500 {
		limit = 50
	}
	logs, err := s.scanLogs.ListByCheckpoint(ctx, checkpointID, limit)
	if err != nil {
		return nil, fmt.Errorf("service: could not list scan logs: %w", err)
	}
	return logs, nil
}

// ObjectStatuses возвращает снимок текущих статусов всех точек обьекта
func (s *scanLogService) ObjectStatuses(ctx context.Context, objectID uuid.UUID) ([]*CheckpointStatusView, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "scanlog",
		"method":    "ObjectStatuses",
		"object_id": objectID,
	})

	checkpoints, err := s.checkpoints.ListByObject(ctx, objectID)
	if err != nil {
		log.WithError(err).Error("Failed to list checkpoints for object")
		return nil, fmt.Errorf("service: could not list checkpoints: %w", err)
	}

	now := time.Now()
	views := make([]*CheckpointStatusView, 0, len(checkpoints))
	for _, cp := range checkpoints {
		latest, err := s.scanLogs.LatestByCheckpoint(ctx, cp.ID)
		if err != nil {
			log.WithError(err).WithField("checkpoint_id", cp.ID).Error("Failed to load latest scan log")
			return nil, fmt.Errorf("service: could not load latest scan log: %w", err)
		}
		views = append(views, &CheckpointStatusView{
			Checkpoint: cp,
			LatestLog:  latest,
			Status:     status.Current(cp, latest, now),
		})
	}
	return views, nil
}
