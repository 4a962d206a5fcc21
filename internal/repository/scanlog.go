package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/FirdavsNurmatov/guard-monitoring/internal/models"
	"github.com/FirdavsNurmatov/guard-monitoring/internal/service"
	"github.com/FirdavsNurmatov/guard-monitoring/internal/status"
)

type ScanLogRepository struct {
	db *pgxpool.Pool
}

func NewScanLogRepository(db *pgxpool.Pool) *ScanLogRepository {
	return &ScanLogRepository{db: db}
}

// компилятор проверяет оба контракта: хранение логов и источник состояний
// для монитора статусов
var (
	_ service.ScanLogRepository = (*ScanLogRepository)(nil)
	_ status.StateSource        = (*ScanLogRepository)(nil)
)

// Create сохраняет запись об отметке. Логи только добавляются.
func (r *ScanLogRepository) Create(ctx context.Context, scanLog *models.ScanLog) error {
	query := `
		INSERT INTO scan_logs (checkpoint_id, guard, status, created_at)
		VALUES ($1, $2, $3, $4) RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		scanLog.CheckpointID,
		scanLog.Guard,
		scanLog.Status,
		scanLog.CreatedAt,
	).Scan(&scanLog.ID)
	if err != nil {
		return fmt.Errorf("failed to save scan log: %w", err)
	}
	return nil
}

// LatestByCheckpoint возвращает лог с наибольшим created_at для точки.
// Если логов нет - (nil, nil), это отдельное состояние "нет данных".
func (r *ScanLogRepository) LatestByCheckpoint(ctx context.Context, checkpointID uuid.UUID) (*models.ScanLog, error) {
	scanLog := &models.ScanLog{}
	query := `
		SELECT id, checkpoint_id, guard, status, created_at
		FROM scan_logs
		WHERE checkpoint_id = $1
		ORDER BY created_at DESC
		LIMIT 1;
	`
	err := r.db.QueryRow(ctx, query, checkpointID).Scan(
		&scanLog.ID,
		&scanLog.CheckpointID,
		&scanLog.Guard,
		&scanLog.Status,
		&scanLog.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest scan log: %w", err)
	}
	return scanLog, nil
}

// ListByCheckpoint возвращает последние логи точки, новые первыми
func (r *ScanLogRepository) ListByCheckpoint(ctx context.Context, checkpointID uuid.UUID, limit int) ([]*models.ScanLog, error) {
	query := `
		SELECT id, checkpoint_id, guard, status, created_at
		FROM scan_logs
		WHERE checkpoint_id = $1
		ORDER BY created_at DESC
		LIMIT $2;
	`
	rows, err := r.db.Query(ctx, query, checkpointID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list scan logs: %w", err)
	}
	defer rows.Close()

	logs := make([]*models.ScanLog, 0)
	for rows.Next() {
		scanLog := &models.ScanLog{}
		err := rows.Scan(
			&scanLog.ID,
			&scanLog.CheckpointID,
			&scanLog.Guard,
			&scanLog.Status,
			&scanLog.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan scan log row: %w", err)
		}
		logs = append(logs, scanLog)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return logs, nil
}

// LatestStates отдает каждую точку вместе с ее последним логом одним
// запросом - монитор статусов дергает этот метод каждым тиком
func (r *ScanLogRepository) LatestStates(ctx context.Context) ([]status.CheckpointState, error) {
	query := `
		SELECT
			c.id, c.object_id, c.name, c.normal_time, c.pass_time, c.card_number, c.position, c.created_at, c.updated_at,
			l.id, l.checkpoint_id, l.guard, l.status, l.created_at
		FROM checkpoints c
		LEFT JOIN LATERAL (
			SELECT id, checkpoint_id, guard, status, created_at
			FROM scan_logs
			WHERE checkpoint_id = c.id
			ORDER BY created_at DESC
			LIMIT 1
		) l ON TRUE;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to load checkpoint states: %w", err)
	}
	defer rows.Close()

	states := make([]status.CheckpointState, 0)
	for rows.Next() {
		cp := &models.Checkpoint{}
		var position []byte

		// nullable-поля лога читаются через указатели: LEFT JOIN дает NULL
		// для точек без единой отметки
		var logID, logCheckpointID *uuid.UUID
		var guard, logStatus *string
		var logCreatedAt *time.Time

		err := rows.Scan(
			&cp.ID, &cp.ObjectID, &cp.Name, &cp.NormalTime, &cp.PassTime, &cp.CardNumber, &position, &cp.CreatedAt, &cp.UpdatedAt,
			&logID, &logCheckpointID, &guard, &logStatus, &logCreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan checkpoint state row: %w", err)
		}
		if cp.Position, err = unmarshalPosition(position); err != nil {
			return nil, err
		}

		state := status.CheckpointState{Checkpoint: cp}
		if logID != nil {
			state.Latest = &models.ScanLog{
				ID:           *logID,
				CheckpointID: *logCheckpointID,
				Guard:        *guard,
				Status:       *logStatus,
				CreatedAt:    *logCreatedAt,
			}
		}
		states = append(states, state)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return states, nil
}
