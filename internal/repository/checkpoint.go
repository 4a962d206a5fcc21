package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/FirdavsNurmatov/guard-monitoring/internal/models"
	"github.com/FirdavsNurmatov/guard-monitoring/internal/service"
)

type CheckpointRepository struct {
	db *pgxpool.Pool
}

func NewCheckpointRepository(db *pgxpool.Pool) service.CheckpointRepository {
	return &CheckpointRepository{db: db}
}

// mapCardNumberConflict переводит нарушение уникальности card_number в
// доменную ошибку с самим значением: клиент показывает его оператору
func mapCardNumberConflict(err error, cardNumber string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return &service.DuplicateCardNumberError{CardNumber: cardNumber}
	}
	return nil
}

// Create создает новую контрольную точку
func (r *CheckpointRepository) Create(ctx context.Context, checkpoint *models.Checkpoint) error {
	position, err := marshalPosition(checkpoint.Position)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO checkpoints (object_id, name, normal_time, pass_time, card_number, position)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at, updated_at;
	`
	err = r.db.QueryRow(ctx, query,
		checkpoint.ObjectID,
		checkpoint.Name,
		checkpoint.NormalTime,
		checkpoint.PassTime,
		checkpoint.CardNumber,
		position,
	).Scan(&checkpoint.ID, &checkpoint.CreatedAt, &checkpoint.UpdatedAt)
	if err != nil {
		if dup := mapCardNumberConflict(err, checkpoint.CardNumber); dup != nil {
			return dup
		}
		return fmt.Errorf("failed to create checkpoint: %w", err)
	}
	return nil
}

// Update обновляет контрольную точку
func (r *CheckpointRepository) Update(ctx context.Context, checkpoint *models.Checkpoint) error {
	position, err := marshalPosition(checkpoint.Position)
	if err != nil {
		return err
	}

	query := `
		UPDATE checkpoints SET
			name = $1,
			normal_time = $2,
			pass_time = $3,
			card_number = $4,
			position = $5,
			updated_at = NOW()
		WHERE id = $6;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		checkpoint.Name,
		checkpoint.NormalTime,
		checkpoint.PassTime,
		checkpoint.CardNumber,
		position,
		checkpoint.ID,
	)
	if err != nil {
		if dup := mapCardNumberConflict(err, checkpoint.CardNumber); dup != nil {
			return dup
		}
		return fmt.Errorf("failed to update checkpoint: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("checkpoint with id %s: %w", checkpoint.ID, service.ErrCheckpointNotFound)
	}
	return nil
}

// Delete удаляет одну контрольную точку
func (r *CheckpointRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM checkpoints WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete checkpoint: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("checkpoint with id %s: %w", id, service.ErrCheckpointNotFound)
	}
	return nil
}

// ListByObject возвращает точки обьекта в порядке создания
func (r *CheckpointRepository) ListByObject(ctx context.Context, objectID uuid.UUID) ([]*models.Checkpoint, error) {
	query := `
		SELECT id, object_id, name, normal_time, pass_time, card_number, position, created_at, updated_at
		FROM checkpoints
		WHERE object_id = $1
		ORDER BY created_at;
	`
	rows, err := r.db.Query(ctx, query, objectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list checkpoints: %w", err)
	}
	defer rows.Close()

	checkpoints := make([]*models.Checkpoint, 0)
	for rows.Next() {
		cp, err := scanCheckpoint(rows)
		if err != nil {
			return nil, err
		}
		checkpoints = append(checkpoints, cp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return checkpoints, nil
}

// GetByCardNumber находит точку по номеру карты
func (r *CheckpointRepository) GetByCardNumber(ctx context.Context, cardNumber string) (*models.Checkpoint, error) {
	query := `
		SELECT id, object_id, name, normal_time, pass_time, card_number, position, created_at, updated_at
		FROM checkpoints
		WHERE card_number = $1;
	`
	rows, err := r.db.Query(ctx, query, cardNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to get checkpoint by card number: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("failed to get checkpoint by card number: %w", err)
		}
		return nil, fmt.Errorf("checkpoint with card %q: %w", cardNumber, service.ErrCheckpointNotFound)
	}
	return scanCheckpoint(rows)
}

// scanCheckpoint читает одну строку контрольной точки
func scanCheckpoint(row pgx.Row) (*models.Checkpoint, error) {
	cp := &models.Checkpoint{}
	var position []byte
	err := row.Scan(
		&cp.ID,
		&cp.ObjectID,
		&cp.Name,
		&cp.NormalTime,
		&cp.PassTime,
		&cp.CardNumber,
		&position,
		&cp.CreatedAt,
		&cp.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan checkpoint row: %w", err)
	}
	if cp.Position, err = unmarshalPosition(position); err != nil {
		return nil, err
	}
	return cp, nil
}
