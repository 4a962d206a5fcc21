package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/FirdavsNurmatov/guard-monitoring/internal/models"
	"github.com/FirdavsNurmatov/guard-monitoring/internal/service"
)

type ObjectRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewObjectRepository(db *pgxpool.Pool, redisClient *redis.Client) service.ObjectRepository {
	return &ObjectRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// marshalPosition сериализует позицию для jsonb-колонки (nil остается NULL)
func marshalPosition(p *models.Position) ([]byte, error) {
	if p == nil {
		return nil, nil
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal position: %w", err)
	}
	return raw, nil
}

// unmarshalPosition восстанавливает позицию из jsonb-колонки
func unmarshalPosition(raw []byte) (*models.Position, error) {
	if raw == nil {
		return nil, nil
	}
	p := &models.Position{}
	if err := json.Unmarshal(raw, p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal position: %w", err)
	}
	return p, nil
}

// Create создает новую запись об обьекте в бд
func (r *ObjectRepository) Create(ctx context.Context, object *models.Object) error {
	position, err := marshalPosition(object.Position)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO objects (name, type, image_url, position, zoom, map_type, organization_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at, updated_at;
	`
	err = r.db.QueryRow(ctx, query,
		object.Name,
		object.Type,
		object.ImageURL,
		position,
		object.Zoom,
		object.MapType,
		object.OrganizationID,
	).Scan(&object.ID, &object.CreatedAt, &object.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create object: %w", err)
	}
	return nil
}

// GetByID возвращает обьект по его UUID
func (r *ObjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Object, error) {
	object := &models.Object{}
	var position []byte

	query := `
		SELECT id, name, type, image_url, position, zoom, map_type, organization_id, created_at, updated_at
		FROM objects
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&object.ID,
		&object.Name,
		&object.Type,
		&object.ImageURL,
		&position,
		&object.Zoom,
		&object.MapType,
		&object.OrganizationID,
		&object.CreatedAt,
		&object.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("object with id %s: %w", id, service.ErrObjectNotFound)
		}
		return nil, fmt.Errorf("failed to get object by id: %w", err)
	}

	if object.Position, err = unmarshalPosition(position); err != nil {
		return nil, err
	}
	return object, nil
}

// Update обновляет метаданные обьекта
func (r *ObjectRepository) Update(ctx context.Context, object *models.Object) error {
	position, err := marshalPosition(object.Position)
	if err != nil {
		return err
	}

	query := `
		UPDATE objects SET
			name = $1,
			position = $2,
			zoom = $3,
			map_type = $4,
			updated_at = NOW()
		WHERE id = $5;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		object.Name,
		position,
		object.Zoom,
		object.MapType,
		object.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update object: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("object with id %s: %w", object.ID, service.ErrObjectNotFound)
	}
	return nil
}

// Delete удаляет обьект; контрольные точки и логи уходят каскадом
func (r *ObjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM objects WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("object with id %s: %w", id, service.ErrObjectNotFound)
	}
	return nil
}

// ListObjects возвращает список обьектов с пагинацией
func (r *ObjectRepository) ListObjects(ctx context.Context, page, pageSize int) ([]*models.Object, error) {
	// рассчитываем смещение
	offset := (page - 1) * pageSize

	query := `
		SELECT id, name, type, image_url, position, zoom, map_type, organization_id, created_at, updated_at
		FROM objects
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db.Query(ctx, query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list objects: %w", err)
	}
	defer rows.Close()

	objects := make([]*models.Object, 0)
	for rows.Next() {
		object := &models.Object{}
		var position []byte
		err := rows.Scan(
			&object.ID,
			&object.Name,
			&object.Type,
			&object.ImageURL,
			&position,
			&object.Zoom,
			&object.MapType,
			&object.OrganizationID,
			&object.CreatedAt,
			&object.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan object row: %w", err)
		}
		if object.Position, err = unmarshalPosition(position); err != nil {
			return nil, err
		}
		objects = append(objects, object)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return objects, nil
}

// SetImageURL сохраняет (или очищает) ссылку на изображение обьекта
func (r *ObjectRepository) SetImageURL(ctx context.Context, id uuid.UUID, imageURL string) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE objects SET image_url = $1, updated_at = NOW() WHERE id = $2;`,
		imageURL, id,
	)
	if err != nil {
		return fmt.Errorf("failed to set object image url: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("object with id %s: %w", id, service.ErrObjectNotFound)
	}
	return nil
}

// GetObjectFromCache пытается получить обьект из Redis
func (r *ObjectRepository) GetObjectFromCache(ctx context.Context, id uuid.UUID) (*models.Object, error) {
	key := fmt.Sprintf("object:%s", id.String())
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get object from cache: %w", err)
	}

	object := &models.Object{}
	if err := json.Unmarshal(val, object); err != nil {
		return nil, fmt.Errorf("failed to unmarshal object from cache: %w", err)
	}
	return object, nil
}

// SetObjectCache сохраняет обьект в Redis
func (r *ObjectRepository) SetObjectCache(ctx context.Context, object *models.Object) error {
	key := fmt.Sprintf("object:%s", object.ID.String())
	val, err := json.Marshal(object)
	if err != nil {
		return fmt.Errorf("failed to marshal object for cache: %w", err)
	}
	// Устанавливаем срок жизни кэша, например, 5 минут
	if err := r.redisClient.Set(ctx, key, val, 5*time.Minute).Err(); err != nil {
		return fmt.Errorf("failed to set object in cache: %w", err)
	}
	return nil
}

// InvalidateObjectCache удаляет обьект из Redis кэша
func (r *ObjectRepository) InvalidateObjectCache(ctx context.Context, id uuid.UUID) error {
	key := fmt.Sprintf("object:%s", id.String())
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate object cache: %w", err)
	}
	return nil
}
