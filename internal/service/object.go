package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/FirdavsNurmatov/guard-monitoring/internal/models"
)

// ObjectRepository определяет контракт для работы с бд обьектов
type ObjectRepository interface {
	Create(ctx context.Context, object *models.Object) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Object, error)
	Update(ctx context.Context, object *models.Object) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListObjects(ctx context.Context, page, pageSize int) ([]*models.Object, error)
	SetImageURL(ctx context.Context, id uuid.UUID, imageURL string) error
	GetObjectFromCache(ctx context.Context, id uuid.UUID) (*models.Object, error)
	SetObjectCache(ctx context.Context, object *models.Object) error
	InvalidateObjectCache(ctx context.Context, id uuid.UUID) error
}

// CheckpointRepository определяет контракт для работы с бд контрольных точек
type CheckpointRepository interface {
	Create(ctx context.Context, checkpoint *models.Checkpoint) error
	Update(ctx context.Context, checkpoint *models.Checkpoint) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByObject(ctx context.Context, objectID uuid.UUID) ([]*models.Checkpoint, error)
	GetByCardNumber(ctx context.Context, cardNumber string) (*models.Checkpoint, error)
}

// ObjectService определяет контракт для бизнес-логики управления обьектами.
// Создание и обновление работают как сага над обьектом и его точками:
// бэкенд не дает атомарного мультиресурсного коммита, поэтому согласованность
// обеспечивается явной компенсацией.
type ObjectService interface {
	CreateObjectWithCheckpoints(ctx context.Context, object *models.Object, checkpoints []*models.Checkpoint) error
	GetObject(ctx context.Context, id uuid.UUID) (*models.Object, error)
	ListObjects(ctx context.Context, page, pageSize int) ([]*models.Object, error)
	UpdateObjectWithCheckpoints(ctx context.Context, object *models.Object, checkpoints []*models.Checkpoint) error
	DeleteObject(ctx context.Context, id uuid.UUID) error
	DeleteCheckpoint(ctx context.Context, id uuid.UUID) error
	AttachImage(ctx context.Context, id uuid.UUID, imageURL string) error
	RemoveImage(ctx context.Context, id uuid.UUID) error
}

type objectService struct {
	objects     ObjectRepository
	checkpoints CheckpointRepository
	logger      *logrus.Logger
}

func NewObjectService(objects ObjectRepository, checkpoints CheckpointRepository, logger *logrus.Logger) ObjectService {
	return &objectService{
		objects:     objects,
		checkpoints: checkpoints,
		logger:      logger,
	}
}

// validateCardNumbers проверяет попарную уникальность номеров карт в пачке.
// Пустые номера пропускаются. Возвращает ошибку с первым повторившимся
// значением до каких-либо сетевых вызовов.
func validateCardNumbers(checkpoints []*models.Checkpoint) error {
	seen := make(map[string]struct{}, len(checkpoints))
	for _, cp := range checkpoints {
		cn := strings.TrimSpace(cp.CardNumber)
		if cn == "" {
			continue
		}
		if _, ok := seen[cn]; ok {
			return &DuplicateCardNumberError{CardNumber: cn}
		}
		seen[cn] = struct{}{}
	}
	return nil
}

// applyCheckpointDefaults подставляет значения по умолчанию: пустое имя
// заменяется на "{позиция}-punkt" (позиция 1-based), отсутствующая координата -
// на запасную, чтобы слой отображения никогда не получил точку без размещения.
func applyCheckpointDefaults(objectType models.ObjectType, checkpoints []*models.Checkpoint) {
	for i, cp := range checkpoints {
		if strings.TrimSpace(cp.Name) == "" {
			cp.Name = fmt.Sprintf("%d-punkt", i+1)
		}
		if cp.Position == nil {
			var pos models.Position
			if objectType == models.ObjectTypeMap {
				pos = models.DefaultGeoPosition()
			} else {
				pos = models.DefaultPercentPosition()
			}
			cp.Position = &pos
		}
	}
}

// CreateObjectWithCheckpoints создает обьект вместе с его точками.
// Точки создаются конкурентно; отказ любой из них запускает ровно одну
// компенсацию - удаление только что созданного обьекта, чтобы в системе
// не остался обьект-сирота с неполным набором точек.
func (s *objectService) CreateObjectWithCheckpoints(ctx context.Context, object *models.Object, checkpoints []*models.Checkpoint) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "object",
		"method":      "CreateObjectWithCheckpoints",
		"name":        object.Name,
		"checkpoints": len(checkpoints),
	})
	log.Info("Attempting to create object with checkpoints")

	// Локальная преддиспетчерская проверка: при дубликате вся операция
	// отклоняется до единого сетевого вызова
	if err := validateCardNumbers(checkpoints); err != nil {
		log.WithError(err).Warn("Duplicate card number in submitted checkpoint set")
		return err
	}

	if strings.TrimSpace(object.Name) == "" {
		object.Name = fmt.Sprintf("Obyekt-%d", time.Now().UnixMilli())
	}
	applyCheckpointDefaults(object.Type, checkpoints)

	if err := s.objects.Create(ctx, object); err != nil {
		log.WithError(err).Error("Failed to create object in repository")
		return fmt.Errorf("service: could not create object: %w", err)
	}

	var g errgroup.Group
	for _, cp := range checkpoints {
		cp := cp
		cp.ObjectID = object.ID
		g.Go(func() error {
			return s.checkpoints.Create(ctx, cp)
		})
	}

	// Решение об успехе принимается только после завершения всех вызовов,
	// хотя сами вызовы идут параллельно
	if err := g.Wait(); err != nil {
		log.WithError(err).Error("Checkpoint creation failed, rolling back object")
		if delErr := s.objects.Delete(ctx, object.ID); delErr != nil && !errors.Is(delErr, ErrObjectNotFound) {
			// Компенсация идемпотентна: уже удаленный обьект не считается отказом
			log.WithError(delErr).Error("Compensating delete of object failed")
		}
		return fmt.Errorf("service: could not create checkpoints: %w", err)
	}

	object.Checkpoints = checkpoints
	log.WithField("object_id", object.ID).Info("Object with checkpoints created successfully")
	return nil
}

// GetObject получает обьект вместе с его точками, через кеш
func (s *objectService) GetObject(ctx context.Context, id uuid.UUID) (*models.Object, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "object",
		"method":    "GetObject",
		"object_id": id,
	})

	cached, err := s.objects.GetObjectFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read object from cache")
	}
	if cached != nil {
		return cached, nil
	}

	object, err := s.objects.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to get object from repository")
		return nil, fmt.Errorf("service: could not get object: %w", err)
	}

	object.Checkpoints, err = s.checkpoints.ListByObject(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to list checkpoints for object")
		return nil, fmt.Errorf("service: could not list checkpoints: %w", err)
	}

	if err := s.objects.SetObjectCache(ctx, object); err != nil {
		log.WithError(err).Warn("Failed to cache object")
	}
	return object, nil
}

// ListObjects возвращает список обьектов с пагинацией
func (s *objectService) ListObjects(ctx context.Context, page, pageSize int) ([]*models.Object, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "object",
		"method":    "ListObjects",
		"page":      page,
		"page_size": pageSize,
	})

	objects, err := s.objects.ListObjects(ctx, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list objects from repository")
		return nil, fmt.Errorf("service: could not list objects: %w", err)
	}
	return objects, nil
}

// UpdateObjectWithCheckpoints обновляет обьект и его точки.
// Метаданные обьекта обновляются первыми; каждая точка затем либо
// обновляется (если несет идентификатор), либо создается. Отказы отдельных
// точек собираются и возвращаются вместе, без отката остальных: обьект
// существовал до правки, компенсировать нечего.
func (s *objectService) UpdateObjectWithCheckpoints(ctx context.Context, object *models.Object, checkpoints []*models.Checkpoint) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "object",
		"method":    "UpdateObjectWithCheckpoints",
		"object_id": object.ID,
	})
	log.Info("Attempting to update object with checkpoints")

	if err := validateCardNumbers(checkpoints); err != nil {
		log.WithError(err).Warn("Duplicate card number in submitted checkpoint set")
		return err
	}
	applyCheckpointDefaults(object.Type, checkpoints)

	if err := s.objects.Update(ctx, object); err != nil {
		log.WithError(err).Error("Failed to update object in repository")
		return fmt.Errorf("service: could not update object: %w", err)
	}

	var itemErrs []error
	for i, cp := range checkpoints {
		cp.ObjectID = object.ID
		var err error
		if cp.ID == uuid.Nil {
			err = s.checkpoints.Create(ctx, cp)
		} else {
			err = s.checkpoints.Update(ctx, cp)
		}
		if err != nil {
			log.WithError(err).WithField("checkpoint", cp.Name).Warn("Failed to upsert checkpoint")
			itemErrs = append(itemErrs, fmt.Errorf("checkpoint %d (%s): %w", i+1, cp.Name, err))
		}
	}

	if err := s.objects.InvalidateObjectCache(ctx, object.ID); err != nil {
		log.WithError(err).Warn("Failed to invalidate object cache")
	}

	if len(itemErrs) > 0 {
		return fmt.Errorf("service: object updated with checkpoint errors: %w", errors.Join(itemErrs...))
	}
	log.Info("Object with checkpoints updated successfully")
	return nil
}

// DeleteObject удаляет обьект; его точки удаляются каскадом на уровне бд
func (s *objectService) DeleteObject(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "object",
		"method":    "DeleteObject",
		"object_id": id,
	})

	if err := s.objects.Delete(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete object in repository")
		return fmt.Errorf("service: could not delete object: %w", err)
	}
	if err := s.objects.InvalidateObjectCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate object cache")
	}
	log.Info("Object deleted successfully")
	return nil
}

// DeleteCheckpoint удаляет одну контрольную точку
func (s *objectService) DeleteCheckpoint(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "object",
		"method":        "DeleteCheckpoint",
		"checkpoint_id": id,
	})

	if err := s.checkpoints.Delete(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete checkpoint in repository")
		return fmt.Errorf("service: could not delete checkpoint: %w", err)
	}
	log.Info("Checkpoint deleted successfully")
	return nil
}

// AttachImage записывает ссылку на загруженное изображение обьекта
func (s *objectService) AttachImage(ctx context.Context, id uuid.UUID, imageURL string) error {
	if err := s.objects.SetImageURL(ctx, id, imageURL); err != nil {
		return fmt.Errorf("service: could not attach image: %w", err)
	}
	if err := s.objects.InvalidateObjectCache(ctx, id); err != nil {
		s.logger.WithError(err).Warn("Failed to invalidate object cache")
	}
	return nil
}

// RemoveImage очищает ссылку на изображение обьекта
func (s *objectService) RemoveImage(ctx context.Context, id uuid.UUID) error {
	if err := s.objects.SetImageURL(ctx, id, ""); err != nil {
		return fmt.Errorf("service: could not remove image: %w", err)
	}
	if err := s.objects.InvalidateObjectCache(ctx, id); err != nil {
		s.logger.WithError(err).Warn("Failed to invalidate object cache")
	}
	return nil
}
