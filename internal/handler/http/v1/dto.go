package v1

import (
	"time"

	"github.com/google/uuid"

	"github.com/FirdavsNurmatov/guard-monitoring/internal/models"
)

// CheckpointRequest DTO контрольной точки в составе запроса
// @Description DTO контрольной точки в составе запроса
type CheckpointRequest struct {
	ID         *uuid.UUID       `json:"id,omitempty"`
	Name       string           `json:"name"`
	NormalTime int              `json:"normalTime" validate:"required,gt=0"`
	PassTime   int              `json:"passTime" validate:"required,gt=0"`
	CardNumber string           `json:"cardNumber"`
	Position   *models.Position `json:"position,omitempty"`
}

// CreateObjectRequest DTO для создания обьекта вместе с точками
// @Description DTO для создания обьекта вместе с точками
type CreateObjectRequest struct {
	Name           string              `json:"name"`
	Type           string              `json:"type" validate:"required,oneof=MAP IMAGE"`
	Zoom           int                 `json:"zoom" validate:"omitempty,gte=1,lte=22"`
	MapType        string              `json:"mapType,omitempty"`
	Position       *models.Position    `json:"position,omitempty"`
	OrganizationID *uuid.UUID          `json:"organizationId,omitempty"`
	Checkpoints    []CheckpointRequest `json:"checkpoints" validate:"dive"`
}

// UpdateObjectRequest DTO для обновления обьекта и его точек
// @Description DTO для обновления обьекта и его точек
type UpdateObjectRequest struct {
	Name        string              `json:"name" validate:"required,min=1,max=255"`
	Zoom        int                 `json:"zoom" validate:"omitempty,gte=1,lte=22"`
	MapType     string              `json:"mapType,omitempty"`
	Position    *models.Position    `json:"position,omitempty"`
	Checkpoints []CheckpointRequest `json:"checkpoints" validate:"dive"`
}

// CheckpointResponse DTO контрольной точки в ответе
// @Description DTO контрольной точки в ответе
type CheckpointResponse struct {
	ID         uuid.UUID        `json:"id"`
	ObjectID   uuid.UUID        `json:"objectId"`
	Name       string           `json:"name"`
	NormalTime int              `json:"normalTime"`
	PassTime   int              `json:"passTime"`
	CardNumber string           `json:"cardNumber"`
	Position   *models.Position `json:"position,omitempty"`
	CreatedAt  time.Time        `json:"createdAt"`
	UpdatedAt  time.Time        `json:"updatedAt"`
}

// ObjectResponse DTO для ответа с информацией об обьекте
// @Description DTO для ответа с информацией об обьекте
type ObjectResponse struct {
	ID             uuid.UUID             `json:"id"`
	Name           string                `json:"name"`
	Type           string                `json:"type"`
	ImageURL       string                `json:"imageUrl,omitempty"`
	Position       *models.Position      `json:"position,omitempty"`
	Zoom           int                   `json:"zoom"`
	MapType        string                `json:"mapType,omitempty"`
	OrganizationID *uuid.UUID            `json:"organizationId,omitempty"`
	Checkpoints    []*CheckpointResponse `json:"checkpoints,omitempty"`
	CreatedAt      time.Time             `json:"createdAt"`
	UpdatedAt      time.Time             `json:"updatedAt"`
}

// ScanRequest DTO отметки охранника
// @Description DTO отметки охранника
type ScanRequest struct {
	CardNumber string `json:"cardNumber" validate:"required"`
	Guard      string `json:"guard" validate:"required"`
}

// ScanLogResponse DTO записи лога отметки
// @Description DTO записи лога отметки
type ScanLogResponse struct {
	ID           uuid.UUID `json:"id"`
	CheckpointID uuid.UUID `json:"checkpointId"`
	Guard        string    `json:"guard"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

// CheckpointStatusResponse DTO текущего статуса точки для панели
// @Description DTO текущего статуса точки для панели
type CheckpointStatusResponse struct {
	Checkpoint *CheckpointResponse `json:"checkpoint"`
	LatestLog  *ScanLogResponse    `json:"latestLog,omitempty"`
	Status     string              `json:"status"`
}

// OpenEditSessionRequest DTO для открытия сессии редактирования
// @Description DTO для открытия сессии редактирования
type OpenEditSessionRequest struct {
	Position    *models.Position    `json:"position,omitempty"`
	Checkpoints []CheckpointRequest `json:"checkpoints"`
}

// SetPositionRequest DTO для перемещения якоря обьекта в сессии
// @Description DTO для перемещения якоря обьекта в сессии
type SetPositionRequest struct {
	Position *models.Position `json:"position" validate:"required"`
}

// SetCheckpointsRequest DTO для замены набора точек в сессии
// @Description DTO для замены набора точек в сессии
type SetCheckpointsRequest struct {
	Checkpoints []CheckpointRequest `json:"checkpoints"`
}

// EditSessionResponse DTO снимка сессии редактирования
// @Description DTO снимка сессии редактирования
type EditSessionResponse struct {
	ID                 uuid.UUID             `json:"id"`
	Position           *models.Position      `json:"position,omitempty"`
	Checkpoints        []*CheckpointResponse `json:"checkpoints"`
	CanUndoPosition    bool                  `json:"canUndoPosition"`
	CanRedoPosition    bool                  `json:"canRedoPosition"`
	CanUndoCheckpoints bool                  `json:"canUndoCheckpoints"`
	CanRedoCheckpoints bool                  `json:"canRedoCheckpoints"`
}
