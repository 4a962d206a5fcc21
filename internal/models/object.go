package models

import (
	"time"

	"github.com/google/uuid"
)

// ObjectType определяет, на чем размещается обьект: карта или изображение
type ObjectType string

const (
	ObjectTypeMap   ObjectType = "MAP"
	ObjectTypeImage ObjectType = "IMAGE"
)

// Object представляет охраняемый обьект с набором контрольных точек.
// Обьект владеет своими точками: удаление обьекта каскадно удаляет их.
type Object struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	Type           ObjectType `json:"type"`
	ImageURL       string     `json:"imageUrl,omitempty"`
	Position       *Position  `json:"position,omitempty"`
	Zoom           int        `json:"zoom"`
	MapType        string     `json:"mapType,omitempty"`
	OrganizationID *uuid.UUID `json:"organizationId,omitempty"`
	Checkpoints    []*Checkpoint `json:"checkpoints,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}
