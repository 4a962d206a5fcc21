package models

import (
	"time"

	"github.com/google/uuid"
)

// Checkpoint представляет контрольную точку обхода на обьекте.
// NormalTime и PassTime задаются в минутах: NormalTime - ожидаемый интервал
// между отметками, PassTime - допустимое опоздание сверх него.
// CardNumber уникален среди всех точек всех обьектов.
type Checkpoint struct {
	ID         uuid.UUID `json:"id"`
	ObjectID   uuid.UUID `json:"objectId"`
	Name       string    `json:"name"`
	NormalTime int       `json:"normalTime"`
	PassTime   int       `json:"passTime"`
	CardNumber string    `json:"cardNumber"`
	Position   *Position `json:"position,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
