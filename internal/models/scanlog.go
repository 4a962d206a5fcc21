package models

import (
	"time"

	"github.com/google/uuid"
)

// ScanLog - запись об отметке охранника на контрольной точке.
// Логи только добавляются; "последний лог" точки - лог с наибольшим CreatedAt.
// Status фиксирует результат классификации на момент отметки.
type ScanLog struct {
	ID           uuid.UUID `json:"id"`
	CheckpointID uuid.UUID `json:"checkpointId"`
	Guard        string    `json:"guard"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}
