package service

import (
	"errors"
	"fmt"
)

var (
	// ErrObjectNotFound возвращается, когда обьект не существует
	ErrObjectNotFound = errors.New("object not found")
	// ErrCheckpointNotFound возвращается, когда контрольная точка не существует
	ErrCheckpointNotFound = errors.New("checkpoint not found")
	// ErrSessionNotFound возвращается, когда сессия редактирования не существует или истекла
	ErrSessionNotFound = errors.New("edit session not found")
)

// DuplicateCardNumberError указывает на повтор номера карты.
// Возникает как при локальной проверке пачки точек до любых сетевых вызовов,
// так и при нарушении уникальности на стороне базы. Текст сохраняет формат
// "duplicate card number:<значение>" - клиент вытаскивает значение после двоеточия.
type DuplicateCardNumberError struct {
	CardNumber string
}

func (e *DuplicateCardNumberError) Error() string {
	return fmt.Sprintf("duplicate card number:%s", e.CardNumber)
}
