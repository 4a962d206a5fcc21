package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/FirdavsNurmatov/guard-monitoring/internal/history"
	"github.com/FirdavsNurmatov/guard-monitoring/internal/models"
)

// editSession - состояние одной открытой сессии редактирования обьекта.
// Держит два независимых буфера undo/redo: якорь обьекта и набор точек
// отменяются по отдельности, как в модалке оператора.
type editSession struct {
	id          uuid.UUID
	position    *history.History[*models.Position]
	checkpoints *history.History[[]*models.Checkpoint]
	touchedAt   time.Time
}

// EditSessionSnapshot - наблюдаемое состояние сессии для API
type EditSessionSnapshot struct {
	ID                 uuid.UUID            `json:"id"`
	Position           *models.Position     `json:"position,omitempty"`
	Checkpoints        []*models.Checkpoint `json:"checkpoints"`
	CanUndoPosition    bool                 `json:"canUndoPosition"`
	CanRedoPosition    bool                 `json:"canRedoPosition"`
	CanUndoCheckpoints bool                 `json:"canUndoCheckpoints"`
	CanRedoCheckpoints bool                 `json:"canRedoCheckpoints"`
}

// EditSessionManager хранит сессии редактирования в памяти процесса.
// Сессии живут от открытия до закрытия модалки и никогда не сохраняются;
// брошенные сессии убирает фоновая очистка по TTL.
type EditSessionManager struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*editSession
	ttl      time.Duration
	logger   *logrus.Logger
}

func NewEditSessionManager(ttl time.Duration, logger *logrus.Logger) *EditSessionManager {
	return &EditSessionManager{
		sessions: make(map[uuid.UUID]*editSession),
		ttl:      ttl,
		logger:   logger,
	}
}

// Open создает сессию с начальными значениями (nil позиция и пустой набор
// точек для создания нового обьекта, текущие значения - для правки)
func (m *EditSessionManager) Open(position *models.Position, checkpoints []*models.Checkpoint) *EditSessionSnapshot {
	s := &editSession{
		id:          uuid.New(),
		position:    history.New(position),
		checkpoints: history.New(checkpoints),
		touchedAt:   time.Now(),
	}

	m.mu.Lock()
	m.sessions[s.id] = s
	m.mu.Unlock()

	m.logger.WithField("session_id", s.id).Info("Edit session opened")
	return snapshot(s)
}

// Get возвращает снимок сессии
func (m *EditSessionManager) Get(id uuid.UUID) (*EditSessionSnapshot, error) {
	return m.with(id, func(s *editSession) {})
}

// SetPosition фиксирует новое положение якоря обьекта как отдельный шаг undo
func (m *EditSessionManager) SetPosition(id uuid.UUID, position *models.Position) (*EditSessionSnapshot, error) {
	return m.with(id, func(s *editSession) {
		s.position.Set(position)
	})
}

// SetCheckpoints фиксирует новый набор точек как отдельный шаг undo
func (m *EditSessionManager) SetCheckpoints(id uuid.UUID, checkpoints []*models.Checkpoint) (*EditSessionSnapshot, error) {
	return m.with(id, func(s *editSession) {
		s.checkpoints.Set(checkpoints)
	})
}

// UndoPosition откатывает последнее перемещение якоря
func (m *EditSessionManager) UndoPosition(id uuid.UUID) (*EditSessionSnapshot, error) {
	return m.with(id, func(s *editSession) {
		s.position.Undo()
	})
}

// RedoPosition возвращает отмененное перемещение якоря
func (m *EditSessionManager) RedoPosition(id uuid.UUID) (*EditSessionSnapshot, error) {
	return m.with(id, func(s *editSession) {
		s.position.Redo()
	})
}

// UndoCheckpoints откатывает последнее изменение набора точек
func (m *EditSessionManager) UndoCheckpoints(id uuid.UUID) (*EditSessionSnapshot, error) {
	return m.with(id, func(s *editSession) {
		s.checkpoints.Undo()
	})
}

// RedoCheckpoints возвращает отмененное изменение набора точек
func (m *EditSessionManager) RedoCheckpoints(id uuid.UUID) (*EditSessionSnapshot, error) {
	return m.with(id, func(s *editSession) {
		s.checkpoints.Redo()
	})
}

// Close закрывает сессию и выбрасывает ее историю
func (m *EditSessionManager) Close(id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(m.sessions, id)
	m.logger.WithField("session_id", id).Info("Edit session closed")
	return nil
}

// StartJanitor запускает фоновую очистку просроченных сессий
func (m *EditSessionManager) StartJanitor(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(m.ttl / 2)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.sweep()
			}
		}
	}()
}

func (m *EditSessionManager) sweep() {
	deadline := time.Now().Add(-m.ttl)

	m.mu.Lock()
	defer m.mu.Unlock()
	for id, s := range m.sessions {
		if s.touchedAt.Before(deadline) {
			delete(m.sessions, id)
			m.logger.WithField("session_id", id).Info("Expired edit session discarded")
		}
	}
}

// with выполняет мутацию под блокировкой и возвращает свежий снимок
func (m *EditSessionManager) with(id uuid.UUID, fn func(s *editSession)) (*EditSessionSnapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	fn(s)
	s.touchedAt = time.Now()
	return snapshot(s), nil
}

func snapshot(s *editSession) *EditSessionSnapshot {
	checkpoints := s.checkpoints.Present()
	if checkpoints == nil {
		checkpoints = []*models.Checkpoint{}
	}
	return &EditSessionSnapshot{
		ID:                 s.id,
		Position:           s.position.Present(),
		Checkpoints:        checkpoints,
		CanUndoPosition:    s.position.CanUndo(),
		CanRedoPosition:    s.position.CanRedo(),
		CanUndoCheckpoints: s.checkpoints.CanUndo(),
		CanRedoCheckpoints: s.checkpoints.CanRedo(),
	}
}
