// Package history реализует универсальный буфер undo/redo для интерактивных
// сессий редактирования. Буфер ничего не знает о смысле значения T: одна и та
// же реализация используется для позиции обьекта и для набора контрольных точек.
package history

// History хранит текущее значение и два стека: past (для undo) и future
// (для redo). Буфер не потокобезопасен: в рамках одной сессии редактирования
// его мутирует ровно один вызывающий.
type History[T any] struct {
	past    []T
	present T
	future  []T
}

// New создает буфер с начальным значением
func New[T any](initial T) *History[T] {
	return &History[T]{present: initial}
}

// Present возвращает текущее значение
func (h *History[T]) Present() T {
	return h.present
}

// Set заменяет текущее значение, кладет прежнее в past и очищает future.
// Каждый вызов дает отдельную запись в past: быстрые последовательные
// изменения (перетаскивание маркера) не склеиваются, чтобы их можно было
// отменять по одному.
func (h *History[T]) Set(value T) {
	h.past = append(h.past, h.present)
	h.present = value
	h.future = nil
}

// Undo откатывает последнее изменение. Если past пуст - ничего не делает.
func (h *History[T]) Undo() {
	if len(h.past) == 0 {
		return
	}
	previous := h.past[len(h.past)-1]
	h.past = h.past[:len(h.past)-1]
	h.future = append([]T{h.present}, h.future...)
	h.present = previous
}

// Redo возвращает отмененное изменение. Если future пуст - ничего не делает.
func (h *History[T]) Redo() {
	if len(h.future) == 0 {
		return
	}
	next := h.future[0]
	h.future = h.future[1:]
	h.past = append(h.past, h.present)
	h.present = next
}

// CanUndo сообщает, есть ли что отменять
func (h *History[T]) CanUndo() bool {
	return len(h.past) > 0
}

// CanRedo сообщает, есть ли что возвращать
func (h *History[T]) CanRedo() bool {
	return len(h.future) > 0
}
