package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistory_InitialState(t *testing.T) {
	h := New("start")

	assert.Equal(t, "start", h.Present())
	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())
}

func TestHistory_UndoRedoWalk(t *testing.T) {
	h := New(0)
	h.Set(1)
	h.Set(2)
	h.Set(3)

	assert.Equal(t, 3, h.Present())
	assert.True(t, h.CanUndo())

	h.Undo()
	assert.Equal(t, 2, h.Present())
	h.Undo()
	assert.Equal(t, 1, h.Present())
	assert.True(t, h.CanRedo())

	h.Redo()
	assert.Equal(t, 2, h.Present())
	h.Redo()
	assert.Equal(t, 3, h.Present())
	assert.False(t, h.CanRedo())
}

func TestHistory_UndoPastStartIsNoop(t *testing.T) {
	h := New("only")
	h.Undo()
	h.Undo()

	assert.Equal(t, "only", h.Present())
	assert.False(t, h.CanUndo())
}

func TestHistory_RedoPastEndIsNoop(t *testing.T) {
	h := New(1)
	h.Set(2)
	h.Undo()
	h.Redo()
	h.Redo()

	assert.Equal(t, 2, h.Present())
	assert.False(t, h.CanRedo())
}

func TestHistory_SetClearsFuture(t *testing.T) {
	h := New("a")
	h.Set("b")
	h.Set("c")
	h.Undo()
	h.Undo()
	assert.True(t, h.CanRedo())

	// Новое изменение после undo открывает новую ветку, redo-хвост отбрасывается
	h.Set("d")
	assert.False(t, h.CanRedo())
	assert.Equal(t, "d", h.Present())

	h.Undo()
	assert.Equal(t, "a", h.Present())
}

func TestHistory_RapidSetsAreNotCoalesced(t *testing.T) {
	// Каждое перетаскивание - отдельный шаг, даже с одинаковыми значениями
	h := New(0)
	h.Set(5)
	h.Set(5)
	h.Set(5)

	h.Undo()
	assert.Equal(t, 5, h.Present())
	h.Undo()
	assert.Equal(t, 5, h.Present())
	h.Undo()
	assert.Equal(t, 0, h.Present())
	assert.False(t, h.CanUndo())
}
