package history

import (
	"github.com/charmbracelet/log"
	"github.com/fentz26/taskmemo/internal/logging"
	"github.com/fentz26/taskmemo/internal/models"
)

// Owner is the object whose task list the caretaker records.
type Owner interface {
	Tasks() []models.Task
	RestoreFromMemento(m *Memento)
}

// Caretaker holds mementos in order plus a cursor at the active one.
//
// history[:cursor+1] can be undone to, history[cursor+1:] can be redone.
// A save discards the redo part before appending.
type Caretaker struct {
	owner   Owner
	history []*Memento
	cursor  int
	logger  *log.Logger
}

// NewCaretaker creates an empty history for owner. A nil logger discards output.
func NewCaretaker(owner Owner, logger *log.Logger) *Caretaker {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Caretaker{
		owner:  owner,
		cursor: -1,
		logger: logger,
	}
}

// Save records the owner's current tasks as the newest state.
func (c *Caretaker) Save() {
	c.history = c.history[:c.cursor+1]
	m := NewMemento(c.owner.Tasks())
	c.history = append(c.history, m)
	c.cursor++
	c.logger.Debug("history saved", "memento", m.ID, "tasks", m.Len(), "position", c.cursor, "len", len(c.history))
}

// Undo steps back one state. The first saved state is the floor: with the
// cursor at 0 or below nothing happens. Reports whether the cursor moved.
func (c *Caretaker) Undo() bool {
	if c.cursor <= 0 {
		c.logger.Debug("undo ignored", "position", c.cursor)
		return false
	}
	c.cursor--
	c.restore()
	return true
}

// Redo steps forward one state if one exists. Reports whether the cursor moved.
func (c *Caretaker) Redo() bool {
	if c.cursor >= len(c.history)-1 {
		c.logger.Debug("redo ignored", "position", c.cursor)
		return false
	}
	c.cursor++
	c.restore()
	return true
}

func (c *Caretaker) restore() {
	m := c.history[c.cursor]
	c.owner.RestoreFromMemento(m)
	c.logger.Debug("history restored", "memento", m.ID, "tasks", m.Len(), "position", c.cursor)
}

// CanUndo reports whether Undo would move the cursor.
func (c *Caretaker) CanUndo() bool { return c.cursor > 0 }

// CanRedo reports whether Redo would move the cursor.
func (c *Caretaker) CanRedo() bool { return c.cursor < len(c.history)-1 }

// Len is the number of recorded states.
func (c *Caretaker) Len() int { return len(c.history) }

// Cursor is the index of the active state, -1 before the first save.
func (c *Caretaker) Cursor() int { return c.cursor }

// Current returns the active memento, or nil before the first save.
func (c *Caretaker) Current() *Memento {
	if c.cursor < 0 {
		return nil
	}
	return c.history[c.cursor]
}
