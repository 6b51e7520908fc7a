// Package history keeps a linear undo/redo history of task list snapshots.
package history

import (
	"time"

	"github.com/fentz26/taskmemo/internal/models"
	"github.com/google/uuid"
)

// Memento is an immutable snapshot of a task list.
type Memento struct {
	ID        string
	CreatedAt time.Time
	tasks     []models.Task
}

// NewMemento snapshots tasks by value.
func NewMemento(tasks []models.Task) *Memento {
	return &Memento{
		ID:        uuid.New().String(),
		CreatedAt: time.Now().UTC(),
		tasks:     cloneTasks(tasks),
	}
}

// State returns a fresh copy of the snapshot.
func (m *Memento) State() []models.Task {
	return cloneTasks(m.tasks)
}

// Len is the number of tasks in the snapshot.
func (m *Memento) Len() int {
	return len(m.tasks)
}

func cloneTasks(tasks []models.Task) []models.Task {
	out := make([]models.Task, len(tasks))
	for i, t := range tasks {
		out[i] = t.Clone()
	}
	return out
}
