// Package user holds the live task list of one user and its undo history.
package user

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/fentz26/taskmemo/internal/history"
	"github.com/fentz26/taskmemo/internal/models"
)

var (
	// ErrTaskNotFound is returned when removing a task that is not on the list.
	ErrTaskNotFound = errors.New("task not found")
	// ErrInvalidIndex is returned when removing by an index outside the list.
	ErrInvalidIndex = errors.New("invalid index")
)

// User owns the authoritative task list. Every mutation saves a history entry.
type User struct {
	username  string
	tasks     []models.Task
	caretaker *history.Caretaker
}

// New creates a user with an empty task list and a fresh history.
func New(username string, logger *log.Logger) *User {
	u := &User{
		username: username,
		tasks:    []models.Task{},
	}
	u.caretaker = history.NewCaretaker(u, logger)
	return u
}

// Username returns the user's name.
func (u *User) Username() string {
	return u.username
}

// Caretaker returns the user's undo/redo history.
func (u *User) Caretaker() *history.Caretaker {
	return u.caretaker
}

// Tasks returns a copy of the current task list.
func (u *User) Tasks() []models.Task {
	out := make([]models.Task, len(u.tasks))
	for i, t := range u.tasks {
		out[i] = t.Clone()
	}
	return out
}

// Len is the number of tasks on the list.
func (u *User) Len() int {
	return len(u.tasks)
}

// AddTask appends task and saves history.
func (u *User) AddTask(task models.Task) {
	u.tasks = append(u.tasks, task.Clone())
	u.caretaker.Save()
}

// RemoveTask removes the first task equal to task and saves history.
// Nothing changes if no task matches.
func (u *User) RemoveTask(task models.Task) error {
	for i, t := range u.tasks {
		if t.Equal(task) {
			u.tasks = append(u.tasks[:i:i], u.tasks[i+1:]...)
			u.caretaker.Save()
			return nil
		}
	}
	return fmt.Errorf("remove %q: %w", task.Description, ErrTaskNotFound)
}

// RemoveAt removes the task at index. Out-of-range indexes leave the list
// and history untouched.
func (u *User) RemoveAt(index int) (models.Task, error) {
	if index < 0 || index >= len(u.tasks) {
		return models.Task{}, fmt.Errorf("remove at %d of %d: %w", index, len(u.tasks), ErrInvalidIndex)
	}
	task := u.tasks[index].Clone()
	if err := u.RemoveTask(task); err != nil {
		return models.Task{}, err
	}
	return task, nil
}

// RestoreFromMemento replaces the task list with new tasks rebuilt from the
// snapshot's fields. It does not touch history.
func (u *User) RestoreFromMemento(m *history.Memento) {
	state := m.State()
	tasks := make([]models.Task, 0, len(state))
	for _, s := range state {
		b := models.NewTaskBuilder(s.Description)
		if s.DueDate != nil {
			b.SetDueDate(*s.DueDate)
		}
		for _, tag := range s.Tags {
			b.AddTag(tag)
		}
		tasks = append(tasks, b.Build())
	}
	u.tasks = tasks
}

// DisplayTasks writes a header and one line per task, in order.
func (u *User) DisplayTasks(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Tasks for %s:\n", u.username); err != nil {
		return err
	}
	for _, t := range u.tasks {
		if _, err := fmt.Fprintln(w, t); err != nil {
			return err
		}
	}
	return nil
}
