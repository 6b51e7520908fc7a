// Package tracker provides the task operations shared by the menu and the TUI.
package tracker

import (
	"strings"

	"github.com/charmbracelet/log"
	"github.com/fentz26/taskmemo/internal/audit"
	"github.com/fentz26/taskmemo/internal/logging"
	"github.com/fentz26/taskmemo/internal/models"
	"github.com/fentz26/taskmemo/internal/user"
)

// Service wraps a user with audit recording and logging.
type Service struct {
	user     *user.User
	recorder audit.Recorder
	logger   *log.Logger
}

// NewService creates a service for a new user named username.
// A nil recorder disables auditing; a nil logger discards output.
func NewService(username string, rec audit.Recorder, logger *log.Logger) *Service {
	if rec == nil {
		rec = audit.Nop{}
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Service{
		user:     user.New(username, logger),
		recorder: rec,
		logger:   logger,
	}
}

// User returns the underlying user.
func (s *Service) User() *user.User {
	return s.user
}

// AddTask appends task to the user's list.
func (s *Service) AddTask(task models.Task) {
	s.user.AddTask(task)
	s.logger.Debug("task added", "description", task.Description, "count", s.user.Len())
	s.record(audit.ActionTaskAdd, task, "success", task.Description)
}

// RemoveAt removes the task at index.
func (s *Service) RemoveAt(index int) (models.Task, error) {
	task, err := s.user.RemoveAt(index)
	if err != nil {
		s.logger.Debug("remove rejected", "index", index, "err", err)
		return models.Task{}, err
	}
	s.logger.Debug("task removed", "index", index, "description", task.Description, "count", s.user.Len())
	s.record(audit.ActionTaskRemove, map[string]interface{}{"index": index, "task": task}, "success", task.Description)
	return task, nil
}

// Undo steps the history back. Reports whether anything changed.
func (s *Service) Undo() bool {
	moved := s.user.Caretaker().Undo()
	s.record(audit.ActionHistoryUndo, map[string]int{"cursor": s.user.Caretaker().Cursor()}, outcome(moved), "")
	return moved
}

// Redo steps the history forward. Reports whether anything changed.
func (s *Service) Redo() bool {
	moved := s.user.Caretaker().Redo()
	s.record(audit.ActionHistoryRedo, map[string]int{"cursor": s.user.Caretaker().Cursor()}, outcome(moved), "")
	return moved
}

func (s *Service) record(action string, inputs interface{}, result, details string) {
	if err := s.recorder.Record(action, inputs, result, details); err != nil {
		s.logger.Warn("audit record failed", "action", action, "err", err)
	}
}

func outcome(moved bool) string {
	if moved {
		return "success"
	}
	return "noop"
}

// BuildTask turns raw prompt answers into a task. A blank due date or tag
// list means none; tags are split on commas and trimmed.
func BuildTask(description, dueDate, tags string) models.Task {
	b := models.NewTaskBuilder(description)
	if strings.TrimSpace(dueDate) != "" {
		b.SetDueDate(dueDate)
	}
	for _, tag := range ParseTags(tags) {
		b.AddTag(tag)
	}
	return b.Build()
}

// ParseTags splits a comma-separated tag list, trimming each entry.
// Empty entries between commas are kept.
func ParseTags(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
