// Package models defines the core domain types for taskmemo.
package models

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Task is a single entry on a user's task list.
// Tasks carry no identity; two tasks with the same fields are the same task.
type Task struct {
	Description string   `json:"description"`
	DueDate     *string  `json:"due_date,omitempty"`
	Tags        []string `json:"tags"`
}

// HasDueDate reports whether a due date was set.
func (t Task) HasDueDate() bool {
	return t.DueDate != nil
}

// Clone returns a copy of the task that shares no memory with t.
func (t Task) Clone() Task {
	c := Task{
		Description: t.Description,
		Tags:        make([]string, len(t.Tags)),
	}
	copy(c.Tags, t.Tags)
	if t.DueDate != nil {
		d := *t.DueDate
		c.DueDate = &d
	}
	return c
}

// Equal compares two tasks field by field.
func (t Task) Equal(o Task) bool {
	if t.Description != o.Description {
		return false
	}
	if (t.DueDate == nil) != (o.DueDate == nil) {
		return false
	}
	if t.DueDate != nil && *t.DueDate != *o.DueDate {
		return false
	}
	return slices.Equal(t.Tags, o.Tags)
}

// String renders the task the way the menu prints it.
func (t Task) String() string {
	due := "None"
	if t.DueDate != nil {
		due = *t.DueDate
	}
	quoted := make([]string, len(t.Tags))
	for i, tag := range t.Tags {
		quoted[i] = "'" + tag + "'"
	}
	return fmt.Sprintf("Task('%s', due_date=%s, tags=[%s])", t.Description, due, strings.Join(quoted, ", "))
}

// ActionRecord is an audit entry for a state-mutating user action.
type ActionRecord struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Action     string    `json:"action"`
	InputsHash string    `json:"inputs_hash"`
	Outcome    string    `json:"outcome"`
	Details    string    `json:"details,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}
