package models

// TaskBuilder assembles a Task through chained calls.
type TaskBuilder struct {
	task Task
}

// NewTaskBuilder starts a task with the given description, no due date and no tags.
func NewTaskBuilder(description string) *TaskBuilder {
	return &TaskBuilder{task: Task{Description: description, Tags: []string{}}}
}

// SetDueDate sets or overwrites the due date. The value is not validated.
func (b *TaskBuilder) SetDueDate(dueDate string) *TaskBuilder {
	b.task.DueDate = &dueDate
	return b
}

// AddTag appends a tag. Duplicates are kept.
func (b *TaskBuilder) AddTag(tag string) *TaskBuilder {
	b.task.Tags = append(b.task.Tags, tag)
	return b
}

// Build returns the task. The builder stays usable; later calls on it do not
// affect tasks already built.
func (b *TaskBuilder) Build() Task {
	return b.task.Clone()
}
