package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
	"github.com/fentz26/taskmemo/internal/models"
)

var (
	listTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	dueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3")) // Yellow
	noDueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")) // Grey
	tagStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6")) // Cyan
)

// TaskItem implements list.Item for the task list.
type TaskItem struct {
	Index int
	Task  models.Task
}

func (i TaskItem) FilterValue() string {
	return i.Task.Description + " " + strings.Join(i.Task.Tags, " ")
}

func (i TaskItem) Title() string { return i.Task.Description }

func (i TaskItem) Description() string {
	due := noDueStyle.Render("no due date")
	if i.Task.HasDueDate() {
		due = dueStyle.Render("due " + *i.Task.DueDate)
	}
	if len(i.Task.Tags) == 0 {
		return due
	}
	tags := make([]string, len(i.Task.Tags))
	for n, t := range i.Task.Tags {
		tags[n] = "#" + t
	}
	return due + " • " + tagStyle.Render(strings.Join(tags, " "))
}

func newTaskList(title string) list.Model {
	delegate := list.NewDefaultDelegate()
	l := list.New([]list.Item{}, delegate, 80, 20)
	l.Title = title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)
	l.Styles.Title = listTitleStyle
	return l
}

func taskItems(tasks []models.Task) []list.Item {
	items := make([]list.Item, len(tasks))
	for i, t := range tasks {
		items[i] = TaskItem{Index: i, Task: t}
	}
	return items
}
