// Package tui provides the full-screen terminal UI for taskmemo.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fentz26/taskmemo/internal/tracker"
	"github.com/fentz26/taskmemo/internal/user"
)

var (
	primaryColor = lipgloss.Color("#7C3AED")
	successColor = lipgloss.Color("#10B981")
	warningColor = lipgloss.Color("#F59E0B")
	errorColor   = lipgloss.Color("#EF4444")
	mutedColor   = lipgloss.Color("#6B7280")
	fgColor      = lipgloss.Color("#F9FAFB")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			Padding(0, 1)

	statusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#374151")).
			Foreground(fgColor).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)

	okStyle   = lipgloss.NewStyle().Foreground(successColor)
	warnStyle = lipgloss.NewStyle().Foreground(warningColor)
	errStyle  = lipgloss.NewStyle().Foreground(errorColor)
)

type messageKind int

const (
	messageInfo messageKind = iota
	messageWarn
	messageError
)

// App is the TUI model.
type App struct {
	svc      *tracker.Service
	list     list.Model
	prompt   *PromptBarModel
	message  string
	kind     messageKind
	width    int
	height   int
	quitting bool
}

// New creates a TUI over svc.
func New(svc *tracker.Service) *App {
	a := &App{
		svc:    svc,
		list:   newTaskList(fmt.Sprintf("Tasks for %s", svc.User().Username())),
		prompt: NewPromptBarModel(),
	}
	a.refresh()
	return a
}

// Run starts the TUI and blocks until the user quits.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.list.SetSize(msg.Width, max(msg.Height-4, 1))
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			a.quitting = true
			return a, tea.Quit
		}
		if a.prompt.Focused() {
			return a, a.updatePrompt(msg)
		}
		if a.list.FilterState() != list.Filtering {
			if cmd, handled := a.handleKey(msg.String()); handled {
				return a, cmd
			}
		}
	}

	var cmd tea.Cmd
	a.list, cmd = a.list.Update(msg)
	return a, cmd
}

func (a *App) handleKey(key string) (tea.Cmd, bool) {
	switch key {
	case "q":
		a.quitting = true
		return tea.Quit, true

	case "a":
		a.setMessage("", messageInfo)
		return a.prompt.Start(), true

	case "d", "x":
		a.removeSelected()
		return nil, true

	case "u":
		if a.svc.Undo() {
			a.setMessage("Undo successful.", messageInfo)
		} else {
			a.setMessage("Nothing to undo.", messageWarn)
		}
		a.refresh()
		return nil, true

	case "r":
		if a.svc.Redo() {
			a.setMessage("Redo successful.", messageInfo)
		} else {
			a.setMessage("Nothing to redo.", messageWarn)
		}
		a.refresh()
		return nil, true
	}
	return nil, false
}

func (a *App) updatePrompt(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		a.prompt.Cancel()
		a.setMessage("Add cancelled.", messageWarn)
		return nil
	case "enter":
		answers := a.prompt.Next()
		if answers == nil {
			return nil
		}
		a.svc.AddTask(tracker.BuildTask(answers[0], answers[1], answers[2]))
		a.setMessage("Task added successfully.", messageInfo)
		a.refresh()
		a.list.Select(len(a.list.Items()) - 1)
		return nil
	}
	return a.prompt.Update(msg)
}

func (a *App) removeSelected() {
	item, ok := a.list.SelectedItem().(TaskItem)
	if !ok {
		a.setMessage("No task selected.", messageWarn)
		return
	}
	if _, err := a.svc.RemoveAt(item.Index); err != nil {
		if errors.Is(err, user.ErrInvalidIndex) {
			a.setMessage("Invalid index.", messageWarn)
		} else {
			a.setMessage("Error: "+err.Error(), messageError)
		}
		return
	}
	a.setMessage("Task removed successfully.", messageInfo)
	a.refresh()
}

func (a *App) refresh() {
	a.list.SetItems(taskItems(a.svc.User().Tasks()))
}

func (a *App) setMessage(msg string, kind messageKind) {
	a.message = msg
	a.kind = kind
}

// View implements tea.Model
func (a *App) View() string {
	if a.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("taskmemo"))
	b.WriteString("\n")
	b.WriteString(a.list.View())
	b.WriteString("\n")

	if a.prompt.Focused() {
		b.WriteString(a.prompt.View())
		b.WriteString("\n")
	}

	b.WriteString(statusBarStyle.Render(a.historyStatus()))
	if a.message != "" {
		b.WriteString(" ")
		b.WriteString(a.renderMessage())
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("a add • d remove • u undo • r redo • / filter • q quit"))
	return b.String()
}

func (a *App) historyStatus() string {
	c := a.svc.User().Caretaker()
	return fmt.Sprintf("history %d/%d", c.Cursor()+1, c.Len())
}

func (a *App) renderMessage() string {
	switch a.kind {
	case messageWarn:
		return warnStyle.Render(a.message)
	case messageError:
		return errStyle.Render(a.message)
	default:
		return okStyle.Render(a.message)
	}
}
