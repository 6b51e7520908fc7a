package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	promptBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("255")).
			Padding(0, 1)

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)
)

// addSteps are the questions asked when adding a task, in order.
var addSteps = []string{
	"Description",
	"Due date (optional)",
	"Tags, comma separated (optional)",
}

// PromptBarModel collects the answers for a new task one question at a time.
type PromptBarModel struct {
	input   textinput.Model
	focused bool
	step    int
	answers []string
}

// NewPromptBarModel creates an idle prompt bar.
func NewPromptBarModel() *PromptBarModel {
	ti := textinput.New()
	ti.CharLimit = 256
	return &PromptBarModel{input: ti}
}

// Focused reports whether the bar is collecting input.
func (m *PromptBarModel) Focused() bool {
	return m.focused
}

// Start begins a new set of questions.
func (m *PromptBarModel) Start() tea.Cmd {
	m.focused = true
	m.step = 0
	m.answers = m.answers[:0]
	m.input.SetValue("")
	m.input.Placeholder = addSteps[0]
	return m.input.Focus()
}

// Cancel abandons the questions.
func (m *PromptBarModel) Cancel() {
	m.focused = false
	m.input.Blur()
	m.input.SetValue("")
}

// Next stores the current answer and moves on. It returns the answers once
// every question was answered, nil otherwise.
func (m *PromptBarModel) Next() []string {
	m.answers = append(m.answers, m.input.Value())
	m.input.SetValue("")
	m.step++
	if m.step < len(addSteps) {
		m.input.Placeholder = addSteps[m.step]
		return nil
	}
	answers := append([]string(nil), m.answers...)
	m.Cancel()
	return answers
}

// Update forwards messages to the text input.
func (m *PromptBarModel) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

// View renders the bar.
func (m *PromptBarModel) View() string {
	if !m.focused {
		return ""
	}
	prompt := promptStyle.Render(addSteps[m.step] + ": ")
	return promptBarStyle.Render(prompt + m.input.View())
}
