// Package menu runs the numbered text menu on a reader/writer pair.
package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/fentz26/taskmemo/internal/logging"
	"github.com/fentz26/taskmemo/internal/tracker"
	"github.com/fentz26/taskmemo/internal/user"
)

const menuText = `
MENU:
1. Add Task
2. Remove Task
3. Display Tasks
4. Undo
5. Redo
6. Exit
`

// App is the menu's state. One value serves one session.
type App struct {
	svc    *tracker.Service
	in     *bufio.Reader
	out    io.Writer
	logger *log.Logger
}

// New creates a menu over svc reading from in and printing to out.
func New(svc *tracker.Service, in io.Reader, out io.Writer, logger *log.Logger) *App {
	if logger == nil {
		logger = logging.Discard()
	}
	return &App{
		svc:    svc,
		in:     bufio.NewReader(in),
		out:    out,
		logger: logger,
	}
}

// Run shows the menu and dispatches choices until Exit or end of input.
func (a *App) Run() error {
	for {
		a.printf("%s", menuText)
		choice, err := a.prompt("Enter your choice (1-6): ")
		if err != nil {
			return endOfInput(err)
		}

		done, err := a.Dispatch(choice)
		if err != nil {
			return endOfInput(err)
		}
		if done {
			return nil
		}
	}
}

// Dispatch performs one menu choice. It reports done when the user chose Exit.
func (a *App) Dispatch(choice string) (done bool, err error) {
	choice = strings.TrimSpace(choice)
	a.logger.Debug("dispatch", "choice", choice)

	switch choice {
	case "1":
		return false, a.addTask()
	case "2":
		return false, a.removeTask()
	case "3":
		return false, a.svc.User().DisplayTasks(a.out)
	case "4":
		// The message is printed even when there was nothing to undo.
		a.svc.Undo()
		a.printf("Undo successful.\n")
	case "5":
		a.svc.Redo()
		a.printf("Redo successful.\n")
	case "6":
		a.printf("Exiting the program.\n")
		return true, nil
	default:
		a.printf("Invalid choice. Please enter a number between 1 and 6.\n")
	}
	return false, nil
}

func (a *App) addTask() error {
	description, err := a.prompt("Enter task description: ")
	if err != nil {
		return err
	}
	dueDate, err := a.prompt("Enter due date (optional, press Enter to skip): ")
	if err != nil {
		return err
	}
	tags, err := a.prompt("Enter tags (optional, press Enter to skip): ")
	if err != nil {
		return err
	}

	a.svc.AddTask(tracker.BuildTask(description, dueDate, tags))
	a.printf("Task added successfully.\n")
	return nil
}

func (a *App) removeTask() error {
	u := a.svc.User()
	a.printf("Tasks for %s:\n", u.Username())
	for i, t := range u.Tasks() {
		a.printf("%d: %s\n", i, t)
	}

	raw, err := a.prompt("Enter the index of the task to remove: ")
	if err != nil {
		return err
	}
	index, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		a.printf("Invalid index.\n")
		return nil
	}

	if _, err := a.svc.RemoveAt(index); err != nil {
		if errors.Is(err, user.ErrInvalidIndex) {
			a.printf("Invalid index.\n")
			return nil
		}
		// The index was checked against the same list, so anything else is a bug.
		return fmt.Errorf("remove task: %w", err)
	}
	a.printf("Task removed successfully.\n")
	return nil
}

// prompt prints label and reads one line without its line ending.
// A final line without a newline is still returned.
func (a *App) prompt(label string) (string, error) {
	a.printf("%s", label)
	line, err := a.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (a *App) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.out, format, args...)
}

// endOfInput turns io.EOF into a clean stop.
func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
