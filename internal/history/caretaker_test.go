package history

import (
	"testing"

	"github.com/fentz26/taskmemo/internal/models"
)

// fakeOwner is a minimal Owner keeping a task slice.
type fakeOwner struct {
	tasks    []models.Task
	restores int
}

func (f *fakeOwner) Tasks() []models.Task { return f.tasks }

func (f *fakeOwner) RestoreFromMemento(m *Memento) {
	f.restores++
	f.tasks = m.State()
}

func (f *fakeOwner) add(c *Caretaker, desc string) {
	f.tasks = append(f.tasks, models.NewTaskBuilder(desc).Build())
	c.Save()
}

func descriptions(tasks []models.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Description
	}
	return out
}

func assertDescriptions(t *testing.T, tasks []models.Task, want ...string) {
	t.Helper()
	got := descriptions(tasks)
	if len(got) != len(want) {
		t.Fatalf("Expected tasks %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Expected tasks %v, got %v", want, got)
		}
	}
}

func TestNewCaretaker(t *testing.T) {
	c := NewCaretaker(&fakeOwner{}, nil)
	if c.Cursor() != -1 {
		t.Errorf("Expected cursor -1, got %d", c.Cursor())
	}
	if c.Len() != 0 {
		t.Errorf("Expected empty history, got %d", c.Len())
	}
	if c.Current() != nil {
		t.Error("Expected no current memento")
	}
}

func TestUndoRedoBeforeAnySave(t *testing.T) {
	o := &fakeOwner{}
	c := NewCaretaker(o, nil)

	if c.Undo() {
		t.Error("Undo should not move before any save")
	}
	if c.Redo() {
		t.Error("Redo should not move before any save")
	}
	if o.restores != 0 {
		t.Errorf("Expected no restores, got %d", o.restores)
	}
	if c.Cursor() != -1 {
		t.Errorf("Expected cursor -1, got %d", c.Cursor())
	}
}

func TestFirstSaveIsUndoFloor(t *testing.T) {
	o := &fakeOwner{}
	c := NewCaretaker(o, nil)
	o.add(c, "a")

	if c.CanUndo() {
		t.Error("CanUndo should be false after first save")
	}
	if c.Undo() {
		t.Error("Undo should not move past the first save")
	}
	assertDescriptions(t, o.tasks, "a")
	if c.Cursor() != 0 {
		t.Errorf("Expected cursor 0, got %d", c.Cursor())
	}
}

func TestUndoRedoRoundTrip(t *testing.T) {
	o := &fakeOwner{}
	c := NewCaretaker(o, nil)
	for _, d := range []string{"a", "b", "c", "d"} {
		o.add(c, d)
	}

	for k := 1; k <= 3; k++ {
		for i := 0; i < k; i++ {
			if !c.Undo() {
				t.Fatalf("Undo %d of %d did not move", i+1, k)
			}
		}
		for i := 0; i < k; i++ {
			if !c.Redo() {
				t.Fatalf("Redo %d of %d did not move", i+1, k)
			}
		}
		assertDescriptions(t, o.tasks, "a", "b", "c", "d")
	}
}

func TestUndoRestoresPreviousState(t *testing.T) {
	o := &fakeOwner{}
	c := NewCaretaker(o, nil)
	o.add(c, "a")
	o.add(c, "b")

	c.Undo()
	assertDescriptions(t, o.tasks, "a")

	c.Redo()
	assertDescriptions(t, o.tasks, "a", "b")

	if c.Redo() {
		t.Error("Redo should not move at the newest state")
	}
}

func TestSaveAfterUndoDiscardsRedo(t *testing.T) {
	o := &fakeOwner{}
	c := NewCaretaker(o, nil)
	o.add(c, "a")
	o.add(c, "b")
	o.add(c, "c")

	c.Undo()
	c.Undo()
	assertDescriptions(t, o.tasks, "a")

	o.add(c, "x")
	if c.CanRedo() {
		t.Error("CanRedo should be false after a save")
	}
	if c.Redo() {
		t.Error("Redo should not move after a save")
	}
	if c.Len() != 2 {
		t.Errorf("Expected history length 2, got %d", c.Len())
	}
	assertDescriptions(t, o.tasks, "a", "x")

	c.Undo()
	assertDescriptions(t, o.tasks, "a")
}

func TestSnapshotNotAliased(t *testing.T) {
	o := &fakeOwner{}
	c := NewCaretaker(o, nil)
	o.tasks = append(o.tasks, models.NewTaskBuilder("a").AddTag("t").Build())
	c.Save()
	o.tasks = append(o.tasks, models.NewTaskBuilder("b").Build())
	c.Save()

	// Mutate the live list in place; history must not see it.
	o.tasks[0].Description = "mutated"
	o.tasks[0].Tags[0] = "mutated"

	c.Undo()
	if o.tasks[0].Description != "a" || o.tasks[0].Tags[0] != "t" {
		t.Errorf("History was corrupted by live mutation: %s", o.tasks[0])
	}
}

func TestMementoStateIsCopy(t *testing.T) {
	m := NewMemento([]models.Task{models.NewTaskBuilder("a").SetDueDate("d").AddTag("t").Build()})
	if m.ID == "" {
		t.Error("Memento ID should not be empty")
	}

	s := m.State()
	s[0].Tags[0] = "changed"
	*s[0].DueDate = "changed"

	again := m.State()
	if len(again) != 1 {
		t.Fatalf("Expected 1 task, got %d", len(again))
	}
	if again[0].Tags[0] != "t" || *again[0].DueDate != "d" {
		t.Errorf("Memento state was modified through a returned copy: %s", again[0])
	}
}
