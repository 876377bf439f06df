package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/suchismita05092005-bit/EverydayTasks/internal/board"
	"github.com/suchismita05092005-bit/EverydayTasks/internal/civiltime"
	"github.com/suchismita05092005-bit/EverydayTasks/internal/engine"
	"github.com/suchismita05092005-bit/EverydayTasks/internal/model"
	"github.com/suchismita05092005-bit/EverydayTasks/internal/store"
)

func newTestModel(t *testing.T, texts ...string) (tea.Model, *board.Board) {
	t.Helper()
	st, err := store.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	b := board.New(st, board.Config{Order: engine.OrderNone, DefaultDueTime: civiltime.EndOfDay}, nil)
	for _, text := range texts {
		if _, ok := b.AddTask(text, model.QuadrantI, "", ""); !ok {
			t.Fatalf("AddTask(%q) failed", text)
		}
	}
	return New(b, time.Minute), b
}

func press(m tea.Model, msg tea.Msg) tea.Model {
	next, _ := m.Update(msg)
	return next
}

func pressRune(m tea.Model, s string) tea.Model {
	return press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func TestSelectionSurvivesEditToEmptyDelete(t *testing.T) {
	m, b := newTestModel(t, "one", "two", "three")

	// Move the cursor to the last row and open the edit form on it.
	m = pressRune(m, "j")
	m = pressRune(m, "j")
	m = pressRune(m, "e")

	// Blank the text and submit: the task is implicitly deleted and the
	// quadrant shrinks underneath the cursor.
	ui := m.(Model)
	if ui.mode != modeForm {
		t.Fatal("edit form should be open")
	}
	ui.inputs[0].SetValue("   ")
	m = ui
	for i := 0; i < len(ui.inputs); i++ {
		m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	}
	if b.Len() != 2 {
		t.Fatalf("expected implicit delete, board has %d tasks", b.Len())
	}

	// Editing again must clamp the cursor instead of indexing past the end.
	m = pressRune(m, "e")
	ui = m.(Model)
	if ui.mode != modeForm {
		t.Fatal("edit form should reopen on a surviving task")
	}
	if _, ok := b.Task(ui.editTaskID); !ok {
		t.Fatalf("edit targets a missing task id %q", ui.editTaskID)
	}
}

func TestSelectionClampAfterDeleteKey(t *testing.T) {
	m, b := newTestModel(t, "one", "two")

	m = pressRune(m, "j")
	m = pressRune(m, "x")
	if b.Len() != 1 {
		t.Fatalf("expected delete, board has %d tasks", b.Len())
	}

	// Toggling right after the delete must act on the remaining task.
	m = press(m, tea.KeyMsg{Type: tea.KeySpace})
	ui := m.(Model)
	tasks := ui.board.TasksInQuadrant(model.QuadrantI, time.Now())
	if len(tasks) != 1 || !tasks[0].Completed {
		t.Fatalf("remaining task not toggled: %+v", tasks)
	}
}
