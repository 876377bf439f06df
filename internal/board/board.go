// Package board owns the task collection. Every mutation goes through its
// methods, so the completed/completedAt coupling and the empty-text rules
// are enforced in one place, and each mutation is persisted before it
// returns.
package board

import (
	"strings"
	"time"

	"github.com/suchismita05092005-bit/EverydayTasks/internal/civiltime"
	"github.com/suchismita05092005-bit/EverydayTasks/internal/engine"
	"github.com/suchismita05092005-bit/EverydayTasks/internal/model"
	"github.com/suchismita05092005-bit/EverydayTasks/internal/store"
)

// Config selects the behaviors that differ across board variants.
type Config struct {
	Order          engine.Order
	DefaultDueTime civiltime.DefaultDueTime
}

type Board struct {
	store   *store.Store
	cfg     Config
	tasks   []model.Task
	clock   func() time.Time
	saveErr error
}

func New(st *store.Store, cfg Config, tasks []model.Task) *Board {
	return &Board{
		store: st,
		cfg:   cfg,
		tasks: tasks,
		clock: time.Now,
	}
}

// Load reads the persisted task list. A missing, corrupt, or off-schema
// blob recovers as an empty board; recovered reports whether anything was
// thrown away so the caller can surface a notice.
func Load(st *store.Store, cfg Config) (b *Board, recovered bool, err error) {
	data, err := st.Load()
	if err != nil {
		return nil, false, err
	}

	var tasks []model.Task
	if err := store.ValidateTasks(data); err != nil {
		return New(st, cfg, nil), true, nil
	}
	if err := store.DecodeTasks(data, &tasks); err != nil {
		return New(st, cfg, nil), true, nil
	}
	model.Normalize(tasks)
	return New(st, cfg, tasks), false, nil
}

// EditFields carries the modal-edit payload. Due is re-resolved from the
// civil date/time text; both empty clears the due date.
type EditFields struct {
	Text      string
	Quadrant  model.Quadrant
	DateText  string
	TimeText  string
	Completed bool
}

// AddTask creates a task. Whitespace-only text is rejected silently; an
// invalid quadrant falls back to the default.
func (b *Board) AddTask(text string, quadrant model.Quadrant, dateText, timeText string) (model.Task, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.Task{}, false
	}
	due, err := civiltime.ResolveDueInstant(dateText, timeText, b.cfg.DefaultDueTime, b.clock())
	if err != nil {
		due = nil
	}
	t := model.NewTask(text, quadrant, due)
	b.tasks = append(b.tasks, t)
	b.save()
	return t, true
}

// ToggleComplete flips the completion flag, stamping CompletedAt on the
// false-to-true transition and clearing it on the way back. Unknown ids
// are a no-op.
func (b *Board) ToggleComplete(id string) bool {
	t := b.find(id)
	if t == nil {
		return false
	}
	b.setCompleted(t, !t.Completed)
	b.save()
	return true
}

// EditTask applies the modal edit. Text trimmed to empty deletes the task.
func (b *Board) EditTask(id string, f EditFields) bool {
	t := b.find(id)
	if t == nil {
		return false
	}
	text := strings.TrimSpace(f.Text)
	if text == "" {
		b.remove(id)
		b.save()
		return true
	}
	t.Text = text
	if f.Quadrant.Valid() {
		t.Quadrant = f.Quadrant
	}
	if due, err := civiltime.ResolveDueInstant(f.DateText, f.TimeText, b.cfg.DefaultDueTime, b.clock()); err == nil {
		t.Due = due
	}
	if f.Completed != t.Completed {
		b.setCompleted(t, f.Completed)
	}
	b.save()
	return true
}

func (b *Board) DeleteTask(id string) bool {
	if b.find(id) == nil {
		return false
	}
	b.remove(id)
	b.save()
	return true
}

func (b *Board) MoveTask(id string, quadrant model.Quadrant) bool {
	t := b.find(id)
	if t == nil || !quadrant.Valid() {
		return false
	}
	t.Quadrant = quadrant
	b.save()
	return true
}

// StatusOf evaluates a task's lifecycle status at now.
func (b *Board) StatusOf(id string, now time.Time) (engine.Status, bool) {
	t := b.find(id)
	if t == nil {
		return "", false
	}
	return engine.StatusOf(*t, now), true
}

// OrderedView returns task ids in display order for the configured
// strategy.
func (b *Board) OrderedView(now time.Time) []string {
	ordered := b.orderedTasks(now)
	ids := make([]string, len(ordered))
	for i, t := range ordered {
		ids[i] = t.ID
	}
	return ids
}

// TasksInQuadrant returns the quadrant's tasks in display order.
func (b *Board) TasksInQuadrant(q model.Quadrant, now time.Time) []model.Task {
	var out []model.Task
	for _, t := range b.orderedTasks(now) {
		if t.Quadrant == q {
			out = append(out, t)
		}
	}
	return out
}

// ActiveCount reports the quadrant's not-yet-completed tasks.
func (b *Board) ActiveCount(q model.Quadrant) int {
	n := 0
	for _, t := range b.tasks {
		if t.Quadrant == q && !t.Completed {
			n++
		}
	}
	return n
}

func (b *Board) Len() int {
	return len(b.tasks)
}

func (b *Board) Task(id string) (model.Task, bool) {
	t := b.find(id)
	if t == nil {
		return model.Task{}, false
	}
	return *t, true
}

// SaveErr reports the most recent persistence failure, if any. Mutations
// apply in memory even when the write fails.
func (b *Board) SaveErr() error {
	return b.saveErr
}

func (b *Board) setCompleted(t *model.Task, completed bool) {
	t.Completed = completed
	if completed {
		now := b.clock().UTC()
		t.CompletedAt = &now
	} else {
		t.CompletedAt = nil
	}
}

// orderedTasks materializes the display sequence: ranked when the
// status-due strategy is on, otherwise newest-created first (tasks were
// prepended in the original board).
func (b *Board) orderedTasks(now time.Time) []model.Task {
	out := make([]model.Task, 0, len(b.tasks))
	if b.cfg.Order == engine.OrderStatusDue {
		out = append(out, b.tasks...)
		engine.Sort(out, b.cfg.Order, now)
		return out
	}
	for i := len(b.tasks) - 1; i >= 0; i-- {
		out = append(out, b.tasks[i])
	}
	return out
}

func (b *Board) find(id string) *model.Task {
	for i := range b.tasks {
		if b.tasks[i].ID == id {
			return &b.tasks[i]
		}
	}
	return nil
}

func (b *Board) remove(id string) {
	for i := range b.tasks {
		if b.tasks[i].ID == id {
			b.tasks = append(b.tasks[:i], b.tasks[i+1:]...)
			return
		}
	}
}

func (b *Board) save() {
	tasks := b.tasks
	if tasks == nil {
		tasks = []model.Task{}
	}
	data, err := store.EncodeTasks(tasks)
	if err != nil {
		b.saveErr = err
		return
	}
	b.saveErr = b.store.Save(data)
}
