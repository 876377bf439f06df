// Package engine derives task lifecycle status and display order.
package engine

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/suchismita05092005-bit/EverydayTasks/internal/model"
)

// Status is a task's derived lifecycle state. It is never stored: pending
// tasks drift into overdue purely with wall-clock time, so status must be
// recomputed at every read.
type Status string

const (
	StatusPending  Status = "pending"
	StatusOverdue  Status = "overdue"
	StatusDone     Status = "done"
	StatusDoneLate Status = "done-late"
)

// StatusOf classifies a task against the evaluation instant now.
//
// A due instant at or before now counts as overdue. A completed task with
// no completion stamp (legacy records) counts as done.
func StatusOf(t model.Task, now time.Time) Status {
	if t.Completed {
		if t.Due == nil || t.CompletedAt == nil {
			return StatusDone
		}
		if t.CompletedAt.After(*t.Due) {
			return StatusDoneLate
		}
		return StatusDone
	}
	if t.Due != nil && !now.Before(*t.Due) {
		return StatusOverdue
	}
	return StatusPending
}

// rank orders statuses for display: actionable work first, finished last.
func rank(s Status) int {
	switch s {
	case StatusOverdue:
		return 0
	case StatusPending:
		return 1
	case StatusDoneLate:
		return 2
	default:
		return 3
	}
}

// Order selects the display-ordering strategy.
type Order string

const (
	// OrderNone preserves insertion order (newest tasks shown first).
	OrderNone Order = "none"
	// OrderStatusDue sorts by status rank, then due instant, then creation.
	OrderStatusDue Order = "status-due"
)

func ParseOrder(s string) (Order, error) {
	switch Order(strings.TrimSpace(strings.ToLower(s))) {
	case OrderStatusDue, "":
		return OrderStatusDue, nil
	case OrderNone:
		return OrderNone, nil
	}
	return "", fmt.Errorf("invalid order %q (want %q or %q)", s, OrderNone, OrderStatusDue)
}

// Less reports whether a sorts before b under the status-due strategy:
// status rank ascending, then earlier due first when both have one, then
// most recently created first. Remaining ties keep input order (callers
// must sort stably).
func Less(a, b model.Task, now time.Time) bool {
	ra, rb := rank(StatusOf(a, now)), rank(StatusOf(b, now))
	if ra != rb {
		return ra < rb
	}
	if a.Due != nil && b.Due != nil && !a.Due.Equal(*b.Due) {
		return a.Due.Before(*b.Due)
	}
	return a.CreatedAt.After(b.CreatedAt)
}

// Sort orders tasks in place for display. OrderNone leaves the slice
// untouched.
func Sort(tasks []model.Task, ord Order, now time.Time) {
	if ord != OrderStatusDue {
		return
	}
	sort.SliceStable(tasks, func(i, j int) bool {
		return Less(tasks[i], tasks[j], now)
	})
}
