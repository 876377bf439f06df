package model

import (
	"time"

	"github.com/google/uuid"
)

// Quadrant is one of the four board categories.
type Quadrant string

const (
	QuadrantI   Quadrant = "I"
	QuadrantII  Quadrant = "II"
	QuadrantIII Quadrant = "III"
	QuadrantIV  Quadrant = "IV"
)

// DefaultQuadrant is used when a task is added without an explicit choice.
const DefaultQuadrant = QuadrantII

// Quadrants lists all quadrants in board order.
var Quadrants = []Quadrant{QuadrantI, QuadrantII, QuadrantIII, QuadrantIV}

func (q Quadrant) Valid() bool {
	switch q {
	case QuadrantI, QuadrantII, QuadrantIII, QuadrantIV:
		return true
	}
	return false
}

// Next returns the quadrant a task moves to when cycled (I -> II -> III -> IV -> I).
func (q Quadrant) Next() Quadrant {
	for i, v := range Quadrants {
		if v == q {
			return Quadrants[(i+1)%len(Quadrants)]
		}
	}
	return DefaultQuadrant
}

// Task is a single board entry. Due and CompletedAt are absolute instants
// stored in UTC; nil means "no due date" / "not completed". CompletedAt is
// non-nil exactly when Completed is true.
type Task struct {
	ID          string     `json:"id"`
	Text        string     `json:"text"`
	Quadrant    Quadrant   `json:"quadrant"`
	Due         *time.Time `json:"due"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func NewTask(text string, quadrant Quadrant, due *time.Time) Task {
	if !quadrant.Valid() {
		quadrant = DefaultQuadrant
	}
	return Task{
		ID:        uuid.NewString(),
		Text:      text,
		Quadrant:  quadrant,
		Due:       due,
		Completed: false,
		CreatedAt: time.Now().UTC(),
	}
}

// Normalize repairs records loaded from storage: quadrants outside the enum
// fall back to the default, zero creation times are re-stamped, and
// CompletedAt is forced consistent with Completed.
func Normalize(tasks []Task) {
	for i := range tasks {
		if !tasks[i].Quadrant.Valid() {
			tasks[i].Quadrant = DefaultQuadrant
		}
		if tasks[i].CreatedAt.IsZero() {
			tasks[i].CreatedAt = time.Now().UTC()
		}
		if !tasks[i].Completed {
			tasks[i].CompletedAt = nil
		}
	}
}
