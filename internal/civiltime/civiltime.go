// Package civiltime converts between user-entered IST calendar time and
// absolute instants. Due dates are entered as Indian Standard Time and
// stored as UTC instants, so comparisons stay correct regardless of the
// machine's local timezone.
package civiltime

import (
	"fmt"
	"strings"
	"time"
)

// IST is a fixed UTC+5:30 offset. India has no daylight saving, so no
// timezone database lookup is needed.
var IST = time.FixedZone("IST", 5*60*60+30*60)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// DefaultDueTime selects the time-of-day assumed when a due date is entered
// without a time.
type DefaultDueTime string

const (
	// EndOfDay treats a bare date as due at 23:59 IST.
	EndOfDay DefaultDueTime = "end-of-day"
	// StartOfDay treats a bare date as due at 00:00 IST.
	StartOfDay DefaultDueTime = "start-of-day"
)

func ParseDefaultDueTime(s string) (DefaultDueTime, error) {
	switch DefaultDueTime(strings.TrimSpace(strings.ToLower(s))) {
	case EndOfDay, "":
		return EndOfDay, nil
	case StartOfDay:
		return StartOfDay, nil
	}
	return "", fmt.Errorf("invalid default due time %q (want %q or %q)", s, EndOfDay, StartOfDay)
}

func (d DefaultDueTime) clock() string {
	if d == StartOfDay {
		return "00:00"
	}
	return "23:59"
}

// ResolveDueInstant interprets dateStr ("2006-01-02") and timeStr ("15:04")
// as IST civil time and returns the corresponding UTC instant.
//
// Both empty means no due date (nil, nil). An empty date with a time falls
// back to today's IST date; an empty time falls back to def. Calendar-range
// correctness is the caller's problem; this only rejects text the layouts
// cannot parse.
func ResolveDueInstant(dateStr, timeStr string, def DefaultDueTime, now time.Time) (*time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	timeStr = strings.TrimSpace(timeStr)
	if dateStr == "" && timeStr == "" {
		return nil, nil
	}
	if dateStr == "" {
		dateStr = now.In(IST).Format(dateLayout)
	}
	if timeStr == "" {
		timeStr = def.clock()
	}
	t, err := time.ParseInLocation(dateLayout+" "+timeLayout, dateStr+" "+timeStr, IST)
	if err != nil {
		return nil, fmt.Errorf("parse due %q %q: %w", dateStr, timeStr, err)
	}
	u := t.UTC()
	return &u, nil
}

// FormatDate renders an instant's IST calendar date as DD/MM/YYYY.
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.In(IST).Format("02/01/2006")
}

// FormatTime renders an instant's IST time-of-day as HH:MM.
func FormatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.In(IST).Format(timeLayout)
}

// FormatDue renders the display label shown next to a task.
func FormatDue(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.In(IST).Format("02/01/2006 15:04") + " (IST)"
}

// FormDate renders the IST date in the form-input layout (2006-01-02),
// for pre-filling the edit form. Inverse of ResolveDueInstant's date part.
func FormDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.In(IST).Format(dateLayout)
}

// FormTime renders the IST time in the form-input layout (15:04).
func FormTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.In(IST).Format(timeLayout)
}
