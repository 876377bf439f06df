package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/suchismita05092005-bit/EverydayTasks/internal/board"
	"github.com/suchismita05092005-bit/EverydayTasks/internal/civiltime"
	"github.com/suchismita05092005-bit/EverydayTasks/internal/engine"
	"github.com/suchismita05092005-bit/EverydayTasks/internal/model"
)

type mode int

const (
	modeList mode = iota
	modeForm
)

type formKind int

const (
	formAdd formKind = iota
	formEdit
)

// tickMsg drives the periodic status refresh: pending tasks drift into
// overdue with no user action, so the board repaints on a timer.
type tickMsg time.Time

var quadrantTitles = map[model.Quadrant]string{
	model.QuadrantI:   "I · Urgent & Important",
	model.QuadrantII:  "II · Important",
	model.QuadrantIII: "III · Urgent",
	model.QuadrantIV:  "IV · Neither",
}

var statusColors = map[engine.Status]lipgloss.Color{
	engine.StatusPending:  lipgloss.Color("220"),
	engine.StatusOverdue:  lipgloss.Color("196"),
	engine.StatusDone:     lipgloss.Color("42"),
	engine.StatusDoneLate: lipgloss.Color("208"),
}

type Model struct {
	mode        mode
	formKind    formKind
	inputs      []textinput.Model
	focusIndex  int
	board       *board.Board
	refresh     time.Duration
	selected    int
	quadrant    int
	statusMsg   string
	statusIsErr bool
	editTaskID  string
	width       int
	height      int
}

func New(b *board.Board, refresh time.Duration) Model {
	return Model{
		mode:    modeList,
		board:   b,
		refresh: refresh,
	}
}

func (m *Model) SetStatus(msg string, isErr bool) {
	m.statusMsg = msg
	m.statusIsErr = isErr
}

func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.refresh, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m, m.tickCmd()
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch m.mode {
		case modeList:
			return m.updateList(msg)
		case modeForm:
			return m.updateForm(msg)
		}
	}
	return m, nil
}

func (m Model) View() string {
	switch m.mode {
	case modeList:
		return m.viewList()
	case modeForm:
		return m.viewForm()
	default:
		return ""
	}
}

func (m Model) currentQuadrant() model.Quadrant {
	return model.Quadrants[m.quadrant]
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	now := time.Now()
	visible := m.board.TasksInQuadrant(m.currentQuadrant(), now)
	// The board can shrink underneath the cursor (edit-to-empty deletes).
	if m.selected >= len(visible) {
		m.selected = 0
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(visible)-1 {
			m.selected++
		}
	case "tab":
		m.quadrant = (m.quadrant + 1) % len(model.Quadrants)
		m.selected = 0
	case "a":
		m.startForm(formAdd, model.Task{Quadrant: m.currentQuadrant()})
		return m, m.focusCmd()
	case "e":
		if len(visible) == 0 {
			return m, nil
		}
		m.startForm(formEdit, visible[m.selected])
		return m, m.focusCmd()
	case " ":
		if len(visible) == 0 {
			return m, nil
		}
		m.board.ToggleComplete(visible[m.selected].ID)
		m.flagSaveErr()
	case "m":
		if len(visible) == 0 {
			return m, nil
		}
		t := visible[m.selected]
		m.board.MoveTask(t.ID, t.Quadrant.Next())
		if m.selected > 0 && m.selected >= len(visible)-1 {
			m.selected--
		}
		m.flagSaveErr()
	case "x":
		if len(visible) == 0 {
			return m, nil
		}
		m.board.DeleteTask(visible[m.selected].ID)
		if m.selected > 0 && m.selected >= len(visible)-1 {
			m.selected--
		}
		m.flagSaveErr()
	}

	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+c":
		m.mode = modeList
		m.statusMsg = "Canceled"
		m.statusIsErr = false
		return m, nil
	case "enter":
		if m.focusIndex >= len(m.inputs)-1 {
			return m.submitForm(), nil
		}
		m.focusIndex++
		return m, m.focusCmd()
	}

	for i := range m.inputs {
		m.inputs[i], _ = m.inputs[i].Update(msg)
	}
	return m, nil
}

func (m *Model) startForm(kind formKind, task model.Task) {
	m.mode = modeForm
	m.formKind = kind
	m.editTaskID = task.ID
	m.inputs = make([]textinput.Model, 4)
	m.focusIndex = 0

	m.inputs[0] = newInput("Task", task.Text)
	m.inputs[1] = newInput("Quadrant (I/II/III/IV)", string(task.Quadrant))
	m.inputs[2] = newInput("Due date (YYYY-MM-DD, IST)", civiltime.FormDate(task.Due))
	m.inputs[3] = newInput("Due time (HH:MM, IST)", civiltime.FormTime(task.Due))
}

func newInput(placeholder, value string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.SetValue(value)
	ti.CharLimit = 200
	return ti
}

func (m Model) focusCmd() tea.Cmd {
	for i := range m.inputs {
		if i == m.focusIndex {
			m.inputs[i].Focus()
			continue
		}
		m.inputs[i].Blur()
	}
	return nil
}

func (m Model) submitForm() tea.Model {
	text := m.inputs[0].Value()
	quadrant := model.Quadrant(strings.ToUpper(strings.TrimSpace(m.inputs[1].Value())))
	dateText := m.inputs[2].Value()
	timeText := m.inputs[3].Value()

	switch m.formKind {
	case formAdd:
		if _, ok := m.board.AddTask(text, quadrant, dateText, timeText); !ok {
			m.setStatusErr("Task text is required")
			return m
		}
		m.statusMsg = "Added"
	case formEdit:
		wasCompleted := false
		if t, ok := m.board.Task(m.editTaskID); ok {
			wasCompleted = t.Completed
		}
		m.board.EditTask(m.editTaskID, board.EditFields{
			Text:      text,
			Quadrant:  quadrant,
			DateText:  dateText,
			TimeText:  timeText,
			Completed: wasCompleted,
		})
		if _, ok := m.board.Task(m.editTaskID); !ok {
			m.statusMsg = "Deleted"
		} else {
			m.statusMsg = "Saved"
		}
	}

	m.statusIsErr = false
	m.flagSaveErr()
	m.mode = modeList
	return m
}

func (m *Model) flagSaveErr() {
	if err := m.board.SaveErr(); err != nil {
		m.setStatusErr("Failed to save tasks")
	}
}

func (m *Model) setStatusErr(msg string) {
	m.statusMsg = msg
	m.statusIsErr = true
}

func (m Model) viewList() string {
	now := time.Now()
	footer := "[a] Add  [e] Edit  [space] Done  [m] Move  [x] Delete  [tab] Next Quadrant  [q] Quit"
	status := ""
	if m.statusMsg != "" {
		prefix := "OK"
		if m.statusIsErr {
			prefix = "ERR"
		}
		status = fmt.Sprintf("%s: %s", prefix, m.statusMsg)
	}

	screenW := m.width
	screenH := m.height
	if screenW < 80 {
		screenW = 80
	}
	if screenH < 24 {
		screenH = 24
	}
	boxGap := 1
	boxW := (screenW - boxGap) / 2
	footerLines := 3
	boxH := (screenH - footerLines - 1) / 2

	baseStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Foreground(lipgloss.Color("252")).
		Width(boxW).
		Height(boxH)
	selectedStyle := baseStyle.
		BorderForeground(lipgloss.Color("214")).
		Foreground(lipgloss.Color("229"))

	boxes := make([]string, len(model.Quadrants))
	for q, quad := range model.Quadrants {
		tasks := m.board.TasksInQuadrant(quad, now)
		lines := make([]string, 0, len(tasks)+1)
		lines = append(lines, fmt.Sprintf("%s (%d)", strings.ToUpper(quadrantTitles[quad]), m.board.ActiveCount(quad)))
		if len(tasks) == 0 {
			lines = append(lines, "(no tasks)")
		} else {
			for i, task := range tasks {
				cursor := " "
				if q == m.quadrant && i == m.selected {
					cursor = ">"
				}
				mark := "[ ]"
				if task.Completed {
					mark = "[x]"
				}
				st := engine.StatusOf(task, now)
				dot := lipgloss.NewStyle().Foreground(statusColors[st]).Render("●")
				due := ""
				if task.Due != nil {
					due = " · due " + civiltime.FormatDue(task.Due)
				}
				lines = append(lines, fmt.Sprintf("%s %s %s %s%s", cursor, mark, dot, task.Text, due))
			}
		}
		style := baseStyle
		if q == m.quadrant {
			style = selectedStyle
		}
		boxes[q] = style.Render(strings.Join(lines, "\n"))
	}

	topRow := lipgloss.JoinHorizontal(lipgloss.Top, boxes[0], strings.Repeat(" ", boxGap), boxes[1])
	bottomRow := lipgloss.JoinHorizontal(lipgloss.Top, boxes[2], strings.Repeat(" ", boxGap), boxes[3])
	grid := lipgloss.JoinVertical(lipgloss.Left, topRow, bottomRow)

	total := m.board.Len()
	plural := "s"
	if total == 1 {
		plural = ""
	}
	stats := fmt.Sprintf("%d task%s total", total, plural)

	footerBlock := stats + "\n" + footer
	if status != "" {
		footerBlock += "\n" + status
	}
	return lipgloss.JoinVertical(lipgloss.Left, grid, footerBlock)
}

func (m Model) viewForm() string {
	var b strings.Builder
	if m.formKind == formAdd {
		b.WriteString("Add Task\n")
	} else {
		b.WriteString("Edit Task\n")
	}
	b.WriteString("----------------\n")
	for i, input := range m.inputs {
		cursor := " "
		if i == m.focusIndex {
			cursor = ">"
		}
		fmt.Fprintf(&b, "%s %s: %s\n", cursor, input.Placeholder, input.View())
	}
	b.WriteString("\n[enter] Next  [esc] Cancel\n")
	if m.formKind == formEdit {
		b.WriteString("Clearing the task text deletes the task.\n")
	}
	if m.statusMsg != "" {
		prefix := "OK"
		if m.statusIsErr {
			prefix = "ERR"
		}
		fmt.Fprintf(&b, "%s: %s\n", prefix, m.statusMsg)
	}
	return b.String()
}
