package tui

import (
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/weekboard/weekboard/pkg/board"
	"github.com/weekboard/weekboard/pkg/log"
	"github.com/weekboard/weekboard/pkg/store"
	gsync "github.com/weekboard/weekboard/pkg/sync"
)

// FileChangedMsg is sent when the file watcher detects changes.
type FileChangedMsg struct{}

// SyncDoneMsg is sent when git sync completes.
type SyncDoneMsg struct {
	Err error
}

// EditorFinishedMsg is sent when $EDITOR returns.
type EditorFinishedMsg struct {
	Err error
}

type inputKind int

const (
	inputNone inputKind = iota
	inputAdd
	inputRename
	inputProject
)

// Options configures the board model.
type Options struct {
	WeekStart board.Weekday
	// Now is the clock used for "this week"; nil means time.Now.
	Now func() time.Time
}

// Model is the Bubble Tea model for the weekly board.
type Model struct {
	engine *board.Engine
	store  *store.Store
	keys   KeyMap
	opts   Options
	width  int
	height int

	view board.WeekView
	grid *board.Grid

	// Cursor: day column, hour row (index into view.Hours), task in the slot
	dayIdx  int
	hourIdx int
	taskIdx int

	// Modal state
	showHelpModal     bool
	showDeleteConfirm bool
	deleteTarget      board.Task

	// Move mode: the picked-up task travels with the cursor until dropped
	isMoveMode bool
	moveID     string
	moveOrigin board.Slot

	// Single-line input (add, rename, project)
	input     inputKind
	textInput textinput.Model
	inputSlot board.Slot
	inputID   string

	// Inline notes edit
	isEditing  bool
	noteEditor textarea.Model
	editID     string

	statusMsg     string
	statusTimeout time.Time

	glamourRenderer *glamour.TermRenderer
	glamourWidth    int
}

// NewModel creates a board model showing the current week.
func NewModel(e *board.Engine, s *store.Store, opts Options) Model {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if !opts.WeekStart.Valid() {
		opts.WeekStart = board.Monday
	}

	ti := textinput.New()
	ti.CharLimit = 120

	m := Model{
		engine:    e,
		store:     s,
		keys:      DefaultKeyMap(),
		opts:      opts,
		textInput: ti,
	}
	m.view = board.BuildWeek(board.StartOfWeek(opts.Now(), opts.WeekStart), e.WorkingHours())
	m.focusNow()
	m.regrid()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.WindowSize()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.getGlamourRenderer(detailWidth(msg.Width) - 2)
		if m.isEditing {
			m.noteEditor.SetWidth(detailWidth(msg.Width))
			m.noteEditor.SetHeight(max(3, msg.Height-10))
		}
		return m, tea.ClearScreen

	case FileChangedMsg:
		m.reload()
		return m, nil

	case SyncDoneMsg:
		if msg.Err != nil {
			m.setStatus("Sync failed: " + msg.Err.Error())
		} else {
			m.setStatus("Synced successfully")
			m.reload()
		}
		return m, nil

	case EditorFinishedMsg:
		if msg.Err != nil {
			m.setStatus("Editor: " + msg.Err.Error())
		}
		m.reload()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	if m.input != inputNone {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}
	if m.isEditing {
		var cmd tea.Cmd
		m.noteEditor, cmd = m.noteEditor.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.input != inputNone {
		return m.handleInput(msg)
	}

	if m.isEditing {
		return m.handleEditMode(msg)
	}

	if m.showHelpModal {
		switch msg.String() {
		case "esc", "enter", "?", "q":
			m.showHelpModal = false
		}
		return m, nil
	}

	if m.showDeleteConfirm {
		switch msg.String() {
		case "y", "Y":
			if _, err := m.engine.Delete(m.deleteTarget.ID); err != nil {
				m.setStatus("Delete failed: " + err.Error())
			} else {
				m.setStatus("Deleted: " + m.deleteTarget.Title)
				m.regrid()
			}
			m.showDeleteConfirm = false
		case "n", "N", "esc":
			m.showDeleteConfirm = false
		}
		return m, nil
	}

	if m.isMoveMode {
		return m.handleMoveMode(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(0, -1)

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(0, 1)

	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1, 0)

	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1, 0)

	case key.Matches(msg, m.keys.Tab):
		if n := len(m.bucket()); n > 0 {
			m.taskIdx = (m.taskIdx + 1) % n
		}

	case key.Matches(msg, m.keys.NextWeek):
		m.view = m.view.Next()
		m.regrid()

	case key.Matches(msg, m.keys.PrevWeek):
		m.view = m.view.Prev()
		m.regrid()

	case key.Matches(msg, m.keys.ThisWeek):
		m.view = board.BuildWeek(board.StartOfWeek(m.opts.Now(), m.opts.WeekStart), m.engine.WorkingHours())
		m.focusNow()
		m.regrid()

	case key.Matches(msg, m.keys.Space):
		if t, ok := m.selectedTask(); ok {
			updated, err := m.engine.ToggleCompletion(t.ID)
			if err != nil {
				m.setStatus("Error: " + err.Error())
			} else {
				if updated.Completed {
					m.setStatus(updated.Title + " → complete")
				} else {
					m.setStatus(updated.Title + " → incomplete")
				}
				m.regrid()
			}
		}

	case key.Matches(msg, m.keys.Add):
		m.startInput(inputAdd, "", "task title at "+m.cursorSlot().String())
		m.inputSlot = m.cursorSlot()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Rename):
		if t, ok := m.selectedTask(); ok {
			m.startInput(inputRename, t.Title, "new title")
			m.inputID = t.ID
			return m, textinput.Blink
		}

	case key.Matches(msg, m.keys.Project):
		if t, ok := m.selectedTask(); ok {
			m.startInput(inputProject, t.ProjectName, "project name (empty clears)")
			m.inputID = t.ID
			return m, textinput.Blink
		}

	case key.Matches(msg, m.keys.InlineEdit):
		if t, ok := m.selectedTask(); ok {
			m.enterEditMode(t)
			return m, textarea.Blink
		}

	case key.Matches(msg, m.keys.ExternalEdit):
		if t, ok := m.selectedTask(); ok {
			cmd := m.openEditor(t)
			return m, cmd
		}

	case key.Matches(msg, m.keys.Delete):
		if t, ok := m.selectedTask(); ok {
			m.deleteTarget = t
			m.showDeleteConfirm = true
		}

	case key.Matches(msg, m.keys.Move):
		if t, ok := m.selectedTask(); ok {
			m.isMoveMode = true
			m.moveID = t.ID
			m.moveOrigin = t.Slot()
			m.setStatus("Move mode: arrows pick a slot, enter drops, esc cancels")
		}

	case key.Matches(msg, m.keys.Reload):
		m.reload()
		m.setStatus("Reloaded")

	case key.Matches(msg, m.keys.Sync):
		return m, m.doSync()

	case key.Matches(msg, m.keys.Help):
		m.showHelpModal = !m.showHelpModal
	}

	return m, nil
}

// handleMoveMode drives the pick-up/drop gesture. Only the drop touches the
// engine, as a single Move.
func (m Model) handleMoveMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyEsc || key.Matches(msg, m.keys.Quit):
		m.isMoveMode = false
		m.setCursorSlot(m.moveOrigin)
		m.focusTask(m.moveID)
		m.moveID = ""
		m.setStatus("Move cancelled")

	case key.Matches(msg, m.keys.Enter):
		target := m.cursorSlot()
		moved, err := m.engine.Move(m.moveID, target.Day, target.Hour)
		if err != nil {
			m.setStatus("Move error: " + err.Error())
			if errors.Is(err, board.ErrNotFound) {
				m.isMoveMode = false
				m.moveID = ""
			}
			return m, nil
		}
		m.isMoveMode = false
		m.moveID = ""
		m.regrid()
		m.focusTask(moved.ID)
		m.setStatus(moved.Title + " → " + target.String())

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(0, -1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(0, 1)
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1, 0)
	}
	return m, nil
}

func (m *Model) startInput(kind inputKind, value, placeholder string) {
	m.input = kind
	m.textInput.Reset()
	m.textInput.SetValue(value)
	m.textInput.Placeholder = placeholder
	m.textInput.Focus()
}

func (m Model) handleInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.input = inputNone
		m.textInput.Blur()
		return m, nil

	case tea.KeyEnter:
		value := strings.TrimSpace(m.textInput.Value())
		kind := m.input
		m.input = inputNone
		m.textInput.Blur()
		m.submitInput(kind, value)
		return m, nil

	default:
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}
}

func (m *Model) submitInput(kind inputKind, value string) {
	switch kind {
	case inputAdd:
		if value == "" {
			return
		}
		t, err := m.engine.Create(m.inputSlot.Day, m.inputSlot.Hour, board.Details{Title: value})
		if err != nil {
			m.setStatus("Error: " + err.Error())
			return
		}
		m.regrid()
		m.focusTask(t.ID)
		m.setStatus("Created: " + t.Title)

	case inputRename:
		if value == "" {
			return
		}
		t, err := m.engine.Edit(m.inputID, board.Patch{Title: &value})
		if err != nil {
			m.setStatus("Error: " + err.Error())
			return
		}
		m.regrid()
		m.setStatus("Renamed to: " + t.Title)

	case inputProject:
		t, err := m.engine.Edit(m.inputID, board.Patch{ProjectName: &value})
		if err != nil {
			m.setStatus("Error: " + err.Error())
			return
		}
		m.regrid()
		if t.ProjectName == "" {
			m.setStatus("Project cleared")
		} else {
			m.setStatus("Project: " + t.ProjectName)
		}
	}
}

func (m Model) handleEditMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.saveInlineEdit()
		m.isEditing = false
		m.noteEditor.Blur()
		return m, nil

	case tea.KeyCtrlS:
		m.saveInlineEdit()
		return m, nil

	case tea.KeyCtrlC:
		m.isEditing = false
		m.noteEditor.Blur()
		m.setStatus("Edit cancelled")
		return m, nil

	default:
		var cmd tea.Cmd
		m.noteEditor, cmd = m.noteEditor.Update(msg)
		return m, cmd
	}
}

func (m *Model) enterEditMode(t board.Task) {
	ta := textarea.New()
	ta.ShowLineNumbers = false
	ta.SetValue(t.Notes)
	ta.SetWidth(detailWidth(m.width))
	ta.SetHeight(max(3, m.height-10))
	ta.Focus()

	m.isEditing = true
	m.noteEditor = ta
	m.editID = t.ID
}

func (m *Model) saveInlineEdit() {
	notes := m.noteEditor.Value()
	if _, err := m.engine.Edit(m.editID, board.Patch{Notes: &notes}); err != nil {
		m.setStatus("Save error: " + err.Error())
		return
	}
	m.regrid()
	m.setStatus("Saved")
}

// reload replaces the engine's tasks with what is on disk.
func (m *Model) reload() {
	if m.store == nil {
		m.regrid()
		return
	}
	tasks, err := m.store.LoadTasks()
	if err != nil {
		m.setStatus("Load error: " + err.Error())
		return
	}
	if err := m.engine.Replace(tasks); err != nil {
		log.Error("reload rejected", err)
		m.setStatus("Load error: " + err.Error())
		return
	}
	m.regrid()
}

func (m *Model) regrid() {
	m.grid = m.engine.Index(m.view)
	m.dayIdx = clamp(m.dayIdx, 0, len(m.view.Days)-1)
	m.hourIdx = clamp(m.hourIdx, 0, len(m.view.Hours)-1)
	m.taskIdx = clamp(m.taskIdx, 0, max(0, len(m.bucket())-1))
}

// focusNow puts the cursor on today's column and the current hour if visible.
func (m *Model) focusNow() {
	now := m.opts.Now()
	for i, d := range m.view.Days {
		if d.Weekday == board.WeekdayOf(now) {
			m.dayIdx = i
		}
	}
	for i, h := range m.view.Hours {
		if h == now.Hour() {
			m.hourIdx = i
		}
	}
}

func (m *Model) moveCursor(dDay, dHour int) {
	m.dayIdx = clamp(m.dayIdx+dDay, 0, len(m.view.Days)-1)
	m.hourIdx = clamp(m.hourIdx+dHour, 0, len(m.view.Hours)-1)
	m.taskIdx = 0
}

func (m Model) cursorSlot() board.Slot {
	if len(m.view.Days) == 0 || len(m.view.Hours) == 0 {
		return board.Slot{}
	}
	return board.Slot{Day: m.view.Days[m.dayIdx].Weekday, Hour: m.view.Hours[m.hourIdx]}
}

func (m *Model) setCursorSlot(s board.Slot) {
	for i, d := range m.view.Days {
		if d.Weekday == s.Day {
			m.dayIdx = i
		}
	}
	for i, h := range m.view.Hours {
		if h == s.Hour {
			m.hourIdx = i
		}
	}
	m.taskIdx = 0
}

// focusTask moves the cursor onto the task, if it is on the grid.
func (m *Model) focusTask(id string) {
	slot, ok := m.grid.Find(id)
	if !ok {
		return
	}
	m.setCursorSlot(slot)
	for i, t := range m.bucket() {
		if t.ID == id {
			m.taskIdx = i
		}
	}
}

func (m Model) bucket() []board.Task {
	if m.grid == nil {
		return nil
	}
	s := m.cursorSlot()
	return m.grid.Bucket(s.Day, s.Hour)
}

func (m Model) selectedTask() (board.Task, bool) {
	b := m.bucket()
	if len(b) == 0 {
		return board.Task{}, false
	}
	return b[clamp(m.taskIdx, 0, len(b)-1)], true
}

func (m *Model) getGlamourRenderer(width int) *glamour.TermRenderer {
	if width < 10 {
		width = 10
	}
	if m.glamourRenderer != nil && m.glamourWidth == width {
		return m.glamourRenderer
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	m.glamourRenderer = r
	m.glamourWidth = width
	return r
}

func (m *Model) setStatus(msg string) {
	m.statusMsg = msg
	m.statusTimeout = time.Now().Add(3 * time.Second)
}

func (m *Model) openEditor(t board.Task) tea.Cmd {
	if m.store == nil {
		m.setStatus("No task files to edit")
		return nil
	}
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vim"
	}
	c := exec.Command(editor, m.store.TaskPath(t.ID))
	return tea.ExecProcess(c, func(err error) tea.Msg {
		return EditorFinishedMsg{Err: err}
	})
}

func (m Model) doSync() tea.Cmd {
	if m.store == nil {
		return nil
	}
	dir := m.store.Root
	return func() tea.Msg {
		return SyncDoneMsg{Err: gsync.SyncRepo(dir, io.Discard)}
	}
}
