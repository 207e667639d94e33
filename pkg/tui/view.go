package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/weekboard/weekboard/pkg/board"
)

const minWidth = 60
const minHeight = 16

const hourColWidth = 6

// View implements tea.Model.
func (m Model) View() string {
	w := max(m.width, minWidth)
	h := max(m.height, minHeight)

	if m.showHelpModal {
		return placeOverlay(m.renderHelpModal(), w, h)
	}

	if m.showDeleteConfirm {
		return placeOverlay(m.renderDeleteModal(), w, h)
	}

	var b strings.Builder

	b.WriteString(m.renderHeader(w))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", w))
	b.WriteString("\n")

	grid := m.renderGrid(w)
	b.WriteString(grid)
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", w))
	b.WriteString("\n")

	// header + 2 separators + footer + input line
	used := 2 + 2 + lipgloss.Height(grid) + 1
	detailHeight := max(3, h-used)
	b.WriteString(m.renderDetailPanel(detailWidth(w), detailHeight))
	b.WriteString("\n")

	if m.input != inputNone {
		b.WriteString(InputPromptStyle.Render("> ") + m.textInput.View())
		b.WriteString("\n")
	}

	b.WriteString(m.renderFooter(w))
	return b.String()
}

func detailWidth(width int) int {
	return max(width, minWidth) - 2
}

func (m Model) renderHeader(width int) string {
	title := HeaderStyle.Render("Week of " + weekRange(m.view))

	c := m.grid.Completion()
	summary := fmt.Sprintf("%d/%d done", c.Done, c.Total)
	if n := m.grid.Hidden(); n > 0 {
		summary += fmt.Sprintf("  %d outside hours", n)
	}
	stats := HeaderCountStyle.Render(summary)

	status := ""
	if m.statusMsg != "" && time.Now().Before(m.statusTimeout) {
		status = "  " + StatusStyle.Render(m.statusMsg)
	}

	gap := max(1, width-lipgloss.Width(title)-lipgloss.Width(stats)-lipgloss.Width(status))
	return title + strings.Repeat(" ", gap) + status + stats
}

func weekRange(v board.WeekView) string {
	if len(v.Days) == 0 {
		return ""
	}
	first := v.Days[0].Date
	last := v.Days[len(v.Days)-1].Date
	return first.Format("Jan 2") + " – " + last.Format("Jan 2, 2006")
}

func (m Model) renderGrid(width int) string {
	cellWidth := max(4, (width-hourColWidth)/max(1, len(m.view.Days)))
	today := board.WeekdayOf(m.opts.Now())
	thisWeek := m.view.Contains(m.opts.Now())

	var lines []string

	// Day header row
	row := strings.Repeat(" ", hourColWidth)
	for _, d := range m.view.Days {
		c := m.grid.DayCompletion(d.Weekday)
		label := padRight(dayHeader(d, c, cellWidth-1), cellWidth)
		style := DayHeaderStyle
		switch {
		case thisWeek && d.Weekday == today:
			style = TodayHeaderStyle
		case c.Total > 0 && c.Done == c.Total:
			style = DayDoneStyle
		}
		row += style.Render(label)
	}
	lines = append(lines, row)

	cursor := m.cursorSlot()
	for _, hour := range m.view.Hours {
		row := HourLabelStyle.Render(padRight(fmt.Sprintf("%02d:00", hour), hourColWidth))
		for _, d := range m.view.Days {
			slot := board.Slot{Day: d.Weekday, Hour: hour}
			row += m.renderCell(slot, slot == cursor, cellWidth)
		}
		lines = append(lines, row)
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderCell(slot board.Slot, isCursor bool, width int) string {
	bucket := m.grid.Bucket(slot.Day, slot.Hour)

	focus := 0
	if isCursor {
		focus = m.taskIdx
	}

	if m.isMoveMode && isCursor {
		label := " " + IconMove + " "
		if t, err := m.engine.Get(m.moveID); err == nil {
			label += t.Title
		}
		return MoveStyle.Render(padRight(ansi.Truncate(label, width-1, "…"), width))
	}

	if len(bucket) == 0 {
		text := padRight(" ·", width)
		if isCursor {
			return SelectedStyle.Render(text)
		}
		return EmptyCellStyle.Render(text)
	}

	text := padRight(" "+cellLabel(bucket, focus, width-2), width)
	if isCursor {
		return SelectedStyle.Render(text)
	}
	t := bucket[clamp(focus, 0, len(bucket)-1)]
	return taskStyle(t.Color, t.Completed).Render(text)
}

func (m Model) renderDetailPanel(width, height int) string {
	t, ok := m.selectedTask()
	if !ok {
		hint := " " + m.cursorSlot().String() + " is free. Press 'a' to add a task."
		return padLines(FooterStyle.Render(hint), height)
	}

	header := m.renderTaskHeader(t)

	if m.isEditing && m.editID == t.ID {
		var lines []string
		lines = append(lines, strings.Split(m.renderMarkdown(header), "\n")...)
		lines = append(lines, strings.Split(m.noteEditor.View(), "\n")...)
		if len(lines) > height {
			lines = lines[:height]
		}
		return padLines(strings.Join(lines, "\n"), height)
	}

	md := header
	if t.Notes != "" {
		md += t.Notes + "\n"
	}
	lines := strings.Split(m.renderMarkdown(md), "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	return padLines(strings.Join(lines, "\n"), height)
}

func (m Model) renderMarkdown(md string) string {
	rendered := md
	if m.glamourRenderer != nil {
		if out, err := m.glamourRenderer.Render(md); err == nil {
			rendered = out
		}
	}
	return strings.TrimRight(rendered, "\n ")
}

// renderTaskHeader builds the markdown title and metadata line for a task.
func (m Model) renderTaskHeader(t board.Task) string {
	var md strings.Builder
	md.WriteString("## " + t.Title + "\n\n")

	status := "open"
	if t.Completed {
		status = "done"
	}
	meta := []string{
		"**Slot:** " + t.Slot().String(),
		"**Status:** " + status,
	}
	if t.ProjectName != "" {
		meta = append(meta, "**Project:** "+t.ProjectName)
	}
	if n := len(m.bucket()); n > 1 {
		meta = append(meta, fmt.Sprintf("**Task:** %d of %d", clamp(m.taskIdx, 0, n-1)+1, n))
	}
	md.WriteString(strings.Join(meta, " | ") + "\n\n")
	return md.String()
}

func (m Model) renderFooter(width int) string {
	help := m.keys.ShortHelp()
	switch {
	case m.input != inputNone:
		help = "enter confirm  esc cancel"
	case m.isEditing:
		help = "esc save & exit  ctrl+s save  ctrl+c cancel"
	case m.isMoveMode:
		help = "←↓↑→ choose slot  enter drop  esc cancel"
	}
	return FooterStyle.Render(help)
}

func (m Model) renderHelpModal() string {
	var b strings.Builder

	b.WriteString(ModalTitleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")

	keyStyle := lipgloss.NewStyle().Foreground(ColorBlue).Width(16)
	descStyle := lipgloss.NewStyle().Foreground(ColorWhite)

	for _, binding := range m.keys.FullHelp() {
		b.WriteString(keyStyle.Render(binding[0]))
		b.WriteString(descStyle.Render(binding[1]))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(FooterStyle.Render("Press Esc or ? to close"))

	return ModalStyle.Render(b.String())
}

func (m Model) renderDeleteModal() string {
	var b strings.Builder

	b.WriteString(ModalTitleStyle.Render("Delete Task"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Delete '%s' from %s?\n\n", m.deleteTarget.Title, m.deleteTarget.Slot()))
	b.WriteString(lipgloss.NewStyle().Foreground(ColorGreen).Render("[y]") + " Yes  ")
	b.WriteString(lipgloss.NewStyle().Foreground(ColorRed).Render("[n]") + " No")

	return ModalStyle.Render(b.String())
}

func padLines(block string, height int) string {
	lines := strings.Split(block, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func placeOverlay(modal string, width, height int) string {
	modalLines := strings.Split(modal, "\n")

	topPadding := max(0, (height-len(modalLines))/2)
	leftPadding := max(0, (width-lipgloss.Width(modalLines[0]))/2)

	var result strings.Builder
	for i := 0; i < topPadding; i++ {
		result.WriteString("\n")
	}

	for _, line := range modalLines {
		result.WriteString(strings.Repeat(" ", leftPadding))
		result.WriteString(line)
		result.WriteString("\n")
	}

	return result.String()
}
