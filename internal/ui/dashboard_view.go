package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	liptable "github.com/charmbracelet/lipgloss/table"

	"github.com/todoflow/todoflow/internal/domain"
)

func (m Model) View() string {
	containerWidth := maxInt(40, m.width-2)

	topRow := m.renderTopRow(containerWidth)
	statsRow := m.renderStatsRow(containerWidth)
	filterBar := m.renderFilterBar(containerWidth)
	footer := m.renderFooter(containerWidth)

	mainHeight := m.height - lipgloss.Height(topRow) - lipgloss.Height(statsRow) - lipgloss.Height(filterBar) - lipgloss.Height(footer)
	if mainHeight < 8 {
		mainHeight = 8
	}

	detailWidth := 0
	gap := 1
	if m.showDetails {
		detailWidth = maxInt(36, containerWidth/3)
		if detailWidth > containerWidth-28 {
			detailWidth = containerWidth - 28
		}
	}
	mainWidth := containerWidth
	if detailWidth > 0 {
		mainWidth = containerWidth - detailWidth - gap
	}
	if mainWidth < 24 {
		mainWidth = containerWidth
		detailWidth = 0
	}

	left := m.renderTaskList(mainWidth, mainHeight)
	center := left
	if detailWidth > 0 {
		right := m.renderDetailView(detailWidth, mainHeight)
		center = lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", gap), right)
	}

	page := lipgloss.JoinVertical(lipgloss.Left, topRow, statsRow, filterBar, center, footer)
	return lipgloss.NewStyle().Padding(0, 1).Render(page)
}

func (m Model) renderTopRow(width int) string {
	bar := lipgloss.NewStyle().
		Width(width).
		Padding(0, 1).
		Foreground(lipgloss.Color("255"))

	icon := lipgloss.NewStyle().
		Foreground(lipgloss.Color("195")).
		Render("~")

	who := strings.TrimSpace(m.user.Name)
	if who == "" {
		who = "there"
	}
	greeting := lipgloss.NewStyle().Foreground(lipgloss.Color("195")).Render("Hello, ")
	name := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("191")).Render(who + "!")
	left := fmt.Sprintf("%s  %s%s", icon, greeting, name)

	clock := lipgloss.NewStyle().Foreground(lipgloss.Color("183")).Render(time.Now().Format("Mon Jan 2 15:04:05 MST"))
	return bar.Render(lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.NewStyle().Width(maxInt(1, width-28)).Render(left),
		lipgloss.NewStyle().Width(28).Align(lipgloss.Right).Render(clock),
	))
}

func (m Model) renderStatsRow(width int) string {
	cards := []struct {
		label string
		value int
		color string
	}{
		{"Total", m.stats.Total, "252"},
		{"Completed", m.stats.Completed, "78"},
		{"In Progress", m.stats.InProgress, "75"},
		{"Overdue", m.stats.Overdue, "203"},
	}

	cardWidth := maxInt(12, (width-len(cards))/len(cards))
	rendered := make([]string, 0, len(cards))
	for _, c := range cards {
		value := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.color)).Render(fmt.Sprintf("%d", c.value))
		label := lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Render(c.label)
		card := lipgloss.NewStyle().
			Width(cardWidth).
			Padding(0, 1).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("250")).
			Render(fmt.Sprintf("%s %s", value, label))
		rendered = append(rendered, card)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) renderFilterBar(width int) string {
	priority := string(m.spec.Priority)
	if priority == "" {
		priority = string(domain.PriorityFilterAll)
	}
	content := fmt.Sprintf("Status: %s | Priority: %s | Sort: %s %s",
		m.spec.Status.String(), priority, string(m.spec.SortBy), string(m.spec.SortOrder))
	if strings.TrimSpace(m.spec.Search) != "" {
		content = fmt.Sprintf("%s | Search: %s", content, m.spec.Search)
	}
	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 1).
		Foreground(lipgloss.Color("253")).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("250")).
		Render(content)
}

func (m Model) renderTaskList(width, height int) string {
	if len(m.view) == 0 {
		empty := lipgloss.NewStyle().
			Width(maxInt(1, width-4)).
			Height(maxInt(1, height-4)).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(lipgloss.Color("245")).
			Render("No tasks match.\nPress n to create one.")
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("250")).
			Render(empty)
	}

	innerWidth := maxInt(12, width-4)
	visibleRows := maxInt(2, height-4) // Includes table header row.
	visibleTaskRows := maxInt(1, visibleRows-1)

	offset := 0
	if m.selected >= visibleTaskRows {
		offset = m.selected - visibleTaskRows + 1
	}
	maxOffset := maxInt(0, len(m.view)-visibleTaskRows)
	if offset > maxOffset {
		offset = maxOffset
	}

	taskColWidth := maxInt(16, innerWidth-42)
	rows := make([][]string, 0, len(m.view))
	for _, task := range m.view {
		due, _ := m.dueDisplay(task)
		rows = append(rows, []string{
			truncate(task.Title, taskColWidth),
			truncate(statusLabel(task.Status), 12),
			truncate(due, 10),
			truncate(string(task.Priority), 8),
			truncate(strings.Join(task.Tags, ","), 14),
		})
	}

	selectedTableRow := m.selected - offset
	t := liptable.New().
		Headers("Task", "Status", "Due", "Pri", "Tags").
		Rows(rows...).
		Border(lipgloss.HiddenBorder()).
		Width(innerWidth).
		Offset(offset).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("252"))
			if row == liptable.HeaderRow {
				style = lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("245"))
			} else if row == selectedTableRow {
				style = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62"))
			}
			switch col {
			case 0:
				return style.MaxWidth(taskColWidth)
			case 1:
				return style.Width(12)
			case 2:
				return style.Width(10)
			case 3:
				return style.Width(8)
			case 4:
				return style.Width(14)
			default:
				return style
			}
		})

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(0, 0).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("250")).
		Render(t.String())
}

func (m Model) renderFooter(width int) string {
	shortcuts := "n: New | e: Edit | x: Delete | s: Status | f/p: Filter | o/O: Sort | /: Search | t/T: Tags | g/G: Share | d: Details | q: Quit"
	helpLine := lipgloss.NewStyle().
		Width(width).
		Padding(0, 1).
		Foreground(lipgloss.Color("248")).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("250")).
		Render(shortcuts)

	lines := []string{}
	if strings.TrimSpace(m.statusLine) != "" {
		statusLine := lipgloss.NewStyle().
			Width(width).
			Padding(0, 1).
			Foreground(lipgloss.Color("222")).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("250")).
			Render(m.statusLine)
		lines = append(lines, statusLine)
	}
	lines = append(lines, helpLine)

	inputLine := m.renderInlineInput(width)
	if inputLine != "" {
		lines = append(lines, inputLine)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) renderInlineInput(width int) string {
	if m.inputMode == inputNone {
		return ""
	}
	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 1).
		Foreground(lipgloss.Color("221")).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("250")).
		Render(m.textInput.View())
}

func truncate(input string, maxLen int) string {
	if maxLen <= 0 || len(input) <= maxLen {
		return input
	}
	if maxLen < 4 {
		return input[:maxLen]
	}
	return input[:maxLen-3] + "..."
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
