package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
)

func (m Model) renderDetailView(width, height int) string {
	panelStyle := lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(0, 1).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("250"))
	task, ok := m.currentTask()
	if !ok {
		return panelStyle.Render("No task selected")
	}

	header := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213")).Render(task.Title)

	meta := []string{}
	statusValue := lipgloss.NewStyle().
		Foreground(statusColor(task.Status)).
		Bold(true).
		Render(statusLabel(task.Status))
	meta = append(meta, fmt.Sprintf("Status: %s", statusValue))
	priorityValue := lipgloss.NewStyle().
		Foreground(priorityColor(task.Priority)).
		Bold(true).
		Render(string(task.Priority))
	meta = append(meta, fmt.Sprintf("Priority: %s", priorityValue))
	if task.DueDate != "" {
		due, color := m.dueDisplay(task)
		meta = append(meta, fmt.Sprintf("Due: %s", lipgloss.NewStyle().Foreground(color).Render(due)))
	}
	metaLine := lipgloss.NewStyle().Foreground(lipgloss.Color("246")).Render(strings.Join(meta, " | "))

	descTitle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("221")).Render("Description")
	desc := ""
	if rendered, err := renderMarkdownWithGlamour(task.Description, width-4); err == nil {
		desc = strings.TrimRight(rendered, "\n")
	} else {
		desc = task.Description
	}
	if strings.TrimSpace(desc) == "" {
		desc = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render("(empty)")
	}

	tagsTitle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("221")).Render("Tags")
	tags := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render("(none)")
	if len(task.Tags) > 0 {
		rendered := make([]string, 0, len(task.Tags))
		for _, tag := range task.Tags {
			rendered = append(rendered, lipgloss.NewStyle().
				Foreground(lipgloss.Color("117")).
				Render("#"+tag))
		}
		tags = strings.Join(rendered, " ")
	}

	sharedTitle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("221")).Render("Shared with")
	sharedLines := make([]string, 0, len(task.SharedWith)+1)
	if len(task.SharedWith) == 0 {
		sharedLines = append(sharedLines, lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render("(nobody)"))
	}
	for _, email := range task.SharedWith {
		sharedLines = append(sharedLines, lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Render("- "+email))
	}
	shareURL := lipgloss.NewStyle().
		Foreground(lipgloss.Color("111")).
		Render(m.shareBase + task.SharePath())
	sharedLines = append(sharedLines, shareURL)

	content := []string{header, metaLine, "", descTitle, desc, "", tagsTitle, tags, "", sharedTitle, strings.Join(sharedLines, "\n")}
	return panelStyle.Render(strings.Join(content, "\n"))
}

func renderMarkdownWithGlamour(md string, width int) (string, error) {
	if width < 20 {
		width = 20
	}
	style := styles.DarkStyleConfig
	style.H1.Prefix = " "
	style.H2.Prefix = "  "
	style.H3.Prefix = "   "
	style.H1.BackgroundColor = nil
	style.H1.Color = stringPtr("51")
	style.H1.Bold = boolPtr(true)
	style.H2.Bold = boolPtr(true)
	style.H2.Color = stringPtr("45")
	style.H2.Underline = boolPtr(false)
	style.H3.Bold = boolPtr(true)
	style.H3.Color = stringPtr("44")

	renderer, err := glamour.NewTermRenderer(
		glamour.WithWordWrap(width),
		glamour.WithStyles(style),
	)
	if err != nil {
		return "", err
	}
	return renderer.Render(md)
}

func boolPtr(v bool) *bool {
	return &v
}

func stringPtr(v string) *string {
	return &v
}
