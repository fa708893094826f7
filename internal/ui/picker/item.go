package picker

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/ghnotify/internal/model"
	"github.com/nhle/ghnotify/internal/theme"
)

// Item wraps a model.Entry so it can be used in a bubbles/list.
type Item struct {
	Entry model.Entry
}

// FilterValue returns the string used for fuzzy filtering.
func (i Item) FilterValue() string { return i.Entry.Ordinal() }

// ItemDelegate implements list.ItemDelegate for rendering entries.
type ItemDelegate struct{}

// Height returns the number of lines each item takes.
func (d ItemDelegate) Height() int { return 1 }

// Spacing returns the number of blank lines between items.
func (d ItemDelegate) Spacing() int { return 0 }

// Update handles per-item messages (unused).
func (d ItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render draws a single list item line.
func (d ItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(Item)
	if !ok {
		return
	}

	e := it.Entry
	isSelected := index == m.Index()

	if e.Summary {
		line := theme.SummaryStyle.Render(e.Display())
		if isSelected {
			line = theme.SelectedItemStyle.Render(e.Display())
		}
		fmt.Fprint(w, line)
		return
	}

	typeBadge := theme.TypeStyle(e.Type).Render(typeLabel(e.Type))
	repo := lipgloss.NewStyle().Foreground(theme.ColorBlue).Render(e.Repo)
	reason := theme.ReasonStyle(e.Reason).Render(e.Reason)

	line := fmt.Sprintf("%s %s %s  %s", typeBadge, repo, e.Title, reason)

	if isSelected {
		line = theme.SelectedItemStyle.Render(line)
	} else {
		line = theme.ListItemStyle.Render(line)
	}

	fmt.Fprint(w, line)
}

// typeLabel returns a short fixed-width badge for a subject type.
func typeLabel(subjectType string) string {
	switch subjectType {
	case "PullRequest":
		return "PR "
	case "Issue":
		return "ISS"
	case "Release":
		return "REL"
	case "Discussion":
		return "DSC"
	case "Commit":
		return "CMT"
	case "CheckSuite":
		return "CI "
	default:
		return "···"
	}
}
