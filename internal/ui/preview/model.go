package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/ghnotify/internal/model"
	"github.com/nhle/ghnotify/internal/theme"
)

// HelpText is the static key reference shown under every entry.
const HelpText = "enter  open in browser\n" +
	"r      refresh\n" +
	"m      mark as read\n" +
	"/      filter\n" +
	"esc    close"

// Model is the read-only preview pane for the selected entry.
type Model struct {
	entry    *model.Entry
	webURL   string
	viewport viewport.Model
	width    int
	height   int
}

// New creates a new preview pane.
func New(width, height int) Model {
	vp := viewport.New(width, height)
	vp.Style = lipgloss.NewStyle()

	return Model{
		viewport: vp,
		width:    width,
		height:   height,
	}
}

// Update lets the viewport scroll.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the preview pane.
func (m Model) View() string {
	return theme.PanelStyle.
		Width(max(m.width-2, 0)).
		Height(max(m.height-2, 0)).
		Render(m.viewport.View())
}

// SetEntry updates the entry being previewed. webURL is the address
// the entry would open in the browser. A nil entry clears the pane.
func (m *Model) SetEntry(e *model.Entry, webURL string) {
	m.entry = e
	m.webURL = webURL
	m.viewport.SetContent(m.renderContent())
	m.viewport.GotoTop()
}

// Content returns the unstyled text currently shown.
func (m Model) Content() string {
	return m.renderContent()
}

// SetSize updates the pane dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = max(width-4, 0)
	m.viewport.Height = max(height-2, 0)
	m.viewport.SetContent(m.renderContent())
}

// renderContent builds the preview text for the viewport.
func (m Model) renderContent() string {
	var sections []string

	if m.entry == nil {
		sections = append(sections, theme.HelpStyle.Render("Nothing selected"))
	} else if m.entry.Summary {
		sections = append(sections, field("Remaining", m.entry.Rate.String()))
		sections = append(sections, "")
		sections = append(sections, theme.HelpStyle.Render("API calls left in the current rate limit window."))
	} else {
		e := m.entry
		sections = append(sections,
			field("Repo", e.Repo),
			field("Title", e.Title),
			field("Type", e.Type),
			field("Reason", e.Reason),
			field("URL", m.webURL),
		)
		if !e.UpdatedAt.IsZero() {
			sections = append(sections, field("Updated", e.UpdatedAt.Local().Format("2006-01-02 15:04")))
		}
		if e.ThreadID == "" {
			sections = append(sections, "", theme.HelpStyle.Render("No thread id: cannot be marked as read."))
		}
	}

	sep := lipgloss.NewStyle().Foreground(theme.ColorSubtle).
		Render(strings.Repeat("─", max(min(m.width-4, 60), 0)))
	sections = append(sections, "", sep, theme.HelpStyle.Render(HelpText))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func field(label, value string) string {
	return fmt.Sprintf("%s %s",
		theme.LabelStyle.Render(fmt.Sprintf("%-8s", label+":")),
		theme.ValueStyle.Render(value),
	)
}
