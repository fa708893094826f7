package help

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/ghnotify/internal/keys"
	"github.com/nhle/ghnotify/internal/theme"
	"github.com/nhle/ghnotify/internal/ui/command"
)

// sectionTitles name the groups returned by KeyMap.FullHelp, in order.
var sectionTitles = []string{"Moving around", "Notification actions", "Anywhere"}

// Model is the help overlay. It lists the key map by section and the
// command palette's commands.
type Model struct {
	keys   *keys.KeyMap
	help   help.Model
	width  int
	height int
}

// New creates a new help view model.
func New(keys *keys.KeyMap, width, height int) Model {
	h := help.New()
	h.Width = width
	return Model{
		keys:   keys,
		help:   h,
		width:  width,
		height: height,
	}
}

// Update handles messages for the help view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m, nil
}

// View renders the help overlay.
func (m Model) View() string {
	return theme.PanelStyle.
		Width(max(m.width-4, 0)).
		Height(max(m.height-4, 0)).
		Render(m.Content())
}

// Content returns the overlay body without the surrounding panel.
func (m Model) Content() string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		Render("ghnotify keys")

	blocks := []string{title}
	for i, group := range m.keys.FullHelp() {
		name := fmt.Sprintf("Group %d", i+1)
		if i < len(sectionTitles) {
			name = sectionTitles[i]
		}
		blocks = append(blocks, "", renderSection(name, group))
	}

	blocks = append(blocks, "",
		theme.LabelStyle.Render("Palette (:)  ")+
			theme.ValueStyle.Render(strings.Join(command.Commands, ", ")),
		"",
		m.help.ShortHelpView(m.keys.ShortHelp()),
	)

	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

// renderSection lists the enabled bindings of one group, one per line.
func renderSection(name string, bindings []key.Binding) string {
	lines := []string{theme.HelpStyle.Bold(true).Render(name)}
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		lines = append(lines, fmt.Sprintf("  %s %s",
			theme.LabelStyle.Render(fmt.Sprintf("%-8s", h.Key)),
			theme.ValueStyle.Render(h.Desc),
		))
	}
	return strings.Join(lines, "\n")
}

// SetSize updates the help view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = max(width-4, 0)
}
