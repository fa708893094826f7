package picker

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/ghnotify/internal/keys"
	"github.com/nhle/ghnotify/internal/model"
	"github.com/nhle/ghnotify/internal/theme"
	"github.com/nhle/ghnotify/internal/ui/preview"
)

// OpenMsg is sent when the user confirms an entry.
type OpenMsg struct {
	Entry model.Entry
}

// RefreshMsg asks the host to close the picker and fetch again.
type RefreshMsg struct{}

// MarkReadMsg asks the host to mark a thread as read.
type MarkReadMsg struct {
	ThreadID string
}

// CloseMsg is sent when the user dismisses the picker.
type CloseMsg struct{}

// NoticeMsg carries a notice the picker wants shown without closing.
type NoticeMsg struct {
	Notice model.Notice
}

// minPreviewWidth is the narrowest terminal that still shows the preview.
const minPreviewWidth = 80

// Model is the interactive notification picker.
type Model struct {
	list        list.Model
	preview     preview.Model
	keys        *keys.KeyMap
	urlFor      func(apiURL string) string
	showPreview bool
	width       int
	height      int
}

// New creates a picker. urlFor maps an entry's API URL to the address
// shown in the preview pane.
func New(k *keys.KeyMap, urlFor func(string) string, width, height int) Model {
	l := list.New([]list.Item{}, ItemDelegate{}, width, height)
	l.Title = "GitHub Notifications"
	l.SetShowStatusBar(true)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(true)
	l.DisableQuitKeybindings()
	l.SetStatusBarItemName("notification", "notifications")
	l.Filter = list.DefaultFilter
	l.FilterInput.Prompt = "Notifications> "
	l.Styles.Title = theme.HeaderStyle

	if urlFor == nil {
		urlFor = func(s string) string { return s }
	}

	m := Model{
		list:        l,
		preview:     preview.New(width, height),
		keys:        k,
		urlFor:      urlFor,
		showPreview: true,
	}
	m.SetSize(width, height)
	return m
}

// SetList replaces the displayed entries with a fresh snapshot. The
// selection follows the previously selected thread when it is still
// present, and is clamped to the last row when the list shrank.
func (m *Model) SetList(nl model.List) tea.Cmd {
	prev, hadPrev := m.SelectedEntry()

	entries := nl.Entries()
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = Item{Entry: e}
	}
	cmd := m.list.SetItems(items)

	if hadPrev && prev.ThreadID != "" && m.list.FilterState() == list.Unfiltered {
		for i, e := range entries {
			if e.ThreadID == prev.ThreadID {
				m.list.Select(i)
				break
			}
		}
	}

	if visible := len(m.list.VisibleItems()); m.list.Index() >= visible {
		m.list.Select(max(visible-1, 0))
	}

	m.syncPreview()
	return cmd
}

// SelectedEntry returns the entry under the cursor.
func (m Model) SelectedEntry() (model.Entry, bool) {
	it, ok := m.list.SelectedItem().(Item)
	if !ok {
		return model.Entry{}, false
	}
	return it.Entry, true
}

// Filtering reports whether the filter prompt has focus.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// Update handles messages for the picker.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.Filtering() {
		return m.updateList(msg)
	}

	switch {
	case key.Matches(keyMsg, m.keys.Open):
		e, ok := m.SelectedEntry()
		if !ok || !e.Actionable() {
			return m, nil
		}
		return m, func() tea.Msg { return OpenMsg{Entry: e} }

	case key.Matches(keyMsg, m.keys.Refresh):
		return m, func() tea.Msg { return RefreshMsg{} }

	case key.Matches(keyMsg, m.keys.MarkRead):
		e, ok := m.SelectedEntry()
		if !ok {
			return m, nil
		}
		if !e.CanMarkRead() {
			return m, func() tea.Msg {
				return NoticeMsg{Notice: model.Warn("Selected entry has no thread id; cannot mark as read")}
			}
		}
		id := e.ThreadID
		return m, func() tea.Msg { return MarkReadMsg{ThreadID: id} }

	case key.Matches(keyMsg, m.keys.Close):
		if keyMsg.String() == "esc" && m.list.FilterState() == list.FilterApplied {
			m.list.ResetFilter()
			m.syncPreview()
			return m, nil
		}
		return m, func() tea.Msg { return CloseMsg{} }

	case key.Matches(keyMsg, m.keys.Preview):
		m.showPreview = !m.showPreview
		m.SetSize(m.width, m.height)
		return m, nil

	case key.Matches(keyMsg, m.keys.Down):
		m.list.CursorDown()
		m.syncPreview()
		return m, nil

	case key.Matches(keyMsg, m.keys.Up):
		m.list.CursorUp()
		m.syncPreview()
		return m, nil
	}

	return m.updateList(msg)
}

func (m Model) updateList(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	m.syncPreview()
	return m, cmd
}

// syncPreview points the preview pane at the current selection.
func (m *Model) syncPreview() {
	e, ok := m.SelectedEntry()
	if !ok {
		m.preview.SetEntry(nil, "")
		return
	}
	m.preview.SetEntry(&e, m.urlFor(e.APIURL))
}

// View renders the picker.
func (m Model) View() string {
	if !m.previewVisible() {
		return m.list.View()
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, m.list.View(), m.preview.View())
}

// SetSize updates the picker dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height

	if !m.previewVisible() {
		m.list.SetSize(width, height)
		return
	}

	listWidth := width * 3 / 5
	m.list.SetSize(listWidth, height)
	m.preview.SetSize(width-listWidth, height)
}

func (m Model) previewVisible() bool {
	return m.showPreview && m.width >= minPreviewWidth
}
