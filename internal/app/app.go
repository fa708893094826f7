package app

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/nhle/ghnotify/internal/keys"
	"github.com/nhle/ghnotify/internal/model"
	"github.com/nhle/ghnotify/internal/notify"
	"github.com/nhle/ghnotify/internal/opener"
	appsync "github.com/nhle/ghnotify/internal/sync"
	"github.com/nhle/ghnotify/internal/theme"
	"github.com/nhle/ghnotify/internal/ui"
	"github.com/nhle/ghnotify/internal/ui/command"
	helpview "github.com/nhle/ghnotify/internal/ui/help"
	"github.com/nhle/ghnotify/internal/ui/picker"
)

// openResultMsg reports the outcome of handing a URL to the opener.
type openResultMsg struct {
	url string
	err error
}

// ViewState represents the current active view in the application.
type ViewState int

const (
	ViewClosed ViewState = iota
	ViewPicker
	ViewHelp
	ViewCommand
)

// Options configures the root model.
type Options struct {
	Poller       *appsync.Poller
	Opener       opener.Opener
	GitHub       model.GitHubConfig
	FetchOnStart bool
	Logger       zerolog.Logger
}

// Model is the root Bubble Tea model. It routes keys to the picker and
// overlays, and turns fetch and mark-read results into notices.
type Model struct {
	currentView  ViewState
	previousView ViewState
	layout       ui.Layout
	keys         *keys.KeyMap
	picker       picker.Model
	helpView     helpview.Model
	commandView  command.Model
	poller       *appsync.Poller
	opener       opener.Opener
	github       model.GitHubConfig
	fetchOnStart bool
	logger       zerolog.Logger
	notice       model.Notice
	ready        bool
}

// New creates the root application model.
func New(opts Options) Model {
	k := keys.DefaultKeyMap()
	gh := opts.GitHub

	urlFor := func(apiURL string) string {
		return notify.WebURL(apiURL, gh.APIBaseURL, gh.WebBaseURL)
	}

	return Model{
		currentView:  ViewClosed,
		keys:         k,
		picker:       picker.New(k, urlFor, 80, 22),
		helpView:     helpview.New(k, 80, 22),
		commandView:  command.New(80, 22),
		poller:       opts.Poller,
		opener:       opts.Opener,
		github:       gh,
		fetchOnStart: opts.FetchOnStart,
		logger:       opts.Logger.With().Str("component", "app").Logger(),
		layout:       ui.NewLayout(80, 24),
	}
}

// Init starts the first fetch when configured and arms auto-refresh.
func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.fetchOnStart {
		cmds = append(cmds, m.poller.Fetch())
	}
	cmds = append(cmds, m.poller.Tick())
	return tea.Batch(cmds...)
}

// Update handles messages and dispatches to the active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height)
		m.ready = true
		h := m.layout.ContentHeight()
		m.picker.SetSize(msg.Width, h)
		m.helpView.SetSize(msg.Width, h)
		m.commandView.SetSize(msg.Width, h)
		return m, nil

	case appsync.FetchResultMsg:
		return m.handleFetchResult(msg)

	case appsync.MarkReadResultMsg:
		if msg.Err != nil {
			m.notice = markReadErrorNotice(msg.Err, m.github.TokenEnv)
			return m, nil
		}
		m.notice = model.Info(fmt.Sprintf("Marked thread %s as read", msg.ThreadID))
		return m, m.poller.Fetch()

	case appsync.TickMsg:
		if m.poller.InFlight() {
			return m, m.poller.Tick()
		}
		m.logger.Debug().Time("at", msg.At).Msg("auto-refresh")
		return m, tea.Batch(m.poller.Fetch(), m.poller.Tick())

	case openResultMsg:
		if msg.err != nil {
			m.logger.Error().Err(msg.err).Str("url", msg.url).Msg("open failed")
			m.notice = model.Error(fmt.Sprintf("Could not open %s", msg.url))
		}
		return m, nil

	case picker.OpenMsg:
		m.currentView = ViewClosed
		return m, m.open(msg.Entry)

	case picker.RefreshMsg:
		m.currentView = ViewClosed
		return m, m.poller.Fetch()

	case picker.MarkReadMsg:
		return m, m.poller.MarkRead(msg.ThreadID)

	case picker.CloseMsg:
		m.currentView = ViewClosed
		return m, nil

	case picker.NoticeMsg:
		m.notice = msg.Notice
		return m, nil

	case command.CommandMsg:
		m.currentView = m.previousView
		return m, m.executeCommand(string(msg))

	case command.CancelMsg:
		m.currentView = m.previousView
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.poller.Stop()
			return m, tea.Quit
		}

		// The filter prompt and the palette own every other key.
		if (m.currentView == ViewPicker && m.picker.Filtering()) || m.currentView == ViewCommand {
			return m.updateActiveView(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Help):
			if m.currentView == ViewHelp {
				m.currentView = m.previousView
				return m, nil
			}
			m.previousView = m.currentView
			m.currentView = ViewHelp
			return m, nil

		case key.Matches(msg, m.keys.Command):
			if m.currentView != ViewHelp {
				m.previousView = m.currentView
			}
			m.currentView = ViewCommand
			return m, m.commandView.Focus()
		}

		switch m.currentView {
		case ViewHelp:
			if key.Matches(msg, m.keys.Close) {
				m.currentView = m.previousView
			}
			return m, nil

		case ViewClosed:
			switch {
			case key.Matches(msg, m.keys.Fetch):
				return m, m.poller.Fetch()
			case msg.String() == "q":
				m.poller.Stop()
				return m, tea.Quit
			case msg.String() == "esc":
				m.notice = model.Notice{}
				return m, nil
			}
			return m, nil
		}
	}

	return m.updateActiveView(msg)
}

// handleFetchResult applies a fetch result if it belongs to the current
// fetch. Errors and empty results never replace the displayed list.
func (m Model) handleFetchResult(msg appsync.FetchResultMsg) (tea.Model, tea.Cmd) {
	if !m.poller.Accept(msg) {
		return m, nil
	}

	if msg.Err != nil {
		m.logger.Error().Err(msg.Err).Str("fetch_id", msg.FetchID).Msg("fetch failed")
		m.notice = fetchErrorNotice(msg.Err, m.github.TokenEnv)
		return m, nil
	}

	if msg.Result == nil || msg.Result.Empty {
		m.notice = model.Info("No new notifications")
		m.closePicker()
		return m, nil
	}

	m.notice = model.Notice{}
	cmd := m.picker.SetList(m.poller.List())
	switch m.currentView {
	case ViewHelp, ViewCommand:
		m.previousView = ViewPicker
	default:
		m.currentView = ViewPicker
	}
	return m, cmd
}

// closePicker returns to the closed screen, keeping any overlay open.
func (m *Model) closePicker() {
	switch m.currentView {
	case ViewPicker:
		m.currentView = ViewClosed
	case ViewHelp, ViewCommand:
		if m.previousView == ViewPicker {
			m.previousView = ViewClosed
		}
	}
}

// open rewrites the entry's API URL to its web address and hands it to
// the opener.
func (m Model) open(e model.Entry) tea.Cmd {
	url := notify.WebURL(e.APIURL, m.github.APIBaseURL, m.github.WebBaseURL)
	o := m.opener
	logger := m.logger
	return func() tea.Msg {
		logger.Info().Str("url", url).Str("thread_id", e.ThreadID).Msg("opening")
		return openResultMsg{url: url, err: o.Open(url)}
	}
}

// executeCommand handles a command string from the command palette.
func (m *Model) executeCommand(cmd string) tea.Cmd {
	switch cmd {
	case command.Fetch:
		return m.poller.Fetch()
	case command.Refresh:
		if m.currentView == ViewPicker {
			m.currentView = ViewClosed
		}
		return m.poller.Fetch()
	case command.Help:
		m.previousView = m.currentView
		m.currentView = ViewHelp
		return nil
	case command.Quit, "q":
		m.poller.Stop()
		return tea.Quit
	default:
		m.notice = model.Warn(fmt.Sprintf("Unknown command %q", cmd))
		return nil
	}
}

// updateActiveView dispatches the message to the currently active view.
func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.currentView {
	case ViewPicker:
		m.picker, cmd = m.picker.Update(msg)
	case ViewHelp:
		m.helpView, cmd = m.helpView.Update(msg)
	case ViewCommand:
		m.commandView, cmd = m.commandView.Update(msg)
	}

	return m, cmd
}

// View renders the full terminal UI using the layout manager.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := m.layout.RenderHeader("ghnotify", m.fetchStatus())
	content := m.renderContent()
	statusBar := m.layout.RenderStatusBar(m.notice, m.keyHints())

	return m.layout.RenderWithFrame(header, content, statusBar)
}

// renderContent returns the rendered string for the current active view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewPicker:
		return m.picker.View()
	case ViewHelp:
		return m.helpView.View()
	case ViewCommand:
		return m.commandView.View()
	default:
		return m.closedView()
	}
}

// closedView is shown while no picker is open.
func (m Model) closedView() string {
	lines := []string{theme.HelpStyle.Render("Press n to fetch notifications")}
	if m.poller.InFlight() {
		lines = []string{theme.HelpStyle.Render("Fetching notifications...")}
	}

	return lipgloss.Place(
		m.layout.Width,
		m.layout.ContentHeight(),
		lipgloss.Center,
		lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, lines...),
	)
}

// fetchStatus returns a short string describing the fetch state.
func (m Model) fetchStatus() string {
	if m.poller.InFlight() {
		return "fetching..."
	}

	l := m.poller.List()
	if l.IsZero() {
		return "not fetched"
	}
	return fmt.Sprintf("%d unread | rate %s | %s",
		l.Len()-1, l.Rate(), l.FetchedAt().Local().Format("15:04"))
}

// keyHints returns keyboard shortcut hints for the status bar.
func (m Model) keyHints() string {
	switch m.currentView {
	case ViewHelp:
		return "? close help | esc back"
	case ViewCommand:
		return "enter execute | tab complete | esc back"
	case ViewPicker:
		if m.picker.Filtering() {
			return "enter apply filter | esc cancel"
		}
		return "enter open | r refresh | m mark read | / filter | tab preview | esc close"
	default:
		return "n fetch | : command | ? help | q quit"
	}
}
