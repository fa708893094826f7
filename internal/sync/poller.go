package sync

import (
	"context"
	gosync "sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nhle/ghnotify/internal/model"
	"github.com/nhle/ghnotify/internal/notify"
)

// FetchResultMsg is a tea.Msg sent when a fetch completes.
type FetchResultMsg struct {
	FetchID string
	Result  *notify.FetchResult
	Err     error
}

// MarkReadResultMsg is a tea.Msg sent when a mark-as-read call completes.
type MarkReadResultMsg struct {
	ThreadID string
	Err      error
}

// TickMsg is a tea.Msg sent when the auto-refresh interval elapses.
type TickMsg struct {
	At time.Time
}

// Session is the subset of notify.Session the poller drives.
type Session interface {
	Fetch(ctx context.Context) (*notify.FetchResult, error)
	MarkRead(ctx context.Context, threadID string) error
}

// Poller turns session calls into Bubble Tea commands and owns the
// current notification list. Only the most recently started fetch may
// replace the list: starting a fetch cancels the previous one, and
// results carrying an older fetch ID are discarded by Accept.
type Poller struct {
	session  Session
	interval time.Duration
	logger   zerolog.Logger
	newID    func() string

	base       context.Context
	baseCancel context.CancelFunc

	mu          gosync.Mutex
	currentID   string
	cancelFetch context.CancelFunc
	list        model.List
}

// New creates a Poller. An interval of zero disables auto-refresh.
func New(s Session, interval time.Duration, logger zerolog.Logger) *Poller {
	base, cancel := context.WithCancel(context.Background())
	return &Poller{
		session:    s,
		interval:   interval,
		logger:     logger.With().Str("component", "poller").Logger(),
		newID:      func() string { return uuid.NewString() },
		base:       base,
		baseCancel: cancel,
	}
}

// Fetch starts a fetch and returns the command that performs it. Any
// fetch still in flight is canceled and its result will be ignored.
func (p *Poller) Fetch() tea.Cmd {
	p.mu.Lock()
	if p.cancelFetch != nil {
		p.logger.Info().Str("fetch_id", p.currentID).Msg("superseding in-flight fetch")
		p.cancelFetch()
	}
	id := p.newID()
	ctx, cancel := context.WithCancel(p.base)
	p.currentID = id
	p.cancelFetch = cancel
	p.mu.Unlock()

	s := p.session
	logger := p.logger.With().Str("fetch_id", id).Logger()

	return func() tea.Msg {
		logger.Info().Msg("fetch started")
		result, err := s.Fetch(ctx)
		return FetchResultMsg{FetchID: id, Result: result, Err: err}
	}
}

// Accept reports whether msg belongs to the current fetch. When it
// does, the in-flight slot is released and a successful non-empty
// result becomes the current list. Failed and empty fetches leave the
// list untouched.
func (p *Poller) Accept(msg FetchResultMsg) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if msg.FetchID != p.currentID {
		p.logger.Debug().
			Str("fetch_id", msg.FetchID).
			Str("current_id", p.currentID).
			Msg("discarding stale fetch result")
		return false
	}

	if p.cancelFetch != nil {
		p.cancelFetch()
	}
	p.currentID = ""
	p.cancelFetch = nil

	if msg.Err == nil && msg.Result != nil && !msg.Result.Empty {
		p.list = msg.Result.List
	}
	return true
}

// InFlight reports whether a fetch has started and not been accepted.
func (p *Poller) InFlight() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.currentID != ""
}

// List returns the current notification list.
func (p *Poller) List() model.List {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.list
}

// MarkRead returns a command acknowledging the given thread.
func (p *Poller) MarkRead(threadID string) tea.Cmd {
	s := p.session
	ctx := p.base
	logger := p.logger
	return func() tea.Msg {
		err := s.MarkRead(ctx, threadID)
		if err != nil {
			logger.Error().Err(err).Str("thread_id", threadID).Msg("mark read failed")
		}
		return MarkReadResultMsg{ThreadID: threadID, Err: err}
	}
}

// Tick returns a command that fires a TickMsg after the configured
// interval, or nil when auto-refresh is disabled.
func (p *Poller) Tick() tea.Cmd {
	if p.interval <= 0 {
		return nil
	}
	return tea.Tick(p.interval, func(t time.Time) tea.Msg {
		return TickMsg{At: t}
	})
}

// Stop cancels every outstanding call.
func (p *Poller) Stop() {
	p.baseCancel()

	p.mu.Lock()
	defer p.mu.Unlock()
	p.currentID = ""
	p.cancelFetch = nil
}
