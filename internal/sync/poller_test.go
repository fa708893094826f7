package sync

import (
	"context"
	"errors"
	"fmt"
	gosync "sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/ghnotify/internal/model"
	"github.com/nhle/ghnotify/internal/notify"
)

// stubSession returns canned results and records the contexts it saw.
type stubSession struct {
	mu       gosync.Mutex
	results  []*notify.FetchResult
	errs     []error
	ctxs     []context.Context
	marked   []string
	markErr  error
	fetchNum int
}

func (s *stubSession) Fetch(ctx context.Context) (*notify.FetchResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.fetchNum
	s.fetchNum++
	s.ctxs = append(s.ctxs, ctx)

	var res *notify.FetchResult
	var err error
	if i < len(s.results) {
		res = s.results[i]
	}
	if i < len(s.errs) {
		err = s.errs[i]
	}
	return res, err
}

func (s *stubSession) MarkRead(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.marked = append(s.marked, id)
	return s.markErr
}

func listOf(titles ...string) model.List {
	entries := make([]model.Entry, len(titles))
	for i, title := range titles {
		entries[i] = model.Entry{Repo: "a/b", Title: title, Type: "Issue", APIURL: "u", Reason: "r"}
	}
	return model.NewList(model.RateStatus{Remaining: 1, Known: true}, entries, time.Time{})
}

func newTestPoller(s Session, interval time.Duration) *Poller {
	p := New(s, interval, zerolog.Nop())
	n := 0
	p.newID = func() string {
		n++
		return fmt.Sprintf("fetch-%d", n)
	}
	return p
}

func TestPoller_AcceptCurrentResult(t *testing.T) {
	s := &stubSession{results: []*notify.FetchResult{{List: listOf("one")}}}
	p := newTestPoller(s, 0)

	cmd := p.Fetch()
	require.NotNil(t, cmd)
	assert.True(t, p.InFlight())

	msg, ok := cmd().(FetchResultMsg)
	require.True(t, ok)
	assert.Equal(t, "fetch-1", msg.FetchID)

	assert.True(t, p.Accept(msg))
	assert.False(t, p.InFlight())
	assert.Equal(t, 2, p.List().Len())
}

func TestPoller_LastFetchWins(t *testing.T) {
	s := &stubSession{results: []*notify.FetchResult{
		{List: listOf("old")},
		{List: listOf("new", "newer")},
	}}
	p := newTestPoller(s, 0)

	first := p.Fetch()
	second := p.Fetch()

	firstMsg := first().(FetchResultMsg)
	secondMsg := second().(FetchResultMsg)

	// The newer fetch completes first, then the older one arrives late.
	assert.True(t, p.Accept(secondMsg))
	assert.False(t, p.Accept(firstMsg))

	assert.Equal(t, 3, p.List().Len())
	assert.Equal(t, "new", p.List().Entries()[1].Title)
}

func TestPoller_NewFetchCancelsPrevious(t *testing.T) {
	s := &stubSession{}
	p := newTestPoller(s, 0)

	first := p.Fetch()
	_ = p.Fetch()
	first()

	require.Len(t, s.ctxs, 1)
	assert.ErrorIs(t, s.ctxs[0].Err(), context.Canceled)
}

func TestPoller_FailureKeepsList(t *testing.T) {
	s := &stubSession{
		results: []*notify.FetchResult{{List: listOf("kept")}, nil},
		errs:    []error{nil, errors.New("boom")},
	}
	p := newTestPoller(s, 0)

	require.True(t, p.Accept(p.Fetch()().(FetchResultMsg)))
	msg := p.Fetch()().(FetchResultMsg)
	require.Error(t, msg.Err)
	require.True(t, p.Accept(msg))

	assert.Equal(t, "kept", p.List().Entries()[1].Title)
}

func TestPoller_EmptyKeepsList(t *testing.T) {
	s := &stubSession{results: []*notify.FetchResult{
		{List: listOf("kept")},
		{Empty: true},
	}}
	p := newTestPoller(s, 0)

	require.True(t, p.Accept(p.Fetch()().(FetchResultMsg)))
	require.True(t, p.Accept(p.Fetch()().(FetchResultMsg)))

	assert.Equal(t, 2, p.List().Len())
}

func TestPoller_MarkRead(t *testing.T) {
	s := &stubSession{markErr: errors.New("nope")}
	p := newTestPoller(s, 0)

	msg, ok := p.MarkRead("42")().(MarkReadResultMsg)
	require.True(t, ok)
	assert.Equal(t, "42", msg.ThreadID)
	assert.EqualError(t, msg.Err, "nope")
	assert.Equal(t, []string{"42"}, s.marked)
}

func TestPoller_TickDisabled(t *testing.T) {
	p := newTestPoller(&stubSession{}, 0)
	assert.Nil(t, p.Tick())

	p = newTestPoller(&stubSession{}, time.Minute)
	assert.NotNil(t, p.Tick())
}

func TestPoller_StopCancelsInFlight(t *testing.T) {
	s := &stubSession{}
	p := newTestPoller(s, 0)

	cmd := p.Fetch()
	p.Stop()
	msg := cmd().(FetchResultMsg)

	assert.ErrorIs(t, s.ctxs[0].Err(), context.Canceled)
	assert.False(t, p.Accept(msg), "stopped poller accepts nothing")
}
