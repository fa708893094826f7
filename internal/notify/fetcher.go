// Package notify implements the notification pipeline: the rate check,
// the unread list fetch, normalization into model entries and the
// mark-as-read acknowledgment.
package notify

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/nhle/ghnotify/internal/model"
	ghsource "github.com/nhle/ghnotify/internal/source/github"
)

// Options configures a Session.
type Options struct {
	// Token is the API credential. Empty disables every remote call.
	Token string

	// APIBaseURL is the REST API root.
	APIBaseURL string

	// UserAgent is sent on every request.
	UserAgent string

	// Logger receives diagnostics. Defaults to a no-op logger.
	Logger *zerolog.Logger

	// Now is the clock used to stamp lists. Defaults to time.Now.
	Now func() time.Time
}

// FetchResult is the outcome of a successful Fetch.
type FetchResult struct {
	// Empty is set when the API returned no unread notifications.
	// List is the zero value in that case.
	Empty bool

	// Rate is the quota reported by the rate check.
	Rate model.RateStatus

	// List holds the rate summary row followed by the valid entries.
	List model.List

	// Drops lists the raw records that were discarded.
	Drops []Drop
}

// Session carries the credential and collaborators shared by every
// remote operation. The credential is fixed at construction.
type Session struct {
	requester ghsource.Requester
	endpoints ghsource.Endpoints
	token     string
	userAgent string
	logger    zerolog.Logger
	now       func() time.Time
}

// NewSession creates a Session issuing requests through r.
func NewSession(r ghsource.Requester, opts Options) *Session {
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &Session{
		requester: r,
		endpoints: ghsource.NewEndpoints(opts.APIBaseURL),
		token:     opts.Token,
		userAgent: opts.UserAgent,
		logger:    logger.With().Str("component", "notify").Logger(),
		now:       now,
	}
}

// HasCredential reports whether remote operations are enabled.
func (s *Session) HasCredential() bool {
	return s.token != ""
}

// Fetch checks the rate limit and then lists unread notifications.
// The two calls are strictly sequential and a failed rate check aborts
// the fetch before the list call is made.
func (s *Session) Fetch(ctx context.Context) (*FetchResult, error) {
	if !s.HasCredential() {
		return nil, ErrMissingCredential
	}

	headers := ghsource.Headers(s.token, s.userAgent)

	rateRes, err := s.requester.Do(ctx, http.MethodGet, s.endpoints.RateLimit(), headers)
	if err != nil {
		return nil, err
	}
	if rateRes.Status != http.StatusOK {
		return nil, &RateCheckError{Status: rateRes.Status}
	}

	rate := model.RateStatus{}
	if remaining, ok := ghsource.DecodeRemaining(rateRes.Body); ok {
		rate = model.RateStatus{Remaining: remaining, Known: true}
	}

	listRes, err := s.requester.Do(ctx, http.MethodGet, s.endpoints.Notifications(), headers)
	if err != nil {
		return nil, err
	}
	if listRes.Status != http.StatusOK {
		return nil, &ListFetchError{Status: listRes.Status, Body: string(listRes.Body)}
	}

	raws, err := ghsource.DecodeNotifications(listRes.Body)
	if err != nil {
		return nil, &ListFetchError{Status: listRes.Status, Body: string(listRes.Body), Err: err}
	}

	if len(raws) == 0 {
		return &FetchResult{Empty: true, Rate: rate}, nil
	}

	entries, drops := NormalizeAll(raws)
	for _, d := range drops {
		s.logger.Debug().
			Str("code", string(d.Code)).
			Str("thread_id", d.ThreadID).
			Str("url", d.URL).
			Msg("dropped malformed notification")
	}

	return &FetchResult{
		Rate:  rate,
		List:  model.NewList(rate, entries, s.now()),
		Drops: drops,
	}, nil
}

// MarkRead acknowledges a notification thread. A nil error means the
// API answered 205 Reset Content.
func (s *Session) MarkRead(ctx context.Context, threadID string) error {
	if !s.HasCredential() {
		return ErrMissingCredential
	}
	if threadID == "" {
		return errors.New("mark read: empty thread id")
	}

	headers := ghsource.Headers(s.token, s.userAgent)
	res, err := s.requester.Do(ctx, http.MethodPatch, s.endpoints.Thread(threadID), headers)
	if err != nil {
		return err
	}
	if res.Status != http.StatusResetContent {
		return &MarkReadError{ThreadID: threadID, Status: res.Status}
	}

	s.logger.Info().Str("thread_id", threadID).Msg("thread marked as read")
	return nil
}
