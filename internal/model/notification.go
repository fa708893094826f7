package model

import (
	"fmt"
	"strconv"
	"time"
)

// DefaultReason is used when a notification carries no reason.
const DefaultReason = "Unknown"

// RateStatus is the remaining API quota reported by the rate limit
// endpoint. It is advisory and only used for display.
type RateStatus struct {
	// Remaining is the number of calls left in the current window.
	Remaining int

	// Known is false when the endpoint did not report a value.
	Known bool
}

// String renders the remaining quota, or "N/A" when unknown.
func (r RateStatus) String() string {
	if !r.Known {
		return "N/A"
	}
	return strconv.Itoa(r.Remaining)
}

// Entry is the normalized representation of one notification thread,
// or of the synthetic rate summary row when Summary is set.
type Entry struct {
	// ThreadID is the numeric thread identifier parsed from the
	// notification URL. Empty when the URL carried none.
	ThreadID string

	// Repo is the full name of the repository (owner/name).
	Repo string

	// Title is the subject title.
	Title string

	// Type is the subject type (Issue, PullRequest, Release, ...).
	Type string

	// APIURL is the API URL of the subject resource.
	APIURL string

	// Reason explains why the notification fired.
	Reason string

	// UpdatedAt is when the thread last changed, if reported.
	UpdatedAt time.Time

	// Summary marks the synthetic rate summary row.
	Summary bool

	// Rate is only set on the summary row.
	Rate RateStatus
}

// Ordinal is the key the picker's fuzzy matcher searches.
func (e Entry) Ordinal() string {
	if e.Summary {
		return e.Display()
	}
	return e.Title + " " + e.Repo
}

// Display is the one-line label shown in the picker.
func (e Entry) Display() string {
	if e.Summary {
		return fmt.Sprintf("Remaining API calls: %s", e.Rate)
	}
	return fmt.Sprintf("%s | %s | %s | %s", e.Repo, e.Title, e.Type, e.Reason)
}

// Actionable reports whether the entry can be opened.
func (e Entry) Actionable() bool {
	return !e.Summary
}

// CanMarkRead reports whether the entry can be acknowledged.
func (e Entry) CanMarkRead() bool {
	return !e.Summary && e.ThreadID != ""
}

// SummaryEntry builds the rate summary pseudo-entry.
func SummaryEntry(rate RateStatus) Entry {
	return Entry{Summary: true, Rate: rate}
}

// List is an ordered notification list headed by the rate summary row.
// Lists are immutable once built; a refresh builds a new one.
type List struct {
	entries   []Entry
	fetchedAt time.Time
}

// NewList builds a list with the rate summary prepended to entries.
func NewList(rate RateStatus, entries []Entry, fetchedAt time.Time) List {
	all := make([]Entry, 0, len(entries)+1)
	all = append(all, SummaryEntry(rate))
	all = append(all, entries...)
	return List{entries: all, fetchedAt: fetchedAt}
}

// Entries returns a copy of the list's entries, summary row first.
func (l List) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of rows including the summary row.
func (l List) Len() int { return len(l.entries) }

// IsZero reports whether the list was never populated.
func (l List) IsZero() bool { return len(l.entries) == 0 }

// Rate returns the quota recorded in the summary row.
func (l List) Rate() RateStatus {
	if len(l.entries) == 0 {
		return RateStatus{}
	}
	return l.entries[0].Rate
}

// FetchedAt returns when the list was built.
func (l List) FetchedAt() time.Time { return l.fetchedAt }
