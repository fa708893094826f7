package notify

import (
	"regexp"

	"github.com/nhle/ghnotify/internal/model"
	ghsource "github.com/nhle/ghnotify/internal/source/github"
)

// DropCode is a stable identifier for why a raw record was discarded.
type DropCode string

const (
	DropNilRecord    DropCode = "nil_record"
	DropMissingRepo  DropCode = "missing_repo"
	DropMissingTitle DropCode = "missing_title"
	DropMissingType  DropCode = "missing_type"
	DropMissingURL   DropCode = "missing_url"
)

// Drop describes a raw record that did not make it into the list.
type Drop struct {
	Code DropCode

	// ThreadID and URL identify the record when it carried them.
	ThreadID string
	URL      string
}

var threadIDPattern = regexp.MustCompile(`threads/(\d+)`)

// ThreadID extracts the numeric segment following "threads/" in a
// notification URL. It returns "" when there is none.
func ThreadID(notificationURL string) string {
	m := threadIDPattern.FindStringSubmatch(notificationURL)
	if m == nil {
		return ""
	}
	return m[1]
}

// Normalize maps one raw record to an Entry. When a required field is
// missing it returns a non-nil Drop and the Entry must be ignored.
func Normalize(raw *ghsource.Notification) (model.Entry, *Drop) {
	if raw == nil {
		return model.Entry{}, &Drop{Code: DropNilRecord}
	}

	id := ThreadID(raw.GetURL())
	drop := func(code DropCode) (model.Entry, *Drop) {
		return model.Entry{}, &Drop{Code: code, ThreadID: id, URL: raw.GetURL()}
	}

	subject := raw.GetSubject()
	switch {
	case raw.GetRepository().GetFullName() == "":
		return drop(DropMissingRepo)
	case subject.GetTitle() == "":
		return drop(DropMissingTitle)
	case subject.GetType() == "":
		return drop(DropMissingType)
	case subject.GetURL() == "":
		return drop(DropMissingURL)
	}

	reason := raw.GetReason()
	if reason == "" {
		reason = model.DefaultReason
	}

	return model.Entry{
		ThreadID:  id,
		Repo:      raw.GetRepository().GetFullName(),
		Title:     subject.GetTitle(),
		Type:      subject.GetType(),
		APIURL:    subject.GetURL(),
		Reason:    reason,
		UpdatedAt: raw.GetUpdatedAt().Time,
	}, nil
}

// NormalizeAll normalizes every record, keeping API order, and returns
// the valid entries alongside the drops.
func NormalizeAll(raws []*ghsource.Notification) ([]model.Entry, []Drop) {
	entries := make([]model.Entry, 0, len(raws))
	var drops []Drop

	for _, raw := range raws {
		entry, drop := Normalize(raw)
		if drop != nil {
			drops = append(drops, *drop)
			continue
		}
		entries = append(entries, entry)
	}

	return entries, drops
}
