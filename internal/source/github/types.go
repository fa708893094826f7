package github

import (
	"encoding/json"
	"fmt"

	gh "github.com/google/go-github/v82/github"
)

// Notification is the raw notification record as returned by the API.
// Every field is a pointer so absent fields can be told apart from
// empty ones.
type Notification = gh.Notification

// rateLimitBody is the subset of the /rate_limit response we read.
type rateLimitBody struct {
	Rate *struct {
		Remaining *int `json:"remaining"`
	} `json:"rate"`
}

// DecodeRemaining extracts rate.remaining. ok is false when the body is
// not JSON or the field is missing.
func DecodeRemaining(body []byte) (remaining int, ok bool) {
	var b rateLimitBody
	if err := json.Unmarshal(body, &b); err != nil {
		return 0, false
	}
	if b.Rate == nil || b.Rate.Remaining == nil {
		return 0, false
	}
	return *b.Rate.Remaining, true
}

// DecodeNotifications parses a notification list body.
func DecodeNotifications(body []byte) ([]*Notification, error) {
	var list []*Notification
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("decoding notification list: %w", err)
	}
	return list, nil
}
