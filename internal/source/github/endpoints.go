package github

import (
	"fmt"
	"net/url"
	"strings"
)

// AcceptJSON is the media type requested on every call.
const AcceptJSON = "application/vnd.github+json"

// Endpoints builds the URLs of the three calls the session makes.
type Endpoints struct {
	base string
}

// NewEndpoints returns Endpoints rooted at apiBaseURL, e.g.
// https://api.github.com or https://ghe.example.com/api/v3.
func NewEndpoints(apiBaseURL string) Endpoints {
	return Endpoints{base: strings.TrimRight(apiBaseURL, "/")}
}

// RateLimit returns the rate limit endpoint.
func (e Endpoints) RateLimit() string {
	return e.base + "/rate_limit"
}

// Notifications returns the unread-only notification list endpoint.
func (e Endpoints) Notifications() string {
	return e.base + "/notifications?all=false"
}

// Thread returns the endpoint of a single notification thread.
func (e Endpoints) Thread(id string) string {
	return fmt.Sprintf("%s/notifications/threads/%s", e.base, url.PathEscape(id))
}

// Headers returns the request headers for the given credential.
func Headers(token, userAgent string) map[string]string {
	return map[string]string{
		"Authorization": "token " + token,
		"Accept":        AcceptJSON,
		"User-Agent":    userAgent,
	}
}
