package notify

import (
	"errors"
	"fmt"
)

// ErrMissingCredential is returned when no token is configured. No
// request is made in that case.
var ErrMissingCredential = errors.New("missing credential")

// RateCheckError reports a non-200 answer from the rate limit endpoint.
type RateCheckError struct {
	Status int
}

func (e *RateCheckError) Error() string {
	return fmt.Sprintf("rate limit check failed with status %d", e.Status)
}

// ListFetchError reports a failed notification list call. Err is set
// when the status was 200 but the body could not be decoded.
type ListFetchError struct {
	Status int
	Body   string
	Err    error
}

func (e *ListFetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("notification list fetch failed (status %d): %v", e.Status, e.Err)
	}
	return fmt.Sprintf("notification list fetch failed with status %d: %s", e.Status, e.Body)
}

func (e *ListFetchError) Unwrap() error { return e.Err }

// MarkReadError reports a non-205 answer to a mark-as-read call.
type MarkReadError struct {
	ThreadID string
	Status   int
}

func (e *MarkReadError) Error() string {
	return fmt.Sprintf("marking thread %s as read failed with status %d", e.ThreadID, e.Status)
}
