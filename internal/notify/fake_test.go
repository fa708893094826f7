package notify_test

import (
	"context"
	"errors"
	"strings"
	"sync"

	ghsource "github.com/nhle/ghnotify/internal/source/github"
)

// call records one request seen by fakeRequester.
type call struct {
	Method  string
	URL     string
	Headers map[string]string
}

// fakeRequester answers requests from a table keyed by "METHOD path".
type fakeRequester struct {
	mu        sync.Mutex
	calls     []call
	responses map[string]*ghsource.Response
	errs      map[string]error
}

func newFakeRequester() *fakeRequester {
	return &fakeRequester{
		responses: make(map[string]*ghsource.Response),
		errs:      make(map[string]error),
	}
}

func (f *fakeRequester) on(method, path string, status int, body string) *fakeRequester {
	f.responses[method+" "+path] = &ghsource.Response{Status: status, Body: []byte(body)}
	return f
}

func (f *fakeRequester) fail(method, path string, err error) *fakeRequester {
	f.errs[method+" "+path] = err
	return f
}

func (f *fakeRequester) Do(
	_ context.Context,
	method, url string,
	headers map[string]string,
) (*ghsource.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, call{Method: method, URL: url, Headers: headers})

	path := strings.TrimPrefix(url, testBase)
	key := method + " " + path
	if err, ok := f.errs[key]; ok {
		return nil, &ghsource.TransportError{Method: method, URL: url, Err: err}
	}
	if res, ok := f.responses[key]; ok {
		return res, nil
	}
	return nil, &ghsource.TransportError{Method: method, URL: url, Err: errors.New("no route")}
}

func (f *fakeRequester) Calls() []call {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]call, len(f.calls))
	copy(out, f.calls)
	return out
}

const testBase = "https://api.test"

const (
	pathRate   = "/rate_limit"
	pathList   = "/notifications?all=false"
	pathThread = "/notifications/threads/"
)

