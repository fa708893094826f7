// Package opener hands URLs to the operating system's browser.
package opener

import (
	"fmt"
	"io"

	"github.com/cli/browser"
)

// Opener opens a URL outside the application.
type Opener interface {
	Open(url string) error
}

// Browser opens URLs with the platform launcher (open, xdg-open,
// rundll32). The launched process is not waited on.
type Browser struct{}

// NewBrowser returns a Browser whose launcher output is discarded so it
// cannot corrupt the terminal UI.
func NewBrowser() Browser {
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
	return Browser{}
}

// Open launches the default browser on url.
func (Browser) Open(url string) error {
	if err := browser.OpenURL(url); err != nil {
		return fmt.Errorf("opening %s: %w", url, err)
	}
	return nil
}

// Func adapts a function to the Opener interface.
type Func func(url string) error

// Open calls f(url).
func (f Func) Open(url string) error { return f(url) }
