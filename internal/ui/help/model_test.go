package help_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nhle/ghnotify/internal/keys"
	"github.com/nhle/ghnotify/internal/ui/help"
)

func TestHelp_ListsSectionsAndCommands(t *testing.T) {
	m := help.New(keys.DefaultKeyMap(), 100, 40)

	out := m.Content()

	for _, want := range []string{
		"Moving around", "Notification actions", "Anywhere",
		"mark as read", "open in browser", "fetch notifications",
		"fetch, refresh, help, quit",
	} {
		assert.Contains(t, out, want)
	}
}
