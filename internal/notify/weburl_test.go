package notify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nhle/ghnotify/internal/notify"
)

func TestWebURL(t *testing.T) {
	const api = "https://api.github.com"
	const web = "https://github.com"

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "issue",
			in:   "https://api.github.com/repos/acme/widgets/issues/42",
			want: "https://github.com/acme/widgets/issues/42",
		},
		{
			name: "pull request",
			in:   "https://api.github.com/repos/acme/widgets/pulls/7",
			want: "https://github.com/acme/widgets/pull/7",
		},
		{
			name: "release",
			in:   "https://api.github.com/repos/acme/widgets/releases/1",
			want: "https://github.com/acme/widgets/releases/1",
		},
		{
			name: "outside api root",
			in:   "https://example.com/pulls/3",
			want: "https://example.com/pull/3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, notify.WebURL(tt.in, api, web))
		})
	}
}

func TestWebURL_Enterprise(t *testing.T) {
	got := notify.WebURL(
		"https://ghe.example.com/api/v3/repos/team/app/pulls/12",
		"https://ghe.example.com/api/v3/",
		"https://ghe.example.com/",
	)
	assert.Equal(t, "https://ghe.example.com/team/app/pull/12", got)
}
