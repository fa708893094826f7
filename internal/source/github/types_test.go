package github_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ghsource "github.com/nhle/ghnotify/internal/source/github"
)

func TestDecodeRemaining(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		want   int
		wantOK bool
	}{
		{"present", `{"rate":{"limit":5000,"remaining":42}}`, 42, true},
		{"zero", `{"rate":{"remaining":0}}`, 0, true},
		{"missing rate", `{"resources":{}}`, 0, false},
		{"missing remaining", `{"rate":{"limit":5000}}`, 0, false},
		{"not json", `<html>`, 0, false},
		{"empty", ``, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ghsource.DecodeRemaining([]byte(tt.body))
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestDecodeNotifications(t *testing.T) {
	body := `[{
		"id": "1",
		"url": "https://api.github.com/notifications/threads/1",
		"reason": "mention",
		"repository": {"full_name": "acme/widgets"},
		"subject": {"title": "Bug", "type": "Issue", "url": "https://api.github.com/repos/acme/widgets/issues/42"}
	}]`

	list, err := ghsource.DecodeNotifications([]byte(body))
	require.NoError(t, err)
	require.Len(t, list, 1)

	n := list[0]
	assert.Equal(t, "acme/widgets", n.GetRepository().GetFullName())
	assert.Equal(t, "Bug", n.GetSubject().GetTitle())
	assert.Equal(t, "Issue", n.GetSubject().GetType())
	assert.Equal(t, "mention", n.GetReason())
}

func TestDecodeNotifications_Malformed(t *testing.T) {
	_, err := ghsource.DecodeNotifications([]byte(`{"message":"not a list"}`))
	require.Error(t, err)
}

func TestEndpoints(t *testing.T) {
	e := ghsource.NewEndpoints("https://ghe.example.com/api/v3/")

	assert.Equal(t, "https://ghe.example.com/api/v3/rate_limit", e.RateLimit())
	assert.Equal(t, "https://ghe.example.com/api/v3/notifications?all=false", e.Notifications())
	assert.Equal(t, "https://ghe.example.com/api/v3/notifications/threads/123", e.Thread("123"))
}
