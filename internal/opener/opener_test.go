package opener_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nhle/ghnotify/internal/opener"
)

func TestFunc_Open(t *testing.T) {
	var got string
	var o opener.Opener = opener.Func(func(url string) error {
		got = url
		return nil
	})

	assert.NoError(t, o.Open("https://github.com/acme/widgets"))
	assert.Equal(t, "https://github.com/acme/widgets", got)
}

func TestFunc_OpenError(t *testing.T) {
	o := opener.Func(func(string) error { return errors.New("no display") })

	assert.EqualError(t, o.Open("x"), "no display")
}
