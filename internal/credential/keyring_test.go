package credential

import (
	"errors"
	"testing"

	"github.com/99designs/keyring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useArrayKeyring(t *testing.T, items ...keyring.Item) *keyring.ArrayKeyring {
	t.Helper()

	ring := keyring.NewArrayKeyring(items)
	prev := openKeyring
	openKeyring = func() (keyring.Keyring, error) { return ring, nil }
	t.Cleanup(func() { openKeyring = prev })
	return ring
}

func TestResolve_EnvWins(t *testing.T) {
	useArrayKeyring(t, keyring.Item{Key: TokenKey, Data: []byte("from-ring")})
	t.Setenv("GHN_TEST_TOKEN", "from-env")

	token, origin, err := Resolve("GHN_TEST_TOKEN")
	require.NoError(t, err)
	assert.Equal(t, "from-env", token)
	assert.Equal(t, OriginEnv, origin)
}

func TestResolve_FallsBackToKeyring(t *testing.T) {
	useArrayKeyring(t, keyring.Item{Key: TokenKey, Data: []byte("from-ring")})
	t.Setenv("GHN_TEST_TOKEN", "")

	token, origin, err := Resolve("GHN_TEST_TOKEN")
	require.NoError(t, err)
	assert.Equal(t, "from-ring", token)
	assert.Equal(t, OriginKeyring, origin)
}

func TestResolve_NothingConfigured(t *testing.T) {
	useArrayKeyring(t)
	t.Setenv("GHN_TEST_TOKEN", "")

	token, origin, err := Resolve("GHN_TEST_TOKEN")
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.Equal(t, OriginNone, origin)
}

func TestResolve_KeyringUnavailable(t *testing.T) {
	prev := openKeyring
	openKeyring = func() (keyring.Keyring, error) { return nil, errors.New("no backend") }
	t.Cleanup(func() { openKeyring = prev })
	t.Setenv("GHN_TEST_TOKEN", "")

	_, origin, err := Resolve("GHN_TEST_TOKEN")
	require.Error(t, err)
	assert.Equal(t, OriginNone, origin)
}

func TestSetGetDelete(t *testing.T) {
	useArrayKeyring(t)

	require.NoError(t, Set(TokenKey, "abc"))
	got, err := Get(TokenKey)
	require.NoError(t, err)
	assert.Equal(t, "abc", got)

	require.NoError(t, Delete(TokenKey))
	_, err = Get(TokenKey)
	assert.ErrorIs(t, err, keyring.ErrKeyNotFound)
}
