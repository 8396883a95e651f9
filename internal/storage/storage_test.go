package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "datastore.json"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPrefixRoundTrip(t *testing.T) {
	s := newTestStorage(t)

	assert.Equal(t, "", s.Prefix("guild-1"), "unset prefix reads as empty")

	require.NoError(t, s.SetPrefix("guild-1", "?"))
	assert.Equal(t, "?", s.Prefix("guild-1"))
	assert.Equal(t, "", s.Prefix("guild-2"), "prefixes are per guild")
}

func TestCommandHistoryKeepsRecentEntries(t *testing.T) {
	s := newTestStorage(t)

	for i := 0; i < commandHistoryLimit+5; i++ {
		err := s.AppendCommandToHistory("guild-1", CommandHistoryRecord{
			Command:  "ping",
			Username: "tester",
			Datetime: time.Now(),
		})
		require.NoError(t, err)
	}

	records, err := s.CommandHistory("guild-1")
	require.NoError(t, err)
	assert.Len(t, records, commandHistoryLimit)
}
