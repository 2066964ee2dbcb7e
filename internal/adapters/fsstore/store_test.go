package fsstore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mvbarbosa/session-sweep/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListExtractsSessionFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "a.json", `{"sessionId":"sess-1","updatedAt":"2026-03-01T10:00:00Z"}`)
	writeFile(t, dir, "b.json", `{"activeSessionId":"sess-2","timestamp":"2026-03-01T11:00:00.250Z"}`)
	writeFile(t, dir, "notes.txt", "not a session")

	store, err := NewStore(dir, nil)
	require.NoError(t, err)

	files, skipped, err := store.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, skipped)
	require.Len(t, files, 2)

	assert.Equal(t, domain.SessionID("sess-1"), files[0].ID)
	assert.Equal(t, time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC), files[0].Timestamp)
	assert.False(t, files[0].FromModTime)

	assert.Equal(t, domain.SessionID("sess-2"), files[1].ID)
	assert.Equal(t, time.Date(2026, 3, 1, 11, 0, 0, 250_000_000, time.UTC), files[1].Timestamp)
}

func TestListNeverTouchesExcludedFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "current-session.json", `{"sessionId":"sess-1"}`)
	writeFile(t, dir, "active-session-config.json", "this is not even JSON")
	writeFile(t, dir, "custom-skip.json", `{"sessionId":"sess-1"}`)

	store, err := NewStore(dir, []string{"custom-skip.json"})
	require.NoError(t, err)

	files, skipped, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, files)
	assert.Empty(t, skipped)
}

func TestListSkipsMalformedJSON(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "broken.json", `{"sessionId": "sess-1"`)
	writeFile(t, dir, "ok.json", `{"sessionId":"sess-2","updatedAt":"2026-03-01T10:00:00Z"}`)

	store, err := NewStore(dir, nil)
	require.NoError(t, err)

	files, skipped, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, files, 1)
	require.Len(t, skipped, 1)
	assert.Equal(t, "broken.json", skipped[0].Name)
	assert.Contains(t, skipped[0].Reason, "not valid JSON")

	// the malformed file stays on disk
	_, statErr := os.Stat(filepath.Join(dir, "broken.json"))
	require.NoError(t, statErr)
}

func TestListSkipsFilesWithoutSessionID(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "anonymous.json", `{"payload":"data"}`)

	store, err := NewStore(dir, nil)
	require.NoError(t, err)

	files, skipped, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, files)
	require.Len(t, skipped, 1)
	assert.Contains(t, skipped[0].Reason, "no session identifier")
}

func TestListSkipsCorruptTimestampField(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "corrupt.json", `{"sessionId":"sess-1","updatedAt":"not-a-timestamp"}`)
	writeFile(t, dir, "valid.json", `{"sessionId":"sess-1","updatedAt":"2026-03-01T10:00:00Z"}`)

	store, err := NewStore(dir, nil)
	require.NoError(t, err)

	files, skipped, err := store.List(context.Background())
	require.NoError(t, err)

	// the corrupt file must not enter the sweep with an mtime that
	// outranks its validly-timestamped sibling
	require.Len(t, files, 1)
	assert.Equal(t, "valid.json", files[0].Name)
	require.Len(t, skipped, 1)
	assert.Equal(t, "corrupt.json", skipped[0].Name)
	assert.Contains(t, skipped[0].Reason, "not-a-timestamp")

	// and it stays on disk
	_, statErr := os.Stat(filepath.Join(dir, "corrupt.json"))
	require.NoError(t, statErr)
}

func TestListFallsBackToModTime(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "no-timestamp.json", `{"id":"sess-1"}`)

	modTime := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, os.Chtimes(filepath.Join(dir, "no-timestamp.json"), modTime, modTime))

	store, err := NewStore(dir, nil)
	require.NoError(t, err)

	files, _, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.True(t, files[0].FromModTime)
	assert.True(t, files[0].Timestamp.Equal(modTime))
}

func TestListAcceptsNumericIdentifier(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "numeric.json", `{"accountId":42}`)

	store, err := NewStore(dir, nil)
	require.NoError(t, err)

	files, _, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, domain.SessionID("42"), files[0].ID)
}

func TestListMissingDirectory(t *testing.T) {
	t.Parallel()

	store, err := NewStore(filepath.Join(t.TempDir(), "gone"), nil)
	require.NoError(t, err)

	_, _, err = store.List(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrSessionsDirNotFound))
}

func TestRemoveDeletesFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "stale.json", `{"sessionId":"sess-1"}`)

	store, err := NewStore(dir, nil)
	require.NoError(t, err)

	err = store.Remove(context.Background(), domain.SessionFile{Name: "stale.json"})
	require.NoError(t, err)

	_, statErr := os.Stat(filepath.Join(dir, "stale.json"))
	assert.True(t, errors.Is(statErr, os.ErrNotExist))
}

func TestRemoveRefusesExcludedFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "current-session.json", `{"sessionId":"sess-1"}`)

	store, err := NewStore(dir, nil)
	require.NoError(t, err)

	err = store.Remove(context.Background(), domain.SessionFile{Name: "current-session.json"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "refusing to remove")

	_, statErr := os.Stat(filepath.Join(dir, "current-session.json"))
	require.NoError(t, statErr)
}

func writeFile(t *testing.T, dir, name, contents string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(contents), 0o644))
}
