package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/mvbarbosa/session-sweep/internal/domain"
	"github.com/mvbarbosa/session-sweep/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	files      []domain.SessionFile
	skipped    []ports.SkippedFile
	listErr    error
	failOn     map[string]error
	removed    []string
	removeCall int
}

func (s *fakeStore) List(_ context.Context) ([]domain.SessionFile, []ports.SkippedFile, error) {
	if s.listErr != nil {
		return nil, nil, s.listErr
	}

	files := make([]domain.SessionFile, len(s.files))
	copy(files, s.files)
	return files, s.skipped, nil
}

func (s *fakeStore) Remove(_ context.Context, file domain.SessionFile) error {
	s.removeCall++
	if err, ok := s.failOn[file.Name]; ok {
		return err
	}

	s.removed = append(s.removed, file.Name)
	for i, kept := range s.files {
		if kept.Name == file.Name {
			s.files = append(s.files[:i], s.files[i+1:]...)
			break
		}
	}

	return nil
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestService(store ports.SessionStore) *SweepService {
	service := NewSweepService(store, fixedClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}, testLogger())
	service.newRunID = func() string { return "run-test" }
	return service
}

func sessionFile(name string, id domain.SessionID, ts time.Time) domain.SessionFile {
	return domain.SessionFile{Path: "/sessions/" + name, Name: name, ID: id, Timestamp: ts}
}

func TestSweepKeepsNewestPerSession(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	store := &fakeStore{files: []domain.SessionFile{
		sessionFile("old.json", "sess-1", base.Add(-time.Hour)),
		sessionFile("new.json", "sess-1", base),
		sessionFile("only.json", "sess-2", base),
	}}

	report, err := newTestService(store).Sweep(context.Background(), false)
	require.NoError(t, err)

	assert.Equal(t, "run-test", report.RunID)
	assert.Equal(t, 3, report.Scanned)
	assert.Equal(t, 2, report.UniqueSessions)
	assert.Equal(t, []string{"old.json"}, store.removed)
	require.Len(t, report.Kept, 1)
	assert.Equal(t, "new.json", report.Kept[0].Name)
	require.Len(t, report.Removed, 1)
	assert.Equal(t, "old.json", report.Removed[0].Name)
}

func TestSweepIsIdempotent(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	store := &fakeStore{files: []domain.SessionFile{
		sessionFile("old.json", "sess-1", base.Add(-time.Hour)),
		sessionFile("new.json", "sess-1", base),
	}}
	service := newTestService(store)

	first, err := service.Sweep(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, first.Removed, 1)

	second, err := service.Sweep(context.Background(), false)
	require.NoError(t, err)
	assert.True(t, second.Clean())
	assert.Empty(t, second.Removed)
	assert.Equal(t, 1, second.UniqueSessions)
}

func TestSweepTieBrokenByDiscoveryOrder(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	store := &fakeStore{files: []domain.SessionFile{
		sessionFile("first.json", "sess-1", base),
		sessionFile("second.json", "sess-1", base),
	}}

	report, err := newTestService(store).Sweep(context.Background(), false)
	require.NoError(t, err)

	require.Len(t, report.Kept, 1)
	assert.Equal(t, "first.json", report.Kept[0].Name)
	assert.Equal(t, []string{"second.json"}, store.removed)
}

func TestSweepContinuesAfterRemovalFailure(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	store := &fakeStore{
		files: []domain.SessionFile{
			sessionFile("newest.json", "sess-1", base),
			sessionFile("stuck.json", "sess-1", base.Add(-time.Hour)),
			sessionFile("stale.json", "sess-1", base.Add(-2*time.Hour)),
		},
		failOn: map[string]error{"stuck.json": fmt.Errorf("permission denied")},
	}

	report, err := newTestService(store).Sweep(context.Background(), false)
	require.NoError(t, err)

	require.Len(t, report.Failed, 1)
	assert.Equal(t, "stuck.json", report.Failed[0].Name)
	assert.Contains(t, report.Failed[0].Cause, "permission denied")
	assert.Equal(t, []string{"stale.json"}, store.removed)
}

func TestSweepDryRunRemovesNothing(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	store := &fakeStore{files: []domain.SessionFile{
		sessionFile("old.json", "sess-1", base.Add(-time.Hour)),
		sessionFile("new.json", "sess-1", base),
	}}

	report, err := newTestService(store).Sweep(context.Background(), true)
	require.NoError(t, err)

	assert.True(t, report.DryRun)
	assert.Zero(t, store.removeCall)
	require.Len(t, report.Removed, 1)
	assert.Equal(t, "old.json", report.Removed[0].Name)
}

func TestSweepReportsSkippedFiles(t *testing.T) {
	t.Parallel()

	store := &fakeStore{
		skipped: []ports.SkippedFile{{Name: "broken.json", Reason: "session file is not valid JSON"}},
	}

	report, err := newTestService(store).Sweep(context.Background(), false)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Scanned)
	require.Len(t, report.Skipped, 1)
	assert.Equal(t, "broken.json", report.Skipped[0].Name)
}

func TestSweepPropagatesListError(t *testing.T) {
	t.Parallel()

	store := &fakeStore{listErr: domain.ErrSessionsDirNotFound}

	_, err := newTestService(store).Sweep(context.Background(), false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrSessionsDirNotFound))
}
