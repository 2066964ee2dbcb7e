package application

import (
	"time"

	"github.com/mvbarbosa/session-sweep/internal/domain"
	"github.com/mvbarbosa/session-sweep/internal/ports"
)

// Report is the outcome of a single sweep over the sessions directory.
type Report struct {
	RunID          string
	StartedAt      time.Time
	Scanned        int
	UniqueSessions int
	Kept           []KeptFile
	Removed        []RemovedFile
	Skipped        []ports.SkippedFile
	Failed         []FailedRemoval
	DryRun         bool
}

// KeptFile is the survivor of a session group that had duplicates.
type KeptFile struct {
	Name        string
	ID          domain.SessionID
	Timestamp   time.Time
	FromModTime bool
}

type RemovedFile struct {
	Name      string
	ID        domain.SessionID
	Timestamp time.Time
}

type FailedRemoval struct {
	Name  string
	ID    domain.SessionID
	Cause string
}

// Clean reports whether the sweep found nothing to remove.
func (r Report) Clean() bool {
	return len(r.Removed) == 0 && len(r.Failed) == 0
}
