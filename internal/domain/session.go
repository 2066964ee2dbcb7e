package domain

import (
	"sort"
	"time"
)

type SessionID string

// SessionFile is one JSON session file discovered during a scan.
type SessionFile struct {
	Path        string
	Name        string
	ID          SessionID
	Timestamp   time.Time
	FromModTime bool
}

// IDFieldCandidates is the ordered list of JSON fields consulted when
// extracting a session identifier. First present non-empty value wins.
var IDFieldCandidates = []string{"activeSessionId", "sessionId", "id", "accountId"}

// TimestampFieldCandidates is the ordered list of JSON fields consulted
// when resolving a session timestamp.
var TimestampFieldCandidates = []string{"updatedAt", "timestamp", "createdAt"}

// GroupByID buckets files by session identifier, preserving discovery
// order inside each bucket.
func GroupByID(files []SessionFile) map[SessionID][]SessionFile {
	groups := make(map[SessionID][]SessionFile, len(files))
	for _, file := range files {
		groups[file.ID] = append(groups[file.ID], file)
	}

	return groups
}

// SortNewestFirst orders files descending by timestamp. The sort is
// stable so that equal timestamps keep discovery order and the earliest
// discovered file wins the tie.
func SortNewestFirst(files []SessionFile) {
	sort.SliceStable(files, func(i, j int) bool {
		return files[i].Timestamp.After(files[j].Timestamp)
	})
}
