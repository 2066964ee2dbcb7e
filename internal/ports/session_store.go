package ports

import (
	"context"

	"github.com/mvbarbosa/session-sweep/internal/domain"
)

// SkippedFile is a session file the store could not turn into a
// domain.SessionFile, with the reason it was left alone.
type SkippedFile struct {
	Name   string
	Reason string
}

type SessionStore interface {
	// List enumerates candidate session files in discovery order,
	// alongside the files that were skipped as unparsable.
	List(ctx context.Context) ([]domain.SessionFile, []SkippedFile, error)
	Remove(ctx context.Context, file domain.SessionFile) error
}
