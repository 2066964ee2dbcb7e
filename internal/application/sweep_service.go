package application

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"
	"github.com/mvbarbosa/session-sweep/internal/domain"
	"github.com/mvbarbosa/session-sweep/internal/ports"
)

type SweepService struct {
	store    ports.SessionStore
	clock    ports.Clock
	logger   *slog.Logger
	newRunID func() string
}

func NewSweepService(store ports.SessionStore, clock ports.Clock, logger *slog.Logger) *SweepService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &SweepService{
		store:    store,
		clock:    clock,
		logger:   logger,
		newRunID: uuid.NewString,
	}
}

// Sweep scans the sessions directory once and removes every file that is
// not the newest of its session group. With dryRun the removal plan is
// reported but nothing is deleted.
func (s *SweepService) Sweep(ctx context.Context, dryRun bool) (Report, error) {
	report := Report{
		RunID:     s.newRunID(),
		StartedAt: s.clock.Now(),
		DryRun:    dryRun,
	}
	logger := s.logger.With("run_id", report.RunID)

	files, skipped, err := s.store.List(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("list session files: %w", err)
	}

	report.Scanned = len(files) + len(skipped)
	report.Skipped = skipped
	for _, skip := range skipped {
		logger.Warn("skipping session file", "file", skip.Name, "reason", skip.Reason)
	}

	groups := domain.GroupByID(files)
	report.UniqueSessions = len(groups)

	for _, id := range sortedGroupIDs(groups) {
		group := groups[id]
		if len(group) < 2 {
			continue
		}

		domain.SortNewestFirst(group)
		newest := group[0]
		report.Kept = append(report.Kept, KeptFile{
			Name:        newest.Name,
			ID:          newest.ID,
			Timestamp:   newest.Timestamp,
			FromModTime: newest.FromModTime,
		})
		logger.Info("keeping newest session file", "session_id", string(id), "file", newest.Name)

		for _, stale := range group[1:] {
			if dryRun {
				report.Removed = append(report.Removed, RemovedFile{
					Name:      stale.Name,
					ID:        stale.ID,
					Timestamp: stale.Timestamp,
				})
				continue
			}

			if err := s.store.Remove(ctx, stale); err != nil {
				report.Failed = append(report.Failed, FailedRemoval{
					Name:  stale.Name,
					ID:    stale.ID,
					Cause: err.Error(),
				})
				logger.Error("remove duplicate session file", "file", stale.Name, "error", err)
				continue
			}

			report.Removed = append(report.Removed, RemovedFile{
				Name:      stale.Name,
				ID:        stale.ID,
				Timestamp: stale.Timestamp,
			})
			logger.Info("removed duplicate session file", "file", stale.Name, "timestamp", stale.Timestamp)
		}
	}

	if report.Clean() {
		logger.Info("no duplicates found", "unique_sessions", report.UniqueSessions)
	} else {
		logger.Info("sweep finished",
			"unique_sessions", report.UniqueSessions,
			"removed", len(report.Removed),
			"failed", len(report.Failed),
			"dry_run", dryRun,
		)
	}

	return report, nil
}

// sortedGroupIDs keeps removal logging deterministic across runs.
func sortedGroupIDs(groups map[domain.SessionID][]domain.SessionFile) []domain.SessionID {
	ids := make([]domain.SessionID, 0, len(groups))
	for id := range groups {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}
