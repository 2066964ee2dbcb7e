package report

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mvbarbosa/session-sweep/internal/application"
)

func renderView(report application.Report, s styles) string {
	title := "Session Sweep Report"
	if report.DryRun {
		title += " " + s.dryRun.Render("(dry run)")
	}

	lines := []string{
		s.title.Render(title),
		s.header.Render(fmt.Sprintf("run: %s", report.RunID)),
		s.header.Render(fmt.Sprintf("scanned: %d files, sessions: %d", report.Scanned, report.UniqueSessions)),
	}

	if report.Clean() && len(report.Skipped) == 0 {
		lines = append(lines, s.section.Render(s.empty.Render("No duplicates found.")))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	if len(report.Kept) > 0 {
		lines = append(lines, s.section.Render(renderGroups(report, s)))
	}

	if len(report.Skipped) > 0 {
		lines = append(lines, s.section.Render(renderSkipped(report, s)))
	}

	lines = append(lines, s.section.Render(renderSummary(report, s)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderGroups(report application.Report, s styles) string {
	removedByID := make(map[string][]application.RemovedFile, len(report.Removed))
	for _, removed := range report.Removed {
		removedByID[string(removed.ID)] = append(removedByID[string(removed.ID)], removed)
	}
	failedByID := make(map[string][]application.FailedRemoval, len(report.Failed))
	for _, failed := range report.Failed {
		failedByID[string(failed.ID)] = append(failedByID[string(failed.ID)], failed)
	}

	parts := make([]string, 0, len(report.Kept))
	for _, kept := range report.Kept {
		group := []string{
			s.session.Render(fmt.Sprintf("session %s", kept.ID)),
			fmt.Sprintf("  %s %s %s",
				s.kept.Render("kept"),
				s.detail.Render(kept.Name),
				s.fileMeta.Render(timestampLabel(kept.Timestamp, kept.FromModTime)),
			),
		}

		verb := "removed"
		if report.DryRun {
			verb = "would remove"
		}
		for _, removed := range removedByID[string(kept.ID)] {
			group = append(group, fmt.Sprintf("  %s %s %s",
				s.removed.Render(verb),
				s.detail.Render(removed.Name),
				s.fileMeta.Render(removed.Timestamp.Format(time.RFC3339)),
			))
		}
		for _, failed := range failedByID[string(kept.ID)] {
			group = append(group, fmt.Sprintf("  %s %s %s",
				s.failed.Render("failed"),
				s.detail.Render(failed.Name),
				s.fileMeta.Render(failed.Cause),
			))
		}

		parts = append(parts, lipgloss.JoinVertical(lipgloss.Left, group...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderSkipped(report application.Report, s styles) string {
	parts := make([]string, 0, len(report.Skipped)+1)
	parts = append(parts, s.skipped.Render("skipped"))
	for _, skip := range report.Skipped {
		parts = append(parts, fmt.Sprintf("  %s %s",
			s.detail.Render(skip.Name),
			s.fileMeta.Render(skip.Reason),
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderSummary(report application.Report, s styles) string {
	verb := "removed"
	if report.DryRun {
		verb = "planned"
	}

	return s.header.Render(fmt.Sprintf("%s: %d, failed: %d, skipped: %d",
		verb, len(report.Removed), len(report.Failed), len(report.Skipped)))
}

func timestampLabel(ts time.Time, fromModTime bool) string {
	label := ts.Format(time.RFC3339)
	if fromModTime {
		label += " (mtime)"
	}

	return label
}
