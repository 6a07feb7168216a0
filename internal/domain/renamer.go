package domain

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"regren.dev/pkg/regren/internal/adapter"
	"regren.dev/pkg/regren/internal/controller"
	"regren.dev/pkg/regren/internal/domain/pattern"
	m "regren.dev/pkg/regren/internal/model"
)

// Renamer plans and applies (or simulates) the renames of a scanned directory.
type Renamer interface {
	Run(ctx context.Context, cfg m.RunConfig, p *pattern.Pattern, scan m.ScanResult) (m.RunReport, error)
}

type renamer struct {
	fs adapter.DirFSAdapter
	ui controller.UI
}

// NewRenamer creates a Renamer that renames through fsAdapter and reports to ui.
func NewRenamer(fsAdapter adapter.DirFSAdapter, ui controller.UI) Renamer {
	return &renamer{fs: fsAdapter, ui: ui}
}

// Run walks scan.Entries in listing order. A failed rename aborts the run and
// is returned as *RenameError together with the partial report.
func (r *renamer) Run(ctx context.Context, cfg m.RunConfig, p *pattern.Pattern, scan m.ScanResult) (m.RunReport, error) {
	planner := NewPlanner(cfg, p)
	report := newRunReport(cfg, p, planner.Replacement(), scan)

	current := 1

	for _, entry := range scan.Entries {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		if !inScope(cfg, entry) || isExcluded(cfg, entry) {
			slog.Debug("skipping entry", "name", entry.Name, "kind", entry.Kind.String())
			report.Results = append(report.Results, m.EntryResult{Entry: entry, Outcome: m.Skipped})

			continue
		}

		plan := planner.Plan(entry)

		if report.DisplayOnly {
			r.ui.DisplayMatch(ctx, controller.MatchLine{Pattern: p, Plan: plan})
			report.Results = append(report.Results, m.EntryResult{Entry: entry, Plan: plan, Outcome: m.Listed})

			continue
		}

		if !plan.WillChange {
			report.Results = append(report.Results, m.EntryResult{Entry: entry, Plan: plan, Outcome: m.Unchanged})
			continue
		}

		outcome := m.Simulated

		if !cfg.DryRun {
			if err := r.apply(cfg.Path, plan); err != nil {
				return report, err
			}

			outcome = m.Renamed
		}

		report.Results = append(report.Results, m.EntryResult{Entry: entry, Plan: plan, Outcome: outcome})
		report.Changed++

		if cfg.Quiet == 0 {
			r.ui.DisplayRename(ctx, controller.RenameProgress{
				Pattern:     p,
				Replacement: planner.Replacement(),
				Plan:        plan,
				Current:     current,
				Total:       report.TotalMatching,
				DryRun:      cfg.DryRun,
			})
		}

		current++
	}

	if cfg.Quiet < 2 {
		if err := r.ui.DisplaySummary(ctx, controller.Summary{
			TotalFolders:    report.TotalFolders,
			FoldersMatching: report.FoldersMatching,
			TotalFiles:      report.TotalFiles,
			FilesMatching:   report.FilesMatching,
			ShowFolders:     cfg.FoldersInScope(),
			ShowFiles:       cfg.FilesInScope(),
		}); err != nil {
			return report, err
		}
	}

	return report, nil
}

func (r *renamer) apply(dir m.Path, plan m.RenamePlan) error {
	oldPath := r.fs.JoinPath(string(dir), plan.OldName)
	newPath := r.fs.JoinPath(string(dir), plan.NewName)

	if err := r.fs.Rename(oldPath, newPath); err != nil {
		slog.Error("rename failed", "from", oldPath, "to", newPath, "error", err)
		return &RenameError{OldPath: oldPath, NewPath: newPath, Err: err}
	}

	slog.Info("renamed", "from", oldPath, "to", newPath)

	return nil
}

func newRunReport(cfg m.RunConfig, p *pattern.Pattern, replacement string, scan m.ScanResult) m.RunReport {
	report := m.RunReport{
		Path:            cfg.Path,
		Pattern:         p.String(),
		Replacement:     replacement,
		DryRun:          cfg.DryRun,
		DisplayOnly:     cfg.DisplayOnly(),
		TotalFiles:      len(scan.Files),
		TotalFolders:    len(scan.Folders),
		FilesMatching:   scan.FilesMatching,
		FoldersMatching: scan.FoldersMatching,
		Results:         make([]m.EntryResult, 0, len(scan.Entries)),
	}

	if cfg.FilesInScope() {
		report.TotalMatching += scan.FilesMatching
	}

	if cfg.FoldersInScope() {
		report.TotalMatching += scan.FoldersMatching
	}

	return report
}

func inScope(cfg m.RunConfig, entry m.Entry) bool {
	if entry.IsFolder() {
		return cfg.FoldersInScope()
	}

	return cfg.FilesInScope()
}

// isExcluded reports whether entry is the excluded file (normally the running
// executable) inside the target directory. The name only has to be a suffix
// of the excluded file name.
func isExcluded(cfg m.RunConfig, entry m.Entry) bool {
	if cfg.ExcludedPath == "" {
		return false
	}

	excluded := string(cfg.ExcludedPath)
	if !SamePath(filepath.Dir(excluded), filepath.Clean(string(cfg.Path))) {
		return false
	}

	return strings.HasSuffix(filepath.Base(excluded), entry.Name)
}
