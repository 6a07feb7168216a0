package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"regren.dev/pkg/regren/internal/adapter"
	"regren.dev/pkg/regren/internal/controller"
	"regren.dev/pkg/regren/internal/domain/pattern"
	m "regren.dev/pkg/regren/internal/model"
)

// RenameArgs contains the arguments of a rename run.
type RenameArgs struct {
	Config m.RunConfig
	// ReportPath, when set, receives the run report as YAML.
	ReportPath m.Path
}

// Workflow runs a complete rename: validation, scan, rename and reporting.
type Workflow interface {
	Rename(ctx context.Context, args RenameArgs) (m.RunReport, error)
}

type workflow struct {
	fs adapter.DirFSAdapter
	adapter.ReportStore
	Scanner
	Renamer
	ui controller.UI
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.DirFSAdapter,
	reportStore adapter.ReportStore,
	ui controller.UI,
	scanner Scanner,
	renamer Renamer,
) Workflow {
	return &workflow{
		fs:          fsAdapter,
		ReportStore: reportStore,
		Scanner:     scanner,
		Renamer:     renamer,
		ui:          ui,
	}
}

// Rename validates the configuration, compiles the pattern and checks the
// replacement's group references before touching the filesystem, then scans and renames. When a report path is set the
// report is saved even if the run failed part way.
func (w *workflow) Rename(ctx context.Context, args RenameArgs) (m.RunReport, error) {
	cfg := args.Config

	if err := cfg.Validate(); err != nil {
		return m.RunReport{}, err
	}

	p, err := pattern.Compile(cfg.Pattern)
	if err != nil {
		return m.RunReport{}, err
	}

	if !cfg.DisplayOnly() {
		if err := p.CheckReplacement(cfg.EffectiveReplacement()); err != nil {
			return m.RunReport{}, err
		}
	}

	dir, err := w.fs.AbsPath(cfg.Path)
	if err != nil {
		return m.RunReport{}, fmt.Errorf("resolve path %s: %w", cfg.Path, err)
	}

	cfg.Path = dir

	slog.Info("starting rename run",
		"path", cfg.Path,
		"pattern", cfg.Pattern,
		"dry_run", cfg.DryRun,
		"display_only", cfg.DisplayOnly(),
	)

	scan, err := w.Scan(ctx, cfg.Path, p)
	if err != nil {
		return m.RunReport{}, fmt.Errorf("scan: %w", err)
	}

	report, runErr := w.Run(ctx, cfg, p, scan)

	if runErr == nil && cfg.ShowDiff && !report.DisplayOnly && cfg.Quiet < 2 {
		before, after := Listings(report)
		runErr = w.ui.DisplayDiff(ctx, before, after)
	}

	if args.ReportPath != "" {
		if err := w.SaveReport(args.ReportPath, report); err != nil {
			runErr = errors.Join(runErr, fmt.Errorf("save report: %w", err))
		}
	}

	slog.Info("rename run finished", "changed", report.Changed, "error", runErr)

	return report, runErr
}

// Listings returns the sorted directory listing before and after the run
// described by report. Simulated renames are applied to the after listing.
func Listings(report m.RunReport) (before, after []string) {
	before = make([]string, 0, len(report.Results))
	after = make([]string, 0, len(report.Results))

	for _, result := range report.Results {
		before = append(before, result.Entry.Name)

		switch result.Outcome {
		case m.Renamed, m.Simulated:
			after = append(after, result.Plan.NewName)
		default:
			after = append(after, result.Entry.Name)
		}
	}

	sort.Strings(before)
	sort.Strings(after)

	return before, after
}
