// Package controller renders the progress and results of a rename run.
package controller

import (
	"context"

	"regren.dev/pkg/regren/internal/domain/pattern"
	m "regren.dev/pkg/regren/internal/model"
)

// MatchLine is a single entry printed in display-only mode.
type MatchLine struct {
	Pattern *pattern.Pattern
	Plan    m.RenamePlan
}

// RenameProgress describes one changed entry of a rename or simulation.
type RenameProgress struct {
	Pattern     *pattern.Pattern
	Replacement string
	Plan        m.RenamePlan
	Current     int
	Total       int
	DryRun      bool
}

// Summary holds the directory totals printed at the end of a run. Show*
// flags mirror which kinds were in scope.
type Summary struct {
	TotalFolders    int
	FoldersMatching int
	TotalFiles      int
	FilesMatching   int
	ShowFolders     bool
	ShowFiles       bool
}

// UI defines how the rename workflow reports to the user.
// Implementations decide on colors and layout.
type UI interface {
	DisplayMatch(ctx context.Context, line MatchLine)
	DisplayRename(ctx context.Context, progress RenameProgress)
	DisplaySummary(ctx context.Context, summary Summary) error
	DisplayDiff(ctx context.Context, before, after []string) error
}
