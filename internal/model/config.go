package model

import "errors"

// ErrConflictingScope is returned when both only-files and only-folders are requested.
var ErrConflictingScope = errors.New("only-files and only-folders are mutually exclusive")

// RunConfig is the resolved configuration of a single run. It is treated as
// immutable once the run starts.
type RunConfig struct {
	Pattern string
	// Replacement is only meaningful when HasReplacement is true. An explicit
	// empty replacement is a valid value.
	Replacement     string
	HasReplacement  bool
	Path            Path
	IgnoreExtension bool
	Delete          bool
	DryRun          bool
	Quiet           int
	OnlyFiles       bool
	OnlyFolders     bool
	// ExcludedPath is the absolute path of a file that must never be renamed,
	// normally the running executable.
	ExcludedPath Path
	ShowDiff     bool
}

// Validate checks the invariants between flags.
func (c RunConfig) Validate() error {
	if c.OnlyFiles && c.OnlyFolders {
		return ErrConflictingScope
	}

	return nil
}

// EffectiveReplacement is the text substituted for every match. Delete always
// wins over a literal replacement.
func (c RunConfig) EffectiveReplacement() string {
	if c.Delete {
		return ""
	}

	return c.Replacement
}

// DisplayOnly reports whether the run only lists matches without renaming.
func (c RunConfig) DisplayOnly() bool {
	return !c.HasReplacement && !c.Delete
}

// FilesInScope reports whether files take part in the run.
func (c RunConfig) FilesInScope() bool {
	return c.OnlyFiles || !c.OnlyFolders
}

// FoldersInScope reports whether folders take part in the run.
func (c RunConfig) FoldersInScope() bool {
	return c.OnlyFolders || !c.OnlyFiles
}
