// Package domain implements scanning, planning and executing pattern based renames.
package domain

import (
	"errors"
	"fmt"

	m "regren.dev/pkg/regren/internal/model"
)

var (
	// ErrPathNotFound is returned when the target directory does not exist.
	ErrPathNotFound = errors.New("path not found")
	// ErrNotADirectory is returned when the target exists but is not a directory.
	ErrNotADirectory = errors.New("not a directory")
)

// RenameError wraps a failed filesystem rename. Entries renamed before the
// failure stay renamed.
type RenameError struct {
	OldPath m.Path
	NewPath m.Path
	Err     error
}

func (e *RenameError) Error() string {
	return fmt.Sprintf("rename %s -> %s: %v", e.OldPath, e.NewPath, e.Err)
}

func (e *RenameError) Unwrap() error {
	return e.Err
}
