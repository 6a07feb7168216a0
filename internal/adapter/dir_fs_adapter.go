// Package adapter contains the filesystem adapters used by the rename workflow.
package adapter

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	m "regren.dev/pkg/regren/internal/model"
)

// DirFSAdapter abstracts the filesystem operations the domain layer relies on
// when scanning and renaming the members of a single directory. It hides
// direct `os` access so the workflow can run against an in-memory filesystem.
type DirFSAdapter interface {
	// ReadDir lists the immediate children of dir. Symlinks are reported as
	// symlinks, not as their targets.
	ReadDir(dir m.Path) ([]os.FileInfo, error)

	// FileInfo returns metadata for path, following symlinks.
	FileInfo(path m.Path) (os.FileInfo, error)

	// Rename moves oldPath to newPath. Existing targets are not handled
	// specially; the underlying filesystem decides.
	Rename(oldPath, newPath m.Path) error

	// AbsPath returns a cleaned absolute form of path.
	AbsPath(path m.Path) (m.Path, error)

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// AferoDirFSAdapter implements DirFSAdapter on top of an afero filesystem.
type AferoDirFSAdapter struct {
	fs afero.Fs
}

// NewLocalDirFSAdapter returns an adapter backed by the operating system.
func NewLocalDirFSAdapter() *AferoDirFSAdapter {
	return NewAferoDirFSAdapter(afero.NewOsFs())
}

// NewAferoDirFSAdapter wraps an arbitrary afero filesystem.
func NewAferoDirFSAdapter(fs afero.Fs) *AferoDirFSAdapter {
	return &AferoDirFSAdapter{fs: fs}
}

// ReadDir lists dir in the order afero returns it (sorted by name).
func (a *AferoDirFSAdapter) ReadDir(dir m.Path) ([]os.FileInfo, error) {
	return afero.ReadDir(a.fs, string(dir))
}

// FileInfo returns metadata for path.
func (a *AferoDirFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return a.fs.Stat(string(path))
}

// Rename renames oldPath to newPath.
func (a *AferoDirFSAdapter) Rename(oldPath, newPath m.Path) error {
	return a.fs.Rename(string(oldPath), string(newPath))
}

// AbsPath returns the absolute, cleaned form of path.
func (a *AferoDirFSAdapter) AbsPath(path m.Path) (m.Path, error) {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return "", err
	}

	return m.Path(abs), nil
}

// JoinPath joins path elements into a single path.
func (a *AferoDirFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
