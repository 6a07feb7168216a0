package domain

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"regren.dev/pkg/regren/internal/adapter"
	"regren.dev/pkg/regren/internal/domain/pattern"
	m "regren.dev/pkg/regren/internal/model"
)

// Scanner lists the immediate children of a directory and tallies matches.
type Scanner interface {
	Scan(ctx context.Context, dir m.Path, p *pattern.Pattern) (m.ScanResult, error)
}

type scanner struct {
	fs adapter.DirFSAdapter
}

// NewScanner creates a Scanner backed by fsAdapter.
func NewScanner(fsAdapter adapter.DirFSAdapter) Scanner {
	return &scanner{fs: fsAdapter}
}

// Scan snapshots dir once. The order of the result follows the adapter
// listing and must not be assumed to be sorted.
func (s *scanner) Scan(ctx context.Context, dir m.Path, p *pattern.Pattern) (m.ScanResult, error) {
	var result m.ScanResult

	if err := ctx.Err(); err != nil {
		return result, err
	}

	info, err := s.fs.FileInfo(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return result, fmt.Errorf("%w: %s", ErrPathNotFound, dir)
		}

		return result, fmt.Errorf("stat %s: %w", dir, err)
	}

	if !info.IsDir() {
		return result, fmt.Errorf("%w: %s", ErrNotADirectory, dir)
	}

	infos, err := s.fs.ReadDir(dir)
	if err != nil {
		return result, fmt.Errorf("list %s: %w", dir, err)
	}

	result.Entries = make([]m.Entry, 0, len(infos))

	for _, child := range infos {
		entry := m.Entry{Name: child.Name(), Kind: s.classify(dir, child)}
		matches := p.MatchString(entry.Name)

		result.Entries = append(result.Entries, entry)

		if entry.IsFolder() {
			result.Folders = append(result.Folders, entry)
			if matches {
				result.FoldersMatching++
			}

			continue
		}

		result.Files = append(result.Files, entry)
		if matches {
			result.FilesMatching++
		}
	}

	slog.Debug("scanned directory",
		"path", dir,
		"files", len(result.Files),
		"folders", len(result.Folders),
		"files_matching", result.FilesMatching,
		"folders_matching", result.FoldersMatching,
	)

	return result, nil
}

// classify follows symlinks so a link to a directory counts as a folder.
func (s *scanner) classify(dir m.Path, info os.FileInfo) m.EntryKind {
	if info.Mode()&os.ModeSymlink != 0 {
		target, err := s.fs.FileInfo(s.fs.JoinPath(string(dir), info.Name()))
		if err == nil {
			info = target
		}
	}

	if info.IsDir() {
		return m.KindFolder
	}

	return m.KindFile
}
