// Package model defines the data structures shared by the renaming workflow.
package model

// Path represents a file system path.
type Path string

// EntryKind classifies a directory member.
type EntryKind int

const (
	// KindFile is anything that is not a directory.
	KindFile EntryKind = iota
	// KindFolder is a directory (symlinks to directories included).
	KindFolder
)

func (k EntryKind) String() string {
	if k == KindFolder {
		return "folder"
	}

	return "file"
}

// MarshalYAML renders the kind by name in reports.
func (k EntryKind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

// UnmarshalYAML parses the name written by MarshalYAML.
func (k *EntryKind) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}

	*k = KindFile
	if name == KindFolder.String() {
		*k = KindFolder
	}

	return nil
}

// Entry is a single member of the scanned directory.
type Entry struct {
	Name string    `yaml:"name"`
	Kind EntryKind `yaml:"kind"`
}

// IsFolder reports whether the entry is a directory.
func (e Entry) IsFolder() bool {
	return e.Kind == KindFolder
}

// ScanResult is the snapshot of one directory listing.
//
// Entries keeps the listing order with files and folders interleaved; Files
// and Folders are the same entries split by kind.
type ScanResult struct {
	Entries         []Entry
	Files           []Entry
	Folders         []Entry
	FilesMatching   int
	FoldersMatching int
}

// RenamePlan is the computed before/after pair for a single entry.
type RenamePlan struct {
	OldName     string `yaml:"old_name"`
	NewName     string `yaml:"new_name"`
	Base        string `yaml:"-"`
	Extension   string `yaml:"extension,omitempty"`
	IsDirectory bool   `yaml:"is_directory"`
	WillChange  bool   `yaml:"will_change"`
}
