package model

import "fmt"

// Outcome is what happened to an entry during a run.
type Outcome int

const (
	// Skipped entries were filtered out by kind or self-exclusion.
	Skipped Outcome = iota
	// Listed entries were only displayed (display-only mode).
	Listed
	// Unchanged entries produced the same name after substitution.
	Unchanged
	// Simulated entries would have been renamed in a live run.
	Simulated
	// Renamed entries were renamed on disk.
	Renamed
)

func (o Outcome) String() string {
	switch o {
	case Skipped:
		return "skipped"
	case Listed:
		return "listed"
	case Unchanged:
		return "unchanged"
	case Simulated:
		return "simulated"
	case Renamed:
		return "renamed"
	}

	return "unknown"
}

// MarshalYAML renders the outcome by name in reports.
func (o Outcome) MarshalYAML() (interface{}, error) {
	return o.String(), nil
}

// UnmarshalYAML parses the name written by MarshalYAML.
func (o *Outcome) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}

	for candidate := Skipped; candidate <= Renamed; candidate++ {
		if candidate.String() == name {
			*o = candidate
			return nil
		}
	}

	return fmt.Errorf("unknown outcome %q", name)
}

// EntryResult records the plan and outcome for one scanned entry.
type EntryResult struct {
	Entry   Entry      `yaml:"entry"`
	Plan    RenamePlan `yaml:"plan"`
	Outcome Outcome    `yaml:"outcome"`
}

// RunReport summarizes a run.
type RunReport struct {
	Path            Path          `yaml:"path"`
	Pattern         string        `yaml:"pattern"`
	Replacement     string        `yaml:"replacement"`
	DryRun          bool          `yaml:"dry_run"`
	DisplayOnly     bool          `yaml:"display_only"`
	TotalFiles      int           `yaml:"total_files"`
	TotalFolders    int           `yaml:"total_folders"`
	FilesMatching   int           `yaml:"files_matching"`
	FoldersMatching int           `yaml:"folders_matching"`
	TotalMatching   int           `yaml:"total_matching"`
	Changed         int           `yaml:"changed"`
	Results         []EntryResult `yaml:"results"`
}

// Count returns the number of entries that ended with the given outcome.
func (r RunReport) Count(outcome Outcome) int {
	n := 0

	for _, result := range r.Results {
		if result.Outcome == outcome {
			n++
		}
	}

	return n
}
