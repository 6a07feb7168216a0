package adapter

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	m "regren.dev/pkg/regren/internal/model"
)

// ReportStore persists run reports.
type ReportStore interface {
	SaveReport(path m.Path, report m.RunReport) error
}

// YAMLReportStore writes reports as YAML documents.
type YAMLReportStore struct {
	fs afero.Fs
}

// NewReportStore returns a YAML store on the local filesystem.
func NewReportStore() *YAMLReportStore {
	return NewYAMLReportStore(afero.NewOsFs())
}

// NewYAMLReportStore returns a YAML store on fs.
func NewYAMLReportStore(fs afero.Fs) *YAMLReportStore {
	return &YAMLReportStore{fs: fs}
}

// SaveReport encodes report to path, creating parent directories as needed.
func (s *YAMLReportStore) SaveReport(path m.Path, report m.RunReport) error {
	if dir := filepath.Dir(string(path)); dir != "." {
		if err := s.fs.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create report directory: %w", err)
		}
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	if err := afero.WriteFile(s.fs, string(path), data, 0o644); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}

	return nil
}

// LoadReport decodes a report previously written by SaveReport. The rename
// path never reads reports; this is the read side for tests and tooling that
// inspect a saved run.
func (s *YAMLReportStore) LoadReport(path m.Path) (m.RunReport, error) {
	var report m.RunReport

	data, err := afero.ReadFile(s.fs, string(path))
	if err != nil {
		return report, fmt.Errorf("read report %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &report); err != nil {
		return report, fmt.Errorf("decode report %s: %w", path, err)
	}

	return report, nil
}
