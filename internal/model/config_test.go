package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunConfig_Validate(t *testing.T) {
	assert.NoError(t, RunConfig{OnlyFiles: true}.Validate())
	assert.NoError(t, RunConfig{OnlyFolders: true}.Validate())
	assert.ErrorIs(t, RunConfig{OnlyFiles: true, OnlyFolders: true}.Validate(), ErrConflictingScope)
}

func TestRunConfig_EffectiveReplacement(t *testing.T) {
	tests := []struct {
		name string
		cfg  RunConfig
		want string
	}{
		{"replacement", RunConfig{Replacement: "x", HasReplacement: true}, "x"},
		{"delete wins", RunConfig{Replacement: "x", HasReplacement: true, Delete: true}, ""},
		{"delete alone", RunConfig{Delete: true}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.EffectiveReplacement())
		})
	}
}

func TestRunConfig_DisplayOnly(t *testing.T) {
	assert.True(t, RunConfig{}.DisplayOnly())
	assert.False(t, RunConfig{HasReplacement: true}.DisplayOnly())
	assert.False(t, RunConfig{Delete: true}.DisplayOnly())
}

func TestRunConfig_Scope(t *testing.T) {
	both := RunConfig{}
	assert.True(t, both.FilesInScope())
	assert.True(t, both.FoldersInScope())

	files := RunConfig{OnlyFiles: true}
	assert.True(t, files.FilesInScope())
	assert.False(t, files.FoldersInScope())

	folders := RunConfig{OnlyFolders: true}
	assert.False(t, folders.FilesInScope())
	assert.True(t, folders.FoldersInScope())
}

func TestRunReport_Count(t *testing.T) {
	report := RunReport{Results: []EntryResult{
		{Outcome: Renamed}, {Outcome: Skipped}, {Outcome: Renamed},
	}}

	assert.Equal(t, 2, report.Count(Renamed))
	assert.Equal(t, 1, report.Count(Skipped))
	assert.Equal(t, 0, report.Count(Listed))
}
