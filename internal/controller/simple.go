package controller

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/olekukonko/tablewriter"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI by printing to the cobra command's output.
type SimpleUI struct {
	cmd     *cobra.Command
	palette Palette
}

// NewSimpleUI creates a SimpleUI that prints without colors until
// UsePalette is called.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// UsePalette switches the highlight markers.
func (s *SimpleUI) UsePalette(p Palette) {
	s.palette = p
}

// DisplayMatch prints a name with its matches highlighted.
func (s *SimpleUI) DisplayMatch(ctx context.Context, line MatchLine) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s%s\n", line.Pattern.HighlightMatches(line.Plan.Base, s.palette.Match, s.palette.Reset), line.Plan.Extension)
}

// DisplayRename prints the progress header followed by the old and new names.
func (s *SimpleUI) DisplayRename(ctx context.Context, progress RenameProgress) {
	if err := ctx.Err(); err != nil {
		return
	}

	label := "Done substitution"
	if progress.DryRun {
		label = "Substitution"
	}

	plan := progress.Plan
	oldName := progress.Pattern.HighlightMatches(plan.Base, s.palette.Match, s.palette.Reset) + plan.Extension
	newName := progress.Pattern.HighlightSubstitution(plan.Base, progress.Replacement, s.palette.Substitution, s.palette.Reset) + plan.Extension

	header := s.style().Bold(true).Render(fmt.Sprintf("%s: %d/%d", label, progress.Current, progress.Total))

	s.printf("%s\n", header)
	s.printf("Old: %s\n", oldName)
	s.printf("New: %s\n\n", newName)
}

// DisplaySummary prints the folder and file totals for the kinds in scope.
func (s *SimpleUI) DisplaySummary(ctx context.Context, summary Summary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if !summary.ShowFolders && !summary.ShowFiles {
		return nil
	}

	s.printf("\n%s", renderSummaryTable(summary))

	return nil
}

func renderSummaryTable(summary Summary) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Kind", "Total", "Matching pattern"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoFormatHeaders(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT})

	if summary.ShowFolders {
		table.Append([]string{"Folders", strconv.Itoa(summary.TotalFolders), strconv.Itoa(summary.FoldersMatching)})
	}

	if summary.ShowFiles {
		table.Append([]string{"Files", strconv.Itoa(summary.TotalFiles), strconv.Itoa(summary.FilesMatching)})
	}

	table.Render()

	return tableBuffer.String()
}

// DisplayDiff prints a unified diff between two directory listings.
func (s *SimpleUI) DisplayDiff(ctx context.Context, before, after []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        toLines(before),
		B:        toLines(after),
		FromFile: "before",
		ToFile:   "after",
		Context:  1,
	})
	if err != nil {
		return fmt.Errorf("render diff: %w", err)
	}

	if diff == "" {
		s.printf("\nNo changes.\n")
		return nil
	}

	s.printf("\n")

	for _, line := range strings.SplitAfter(diff, "\n") {
		if line == "" {
			continue
		}

		s.printf("%s\n", s.diffStyle(line).Render(strings.TrimSuffix(line, "\n")))
	}

	return nil
}

func (s *SimpleUI) diffStyle(line string) lipgloss.Style {
	style := s.style()

	switch {
	case strings.HasPrefix(line, "---"), strings.HasPrefix(line, "+++"):
		return style.Bold(true)
	case strings.HasPrefix(line, "@@"):
		return style.Foreground(lipgloss.Color("6"))
	case strings.HasPrefix(line, "-"):
		return style.Foreground(lipgloss.Color("1"))
	case strings.HasPrefix(line, "+"):
		return style.Foreground(lipgloss.Color("2"))
	}

	return style
}

// style returns a lipgloss style bound to the command output. Styling is
// stripped when the palette is disabled.
func (s *SimpleUI) style() lipgloss.Style {
	renderer := lipgloss.NewRenderer(s.cmd.OutOrStdout())
	if s.palette.Enabled() {
		renderer.SetColorProfile(termenv.ANSI)
	} else {
		renderer.SetColorProfile(termenv.Ascii)
	}

	return renderer.NewStyle()
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func toLines(names []string) []string {
	lines := make([]string, 0, len(names))
	for _, name := range names {
		lines = append(lines, name+"\n")
	}

	return lines
}
