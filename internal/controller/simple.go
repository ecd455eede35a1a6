package controller

import (
	"bytes"
	"context"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "dupes.dev/pkg/dupes/internal/model"
)

// SimpleUI implements UI by writing plain lines to the command's output.
type SimpleUI struct {
	cmd   *cobra.Command
	theme theme
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd, theme: plainTheme{}}
}

// DisplayScanStart prints the directory being scanned.
func (s *SimpleUI) DisplayScanStart(_ context.Context, root m.Path) {
	s.printf("Scanning directory: %s\n", root)
}

// DisplayAccessError reports a file or directory that could not be read.
func (s *SimpleUI) DisplayAccessError(_ context.Context, path m.Path, err error) {
	s.printf("%s\n", s.theme.Error(fmt.Sprintf("Error accessing %s: %v", path, err)))
}

// DisplayScanSummary prints how many files were hashed.
func (s *SimpleUI) DisplayScanSummary(_ context.Context, scanned int) {
	s.printf("\nScanned %d files.\n", scanned)
}

// DisplayDuplicateSets lists every duplicate set with its members.
func (s *SimpleUI) DisplayDuplicateSets(ctx context.Context, sets []m.DuplicateSet) {
	if len(sets) == 0 {
		s.DisplayNoDuplicates(ctx)
		return
	}

	s.printf("\nFound %d sets of duplicate files:\n\n", len(sets))

	for _, set := range sets {
		s.printf("%s\n", s.theme.Header(set.Fingerprint, fmt.Sprintf("Duplicate set (hash: %s):", set.Fingerprint)))

		for _, path := range set.Paths {
			s.printf("  %s\n", path)
		}

		s.printf("\n")
	}
}

// DisplayNoDuplicates reports an empty result.
func (s *SimpleUI) DisplayNoDuplicates(_ context.Context) {
	s.printf("No duplicate files found.\n")
}

// DisplayResolution prints the set header and the retained file.
func (s *SimpleUI) DisplayResolution(_ context.Context, resolution m.Resolution) {
	s.printf("\n%s\n", s.theme.Header(resolution.Fingerprint, fmt.Sprintf("For duplicate set (hash: %s):", resolution.Fingerprint)))
	s.printf("  %s\n", s.theme.Keep(fmt.Sprintf("Keeping: %s", resolution.Keep)))
}

// DisplayAction prints the lines describing one removal.
func (s *SimpleUI) DisplayAction(_ context.Context, action m.Action) {
	for _, line := range s.actionLines(action) {
		s.printf("  %s\n", line)
	}
}

func (s *SimpleUI) actionLines(action m.Action) []string {
	removed := s.theme.Remove(fmt.Sprintf("Removed: %s", action.Path))

	switch action.State {
	case m.Reported:
		if action.Symlink {
			return []string{s.theme.Remove(fmt.Sprintf("Would remove %s and create symlink to %s", action.Path, action.Keep))}
		}

		return []string{s.theme.Remove(fmt.Sprintf("Would remove %s", action.Path))}
	case m.Removed:
		return []string{removed}
	case m.Linked:
		return []string{removed, s.theme.Keep(fmt.Sprintf("Created symlink from %s to %s", action.Path, action.LinkTarget))}
	case m.RemovedLinkFailed:
		return []string{removed, s.theme.Error(fmt.Sprintf("Error creating symlink from %s to %s: %v", action.Path, action.LinkTarget, action.Err))}
	case m.RemovalFailed:
		return []string{s.theme.Error(fmt.Sprintf("Error removing %s: %v", action.Path, action.Err))}
	case m.Planned:
	}

	return nil
}

// DisplayRemovalSummary renders the per-state totals as a table.
func (s *SimpleUI) DisplayRemovalSummary(_ context.Context, summary m.RemovalSummary) {
	s.printf("\n%s", renderSummaryTable(summary))
}

func renderSummaryTable(summary m.RemovalSummary) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Outcome", "Files"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	table.Append([]string{"Duplicate sets", fmt.Sprintf("%d", summary.Sets)})

	total := summary.Reported

	if summary.DryRun {
		table.Append([]string{"Would remove", fmt.Sprintf("%d", summary.Reported)})
	} else {
		total = summary.Deleted() + summary.RemovalFailed

		table.Append([]string{"Removed", fmt.Sprintf("%d", summary.Removed)})
		table.Append([]string{"Replaced by symlink", fmt.Sprintf("%d", summary.Linked)})
		table.Append([]string{"Symlink failed", fmt.Sprintf("%d", summary.RemovedLinkFailed)})
		table.Append([]string{"Removal failed", fmt.Sprintf("%d", summary.RemovalFailed)})
	}

	table.SetFooter([]string{"Total", fmt.Sprintf("%d", total)})

	table.Render()

	return tableBuffer.String()
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
