// Package controller provides output adapters for displaying duplicate scan and removal results.
package controller

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "dupes.dev/pkg/dupes/internal/model"
)

// UI defines how scan and removal progress is reported to the user.
// Implementations can use different output methods (plain text, styled text, etc).
type UI interface {
	DisplayScanStart(ctx context.Context, root m.Path)
	DisplayAccessError(ctx context.Context, path m.Path, err error)
	DisplayScanSummary(ctx context.Context, scanned int)
	DisplayDuplicateSets(ctx context.Context, sets []m.DuplicateSet)
	DisplayNoDuplicates(ctx context.Context)
	DisplayResolution(ctx context.Context, resolution m.Resolution)
	DisplayAction(ctx context.Context, action m.Action)
	DisplayRemovalSummary(ctx context.Context, summary m.RemovalSummary)
}

// NewUI picks the styled UI for terminals and the plain one otherwise.
//
//nolint:ireturn // callers only need the UI behaviour.
func NewUI(cmd *cobra.Command, isTTY bool) UI {
	if isTTY {
		return NewStyledUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
