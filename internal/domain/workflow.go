// Package domain holds the duplicate detection pipeline: scanning, grouping,
// resolving and removing.
package domain

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"dupes.dev/pkg/dupes/internal/adapter"
	"dupes.dev/pkg/dupes/internal/controller"
	m "dupes.dev/pkg/dupes/internal/model"
)

// ScanArgs contains the arguments shared by the scan and remove workflows.
type ScanArgs struct {
	Root      m.Path
	Exclude   []string // appended to m.DefaultExclusions
	Algorithm m.HashAlgorithm
}

// RemoveArgs contains the arguments for pruning duplicates.
type RemoveArgs struct {
	ScanArgs
	Strategy m.Strategy
	DryRun   bool
	Symlink  bool
}

// Workflow runs the scan and remove pipelines end to end.
type Workflow interface {
	Scan(ctx context.Context, args ScanArgs) error
	Remove(ctx context.Context, args RemoveArgs) error
}

type workflow struct {
	fsAdapter adapter.FSAdapter
	ui        controller.UI
	scanner   Scanner
	executor  Executor
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.FSAdapter,
	ui controller.UI,
	scanner Scanner,
	executor Executor,
) Workflow {
	return &workflow{
		fsAdapter: fsAdapter,
		ui:        ui,
		scanner:   scanner,
		executor:  executor,
	}
}

// Scan reports every duplicate set below args.Root.
func (w *workflow) Scan(ctx context.Context, args ScanArgs) error {
	sets, err := w.collect(ctx, args)
	if err != nil {
		return err
	}

	slog.Info("Scan finished", "root", args.Root, "duplicateSets", len(sets))
	w.ui.DisplayDuplicateSets(ctx, sets)

	return nil
}

// Remove resolves every duplicate set and removes (or reports) the redundant copies.
func (w *workflow) Remove(ctx context.Context, args RemoveArgs) error {
	if !slices.Contains(m.Strategies(), args.Strategy) {
		return fmt.Errorf("%w: %s", m.ErrUnknownStrategy, args.Strategy)
	}

	sets, err := w.collect(ctx, args.ScanArgs)
	if err != nil {
		return err
	}

	if len(sets) == 0 {
		w.ui.DisplayNoDuplicates(ctx)
		return nil
	}

	opts := ExecuteOptions{DryRun: args.DryRun, Symlink: args.Symlink}
	summary := m.RemovalSummary{DryRun: args.DryRun}

	for _, set := range sets {
		if err := ctx.Err(); err != nil {
			w.ui.DisplayRemovalSummary(ctx, summary)
			return fmt.Errorf("remove interrupted: %w", err)
		}

		resolution, err := Resolve(set, args.Strategy)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", set.Fingerprint, err)
		}

		w.ui.DisplayResolution(ctx, resolution)

		for _, action := range w.executor.Execute(resolution, opts) {
			w.ui.DisplayAction(ctx, action)
			summary.Add(action)
		}

		summary.Sets++
	}

	slog.Info("Remove finished",
		"root", args.Root,
		"dryRun", args.DryRun,
		"strategy", args.Strategy.String(),
		"deleted", summary.Deleted(),
		"failed", summary.RemovalFailed+summary.RemovedLinkFailed,
	)
	w.ui.DisplayRemovalSummary(ctx, summary)

	return nil
}

// collect scans, hashes and groups. Files that cannot be read are reported
// and left out; only an unusable root or an interruption is returned as error.
func (w *workflow) collect(ctx context.Context, args ScanArgs) ([]m.DuplicateSet, error) {
	algorithm := args.Algorithm
	if algorithm == "" {
		algorithm = m.DefaultHashAlgorithm
	}

	if _, err := adapter.NewHash(algorithm); err != nil {
		return nil, err
	}

	exclusions := m.NewExclusionSet(args.Exclude...)

	files, err := w.scanner.Files(args.Root, exclusions)
	if err != nil {
		slog.Error("Failed to open scan root", "root", args.Root, "error", err)
		return nil, err
	}

	slog.Info("Scanning directory", "root", args.Root, "exclude", exclusions.Names(), "algorithm", algorithm)
	w.ui.DisplayScanStart(ctx, args.Root)

	var (
		scanned     int
		interrupted error
	)

	hashed := func(yield func(m.HashedFile) bool) {
		for path, walkErr := range files {
			if err := ctx.Err(); err != nil {
				interrupted = err
				return
			}

			if walkErr != nil {
				w.reportAccessError(ctx, path, walkErr)
				continue
			}

			fingerprint, err := w.fsAdapter.HashFile(path, algorithm)
			if err != nil {
				w.reportAccessError(ctx, path, err)
				continue
			}

			scanned++

			slog.Debug("Hashed file", "path", path, "fingerprint", fingerprint)

			if !yield(m.HashedFile{Path: path, Fingerprint: fingerprint}) {
				return
			}
		}
	}

	sets := GroupDuplicates(hashed)

	if interrupted != nil {
		return nil, fmt.Errorf("scan interrupted: %w", interrupted)
	}

	w.ui.DisplayScanSummary(ctx, scanned)

	return sets, nil
}

func (w *workflow) reportAccessError(ctx context.Context, path m.Path, err error) {
	slog.Warn("Skipping unreadable path", "path", path, "error", err)
	w.ui.DisplayAccessError(ctx, path, err)
}
