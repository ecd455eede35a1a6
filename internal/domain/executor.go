package domain

import (
	"fmt"
	"log/slog"

	"dupes.dev/pkg/dupes/internal/adapter"
	m "dupes.dev/pkg/dupes/internal/model"
)

// ExecuteOptions controls how a resolution is applied.
type ExecuteOptions struct {
	DryRun  bool
	Symlink bool
}

// Executor applies a Resolution file by file. A failure on one file is
// recorded in its Action and never stops the remaining files.
type Executor interface {
	Execute(resolution m.Resolution, opts ExecuteOptions) []m.Action
}

type executor struct {
	fsAdapter adapter.FSAdapter
}

// NewExecutor constructs an Executor backed by the provided filesystem adapter.
func NewExecutor(fsAdapter adapter.FSAdapter) Executor {
	return &executor{fsAdapter: fsAdapter}
}

func (e *executor) Execute(resolution m.Resolution, opts ExecuteOptions) []m.Action {
	actions := make([]m.Action, 0, len(resolution.Remove))

	for _, path := range resolution.Remove {
		action := e.plan(resolution.Keep, path, opts)
		actions = append(actions, e.apply(action, opts))
	}

	return actions
}

func (e *executor) plan(keep, path m.Path, opts ExecuteOptions) m.Action {
	action := m.Action{
		Path:    path,
		Keep:    keep,
		Symlink: opts.Symlink,
		State:   m.Planned,
	}

	if opts.Symlink {
		target, err := e.fsAdapter.RelPath(e.fsAdapter.Dir(path), keep)
		if err != nil {
			action.Err = fmt.Errorf("resolve link target: %w", err)
			return action
		}

		action.LinkTarget = target
	}

	return action
}

func (e *executor) apply(action m.Action, opts ExecuteOptions) m.Action {
	// A link target that cannot be computed leaves the file untouched.
	if action.Err != nil {
		slog.Error("Failed to plan removal", "path", action.Path, "keep", action.Keep, "error", action.Err)
		action.State = m.RemovalFailed

		return action
	}

	if opts.DryRun {
		slog.Debug("Dry run, not removing", "path", action.Path, "keep", action.Keep, "symlink", opts.Symlink)
		action.State = m.Reported

		return action
	}

	if err := e.fsAdapter.Remove(action.Path); err != nil {
		slog.Error("Failed to remove duplicate", "path", action.Path, "error", err)
		action.State = m.RemovalFailed
		action.Err = err

		return action
	}

	slog.Info("Removed duplicate", "path", action.Path, "keep", action.Keep)

	if !opts.Symlink {
		action.State = m.Removed
		return action
	}

	if err := e.fsAdapter.Symlink(action.LinkTarget, action.Path); err != nil {
		slog.Error("Failed to create symlink", "path", action.Path, "target", action.LinkTarget, "error", err)
		action.State = m.RemovedLinkFailed
		action.Err = err

		return action
	}

	slog.Info("Created symlink", "path", action.Path, "target", action.LinkTarget)
	action.State = m.Linked

	return action
}
