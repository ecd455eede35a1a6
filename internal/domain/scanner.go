package domain

import (
	"errors"
	"fmt"
	"iter"
	"os"

	"dupes.dev/pkg/dupes/internal/adapter"
	m "dupes.dev/pkg/dupes/internal/model"
)

// Scanner turns a directory tree into a lazy sequence of regular file paths.
type Scanner interface {
	// Files validates root and returns the sequence of files below it.
	// A non-nil error means the root itself is unusable. Per-entry problems
	// (unreadable subdirectories) are yielded as (path, err) and the walk
	// carries on with the next entry.
	Files(root m.Path, exclusions m.ExclusionSet) (iter.Seq2[m.Path, error], error)
}

type scanner struct {
	fsAdapter adapter.FSAdapter
}

// NewScanner constructs a Scanner over the provided filesystem adapter.
func NewScanner(fsAdapter adapter.FSAdapter) Scanner {
	return &scanner{fsAdapter: fsAdapter}
}

var errStopWalk = errors.New("walk stopped by consumer")

func (s *scanner) Files(root m.Path, exclusions m.ExclusionSet) (iter.Seq2[m.Path, error], error) {
	info, err := s.fsAdapter.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("invalid directory %s: %w", root, err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("invalid directory %s: %w", root, adapter.ErrNotDirectory)
	}

	return func(yield func(m.Path, error) bool) {
		// The walk only fails with errStopWalk; a root that vanished after
		// validation reaches the callback as an unreadable directory.
		_ = s.fsAdapter.Walk(root, exclusions, func(path m.Path, _ os.FileInfo, err error) error {
			if !yield(path, err) {
				return errStopWalk
			}

			return nil
		})
	}, nil
}
