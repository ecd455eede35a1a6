package domain

import (
	"bytes"
	"os"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"dupes.dev/pkg/dupes/internal/adapter"
	"dupes.dev/pkg/dupes/internal/controller"
	m "dupes.dev/pkg/dupes/internal/model"
)

// newMemTree builds an in-memory filesystem holding the given path -> content files.
func newMemTree(t *testing.T, files map[string]string) billy.Filesystem {
	t.Helper()

	fsys := memfs.New()

	for path, content := range files {
		require.NoError(t, util.WriteFile(fsys, path, []byte(content), 0o644))
	}

	return fsys
}

func newBufferedUI() (controller.UI, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	return controller.NewSimpleUI(cmd), &buf
}

func newTestWorkflow(fsAdapter adapter.FSAdapter, ui controller.UI) Workflow {
	return NewWorkflow(fsAdapter, ui, NewScanner(fsAdapter), NewExecutor(fsAdapter))
}

// faultyFS wraps a working adapter and injects failures for selected paths.
type faultyFS struct {
	adapter.FSAdapter

	hashErrs       map[m.Path]error
	removeErrs     map[m.Path]error
	unreadableDirs map[m.Path]error
	symlinkErr     error
	relErr         error
}

func (f *faultyFS) Walk(root m.Path, exclusions m.ExclusionSet, fn adapter.WalkFunc) error {
	for dir, err := range f.unreadableDirs {
		if walkErr := fn(dir, nil, err); walkErr != nil {
			return walkErr
		}
	}

	return f.FSAdapter.Walk(root, exclusions, fn)
}

func (f *faultyFS) HashFile(path m.Path, algorithm m.HashAlgorithm) (m.Fingerprint, error) {
	if err, ok := f.hashErrs[path]; ok {
		return "", err
	}

	return f.FSAdapter.HashFile(path, algorithm)
}

func (f *faultyFS) Remove(path m.Path) error {
	if err, ok := f.removeErrs[path]; ok {
		return err
	}

	return f.FSAdapter.Remove(path)
}

func (f *faultyFS) Symlink(target, link m.Path) error {
	if f.symlinkErr != nil {
		return f.symlinkErr
	}

	return f.FSAdapter.Symlink(target, link)
}

func (f *faultyFS) RelPath(base, target m.Path) (m.Path, error) {
	if f.relErr != nil {
		return "", f.relErr
	}

	return f.FSAdapter.RelPath(base, target)
}

func exists(t *testing.T, fsys billy.Filesystem, path string) bool {
	t.Helper()

	_, err := fsys.Lstat(path)
	if os.IsNotExist(err) {
		return false
	}

	require.NoError(t, err)

	return true
}
