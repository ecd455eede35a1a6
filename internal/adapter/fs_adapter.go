// Package adapter contains the filesystem adapter used by the duplicate finder.
package adapter

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"

	m "dupes.dev/pkg/dupes/internal/model"
)

// ErrNotDirectory is returned when a scan root exists but is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// FSAdapter abstracts the filesystem operations the domain layer relies on
// when scanning and pruning a tree. It hides direct `os` access so the
// workflow logic can be tested against an in-memory filesystem.
type FSAdapter interface {
	// Stat returns metadata for path, following symbolic links.
	Stat(path m.Path) (os.FileInfo, error)

	// Walk traverses root depth-first. Regular files of a directory are
	// visited before its subdirectories; directories whose base name is in
	// exclusions are never read. Symbolic links and other non-regular entries
	// are skipped. A directory that cannot be read is passed to fn with its
	// error, and its subtree is skipped when fn returns nil.
	Walk(root m.Path, exclusions m.ExclusionSet, fn WalkFunc) error

	// HashFile returns the content fingerprint of the file at path.
	HashFile(path m.Path, algorithm m.HashAlgorithm) (m.Fingerprint, error)

	// Remove deletes a single file.
	Remove(path m.Path) error

	// Symlink creates link pointing at target. target is stored verbatim.
	Symlink(target, link m.Path) error

	// RelPath returns target expressed relative to base.
	RelPath(base, target m.Path) (m.Path, error)

	// Dir returns the parent directory of path.
	Dir(path m.Path) m.Path
}

// WalkFunc is called for every regular file found by Walk, and for every
// directory that could not be read (with a non-nil err and nil info).
// Returning an error stops the walk and Walk returns that error.
type WalkFunc func(path m.Path, info os.FileInfo, err error) error

// LocalFSAdapter implements FSAdapter on top of a go-billy filesystem.
type LocalFSAdapter struct {
	fs billy.Filesystem
}

// NewLocalFSAdapter returns an adapter backed by the native filesystem.
// Paths are used as given, relative paths resolve against the working directory.
func NewLocalFSAdapter() *LocalFSAdapter {
	return NewFSAdapter(&nativeFS{})
}

// NewFSAdapter wraps an arbitrary billy filesystem, e.g. memfs in tests.
func NewFSAdapter(fsys billy.Filesystem) *LocalFSAdapter {
	return &LocalFSAdapter{fs: fsys}
}

// Stat returns os.FileInfo metadata for the given path.
func (a *LocalFSAdapter) Stat(path m.Path) (os.FileInfo, error) {
	return a.fs.Stat(string(path))
}

// Walk visits the regular files below root. An unreadable root is passed
// to fn like any other unreadable directory.
func (a *LocalFSAdapter) Walk(root m.Path, exclusions m.ExclusionSet, fn WalkFunc) error {
	return a.walkDir(root, exclusions, fn)
}

func (a *LocalFSAdapter) walkDir(dir m.Path, exclusions m.ExclusionSet, fn WalkFunc) error {
	entries, err := a.fs.ReadDir(string(dir))
	if err != nil {
		return fn(dir, nil, err)
	}

	var subdirs []m.Path

	for _, entry := range entries {
		path := m.Path(a.fs.Join(string(dir), entry.Name()))

		switch {
		case entry.IsDir():
			if exclusions.Contains(entry.Name()) {
				slog.Debug("Skipping excluded directory", "path", path)
				continue
			}

			subdirs = append(subdirs, path)
		case entry.Mode().IsRegular():
			if err := fn(path, entry, nil); err != nil {
				return err
			}
		default:
			slog.Debug("Skipping non-regular entry", "path", path, "mode", entry.Mode().String())
		}
	}

	for _, subdir := range subdirs {
		if err := a.walkDir(subdir, exclusions, fn); err != nil {
			return err
		}
	}

	return nil
}

// HashFile streams the file at path through the selected digest.
func (a *LocalFSAdapter) HashFile(path m.Path, algorithm m.HashAlgorithm) (m.Fingerprint, error) {
	f, err := a.fs.Open(string(path))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	fingerprint, err := HashReader(f, algorithm)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	return fingerprint, nil
}

// Remove deletes the file at path.
func (a *LocalFSAdapter) Remove(path m.Path) error {
	return a.fs.Remove(string(path))
}

// Symlink creates a symbolic link at link pointing to target.
func (a *LocalFSAdapter) Symlink(target, link m.Path) error {
	return a.fs.Symlink(string(target), string(link))
}

// RelPath returns the relative path from base to target.
func (a *LocalFSAdapter) RelPath(base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(rel), nil
}

// Dir returns all but the last element of path.
func (a *LocalFSAdapter) Dir(path m.Path) m.Path {
	return m.Path(filepath.Dir(string(path)))
}

// nativeFS is a billy.Filesystem that passes paths straight to the OS
// instead of resolving them below a chroot.
type nativeFS struct {
	osfs.ChrootOS
}

// Chroot returns a new filesystem rooted at the provided path.
//
//nolint:ireturn // billy.Filesystem is an interface; signature is dictated by upstream.
func (n *nativeFS) Chroot(path string) (billy.Filesystem, error) {
	return osfs.New(path), nil
}

// Root returns the root path for this filesystem.
func (n *nativeFS) Root() string {
	return string(filepath.Separator)
}
