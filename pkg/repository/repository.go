// Package repository owns the releases-directory layout convention: a
// deployment root containing a versions directory with one entry per
// release and a current symlink naming the active one. It produces the
// release ordering and performs the symlink swap; retention and
// rollback selection live in pkg/commands.
package repository

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/arthur-debert/reldir/pkg/errors"
	"github.com/arthur-debert/reldir/pkg/logging"
	"github.com/arthur-debert/reldir/pkg/types"
)

// Layout names inside the deployment root.
const (
	// VersionsDir is the directory holding one entry per release
	VersionsDir = "versions"

	// CurrentLink is the symlink naming the active release
	CurrentLink = "current"
)

// VersionsPath returns the versions directory for a deployment root.
func VersionsPath(dest string) string {
	return filepath.Join(dest, VersionsDir)
}

// CurrentPath returns the current link for a deployment root.
func CurrentPath(dest string) string {
	return filepath.Join(dest, CurrentLink)
}

// Repository reads and mutates a releases directory through types.FS.
type Repository struct {
	fs types.FS
}

// New creates a Repository backed by the given filesystem.
func New(fs types.FS) *Repository {
	return &Repository{fs: fs}
}

// List returns every entry of versionsPath ordered most-recent first.
// Ordering is by modification time descending; entries with identical
// timestamps are ordered by name descending so the result is stable
// across platforms.
func (r *Repository) List(versionsPath string) ([]types.Release, error) {
	logger := logging.GetLogger("repository")

	entries, err := r.fs.ReadDir(versionsPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Newf(errors.ErrNotFound, "versions path %q does not exist", versionsPath)
		}
		return nil, errors.Wrapf(err, errors.ErrInternal, "failed to read versions path %q", versionsPath)
	}

	releases := make([]types.Release, 0, len(entries))
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInternal,
				"failed to stat release %q", filepath.Join(versionsPath, entry.Name()))
		}
		releases = append(releases, types.Release{
			Name:    entry.Name(),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(releases, func(i, j int) bool {
		if !releases[i].ModTime.Equal(releases[j].ModTime) {
			return releases[i].ModTime.After(releases[j].ModTime)
		}
		return releases[i].Name > releases[j].Name
	})

	logger.Debug().
		Str("versionsPath", versionsPath).
		Int("count", len(releases)).
		Msg("Listed releases")

	return releases, nil
}

// CurrentTarget resolves the current link and returns the base name of
// its target. The target is not required to exist: a dangling link
// still yields a name, which the callers then fail to locate in the
// release list.
func (r *Repository) CurrentTarget(currentLink string) (string, error) {
	if _, err := r.fs.Lstat(currentLink); err != nil {
		return "", errors.Wrapf(err, errors.ErrBrokenLink, "current link %q is missing", currentLink)
	}

	target, err := r.fs.Readlink(currentLink)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrBrokenLink, "cannot resolve current link %q", currentLink)
	}

	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(currentLink), target)
	}

	return filepath.Base(target), nil
}

// SwapCurrent repoints the current link at versionsPath/name. The new
// link is created beside the old one and renamed over it, so a
// concurrent reader never observes current as absent.
func (r *Repository) SwapCurrent(currentLink, versionsPath, name string) error {
	logger := logging.GetLogger("repository")

	target := filepath.Join(versionsPath, name)
	staging := currentLink + ".new"

	// A stale staging link from an interrupted run must not block the swap.
	_ = r.fs.Remove(staging)

	if err := r.fs.Symlink(target, staging); err != nil {
		return errors.Wrapf(err, errors.ErrInternal, "failed to create link %q", staging)
	}

	if err := r.fs.Rename(staging, currentLink); err != nil {
		_ = r.fs.Remove(staging)
		return errors.Wrapf(err, errors.ErrInternal, "failed to replace current link %q", currentLink)
	}

	logger.Debug().
		Str("currentLink", currentLink).
		Str("target", target).
		Msg("Swapped current link")

	return nil
}

// IsWritable reports whether path carries the owner write bit. Used by
// the commands to validate the deployment root and to pre-check
// deletion candidates.
func IsWritable(fs types.FS, path string) (bool, error) {
	info, err := fs.Stat(path)
	if err != nil {
		return false, err
	}
	return info.Mode().Perm()&0200 != 0, nil
}
