package cleanup

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/reldir/pkg/commands/internal/checks"
	"github.com/arthur-debert/reldir/pkg/errors"
	"github.com/arthur-debert/reldir/pkg/filesystem"
	"github.com/arthur-debert/reldir/pkg/logging"
	"github.com/arthur-debert/reldir/pkg/repository"
	"github.com/arthur-debert/reldir/pkg/types"
)

// CleanupOptions contains options for the cleanup command
type CleanupOptions struct {
	// Dest is the deployment root containing versions/ and current
	Dest string

	// KeepReleases is the number of most-recent releases to retain
	KeepReleases int

	// KeepCurrent additionally spares whatever release the current
	// link resolves to, even when it falls outside the keep window
	KeepCurrent bool

	// DryRun reports the deletion set without removing anything
	DryRun bool
}

// Failure records one candidate that could not be removed.
type Failure struct {
	Path  string `json:"path" yaml:"path"`
	Error string `json:"error" yaml:"error"`
}

// CleanupResult contains the result of the cleanup command.
//
// Changed is true only when at least one release was removed and none
// failed. A run with failures therefore reports Changed=false even
// when other candidates were removed; inspect Failed to tell partial
// success from "nothing to do".
type CleanupResult struct {
	types.Result `yaml:",inline"`

	// Removed names the releases that were deleted
	Removed []string `json:"removed" yaml:"removed"`

	// Failed lists the candidates whose deletion failed
	Failed []Failure `json:"failed,omitempty" yaml:"failed,omitempty"`

	// DryRun reports whether deletions were skipped
	DryRun bool `json:"dryRun" yaml:"dryRun"`
}

// Cleanup deletes every release beyond the retention window.
//
// Candidates are all releases past the KeepReleases newest ones.
// Before anything is deleted, every candidate is checked for
// writability; a single unwritable candidate aborts the whole run with
// no deletions. Once deletion starts, each candidate is attempted
// independently and failures do not stop the rest.
func Cleanup(opts CleanupOptions) (*CleanupResult, error) {
	logger := logging.GetLogger("commands.cleanup")
	logger.Debug().
		Str("dest", opts.Dest).
		Int("keepReleases", opts.KeepReleases).
		Bool("keepCurrent", opts.KeepCurrent).
		Bool("dryRun", opts.DryRun).
		Msg("Starting cleanup")

	if opts.KeepReleases < 0 {
		return nil, errors.Newf(errors.ErrValidation, "keep-releases must be non-negative, got %d", opts.KeepReleases)
	}

	fs := filesystem.NewOS()
	if err := checks.ValidateDest(fs, opts.Dest); err != nil {
		return nil, err
	}

	repo := repository.New(fs)
	versionsPath := repository.VersionsPath(opts.Dest)

	releases, err := repo.List(versionsPath)
	if err != nil {
		return nil, err
	}

	var candidates []types.Release
	if opts.KeepReleases < len(releases) {
		candidates = releases[opts.KeepReleases:]
	}

	if opts.KeepCurrent && len(candidates) > 0 {
		current, err := repo.CurrentTarget(repository.CurrentPath(opts.Dest))
		if err != nil {
			return nil, err
		}
		kept := candidates[:0:0]
		for _, candidate := range candidates {
			if candidate.Name == current {
				logger.Debug().Str("release", current).Msg("Sparing current release")
				continue
			}
			kept = append(kept, candidate)
		}
		candidates = kept
	}

	if len(candidates) == 0 {
		return &CleanupResult{
			Result:  types.Result{Changed: false, Message: "no releases to remove"},
			Removed: []string{},
			DryRun:  opts.DryRun,
		}, nil
	}

	// All-or-nothing pre-check: refuse to start a deletion batch that
	// is known to fail partway.
	for _, candidate := range candidates {
		path := filepath.Join(versionsPath, candidate.Name)
		writable, err := repository.IsWritable(fs, path)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrPermission, "cannot check release %q", path)
		}
		if !writable {
			return nil, errors.Newf(errors.ErrPermission, "release %q is not writable", path)
		}
	}

	if opts.DryRun {
		names := releaseNames(candidates)
		logger.Info().Strs("releases", names).Msg("Dry run, nothing removed")
		return &CleanupResult{
			Result: types.Result{
				Changed: false,
				Message: fmt.Sprintf("would remove %d release(s): %s", len(names), strings.Join(names, ", ")),
			},
			Removed: []string{},
			DryRun:  true,
		}, nil
	}

	removed := []string{}
	var failed []Failure
	for _, candidate := range candidates {
		path := filepath.Join(versionsPath, candidate.Name)
		if err := fs.RemoveAll(path); err != nil {
			logger.Error().Err(err).Str("release", candidate.Name).Msg("Failed to remove release")
			failed = append(failed, Failure{Path: path, Error: err.Error()})
			continue
		}
		logger.Debug().Str("release", candidate.Name).Msg("Removed release")
		removed = append(removed, candidate.Name)
	}

	result := &CleanupResult{
		Result: types.Result{
			Changed: len(removed) > 0 && len(failed) == 0,
			Message: cleanupMessage(removed, failed),
		},
		Removed: removed,
		Failed:  failed,
	}

	logger.Info().
		Int("removed", len(removed)).
		Int("failed", len(failed)).
		Bool("changed", result.Changed).
		Msg("Cleanup finished")

	return result, nil
}

func releaseNames(releases []types.Release) []string {
	names := make([]string, len(releases))
	for i, release := range releases {
		names[i] = release.Name
	}
	return names
}

func cleanupMessage(removed []string, failed []Failure) string {
	if len(removed) == 0 && len(failed) == 0 {
		return "no releases to remove"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "removed %d release(s)", len(removed))
	if len(removed) > 0 {
		fmt.Fprintf(&b, ": %s", strings.Join(removed, ", "))
	}
	if len(failed) > 0 {
		paths := make([]string, len(failed))
		for i, f := range failed {
			paths[i] = f.Path
		}
		fmt.Fprintf(&b, "; failed to remove %d: %s", len(failed), strings.Join(paths, ", "))
	}
	return b.String()
}
