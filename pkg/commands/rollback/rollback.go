package rollback

import (
	"fmt"

	"github.com/arthur-debert/reldir/pkg/commands/internal/checks"
	"github.com/arthur-debert/reldir/pkg/errors"
	"github.com/arthur-debert/reldir/pkg/filesystem"
	"github.com/arthur-debert/reldir/pkg/logging"
	"github.com/arthur-debert/reldir/pkg/repository"
	"github.com/arthur-debert/reldir/pkg/types"
)

// RollbackOptions contains options for the rollback command
type RollbackOptions struct {
	// Dest is the deployment root containing versions/ and current
	Dest string

	// Step is how many positions to move toward older releases,
	// measured from the release current points at
	Step int

	// DryRun reports the selected target without touching the link
	DryRun bool
}

// RollbackResult contains the result of the rollback command
type RollbackResult struct {
	types.Result `yaml:",inline"`

	// Previous is the release current pointed at before the swap
	Previous string `json:"previous" yaml:"previous"`

	// Target is the release current points at after the swap
	Target string `json:"target" yaml:"target"`

	// DryRun reports whether the swap was skipped
	DryRun bool `json:"dryRun" yaml:"dryRun"`
}

// Rollback repoints the current link Step positions back in release
// history.
//
// The step is relative to the current position, not to the newest
// release: repeated calls with step 1 walk strictly backward one
// release at a time. Step 0 is a legal re-link to the same release and
// still reports Changed=true, since a swap was performed. The call
// fails before any mutation when current already names the oldest
// release, or when the requested step lands past the end of the list.
func Rollback(opts RollbackOptions) (*RollbackResult, error) {
	logger := logging.GetLogger("commands.rollback")
	logger.Debug().
		Str("dest", opts.Dest).
		Int("step", opts.Step).
		Bool("dryRun", opts.DryRun).
		Msg("Starting rollback")

	if opts.Step < 0 {
		return nil, errors.Newf(errors.ErrValidation, "step must be non-negative, got %d", opts.Step)
	}

	fs := filesystem.NewOS()
	if err := checks.ValidateDest(fs, opts.Dest); err != nil {
		return nil, err
	}

	repo := repository.New(fs)
	versionsPath := repository.VersionsPath(opts.Dest)
	currentPath := repository.CurrentPath(opts.Dest)

	releases, err := repo.List(versionsPath)
	if err != nil {
		return nil, err
	}

	target, err := repo.CurrentTarget(currentPath)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, release := range releases {
		if release.Name == target {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, errors.New(errors.ErrState, "current version not found in versions dir")
	}

	if idx+1 == len(releases) {
		return nil, errors.New(errors.ErrState, "current version is linked to last available version")
	}
	if idx+opts.Step >= len(releases) {
		return nil, errors.New(errors.ErrState, "new version index is outside of available version list")
	}

	next := releases[idx+opts.Step]

	if opts.DryRun {
		logger.Info().
			Str("from", target).
			Str("to", next.Name).
			Msg("Dry run, current link untouched")
		return &RollbackResult{
			Result: types.Result{
				Changed: false,
				Message: fmt.Sprintf("would move current from %s to %s", target, next.Name),
			},
			Previous: target,
			Target:   next.Name,
			DryRun:   true,
		}, nil
	}

	if err := repo.SwapCurrent(currentPath, versionsPath, next.Name); err != nil {
		return nil, err
	}

	logger.Info().
		Str("from", target).
		Str("to", next.Name).
		Msg("Rolled back current link")

	return &RollbackResult{
		Result: types.Result{
			Changed: true,
			Message: fmt.Sprintf("current moved from %s to %s", target, next.Name),
		},
		Previous: target,
		Target:   next.Name,
	}, nil
}
