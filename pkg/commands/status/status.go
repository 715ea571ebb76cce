package status

import (
	"fmt"
	"time"

	"github.com/arthur-debert/reldir/pkg/errors"
	"github.com/arthur-debert/reldir/pkg/filesystem"
	"github.com/arthur-debert/reldir/pkg/logging"
	"github.com/arthur-debert/reldir/pkg/repository"
)

// StatusOptions contains options for the status command
type StatusOptions struct {
	// Dest is the deployment root containing versions/ and current
	Dest string
}

// ReleaseStatus is one row of the listing.
type ReleaseStatus struct {
	Name    string    `json:"name" yaml:"name"`
	ModTime time.Time `json:"modTime" yaml:"modTime"`

	// Current marks the release the current link resolves to
	Current bool `json:"current" yaml:"current"`
}

// StatusResult contains the result of the status command
type StatusResult struct {
	// Releases is the full ordering, newest first
	Releases []ReleaseStatus `json:"releases" yaml:"releases"`

	// CurrentTarget is the name the current link resolves to, empty
	// when the link is missing
	CurrentTarget string `json:"currentTarget,omitempty" yaml:"currentTarget,omitempty"`

	// Dangling is true when current resolves to a name not present
	// under versions/
	Dangling bool `json:"dangling,omitempty" yaml:"dangling,omitempty"`

	Message string `json:"message" yaml:"message"`
}

// Status lists the release ordering and where current points. It is
// read-only and tolerates layouts the mutating commands reject: a
// missing or dangling current link is reported in the result rather
// than failing the call.
func Status(opts StatusOptions) (*StatusResult, error) {
	logger := logging.GetLogger("commands.status")
	logger.Debug().Str("dest", opts.Dest).Msg("Starting status")

	fs := filesystem.NewOS()
	if _, err := fs.Stat(opts.Dest); err != nil {
		return nil, errors.Newf(errors.ErrValidation, "destination %q does not exist", opts.Dest)
	}

	repo := repository.New(fs)

	releases, err := repo.List(repository.VersionsPath(opts.Dest))
	if err != nil {
		return nil, err
	}

	result := &StatusResult{Releases: make([]ReleaseStatus, len(releases))}
	for i, release := range releases {
		result.Releases[i] = ReleaseStatus{Name: release.Name, ModTime: release.ModTime}
	}

	current, err := repo.CurrentTarget(repository.CurrentPath(opts.Dest))
	if err != nil {
		result.Message = fmt.Sprintf("%d release(s), current link missing", len(releases))
		return result, nil
	}

	result.CurrentTarget = current
	result.Dangling = true
	for i := range result.Releases {
		if result.Releases[i].Name == current {
			result.Releases[i].Current = true
			result.Dangling = false
			break
		}
	}

	if result.Dangling {
		result.Message = fmt.Sprintf("%d release(s), current dangles at %s", len(releases), current)
	} else {
		result.Message = fmt.Sprintf("%d release(s), current at %s", len(releases), current)
	}

	return result, nil
}
