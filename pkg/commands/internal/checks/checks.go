// Package checks holds the input validation shared by the rollback
// and cleanup commands.
package checks

import (
	"github.com/arthur-debert/reldir/pkg/errors"
	"github.com/arthur-debert/reldir/pkg/repository"
	"github.com/arthur-debert/reldir/pkg/types"
)

// ValidateDest verifies the deployment root contract: the destination
// exists and is writable, and holds both the versions directory and
// the current link. Violations return a VALIDATION-coded error whose
// message is surfaced verbatim to the caller.
func ValidateDest(fs types.FS, dest string) error {
	if _, err := fs.Stat(dest); err != nil {
		return errors.Newf(errors.ErrValidation, "destination %q does not exist", dest)
	}

	writable, err := repository.IsWritable(fs, dest)
	if err != nil {
		return errors.Wrapf(err, errors.ErrValidation, "cannot check destination %q", dest)
	}
	if !writable {
		return errors.Newf(errors.ErrValidation, "destination %q is not writable", dest)
	}

	versionsPath := repository.VersionsPath(dest)
	if _, err := fs.Stat(versionsPath); err != nil {
		return errors.Newf(errors.ErrValidation, "versions path %q does not exist", versionsPath)
	}

	currentPath := repository.CurrentPath(dest)
	if _, err := fs.Lstat(currentPath); err != nil {
		return errors.Newf(errors.ErrValidation, "current link %q does not exist", currentPath)
	}

	return nil
}
