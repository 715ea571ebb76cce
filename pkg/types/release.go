package types

import "time"

// Release is one entry under the versions directory. Releases are
// immutable from reldir's perspective except for deletion.
type Release struct {
	// Name is the directory-entry name identifying the release
	Name string `json:"name" yaml:"name"`

	// ModTime is the last-modification timestamp, the primary
	// ordering key (newest first)
	ModTime time.Time `json:"modTime" yaml:"modTime"`
}

// Result is the common shape every mutating command reports back.
//
// Changed is true only when a mutation was performed and fully
// succeeded. Cleanup deliberately reports Changed=false both when
// there was nothing to delete and when some deletions failed; callers
// must inspect the failure list on the command result to tell partial
// success from a no-op.
type Result struct {
	Changed bool   `json:"changed" yaml:"changed"`
	Message string `json:"message" yaml:"message"`
}
