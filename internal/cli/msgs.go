package cli

// Message constants
const (
	MsgRootLong = `reldir manages a releases directory deployment layout: a destination
containing a versions/ directory with one entry per deployed release and
a current symlink naming the active one.

It can roll the current link back through release history and clean up
old releases under a retention policy.`

	MsgRollbackShort = "Point current at an older release"
	MsgRollbackLong  = `Rollback moves the current link backward through release history.

Releases are ordered by modification time, newest first. The step is
counted from the release current points at, so repeated rollbacks with
step 1 walk strictly backward one release at a time. The command fails
without touching anything when current already names the oldest release
or when the step would move past it.`
	MsgRollbackExample = `  # Move current one release back
  reldir rollback /srv/app

  # Move current two releases back
  reldir rollback --step 2 /srv/app

  # Preview without touching the link
  reldir rollback --dry-run /srv/app`

	MsgCleanupShort = "Delete releases beyond the retention window"
	MsgCleanupLong  = `Cleanup deletes old releases, keeping the most recent ones.

Every release past the newest --keep-releases entries is a deletion
candidate. With --keep-current (the default) the release current points
at is spared even when it falls outside the window. All candidates are
checked for writability before anything is deleted; once deletion
starts, each candidate is removed independently and one failure does
not stop the rest.

Note the exit contract: a run where some deletions fail still exits 0
and reports changed=false with the failures listed. Inspect the failed
list, not just the changed flag, to tell partial success from a no-op.`
	MsgCleanupExample = `  # Keep the five newest releases plus the current one
  reldir cleanup /srv/app

  # Keep only the two newest, even dropping the current release
  reldir cleanup --keep-releases 2 --keep-current=false /srv/app

  # Preview the deletion set
  reldir cleanup --dry-run /srv/app`

	MsgStatusShort = "List releases and where current points"
	MsgStatusLong  = `Status lists every release newest first, marking the one the current
link resolves to. It never mutates anything and tolerates a missing or
dangling current link, reporting it instead of failing.`
	MsgStatusExample = `  # Show the release history of a deployment
  reldir status /srv/app

  # Machine-readable listing
  reldir status --format json /srv/app`
)
