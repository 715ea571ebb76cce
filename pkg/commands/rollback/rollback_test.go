package rollback_test

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/reldir/pkg/commands/rollback"
	"github.com/arthur-debert/reldir/pkg/errors"
	"github.com/arthur-debert/reldir/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRollback_OneStep(t *testing.T) {
	root := testutil.NewDeployRoot(t)
	// Newest first: v5 v4 v3 v2 v1
	root.SeedReleases(t, "v1", "v2", "v3", "v4", "v5")
	root.SetCurrent(t, "v5")

	result, err := rollback.Rollback(rollback.RollbackOptions{Dest: root.Dest, Step: 1})

	require.NoError(t, err)
	assert.True(t, result.Changed)
	assert.Equal(t, "v5", result.Previous)
	assert.Equal(t, "v4", result.Target)
	assert.Contains(t, result.Message, "v4")
	root.AssertCurrent(t, "v4")
}

func TestRollback_StepIsRelativeToCurrent(t *testing.T) {
	root := testutil.NewDeployRoot(t)
	root.SeedReleases(t, "v1", "v2", "v3", "v4", "v5")
	root.SetCurrent(t, "v3") // index 2 in newest-first order

	result, err := rollback.Rollback(rollback.RollbackOptions{Dest: root.Dest, Step: 2})

	require.NoError(t, err)
	assert.Equal(t, "v1", result.Target)
	root.AssertCurrent(t, "v1")
}

func TestRollback_RepeatedCallsWalkBackward(t *testing.T) {
	root := testutil.NewDeployRoot(t)
	root.SeedReleases(t, "v1", "v2", "v3")
	root.SetCurrent(t, "v3")

	_, err := rollback.Rollback(rollback.RollbackOptions{Dest: root.Dest, Step: 1})
	require.NoError(t, err)
	root.AssertCurrent(t, "v2")

	// Not idempotent: the same step from the new position moves
	// further back, never re-targets the same release.
	_, err = rollback.Rollback(rollback.RollbackOptions{Dest: root.Dest, Step: 1})
	require.NoError(t, err)
	root.AssertCurrent(t, "v1")

	_, err = rollback.Rollback(rollback.RollbackOptions{Dest: root.Dest, Step: 1})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrState))
}

func TestRollback_ZeroStepRelinksAndReportsChanged(t *testing.T) {
	root := testutil.NewDeployRoot(t)
	root.SeedReleases(t, "v1", "v2")
	root.SetCurrent(t, "v2")

	result, err := rollback.Rollback(rollback.RollbackOptions{Dest: root.Dest, Step: 0})

	// A swap was performed, even though the target is unchanged.
	require.NoError(t, err)
	assert.True(t, result.Changed)
	assert.Equal(t, "v2", result.Target)
	root.AssertCurrent(t, "v2")
}

func TestRollback_CurrentAtOldestFailsRegardlessOfStep(t *testing.T) {
	root := testutil.NewDeployRoot(t)
	root.SeedReleases(t, "v1", "v2", "v3")
	root.SetCurrent(t, "v1")

	for _, step := range []int{0, 1, 5} {
		_, err := rollback.Rollback(rollback.RollbackOptions{Dest: root.Dest, Step: step})
		require.Error(t, err, "step=%d", step)
		assert.True(t, errors.IsErrorCode(err, errors.ErrState))
		assert.Contains(t, err.Error(), "linked to last available version")
	}
	root.AssertCurrent(t, "v1")
}

func TestRollback_StepPastOldestFails(t *testing.T) {
	root := testutil.NewDeployRoot(t)
	// 5 releases, current at index 2, step 3: 2+3=5 is out of range.
	root.SeedReleases(t, "v1", "v2", "v3", "v4", "v5")
	root.SetCurrent(t, "v3")

	_, err := rollback.Rollback(rollback.RollbackOptions{Dest: root.Dest, Step: 3})

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrState))
	assert.Contains(t, err.Error(), "outside of available version list")
	root.AssertCurrent(t, "v3")
}

func TestRollback_CurrentNotInVersionsDir(t *testing.T) {
	root := testutil.NewDeployRoot(t)
	root.SeedReleases(t, "v1", "v2")
	root.SetCurrentDangling(t, "gone")

	_, err := rollback.Rollback(rollback.RollbackOptions{Dest: root.Dest, Step: 1})

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrState))
	assert.Contains(t, err.Error(), "current version not found in versions dir")
}

func TestRollback_NegativeStep(t *testing.T) {
	root := testutil.NewDeployRoot(t)
	root.SeedReleases(t, "v1", "v2")
	root.SetCurrent(t, "v2")

	_, err := rollback.Rollback(rollback.RollbackOptions{Dest: root.Dest, Step: -1})

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrValidation))
	root.AssertCurrent(t, "v2")
}

func TestRollback_MissingDest(t *testing.T) {
	_, err := rollback.Rollback(rollback.RollbackOptions{
		Dest: filepath.Join(t.TempDir(), "nope"),
		Step: 1,
	})

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrValidation))
}

func TestRollback_MissingCurrentLink(t *testing.T) {
	root := testutil.NewDeployRoot(t)
	root.SeedReleases(t, "v1")

	_, err := rollback.Rollback(rollback.RollbackOptions{Dest: root.Dest, Step: 1})

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrValidation))
}

func TestRollback_DryRun(t *testing.T) {
	root := testutil.NewDeployRoot(t)
	root.SeedReleases(t, "v1", "v2", "v3")
	root.SetCurrent(t, "v3")

	result, err := rollback.Rollback(rollback.RollbackOptions{Dest: root.Dest, Step: 1, DryRun: true})

	require.NoError(t, err)
	assert.False(t, result.Changed)
	assert.True(t, result.DryRun)
	assert.Equal(t, "v2", result.Target)
	root.AssertCurrent(t, "v3")
}
