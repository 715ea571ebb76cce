package status_test

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/reldir/pkg/commands/status"
	"github.com/arthur-debert/reldir/pkg/errors"
	"github.com/arthur-debert/reldir/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_ListsNewestFirst(t *testing.T) {
	root := testutil.NewDeployRoot(t)
	root.SeedReleases(t, "v1", "v2", "v3")
	root.SetCurrent(t, "v2")

	result, err := status.Status(status.StatusOptions{Dest: root.Dest})

	require.NoError(t, err)
	require.Len(t, result.Releases, 3)
	assert.Equal(t, "v3", result.Releases[0].Name)
	assert.Equal(t, "v2", result.Releases[1].Name)
	assert.Equal(t, "v1", result.Releases[2].Name)

	assert.Equal(t, "v2", result.CurrentTarget)
	assert.False(t, result.Releases[0].Current)
	assert.True(t, result.Releases[1].Current)
	assert.False(t, result.Dangling)
	assert.Contains(t, result.Message, "current at v2")
}

func TestStatus_MissingCurrentLink(t *testing.T) {
	root := testutil.NewDeployRoot(t)
	root.SeedReleases(t, "v1")

	result, err := status.Status(status.StatusOptions{Dest: root.Dest})

	require.NoError(t, err)
	assert.Empty(t, result.CurrentTarget)
	assert.Contains(t, result.Message, "current link missing")
}

func TestStatus_DanglingCurrent(t *testing.T) {
	root := testutil.NewDeployRoot(t)
	root.SeedReleases(t, "v1", "v2")
	root.SetCurrentDangling(t, "gone")

	result, err := status.Status(status.StatusOptions{Dest: root.Dest})

	require.NoError(t, err)
	assert.Equal(t, "gone", result.CurrentTarget)
	assert.True(t, result.Dangling)
	assert.Contains(t, result.Message, "dangles at gone")
}

func TestStatus_MissingDest(t *testing.T) {
	_, err := status.Status(status.StatusOptions{Dest: filepath.Join(t.TempDir(), "nope")})

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrValidation))
}

func TestStatus_MissingVersionsDir(t *testing.T) {
	dest := t.TempDir()

	_, err := status.Status(status.StatusOptions{Dest: dest})

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}
