// Package testutil provides helpers for building releases-directory
// fixtures in tests: deployment roots, release entries with controlled
// modification times, and current-link assertions.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// DeployRoot is a test deployment root with its layout paths resolved.
type DeployRoot struct {
	Dest         string
	VersionsPath string
	CurrentPath  string
}

// NewDeployRoot creates a temporary deployment root containing an
// empty versions directory. Cleaned up when the test completes.
func NewDeployRoot(t *testing.T) *DeployRoot {
	t.Helper()

	dest := t.TempDir()
	versions := filepath.Join(dest, "versions")
	if err := os.MkdirAll(versions, 0755); err != nil {
		t.Fatalf("Failed to create versions dir %s: %v", versions, err)
	}

	return &DeployRoot{
		Dest:         dest,
		VersionsPath: versions,
		CurrentPath:  filepath.Join(dest, "current"),
	}
}

// AddRelease creates a release directory with the given modification
// time and returns its path.
func (d *DeployRoot) AddRelease(t *testing.T, name string, modTime time.Time) string {
	t.Helper()

	path := filepath.Join(d.VersionsPath, name)
	if err := os.MkdirAll(path, 0755); err != nil {
		t.Fatalf("Failed to create release %s: %v", path, err)
	}
	if err := os.Chtimes(path, modTime, modTime); err != nil {
		t.Fatalf("Failed to set mtime on %s: %v", path, err)
	}

	return path
}

// AddReleaseFile creates a release as a plain file rather than a
// directory, with the given modification time.
func (d *DeployRoot) AddReleaseFile(t *testing.T, name string, modTime time.Time) string {
	t.Helper()

	path := filepath.Join(d.VersionsPath, name)
	if err := os.WriteFile(path, []byte(name), 0644); err != nil {
		t.Fatalf("Failed to create release file %s: %v", path, err)
	}
	if err := os.Chtimes(path, modTime, modTime); err != nil {
		t.Fatalf("Failed to set mtime on %s: %v", path, err)
	}

	return path
}

// SeedReleases creates the named releases one minute apart, oldest
// first, so names[len-1] is the newest. Returns the base time used.
func (d *DeployRoot) SeedReleases(t *testing.T, names ...string) time.Time {
	t.Helper()

	base := time.Now().Add(-time.Duration(len(names)) * time.Hour)
	for i, name := range names {
		d.AddRelease(t, name, base.Add(time.Duration(i)*time.Minute))
	}
	return base
}

// SetCurrent points the current link at the named release, replacing
// any existing link.
func (d *DeployRoot) SetCurrent(t *testing.T, name string) {
	t.Helper()

	_ = os.Remove(d.CurrentPath)
	target := filepath.Join("versions", name)
	if err := os.Symlink(target, d.CurrentPath); err != nil {
		t.Fatalf("Failed to create current link -> %s: %v", target, err)
	}
}

// SetCurrentDangling points the current link at a release name that
// does not exist under versions/.
func (d *DeployRoot) SetCurrentDangling(t *testing.T, name string) {
	t.Helper()
	d.SetCurrent(t, name)
	_ = os.RemoveAll(filepath.Join(d.VersionsPath, name))
}

// CurrentTarget reads the current link and returns the base name of
// its target. Fails the test if the link cannot be read.
func (d *DeployRoot) CurrentTarget(t *testing.T) string {
	t.Helper()

	target, err := os.Readlink(d.CurrentPath)
	if err != nil {
		t.Fatalf("Failed to read current link %s: %v", d.CurrentPath, err)
	}
	return filepath.Base(target)
}

// AssertCurrent fails the test unless the current link resolves to the
// named release.
func (d *DeployRoot) AssertCurrent(t *testing.T, want string) {
	t.Helper()

	got := d.CurrentTarget(t)
	if got != want {
		t.Errorf("current link resolves to %q, want %q", got, want)
	}
}

// ReleaseExists reports whether the named release is still present.
func (d *DeployRoot) ReleaseExists(t *testing.T, name string) bool {
	t.Helper()

	_, err := os.Lstat(filepath.Join(d.VersionsPath, name))
	return err == nil
}

// Chmod changes the permission bits of the named release.
func (d *DeployRoot) Chmod(t *testing.T, name string, mode os.FileMode) {
	t.Helper()

	path := filepath.Join(d.VersionsPath, name)
	if err := os.Chmod(path, mode); err != nil {
		t.Fatalf("Failed to chmod %s: %v", path, err)
	}
	t.Cleanup(func() {
		_ = os.Chmod(path, 0755)
	})
}
