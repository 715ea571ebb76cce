package types

import "io/fs"

// FS abstracts the filesystem operations reldir performs so that the
// repository and commands can be tested against a controlled tree.
type FS interface {
	// Inspection
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)
	ReadDir(name string) ([]fs.DirEntry, error)

	// Symlink operations
	Symlink(oldname, newname string) error
	Readlink(name string) (string, error)

	// Mutation
	Rename(oldpath, newpath string) error
	Remove(name string) error
	RemoveAll(path string) error
}
