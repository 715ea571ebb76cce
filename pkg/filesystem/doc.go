// Package filesystem provides filesystem implementations for reldir.
//
// It contains the OS-backed implementation of the types.FS interface
// used by the repository and the rollback/cleanup commands.
package filesystem
