// Package types defines the core types shared across reldir packages:
// the filesystem abstraction used by the repository and commands, the
// Release record, and the common result shape every command returns.
package types
