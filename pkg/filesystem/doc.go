// Package filesystem implements types.FS on top of afero.
//
// NewOS is used at runtime and NewMemory in tests. WriteFileAtomic is the
// temp-file-then-rename write used for every persisted document.
package filesystem
