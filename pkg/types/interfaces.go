// Package types holds interfaces shared across hyprpier packages.
package types

import (
	"io/fs"
)

// FS is the slice of filesystem access hyprpier needs: reading sysfs
// attributes, and reading and atomically replacing profile and binding
// documents. filesystem.NewOS and filesystem.NewMemory implement it.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)
	Remove(name string) error
	// Rename must replace newpath when it exists
	Rename(oldpath, newpath string) error
}
