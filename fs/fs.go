/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package fs provides the filesystem abstraction hopetokens reads sources
// and writes outputs through.
package fs

import (
	"io/fs"
	"os"
)

// FileSystem is what loading, config lookup, glob expansion and the build
// need from a filesystem. It embeds the fs.FS family so fs.WalkDir works.
type FileSystem interface {
	fs.ReadDirFS
	fs.StatFS

	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
	Exists(path string) bool
}

// OSFileSystem implements FileSystem on the host filesystem. Paths are
// passed to the os package unchanged, so relative paths resolve against
// the working directory.
type OSFileSystem struct{}

// NewOSFileSystem returns the host filesystem.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// Open implements fs.FS.
func (OSFileSystem) Open(name string) (fs.File, error) {
	return os.Open(name)
}

// ReadDir implements fs.ReadDirFS.
func (OSFileSystem) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(name)
}

// Stat implements fs.StatFS.
func (OSFileSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

// ReadFile reads the named file.
func (OSFileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// MkdirAll creates path and any missing parents.
func (OSFileSystem) MkdirAll(path string, perm fs.FileMode) error {
	return os.MkdirAll(path, perm)
}

// WriteFile replaces the named file.
func (OSFileSystem) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(name, data, perm)
}

// Exists reports whether path can be stat'ed.
func (OSFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
