/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package mapfs provides an in-memory filesystem for tests. Token sources
// are read from it and build outputs are written to it.
package mapfs

import (
	"errors"
	"io/fs"
	"path"
	"slices"
	"strings"
	"sync"
	"testing/fstest"
	"time"
)

// keepFile marks an otherwise empty directory.
const keepFile = ".keep"

var errNotDir = errors.New("not a directory")

// MapFileSystem implements fs.FileSystem over an fstest.MapFS. Paths are
// absolute and slash-separated; "/" is the root.
type MapFileSystem struct {
	mu      sync.RWMutex
	files   fstest.MapFS
	modTime time.Time
}

// New creates an empty in-memory filesystem.
func New() *MapFileSystem {
	return &MapFileSystem{
		files:   make(fstest.MapFS),
		modTime: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// AddFile adds a file with the given content.
func (m *MapFileSystem) AddFile(p string, content string, mode fs.FileMode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[key(p)] = &fstest.MapFile{Data: []byte(content), Mode: mode, ModTime: m.modTime}
}

// WriteFile implements fs.FileSystem. Writing below an existing file fails
// the way it does on disk.
func (m *MapFileSystem) WriteFile(name string, data []byte, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	k := key(name)
	if err := m.checkParentsLocked(k); err != nil {
		return &fs.PathError{Op: "open", Path: name, Err: err}
	}
	m.files[k] = &fstest.MapFile{Data: slices.Clone(data), Mode: perm, ModTime: m.modTime}
	return nil
}

// ReadFile implements fs.FileSystem.
func (m *MapFileSystem) ReadFile(name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return fs.ReadFile(m.files, key(name))
}

// MkdirAll implements fs.FileSystem.
func (m *MapFileSystem) MkdirAll(p string, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	k := key(p)
	if k == "." {
		return nil
	}
	if f, ok := m.files[k]; ok && !f.Mode.IsDir() {
		return &fs.PathError{Op: "mkdir", Path: p, Err: errNotDir}
	}
	if err := m.checkParentsLocked(k); err != nil {
		return &fs.PathError{Op: "mkdir", Path: p, Err: err}
	}
	m.files[path.Join(k, keepFile)] = &fstest.MapFile{Mode: perm.Perm(), ModTime: m.modTime}
	return nil
}

// Stat implements fs.FileSystem.
func (m *MapFileSystem) Stat(name string) (fs.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return fs.Stat(m.files, key(name))
}

// Exists implements fs.FileSystem. Directories exist when anything lies
// below them.
func (m *MapFileSystem) Exists(p string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	k := key(p)
	if k == "." {
		return true
	}
	if _, ok := m.files[k]; ok {
		return true
	}
	prefix := k + "/"
	for name := range m.files {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// ReadDir implements fs.FileSystem.
func (m *MapFileSystem) ReadDir(name string) ([]fs.DirEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return fs.ReadDir(m.files, key(name))
}

// Open implements fs.FS, so the filesystem can be walked with fs.WalkDir.
func (m *MapFileSystem) Open(name string) (fs.File, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.files.Open(key(name))
}

// Files returns the absolute paths of every file below dir, sorted.
// Directory markers are omitted.
func (m *MapFileSystem) Files(dir string) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	prefix := key(dir) + "/"
	if prefix == "./" {
		prefix = ""
	}
	var files []string
	for name := range m.files {
		if path.Base(name) == keepFile || !strings.HasPrefix(name, prefix) {
			continue
		}
		files = append(files, "/"+name)
	}
	slices.Sort(files)
	return files
}

// checkParentsLocked fails when an ancestor of k is a regular file.
func (m *MapFileSystem) checkParentsLocked(k string) error {
	for dir := path.Dir(k); dir != "."; dir = path.Dir(dir) {
		if f, ok := m.files[dir]; ok && !f.Mode.IsDir() {
			return errNotDir
		}
	}
	return nil
}

// key maps an absolute or relative path to its fstest.MapFS name.
func key(p string) string {
	cleaned := strings.TrimPrefix(path.Clean("/"+p), "/")
	if cleaned == "" {
		return "."
	}
	return cleaned
}
