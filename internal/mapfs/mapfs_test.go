/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package mapfs_test

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/hopetokens/internal/mapfs"
)

func TestMapFileSystem_ReadWrite(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/tokens/colors/color-global.json", `{}`, 0644)

	data, err := mfs.ReadFile("/tokens/colors/color-global.json")
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))

	require.NoError(t, mfs.WriteFile("/out/tokens.css", []byte(":root {}\n"), 0644))
	data, err = mfs.ReadFile("out/tokens.css")
	require.NoError(t, err)
	assert.Equal(t, ":root {}\n", string(data))

	_, err = mfs.ReadFile("/missing.json")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestMapFileSystem_WriteBelowFile(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/out", "file", 0644)

	assert.Error(t, mfs.WriteFile("/out/tokens.css", nil, 0644))
	assert.Error(t, mfs.MkdirAll("/out/figma", 0755))
}

func TestMapFileSystem_Exists(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/tokens/colors/color-global.json", `{}`, 0644)
	require.NoError(t, mfs.MkdirAll("/project/figma", 0755))

	tests := []struct {
		path     string
		expected bool
	}{
		{"/", true},
		{"/project", true},
		{"/project/tokens/colors", true},
		{"/project/tokens/colors/color-global.json", true},
		{"/project/figma", true},
		{"/project/tokens/colors/color-brand-dark.json", false},
		{"/proj", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, mfs.Exists(tt.path))
		})
	}
}

func TestMapFileSystem_WalkRoot(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/a/b.json", `{}`, 0644)
	mfs.AddFile("/c.json", `{}`, 0644)

	var files []string
	err := fs.WalkDir(mfs, "/", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			files = append(files, p)
		}
		return nil
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"/a/b.json", "/c.json"}, files)
}

func TestMapFileSystem_Files(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/tokens/b.json", `{}`, 0644)
	mfs.AddFile("/project/tokens/a.json", `{}`, 0644)
	mfs.AddFile("/project/tokens.css", ``, 0644)
	require.NoError(t, mfs.MkdirAll("/project/tokens/empty", 0755))

	assert.Equal(t, []string{"/project/tokens/a.json", "/project/tokens/b.json"}, mfs.Files("/project/tokens"))
	assert.Len(t, mfs.Files("/"), 3)
	assert.Empty(t, mfs.Files("/nowhere"))
}
