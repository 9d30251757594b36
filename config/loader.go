/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	hopefs "bennypowers.dev/hopetokens/fs"
)

// ConfigFileName is the base name of the config file without extension.
const ConfigFileName = "hope-tokens"

// ConfigDir is the directory where config files are stored.
const ConfigDir = ".config"

// configExtensions are the supported config file extensions in priority order.
var configExtensions = []string{".yaml", ".yml", ".json"}

// Load searches for .config/hope-tokens.{yaml,yml,json} from rootDir.
// Returns nil if no config found (not an error).
func Load(filesystem hopefs.FileSystem, rootDir string) (*Config, error) {
	for _, ext := range configExtensions {
		configPath := filepath.Join(rootDir, ConfigDir, ConfigFileName+ext)
		if !filesystem.Exists(configPath) {
			continue
		}
		return LoadFile(filesystem, configPath)
	}

	return nil, nil
}

// LoadFile reads a config file, choosing the decoder by extension.
func LoadFile(filesystem hopefs.FileSystem, configPath string) (*Config, error) {
	data, err := filesystem.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	switch filepath.Ext(configPath) {
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// LoadOrDefault returns config or defaults if not found.
func LoadOrDefault(filesystem hopefs.FileSystem, rootDir string) *Config {
	cfg, err := Load(filesystem, rootDir)
	if err != nil || cfg == nil {
		return Default()
	}
	return cfg
}

// ExpandFiles expands glob patterns in Files and returns absolute paths.
func (c *Config) ExpandFiles(filesystem hopefs.FileSystem, rootDir string) ([]string, error) {
	return ExpandPatterns(filesystem, rootDir, c.Files)
}

// ExpandPatterns expands paths which may contain globs, relative to rootDir.
// Non-glob paths are returned as given; errors surface when they are read.
func ExpandPatterns(filesystem hopefs.FileSystem, rootDir string, patterns []string) ([]string, error) {
	var result []string

	for _, pattern := range patterns {
		expanded, err := expandFilePath(filesystem, rootDir, pattern)
		if err != nil {
			return nil, err
		}
		result = append(result, expanded...)
	}

	return result, nil
}

// expandFilePath expands one pattern. Paths without glob syntax are
// returned as given; errors surface when they are read.
func expandFilePath(filesystem hopefs.FileSystem, rootDir, pattern string) ([]string, error) {
	if !filepath.IsAbs(pattern) {
		pattern = filepath.Join(rootDir, pattern)
	}
	pattern = filepath.ToSlash(pattern)

	base, rel := doublestar.SplitPattern(pattern)
	if rel == "" || !strings.ContainsAny(rel, "*?[{") {
		return []string{filepath.FromSlash(pattern)}, nil
	}
	if !doublestar.ValidatePattern(rel) {
		return nil, fmt.Errorf("invalid glob %q: %w", pattern, doublestar.ErrBadPattern)
	}
	if !filesystem.Exists(base) {
		return nil, nil
	}

	prefix := strings.TrimSuffix(base, "/") + "/"
	var matches []string
	err := fs.WalkDir(filesystem, base, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if ok, _ := doublestar.Match(rel, strings.TrimPrefix(p, prefix)); ok {
			matches = append(matches, filepath.FromSlash(p))
		}
		return nil
	})
	return matches, err
}
