/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package project loads the configuration, sources and token model that
// every command works on.
package project

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/spf13/viper"

	"bennypowers.dev/hopetokens/config"
	"bennypowers.dev/hopetokens/fs"
	"bennypowers.dev/hopetokens/internal/logger"
	"bennypowers.dev/hopetokens/load"
	"bennypowers.dev/hopetokens/model"
)

// Options selects the project to open.
type Options struct {
	// FS is the filesystem to use. Defaults to OS filesystem if nil.
	FS fs.FileSystem

	// Root is the project root. Defaults to the working directory.
	Root string

	// ConfigPath names a config file explicitly. A missing or malformed
	// explicit config is an error.
	ConfigPath string

	// TokensDir overrides the configured tokens directory.
	TokensDir string

	// Prefix overrides the configured variable prefix.
	Prefix string
}

// FromFlags returns options from the persistent flags bound in viper.
func FromFlags() Options {
	return Options{
		Root:       ".",
		ConfigPath: viper.GetString("config"),
		TokensDir:  viper.GetString("tokens-dir"),
		Prefix:     viper.GetString("prefix"),
	}
}

// Project is a loaded token project.
type Project struct {
	FS      fs.FileSystem
	Root    string
	Config  *config.Config
	Sources *load.Sources
	Model   *model.Model
}

// Open loads the config, reads every source and builds the model.
// Resolution warnings are logged once per distinct message.
func Open(ctx context.Context, opts Options) (*Project, error) {
	filesystem := opts.FS
	if filesystem == nil {
		filesystem = fs.NewOSFileSystem()
	}
	root := opts.Root
	if root == "" {
		root = "."
	}

	cfg, err := loadConfig(filesystem, root, opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opts.Prefix != "" {
		cfg.Prefix = opts.Prefix
	}
	if opts.TokensDir != "" {
		cfg.TokensDir = opts.TokensDir
	}

	paths, err := cfg.SourcePaths()
	if err != nil {
		return nil, err
	}

	tokensRoot := cfg.TokensRoot(root)
	logger.Debug("reading sources from %s", tokensRoot)
	sources, err := load.Load(ctx, load.Options{
		Root:  tokensRoot,
		FS:    filesystem,
		Paths: paths,
	})
	if err != nil {
		return nil, err
	}

	m := model.Build(sources, model.Options{
		MaxPasses: cfg.MaxPasses,
		Warn:      Deduplicate(func(err error) { logger.Warn("%v", err) }),
	})

	return &Project{
		FS:      filesystem,
		Root:    root,
		Config:  cfg,
		Sources: sources,
		Model:   m,
	}, nil
}

func loadConfig(filesystem fs.FileSystem, root, path string) (*config.Config, error) {
	if path != "" {
		if !filepath.IsAbs(path) {
			path = filepath.Join(root, path)
		}
		cfg, err := config.LoadFile(filesystem, path)
		if err != nil {
			return nil, fmt.Errorf("error loading config %s: %w", path, err)
		}
		return cfg, nil
	}

	cfg, err := config.Load(filesystem, root)
	if err != nil {
		logger.Warn("ignoring config: %v", err)
		return config.Default(), nil
	}
	if cfg == nil {
		return config.Default(), nil
	}
	return cfg, nil
}

// Deduplicate wraps warn so that each distinct message is forwarded once.
// The returned func is safe for concurrent use.
func Deduplicate(warn func(error)) func(error) {
	var seen sync.Map
	return func(err error) {
		if _, loaded := seen.LoadOrStore(err.Error(), struct{}{}); loaded {
			return
		}
		warn(err)
	}
}
