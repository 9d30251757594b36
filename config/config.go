/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for hopetokens.
package config

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"bennypowers.dev/hopetokens/convert"
	"bennypowers.dev/hopetokens/convert/formatter/tailwind"
	"bennypowers.dev/hopetokens/load"
	"bennypowers.dev/hopetokens/model"
)

// DefaultTokensDir is the tokens directory relative to the project root.
const DefaultTokensDir = "tokens"

// DefaultOutputPaths maps each format to its output path relative to the
// project root.
var DefaultOutputPaths = map[convert.Format]string{
	convert.FormatCSS:        "src/styles/tokens.css",
	convert.FormatFigmaLight: "figma/hope-tokens.light.json",
	convert.FormatFigmaDark:  "figma/hope-tokens.dark.json",
	convert.FormatTailwind:   "tailwind.tokens.json",
	convert.FormatFlatJSON:   "tokens.flat.json",
}

// DefaultOutputs are the formats built when the config names none.
var DefaultOutputs = []convert.Format{
	convert.FormatCSS,
	convert.FormatFigmaLight,
	convert.FormatFigmaDark,
	convert.FormatTailwind,
}

// Config represents the hopetokens configuration.
type Config struct {
	// Prefix is the global CSS variable prefix.
	Prefix string `yaml:"prefix" json:"prefix"`

	// Header is written as a comment at the top of CSS and JS outputs.
	Header string `yaml:"header" json:"header"`

	// TokensDir is the directory holding the source documents.
	TokensDir string `yaml:"tokensDir" json:"tokensDir"`

	// Sources overrides source document paths by role name
	// (e.g. colorGlobal), relative to TokensDir.
	Sources map[string]string `yaml:"sources" json:"sources"`

	// Files lists extra token files checked by validate (supports globs).
	Files []string `yaml:"files" json:"files"`

	// Outputs lists the artifacts to build.
	Outputs []OutputSpec `yaml:"outputs" json:"outputs"`

	// Selector wraps the light CSS block.
	Selector string `yaml:"selector" json:"selector"`

	// DarkSelector wraps the dark CSS block.
	DarkSelector string `yaml:"darkSelector" json:"darkSelector"`

	// ModeNames overrides the Figma mode names.
	ModeNames ModeNames `yaml:"modeNames" json:"modeNames"`

	// TailwindModule is json, esm or cjs.
	TailwindModule string `yaml:"tailwindModule" json:"tailwindModule"`

	// MaxPasses bounds reference resolution. Zero means the default.
	MaxPasses int `yaml:"maxPasses" json:"maxPasses"`
}

// ModeNames holds display names per mode.
type ModeNames struct {
	Light string `yaml:"light" json:"light"`
	Dark  string `yaml:"dark" json:"dark"`
}

// OutputSpec is one artifact to build.
// It can be specified as a bare format name or as an object with a path.
type OutputSpec struct {
	// Format is the output format (css, figma-light, figma-dark, tailwind, json).
	Format string `yaml:"format" json:"format"`

	// Path is the output path. Empty means the format's default path.
	Path string `yaml:"path" json:"path"`
}

// UnmarshalYAML handles both string and object forms for OutputSpec.
func (o *OutputSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		o.Format = node.Value
		return nil
	}

	type rawOutputSpec OutputSpec
	return node.Decode((*rawOutputSpec)(o))
}

// UnmarshalJSON handles both string and object forms for OutputSpec.
func (o *OutputSpec) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		o.Format = s
		return nil
	}

	type rawOutputSpec OutputSpec
	return json.Unmarshal(data, (*rawOutputSpec)(o))
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		TokensDir: DefaultTokensDir,
	}
}

// TokensRoot returns the tokens directory under rootDir.
func (c *Config) TokensRoot(rootDir string) string {
	dir := c.TokensDir
	if dir == "" {
		dir = DefaultTokensDir
	}
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(rootDir, dir)
}

// SourcePaths returns the per-role path overrides.
func (c *Config) SourcePaths() (map[load.Role]string, error) {
	paths := make(map[load.Role]string, len(c.Sources))
	for name, path := range c.Sources {
		role, err := load.ParseRole(name)
		if err != nil {
			return nil, fmt.Errorf("config sources: %w", err)
		}
		paths[role] = path
	}
	return paths, nil
}

// Targets returns the output path per format, under rootDir.
func (c *Config) Targets(rootDir string) (map[convert.Format]string, error) {
	specs := c.Outputs
	if len(specs) == 0 {
		for _, f := range DefaultOutputs {
			specs = append(specs, OutputSpec{Format: string(f)})
		}
	}

	targets := make(map[convert.Format]string, len(specs))
	for _, spec := range specs {
		format, err := convert.ParseFormat(spec.Format)
		if err != nil {
			return nil, fmt.Errorf("config outputs: %w", err)
		}
		path := spec.Path
		if path == "" {
			path = DefaultOutputPaths[format]
			if format == convert.FormatTailwind && c.TailwindModule != "" && c.TailwindModule != string(tailwind.ModuleJSON) {
				path = "tailwind.tokens.js"
			}
		}
		if !filepath.IsAbs(path) {
			path = filepath.Join(rootDir, path)
		}
		targets[format] = path
	}
	return targets, nil
}

// ConvertOptions returns rendering options with configuration applied.
func (c *Config) ConvertOptions() (convert.Options, error) {
	opts := convert.DefaultOptions()
	opts.Prefix = c.Prefix
	opts.Header = c.Header
	if c.Selector != "" {
		opts.Selector = c.Selector
	}
	if c.DarkSelector != "" {
		opts.DarkSelector = c.DarkSelector
	}
	if c.ModeNames.Light != "" {
		opts.ModeNames[model.Light] = c.ModeNames.Light
	}
	if c.ModeNames.Dark != "" {
		opts.ModeNames[model.Dark] = c.ModeNames.Dark
	}
	module, err := tailwind.ParseModule(c.TailwindModule)
	if err != nil {
		return opts, fmt.Errorf("config tailwindModule: %w", err)
	}
	opts.TailwindModule = module
	return opts, nil
}
