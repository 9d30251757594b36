/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package model builds the in-memory token model every emitter reads:
// flattened entries per source plus one frozen registry per mode.
package model

import (
	"fmt"
	"strings"

	"bennypowers.dev/hopetokens/internal/logger"
	"bennypowers.dev/hopetokens/load"
	"bennypowers.dev/hopetokens/resolver"
	"bennypowers.dev/hopetokens/token"
)

// Mode is a variant of the semantic color layer.
type Mode string

const (
	// Light is the default mode.
	Light Mode = "light"

	// Dark is the alternate mode.
	Dark Mode = "dark"
)

// Modes lists every mode, default first.
var Modes = []Mode{Light, Dark}

// ParseMode converts a string to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "light", "default", "":
		return Light, nil
	case "dark", "alternate":
		return Dark, nil
	}
	return "", fmt.Errorf("unknown mode: %s (valid: light, dark)", s)
}

// Step registers one source document.
type Step struct {
	// Role selects the document.
	Role load.Role

	// NamePrefix is hyphen-joined in front of emitted names.
	NamePrefix string

	// RegistryPrefix is dot-joined in front of registry keys.
	RegistryPrefix string

	// Aliases are extra registry namespaces for the same leaves.
	Aliases []string
}

// BaseSteps are the mode-invariant registrations, in dependency order.
// Global tiers come before the brand tiers that alias them.
var BaseSteps = []Step{
	{Role: load.ColorGlobal, Aliases: []string{token.LayerColor}},
	{Role: load.SpacingGlobal, Aliases: []string{token.LayerSpacing}},
	{Role: load.DimensionGlobal, Aliases: []string{token.LayerDimension}},
	{Role: load.FontSizeBrand, RegistryPrefix: "fontSize.brand"},
	{Role: load.LineHeightBrand, RegistryPrefix: "lineHeight.brand"},
	{Role: load.RadiusBrand, RegistryPrefix: "radius.brand"},
	{Role: load.ColorBrandLight},
}

// ModeSteps are registered on top of BaseSteps for each mode. The dark
// brand layer overlays the light one so dark aliases may reference
// light-only semantic tokens.
var ModeSteps = map[Mode][]Step{
	Light: {
		{Role: load.SpacingBrand},
	},
	Dark: {
		{Role: load.ColorBrandDark},
		{Role: load.SpacingBrand},
	},
}

// Options configures model construction.
type Options struct {
	// MaxPasses bounds reference resolution. Zero means the default.
	MaxPasses int

	// Warn receives resolution problems. Nil logs them as warnings.
	Warn func(error)
}

// Model is the immutable result of registration. It is safe for
// concurrent use by emitters.
type Model struct {
	sources    *load.Sources
	entries    map[load.Role][]token.Entry
	registries map[Mode]*resolver.Registry
	warn       func(error)
}

// Build registers every source in order and freezes one registry per mode.
func Build(sources *load.Sources, opts Options) *Model {
	warn := opts.Warn
	if warn == nil {
		warn = func(err error) { logger.Warn("%v", err) }
	}
	freeze := resolver.Options{MaxPasses: opts.MaxPasses, Warn: warn}

	m := &Model{
		sources:    sources,
		entries:    make(map[load.Role][]token.Entry, len(load.Roles)),
		registries: make(map[Mode]*resolver.Registry, len(Modes)),
		warn:       warn,
	}

	base := resolver.NewBuilder()
	for _, step := range BaseSteps {
		m.register(base, step)
	}
	for _, mode := range Modes {
		b := base.Fork()
		for _, step := range ModeSteps[mode] {
			m.register(b, step)
		}
		m.registries[mode] = b.Freeze(freeze)
	}

	// Composite typography is emitted but never aliased.
	m.entries[load.TypographyBrand] = token.Flatten(sources.Get(load.TypographyBrand), "", "")

	return m
}

func (m *Model) register(b *resolver.Builder, step Step) {
	entries := b.Register(m.sources.Get(step.Role), step.NamePrefix, step.RegistryPrefix, step.Aliases...)
	m.entries[step.Role] = entries
}

// Warn reports a problem found while emitting m through the callback
// given to Build, so emitters share its deduplication.
func (m *Model) Warn(err error) {
	m.warn(err)
}

// Registry returns the frozen registry for mode.
func (m *Model) Registry(mode Mode) *resolver.Registry {
	if r, ok := m.registries[mode]; ok {
		return r
	}
	return m.registries[Light]
}

// Entries returns the flattened entries of a source in source order.
func (m *Model) Entries(role load.Role) []token.Entry {
	return m.entries[role]
}

// Tree returns the parsed tree of a source.
func (m *Model) Tree(role load.Role) *token.Node {
	return m.sources.Get(role)
}

// BrandRole returns the semantic color source for mode.
func BrandRole(mode Mode) load.Role {
	if mode == Dark {
		return load.ColorBrandDark
	}
	return load.ColorBrandLight
}

// File returns the path a source was read from.
func (m *Model) File(role load.Role) string {
	return m.sources.File(role)
}

// Problems returns the load problems of the underlying sources.
func (m *Model) Problems() []error {
	return m.sources.Problems
}
