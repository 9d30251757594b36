/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package load reads the token source documents into parsed trees.
package load

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"bennypowers.dev/hopetokens/fs"
	"bennypowers.dev/hopetokens/internal/logger"
	"bennypowers.dev/hopetokens/parser"
	"bennypowers.dev/hopetokens/token"
)

// ErrUnreadable indicates a source document could not be read or parsed.
// Such documents load as empty trees.
var ErrUnreadable = errors.New("unreadable token document")

// Role names one source document.
type Role string

const (
	ColorGlobal     Role = "colorGlobal"
	ColorBrandLight Role = "colorBrandLight"
	ColorBrandDark  Role = "colorBrandDark"
	DimensionGlobal Role = "dimensionGlobal"
	FontSizeBrand   Role = "fontSizeBrand"
	LineHeightBrand Role = "lineHeightBrand"
	RadiusBrand     Role = "radiusBrand"
	SpacingGlobal   Role = "spacingGlobal"
	SpacingBrand    Role = "spacingBrand"
	TypographyBrand Role = "typographyBrand"
)

// Roles lists every source role in load order.
var Roles = []Role{
	ColorGlobal,
	ColorBrandLight,
	ColorBrandDark,
	DimensionGlobal,
	FontSizeBrand,
	LineHeightBrand,
	RadiusBrand,
	SpacingGlobal,
	SpacingBrand,
	TypographyBrand,
}

// DefaultPaths maps each role to its path relative to the tokens directory.
var DefaultPaths = map[Role]string{
	ColorGlobal:     "colors/color-global.json",
	ColorBrandLight: "colors/color-brand-light.json",
	ColorBrandDark:  "colors/color-brand-dark.json",
	DimensionGlobal: "dimensions/dimension-global.json",
	FontSizeBrand:   "dimensions/fontSize-brand.json",
	LineHeightBrand: "dimensions/lineHeight-brand.json",
	RadiusBrand:     "dimensions/radius-brand.json",
	SpacingGlobal:   "spacings/spacing-global.json",
	SpacingBrand:    "spacings/spacing-brand.json",
	TypographyBrand: "typography/typography-brand.json",
}

// ParseRole returns the role with the given name.
func ParseRole(name string) (Role, error) {
	for _, r := range Roles {
		if string(r) == name {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown source role %q", name)
}

// Options configures how sources are loaded.
type Options struct {
	// Root is the tokens directory. Relative paths resolve against it.
	Root string

	// FS is the filesystem to use. Defaults to OS filesystem if nil.
	FS fs.FileSystem

	// Paths overrides DefaultPaths per role.
	Paths map[Role]string
}

// Sources holds one parsed tree per role.
type Sources struct {
	trees map[Role]*token.Node
	files map[Role]string

	// Problems lists the documents that loaded as empty trees, each
	// wrapping ErrUnreadable.
	Problems []error
}

// NewSources returns sources built from already-parsed trees. Roles not
// present load as empty trees.
func NewSources(trees map[Role]*token.Node) *Sources {
	s := &Sources{
		trees: make(map[Role]*token.Node, len(Roles)),
		files: make(map[Role]string, len(Roles)),
	}
	for r, t := range trees {
		s.trees[r] = t
	}
	return s
}

// Get returns the tree for role. It is never nil.
func (s *Sources) Get(r Role) *token.Node {
	if t, ok := s.trees[r]; ok && t != nil {
		return t
	}
	return token.NewTree()
}

// File returns the path a role was read from.
func (s *Sources) File(r Role) string {
	return s.files[r]
}

// Len returns the total number of leaves across all sources.
func (s *Sources) Len() int {
	n := 0
	for _, t := range s.trees {
		n += t.Len()
	}
	return n
}

// Load reads and parses every source document. A document that cannot be
// read or parsed is logged, recorded in Problems and loaded as an empty
// tree, so Load only fails when ctx is done.
func Load(ctx context.Context, opts Options) (*Sources, error) {
	filesystem := opts.FS
	if filesystem == nil {
		filesystem = fs.NewOSFileSystem()
	}

	p := parser.NewJSONParser()
	sources := NewSources(nil)

	for _, role := range Roles {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		path := ResolvePath(opts.Root, role, opts.Paths)
		sources.files[role] = path

		tree, err := p.ParseFile(filesystem, path)
		if err != nil {
			problem := fmt.Errorf("%w: %s: %w", ErrUnreadable, role, err)
			logger.Warn("%v", problem)
			sources.Problems = append(sources.Problems, problem)
			tree = token.NewTree()
		} else {
			logger.Debug("loaded %s (%d tokens) from %s", role, tree.Len(), path)
		}
		sources.trees[role] = tree
	}

	return sources, nil
}

// ResolvePath returns the file path for role under root, honoring overrides.
func ResolvePath(root string, role Role, overrides map[Role]string) string {
	rel, ok := overrides[role]
	if !ok || rel == "" {
		rel = DefaultPaths[role]
	}
	if filepath.IsAbs(rel) || root == "" {
		return rel
	}
	return filepath.Join(root, rel)
}
