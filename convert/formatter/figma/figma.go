/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package figma provides Figma variables JSON formatting for design tokens.
//
// Each mode is a separate document. Aliases stay references, normalized
// into the document's own namespaces, and every token carries the usage
// scopes Figma applies to variables.
package figma

import (
	"errors"
	"fmt"
	"strings"

	"bennypowers.dev/hopetokens/convert/formatter"
	"bennypowers.dev/hopetokens/internal/logger"
	"bennypowers.dev/hopetokens/load"
	"bennypowers.dev/hopetokens/model"
	"bennypowers.dev/hopetokens/parser/common"
	"bennypowers.dev/hopetokens/resolver"
	"bennypowers.dev/hopetokens/scope"
	"bennypowers.dev/hopetokens/token"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Extension keys.
const (
	ScopesKey   = "com.figma.scopes"
	ModeNameKey = "com.figma.modeName"
)

// Token types.
const (
	TypeColor  = "color"
	TypeNumber = "number"
)

// Options configures Figma output.
type Options struct {
	// Mode selects the document. Defaults to light.
	Mode model.Mode

	// ModeName is written to the mode extension. Defaults to the title-cased mode.
	ModeName string
}

// Formatter outputs one Figma mode document.
type Formatter struct {
	opts Options
}

// New creates a new Figma formatter for mode.
func New(mode model.Mode) *Formatter {
	return &Formatter{opts: Options{Mode: mode}}
}

// NewWithOptions creates a new Figma formatter with the given options.
func NewWithOptions(opts Options) *Formatter {
	return &Formatter{opts: opts}
}

// Format renders the configured mode document.
func (f *Formatter) Format(m *model.Model, _ formatter.Options) ([]byte, error) {
	return formatter.MarshalJSON(Document(m, f.opts))
}

// DefaultModeName returns the display name of a mode: "Light", "Dark".
func DefaultModeName(mode model.Mode) string {
	return cases.Title(language.English).String(string(mode))
}

type numberLayer struct {
	role      load.Role
	mount     string
	scope     scope.Role
	refPrefix string
}

// numberLayers are the mode-invariant numeric layers in output order.
var numberLayers = []numberLayer{
	{load.DimensionGlobal, "dimension", scope.RoleDimension, "dimension"},
	{load.FontSizeBrand, "fontSize", scope.RoleFontSize, "dimension"},
	{load.LineHeightBrand, "lineHeight", scope.RoleLineHeight, "dimension"},
	{load.RadiusBrand, "radius", scope.RoleRadius, "dimension"},
	{load.SpacingGlobal, "spacing", scope.RoleSpacingScale, "spacing"},
	{load.SpacingBrand, "spacing", scope.RoleSpacing, "spacing"},
}

// Document builds the nested document for a mode. The light document holds
// the palettes, the light semantic colors and every numeric layer. The dark
// document holds only the dark semantic colors, at the same paths.
func Document(m *model.Model, opts Options) map[string]any {
	mode := opts.Mode
	if mode == "" {
		mode = model.Light
	}
	name := opts.ModeName
	if name == "" {
		name = DefaultModeName(mode)
	}

	doc := make(map[string]any)

	if mode == model.Light {
		hidden := scope.ForRole(scope.RolePalette)
		for _, e := range m.Entries(load.ColorGlobal) {
			SetNested(doc, mountPath(token.LayerColor, e.Path), ColorToken(e.Value, hidden, m.Warn))
		}
	}

	for _, e := range m.Entries(model.BrandRole(mode)) {
		keys := mountPath(token.LayerColor, e.Path)
		SetNested(doc, keys, ColorToken(e.Value, semanticScope(keys), m.Warn))
	}

	if mode == model.Light {
		for _, layer := range numberLayers {
			s := scope.ForRole(layer.scope)
			for _, e := range m.Entries(layer.role) {
				SetNested(doc, mountPath(layer.mount, e.Path), NumberToken(e.Value, s, layer.refPrefix))
			}
		}
	}

	doc["$extensions"] = map[string]any{ModeNameKey: name}
	return doc
}

func mountPath(mount string, path []string) []string {
	keys := make([]string, 0, len(path)+1)
	keys = append(keys, mount)
	return append(keys, path...)
}

// semanticScope classifies a mounted semantic color by its group path.
// Semantic documents are rooted at "color", so the category is the third
// group segment and the elevation sub-category the fourth.
func semanticScope(keys []string) scope.Scope {
	groups := keys[:len(keys)-1]
	var category, sub string
	if len(groups) > 2 {
		category = groups[2]
	}
	if len(groups) > 3 {
		sub = groups[3]
	}
	return scope.Classify(category, sub)
}

// ErrUnparseableColor is reported for color literals that cannot be parsed.
var ErrUnparseableColor = errors.New("unparseable color")

// ColorToken builds a color token. A whole-value alias becomes a reference
// into the color namespace. Any other value is parsed as a color literal;
// unparseable literals become transparent black and are reported to warn.
// A nil warn logs them.
func ColorToken(raw any, s scope.Scope, warn func(error)) map[string]any {
	t := map[string]any{"$type": TypeColor}
	if token.IsAlias(raw) {
		t["$value"] = common.NormalizeRef(token.StripBraces(raw.(string)), token.LayerColor)
	} else {
		literal := resolver.Stringify(raw)
		value, ok := common.ColorFromLiteral(literal)
		if !ok {
			err := fmt.Errorf("%w %q, using transparent", ErrUnparseableColor, literal)
			if warn == nil {
				logger.Warn("%v", err)
			} else {
				warn(err)
			}
		}
		t["$value"] = value
	}
	withScopes(t, s)
	return t
}

// NumberToken builds a number token. A whole-value alias becomes a
// reference into refPrefix when one is given. Any other value is
// normalized to a plain number.
func NumberToken(raw any, s scope.Scope, refPrefix string) map[string]any {
	t := map[string]any{"$type": TypeNumber}
	if token.IsAlias(raw) && refPrefix != "" {
		t["$value"] = common.NormalizeRef(token.StripBraces(raw.(string)), refPrefix)
	} else {
		t["$value"] = common.NormalizeNumber(raw)
	}
	withScopes(t, s)
	return t
}

func withScopes(t map[string]any, s scope.Scope) {
	if s.HasOpinion() {
		t["$extensions"] = map[string]any{ScopesKey: s}
	}
}

// SetNested stores value at keys below doc, creating groups as needed. A
// scalar or token found on the way is replaced by a new group.
func SetNested(doc map[string]any, keys []string, value any) {
	if len(keys) == 0 {
		return
	}
	cur := doc
	for _, k := range keys[:len(keys)-1] {
		next, ok := cur[k].(map[string]any)
		if !ok || isToken(next) {
			next = make(map[string]any)
			cur[k] = next
		}
		cur = next
	}
	cur[keys[len(keys)-1]] = value
}

func isToken(node map[string]any) bool {
	_, ok := node["$value"]
	return ok
}

// CountTokens returns the number of tokens in a document, ignoring
// "$"-prefixed metadata.
func CountTokens(doc map[string]any) int {
	n := 0
	for k, v := range doc {
		if strings.HasPrefix(k, "$") {
			continue
		}
		node, ok := v.(map[string]any)
		if !ok {
			continue
		}
		if isToken(node) {
			n++
		} else {
			n += CountTokens(node)
		}
	}
	return n
}
