/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package tailwind provides Tailwind theme extension formatting for design tokens.
//
// Every entry is a var() indirection onto a custom property of the CSS
// output. Names are derived with the same token naming functions the CSS
// formatter uses, never from its output.
package tailwind

import (
	"encoding/json"
	"fmt"
	"strings"

	"bennypowers.dev/hopetokens/convert/formatter"
	"bennypowers.dev/hopetokens/load"
	"bennypowers.dev/hopetokens/model"
	"bennypowers.dev/hopetokens/token"
)

// DefaultKey holds a semantic color whose key names a palette, so the
// palette and the semantic color both keep a theme entry.
const DefaultKey = "DEFAULT"

// Module is the output flavor.
type Module string

const (
	// ModuleJSON outputs a plain JSON object.
	ModuleJSON Module = "json"

	// ModuleESM outputs an ES module default export.
	ModuleESM Module = "esm"

	// ModuleCJS outputs a CommonJS module export.
	ModuleCJS Module = "cjs"
)

// ParseModule converts a string to a Module.
func ParseModule(s string) (Module, error) {
	switch Module(strings.ToLower(s)) {
	case ModuleJSON, "":
		return ModuleJSON, nil
	case ModuleESM:
		return ModuleESM, nil
	case ModuleCJS:
		return ModuleCJS, nil
	}
	return "", fmt.Errorf("unknown tailwind module: %s (valid: json, esm, cjs)", s)
}

// Theme extension keys.
const (
	KeyColors       = "colors"
	KeySpacing      = "spacing"
	KeyDimension    = "dimension"
	KeyFontSize     = "fontSize"
	KeyLineHeight   = "lineHeight"
	KeyBorderRadius = "borderRadius"
	KeyTypography   = "typography"
)

// Options configures Tailwind output.
type Options struct {
	// Module selects the output flavor. Defaults to json.
	Module Module
}

// Formatter outputs a Tailwind theme.extend object.
type Formatter struct {
	opts Options
}

// New creates a new Tailwind formatter with default options.
func New() *Formatter {
	return &Formatter{}
}

// NewWithOptions creates a new Tailwind formatter with the given options.
func NewWithOptions(opts Options) *Formatter {
	return &Formatter{opts: opts}
}

// Format renders the theme extension in the configured module flavor.
func (f *Formatter) Format(m *model.Model, opts formatter.Options) ([]byte, error) {
	extend := Extend(m, opts.Prefix)

	switch f.opts.Module {
	case ModuleESM, ModuleCJS:
		data, err := json.MarshalIndent(extend, "", "  ")
		if err != nil {
			return nil, err
		}
		var b strings.Builder
		b.WriteString(formatter.FormatHeader(opts.Header, formatter.CStyleComments))
		if f.opts.Module == ModuleESM {
			b.WriteString("export default ")
		} else {
			b.WriteString("module.exports = ")
		}
		b.Write(data)
		b.WriteString(";\n")
		return []byte(b.String()), nil
	}
	return formatter.MarshalJSON(extend)
}

// Extend builds the theme.extend object.
//
// Palette colors nest by palette ("neutral" -> "100"); semantic colors
// are flat keys without the "color-" lead, including keys only the dark
// mode defines. A semantic key naming a palette is stored as that
// palette's DEFAULT. Spacing holds the global scale, the unified padding and
// margin suffixes and any other brand spacing alias under its own name.
func Extend(m *model.Model, prefix string) map[string]any {
	colors := make(map[string]any)
	for _, e := range m.Entries(load.ColorGlobal) {
		ref := token.VarRef(token.VariableName(prefix, token.LayerColor, e.Name))
		if len(e.Path) < 2 {
			colors[e.Name] = ref
			continue
		}
		palette, ok := colors[e.Path[0]].(map[string]string)
		if !ok {
			palette = make(map[string]string)
			colors[e.Path[0]] = palette
		}
		palette[strings.Join(e.Path[1:], "-")] = ref
	}
	for _, role := range []load.Role{load.ColorBrandLight, load.ColorBrandDark} {
		for _, e := range m.Entries(role) {
			key := token.ThemeColorKey(e.Name)
			ref := token.VarRef(token.VariableName(prefix, "", e.Name))
			if palette, ok := colors[key].(map[string]string); ok {
				palette[DefaultKey] = ref
				continue
			}
			colors[key] = ref
		}
	}

	spacing := layer(m, load.SpacingGlobal, prefix, token.LayerSpacing)
	for _, e := range m.Entries(load.SpacingBrand) {
		name, suffix, unified := token.SpacingVariableName(prefix, e.Name)
		key := e.Name
		if unified {
			key = suffix
		}
		spacing[key] = token.VarRef(name)
	}

	typography := make(map[string]string)
	for _, e := range m.Entries(load.TypographyBrand) {
		if _, ok := e.Composite(); !ok {
			continue
		}
		name := token.TypographyName(e.Name)
		typography[name] = token.VarRef(token.VariableName(prefix, "", name))
	}

	return map[string]any{
		KeyColors:       colors,
		KeySpacing:      spacing,
		KeyDimension:    layer(m, load.DimensionGlobal, prefix, token.LayerDimension),
		KeyFontSize:     layer(m, load.FontSizeBrand, prefix, token.LayerText),
		KeyLineHeight:   layer(m, load.LineHeightBrand, prefix, token.LayerLeading),
		KeyBorderRadius: layer(m, load.RadiusBrand, prefix, token.LayerRounded),
		KeyTypography:   typography,
	}
}

func layer(m *model.Model, role load.Role, prefix, name string) map[string]string {
	result := make(map[string]string)
	for _, e := range m.Entries(role) {
		result[e.Name] = token.VarRef(token.VariableName(prefix, name, e.Name))
	}
	return result
}

// References returns every custom property name, without "--", that a
// theme extension points at.
func References(extend map[string]any) []string {
	var names []string
	var collect func(v any)
	collect = func(v any) {
		switch x := v.(type) {
		case string:
			if name, ok := strings.CutPrefix(x, "var(--"); ok {
				names = append(names, strings.TrimSuffix(name, ")"))
			}
		case map[string]string:
			for _, s := range x {
				collect(s)
			}
		case map[string]any:
			for _, s := range x {
				collect(s)
			}
		}
	}
	collect(extend)
	return names
}
