/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package css provides CSS custom property formatting for design tokens.
package css

import (
	"strings"

	"bennypowers.dev/hopetokens/convert/formatter"
	"bennypowers.dev/hopetokens/load"
	"bennypowers.dev/hopetokens/model"
	"bennypowers.dev/hopetokens/resolver"
	"bennypowers.dev/hopetokens/token"
)

// Selector is the selector wrapping a declaration block.
type Selector string

const (
	// SelectorRoot scopes the default mode to the document root.
	SelectorRoot Selector = ":root"

	// SelectorDark is the default class selector for the alternate mode.
	SelectorDark Selector = ".dark"
)

// Font shorthand fallbacks for absent typography sub-properties.
const (
	DefaultFontWeight = "400"
	DefaultFontSize   = "16px"
	DefaultLineHeight = "normal"
	DefaultFontFamily = "sans-serif"
)

// Options configures CSS output.
type Options struct {
	// Selector wraps the default mode. Defaults to :root.
	Selector Selector

	// DarkSelector wraps the alternate mode. Defaults to .dark.
	DarkSelector Selector
}

// Declaration is one custom property declaration. Name has no leading "--".
type Declaration struct {
	Name  string
	Value string
}

// Formatter outputs CSS custom properties.
type Formatter struct {
	opts Options
}

// New creates a new CSS formatter with default options.
func New() *Formatter {
	return &Formatter{}
}

// NewWithOptions creates a new CSS formatter with the given options.
func NewWithOptions(opts Options) *Formatter {
	return &Formatter{opts: opts}
}

// Format renders the default mode block followed by the alternate mode block.
func (f *Formatter) Format(m *model.Model, opts formatter.Options) ([]byte, error) {
	root := f.opts.Selector
	if root == "" {
		root = SelectorRoot
	}
	dark := f.opts.DarkSelector
	if dark == "" {
		dark = SelectorDark
	}

	light, alternate := Declarations(m, opts.Prefix)

	var b strings.Builder
	b.WriteString(formatter.FormatHeader(opts.Header, formatter.CStyleComments))
	writeBlock(&b, root, light)
	b.WriteString("\n")
	writeBlock(&b, dark, alternate)
	return []byte(b.String()), nil
}

func writeBlock(b *strings.Builder, selector Selector, decls []Declaration) {
	b.WriteString(string(selector))
	b.WriteString(" {\n")
	for _, d := range decls {
		b.WriteString("  ")
		b.WriteString(token.CustomProperty(d.Name))
		b.WriteString(": ")
		b.WriteString(d.Value)
		b.WriteString(";\n")
	}
	b.WriteString("}\n")
}

// Declarations returns the resolved declarations of the default mode block
// and of the alternate mode block, in emission order.
//
// The default block holds, in order: global colors, global spacing, global
// dimensions, font sizes, line heights, radii, typography shorthands, the
// default semantic colors and the brand spacing aliases. Padding and margin
// aliases collapse onto one spacing-<suffix> variable, first occurrence
// winning. A name declared twice keeps its first position and takes the
// later value. The alternate block holds only the alternate semantic colors.
func Declarations(m *model.Model, prefix string) (light, dark []Declaration) {
	lightReg := m.Registry(model.Light)

	var l block
	for _, layer := range Layers {
		for _, e := range m.Entries(layer.Role) {
			l.add(token.VariableName(prefix, layer.Prefix, e.Name), formatter.ResolvedString(lightReg, e.Value))
		}
	}

	for _, e := range m.Entries(load.TypographyBrand) {
		props, ok := e.Composite()
		if !ok {
			continue
		}
		l.add(VariableName(prefix, load.TypographyBrand, e.Name), FontShorthand(lightReg, props))
	}

	for _, e := range m.Entries(load.ColorBrandLight) {
		l.add(VariableName(prefix, load.ColorBrandLight, e.Name), formatter.ResolvedString(lightReg, e.Value))
	}

	seen := make(map[string]bool)
	for _, e := range m.Entries(load.SpacingBrand) {
		name, suffix, unified := token.SpacingVariableName(prefix, e.Name)
		if unified {
			if seen[suffix] {
				continue
			}
			seen[suffix] = true
		}
		l.add(name, formatter.ResolvedString(lightReg, e.Value))
	}

	darkReg := m.Registry(model.Dark)
	var d block
	for _, e := range m.Entries(load.ColorBrandDark) {
		d.add(VariableName(prefix, load.ColorBrandDark, e.Name), formatter.ResolvedString(darkReg, e.Value))
	}

	return l.decls, d.decls
}

// Layer pairs a source with the variable prefix of its entries.
type Layer struct {
	Role   load.Role
	Prefix string
}

// Layers are the layer-prefixed sources in emission order.
var Layers = []Layer{
	{load.ColorGlobal, token.LayerColor},
	{load.SpacingGlobal, token.LayerSpacing},
	{load.DimensionGlobal, token.LayerDimension},
	{load.FontSizeBrand, token.LayerText},
	{load.LineHeightBrand, token.LayerLeading},
	{load.RadiusBrand, token.LayerRounded},
}

// VariableName returns the variable an entry of role is declared as.
func VariableName(prefix string, role load.Role, name string) string {
	for _, layer := range Layers {
		if layer.Role == role {
			return token.VariableName(prefix, layer.Prefix, name)
		}
	}
	switch role {
	case load.TypographyBrand:
		return token.VariableName(prefix, "", token.TypographyName(name))
	case load.SpacingBrand:
		variable, _, _ := token.SpacingVariableName(prefix, name)
		return variable
	}
	return token.VariableName(prefix, "", name)
}

// FontShorthand joins the typography sub-properties into the CSS font
// shorthand "<weight> <size>/<line-height> <family>", resolving each one
// and falling back to the defaults for absent or empty values.
func FontShorthand(reg *resolver.Registry, props map[string]any) string {
	part := func(key, fallback string) string {
		v, ok := props[key]
		if !ok || v == nil || v == "" {
			return fallback
		}
		return formatter.ResolvedString(reg, v)
	}
	return part("fontWeight", DefaultFontWeight) + " " +
		part("fontSize", DefaultFontSize) + "/" +
		part("lineHeight", DefaultLineHeight) + " " +
		part("fontFamily", DefaultFontFamily)
}

type block struct {
	decls []Declaration
	index map[string]int
}

func (b *block) add(name, value string) {
	if b.index == nil {
		b.index = make(map[string]int)
	}
	if i, ok := b.index[name]; ok {
		b.decls[i].Value = value
		return
	}
	b.index[name] = len(b.decls)
	b.decls = append(b.decls, Declaration{Name: name, Value: value})
}
