/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"regexp"
	"strings"
)

// Every rule that turns a token path into a CSS custom property name lives
// here. The CSS sheet and the theme extension both call these functions, so
// a variable referenced by the theme always exists in the sheet.

// Layer prefixes for CSS custom property names.
const (
	LayerColor     = "color"
	LayerSpacing   = "spacing"
	LayerDimension = "dimension"
	LayerText      = "text"
	LayerLeading   = "leading"
	LayerRounded   = "rounded"
)

// unifiedSpacingPattern matches brand padding and margin aliases such as
// "padding-p-4" and "margin-m-0-5".
var unifiedSpacingPattern = regexp.MustCompile(`^(?:padding-p|margin-m)-(.+)$`)

// JoinName joins an emission prefix and a key with a hyphen.
func JoinName(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "-" + key
}

// JoinPath joins a registry prefix and a key with a dot.
func JoinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

// VariableName returns a custom property name without the leading "--".
// prefix is the project-wide variable prefix and layer the token layer
// prefix; both may be empty. Dots in the prefix become hyphens.
func VariableName(prefix, layer, name string) string {
	result := JoinName(layer, name)
	if prefix != "" {
		result = JoinName(strings.ReplaceAll(prefix, ".", "-"), result)
	}
	return result
}

// CustomProperty returns the declared form of a variable name ("--name").
func CustomProperty(name string) string {
	return "--" + name
}

// VarRef returns the CSS indirection for a variable name ("var(--name)").
func VarRef(name string) string {
	return "var(--" + name + ")"
}

// UnifiedSpacingSuffix extracts the scale suffix from a flattened brand
// spacing name. "padding-p-4" and "margin-m-4" both yield "4".
func UnifiedSpacingSuffix(name string) (string, bool) {
	m := unifiedSpacingPattern.FindStringSubmatch(name)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// SpacingVariableName returns the variable name for a flattened brand
// spacing alias. Padding and margin aliases map onto the unified
// "spacing-<suffix>" scale; anything else keeps its own name.
func SpacingVariableName(prefix, name string) (variable, suffix string, unified bool) {
	if suffix, ok := UnifiedSpacingSuffix(name); ok {
		return VariableName(prefix, LayerSpacing, suffix), suffix, true
	}
	return VariableName(prefix, "", name), "", false
}

// TypographyName converts a typography token name such as "heading/xxl"
// into its variable form "heading-xxl".
func TypographyName(name string) string {
	return strings.ReplaceAll(name, "/", "-")
}

// ThemeColorKey returns the theme key for a flattened semantic color name,
// dropping the redundant "color-" lead: "color-text-neutral" -> "text-neutral".
func ThemeColorKey(name string) string {
	return strings.TrimPrefix(name, LayerColor+"-")
}
