/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package scope classifies tokens into design-tool usage scopes.
package scope

// Tag is a usage-context label. Values are the wire names design tools expect.
type Tag string

const (
	TextFill     Tag = "TEXT_FILL"
	ShapeFill    Tag = "SHAPE_FILL"
	FrameFill    Tag = "FRAME_FILL"
	Stroke       Tag = "STROKE"
	EffectColor  Tag = "EFFECT_COLOR"
	FontSize     Tag = "FONT_SIZE"
	LineHeight   Tag = "LINE_HEIGHT"
	CornerRadius Tag = "CORNER_RADIUS"
	Gap          Tag = "GAP"
)

// Scope is the outcome of classification. A nil Scope carries no opinion
// and is omitted from output. A non-nil empty Scope hides the token from
// every usage context.
type Scope []Tag

// Hidden returns the explicit empty scope.
func Hidden() Scope {
	return Scope{}
}

// IsHidden reports whether s explicitly hides the token.
func (s Scope) IsHidden() bool {
	return s != nil && len(s) == 0
}

// HasOpinion reports whether s should be serialized.
func (s Scope) HasOpinion() bool {
	return s != nil
}

var semantic = map[string][]Tag{
	"text":       {TextFill},
	"icon":       {ShapeFill, FrameFill},
	"link":       {TextFill},
	"border":     {Stroke},
	"background": {ShapeFill, FrameFill},
}

var elevation = map[string][]Tag{
	"surface": {ShapeFill, FrameFill},
	"shadow":  {EffectColor},
}

// Classify maps a semantic color category, and for "elevation" its
// sub-category, to a scope. Unknown categories yield nil.
func Classify(category, sub string) Scope {
	var tags []Tag
	var ok bool
	if category == "elevation" {
		tags, ok = elevation[sub]
	} else {
		tags, ok = semantic[category]
	}
	if !ok {
		return nil
	}
	return append(Scope(nil), tags...)
}

// Role is a token layer with a fixed scope.
type Role int

const (
	// RolePalette is a global color primitive.
	RolePalette Role = iota
	// RoleDimension is a raw dimension scale value.
	RoleDimension
	// RoleSpacingScale is a raw spacing scale value.
	RoleSpacingScale
	// RoleFontSize is a brand font-size alias.
	RoleFontSize
	// RoleLineHeight is a brand line-height alias.
	RoleLineHeight
	// RoleRadius is a brand corner-radius alias.
	RoleRadius
	// RoleSpacing is a brand spacing alias.
	RoleSpacing
)

// ForRole returns the fixed scope of a layer. Primitives and raw scales
// are always hidden.
func ForRole(r Role) Scope {
	switch r {
	case RoleFontSize:
		return Scope{FontSize}
	case RoleLineHeight:
		return Scope{LineHeight}
	case RoleRadius:
		return Scope{CornerRadius}
	case RoleSpacing:
		return Scope{Gap}
	}
	return Hidden()
}
