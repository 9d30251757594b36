/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package scope_test

import (
	"testing"

	"bennypowers.dev/hopetokens/scope"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		category string
		sub      string
		expected scope.Scope
	}{
		{"text", "neutral", scope.Scope{scope.TextFill}},
		{"icon", "", scope.Scope{scope.ShapeFill, scope.FrameFill}},
		{"link", "hover", scope.Scope{scope.TextFill}},
		{"border", "default", scope.Scope{scope.Stroke}},
		{"background", "surface", scope.Scope{scope.ShapeFill, scope.FrameFill}},
		{"elevation", "surface", scope.Scope{scope.ShapeFill, scope.FrameFill}},
		{"elevation", "shadow", scope.Scope{scope.EffectColor}},
		{"elevation", "glow", nil},
		{"accent", "", nil},
		{"", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.category+"/"+tt.sub, func(t *testing.T) {
			got := scope.Classify(tt.category, tt.sub)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.expected != nil, got.HasOpinion())
		})
	}
}

func TestClassify_ResultsAreIndependent(t *testing.T) {
	a := scope.Classify("icon", "")
	a[0] = scope.Gap
	assert.Equal(t, scope.ShapeFill, scope.Classify("icon", "")[0])
}

func TestForRole(t *testing.T) {
	hidden := []scope.Role{scope.RolePalette, scope.RoleDimension, scope.RoleSpacingScale}
	for _, r := range hidden {
		s := scope.ForRole(r)
		assert.True(t, s.IsHidden(), "role %d", r)
		assert.True(t, s.HasOpinion(), "role %d", r)
	}

	assert.Equal(t, scope.Scope{scope.FontSize}, scope.ForRole(scope.RoleFontSize))
	assert.Equal(t, scope.Scope{scope.LineHeight}, scope.ForRole(scope.RoleLineHeight))
	assert.Equal(t, scope.Scope{scope.CornerRadius}, scope.ForRole(scope.RoleRadius))
	assert.Equal(t, scope.Scope{scope.Gap}, scope.ForRole(scope.RoleSpacing))
}

func TestScope_NilIsNotHidden(t *testing.T) {
	var s scope.Scope
	assert.False(t, s.IsHidden())
	assert.False(t, s.HasOpinion())
}
