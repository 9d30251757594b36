/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package flatjson provides flat key-value JSON formatting for design tokens.
package flatjson

import (
	"bennypowers.dev/hopetokens/convert/formatter"
	"bennypowers.dev/hopetokens/convert/formatter/css"
	"bennypowers.dev/hopetokens/model"
)

// Formatter outputs the resolved custom properties of one mode as flat
// key-value JSON.
type Formatter struct {
	mode model.Mode
}

// New creates a new flat JSON formatter for the light mode.
func New() *Formatter {
	return &Formatter{mode: model.Light}
}

// NewForMode creates a new flat JSON formatter for mode. The dark map is
// the light map with the dark declarations applied on top.
func NewForMode(mode model.Mode) *Formatter {
	return &Formatter{mode: mode}
}

// Format converts the model to flat key-value JSON.
func (f *Formatter) Format(m *model.Model, opts formatter.Options) ([]byte, error) {
	return formatter.MarshalJSON(Values(m, f.mode, opts.Prefix))
}

// Values returns the resolved value of every custom property in mode,
// keyed by name without the leading "--".
func Values(m *model.Model, mode model.Mode, prefix string) map[string]string {
	light, dark := css.Declarations(m, prefix)

	result := make(map[string]string, len(light)+len(dark))
	for _, d := range light {
		result[d.Name] = d.Value
	}
	if mode == model.Dark {
		for _, d := range dark {
			result[d.Name] = d.Value
		}
	}
	return result
}
