/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package common

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
)

// ColorValue is a structured sRGB color: channel components in [0,1],
// an alpha channel and an uppercase "#RRGGBB" hex string.
type ColorValue struct {
	ColorSpace string    `json:"colorSpace"`
	Components []float64 `json:"components"`
	Alpha      float64   `json:"alpha"`
	Hex        string    `json:"hex"`
}

// Transparent is the sentinel substituted for the "transparent" keyword.
var Transparent = ColorValue{
	ColorSpace: "srgb",
	Components: []float64{0, 0, 0},
	Alpha:      0,
	Hex:        "#000000",
}

// ColorFromLiteral converts an authored color literal (hex with optional
// alpha, rgb(), hsl(), named colors) into a ColorValue. Components and
// alpha are rounded to four decimals. When the literal cannot be parsed
// the result is transparent black and ok is false.
func ColorFromLiteral(literal string) (value ColorValue, ok bool) {
	s := strings.TrimSpace(literal)
	if strings.EqualFold(s, "transparent") {
		return cloneColor(Transparent), true
	}

	c, err := csscolorparser.Parse(s)
	if err != nil {
		return cloneColor(Transparent), false
	}

	hex := colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex()
	return ColorValue{
		ColorSpace: "srgb",
		Components: []float64{Round4(c.R), Round4(c.G), Round4(c.B)},
		Alpha:      Round4(c.A),
		Hex:        strings.ToUpper(hex),
	}, true
}

// IsColor reports whether s parses as a CSS color.
func IsColor(s string) bool {
	_, err := csscolorparser.Parse(strings.TrimSpace(s))
	return err == nil
}

func cloneColor(c ColorValue) ColorValue {
	c.Components = append([]float64(nil), c.Components...)
	return c
}
