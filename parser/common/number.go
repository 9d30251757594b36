/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package common provides value normalization shared by parsers and formatters.
package common

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// LeadingNumberPattern matches the leading numeric run of a string such as
// "16px", "-0.5rem" or "1e3".
var LeadingNumberPattern = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`)

// NormalizeNumber converts an authored scalar into a plain number.
//
//   - numbers are returned as-is
//   - "120%" becomes 1.2
//   - "16px" becomes 16, "1.5" becomes 1.5
//   - anything unparseable becomes 0
func NormalizeNumber(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0
		}
		f, ok := leadingFloat(s)
		if !ok {
			return 0
		}
		if strings.HasSuffix(s, "%") {
			return f / 100
		}
		return f
	}
	return 0
}

// ParseNumber reports whether s starts with a number, and returns it.
func ParseNumber(s string) (float64, bool) {
	return leadingFloat(strings.TrimSpace(s))
}

func leadingFloat(s string) (float64, bool) {
	m := LeadingNumberPattern.FindString(s)
	if m == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// FormatNumber prints a number in its shortest form: 400, 1.5, 0.25.
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Round4 rounds to four decimal places.
func Round4(f float64) float64 {
	return math.Round(f*10000) / 10000
}
