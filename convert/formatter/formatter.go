/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package formatter provides the interface and common utilities for token formatters.
package formatter

import (
	"encoding/json"
	"strings"

	"bennypowers.dev/hopetokens/model"
	"bennypowers.dev/hopetokens/resolver"
)

// Formatter defines the interface for output formatters.
type Formatter interface {
	// Format renders the model to the target format.
	Format(m *model.Model, opts Options) ([]byte, error)
}

// Options configures formatter behavior.
type Options struct {
	// Prefix is added to every CSS custom property name.
	Prefix string

	// Header is emitted as a comment at the top of text outputs.
	Header string
}

// CommentStyle selects how FormatHeader wraps header text.
type CommentStyle int

const (
	// CStyleComments wraps the header in a /* */ block.
	CStyleComments CommentStyle = iota

	// LineComments prefixes every header line with //.
	LineComments
)

// FormatHeader renders header text as a comment followed by a blank line.
// An empty header yields an empty string.
func FormatHeader(header string, style CommentStyle) string {
	header = strings.TrimRight(header, "\n")
	if header == "" {
		return ""
	}
	lines := strings.Split(header, "\n")

	var b strings.Builder
	switch style {
	case LineComments:
		for _, line := range lines {
			b.WriteString(strings.TrimRight("// "+line, " "))
			b.WriteByte('\n')
		}
	default:
		if len(lines) == 1 {
			b.WriteString("/* " + lines[0] + " */\n")
			break
		}
		b.WriteString("/*\n")
		for _, line := range lines {
			b.WriteString(strings.TrimRight(" * "+line, " "))
			b.WriteByte('\n')
		}
		b.WriteString(" */\n")
	}
	b.WriteByte('\n')
	return b.String()
}

// ResolvedString resolves references in a raw token value against reg and
// renders the result as it appears in a stylesheet. Numbers print in their
// shortest form.
func ResolvedString(reg *resolver.Registry, v any) string {
	return resolver.Stringify(reg.Resolve(v))
}

// MarshalJSON renders v as two-space indented JSON with a trailing newline.
func MarshalJSON(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
