/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package convert renders a token model into output artifacts.
package convert

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"bennypowers.dev/hopetokens/convert/formatter/css"
	"bennypowers.dev/hopetokens/convert/formatter/figma"
	"bennypowers.dev/hopetokens/convert/formatter/tailwind"
	"bennypowers.dev/hopetokens/model"
)

// Options configures rendering.
type Options struct {
	// Prefix is added to every CSS custom property name.
	Prefix string

	// Header is written as a comment at the top of CSS and JS outputs.
	Header string

	// Selector wraps the light CSS block (default ":root").
	Selector string

	// DarkSelector wraps the dark CSS block (default ".dark").
	DarkSelector string

	// ModeNames overrides the Figma mode names per mode.
	ModeNames map[model.Mode]string

	// TailwindModule selects the theme extension flavor (default json).
	TailwindModule tailwind.Module
}

// DefaultOptions returns options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Selector:     string(css.SelectorRoot),
		DarkSelector: string(css.SelectorDark),
		ModeNames: map[model.Mode]string{
			model.Light: figma.DefaultModeName(model.Light),
			model.Dark:  figma.DefaultModeName(model.Dark),
		},
		TailwindModule: tailwind.ModuleJSON,
	}
}

// Artifact is one rendered output.
type Artifact struct {
	Format Format
	Path   string
	Data   []byte

	// Tokens is the number of tokens the artifact carries.
	Tokens int
}

// Render renders every target concurrently. Targets maps a format to its
// output path; artifacts are returned in ValidFormats order. The model is
// read-only, so formatters share it without locking.
func Render(ctx context.Context, m *model.Model, targets map[Format]string, opts Options) ([]Artifact, error) {
	var formats []Format
	for _, f := range ValidFormats() {
		if _, ok := targets[Format(f)]; ok {
			formats = append(formats, Format(f))
		}
	}
	for f := range targets {
		if !slices.Contains(formats, f) {
			return nil, fmt.Errorf("unsupported format: %s", f)
		}
	}

	artifacts := make([]Artifact, len(formats))
	g, ctx := errgroup.WithContext(ctx)
	for i, format := range formats {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := FormatTokens(m, format, opts)
			if err != nil {
				return fmt.Errorf("rendering %s: %w", format, err)
			}
			artifacts[i] = Artifact{
				Format: format,
				Path:   targets[format],
				Data:   data,
				Tokens: countTokens(m, format, opts, data),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return artifacts, nil
}

// countTokens counts from the rendered data where it can, so values are
// not resolved a second time.
func countTokens(m *model.Model, format Format, opts Options, data []byte) int {
	switch format {
	case FormatCSS:
		return bytes.Count(data, []byte("\n  --"))
	case FormatFigmaLight, FormatFigmaDark:
		var doc map[string]any
		if err := json.Unmarshal(data, &doc); err != nil {
			return 0
		}
		return figma.CountTokens(doc)
	case FormatTailwind:
		return len(tailwind.References(tailwind.Extend(m, opts.Prefix)))
	case FormatFlatJSON:
		var values map[string]string
		if err := json.Unmarshal(data, &values); err != nil {
			return 0
		}
		return len(values)
	}
	return 0
}
