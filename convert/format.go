/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package convert

import (
	"fmt"
	"strings"

	"bennypowers.dev/hopetokens/convert/formatter"
	"bennypowers.dev/hopetokens/convert/formatter/css"
	"bennypowers.dev/hopetokens/convert/formatter/figma"
	"bennypowers.dev/hopetokens/convert/formatter/flatjson"
	"bennypowers.dev/hopetokens/convert/formatter/tailwind"
	"bennypowers.dev/hopetokens/model"
)

// Format represents an output format.
type Format string

const (
	// FormatCSS outputs CSS custom properties, light and dark blocks.
	FormatCSS Format = "css"

	// FormatFigmaLight outputs the light Figma variables document.
	FormatFigmaLight Format = "figma-light"

	// FormatFigmaDark outputs the dark Figma variables document.
	FormatFigmaDark Format = "figma-dark"

	// FormatTailwind outputs the Tailwind theme extension.
	FormatTailwind Format = "tailwind"

	// FormatFlatJSON outputs resolved light values as flat key-value JSON.
	FormatFlatJSON Format = "json"
)

// ValidFormats returns all valid format strings, in build order.
func ValidFormats() []string {
	return []string{
		string(FormatCSS),
		string(FormatFigmaLight),
		string(FormatFigmaDark),
		string(FormatTailwind),
		string(FormatFlatJSON),
	}
}

// ParseFormat converts a string to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "css", "":
		return FormatCSS, nil
	case "figma-light", "figma":
		return FormatFigmaLight, nil
	case "figma-dark":
		return FormatFigmaDark, nil
	case "tailwind", "tw":
		return FormatTailwind, nil
	case "json", "flat", "flat-json":
		return FormatFlatJSON, nil
	default:
		return "", fmt.Errorf("unknown format: %s (valid: %s)", s, strings.Join(ValidFormats(), ", "))
	}
}

// FormatTokens renders the model in the specified output format.
func FormatTokens(m *model.Model, format Format, opts Options) ([]byte, error) {
	f, err := newFormatter(format, opts)
	if err != nil {
		return nil, err
	}
	return f.Format(m, formatter.Options{
		Prefix: opts.Prefix,
		Header: opts.Header,
	})
}

func newFormatter(format Format, opts Options) (formatter.Formatter, error) {
	switch format {
	case FormatCSS:
		return css.NewWithOptions(css.Options{
			Selector:     css.Selector(opts.Selector),
			DarkSelector: css.Selector(opts.DarkSelector),
		}), nil
	case FormatFigmaLight:
		return figma.NewWithOptions(figma.Options{
			Mode:     model.Light,
			ModeName: opts.ModeNames[model.Light],
		}), nil
	case FormatFigmaDark:
		return figma.NewWithOptions(figma.Options{
			Mode:     model.Dark,
			ModeName: opts.ModeNames[model.Dark],
		}), nil
	case FormatTailwind:
		return tailwind.NewWithOptions(tailwind.Options{Module: opts.TailwindModule}), nil
	case FormatFlatJSON:
		return flatjson.New(), nil
	}
	return nil, fmt.Errorf("unsupported format: %s", format)
}
