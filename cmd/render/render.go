/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package render provides shared rendering functions for CLI output.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/mazznoer/csscolorparser"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/hopetokens/convert/formatter"
	"bennypowers.dev/hopetokens/convert/formatter/css"
	"bennypowers.dev/hopetokens/load"
	"bennypowers.dev/hopetokens/model"
	"bennypowers.dev/hopetokens/resolver"
	"bennypowers.dev/hopetokens/token"
)

// Row holds computed display values for a single token.
type Row struct {
	Name     string   `json:"name"`               // CSS variable name with prefix
	Layer    string   `json:"layer"`              // Source role, e.g. colorGlobal
	Key      string   `json:"key"`                // Dotted registry path
	Type     string   `json:"type"`               // Token type or "-"
	Value    string   `json:"value"`              // Resolved display value
	Raw      string   `json:"raw"`                // Authored value
	RefChain []string `json:"refChain,omitempty"` // Registry keys followed to reach Value
	IsColor  bool     `json:"-"`                  // Whether Value is a parseable color
	Path     []string `json:"-"`                  // Source path below the document root
}

// Roles returns the sources listed for mode: every source except the
// semantic color layer of the other mode.
func Roles(mode model.Mode) []load.Role {
	other := model.BrandRole(model.Light)
	if mode == model.Light {
		other = model.BrandRole(model.Dark)
	}
	roles := make([]load.Role, 0, len(load.Roles)-1)
	for _, r := range load.Roles {
		if r != other {
			roles = append(roles, r)
		}
	}
	return roles
}

// ComputeRows transforms the entries of m into display rows, resolving
// against the registry of mode.
func ComputeRows(m *model.Model, mode model.Mode, prefix string) []Row {
	reg := m.Registry(mode)

	var rows []Row
	for _, role := range Roles(mode) {
		for _, e := range m.Entries(role) {
			row := Row{
				Name:  token.CustomProperty(css.VariableName(prefix, role, e.Name)),
				Layer: string(role),
				Key:   e.Key,
				Type:  e.Type,
				Raw:   resolver.Stringify(e.Value),
				Path:  e.Path,
			}
			if row.Type == "" {
				row.Type = "-"
			}

			if props, ok := e.Composite(); ok {
				row.Value = css.FontShorthand(reg, props)
			} else {
				row.Value = formatter.ResolvedString(reg, e.Value)
				row.RefChain = RefChain(reg, e.Value)
			}

			if e.Type == "color" && !strings.Contains(row.Value, "{") {
				_, err := csscolorparser.Parse(row.Value)
				row.IsColor = err == nil
			}

			rows = append(rows, row)
		}
	}
	return rows
}

// RefChain follows single-reference aliases from v and returns the keys
// visited. It stops at a literal, a missing key or a repeated key.
func RefChain(reg *resolver.Registry, v any) []string {
	var chain []string
	seen := make(map[string]bool)
	for token.IsAlias(v) {
		key := token.StripBraces(v.(string))
		if seen[key] {
			break
		}
		seen[key] = true
		chain = append(chain, key)

		next, ok := reg.Lookup(key)
		if !ok {
			break
		}
		v = next
	}
	return chain
}

// ColumnWidths calculates the max width needed for each column.
func ColumnWidths(rows []Row) (name, typ, val int) {
	name, typ, val = 4, 4, 5 // minimums for headers
	for _, r := range rows {
		name = max(name, len(r.Name))
		typ = max(typ, len(r.Type))
		val = max(val, len(r.Value))
	}
	return
}

// ColorSwatch returns a 24-bit ANSI color block for the given color value.
func ColorSwatch(value string) string {
	c, err := csscolorparser.Parse(value)
	if err != nil {
		return ""
	}
	r, g, b, _ := c.RGBA255()
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m ", r, g, b)
}

// Table renders rows as an aligned table. Swatches are drawn in front of
// color values when swatches is set.
func Table(w io.Writer, rows []Row, swatches bool) error {
	if len(rows) == 0 {
		return nil
	}
	nameW, typeW, _ := ColumnWidths(rows)
	for _, r := range rows {
		swatch := ""
		if swatches && r.IsColor {
			swatch = ColorSwatch(r.Value)
		}
		refChain := ""
		if len(r.RefChain) > 0 {
			refChain = " ← " + strings.Join(r.RefChain, " ← ")
		}
		if _, err := fmt.Fprintf(w, "%-*s  %-*s  %s%s%s\n", nameW, r.Name, typeW, r.Type, swatch, r.Value, refChain); err != nil {
			return err
		}
	}
	return nil
}

// JSON renders rows as an indented JSON array.
func JSON(w io.Writer, rows []Row) error {
	if rows == nil {
		rows = []Row{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

// Markdown renders rows as markdown tables, one section per source layer
// in order of first occurrence. Color values carry an inline swatch.
func Markdown(w io.Writer, rows []Row) error {
	if len(rows) == 0 {
		return nil
	}

	var order []string
	byLayer := make(map[string][]Row)
	for _, r := range rows {
		if _, exists := byLayer[r.Layer]; !exists {
			order = append(order, r.Layer)
		}
		byLayer[r.Layer] = append(byLayer[r.Layer], r)
	}

	var sb strings.Builder
	for i, layer := range order {
		if i > 0 {
			sb.WriteString("\n")
		}
		title := LayerTitle(layer)
		fmt.Fprintf(&sb, "## %s {#%s}\n\n", title, slugify(title))

		group := byLayer[layer]
		nameW, valW, refW := 4, 5, 9 // "Reference"
		cells := make([]string, len(group))
		for j, r := range group {
			cells[j] = markdownValue(r)
			nameW = max(nameW, len(r.Name))
			valW = max(valW, len(cells[j]))
			refW = max(refW, len(strings.Join(r.RefChain, " ← ")))
		}

		fmt.Fprintf(&sb, "| %-*s | %-*s | %-*s |\n", nameW, "Name", valW, "Value", refW, "Reference")
		fmt.Fprintf(&sb, "|-%s-|-%s-|-%s-|\n", strings.Repeat("-", nameW), strings.Repeat("-", valW), strings.Repeat("-", refW))
		for j, r := range group {
			fmt.Fprintf(&sb, "| %-*s | %-*s | %-*s |\n", nameW, r.Name, valW, cells[j], refW, strings.Join(r.RefChain, " ← "))
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func markdownValue(r Row) string {
	value := "`" + r.Value + "`"
	if !r.IsColor {
		return value
	}
	c, err := csscolorparser.Parse(r.Value)
	if err != nil {
		return value
	}
	return fmt.Sprintf(`<span style="background:%s">&nbsp;&nbsp;</span> %s`, c.HexString(), value)
}

// Names renders just the token names, one per line.
func Names(w io.Writer, rows []Row) error {
	for _, r := range rows {
		if _, err := fmt.Fprintln(w, r.Name); err != nil {
			return err
		}
	}
	return nil
}

// LayerTitle converts a source role name to a heading.
// e.g., "colorBrandLight" -> "Color Brand Light"
func LayerTitle(layer string) string {
	var words strings.Builder
	for i, r := range layer {
		if i > 0 && unicode.IsUpper(r) {
			words.WriteRune(' ')
		}
		words.WriteRune(r)
	}
	return toTitleCase(words.String())
}

// slugify converts a name to a URL-safe anchor ID.
// e.g., "Color Brand" -> "color-brand"
func slugify(name string) string {
	var result strings.Builder
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			result.WriteRune(r)
		} else if r == ' ' || r == '-' || r == '_' || r == '.' {
			result.WriteRune('-')
		}
	}
	// Remove consecutive dashes
	s := result.String()
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	return strings.Trim(s, "-")
}

// toTitleCase converts a string to Title Case.
func toTitleCase(s string) string {
	caser := cases.Title(language.English)
	return caser.String(s)
}
