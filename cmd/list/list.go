/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package list provides the list command for hopetokens.
package list

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"bennypowers.dev/hopetokens/cmd/project"
	"bennypowers.dev/hopetokens/cmd/render"
	"bennypowers.dev/hopetokens/load"
	"bennypowers.dev/hopetokens/model"
)

// Cmd is the list cobra command.
var Cmd = &cobra.Command{
	Use:   "list",
	Short: "List flattened tokens with resolved values",
	Long: `List every flattened token under the name it is emitted as, with its
resolved value and the aliases followed to reach it.

Examples:
  # Table with color swatches
  hopetokens list

  # Dark mode semantic colors as markdown
  hopetokens list --mode dark --layer colorBrandDark --format markdown`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().String("format", "table", "Output format: table, json, markdown, names")
	Cmd.Flags().StringP("mode", "m", "light", "Mode to resolve in: light, dark")
	Cmd.Flags().String("layer", "", "Filter by source layer (e.g. colorGlobal)")
	Cmd.Flags().String("type", "", "Filter by token type")
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	modeFlag, _ := cmd.Flags().GetString("mode")
	layer, _ := cmd.Flags().GetString("layer")
	typeFilter, _ := cmd.Flags().GetString("type")

	mode, err := model.ParseMode(modeFlag)
	if err != nil {
		return err
	}
	if layer != "" {
		if _, err := load.ParseRole(layer); err != nil {
			return err
		}
	}

	p, err := project.Open(cmd.Context(), project.FromFlags())
	if err != nil {
		return err
	}

	rows := render.ComputeRows(p.Model, mode, p.Config.Prefix)
	rows = filterRows(rows, layer, typeFilter)

	out := cmd.OutOrStdout()
	switch strings.ToLower(format) {
	case "json":
		return render.JSON(out, rows)
	case "markdown", "md":
		return render.Markdown(out, rows)
	case "names":
		return render.Names(out, rows)
	case "table", "":
		return render.Table(out, rows, !color.NoColor)
	default:
		return fmt.Errorf("unknown format: %s (valid: table, json, markdown, names)", format)
	}
}

// filterRows returns rows matching the layer and type filters. Empty
// filters match everything.
func filterRows(rows []render.Row, layer, typ string) []render.Row {
	if layer == "" && typ == "" {
		return rows
	}
	filtered := make([]render.Row, 0, len(rows))
	for _, r := range rows {
		if layer != "" && r.Layer != layer {
			continue
		}
		if typ != "" && r.Type != typ {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}
