/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package convert provides the convert command for hopetokens.
package convert

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"bennypowers.dev/hopetokens/cmd/project"
	convertlib "bennypowers.dev/hopetokens/convert"
)

// Cmd is the convert cobra command.
var Cmd = &cobra.Command{
	Use:   "convert",
	Short: "Render one output format",
	Long: `Render a single output format to a file or to stdout.

Output Formats:
  css          CSS custom properties, light and dark blocks (default)
  figma-light  Figma variables document for the light mode
  figma-dark   Figma variables document for the dark mode
  tailwind     Tailwind theme extension
  json         Flat name to resolved value JSON

Examples:
  # Print the CSS to stdout
  hopetokens convert

  # Write the dark Figma document
  hopetokens convert --format figma-dark -o figma/dark.json

  # Render the tailwind theme as an ES module
  hopetokens convert --format tailwind --module esm -o tailwind.tokens.js`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")
	Cmd.Flags().StringP("format", "f", "css", "Output format: "+strings.Join(convertlib.ValidFormats(), ", "))
	Cmd.Flags().String("module", "", "Tailwind module flavor: json, esm, cjs (default: from config)")
}

func run(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	formatFlag, _ := cmd.Flags().GetString("format")
	module, _ := cmd.Flags().GetString("module")

	format, err := convertlib.ParseFormat(formatFlag)
	if err != nil {
		return err
	}

	p, err := project.Open(cmd.Context(), project.FromFlags())
	if err != nil {
		return err
	}
	if module != "" {
		p.Config.TailwindModule = module
	}

	opts, err := p.Config.ConvertOptions()
	if err != nil {
		return err
	}

	outputBytes, err := convertlib.FormatTokens(p.Model, format, opts)
	if err != nil {
		return fmt.Errorf("error formatting output: %w", err)
	}

	if output == "" {
		_, err := cmd.OutOrStdout().Write(outputBytes)
		return err
	}

	if !filepath.IsAbs(output) {
		output = filepath.Join(p.Root, output)
	}
	if err := p.FS.MkdirAll(filepath.Dir(output), 0755); err != nil {
		return fmt.Errorf("error creating directory for %s: %w", output, err)
	}
	if err := p.FS.WriteFile(output, outputBytes, 0644); err != nil {
		return fmt.Errorf("error writing to %s: %w", output, err)
	}
	return nil
}
