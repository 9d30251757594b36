/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package build provides the build command for hopetokens.
package build

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"bennypowers.dev/hopetokens/cmd/project"
	"bennypowers.dev/hopetokens/config"
	"bennypowers.dev/hopetokens/convert"
	"bennypowers.dev/hopetokens/internal/logger"
)

// Cmd is the build cobra command.
var Cmd = &cobra.Command{
	Use:   "build",
	Short: "Build every configured output",
	Long: `Read all token sources and write the CSS custom properties, the light and
dark Figma variable documents and the Tailwind theme extension in one pass.

Token problems are reported as warnings and never fail the build; only
errors writing outputs do.

Examples:
  # Build with .config/hope-tokens.yaml or the defaults
  hopetokens build

  # Build only the CSS and the tailwind theme
  hopetokens build --only css --only tailwind

  # Prefix every variable
  hopetokens build --prefix hope`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringArray("only", nil, "Build only these formats (repeatable): "+fmt.Sprint(convert.ValidFormats()))
}

func run(cmd *cobra.Command, args []string) error {
	only, _ := cmd.Flags().GetStringArray("only")

	formats := make([]convert.Format, 0, len(only))
	for _, s := range only {
		f, err := convert.ParseFormat(s)
		if err != nil {
			return err
		}
		formats = append(formats, f)
	}

	p, err := project.Open(cmd.Context(), project.FromFlags())
	if err != nil {
		return err
	}

	artifacts, err := Build(cmd.Context(), p, formats)
	if err != nil {
		return err
	}
	report(cmd.OutOrStdout(), p.Root, artifacts)
	return nil
}

// Build renders the configured outputs of p, restricted to formats when
// any are given, and writes them to disk. Parent directories are created
// as needed. Artifacts are returned in build order.
func Build(ctx context.Context, p *project.Project, formats []convert.Format) ([]convert.Artifact, error) {
	targets, err := p.Config.Targets(p.Root)
	if err != nil {
		return nil, err
	}
	if len(formats) > 0 {
		selected := make(map[convert.Format]string, len(formats))
		for _, f := range formats {
			path, ok := targets[f]
			if !ok {
				path, err = defaultTarget(p, f)
				if err != nil {
					return nil, err
				}
			}
			selected[f] = path
		}
		targets = selected
	}

	opts, err := p.Config.ConvertOptions()
	if err != nil {
		return nil, err
	}

	artifacts, err := convert.Render(ctx, p.Model, targets, opts)
	if err != nil {
		return nil, err
	}

	for _, a := range artifacts {
		if err := p.FS.MkdirAll(filepath.Dir(a.Path), 0755); err != nil {
			return nil, fmt.Errorf("error creating directory for %s: %w", a.Path, err)
		}
		if err := p.FS.WriteFile(a.Path, a.Data, 0644); err != nil {
			return nil, fmt.Errorf("error writing to %s: %w", a.Path, err)
		}
		logger.Debug("wrote %s (%d bytes)", a.Path, len(a.Data))
	}

	return artifacts, nil
}

// defaultTarget returns the path format is written to when the config
// does not list it.
func defaultTarget(p *project.Project, f convert.Format) (string, error) {
	cfg := *p.Config
	cfg.Outputs = []config.OutputSpec{{Format: string(f)}}
	targets, err := cfg.Targets(p.Root)
	if err != nil {
		return "", err
	}
	return targets[f], nil
}

func report(w io.Writer, root string, artifacts []convert.Artifact) {
	green := color.New(color.FgGreen)
	cyan := color.New(color.FgCyan)

	for _, a := range artifacts {
		path := a.Path
		if rel, err := filepath.Rel(root, a.Path); err == nil {
			path = rel
		}
		green.Fprint(w, "✓ ")
		fmt.Fprintf(w, "%-12s %s ", a.Format, path)
		cyan.Fprintf(w, "(%d tokens)\n", a.Tokens)
	}
	if warnings := logger.Warnings(); warnings > 0 {
		color.New(color.FgYellow).Fprintf(w, "⚠ %d warning(s)\n", warnings)
	}
}
