/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolve provides the resolve command for hopetokens.
package resolve

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"bennypowers.dev/hopetokens/cmd/project"
	"bennypowers.dev/hopetokens/cmd/render"
	"bennypowers.dev/hopetokens/model"
	"bennypowers.dev/hopetokens/resolver"
	"bennypowers.dev/hopetokens/token"
)

// Cmd is the resolve cobra command.
var Cmd = &cobra.Command{
	Use:   "resolve <reference>...",
	Short: "Print what token references resolve to",
	Long: `Resolve token references against the registry of a mode and print the
value each one resolves to, followed by the aliases on the way.

References may be written with or without braces.

Examples:
  hopetokens resolve color.text.neutral
  hopetokens resolve --mode dark '{color.text.inverse}' fontSize.brand.lg`,
	Args: cobra.MinimumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("mode", "m", "light", "Mode to resolve in: light, dark")
}

// Result is the resolution of one reference.
type Result struct {
	Key     string
	Value   string
	Chain   []string
	Missing []string
}

// Resolve resolves each reference against reg.
func Resolve(reg *resolver.Registry, refs []string) []Result {
	results := make([]Result, 0, len(refs))
	for _, ref := range refs {
		key := strings.TrimSpace(ref)
		if token.IsAlias(key) {
			key = token.StripBraces(key)
		}
		wrapped := "{" + key + "}"
		results = append(results, Result{
			Key:     key,
			Value:   reg.ResolveString(wrapped),
			Chain:   render.RefChain(reg, wrapped),
			Missing: reg.Unresolved(wrapped),
		})
	}
	return results
}

func run(cmd *cobra.Command, args []string) error {
	modeFlag, _ := cmd.Flags().GetString("mode")
	mode, err := model.ParseMode(modeFlag)
	if err != nil {
		return err
	}

	p, err := project.Open(cmd.Context(), project.FromFlags())
	if err != nil {
		return err
	}

	results := Resolve(p.Model.Registry(mode), args)
	if err := write(cmd.OutOrStdout(), results); err != nil {
		return err
	}

	unresolved := 0
	for _, r := range results {
		if len(r.Missing) > 0 {
			unresolved++
		}
	}
	if unresolved > 0 {
		return fmt.Errorf("%d reference(s) could not be resolved", unresolved)
	}
	return nil
}

func write(w io.Writer, results []Result) error {
	width := 0
	for _, r := range results {
		width = max(width, len(r.Key))
	}
	for _, r := range results {
		line := fmt.Sprintf("%-*s  %s", width, r.Key, r.Value)
		if len(r.Chain) > 1 {
			line += "  ← " + strings.Join(r.Chain[1:], " ← ")
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
