/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validate provides the validate command for hopetokens.
package validate

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/hopetokens/cmd/project"
	"bennypowers.dev/hopetokens/config"
	"bennypowers.dev/hopetokens/load"
	"bennypowers.dev/hopetokens/model"
	"bennypowers.dev/hopetokens/validator"
)

// ErrValidationFailed is returned in strict mode when validation finds
// errors.
var ErrValidationFailed = errors.New("validation failed")

// Cmd is the validate cobra command.
var Cmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Validate design token sources",
	Long: `Validate the token sources for unresolved references, circular
aliases, malformed literals and unreadable documents.

Extra token files given as arguments, or listed under "files" in the
config, are checked against the light registry. Globs are supported.
With --quiet only errors are printed. The build tolerates every problem
reported here, so validate only fails with --strict.`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("strict", false, "Exit non-zero when errors are found")
}

func run(cmd *cobra.Command, args []string) error {
	strict, _ := cmd.Flags().GetBool("strict")
	quiet := viper.GetBool("quiet")

	p, err := project.Open(cmd.Context(), project.FromFlags())
	if err != nil {
		return err
	}

	files, err := extraFiles(p, args)
	if err != nil {
		return err
	}

	issues := Check(p, files)
	report(cmd.OutOrStdout(), issues, len(load.Roles)+len(files), quiet)

	if strict && validator.HasErrors(issues) {
		return ErrValidationFailed
	}
	return nil
}

// extraFiles returns the extra documents to check: the arguments when
// given, otherwise the files named in the config.
func extraFiles(p *project.Project, args []string) ([]string, error) {
	patterns := args
	if len(patterns) == 0 {
		patterns = p.Config.Files
	}
	files, err := config.ExpandPatterns(p.FS, p.Root, patterns)
	if err != nil {
		return nil, fmt.Errorf("error expanding files: %w", err)
	}
	return files, nil
}

// Check validates the project sources and each extra file.
func Check(p *project.Project, files []string) []validator.ValidationError {
	issues := validator.Validate(p.Model)
	reg := p.Model.Registry(model.Light)
	for _, file := range files {
		issues = append(issues, validator.ValidateFile(p.FS, file, reg)...)
	}
	return issues
}

func report(w io.Writer, issues []validator.ValidationError, documents int, quiet bool) {
	red := color.New(color.FgRed)
	yellow := color.New(color.FgYellow)
	green := color.New(color.FgGreen)

	var errCount, warnCount int
	for _, issue := range issues {
		if issue.Severity == validator.SeverityError {
			errCount++
			red.Fprint(w, "error")
		} else {
			warnCount++
			if quiet {
				continue
			}
			yellow.Fprint(w, "warning")
		}
		fmt.Fprintf(w, ": %s\n", issue.Error())
	}

	if quiet {
		return
	}
	if len(issues) == 0 {
		green.Fprint(w, "✓ ")
		fmt.Fprintf(w, "%d documents valid\n", documents)
		return
	}
	fmt.Fprintf(w, "%d error(s), %d warning(s) in %d documents\n", errCount, warnCount, documents)
}
