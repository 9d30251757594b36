/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for hopetokens.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/hopetokens/cmd/build"
	"bennypowers.dev/hopetokens/cmd/convert"
	"bennypowers.dev/hopetokens/cmd/list"
	"bennypowers.dev/hopetokens/cmd/resolve"
	"bennypowers.dev/hopetokens/cmd/validate"
	"bennypowers.dev/hopetokens/cmd/version"
	"bennypowers.dev/hopetokens/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "hopetokens",
	Short: "Build CSS, Figma and Tailwind artifacts from design tokens",
	Long: `hopetokens reads the hope design token sources, resolves their references
and writes a CSS custom property sheet, Figma light and dark variable
documents and a Tailwind theme extension.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		switch {
		case viper.GetBool("verbose"):
			logger.SetVerbose(true)
		case viper.GetBool("quiet"):
			logger.SetQuiet(true)
		}
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "Config file (default .config/hope-tokens.{yaml,yml,json})")
	flags.String("tokens-dir", "", "Directory holding the token sources")
	flags.StringP("prefix", "p", "", "Global CSS variable prefix")
	flags.BoolP("quiet", "q", false, "Only log warnings; validate prints only errors")
	flags.BoolP("verbose", "v", false, "Log debug output")

	for _, name := range []string{"config", "tokens-dir", "prefix", "quiet", "verbose"} {
		_ = viper.BindPFlag(name, flags.Lookup(name))
	}
	viper.SetEnvPrefix("HOPE_TOKENS")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd.AddCommand(build.Cmd)
	rootCmd.AddCommand(convert.Cmd)
	rootCmd.AddCommand(list.Cmd)
	rootCmd.AddCommand(resolve.Cmd)
	rootCmd.AddCommand(validate.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
