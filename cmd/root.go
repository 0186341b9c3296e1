/*
Copyright 2026 Bea Steers. All rights reserved.
Use of this source code is governed by the MIT
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for pformat.
package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"pformat.dev/pformat/cmd/glob"
	"pformat.dev/pformat/cmd/parse"
	"pformat.dev/pformat/cmd/render"
	"pformat.dev/pformat/cmd/version"
	"pformat.dev/pformat/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "pformat",
	Short: "Render and reverse-match extended format templates",
	Long: `pformat formats curly-brace templates whose fields may be unbound at
render time: leave them in place (partial), substitute a wildcard (glob),
or fall back to an inline default ({loss._[--]:.2f}). In the reverse
direction it extracts field values from an already-formatted string,
honoring inline constraints ({id.~[\d+]}).`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
			logger.SetOutput(io.Discard)
		}
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress warnings")

	rootCmd.AddCommand(render.Cmd)
	rootCmd.AddCommand(parse.Cmd)
	rootCmd.AddCommand(glob.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
