/*
Copyright 2026 Bea Steers. All rights reserved.
Use of this source code is governed by the MIT
license that can be found in the LICENSE file.
*/

// Package glob provides the glob command for pformat.
package glob

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"pformat.dev/pformat/bindings"
	"pformat.dev/pformat/fs"
	"pformat.dev/pformat/parser"
	"pformat.dev/pformat/resolver"
	"pformat.dev/pformat/template"
)

// Cmd is the glob cobra command.
var Cmd = &cobra.Command{
	Use:   "glob TEMPLATE",
	Short: "Render a template as a glob and list matching files",
	Long: `Render a template in glob mode, substituting a wildcard for every
missing field, and list the files matching the resulting pattern.

Examples:
  # All loss files for one parameter set, any id
  pformat glob '{param}/{id}/loss_{loss:.2f}.csv' --set param=base

  # Everything any run produced
  pformat glob '{param}/{id}/loss_{loss:.2f}.csv'`,
	Args: cobra.ExactArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().StringArrayP("bindings", "b", nil, "Bindings file (JSON, JSONC, or YAML; repeatable)")
	Cmd.Flags().StringArray("set", nil, "Inline binding as key=value (repeatable)")
	Cmd.Flags().Bool("pattern-only", false, "Print the glob pattern without expanding it")
}

func run(cmd *cobra.Command, args []string) error {
	filesystem := fs.NewOSFileSystem()

	files, _ := cmd.Flags().GetStringArray("bindings")
	b, err := bindings.LoadAll(filesystem, files)
	if err != nil {
		return err
	}

	sets, _ := cmd.Flags().GetStringArray("set")
	for _, pair := range sets {
		key, value, err := bindings.ParsePair(pair)
		if err != nil {
			return err
		}
		b[key] = value
	}

	t, err := parser.Parse(args[0])
	if err != nil {
		return err
	}
	pattern := resolver.Render(t, template.Glob, b)

	if patternOnly, _ := cmd.Flags().GetBool("pattern-only"); patternOnly {
		fmt.Println(pattern)
		return nil
	}

	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return fmt.Errorf("expanding %q: %w", pattern, err)
	}
	for _, match := range matches {
		fmt.Println(match)
	}
	return nil
}
