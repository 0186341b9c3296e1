/*
Copyright 2026 Bea Steers. All rights reserved.
Use of this source code is governed by the MIT
license that can be found in the LICENSE file.
*/

// Package render provides the render command for pformat.
package render

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pformat.dev/pformat/bindings"
	"pformat.dev/pformat/config"
	"pformat.dev/pformat/fs"
	"pformat.dev/pformat/internal/logger"
	"pformat.dev/pformat/parser"
	"pformat.dev/pformat/resolver"
	"pformat.dev/pformat/template"
)

// Cmd is the render cobra command.
var Cmd = &cobra.Command{
	Use:   "render TEMPLATE",
	Short: "Render a template against bindings",
	Long: `Render a template against bindings loaded from files and key=value pairs.

Missing fields resolve per --mode: partial keeps the field in place for a
later pass, glob substitutes a wildcard, default uses the field's inline
default ({loss._[--]:.2f}) and otherwise behaves like partial.

The mode and wildcard may also come from the PFORMAT_MODE / PFORMAT_WILDCARD
environment variables or from .config/pformat.yaml.

Examples:
  # Fill in what's known now, resolve the rest later
  pformat render '{param}/{id}/{loss:.2f}.csv' --set param=base

  # Produce a glob pattern for the files an experiment wrote
  pformat render '{param}/{id}/loss_*.csv' -m glob --set param=base

  # Bindings from files, later files and --set pairs override earlier ones
  pformat render '{name}_{trial}.json' -b common.yaml -b run.jsonc --set trial=3`,
	Args: cobra.ExactArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("mode", "m", "", "Resolution mode: partial, glob, default")
	Cmd.Flags().String("wildcard", "", "Wildcard marker for glob mode")
	Cmd.Flags().StringArrayP("bindings", "b", nil, "Bindings file (JSON, JSONC, or YAML; repeatable)")
	Cmd.Flags().StringArray("set", nil, "Inline binding as key=value (repeatable)")
	Cmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")
	Cmd.Flags().String("root", ".", "Directory to resolve config and bindings from")

	viper.BindPFlag("mode", Cmd.Flags().Lookup("mode"))
	viper.BindPFlag("wildcard", Cmd.Flags().Lookup("wildcard"))
	viper.SetEnvPrefix("PFORMAT")
	viper.AutomaticEnv()
}

func run(cmd *cobra.Command, args []string) error {
	root, _ := cmd.Flags().GetString("root")

	filesystem := fs.NewOSFileSystem()
	cfg := config.LoadOrDefault(filesystem, root)

	viper.SetDefault("mode", cfg.ResolutionMode().String())
	if cfg.Wildcard != "" {
		viper.SetDefault("wildcard", cfg.Wildcard)
	} else {
		viper.SetDefault("wildcard", resolver.Wildcard)
	}

	mode, err := template.ModeFromString(viper.GetString("mode"))
	if err != nil {
		return err
	}

	b, err := assembleBindings(cmd, filesystem, cfg, root)
	if err != nil {
		return err
	}

	t, err := parser.Parse(args[0])
	if err != nil {
		return err
	}

	r := resolver.New(resolver.WithWildcard(viper.GetString("wildcard")))
	out := r.Render(t, mode, b)

	if output, _ := cmd.Flags().GetString("output"); output != "" {
		return filesystem.WriteFile(output, []byte(out+"\n"), 0o644)
	}
	fmt.Println(out)
	return nil
}

// assembleBindings merges config bindings files, --bindings files, and
// --set pairs, in that order of increasing precedence.
func assembleBindings(cmd *cobra.Command, filesystem fs.FileSystem, cfg *config.Config, root string) (map[string]any, error) {
	paths, err := cfg.ExpandBindings(filesystem, root)
	if err != nil {
		return nil, err
	}

	files, _ := cmd.Flags().GetStringArray("bindings")
	paths = append(paths, files...)

	existing := paths[:0]
	for _, path := range paths {
		if !filesystem.Exists(path) {
			logger.Warn("skipping missing bindings file: %s", path)
			continue
		}
		existing = append(existing, path)
	}

	b, err := bindings.LoadAll(filesystem, existing)
	if err != nil {
		return nil, err
	}

	sets, _ := cmd.Flags().GetStringArray("set")
	for _, pair := range sets {
		key, value, err := bindings.ParsePair(pair)
		if err != nil {
			return nil, err
		}
		b[key] = value
	}

	return b, nil
}
