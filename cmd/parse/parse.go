/*
Copyright 2026 Bea Steers. All rights reserved.
Use of this source code is governed by the MIT
license that can be found in the LICENSE file.
*/

// Package parse provides the parse command for pformat.
package parse

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"pformat.dev/pformat/format"
)

// Cmd is the parse cobra command.
var Cmd = &cobra.Command{
	Use:   "parse TEMPLATE CANDIDATE",
	Short: "Extract field values from a formatted string",
	Long: `Reverse-match a candidate string against a template and print the
extracted field values.

Fields match a run of non-separator characters unless they carry an inline
constraint:

  pformat parse '/data/{id}.csv' /data/42.csv
  pformat parse '/runs/{id.~[\d+]}/loss_{loss}.csv' /runs/7/loss_0.33.csv`,
	Args: cobra.ExactArgs(2),
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "table", "Output format: table, json, yaml")
}

func run(cmd *cobra.Command, args []string) error {
	values, err := format.Parse(args[0], args[1])
	if err != nil {
		return err
	}

	outputFormat, _ := cmd.Flags().GetString("format")
	switch outputFormat {
	case "json":
		out, err := json.MarshalIndent(values, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	case "yaml":
		out, err := yaml.Marshal(values)
		if err != nil {
			return err
		}
		fmt.Print(string(out))
	default:
		keys := make([]string, 0, len(values))
		for key := range values {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			fmt.Printf("%s\t%s\n", key, values[key])
		}
	}
	return nil
}
