// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

// Package merge implements the "strata merge" command: deep-merging
// JSONC object documents into a single JSON document.
package merge

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/strata-foundation/strata/cmd/strata/cli"
	"github.com/strata-foundation/strata/lib/syntax"
)

type mergeParams struct {
	Compact bool   `flag:"compact,c" desc:"single-line output"`
	Output  string `flag:"output,o" desc:"write to a file instead of stdout"`
}

// Command returns the "merge" command.
func Command() *cli.Command {
	var params mergeParams

	return &cli.Command{
		Name:    "merge",
		Summary: "Deep-merge JSONC object documents",
		Description: `Parse each input as a JSONC object document and deep-merge them left
to right: later documents override earlier ones property by property,
and objects present on both sides merge recursively.

Property order follows the first document, with properties new in
later documents appended in their own order. Duplicate keys within a
document are preserved; an overlay replaces the first occurrence.
Comments and trailing commas in the input are accepted; the output is
plain JSON.

A single input is parsed and reprinted, which normalizes JSONC to
JSON.`,
		Usage: "strata merge <base> [<overlay>...] [flags]",
		Examples: []cli.Example{
			{
				Description: "Merge an environment overlay into a base document",
				Command:     "strata merge base.jsonc production.jsonc",
			},
			{
				Description: "Normalize a JSONC document to JSON",
				Command:     "strata merge config.jsonc",
			},
			{
				Description: "Compact output, written to a file",
				Command:     "strata merge base.jsonc overlay.jsonc --compact --output merged.json",
			},
		},
		Params: func() any { return &params },
		Run: func(args []string) error {
			if len(args) == 0 {
				return cli.Usagef("expected at least one input document")
			}
			return runMerge(params, args, os.Stdout)
		},
	}
}

func runMerge(params mergeParams, paths []string, stdout io.Writer) error {
	var merged *syntax.ObjectNode
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		document, err := syntax.Parse(data)
		if err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		slog.Debug("parsed document", "path", path, "properties", len(document.Properties()))
		merged = syntax.DeepMerge(merged, document)
	}

	output := syntax.Format(merged)
	if params.Compact {
		output = syntax.FormatCompact(merged)
	}

	if params.Output != "" {
		if err := os.WriteFile(params.Output, output, 0644); err != nil {
			return fmt.Errorf("write %s: %w", params.Output, err)
		}
		return nil
	}

	_, err := stdout.Write(output)
	return err
}
