// SPDX-FileCopyrightText: 2023 Christoph Mewes
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"go.xrstf.de/mermaid2drawio/pkg/convert"
	"go.xrstf.de/mermaid2drawio/pkg/loader"
	"go.xrstf.de/mermaid2drawio/pkg/render"
	_ "go.xrstf.de/mermaid2drawio/pkg/render/drawio"
	_ "go.xrstf.de/mermaid2drawio/pkg/render/graphviz"
	_ "go.xrstf.de/mermaid2drawio/pkg/render/mermaid"
)

// These variables get set by ldflags during compilation.
var (
	BuildTag    string
	BuildCommit string
	BuildDate   string // RFC3339 format ("2006-01-02T15:04:05Z07:00")
)

func printVersion() {
	// handle empty values in case `go install` was used
	if BuildCommit == "" {
		fmt.Printf("mermaid2drawio dev, built with %s\n",
			runtime.Version(),
		)
	} else {
		fmt.Printf("mermaid2drawio %s (%s), built with %s on %s\n",
			BuildTag,
			BuildCommit[:10],
			runtime.Version(),
			BuildDate,
		)
	}
}

type globalOptions struct {
	output  string
	format  string
	verbose bool
	version bool
}

func (o *globalOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&o.output, "output", "o", o.output, "Write the diagram to this file instead of stdout")
	fs.StringVarP(&o.format, "format", "f", o.format, fmt.Sprintf("Output format (one of %v)", render.All()))
	fs.BoolVarP(&o.verbose, "verbose", "v", o.verbose, "Enable more verbose output")
	fs.BoolVarP(&o.version, "version", "V", o.version, "Show version info and exit immediately")
}

func main() {
	opts := globalOptions{
		format: "drawio",
	}

	rootCmd := &cobra.Command{
		Use:   "mermaid2drawio [FILE|DIR|-]...",
		Short: "Convert Mermaid ER diagrams into draw.io documents",
		Long: `mermaid2drawio reads an erDiagram in Mermaid syntax and lays it out as a
draw.io (mxGraph) document, with one container per entity and one connector
per relationship. Without arguments, the diagram is read from stdin.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(&opts, args)
		},
	}

	rootCmd.Flags().SortFlags = false
	opts.AddFlags(rootCmd.Flags())

	for _, name := range render.All() {
		r, _ := render.Get(name)
		r.AddFlags(rootCmd.Flags())
	}

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v.", err)
	}
}

func run(opts *globalOptions, args []string) error {
	if opts.version {
		printVersion()
		return nil
	}

	renderer, exists := render.Get(opts.format)
	if !exists {
		return fmt.Errorf("invalid output format %q, must be one of %v", opts.format, render.All())
	}

	if err := renderer.ValidateFlags(); err != nil {
		return fmt.Errorf("invalid command line flags: %w", err)
	}

	text, err := loader.LoadDiagram(args, loader.NewDefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to load diagram: %w", err)
	}

	model, rendered, err := convert.ConvertModel(text, renderer)
	if opts.verbose {
		log.Printf("Parsed %d entities and %d relationships.", len(model.Entities), len(model.Relationships))
		log.Printf("Model:\n%s", spew.Sdump(model))
	}
	if err != nil {
		return err
	}

	return writeOutput(opts.output, rendered)
}

func writeOutput(filename string, rendered string) (err error) {
	var out io.Writer = os.Stdout

	if filename != "" && filename != "-" {
		f, createErr := os.Create(filename)
		if createErr != nil {
			return fmt.Errorf("failed to create output file: %w", createErr)
		}
		defer func() {
			err = errors.Join(err, f.Close())
		}()

		out = f
	}

	_, err = fmt.Fprintln(out, rendered)
	return err
}
