// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/psiino/exhibitkit/internal/manifest"
	"github.com/psiino/exhibitkit/internal/pagepad"
	"github.com/psiino/exhibitkit/internal/pdfops"
)

var combineCmd = &cobra.Command{
	Use:   "combine [infile...]",
	Short: "Combine PDFs into one document safe for double-sided printing",
	Long: `Combine concatenates the input PDFs, in order, into a single document.
A blank page is inserted after every document with an odd page count so
that each document starts on a fresh physical sheet when the result is
printed double-sided. Each input contributes a bookmark at its first
page.

Any unreadable input aborts the run; no partial output is written.`,
	Args: cobra.ArbitraryArgs,
	RunE: runCombine,
}

func init() {
	combineCmd.Flags().StringP("output", "O", "", "combined output path (default: combined-<N>-files.pdf)")

	rootCmd.AddCommand(combineCmd)
}

func runCombine(cmd *cobra.Command, args []string) error {
	out := flagOrConfig(cmd, "output", "combine.output")
	if out == "" {
		out = pagepad.DefaultOutputName(len(args))
	}

	ops := pdfops.New()

	var recorder pagepad.Recorder
	if path := manifestPath(cmd); path != "" {
		store, err := manifest.Open(path)
		if err != nil {
			return err
		}
		defer store.Close()
		recorder = store
	}

	_, err := pagepad.New(ops, ops, recorder).Combine(context.Background(), args, out, os.Stdout)
	return err
}
