// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/psiino/exhibitkit/internal/compose"
	"github.com/psiino/exhibitkit/internal/manifest"
	"github.com/psiino/exhibitkit/internal/pdfops"
	"github.com/psiino/exhibitkit/internal/slipsheet"
	"github.com/psiino/exhibitkit/pkg/types"
)

var genCmd = &cobra.Command{
	Use:   "gen [infile...|NONE]",
	Short: "Add exhibit slipsheets to PDFs, or generate standalone slipsheets",
	Long: `Gen prepends a labeled slipsheet page ("Exhibit A") to each input PDF,
writing <name>_exhibit.pdf alongside the input. Labels come from the
--label flag, the input filename ("Exhibit_A.pdf", "Ex. 12 Lease.pdf"),
or an automatic A, B, C... sequence; orientation comes from the flag or
the document's own first page.

Pass the literal token NONE instead of input files to generate
standalone slipsheets for manual insertion, with --count controlling how
many. Each input file is processed independently: a bad file is reported
and its siblings still succeed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGen,
}

func init() {
	genCmd.Flags().StringP("label", "l", "", `starting label, a letter or number (e.g. "A" or "1")`)
	genCmd.Flags().StringP("orientation", "o", "", "page orientation: landscape or portrait")
	genCmd.Flags().IntP("count", "c", 0, "number of slipsheets to generate (only with NONE)")
	genCmd.Flags().String("output-dir", "", "directory for output files (default: next to each input)")

	rootCmd.AddCommand(genCmd)
}

func runGen(cmd *cobra.Command, args []string) error {
	lbl, _ := cmd.Flags().GetString("label")
	count, _ := cmd.Flags().GetInt("count")

	opts := compose.Options{
		Inputs:      args,
		Count:       count,
		Label:       lbl,
		Orientation: flagOrConfig(cmd, "orientation", "gen.orientation"),
		OutputDir:   flagOrConfig(cmd, "output-dir", "gen.output_dir"),
	}

	renderer := slipsheet.NewRenderer(renderConfig())
	ops := pdfops.New()

	var recorder compose.Recorder
	if path := manifestPath(cmd); path != "" {
		store, err := manifest.Open(path)
		if err != nil {
			return err
		}
		defer store.Close()
		recorder = store
	}

	result, err := compose.New(renderer, ops, ops, recorder).Run(context.Background(), opts, os.Stdout)
	if err != nil {
		return err
	}
	if result.HasFailures() {
		return fmt.Errorf("%d exhibit job(s) failed", result.Failed)
	}
	return nil
}

// renderConfig builds the slipsheet rendering settings from config file
// values; unset fields fall back to the renderer defaults.
func renderConfig() types.RenderConfig {
	return types.RenderConfig{
		FontName: viper.GetString("gen.render.font_name"),
		FontSize: viper.GetFloat64("gen.render.font_size"),
		Margin:   viper.GetFloat64("gen.render.margin"),
		Page: types.PageSize{
			Width:  viper.GetFloat64("gen.render.page.width"),
			Height: viper.GetFloat64("gen.render.page.height"),
		},
	}
}
