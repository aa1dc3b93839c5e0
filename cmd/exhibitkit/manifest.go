// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/psiino/exhibitkit/internal/manifest"
	"github.com/psiino/exhibitkit/pkg/types"
)

var manifestCmd = &cobra.Command{
	Use:   "manifest",
	Short: "Inspect the manifest of generated artifacts",
	Long: `Manifest queries the SQLite database that gen and combine write to when
a manifest path is configured (--manifest flag, manifest.path config key,
or EXHIBITKIT_MANIFEST_PATH).`,
}

// --- list subcommand ---

var manifestListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded artifacts",
	RunE:  runManifestList,
}

func runManifestList(cmd *cobra.Command, args []string) error {
	store, err := openManifest(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	kind, _ := cmd.Flags().GetString("kind")
	records, err := store.List(context.Background(), types.ArtifactKind(kind))
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Println("No artifacts recorded.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-8s  %-6s  %-10s  %-6s  %-20s  %s\n",
		"ID", "Kind", "Label", "Orient", "Pages", "Created", "Output")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 90))
	for _, r := range records {
		fmt.Fprintf(os.Stdout, "%-4d  %-8s  %-6s  %-10s  %-6d  %-20s  %s\n",
			r.ID, r.Kind, r.Label, r.Orientation, r.Pages,
			r.CreatedAt.Format("2006-01-02 15:04:05"), r.OutputPath)
	}
	fmt.Fprintf(os.Stdout, "\n%d artifacts\n", len(records))
	return nil
}

// --- export subcommand ---

var manifestExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the manifest as YAML or JSON",
	RunE:  runManifestExport,
}

func runManifestExport(cmd *cobra.Command, args []string) error {
	store, err := openManifest(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	kind, _ := cmd.Flags().GetString("kind")
	format, _ := cmd.Flags().GetString("format")

	switch format {
	case "yaml":
		return store.ExportYAML(context.Background(), types.ArtifactKind(kind), os.Stdout)
	case "json":
		return store.ExportJSON(context.Background(), types.ArtifactKind(kind), os.Stdout)
	default:
		return fmt.Errorf("%w: format %q (want yaml or json)", types.ErrInvalidArgument, format)
	}
}

func openManifest(cmd *cobra.Command) (*manifest.Store, error) {
	path := manifestPath(cmd)
	if path == "" {
		return nil, fmt.Errorf("no manifest configured: pass --manifest or set manifest.path")
	}
	return manifest.Open(path)
}

func init() {
	manifestListCmd.Flags().String("kind", "", "filter by artifact kind: exhibit or combine")
	manifestExportCmd.Flags().String("kind", "", "filter by artifact kind: exhibit or combine")
	manifestExportCmd.Flags().String("format", "yaml", "export format: yaml or json")

	manifestCmd.AddCommand(manifestListCmd)
	manifestCmd.AddCommand(manifestExportCmd)
	rootCmd.AddCommand(manifestCmd)
}
