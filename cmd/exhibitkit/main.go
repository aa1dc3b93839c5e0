// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the exhibitkit CLI, a small toolkit
// for legal document workflows: labeled exhibit slipsheets and
// duplex-safe PDF combining.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the exhibitkit CLI.
var rootCmd = &cobra.Command{
	Use:   "exhibitkit",
	Short: "Generate exhibit slipsheets and combine PDFs for duplex printing",
	Long: `exhibitkit prepares PDF documents for legal filings. The gen command
renders "Exhibit A"-style slipsheet pages and prepends them to documents
(or emits them standalone); the combine command concatenates PDFs,
padding odd-length documents with a blank page so each one starts on a
fresh sheet when printed double-sided.

Artifacts can be recorded in a local SQLite manifest; see the manifest
command.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./exhibitkit.yaml or ~/.config/exhibitkit/config.yaml)")
	rootCmd.PersistentFlags().String("manifest", "", "manifest database path (empty disables recording)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("exhibitkit")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "exhibitkit"))
		}
	}

	viper.SetEnvPrefix("EXHIBITKIT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// flagOrConfig returns the flag value when set, else the config value.
func flagOrConfig(cmd *cobra.Command, flag, configKey string) string {
	if v, _ := cmd.Flags().GetString(flag); v != "" {
		return v
	}
	return viper.GetString(configKey)
}

// manifestPath resolves the manifest database path for a command run.
func manifestPath(cmd *cobra.Command) string {
	if v, _ := cmd.Flags().GetString("manifest"); v != "" {
		return v
	}
	return viper.GetString("manifest.path")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
