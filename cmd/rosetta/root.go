package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "rosetta",
	Short: "Rosetta - translation rule selection engine",
	Long: `Rosetta resolves an application text key plus runtime arguments into a
localized output string. Translators write multiple candidate translations
per key, each with a small guard expression ("picks the plural form when the
first argument is not 1"); rosetta expands the configured language
preferences into a fallback chain and selects exactly one candidate per
lookup.

Lexicons live in flat files, directories of per-language files, or a SQLite
table, and can be hot-reloaded while serving.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
