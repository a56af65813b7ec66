// Package main provides the command-line interface for the issues-full application.
package main

import (
	"log"

	"github.com/lerenn/issues-full/cmd/issues-full/cache"
	"github.com/lerenn/issues-full/cmd/issues-full/internal/cli"
	"github.com/lerenn/issues-full/cmd/issues-full/mapping"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "issues-full",
		Short: "Issues Full - GitHub issue enricher",
		Long: `Resolve lightweight issue previews to their full GitHub issue records,
keeping a local cache of the full issues and of the preview mappings.`,
		SilenceUsage: true,
	}

	// Add global flags
	rootCmd.PersistentFlags().BoolVarP(&cli.Quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVarP(&cli.Verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&cli.ConfigPath, "config", "c", "", "Specify a custom config file path")

	rootCmd.AddCommand(
		createInitCmd(),
		createEnrichCmd(),
		createWatchCmd(),
		cache.CreateCacheCmd(),
		mapping.CreateMappingCmd(),
	)

	return rootCmd
}
