// Package cache provides the issue cache commands for the issues-full CLI.
package cache

import (
	"github.com/spf13/cobra"
)

var output string

// CreateCacheCmd creates the cache command with all its subcommands.
func CreateCacheCmd() *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:     "cache",
		Aliases: []string{"c"},
		Short:   "Issue cache commands",
		Long:    `Commands for inspecting the locally cached full issues.`,
	}

	cacheCmd.PersistentFlags().StringVarP(&output, "output", "o", "json", "Output format (json or yaml)")
	cacheCmd.AddCommand(createListCmd(), createGetCmd(), createClearCmd())

	return cacheCmd
}
