// Package mapping provides the preview mapping commands for the issues-full CLI.
package mapping

import (
	"github.com/spf13/cobra"
)

var output string

// CreateMappingCmd creates the mapping command with all its subcommands.
func CreateMappingCmd() *cobra.Command {
	mappingCmd := &cobra.Command{
		Use:     "mapping",
		Aliases: []string{"m", "map"},
		Short:   "Preview mapping commands",
		Long:    `Commands for inspecting which full issue each preview resolved to.`,
	}

	mappingCmd.PersistentFlags().StringVarP(&output, "output", "o", "json", "Output format (json or yaml)")
	mappingCmd.AddCommand(createListCmd(), createClearCmd())

	return mappingCmd
}
