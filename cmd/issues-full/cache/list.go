package cache

import (
	"fmt"

	"github.com/lerenn/issues-full/cmd/issues-full/internal/cli"
	issuecache "github.com/lerenn/issues-full/pkg/cache"
	"github.com/spf13/cobra"
)

func createListCmd() *cobra.Command {
	listCmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "l"},
		Short:   "List cached issues",
		Long: `List the cached full issues in the order they were first cached.

Examples:
  issues-full cache list
  issues-full cache ls -o yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := cli.LoadConfig()
			if err != nil {
				return err
			}

			s, err := cli.OpenStore(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			issues, err := issuecache.New(s).List()
			if err != nil {
				return err
			}

			if len(issues) == 0 {
				if !cli.Quiet {
					fmt.Fprintln(cmd.ErrOrStderr(), "No cached issues found.")
				}
				return nil
			}

			return cli.Print(cmd.OutOrStdout(), output, issues)
		},
	}

	return listCmd
}
