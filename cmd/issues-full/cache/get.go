package cache

import (
	"github.com/lerenn/issues-full/cmd/issues-full/internal/cli"
	issuecache "github.com/lerenn/issues-full/pkg/cache"
	"github.com/spf13/cobra"
)

func createGetCmd() *cobra.Command {
	getCmd := &cobra.Command{
		Use:   "get <issue-id>",
		Short: "Show a cached issue",
		Long: `Show the cached full issue with the given GitHub issue id.

Examples:
  issues-full cache get 1234567890`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cli.ParseIssueID(args[0])
			if err != nil {
				return err
			}

			cfg, err := cli.LoadConfig()
			if err != nil {
				return err
			}

			s, err := cli.OpenStore(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			full, err := issuecache.New(s).Get(id)
			if err != nil {
				return err
			}

			return cli.Print(cmd.OutOrStdout(), output, full)
		},
	}

	return getCmd
}
