package cache

import (
	"fmt"

	"github.com/lerenn/issues-full/cmd/issues-full/internal/cli"
	issuecache "github.com/lerenn/issues-full/pkg/cache"
	"github.com/spf13/cobra"
)

func createClearCmd() *cobra.Command {
	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every cached issue",
		Args:  cobra.NoArgs,
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

			if err := s.Delete(issuecache.Key); err != nil {
				return err
			}

			if !cli.Quiet {
				fmt.Fprintln(cmd.OutOrStdout(), "Issue cache cleared.")
			}
			return nil
		},
	}

	return clearCmd
}
