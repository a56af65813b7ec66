package main

import (
	"github.com/lerenn/issues-full/cmd/issues-full/internal/cli"
	"github.com/spf13/cobra"
)

func createEnrichCmd() *cobra.Command {
	var (
		output     string
		avatarsDir string
	)

	enrichCmd := &cobra.Command{
		Use:   "enrich <previews.json|->",
		Short: "Resolve issue previews to full issues",
		Long: `Fetch the full GitHub issue referenced by each preview body, merge it into
the local issue cache and record the preview mapping.

The input is a JSON array of previews ({"id": 1, "body": "..."}), read from
stdin when the argument is "-". The GitHub token is read from the environment
variable configured in github.token_env (GITHUB_TOKEN by default).

Examples:
  issues-full enrich previews.json
  cat previews.json | issues-full enrich - -o yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cli.LoadConfig()
			if err != nil {
				return err
			}

			session, err := cli.NewSession(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = session.Close() }()

			return cli.Enrich(cmd.Context(), session, cli.EnrichOptions{
				Input:      args[0],
				Stdin:      cmd.InOrStdin(),
				Stdout:     cmd.OutOrStdout(),
				Format:     output,
				AvatarsDir: avatarsDir,
			})
		},
	}

	enrichCmd.Flags().StringVarP(&output, "output", "o", cli.OutputJSON, "Output format (json or yaml)")
	enrichCmd.Flags().StringVar(&avatarsDir, "avatars-dir", "", "Directory receiving the owner avatars")

	return enrichCmd
}
