package mapping

import (
	"fmt"

	"github.com/lerenn/issues-full/cmd/issues-full/internal/cli"
	"github.com/lerenn/issues-full/pkg/issue"
	previewmapping "github.com/lerenn/issues-full/pkg/mapping"
	"github.com/spf13/cobra"
)

// row is the printed form of a mapping entry.
type row struct {
	PreviewID int64  `json:"preview_id" yaml:"preview_id"`
	FullID    int64  `json:"full_id" yaml:"full_id"`
	Reference string `json:"reference,omitempty" yaml:"reference,omitempty"`
	Title     string `json:"title" yaml:"title"`
}

func createListCmd() *cobra.Command {
	var full bool

	listCmd := &cobra.Command{
		Use:     "list [--full]",
		Aliases: []string{"ls", "l"},
		Short:   "List preview mappings",
		Long: `List the recorded preview to full issue mappings in insertion order.

Examples:
  issues-full mapping list
  issues-full mapping ls --full -o yaml`,
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

			m, err := previewmapping.Load(s)
			if err != nil {
				return err
			}

			entries := m.Entries()
			if len(entries) == 0 {
				if !cli.Quiet {
					fmt.Fprintln(cmd.ErrOrStderr(), "No preview mappings found.")
				}
				return nil
			}

			if full {
				return cli.Print(cmd.OutOrStdout(), output, entries)
			}
			return cli.Print(cmd.OutOrStdout(), output, toRows(entries))
		},
	}

	listCmd.Flags().BoolVar(&full, "full", false, "Print the full issue of every mapping")

	return listCmd
}

func toRows(entries []previewmapping.Entry) []row {
	rows := make([]row, 0, len(entries))
	for _, e := range entries {
		r := row{PreviewID: e.PreviewID, FullID: e.Full.ID, Title: e.Full.Title}
		if ref, err := issue.ParseReference(e.Full.HTMLURL); err == nil {
			r.Reference = ref.String()
		}
		rows = append(rows, r)
	}
	return rows
}
