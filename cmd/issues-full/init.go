package main

import (
	"fmt"

	"github.com/lerenn/issues-full/cmd/issues-full/internal/cli"
	"github.com/lerenn/issues-full/pkg/fs"
	"github.com/lerenn/issues-full/pkg/store"
	"github.com/spf13/cobra"
)

func createInitCmd() *cobra.Command {
	var (
		force     bool
		backend   string
		storePath string
	)

	initCmd := &cobra.Command{
		Use:   "init [--force] [--backend <file|sqlite|memory>] [--store-path <path>]",
		Short: "Initialize issues-full configuration",
		Long: `Write the default configuration to the config file.

Flags:
  --force       Overwrite an existing configuration
  --backend     Store backend for the issue cache and preview mappings
  --store-path  Path of the store file or database`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			manager := cli.NewConfigManager()

			exists, err := fs.NewFS().Exists(manager.GetConfigPath())
			if err != nil {
				return err
			}
			if exists && !force {
				return fmt.Errorf("%w at %s, use --force to overwrite", cli.ErrAlreadyInitialized, manager.GetConfigPath())
			}

			cfg := manager.DefaultConfig()
			if backend != "" {
				cfg.Store.Backend = backend
			}
			if storePath != "" {
				cfg.Store.Path = storePath
			}

			if err := manager.SaveConfig(cfg); err != nil {
				return err
			}

			if !cli.Quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", manager.GetConfigPath())
			}
			return nil
		},
	}

	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing configuration")
	initCmd.Flags().StringVar(&backend, "backend", "", fmt.Sprintf("Store backend (%s, %s or %s)",
		store.BackendFile, store.BackendSQLite, store.BackendMemory))
	initCmd.Flags().StringVar(&storePath, "store-path", "", "Path of the store file or database")

	return initCmd
}
