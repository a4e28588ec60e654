package main

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"uploadwire/internal/config"
	"uploadwire/internal/services"
)

func newTemplatesCmd(_ *app) *cobra.Command {
	var (
		storage string
		twig    bool
	)

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List the base service templates loaded for a storage backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Default()
			cfg.Storage = config.ParseReference(storage)
			cfg.Twig = twig

			catalog := services.Default()
			out := cmd.OutOrStdout()

			files := lo.Filter(services.FilesFor(cfg), func(f services.File, _ int) bool {
				return len(catalog.IDs(f)) > 0
			})

			for _, f := range files {
				fmt.Fprintf(out, "%s:\n", f)

				for _, id := range catalog.IDs(f) {
					fmt.Fprintf(out, "  %s\n", id)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&storage, "storage", config.StorageFileSystem, "storage backend name or @service")
	cmd.Flags().BoolVar(&twig, "twig", false, "include the twig templates")

	return cmd
}
