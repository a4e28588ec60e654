package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"uploadwire/internal/config"
)

func newCheckCmd(a *app) *cobra.Command {
	var write string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a configuration file and print its diagnostics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := a.v.GetString("config")

			cfg, err := config.LoadFile(path)
			if err != nil {
				return err
			}

			diags := config.Validate(cfg)
			out := cmd.OutOrStdout()

			for _, d := range diags.Errors {
				fmt.Fprintf(out, "error: %s\n", d)
			}

			for _, d := range diags.Warnings {
				fmt.Fprintf(out, "warning: %s\n", d)
			}

			if diags.HasErrors() {
				return fmt.Errorf("%s: %d error(s)", path, len(diags.Errors))
			}

			fmt.Fprintf(out, "%s: ok (%d mapping(s), %d warning(s))\n", path, len(cfg.Mappings), len(diags.Warnings))

			if write != "" {
				if err := config.WriteFile(cfg, write); err != nil {
					return err
				}

				a.logger.Info("normalized config written", zap.String("path", write))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&write, "write", "", "write the normalized configuration to this path")

	return cmd
}
