package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"uploadwire/internal/modules"
	"uploadwire/internal/plan"
	"uploadwire/internal/registry"
	"uploadwire/internal/services"
)

// kernelCacheDir is the parameter the default file cache directory is
// relative to.
const kernelCacheDir = "kernel.cache_dir"

func newResolveCmd(a *app) *cobra.Command {
	var (
		modulesFile string
		moduleFlags []string
		paramFlags  []string
		dump        bool
	)

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve a configuration and print the wired registry as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, diags, err := a.loadConfig()
			if err != nil {
				return err
			}

			mods, err := loadModules(modulesFile, moduleFlags)
			if err != nil {
				return err
			}

			reg := registry.NewContainer()
			reg.SetParameter(kernelCacheDir, a.v.GetString("cache-dir"))

			for _, kv := range paramFlags {
				k, v, ok := strings.Cut(kv, "=")
				if !ok || k == "" {
					return fmt.Errorf("invalid parameter %q: expected name=value", kv)
				}

				reg.SetParameter(k, v)
			}

			p, err := plan.NewResolver(cfg, mods, reg, plan.WithLogger(a.logger)).Resolve(cmd.Context())
			if err != nil {
				return err
			}

			diags.Merge(p.Diagnostics)
			a.logWarnings(diags)

			if err := p.Apply(reg); err != nil {
				return err
			}

			if err := reg.Validate(); err != nil {
				return fmt.Errorf("registry is inconsistent: %w", err)
			}

			storage, err := reg.ResolveAlias(services.IDStorage)
			if err != nil {
				return err
			}

			a.logger.Info("storage resolved", zap.String("id", storage))

			if dump {
				spew.Fdump(cmd.OutOrStdout(), p)
				return nil
			}

			return writeYAML(cmd.OutOrStdout(), reg.Snapshot())
		},
	}

	cmd.Flags().StringVar(&modulesFile, "modules", "", "YAML module table")
	cmd.Flags().StringArrayVar(&moduleFlags, "module", nil, "installed module as Name=dir (repeatable)")
	cmd.Flags().StringArrayVar(&paramFlags, "param", nil, "registry parameter as name=value (repeatable)")
	cmd.Flags().BoolVar(&dump, "dump", false, "dump the resolved plan instead of the registry")
	cmd.Flags().String("cache-dir", defaultCacheDir(), "value of the kernel.cache_dir parameter")

	return cmd
}

func loadModules(file string, flags []string) (*modules.Table, error) {
	mods, err := modules.NewTable()
	if err != nil {
		return nil, err
	}

	if file != "" {
		if mods, err = modules.LoadFile(file); err != nil {
			return nil, err
		}
	}

	for _, f := range flags {
		m, err := modules.ParseFlag(f)
		if err != nil {
			return nil, err
		}

		if err := mods.Add(m); err != nil {
			return nil, err
		}
	}

	return mods, nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return enc.Close()
}
