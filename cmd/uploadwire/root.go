package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"uploadwire/internal/config"
	"uploadwire/internal/diagnostic"
)

const envPrefix = "UPLOADWIRE"

// app carries state shared by subcommands.
type app struct {
	v      *viper.Viper
	logger *zap.Logger
}

// NewRootCmd builds the command tree. Flags may also be set from the
// environment as UPLOADWIRE_<FLAG>, dashes replaced by underscores.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: zap.NewNop()}

	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	root := &cobra.Command{
		Use:           "uploadwire",
		Short:         "Wire uploader mappings into a service registry",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}

			logger, err := newLogger(a.v.GetString("log-level"))
			if err != nil {
				return err
			}

			a.logger = logger

			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}

	root.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringP("config", "c", "uploader.yaml", "uploader configuration file")

	root.AddCommand(
		newCheckCmd(a),
		newResolveCmd(a),
		newTemplatesCmd(a),
	)

	return root
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.DisableStacktrace = true
	cfg.OutputPaths = []string{"stderr"}

	return cfg.Build()
}

// loadConfig loads and validates the configured file. Errors fail; the
// warnings are returned with the config.
func (a *app) loadConfig() (*config.Config, *diagnostic.Diagnostics, error) {
	path := a.v.GetString("config")

	cfg, err := config.LoadFile(path)
	if err != nil {
		return nil, nil, err
	}

	diags := config.Validate(cfg)
	if err := diags.Error(); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, diags, nil
}

func (a *app) logWarnings(diags *diagnostic.Diagnostics) {
	for _, w := range diags.Warnings {
		a.logger.Warn(w.Message, zap.String("code", w.Code), zap.String("section", w.Section), zap.String("key", w.Key))
	}
}

func defaultCacheDir() string {
	return filepath.Join(os.TempDir(), "uploadwire")
}
