package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/iconkit/pkg/config"
)

// rootFlags are global flags; non-empty values override Config.
type rootFlags struct {
	source   string
	dir      string
	catalog  string
	logLevel string
	noColor  bool
}

func newRootCmd() *cobra.Command {
	var flags rootFlags

	root := &cobra.Command{
		Use:   "iconkit",
		Short: "Browse and serve SVG icon libraries",
		Long: `iconkit resolves SVG icons by library, variant and name from an icon tree
bundled in the binary, a local directory, an S3 bucket or redis.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       fmt.Sprintf("%s (%s)", Version, GitCommit),
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.source, "source", "", "icon source: embed, dir, s3 or redis (env ICONKIT_SOURCE)")
	pf.StringVar(&flags.dir, "dir", "", "icon tree directory for --source=dir (env ICONKIT_DIR)")
	pf.StringVar(&flags.catalog, "catalog", "", "catalog YAML file; bundled catalog when empty (env ICONKIT_CATALOG)")
	pf.StringVar(&flags.logLevel, "log-level", "", "debug, info, warn or error (env ICONKIT_LOG_LEVEL)")
	pf.BoolVar(&flags.noColor, "no-color", false, "disable colored output")

	root.PersistentPreRun = func(*cobra.Command, []string) {
		if flags.noColor {
			color.NoColor = true
		}
	}

	// load resolves configuration for a command run.
	load := func() (Config, error) {
		var cfg Config
		if err := config.Load(&cfg); err != nil {
			return cfg, err
		}
		if flags.source != "" {
			cfg.Source = flags.source
		}
		if flags.dir != "" {
			cfg.Dir = flags.dir
			if flags.source == "" {
				cfg.Source = sourceDir
			}
		}
		if flags.catalog != "" {
			cfg.Catalog = flags.catalog
		}
		if flags.logLevel != "" {
			cfg.LogLevel = flags.logLevel
		}
		return cfg, nil
	}

	root.AddCommand(
		newServeCmd(load),
		newLibrariesCmd(load),
		newNamesCmd(load),
		newSVGCmd(load),
		newVerifyCmd(load),
		newSeedRedisCmd(load),
	)
	return root
}

type configLoader func() (Config, error)

// withApp opens the app for cmd and closes it after fn returns.
func withApp(cmd *cobra.Command, load configLoader, fn func(a *app) error) error {
	cfg, err := load()
	if err != nil {
		return err
	}
	log := newLogger(cfg, cmd.ErrOrStderr())

	a, err := openApp(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}
	defer a.Close()

	return fn(a)
}
