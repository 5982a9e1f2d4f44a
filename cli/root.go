// SPDX-License-Identifier: MIT

// Package cli is the campuspath command line: one-shot stats, route and
// reachable commands plus the interactive menu.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/campuspath/campus"
	"github.com/katalvlaran/campuspath/dijkstra"
)

// EnvPrefix prefixes environment overrides, e.g. CAMPUSPATH_DATA.
const EnvPrefix = "CAMPUSPATH"

// Config keys shared by flags, environment and config file.
const (
	keyData     = "data"
	keyVerbose  = "verbose"
	keyStrategy = "strategy"
)

// ErrNoData is returned by commands that need a data file when none was given.
var ErrNoData = errors.New("no campus data file: pass --data or set " + EnvPrefix + "_DATA")

// app carries the state shared by every command of one root.
type app struct {
	v       *viper.Viper
	log     *logrus.Logger
	svc     *campus.Service
	cfgFile string
}

// NewRootCommand builds the campuspath command tree.
func NewRootCommand(version string) *cobra.Command {
	a := &app{v: viper.New(), log: logrus.New()}

	root := &cobra.Command{
		Use:               "campuspath",
		Short:             "Find the quickest walk between campus buildings",
		Args:              cobra.NoArgs,
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE:              a.runMenu,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default $HOME/.campuspath.yaml)")
	pf.StringP(keyData, "d", "", "campus walkway file")
	pf.BoolP(keyVerbose, "v", false, "verbose output")
	pf.String(keyStrategy, dijkstra.Reinsert.String(), "frontier strategy: reinsert or lazy")
	bindFlags(a.v, pf, keyData, keyVerbose, keyStrategy)

	root.AddCommand(
		a.newStatsCommand(),
		a.newRouteCommand(),
		a.newReachableCommand(),
		a.newMenuCommand(),
	)

	return root
}

// Execute runs the command line and returns the process exit code.
func Execute(ctx context.Context, version string) int {
	if err := NewRootCommand(version).ExecuteContext(ctx); err != nil {
		return 1
	}

	return 0
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet, keys ...string) {
	for _, k := range keys {
		if err := v.BindPFlag(k, fs.Lookup(k)); err != nil {
			panic(fmt.Sprintf("cli: bind flag %q: %v", k, err))
		}
	}
}

// setup reads configuration, configures logging and builds the service.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := a.initConfig(); err != nil {
		return err
	}

	a.log.SetOutput(cmd.ErrOrStderr())
	a.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if a.v.GetBool(keyVerbose) {
		a.log.SetLevel(logrus.DebugLevel)
	}

	strategy, err := parseStrategy(a.v.GetString(keyStrategy))
	if err != nil {
		return err
	}
	a.svc = campus.NewService(campus.WithLogger(a.log), campus.WithStrategy(strategy))

	if path := a.v.GetString(keyData); path != "" {
		a.log.Debugf("loading campus data from %s", path)
		if err := a.svc.LoadFile(path); err != nil {
			return err
		}
	}

	return nil
}

func (a *app) initConfig() error {
	a.v.SetEnvPrefix(EnvPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", a.cfgFile, err)
		}
		return nil
	}

	a.v.SetConfigName(".campuspath")
	a.v.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		a.v.AddConfigPath(home)
	}
	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	return nil
}

// requireData fails commands that cannot work on an empty campus.
func (a *app) requireData() error {
	if a.v.GetString(keyData) == "" {
		return ErrNoData
	}

	return nil
}

func parseStrategy(s string) (dijkstra.Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", dijkstra.Reinsert.String():
		return dijkstra.Reinsert, nil
	case dijkstra.Lazy.String():
		return dijkstra.Lazy, nil
	}

	return 0, fmt.Errorf("unknown strategy %q (want %s or %s)", s, dijkstra.Reinsert, dijkstra.Lazy)
}
