package main

import (
	goflag "flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. KNOTWALK_WALKS=500.
const EnvPrefix = "KNOTWALK"

// subCommand pairs a cobra command with its own viper configuration.
type subCommand struct {
	Cmd  *cobra.Command
	Conf *viper.Viper
}

// newRootCmd builds the full command tree. Each call returns an independent
// tree, which keeps tests isolated.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "knotwalk",
		Short: "knotwalk: Alexander-polynomial knot detection for closed walks",
		Long: `
knotwalk projects a closed polygonal walk onto a generic plane, classifies
its crossings, assembles the Alexander matrix and evaluates the Alexander
polynomial. "run" estimates knotting probabilities of random lattice walks,
"eval" analyses a single walk read from a file.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().String("config", "",
		"Configuration file. Takes precedence over default values, but is "+
			"overridden by environment variables and flags.")
	root.PersistentFlags().AddGoFlagSet(goflag.CommandLine)

	for _, sc := range []*subCommand{newRunCmd(), newEvalCmd()} {
		sc.Conf.SetEnvPrefix(EnvPrefix)
		sc.Conf.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
		sc.Conf.AutomaticEnv()
		if err := sc.Conf.BindPFlags(sc.Cmd.Flags()); err != nil {
			panic(err)
		}
		sc.Cmd.PreRunE = loadConfig(sc.Conf)
		root.AddCommand(sc.Cmd)
	}

	return root
}

// loadConfig reads the --config file, if any, into conf.
func loadConfig(conf *viper.Viper) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		cfg, err := cmd.Flags().GetString("config")
		if err != nil || cfg == "" {
			return err
		}
		conf.SetConfigFile(cfg)
		if err := conf.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", cfg, err)
		}

		return nil
	}
}

// Execute runs the command line. It is called by main.main().
func Execute() {
	_ = godotenv.Load(".env")
	// glog refuses to log before the standard flag set is parsed; its flags
	// are set through the persistent pflag set instead.
	_ = goflag.CommandLine.Parse(nil)

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
