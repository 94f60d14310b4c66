// Command lvnum runs the distribution, vector and matrix demonstrations and
// their acceptance checks.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvnum/internal/config"
	"github.com/katalvlaran/lvnum/internal/log"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configFile string
	output     string
	logLevel   string
}

// BuildRootCmd assembles the lvnum command tree.
func BuildRootCmd() *cobra.Command {
	var g globalFlags

	cmd := &cobra.Command{
		Use:           "lvnum",
		Short:         "Numeric toolkit demonstrations: distributions, vectors, matrices",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&g.configFile, "config", "c", "", "config file (YAML)")
	cmd.PersistentFlags().StringVarP(&g.output, "output", "o", config.OutputText, "output format: text, json or yaml")
	cmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "info", "log level: trace, debug, info, warn, error")

	cmd.AddCommand(
		buildBernoulliCmd(&g),
		buildZipCmd(&g),
		buildTransposeCmd(&g),
		buildCheckCmd(&g),
	)

	return cmd
}

// loadConfig resolves the configuration for cmd and applies its log level.
func loadConfig(cmd *cobra.Command, g *globalFlags) (*config.Config, error) {
	cfg, err := config.Load(g.configFile, cmd.Flags())
	if err != nil {
		return nil, err
	}
	if err := log.SetLevelString(cfg.LogLevel); err != nil {
		return nil, err
	}
	log.Debug(cmd.Context()).
		Str("command", cmd.Name()).
		Str("config_file", g.configFile).
		Str("output", cfg.Output).
		Msg("config loaded")

	return cfg, nil
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	log.SetOutput(os.Stderr, log.IsTerminal(os.Stderr))
	ctx, ca := context.WithCancel(context.Background())
	c := make(chan os.Signal, 2)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	rootCmd := BuildRootCmd()
	go func() {
		sig := <-c
		switch sig {
		case syscall.SIGINT:
			rootCmd.PrintErrln("\nShutting down... (press Ctrl+C again to force)")
		default:
			rootCmd.PrintErrf("Received %s, shutting down...", sig.String())
		}
		ca()
		<-c
		os.Exit(1)
	}()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Error(ctx).Err(err).Msg("lvnum failed")
		os.Exit(1)
	}
}

func main() {
	Execute()
}
