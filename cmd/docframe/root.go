package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/docframe/internal/config"
	"github.com/aretw0/docframe/internal/examples"
	"github.com/aretw0/docframe/internal/logging"
	"github.com/aretw0/docframe/pkg/registry"
	"github.com/spf13/cobra"
)

// app is the state shared by the commands, filled in before any command runs.
type app struct {
	cfg    config.Config
	logger *slog.Logger
	docs   *registry.Registry
}

var state = &app{docs: examples.Registry()}

var rootCmd = &cobra.Command{
	Use:   "docframe",
	Short: "docframe builds documents and renders them on a docframe engine",
	Long: `docframe assembles documents from Go code, encodes them in the engine's
binary wire format and sends them to a docframe rendering engine.

Configuration is read from --config (YAML, JSON or TOML) and DOCFRAME_* environment
variables; flags win over both.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("url") {
			cfg.URL, _ = cmd.Flags().GetString("url")
		}
		if cmd.Flags().Changed("token") {
			cfg.Token, _ = cmd.Flags().GetString("token")
		}
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
		}

		level, err := logging.ParseLevel(cfg.LogLevel)
		if err != nil {
			return err
		}
		state.cfg = cfg
		state.logger = logging.New(level)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "docframe.yaml", "Configuration file")
	rootCmd.PersistentFlags().String("url", "", "Base URL of the docframe engine")
	rootCmd.PersistentFlags().String("token", "", "Access token for the engine")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
}

// exampleArg validates the example name argument.
func exampleArg(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected one example name, one of %v", state.docs.Names())
	}
	return nil
}

// completeExamples offers the registered example names.
func completeExamples(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return state.docs.Names(), cobra.ShellCompDirectiveNoFileComp
}
