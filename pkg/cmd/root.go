package cmd

import (
	"fmt"
	"os"

	"github.com/mrityunjaygr8/rfe/pkg/config"
	"github.com/spf13/cobra"
)

// version is overridden at build time via -ldflags.
var version = "dev"

var (
	flagSource string

	// DevCfg holds the resolved developer configuration, available to
	// all subcommands after PersistentPreRunE completes.
	DevCfg *config.DevConfig
)

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "rfe",
		Short: "Scaffold devenv projects",
		Long:  "rfe scaffolds devenv.yaml, devenv.nix, .gitignore and .envrc from a template source, falling back to built-in defaults.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadDevConfig(flagSource)
			if err != nil {
				return err
			}
			DevCfg = cfg
			return nil
		},
		// A bare invocation prints the version.
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "rfe %s\n", version)
			return nil
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVarP(&flagSource, "source", "s", "", "template source (local directory, git checkout, or https git URL)")

	root.AddCommand(newInitCmd())
	root.AddCommand(newConfigCmd())

	return root
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
