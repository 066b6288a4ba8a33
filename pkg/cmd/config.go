package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrityunjaygr8/rfe/pkg/config"
)

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage rfe configuration",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the resolved configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			src := DevCfg.Source
			if src == "" {
				src = "(built-in templates)"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "source: %s\n", src)
			return nil
		},
	}

	setSourceCmd := &cobra.Command{
		Use:   "set-source [source]",
		Short: "Persist a default template source",
		Long:  "Writes the given source to ~/.rfe/config.toml so future rfe init runs use it by default.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.SaveGlobal(&config.DevConfig{Source: args[0]}); err != nil {
				return err
			}
			path, err := config.GlobalConfigPath()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved source to %s\n", path)
			return nil
		},
	}

	configCmd.AddCommand(showCmd)
	configCmd.AddCommand(setSourceCmd)

	return configCmd
}
