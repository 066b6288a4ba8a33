package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/mrityunjaygr8/rfe/pkg/assets"
	"github.com/mrityunjaygr8/rfe/pkg/scaffold"
	"github.com/mrityunjaygr8/rfe/pkg/source"
)

func newInitCmd() *cobra.Command {
	initCmd := &cobra.Command{
		Use:   "init [target]",
		Short: "Scaffold devenv.yaml, devenv.nix, .gitignore and .envrc",
		Long: `Writes the devenv starter files into the target directory (default:
the current directory). File contents come from the configured template
source; anything the source lacks falls back to the built-in defaults.

A remote source is cloned once, up front. The clone lives in a
temporary directory that is removed when init finishes.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runInit,
	}

	initCmd.Flags().Bool("force", false, "overwrite existing files without prompting")

	return initCmd
}

func runInit(cmd *cobra.Command, args []string) error {
	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	target := "."
	if len(args) == 1 {
		target = args[0]
	}
	if err := os.MkdirAll(target, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", target, err)
	}

	reader, err := source.NewContentReader(cmd.Context(), DevCfg.Source, assets.Default())
	if err != nil {
		return err
	}
	defer reader.Close()

	if DevCfg.Source != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Using %s source %s\n", reader.Kind(), DevCfg.Source)
	}

	files, err := scaffold.LoadManifest(reader)
	if err != nil {
		return err
	}

	overwrite := make(map[string]bool)
	if existing := scaffold.Existing(target, files); len(existing) > 0 {
		selected := existing
		if !force {
			selected, err = promptOverwrite(existing)
			if err != nil {
				return err
			}
		}
		for _, name := range selected {
			overwrite[name] = true
		}
	}

	res, err := scaffold.Run(target, files, overwrite, reader)
	if err != nil {
		return err
	}

	for _, name := range res.Written {
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", name)
	}
	for _, name := range res.Skipped {
		fmt.Fprintf(cmd.OutOrStdout(), "Skipped %s (already exists)\n", name)
	}

	return nil
}

// promptOverwrite uses huh to present a multi-select of existing files
// that may be overwritten. Nothing is selected by default.
func promptOverwrite(existing []string) ([]string, error) {
	options := make([]huh.Option[string], len(existing))
	for i, name := range existing {
		options[i] = huh.NewOption(name, name)
	}

	var selected []string
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Overwrite existing files?").
				Options(options...).
				Value(&selected),
		),
	).Run()
	if err != nil {
		return nil, fmt.Errorf("prompt failed: %w", err)
	}

	return selected, nil
}
