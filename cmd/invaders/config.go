package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/alien-invasion/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration as YAML after the config file, the
difficulty preset and the global flags have been applied.

Save the output to ~/.invaders/configs/invaders.yaml to customize it.

Examples:
  invaders config
  invaders config --difficulty hard
  invaders config --defaults > invaders.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults with comments")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if flagDefaults {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	a, err := newApp(false)
	if err != nil {
		return err
	}
	defer a.close()

	data, err := config.Marshal(a.cfg)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
