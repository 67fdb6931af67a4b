package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ticking/internal/config"
)

var (
	flagValidate string
	flagResolved bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or validate game configuration",
	Long: `Print the embedded default configuration, the resolved configuration,
or validate a configuration file.

Config search order:
  --config <path>
  ~/.ticking/configs/ticking.yaml
  ./configs/ticking.yaml
  embedded defaults

Examples:
  ticking config > ~/.ticking/configs/ticking.yaml
  ticking config --resolved
  ticking config --validate ./my-ticking.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagValidate, "validate", "", "Validate a config file and exit")
	configCmd.Flags().BoolVar(&flagResolved, "resolved", false, "Print the configuration after applying overrides")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagValidate != "" {
		if _, err := config.LoadFile(flagValidate); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%s: ok\n", flagValidate)
		return
	}

	if !flagResolved {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
