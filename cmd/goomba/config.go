package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/goomba-arcade/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a round would start with, after the config search
order and the --difficulty preset are applied. The output is valid
goomba.yaml and makes a good starting point for a custom file.

Search order:
  --config path -> ~/.goomba/configs/goomba.yaml -> ./configs/goomba.yaml -> built-in`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	exitOnError(printConfig())
}

func printConfig() error {
	cfg, source, err := config.LoadGoomba(flagConfig)
	if err != nil {
		return err
	}
	if preset := config.ParsePreset(flagDifficulty); preset != "" {
		config.ApplyGoombaPreset(&cfg, preset)
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	fmt.Printf("# source: %s\n", sourceName(source))
	fmt.Print(string(out))
	return nil
}
