package main

import (
	"fmt"
	"os"

	"github.com/handiism/playlist-generator/internal/config"
	"github.com/handiism/playlist-generator/internal/tui"
	"github.com/spf13/cobra"
)

func main() {
	var configPath string

	cmd := &cobra.Command{
		Use:           "playlist-tui",
		Short:         "Interactive playlist generator",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, _ []string) error {
			settings := config.DefaultSettings()
			if configPath != "" {
				var err error
				settings, err = config.Load(configPath)
				if err != nil {
					return fmt.Errorf("loading config: %w", err)
				}
			}
			return tui.Run(settings)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "JSON settings file supplying defaults")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
