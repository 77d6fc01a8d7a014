package main

import (
	"fmt"

	"sweepd/internal/config"
	"sweepd/internal/log"

	"github.com/spf13/cobra"
)

var (
	settingsFile string
	verbose      bool
	settings     *config.Settings
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sweepd",
		Short: "A rule-driven recursive cleanup tool",
		Long: `Sweepd walks directory trees and deletes files and folders that match
your cleanup rules: files by extension, folders by name, with per-rule
exclusions and a dry-run mode that only reports what would happen.`,
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			var err error
			if settingsFile != "" {
				settings, err = config.LoadSettingsFile(settingsFile)
			} else {
				settings, err = config.LoadSettings()
			}
			if err != nil {
				fmt.Printf("Warning: %v\n", err)
				fmt.Println("Using default settings.")
				settings = config.DefaultSettings()
			}

			log.SetDebug(verbose || settings.Log.Verbose)
		},
	}

	rootCmd.PersistentFlags().StringVar(&settingsFile, "settings", "", "settings file (default is $HOME/.config/sweepd/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(NewCleanCmd())
	rootCmd.AddCommand(NewRulesCmd())
	rootCmd.AddCommand(NewWatchCmd())

	return rootCmd
}
