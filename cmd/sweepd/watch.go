package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sweepd/internal/clean"
	"sweepd/internal/config"
	"sweepd/internal/watch"

	"github.com/spf13/cobra"
)

// NewWatchCmd creates the watch command
func NewWatchCmd() *cobra.Command {
	var (
		rulesFile string
		dryRun    bool
		debounce  int
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch rule destinations and re-run cleanup on changes",
		Long: `Watch every rule destination for filesystem changes and re-run the full
rule list after a quiet period. Runs until interrupted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := rulesFile
			if path == "" {
				path = settings.Clean.RulesFile
			}
			if path == "" {
				return fmt.Errorf("no rules file given (use --rules or set clean.rules_file in settings)")
			}

			rules, err := config.LoadRules(path)
			if err != nil {
				return err
			}

			engine := clean.New()
			engine.SetDryRun(dryRun || settings.Clean.DryRun)

			if debounce <= 0 {
				debounce = settings.Watch.DebounceSeconds
			}

			watcher, err := watch.New(engine, rules, time.Duration(debounce)*time.Second)
			if err != nil {
				return err
			}
			if err := watcher.Start(); err != nil {
				return err
			}
			defer watcher.Stop()

			// Initial pass before settling into watch mode
			engine.Run(rules)

			fmt.Println("Watching for changes. Press Ctrl+C to stop.")
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
			<-sigChan

			fmt.Println("Stopping watcher...")
			return nil
		},
	}

	cmd.Flags().StringVarP(&rulesFile, "rules", "r", "", "JSON rules file")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "report what would be removed without deleting")
	cmd.Flags().IntVar(&debounce, "debounce", 0, "quiet period in seconds before a re-run (default from settings)")

	return cmd
}
