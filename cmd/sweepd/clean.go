package main

import (
	"fmt"

	"sweepd/internal/clean"
	"sweepd/internal/config"
	"sweepd/internal/report"
	"sweepd/pkg/types"

	"github.com/spf13/cobra"
)

// NewCleanCmd creates the clean command
func NewCleanCmd() *cobra.Command {
	var (
		rulesFile   string
		destination string
		kind        string
		patterns    []string
		exclude     []string
		dryRun      bool
	)

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Run cleanup rules once",
		Long: `Run cleanup rules against their destination directories. Rules come
either from a JSON rules file (--rules) or from a single rule built out of
--dest, --kind and --patterns. With --dry-run every match is reported but
nothing is deleted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rules, err := resolveRules(rulesFile, destination, kind, patterns, exclude)
			if err != nil {
				return err
			}

			printer := report.New()
			engine := clean.NewWithOptions(dryRun || settings.Clean.DryRun, nil, printer)
			if engine.IsDryRun() {
				printer.Info("Dry run: reporting matches without deleting")
			}

			results := engine.Run(rules)

			var removed, failed int
			for _, result := range results {
				if result.Error != nil {
					failed++
					continue
				}
				if result.Removed || result.DryRun {
					removed++
				}
			}
			if engine.IsDryRun() {
				printer.Info("%d match(es) across %d rule(s)", removed, len(rules))
			} else {
				printer.Info("%d removed, %d failed, across %d rule(s)", removed, failed, len(rules))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&rulesFile, "rules", "r", "", "JSON rules file (mutually exclusive with --dest/--kind/--patterns)")
	cmd.Flags().StringVarP(&destination, "dest", "d", "", "destination directory to clean")
	cmd.Flags().StringVarP(&kind, "kind", "k", "", "target kind: file or folder")
	cmd.Flags().StringSliceVarP(&patterns, "patterns", "p", nil, "patterns to match (extension for files, base name for folders)")
	cmd.Flags().StringSliceVarP(&exclude, "exclude", "e", nil, "names to skip entirely")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "report what would be removed without deleting")

	return cmd
}

// resolveRules turns CLI inputs into a validated rule list: either the JSON
// rules file, or one rule synthesized from the discrete flags. Flag defaults
// fall back to the settings file.
func resolveRules(rulesFile, destination, kind string, patterns, exclude []string) ([]types.Rule, error) {
	if rulesFile == "" && destination == "" && kind == "" && len(patterns) == 0 {
		rulesFile = settings.Clean.RulesFile
	}

	if rulesFile != "" {
		if destination != "" || kind != "" || len(patterns) > 0 || len(exclude) > 0 {
			return nil, fmt.Errorf("--rules cannot be combined with --dest/--kind/--patterns/--exclude")
		}
		return config.LoadRules(rulesFile)
	}

	rule, err := config.NewRule(destination, kind, patterns, exclude)
	if err != nil {
		return nil, err
	}
	return []types.Rule{rule}, nil
}
