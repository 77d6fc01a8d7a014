package main

import (
	"fmt"

	"sweepd/internal/config"

	"github.com/spf13/cobra"
)

// NewRulesCmd creates the rules command
func NewRulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Inspect cleanup rules",
		Long:  `List and validate the rules in a JSON rules file without running them.`,
	}

	cmd.AddCommand(newRulesListCmd())
	cmd.AddCommand(newRulesCheckCmd())

	return cmd
}

// newRulesListCmd creates the 'rules list' command
func newRulesListCmd() *cobra.Command {
	var rulesFile string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the rules in a rules file",
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

			fmt.Printf("%d rule(s) in %s:\n", len(rules), path)
			for i, rule := range rules {
				fmt.Printf("  %d. %s\n", i+1, rule)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&rulesFile, "rules", "r", "", "JSON rules file")
	return cmd
}

// newRulesCheckCmd creates the 'rules check' command
func newRulesCheckCmd() *cobra.Command {
	var rulesFile string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a rules file without running it",
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

			fmt.Printf("OK: %d rule(s) valid\n", len(rules))
			return nil
		},
	}

	cmd.Flags().StringVarP(&rulesFile, "rules", "r", "", "JSON rules file")
	return cmd
}
