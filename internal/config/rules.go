// Package config loads and validates the inputs a cleanup run needs before
// the engine touches the filesystem: the JSON rules file (or a single rule
// synthesized from CLI flags) and the optional YAML settings file. Everything
// that can fail here is a usage or parse error and fatal; the engine itself
// never sees an invalid rule.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"sweepd/internal/errors"
	"sweepd/pkg/types"
)

// LoadRules reads a JSON rules file and returns the validated rule list. The
// path may be relative; it is absolutized first. The file must exist, carry a
// .json extension (case-insensitive), decode to the rule schema with
// destination, kind and patterns present on every entry, and every rule
// destination must be an existing directory.
func LoadRules(path string) ([]types.Rule, error) {
	if !filepath.IsAbs(path) {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, errors.NewUsageError("invalid rules file path", path, errors.ConfigNotFound, err)
		}
		path = abs
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.NewUsageError("rules file doesn't exist", path, errors.ConfigNotFound, nil)
	}
	if info.IsDir() || !strings.EqualFold(filepath.Ext(path), ".json") {
		return nil, errors.NewUsageError("rules file is not a JSON file, please provide a JSON file", path, errors.ConfigNotJSON, nil)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewParseError("reading rules file", path, errors.ConfigNotReadable, err)
	}

	// Decode through pointer fields so an entry that omits destination, kind
	// or patterns is rejected instead of silently getting a zero value.
	var raw []struct {
		Destination *string     `json:"destination"`
		Kind        *types.Kind `json:"kind"`
		Patterns    []string    `json:"patterns"`
		Exclude     []string    `json:"exclude"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.NewParseError("rules file does not match the expected schema", path, errors.InvalidSchema, err)
	}

	rules := make([]types.Rule, 0, len(raw))
	for i, r := range raw {
		var missing string
		switch {
		case r.Destination == nil:
			missing = "destination"
		case r.Kind == nil:
			missing = "kind"
		case r.Patterns == nil:
			missing = "patterns"
		}
		if missing != "" {
			return nil, errors.NewParseError(fmt.Sprintf("rule %d is missing required field %q", i, missing), path, errors.InvalidSchema, nil)
		}
		rules = append(rules, types.Rule{
			Destination: *r.Destination,
			Kind:        *r.Kind,
			Patterns:    r.Patterns,
			Exclude:     r.Exclude,
		})
	}

	if err := ValidateRules(rules); err != nil {
		return nil, err
	}
	return rules, nil
}

// NewRule synthesizes a single rule from discrete CLI inputs, enforcing the
// same usage checks the rules file path goes through. An empty exclude list is
// legal; empty patterns are not, a rule without patterns can never act.
func NewRule(destination, kind string, patterns, exclude []string) (types.Rule, error) {
	if destination == "" {
		return types.Rule{}, errors.NewUsageError("please provide destination", "", errors.MissingDestination, nil)
	}
	if kind == "" {
		return types.Rule{}, errors.NewUsageError("please provide kind", "", errors.MissingKind, nil)
	}
	if len(patterns) == 0 {
		return types.Rule{}, errors.NewUsageError("please provide patterns", "", errors.MissingPatterns, nil)
	}

	k, err := types.ParseKind(kind)
	if err != nil {
		return types.Rule{}, errors.NewUsageError("invalid kind", kind, errors.MissingKind, err)
	}

	rule := types.Rule{
		Destination: destination,
		Kind:        k,
		Patterns:    patterns,
		Exclude:     exclude,
	}
	if err := validateDestination(rule.Destination); err != nil {
		return types.Rule{}, err
	}
	return rule, nil
}

// ValidateRules checks every rule destination before any traversal begins, so
// a bad entry anywhere in the list stops the whole run up front.
func ValidateRules(rules []types.Rule) error {
	for _, rule := range rules {
		if err := validateDestination(rule.Destination); err != nil {
			return err
		}
	}
	return nil
}

func validateDestination(dest string) error {
	if dest == "" {
		return errors.NewUsageError("please provide destination", "", errors.MissingDestination, nil)
	}
	info, err := os.Stat(dest)
	if err != nil {
		return errors.NewUsageError("destination doesn't exist", dest, errors.DestinationNotFound, nil)
	}
	if !info.IsDir() {
		return errors.NewUsageError("destination is not a directory, please provide directory path as destination", dest, errors.DestinationNotDir, nil)
	}
	return nil
}
