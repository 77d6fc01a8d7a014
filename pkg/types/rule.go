package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Kind selects which filesystem entries a rule targets: files matched by
// extension, or folders matched by base name.
type Kind int

const (
	// File targets regular files; patterns are compared against the extension.
	File Kind = iota
	// Folder targets directories; patterns are compared against the base name.
	Folder
)

// String returns the canonical wire spelling of the kind.
func (k Kind) String() string {
	switch k {
	case File:
		return "file"
	case Folder:
		return "folder"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind converts a config or flag value into a Kind. The comparison is
// case-insensitive so "File", "FOLDER" etc. all parse.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "file":
		return File, nil
	case "folder":
		return Folder, nil
	default:
		return File, fmt.Errorf("unknown kind %q (expected \"file\" or \"folder\")", s)
	}
}

// MarshalJSON encodes the kind as its wire spelling.
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON decodes the tagged string form used in rules files.
func (k *Kind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Rule is one cleanup directive: walk Destination and delete every entry of
// the configured Kind whose name or extension matches a pattern, skipping
// anything named in Exclude. A rule is constructed once (from a rules file or
// CLI flags) and read-only afterwards.
type Rule struct {
	Destination string   `json:"destination"` // Root directory to clean
	Kind        Kind     `json:"kind"`        // file or folder
	Patterns    []string `json:"patterns"`    // Case-insensitive exact matches
	Exclude     []string `json:"exclude,omitempty"`
}

// String returns a compact human-readable summary, used by `sweepd rules list`.
func (r Rule) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s [%s]", r.Destination, r.Kind))
	sb.WriteString(fmt.Sprintf(" patterns=%s", strings.Join(r.Patterns, ",")))
	if len(r.Exclude) > 0 {
		sb.WriteString(fmt.Sprintf(" exclude=%s", strings.Join(r.Exclude, ",")))
	}
	return sb.String()
}
