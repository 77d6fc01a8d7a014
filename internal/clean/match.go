package clean

import (
	"os"
	"path/filepath"
	"strings"

	"sweepd/pkg/types"
)

// containsFold reports whether list contains a case-insensitive exact match
// for s. Pattern and exclusion sets are small, so a linear scan with
// per-lookup folding beats building a folded index.
func containsFold(s string, list []string) bool {
	for _, item := range list {
		if strings.EqualFold(s, item) {
			return true
		}
	}
	return false
}

// isExcluded reports whether name is suppressed by the exclusion set. An
// excluded entry is invisible to the rest of the engine: never matched, never
// descended into.
func isExcluded(name string, exclude []string) bool {
	return containsFold(name, exclude)
}

// extension returns the text after the last dot of a base name. Names without
// a dot, names whose only dot is the leading character (".gitignore"), and
// names ending in a dot have no extension.
func extension(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx <= 0 || idx == len(name)-1 {
		return ""
	}
	return name[idx+1:]
}

// matches decides whether one entry is eligible for removal under the rule's
// kind and patterns. The entry type is re-read here rather than trusted from
// the earlier listing; under concurrent external modification the two can
// diverge, a TOCTOU race the engine knowingly accepts. Lstat keeps symlinks
// out entirely: a link is neither a regular file nor a directory, so it never
// matches and is never followed.
func matches(path string, kind types.Kind, patterns []string) bool {
	info, err := os.Lstat(path)
	if err != nil {
		return false
	}

	switch kind {
	case types.Folder:
		return info.IsDir() && containsFold(filepath.Base(path), patterns)
	case types.File:
		if !info.Mode().IsRegular() {
			return false
		}
		ext := extension(filepath.Base(path))
		return ext != "" && containsFold(ext, patterns)
	}
	return false
}
