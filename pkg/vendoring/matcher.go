package vendoring

import (
	"path/filepath"
)

// matchesAny reports whether the path matches any of the given glob patterns.
// Patterns use shell-style glob semantics (`*`, `?`, character classes), not
// regular expressions. Invalid patterns never match.
func matchesAny(path string, patterns []string) bool {
	for _, pattern := range patterns {
		if ok, err := filepath.Match(pattern, path); err == nil && ok {
			return true
		}
	}
	return false
}

// ShouldInclude decides whether a relative file path is included given
// include/exclude glob pattern lists. An empty include set includes every
// path; an empty exclude set excludes none. The result is included AND NOT
// excluded.
func ShouldInclude(relPath string, includePatterns, excludePatterns []string) bool {
	included := len(includePatterns) == 0 || matchesAny(relPath, includePatterns)
	excluded := matchesAny(relPath, excludePatterns)
	return included && !excluded
}
